// Package bcmp is bytes comparetor.
package bcmp

import "bytes"

func Compare(a, b []byte) int {
	return bytes.Compare(a, b)
}
