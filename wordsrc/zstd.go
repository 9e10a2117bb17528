package wordsrc

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

const zstdExt = ".zst"

// decompressReader wraps r with a streaming zstd decoder.
func decompressReader(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return dec.IOReadCloser(), nil
}
