// Command sortarr compares the growth policies of the sorted array on a word list.
//
// Usage:
//
//	sortarr words_alpha.txt
//	sortarr run --limit 5000 --policy doubling --policy fib words.txt.zst
//	sortarr run --journal ./journal https://example.com/words.txt
//	sortarr import words_alpha.txt ./words.db
//	sortarr run leveldb://./words.db
//	sortarr journal ./journal
//
// The word list defaults to words_alpha.txt, or SORTARR_WORDS when set.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
