// Package wordsrc loads the word lists fed to the sorted arrays.
package wordsrc

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// MaxLineSize is the longest line a source may contain.
const MaxLineSize = 16 << 20

var (
	ErrNotFound = errors.New("wordsrc: source not found")

	ErrStatus = errors.New("wordsrc: unexpected http status")
)

// Source produces a finite list of words, possibly empty, in no particular order.
type Source interface {
	Words(ctx context.Context) ([]string, error)
}

// File reads one word per line from a local file, zstd compressed when the
// name ends with .zst.
type File struct {
	Path string
}

// Words
func (f File) Words(ctx context.Context) ([]string, error) {
	fd, err := os.Open(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, err
	}
	defer fd.Close()

	var r io.Reader = fd
	if strings.HasSuffix(f.Path, zstdExt) {
		dec, err := decompressReader(fd)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		r = dec
	}

	return readLines(ctx, r)
}

// readLines splits r into trimmed, non-empty lines.
func readLines(ctx context.Context, r io.Reader) ([]string, error) {
	words := make([]string, 0, 1024)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	for i := 0; scanner.Scan(); i++ {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if w := strings.TrimSpace(scanner.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return words, nil
}

// Open picks a source by the form of target: http(s) URLs, leveldb://dir,
// otherwise a file path.
func Open(target string) Source {
	switch {
	case strings.HasPrefix(target, "http://"), strings.HasPrefix(target, "https://"):
		return &HTTP{URL: target}
	case strings.HasPrefix(target, levelDBScheme):
		return &LevelDB{Path: strings.TrimPrefix(target, levelDBScheme)}
	}
	return File{Path: target}
}

// Limit returns the first n words, all of them when n <= 0.
func Limit(words []string, n int) []string {
	if n <= 0 || n >= len(words) {
		return words
	}
	return words[:n:n]
}

// sorted
func sorted(words []string) []string {
	slices.Sort(words)
	return words
}
