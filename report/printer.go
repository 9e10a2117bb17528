package report

import (
	"fmt"
	"io"
	"strings"
)

// Printer writes one line per record:
//
//	Size: 12, Time Elapsed: 0.00004s, Memory Usage: 236 bytes, Elements: a -> a -> b
type Printer struct {
	w io.Writer
}

// NewPrinter
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Header starts a new section.
func (p *Printer) Header(title string) error {
	_, err := fmt.Fprintf(p.w, "\n%s\n", title)
	return err
}

// Emit
func (p *Printer) Emit(r Record) error {
	_, err := fmt.Fprintf(p.w, "Size: %d, Time Elapsed: %.5fs, Memory Usage: %d bytes, Elements: %s\n",
		r.Capacity, r.Elapsed.Seconds(), r.Memory, strings.Join(r.Samples, " -> "))
	return err
}
