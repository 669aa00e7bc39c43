// Package report writes catalog inspection results as plain text.
package report

import (
	"fmt"
	"io"
	"time"
)

// DateLayout is the layout used for product post dates
const DateLayout = "2006-01-02 15:04:05 -0700"

// Block is the printed description of one product
type Block struct {
	ID       string
	PostDate time.Time
	Details  []string
	URLs     []string
}

// Writer prints report sections and product blocks
type Writer struct {
	w        io.Writer
	sections int
}

// NewWriter creates a new report writer
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Section starts a new section. Sections after the first are separated by
// a blank line.
func (r *Writer) Section(title string) error {
	if r.sections > 0 {
		if _, err := fmt.Fprintln(r.w); err != nil {
			return err
		}
	}
	r.sections++

	_, err := fmt.Fprintf(r.w, "%s\n\n", title)
	return err
}

// Block writes a product block followed by a blank separator line
func (r *Writer) Block(b *Block) error {
	if _, err := fmt.Fprintln(r.w, b.ID); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.w, b.PostDate.UTC().Format(DateLayout)); err != nil {
		return err
	}
	for _, line := range b.Details {
		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return err
		}
	}
	for _, u := range b.URLs {
		if _, err := fmt.Fprintln(r.w, u); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.w)
	return err
}
