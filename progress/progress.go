// SPDX-License-Identifier: MIT

package progress

import (
	"fmt"
	"io"
	"os"

	progressbar "github.com/charmbracelet/bubbles/progress"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

// DefaultThreshold is the minimum change in completed fraction between two
// redraws (1%).
const DefaultThreshold = 0.01

// DefaultWidth is the bar width in cells.
const DefaultWidth = 40

// Reporter receives progress as completed and total work units.
type Reporter func(done, total uint64)

// Nop is a Reporter that discards updates.
func Nop(uint64, uint64) {}

// Bar renders progress to a writer. The zero value is not usable; use NewBar.
type Bar struct {
	w         io.Writer
	label     string
	model     progressbar.Model
	threshold float64
	last      float64
	drawn     bool
	finished  bool
}

// BarOption configures a Bar.
type BarOption func(*Bar)

// WithThreshold sets the redraw threshold. Values outside (0, 1] are ignored.
func WithThreshold(t float64) BarOption {
	return func(b *Bar) {
		if t > 0 && t <= 1 {
			b.threshold = t
		}
	}
}

// WithWidth sets the bar width in cells. Non-positive values are ignored.
func WithWidth(width int) BarOption {
	return func(b *Bar) {
		if width > 0 {
			b.model.Width = width
		}
	}
}

// NewBar returns a Bar that writes to w, prefixing each line with label.
func NewBar(w io.Writer, label string, opts ...BarOption) *Bar {
	b := &Bar{
		w:         w,
		label:     label,
		model:     progressbar.New(progressbar.WithDefaultGradient(), progressbar.WithWidth(DefaultWidth)),
		threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Report redraws the bar when the fraction moved by at least the threshold,
// on the first update, and on completion.
func (b *Bar) Report(done, total uint64) {
	if b.finished || total == 0 {
		return
	}
	frac := float64(done) / float64(total)
	if frac > 1 {
		frac = 1
	}
	if b.drawn && done < total && frac-b.last < b.threshold {
		return
	}
	b.last = frac
	b.drawn = true
	fmt.Fprintf(b.w, "\r%s %s %s/%s",
		b.label,
		b.model.ViewAs(frac),
		humanize.Comma(int64(done)),
		humanize.Comma(int64(total)),
	)
	if done >= total {
		b.Finish()
	}
}

// Reporter returns b.Report as a Reporter.
func (b *Bar) Reporter() Reporter {
	return b.Report
}

// Finish terminates the bar line. It is safe to call more than once.
func (b *Bar) Finish() {
	if b.finished {
		return
	}
	b.finished = true
	if b.drawn {
		fmt.Fprintln(b.w)
	}
}

// IsTerminal reports whether w is a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ForWriter returns a Bar's reporter and finisher when w is a terminal, and
// Nop with a no-op finisher otherwise.
func ForWriter(w io.Writer, label string, opts ...BarOption) (Reporter, func()) {
	if !IsTerminal(w) {
		return Nop, func() {}
	}
	b := NewBar(w, label, opts...)

	return b.Reporter(), b.Finish
}
