package fa2tex

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"
)

// progressInterval throttles redraws.
const progressInterval = 100 * time.Millisecond

// TerminalProgress returns f when it is a terminal and nil otherwise, so
// redirected output never receives carriage-return redraws.
func TerminalProgress(f *os.File) io.Writer {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	return f
}

// progress draws a single updating line: bytes for downloads, entries
// for extraction.
type progress struct {
	out     io.Writer
	label   string
	unit    string // plural noun for counted items, empty for bytes
	total   int64  // negative or zero when unknown
	written int64
	last    time.Time
	now     func() time.Time
}

func newProgress(out io.Writer, label string, total int64) *progress {
	return &progress{out: out, label: label, total: total, now: time.Now}
}

// newCountProgress counts items named unit instead of bytes.
func newCountProgress(out io.Writer, label, unit string, total int64) *progress {
	p := newProgress(out, label, total)
	p.unit = unit
	return p
}

func (p *progress) Write(b []byte) (int, error) {
	p.Add(int64(len(b)))
	return len(b), nil
}

// Add advances the counter by n and redraws at most once per interval.
func (p *progress) Add(n int64) {
	p.written += n
	if now := p.now(); now.Sub(p.last) >= progressInterval {
		p.last = now
		p.draw()
	}
}

// Finish draws the final state and ends the line.
func (p *progress) Finish() {
	p.draw()
	_, _ = fmt.Fprintln(p.out)
}

func (p *progress) draw() {
	done := p.format(p.written)
	if p.total > 0 {
		pct := float64(p.written) / float64(p.total) * 100
		_, _ = fmt.Fprintf(p.out, "\r%s: %s / %s (%.0f%%)", p.label, done, p.format(p.total), pct)
		return
	}
	_, _ = fmt.Fprintf(p.out, "\r%s: %s", p.label, done)
}

func (p *progress) format(n int64) string {
	if p.unit != "" {
		return humanize.Comma(n) + " " + p.unit
	}
	return humanize.Bytes(uint64(n))
}
