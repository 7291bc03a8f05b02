package worker

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Progress reports each finished sheet as it completes and keeps the
// labels of failed sheets for the final summary. Rendering a sheet
// takes long enough that one status line per sheet reads better than
// an in-place bar.
type Progress struct {
	out     io.Writer
	start   time.Time
	enabled bool

	mu     sync.Mutex
	total  int
	done   int
	failed []string
}

// NewProgress creates a tracker for a batch of total sheets. When
// enabled is false nothing is printed; counts and failed labels are
// still collected for Summary.
func NewProgress(total int, enabled bool) *Progress {
	return &Progress{
		out:     os.Stderr,
		start:   time.Now(),
		total:   total,
		enabled: enabled,
	}
}

// Observe records one finished sheet and, when display is enabled,
// prints its status line.
func (p *Progress) Observe(res Result, completed, total int) {
	p.mu.Lock()
	p.done = completed
	p.total = total
	if res.Err != nil {
		p.failed = append(p.failed, res.Task.Label())
	}
	p.mu.Unlock()

	if !p.enabled {
		return
	}
	if res.Err != nil {
		fmt.Fprintf(p.out, "[%d/%d] %s: %v\n", completed, total, res.Task.Label(), res.Err)
		return
	}
	fmt.Fprintf(p.out, "[%d/%d] %s -> %s (%s)\n",
		completed, total, res.Task.Label(), res.Path, res.Elapsed.Round(time.Millisecond))
}

// Callback returns a ProgressFunc suitable for use with Pool.Config.
func (p *Progress) Callback() ProgressFunc {
	return p.Observe
}

// Failed returns the labels of the sheets that failed, in completion
// order.
func (p *Progress) Failed() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.failed))
	copy(out, p.failed)
	return out
}

// Summary describes the batch in one line: how many sheets rendered,
// the wall time, and which sheets failed.
func (p *Progress) Summary() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	elapsed := time.Since(p.start).Round(10 * time.Millisecond)
	ok := p.done - len(p.failed)
	if len(p.failed) == 0 {
		return fmt.Sprintf("Rendered %d/%d sheets in %s", ok, p.total, elapsed)
	}
	return fmt.Sprintf("Rendered %d/%d sheets in %s; failed: %s",
		ok, p.total, elapsed, strings.Join(p.failed, ", "))
}
