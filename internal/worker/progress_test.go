package worker

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestProgress_ObservePrintsStatusLine(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(3, true)
	p.out = &buf

	res := Result{
		Task:    Task{Palette: "warm", OutPath: "/tmp/warm.png"},
		Path:    "/tmp/warm.png",
		Elapsed: 12 * time.Millisecond,
	}
	p.Observe(res, 1, 3)

	out := buf.String()
	if !strings.Contains(out, "[1/3] warm -> /tmp/warm.png") {
		t.Errorf("Unexpected status line: %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("Expected status line to end with newline")
	}
}

func TestProgress_ObserveReportsFailure(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(2, true)
	p.out = &buf

	p.Observe(Result{
		Task: Task{Hue: 8, OutPath: "/tmp/tones.png"},
		Err:  errors.New("disk full"),
	}, 1, 2)

	out := buf.String()
	if !strings.Contains(out, "[1/2] tones h8: disk full") {
		t.Errorf("Unexpected failure line: %q", out)
	}

	failed := p.Failed()
	if len(failed) != 1 || failed[0] != "tones h8" {
		t.Errorf("Expected failed labels [tones h8], got %v", failed)
	}
}

func TestProgress_Summary(t *testing.T) {
	p := NewProgress(3, false)
	p.start = time.Now().Add(-2 * time.Second)

	p.Observe(Result{Task: Task{Palette: "warm"}, Path: "a.png"}, 1, 3)
	p.Observe(Result{Task: Task{Palette: "cool"}, Err: errors.New("boom")}, 2, 3)
	p.Observe(Result{Task: Task{Palette: "mono"}, Path: "c.png"}, 3, 3)

	s := p.Summary()
	if !strings.Contains(s, "2/3 sheets") {
		t.Errorf("Expected '2/3 sheets' in summary, got: %s", s)
	}
	if !strings.Contains(s, "failed: cool") {
		t.Errorf("Expected failed label in summary, got: %s", s)
	}
}

func TestProgress_SummaryWithoutFailures(t *testing.T) {
	p := NewProgress(2, false)

	p.Observe(Result{Task: Task{Palette: "warm"}, Path: "a.png"}, 1, 2)
	p.Observe(Result{Task: Task{Palette: "cool"}, Path: "b.png"}, 2, 2)

	s := p.Summary()
	if !strings.Contains(s, "2/2 sheets") {
		t.Errorf("Expected '2/2 sheets' in summary, got: %s", s)
	}
	if strings.Contains(s, "failed") {
		t.Errorf("Did not expect failure section, got: %s", s)
	}
}

func TestProgress_DisabledStaysQuiet(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(1, false)
	p.out = &buf

	p.Observe(Result{Task: Task{Palette: "warm"}, Path: "a.png"}, 1, 1)

	if buf.Len() != 0 {
		t.Errorf("Expected no output when disabled, got: %s", buf.String())
	}
	if !strings.Contains(p.Summary(), "1/1 sheets") {
		t.Errorf("Expected counts to be tracked while quiet, got: %s", p.Summary())
	}
}

func TestTaskLabel(t *testing.T) {
	if got := (Task{Palette: "warm"}).Label(); got != "warm" {
		t.Errorf("Palette label = %q", got)
	}
	if got := (Task{Hue: 14}).Label(); got != "tones h14" {
		t.Errorf("Tone label = %q", got)
	}
	if got := (Task{Hue: 3.5}).Label(); got != "tones h3.5" {
		t.Errorf("Fractional tone label = %q", got)
	}
}
