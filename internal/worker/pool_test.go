package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// mockRenderer simulates sheet rendering for testing
type mockRenderer struct {
	delay     time.Duration
	failJobs  map[string]bool // palettes that should fail
	callCount atomic.Int32
}

func (m *mockRenderer) Render(ctx context.Context, task Task) (string, error) {
	m.callCount.Add(1)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(m.delay):
	}

	if m.failJobs != nil && m.failJobs[task.Palette] {
		return "", errors.New("simulated failure")
	}

	return task.OutPath, nil
}

func TestPool_BasicExecution(t *testing.T) {
	ren := &mockRenderer{delay: 10 * time.Millisecond}

	pool := New(Config{
		Workers:  2,
		Renderer: ren,
	})

	tasks := []Task{
		{Palette: "warm", OutPath: "/tmp/warm.png"},
		{Palette: "cool", OutPath: "/tmp/cool.png"},
		{Palette: "mono", OutPath: "/tmp/mono.png"},
	}

	results := pool.Run(context.Background(), tasks)

	if len(results) != len(tasks) {
		t.Errorf("Expected %d results, got %d", len(tasks), len(results))
	}

	for _, r := range results {
		if r.Err != nil {
			t.Errorf("Unexpected error for %s: %v", r.Task.Palette, r.Err)
		}
		if r.Path == "" {
			t.Errorf("Expected path for %s, got empty", r.Task.Palette)
		}
	}

	if ren.callCount.Load() != int32(len(tasks)) {
		t.Errorf("Expected %d renderer calls, got %d", len(tasks), ren.callCount.Load())
	}
}

func TestPool_Parallelism(t *testing.T) {
	// Use a longer delay to ensure parallelism is tested
	ren := &mockRenderer{delay: 50 * time.Millisecond}

	pool := New(Config{
		Workers:  4,
		Renderer: ren,
	})

	tasks := make([]Task, 8)
	for i := range tasks {
		tasks[i] = Task{Hue: float64(i*3 + 1), OutPath: "/tmp/tones.png"}
	}

	start := time.Now()
	results := pool.Run(context.Background(), tasks)
	elapsed := time.Since(start)

	// With 4 workers and 8 tasks at 50ms each, should take ~100ms (2 batches)
	// Allow some margin for overhead
	maxExpected := 200 * time.Millisecond
	if elapsed > maxExpected {
		t.Errorf("Expected parallel execution in ~100ms, took %v", elapsed)
	}

	if len(results) != len(tasks) {
		t.Errorf("Expected %d results, got %d", len(tasks), len(results))
	}

	t.Logf("Processed %d tasks with %d workers in %v", len(tasks), 4, elapsed)
}

func TestPool_ErrorHandling(t *testing.T) {
	ren := &mockRenderer{
		delay:    10 * time.Millisecond,
		failJobs: map[string]bool{"cool": true},
	}

	pool := New(Config{
		Workers:  2,
		Renderer: ren,
	})

	tasks := []Task{
		{Palette: "warm", OutPath: "/tmp/warm.png"},
		{Palette: "cool", OutPath: "/tmp/cool.png"}, // This one should fail
		{Palette: "mono", OutPath: "/tmp/mono.png"},
	}

	results := pool.Run(context.Background(), tasks)

	// Should still get all results
	if len(results) != len(tasks) {
		t.Errorf("Expected %d results, got %d", len(tasks), len(results))
	}

	// Count successes and failures
	var successCount, failCount int
	for _, r := range results {
		if r.Err != nil {
			failCount++
			if r.Task.Palette != "cool" {
				t.Errorf("Unexpected failure for %s", r.Task.Palette)
			}
		} else {
			successCount++
		}
	}

	if successCount != 2 {
		t.Errorf("Expected 2 successes, got %d", successCount)
	}
	if failCount != 1 {
		t.Errorf("Expected 1 failure, got %d", failCount)
	}
}

func TestPool_Cancellation(t *testing.T) {
	ren := &mockRenderer{delay: 100 * time.Millisecond}

	pool := New(Config{
		Workers:  2,
		Renderer: ren,
	})

	tasks := make([]Task, 10)
	for i := range tasks {
		tasks[i] = Task{Hue: float64(i*2 + 1), OutPath: "/tmp/tones.png"}
	}

	ctx, cancel := context.WithCancel(context.Background())

	// Cancel after a short time
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	results := pool.Run(ctx, tasks)
	elapsed := time.Since(start)

	// Should return early due to cancellation
	if elapsed > 200*time.Millisecond {
		t.Errorf("Expected early cancellation, took %v", elapsed)
	}

	// Some results may have errors due to cancellation
	var cancelledCount int
	for _, r := range results {
		if r.Err != nil && errors.Is(r.Err, context.Canceled) {
			cancelledCount++
		}
	}

	t.Logf("Completed with %d results (%d cancelled) in %v", len(results), cancelledCount, elapsed)
}

func TestPool_ProgressCallback(t *testing.T) {
	ren := &mockRenderer{delay: 10 * time.Millisecond}

	var progressCalls atomic.Int32
	var lastCompleted, lastTotal int
	seen := map[string]bool{}

	pool := New(Config{
		Workers:  2,
		Renderer: ren,
		OnProgress: func(res Result, completed, total int) {
			progressCalls.Add(1)
			lastCompleted = completed
			lastTotal = total
			seen[res.Task.Label()] = true
		},
	})

	tasks := []Task{
		{Palette: "warm", OutPath: "/tmp/warm.png"},
		{Palette: "cool", OutPath: "/tmp/cool.png"},
		{Palette: "mono", OutPath: "/tmp/mono.png"},
	}

	pool.Run(context.Background(), tasks)

	// Should have received progress callbacks
	if progressCalls.Load() == 0 {
		t.Error("Expected progress callbacks, got none")
	}

	// Final callback should show all completed
	if lastCompleted != len(tasks) {
		t.Errorf("Expected lastCompleted=%d, got %d", len(tasks), lastCompleted)
	}
	if lastTotal != len(tasks) {
		t.Errorf("Expected lastTotal=%d, got %d", len(tasks), lastTotal)
	}

	// every task's result reached the callback
	for _, task := range tasks {
		if !seen[task.Label()] {
			t.Errorf("No progress callback for %q", task.Label())
		}
	}
}

func TestPool_EmptyTasks(t *testing.T) {
	ren := &mockRenderer{}

	pool := New(Config{
		Workers:  2,
		Renderer: ren,
	})

	results := pool.Run(context.Background(), nil)

	if len(results) != 0 {
		t.Errorf("Expected 0 results for empty tasks, got %d", len(results))
	}

	if ren.callCount.Load() != 0 {
		t.Errorf("Expected 0 renderer calls for empty tasks, got %d", ren.callCount.Load())
	}
}
