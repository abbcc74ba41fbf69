package ocr

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeEngine returns canned text per page with an optional artificial delay
// so later pages can finish before earlier ones.
type fakeEngine struct {
	delays map[int]time.Duration
	fail   map[int]error
}

func (f *fakeEngine) Name() string { return "fake" }

func (f *fakeEngine) Recognize(ctx context.Context, in Input) (Result, error) {
	if d, ok := f.delays[in.Page]; ok {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return Result{}, ctx.Err()
		}
	}
	if err, ok := f.fail[in.Page]; ok {
		return Result{}, err
	}
	return Result{Page: in.Page, Text: fmt.Sprintf("text of page %d", in.Page+1)}, nil
}

func makeInputs(n int) []Input {
	inputs := make([]Input, n)
	for i := range inputs {
		inputs[i] = Input{Page: i, ImagePath: fmt.Sprintf("page-%d.png", i+1)}
	}
	return inputs
}

func TestRecognizePages_Order(t *testing.T) {
	// First pages are slowest; results must still come back in page order.
	engine := &fakeEngine{delays: map[int]time.Duration{
		0: 30 * time.Millisecond,
		1: 20 * time.Millisecond,
		2: 10 * time.Millisecond,
	}}

	results, err := RecognizePages(context.Background(), engine, makeInputs(5), 4, nil)
	if err != nil {
		t.Fatalf("RecognizePages() error: %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("got %d results, want 5", len(results))
	}
	for i, res := range results {
		if res.Page != i {
			t.Errorf("result %d has page %d", i, res.Page)
		}
		if want := fmt.Sprintf("text of page %d", i+1); res.Text != want {
			t.Errorf("result %d text = %q, want %q", i, res.Text, want)
		}
	}
}

func TestRecognizePages_Progress(t *testing.T) {
	var mu sync.Mutex
	var calls []int

	onPage := func(done, total int) {
		mu.Lock()
		defer mu.Unlock()
		if total != 3 {
			t.Errorf("total = %d, want 3", total)
		}
		calls = append(calls, done)
	}

	if _, err := RecognizePages(context.Background(), &fakeEngine{}, makeInputs(3), 2, onPage); err != nil {
		t.Fatal(err)
	}

	if len(calls) != 4 {
		t.Fatalf("got %d progress calls, want 4 (announcement + 3 pages)", len(calls))
	}
	if calls[0] != 0 {
		t.Errorf("first call done = %d, want 0 announcement", calls[0])
	}
	seen := make(map[int]bool)
	for _, done := range calls[1:] {
		seen[done] = true
	}
	for i := 1; i <= 3; i++ {
		if !seen[i] {
			t.Errorf("missing progress call with done = %d", i)
		}
	}
}

func TestRecognizePages_Error(t *testing.T) {
	boom := errors.New("engine exploded")
	engine := &fakeEngine{fail: map[int]error{1: boom}}

	_, err := RecognizePages(context.Background(), engine, makeInputs(3), 1, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapped engine error", err)
	}
	if !strings.Contains(err.Error(), "page 2") {
		t.Errorf("error should name the failing page: %v", err)
	}
}

func TestRecognizePages_Empty(t *testing.T) {
	announced := false
	results, err := RecognizePages(context.Background(), &fakeEngine{}, nil, 0, func(done, total int) {
		if done == 0 && total == 0 {
			announced = true
		}
	})
	if err != nil || results != nil {
		t.Errorf("empty input: results=%v err=%v", results, err)
	}
	if !announced {
		t.Error("empty input should still announce totals")
	}
}

func TestRecognizePages_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := &fakeEngine{delays: map[int]time.Duration{0: time.Second}}
	_, err := RecognizePages(ctx, engine, makeInputs(1), 1, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
