package shipping

import (
	"context"
	"sync"
	"testing"
	"time"
)

// recordingAutocompleter serves canned suggestions with a per-query delay so
// tests can force out-of-order completions.
type recordingAutocompleter struct {
	mu      sync.Mutex
	delays  map[string]time.Duration
	lookups []string
}

func (r *recordingAutocompleter) Lookup(ctx context.Context, query string) ([]AddressSuggestion, error) {
	r.mu.Lock()
	r.lookups = append(r.lookups, query)
	delay := r.delays[query]
	r.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	return []AddressSuggestion{{Label: query}}, nil
}

func (r *recordingAutocompleter) lookupCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.lookups)
}

func collectResults() (*sync.Mutex, *[]string, func(string, []AddressSuggestion, error)) {
	var mu sync.Mutex
	var got []string
	return &mu, &got, func(query string, _ []AddressSuggestion, _ error) {
		mu.Lock()
		got = append(got, query)
		mu.Unlock()
	}
}

func TestDebouncerCoalescesKeystrokes(t *testing.T) {
	t.Parallel()

	ac := &recordingAutocompleter{}
	mu, got, onDone := collectResults()
	d := NewDebouncer(ac, 20*time.Millisecond, onDone)

	ctx := context.Background()
	d.Query(ctx, "1")
	d.Query(ctx, "1 M")
	d.Query(ctx, "1 Main")

	time.Sleep(100 * time.Millisecond)

	if n := ac.lookupCount(); n != 1 {
		t.Errorf("expected a single coalesced lookup, got %d", n)
	}
	mu.Lock()
	defer mu.Unlock()
	if len(*got) != 1 || (*got)[0] != "1 Main" {
		t.Errorf("expected only the final query to complete, got %v", *got)
	}
}

func TestDebouncerDiscardsStaleResponse(t *testing.T) {
	t.Parallel()

	// The first lookup is slow and returns after the second has been issued;
	// its result must be dropped, not applied over the fresher one.
	ac := &recordingAutocompleter{delays: map[string]time.Duration{"slow": 80 * time.Millisecond}}
	mu, got, onDone := collectResults()
	d := NewDebouncer(ac, 5*time.Millisecond, onDone)

	ctx := context.Background()
	d.Query(ctx, "slow")
	time.Sleep(20 * time.Millisecond) // let the slow lookup start
	d.Query(ctx, "fresh")

	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(*got) != 1 || (*got)[0] != "fresh" {
		t.Errorf("stale response should be discarded, got %v", *got)
	}
}

func TestDebouncerBlankQueryCancels(t *testing.T) {
	t.Parallel()

	ac := &recordingAutocompleter{}
	_, got, onDone := collectResults()
	d := NewDebouncer(ac, 10*time.Millisecond, onDone)

	ctx := context.Background()
	d.Query(ctx, "1 Main")
	d.Query(ctx, "")

	time.Sleep(60 * time.Millisecond)

	if n := ac.lookupCount(); n != 0 {
		t.Errorf("cleared input should not look anything up, got %d lookups", n)
	}
	if len(*got) != 0 {
		t.Errorf("no results expected, got %v", *got)
	}
}

func TestNoAutocompleteIsValidConfiguration(t *testing.T) {
	t.Parallel()

	d := NewDebouncer(NoAutocomplete{}, 0, func(string, []AddressSuggestion, error) {
		t.Error("null autocompleter must never produce results")
	})

	if d.Enabled() {
		t.Error("null autocompleter should report disabled")
	}
	d.Query(context.Background(), "1 Main")
	time.Sleep(50 * time.Millisecond)
}
