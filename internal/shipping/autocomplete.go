package shipping

import (
	"context"
	"sync"
	"time"
)

// Autocompleter is an optional injected capability for address lookups.
// When the host supplies none, the widget runs with NoAutocomplete and the
// lookup UI is suppressed entirely.
type Autocompleter interface {
	Lookup(ctx context.Context, query string) ([]AddressSuggestion, error)
}

// NoAutocomplete is the null autocompleter: it is a valid, fully supported
// configuration that never produces suggestions.
type NoAutocomplete struct{}

func (NoAutocomplete) Lookup(ctx context.Context, query string) ([]AddressSuggestion, error) {
	return nil, nil
}

// DefaultDebounce is the pause after the last keystroke before a lookup fires.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer coalesces keystrokes into at most one in-flight lookup and
// discards results that arrive after a newer keystroke has superseded them.
// An out-of-order response must never overwrite fresher results.
type Debouncer struct {
	mu     sync.Mutex
	ac     Autocompleter
	delay  time.Duration
	seq    uint64
	timer  *time.Timer
	onDone func(query string, suggestions []AddressSuggestion, err error)
}

// NewDebouncer wraps an autocompleter. A nil autocompleter yields a debouncer
// whose Query is a no-op. onDone is invoked with the results of each lookup
// that is still current when it completes.
func NewDebouncer(ac Autocompleter, delay time.Duration, onDone func(string, []AddressSuggestion, error)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{ac: ac, delay: delay, onDone: onDone}
}

// Enabled reports whether an autocompleter is configured.
func (d *Debouncer) Enabled() bool {
	if d.ac == nil {
		return false
	}
	_, null := d.ac.(NoAutocomplete)
	return !null
}

// Query schedules a lookup for the given text, superseding any pending or
// in-flight lookup. Blank queries cancel without looking anything up.
func (d *Debouncer) Query(ctx context.Context, query string) {
	if !d.Enabled() {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	if d.timer != nil {
		d.timer.Stop()
	}
	if query == "" {
		return
	}

	seq := d.seq
	d.timer = time.AfterFunc(d.delay, func() {
		suggestions, err := d.ac.Lookup(ctx, query)

		d.mu.Lock()
		stale := seq != d.seq
		d.mu.Unlock()
		if stale {
			return
		}
		if d.onDone != nil {
			d.onDone(query, suggestions, err)
		}
	})
}

// Cancel drops any pending lookup and marks in-flight responses stale.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
