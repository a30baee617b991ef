package path

import "time"

// SearchStats describes one A* run.
type SearchStats struct {
	Expanded int // nodes popped and expanded
	Pushed   int // frontier pushes, including superseded entries
	Found    bool
	Cost     int
	Length   int
	Duration time.Duration
}

// Observer receives statistics after every search. Implementations must be
// safe for concurrent use when searches run in a Batch.
type Observer interface {
	ObserveSearch(SearchStats)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(SearchStats)

func (f ObserverFunc) ObserveSearch(s SearchStats) { f(s) }

// NopObserver discards statistics.
type NopObserver struct{}

func (NopObserver) ObserveSearch(SearchStats) {}
