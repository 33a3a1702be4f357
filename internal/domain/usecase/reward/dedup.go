package reward

import (
	"sync"
	"time"
)

// DefaultDedupWindow suppresses a repeated trigger for the same subject
// within this trailing interval.
const DefaultDedupWindow = 5 * time.Second

// DedupFilter suppresses reprocessing of a trigger event naming the same
// subject within the window. Only the most recent subject is remembered;
// a different subject always resets the state, so the protection is "same
// subject within window", not a global rate limit.
type DedupFilter struct {
	mu     sync.Mutex
	window time.Duration

	lastSubject string
	lastSeen    time.Time
}

// NewDedupFilter creates a filter with the given window. A non-positive
// window falls back to DefaultDedupWindow.
func NewDedupFilter(window time.Duration) *DedupFilter {
	if window <= 0 {
		window = DefaultDedupWindow
	}
	return &DedupFilter{window: window}
}

// ShouldProcess reports whether the subject should be processed at the
// given instant. On acceptance the subject and timestamp are recorded
// immediately, before any downstream work, so a slow downstream step does
// not let duplicates slip through.
func (f *DedupFilter) ShouldProcess(subject string, now time.Time) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if subject == f.lastSubject && now.Sub(f.lastSeen) < f.window {
		return false
	}

	f.lastSubject = subject
	f.lastSeen = now
	return true
}

// Window returns the configured dedup window
func (f *DedupFilter) Window() time.Duration {
	return f.window
}
