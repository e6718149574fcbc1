package dirsize

import "time"

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// ProgressFunc receives the number of entries and bytes seen so far.
type ProgressFunc func(entries, bytes int64)

// progress throttles calls to a ProgressFunc.
// It is driven by the walk itself, so hooks run on the walking goroutine.
type progress struct {
	hook     ProgressFunc
	interval time.Duration
	last     time.Time
	entries  int64
	bytes    int64
}

func newProgress(hook ProgressFunc, interval time.Duration) *progress {
	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	return &progress{hook: hook, interval: interval}
}

// add accounts for one entry and reports if the interval has elapsed.
func (p *progress) add(size uint64) {
	if p == nil || p.hook == nil {
		return
	}

	p.entries++
	p.bytes += int64(size) //nolint:gosec // Sizes originate from int64 values

	if now := time.Now(); now.Sub(p.last) >= p.interval {
		p.last = now
		p.hook(p.entries, p.bytes)
	}
}
