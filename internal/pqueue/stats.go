package pqueue

import "time"

// Version is stamped into every INFO response. It is a compile-time
// constant, matching the Rust original's use of env!("CARGO_PKG_VERSION").
const Version = "0.1.0"

// Stats is a point-in-time snapshot of the queue's counters.
type Stats struct {
	Uptime  time.Duration
	Version string
	Updates int64
	Items   int64
	Pools   int64
}

// stats is the live, lock-guarded counter set embedded in Index. updates
// counts every accepted Update (insert or mutate); items and pools track
// the live sizes of ById and ByScore respectively and must be kept in sync
// with the maps as a postcondition of every mutator.
type stats struct {
	startTime time.Time
	updates   int64
	items     int64
	pools     int64
}

func newStats() stats {
	return stats{startTime: time.Now()}
}

func (s *stats) snapshot() Stats {
	return Stats{
		Uptime:  time.Since(s.startTime),
		Version: Version,
		Updates: s.updates,
		Items:   s.items,
		Pools:   s.pools,
	}
}
