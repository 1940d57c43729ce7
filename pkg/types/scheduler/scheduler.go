package scheduler

import "time"

type Scheduler interface {
	Start() error
	Stop()
}

// IntervalRefresh is the default cadence for price-bearing collections.
const IntervalRefresh = time.Minute
