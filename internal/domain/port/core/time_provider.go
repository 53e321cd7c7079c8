package core

import "time"

// TimeProvider abstracts the clock so record timestamps are testable
type TimeProvider interface {
	// Now returns the current time
	Now() time.Time
}
