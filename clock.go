package blockbench

import "time"

// Clock is the time source the runner samples around each iteration.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. The returned times carry the monotonic
// reading, so differences between them are not affected by clock changes.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
