package ports

import "time"

// Clock abstracts time.Now so streak transitions and statistics windows
// are testable against fixed instants
type Clock interface {
	Now() time.Time
}

// SystemClock is the production clock
type SystemClock struct{}

// Now returns the current local time
func (SystemClock) Now() time.Time { return time.Now() }
