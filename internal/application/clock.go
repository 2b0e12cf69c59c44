package application

import "time"

// Clock abstracts time so prompts and fallback timestamps can be tested.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock backed by time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
