package generator

import "time"

// Clock supplies the current time in milliseconds since the Unix epoch.
// Injected so tests can hold, step, or rewind time deterministically.
type Clock interface {
	NowMillis() int64
}

type systemClock struct{}

func (systemClock) NowMillis() int64 { return time.Now().UnixMilli() }

// SystemClock returns the wall-clock-backed Clock used by default.
func SystemClock() Clock { return systemClock{} }
