package generator

import "errors"

var (
	// ErrInvalidConfig is returned from New when datacenter id, worker id,
	// epoch, or the bit layout is out of range. Retrying without corrected
	// values cannot succeed.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrClockBackwards is returned from generation when the clock source
	// reports a time earlier than the last recorded timestamp. Generator
	// state is left untouched so a later call, once the clock is sane again,
	// behaves as if the failed one never happened. The caller decides
	// whether to retry or alert; retrying here could silently reorder ids.
	ErrClockBackwards = errors.New("clock moved backwards")
)
