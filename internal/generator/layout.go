package generator

import "fmt"

// Layout describes how the four snowflake fields share the 63 usable bits
// of a signed 64-bit id: timestamp | datacenter | worker | sequence, most
// significant first. The widths must sum to at most 63 so packed ids stay
// non-negative.
type Layout struct {
	TimestampBits  uint
	DatacenterBits uint
	WorkerBits     uint
	SequenceBits   uint
}

// DefaultLayout is the classic 41/5/5/12 snowflake split: ~69 years of
// millisecond timestamps, 32 datacenters, 32 workers each, 4096 ids per
// worker per millisecond.
func DefaultLayout() Layout {
	return Layout{
		TimestampBits:  41,
		DatacenterBits: 5,
		WorkerBits:     5,
		SequenceBits:   12,
	}
}

func (l Layout) validate() error {
	for _, f := range []struct {
		name string
		bits uint
	}{
		{"timestamp", l.TimestampBits},
		{"datacenter", l.DatacenterBits},
		{"worker", l.WorkerBits},
		{"sequence", l.SequenceBits},
	} {
		if f.bits < 1 {
			return fmt.Errorf("%w: %s bit width must be at least 1", ErrInvalidConfig, f.name)
		}
	}
	if total := l.TimestampBits + l.DatacenterBits + l.WorkerBits + l.SequenceBits; total > 63 {
		return fmt.Errorf("%w: bit widths sum to %d, must not exceed 63", ErrInvalidConfig, total)
	}
	return nil
}

// MaxDatacenterID returns the largest datacenter id the layout can hold.
func (l Layout) MaxDatacenterID() int64 { return (1 << l.DatacenterBits) - 1 }

// MaxWorkerID returns the largest worker id the layout can hold.
func (l Layout) MaxWorkerID() int64 { return (1 << l.WorkerBits) - 1 }

// MaxSequence returns the largest per-millisecond sequence value.
func (l Layout) MaxSequence() int64 { return (1 << l.SequenceBits) - 1 }

func (l Layout) workerShift() uint     { return l.SequenceBits }
func (l Layout) datacenterShift() uint { return l.SequenceBits + l.WorkerBits }
func (l Layout) timestampShift() uint  { return l.SequenceBits + l.WorkerBits + l.DatacenterBits }

// Pack composes the four fields into a single id. Callers must ensure each
// value fits its declared width; sequence wraparound and id validation at
// construction take care of that, so Pack itself stays a pure shift-and-or.
func (l Layout) Pack(elapsedMs, datacenterID, workerID, sequence int64) int64 {
	return elapsedMs<<l.timestampShift() |
		datacenterID<<l.datacenterShift() |
		workerID<<l.workerShift() |
		sequence
}

// Fields holds the components recovered from a packed id.
type Fields struct {
	ElapsedMs    int64
	DatacenterID int64
	WorkerID     int64
	Sequence     int64
}

// Unpack splits a packed id back into its fields. It is the exact inverse of
// Pack for any tuple whose values fit the layout.
func (l Layout) Unpack(id int64) Fields {
	return Fields{
		ElapsedMs:    (id >> l.timestampShift()) & ((1 << l.TimestampBits) - 1),
		DatacenterID: (id >> l.datacenterShift()) & l.MaxDatacenterID(),
		WorkerID:     (id >> l.workerShift()) & l.MaxWorkerID(),
		Sequence:     id & l.MaxSequence(),
	}
}
