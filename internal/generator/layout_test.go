package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayoutBounds(t *testing.T) {
	l := DefaultLayout()

	assert.Equal(t, int64(31), l.MaxDatacenterID())
	assert.Equal(t, int64(31), l.MaxWorkerID())
	assert.Equal(t, int64(4095), l.MaxSequence())
}

func TestLayoutPackKnownValue(t *testing.T) {
	l := DefaultLayout()

	// Manual shift-and-or with the default 41/5/5/12 widths.
	want := int64(7)<<22 | int64(3)<<17 | int64(5)<<12 | int64(9)
	assert.Equal(t, want, l.Pack(7, 3, 5, 9))

	assert.Zero(t, l.Pack(0, 0, 0, 0))
}

func TestLayoutPackDeterministic(t *testing.T) {
	l := DefaultLayout()
	assert.Equal(t, l.Pack(12345, 1, 2, 3), l.Pack(12345, 1, 2, 3))
}

func TestLayoutUnpackRoundTrip(t *testing.T) {
	layouts := []Layout{
		DefaultLayout(),
		{TimestampBits: 42, DatacenterBits: 4, WorkerBits: 4, SequenceBits: 10},
		{TimestampBits: 39, DatacenterBits: 8, WorkerBits: 8, SequenceBits: 8},
	}

	for _, l := range layouts {
		require.NoError(t, l.validate())

		tuples := []Fields{
			{ElapsedMs: 0, DatacenterID: 0, WorkerID: 0, Sequence: 0},
			{ElapsedMs: 1, DatacenterID: 1, WorkerID: 1, Sequence: 1},
			{ElapsedMs: 1_700_000, DatacenterID: l.MaxDatacenterID(), WorkerID: l.MaxWorkerID(), Sequence: l.MaxSequence()},
		}
		for _, f := range tuples {
			id := l.Pack(f.ElapsedMs, f.DatacenterID, f.WorkerID, f.Sequence)
			assert.GreaterOrEqual(t, id, int64(0), "packed ids must be non-negative")
			assert.Equal(t, f, l.Unpack(id))
		}
	}
}

func TestLayoutValidate(t *testing.T) {
	assert.NoError(t, DefaultLayout().validate())

	err := Layout{TimestampBits: 41, DatacenterBits: 5, WorkerBits: 5, SequenceBits: 13}.validate()
	require.ErrorIs(t, err, ErrInvalidConfig)

	err = Layout{TimestampBits: 41, DatacenterBits: 0, WorkerBits: 5, SequenceBits: 12}.validate()
	require.ErrorIs(t, err, ErrInvalidConfig)

	// 63 bits exactly is the boundary.
	assert.NoError(t, Layout{TimestampBits: 41, DatacenterBits: 5, WorkerBits: 5, SequenceBits: 12}.validate())
}
