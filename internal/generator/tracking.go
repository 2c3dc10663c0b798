package generator

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/musicallyvk/TrackingNumberService/internal/countries"
)

const (
	// DefaultEpoch is the original Twitter snowflake epoch
	// (2010-11-04T01:42:54.657Z) in unix milliseconds.
	DefaultEpoch = 1288834974657

	// DefaultSuffixLength is the length of the random tracking-number tail.
	DefaultSuffixLength = 5

	// uniqueModulus truncates the packed id to the 6 decimal digits shown in
	// the tracking number. The truncation is lossy; uniqueness of the full
	// tracking number comes from the packed id, not from this projection.
	uniqueModulus = 1_000_000
)

// Config configures a TrackingGenerator. Zero values fall back to defaults,
// except DatacenterID and WorkerID which are validated as given.
type Config struct {
	DatacenterID int64
	WorkerID     int64
	Epoch        int64  // custom epoch in unix ms; 0 means DefaultEpoch
	SuffixLength int    // 0 means DefaultSuffixLength
	Layout       Layout // zero value means DefaultLayout
	Clock        Clock  // nil means the system clock
	Suffix       SuffixSource
	Countries    *countries.Table
}

// TrackingGenerator produces tracking numbers built from a snowflake-style
// 64-bit core. A single instance is safe for concurrent use; uniqueness
// across instances relies on distinct datacenter/worker id assignment.
type TrackingGenerator struct {
	mu            sync.Mutex
	sequence      int64
	lastTimestamp int64 // unix ms of the last generated id, -1 before the first

	layout       Layout
	epoch        int64
	datacenterID int64
	workerID     int64
	suffixLen    int
	clock        Clock
	suffix       SuffixSource
	countries    *countries.Table
}

// New validates cfg and returns a ready generator.
func New(cfg Config) (*TrackingGenerator, error) {
	layout := cfg.Layout
	if layout == (Layout{}) {
		layout = DefaultLayout()
	}
	if err := layout.validate(); err != nil {
		return nil, err
	}

	if cfg.DatacenterID < 0 || cfg.DatacenterID > layout.MaxDatacenterID() {
		return nil, fmt.Errorf("%w: datacenter id must be between 0 and %d, got %d",
			ErrInvalidConfig, layout.MaxDatacenterID(), cfg.DatacenterID)
	}
	if cfg.WorkerID < 0 || cfg.WorkerID > layout.MaxWorkerID() {
		return nil, fmt.Errorf("%w: worker id must be between 0 and %d, got %d",
			ErrInvalidConfig, layout.MaxWorkerID(), cfg.WorkerID)
	}

	epoch := cfg.Epoch
	if epoch == 0 {
		epoch = DefaultEpoch
	}
	suffixLen := cfg.SuffixLength
	if suffixLen == 0 {
		suffixLen = DefaultSuffixLength
	}
	if suffixLen < 0 {
		return nil, fmt.Errorf("%w: suffix length must be positive, got %d", ErrInvalidConfig, suffixLen)
	}

	clock := cfg.Clock
	if clock == nil {
		clock = SystemClock()
	}
	if now := clock.NowMillis(); now < epoch {
		return nil, fmt.Errorf("%w: epoch %d is in the future (now %d)", ErrInvalidConfig, epoch, now)
	}

	suffix := cfg.Suffix
	if suffix == nil {
		suffix = NanoIDSuffix()
	}
	table := cfg.Countries
	if table == nil {
		table = countries.Default()
	}

	return &TrackingGenerator{
		lastTimestamp: -1,
		layout:        layout,
		epoch:         epoch,
		datacenterID:  cfg.DatacenterID,
		workerID:      cfg.WorkerID,
		suffixLen:     suffixLen,
		clock:         clock,
		suffix:        suffix,
		countries:     table,
	}, nil
}

// NextID returns the raw packed 64-bit id without the tracking-number
// dressing. Useful when callers only need the sortable numeric core.
func (g *TrackingGenerator) NextID() (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.nextLocked()
}

// Generate returns a tracking number of the form
// {countryCode}-{localAddress}-{uniquePart}-{randomPart}. Unmapped country
// names become "XX"; localAddress passes through verbatim.
func (g *TrackingGenerator) Generate(country, localAddress string) (string, error) {
	g.mu.Lock()
	id, err := g.nextLocked()
	g.mu.Unlock()
	if err != nil {
		return "", err
	}
	// Formatting touches no shared state, so it runs outside the lock.
	return g.format(id, country, localAddress)
}

// GenerateBatch returns count tracking numbers for the same country and
// address, holding the lock once across all id draws.
func (g *TrackingGenerator) GenerateBatch(country, localAddress string, count int) ([]string, error) {
	ids := make([]int64, 0, count)
	g.mu.Lock()
	for i := 0; i < count; i++ {
		id, err := g.nextLocked()
		if err != nil {
			g.mu.Unlock()
			return nil, err
		}
		ids = append(ids, id)
	}
	g.mu.Unlock()

	numbers := make([]string, 0, len(ids))
	for _, id := range ids {
		tn, err := g.format(id, country, localAddress)
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, tn)
	}
	return numbers, nil
}

// nextLocked advances the generator state and packs the next id.
// Must be called with g.mu held.
func (g *TrackingGenerator) nextLocked() (int64, error) {
	now := g.clock.NowMillis()

	if now < g.lastTimestamp {
		return 0, fmt.Errorf("%w: refusing to generate id, current=%d last=%d",
			ErrClockBackwards, now, g.lastTimestamp)
	}

	if now == g.lastTimestamp {
		g.sequence = (g.sequence + 1) & g.layout.MaxSequence()
		if g.sequence == 0 {
			// Sequence space for this millisecond is exhausted. Spin until
			// the clock ticks over, keeping the lock so no other caller can
			// observe a stale timestamp/sequence pair. Bounded by wall-clock
			// progress; yield between reads to avoid starving the scheduler.
			for now <= g.lastTimestamp {
				runtime.Gosched()
				now = g.clock.NowMillis()
			}
		}
	} else {
		g.sequence = 0
	}

	g.lastTimestamp = now

	return g.layout.Pack(now-g.epoch, g.datacenterID, g.workerID, g.sequence), nil
}
