package collector

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dev-jwshin/testswag/sink"
	"github.com/dev-jwshin/testswag/spec"
)

// Collector accumulates finalized ApiSpec snapshots for one documentation
// run. It is safe for concurrent use.
type Collector struct {
	mu     sync.Mutex
	id     string
	logger spec.Logger
	out    sink.Sink
	specs  []*spec.ApiSpec
	index  map[string]int
}

// Option configures a Collector.
type Option func(*Collector)

// WithLogger sets the logger. Defaults to spec.NopLogger.
func WithLogger(logger spec.Logger) Option {
	return func(c *Collector) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSink attaches a sink that receives the accumulated snapshot after
// every accepted submission, making the collection transportable to a
// separate generation process. The sink is expected to debounce writes
// itself; call its Flush before relying on persisted state.
func WithSink(s sink.Sink) Option {
	return func(c *Collector) {
		c.out = s
	}
}

// New creates an empty Collector. Each collector carries a session id
// used in log attributes, so independent accumulation sessions in one
// process are distinguishable.
func New(opts ...Option) *Collector {
	c := &Collector{
		id:     uuid.NewString(),
		logger: spec.NopLogger{},
		index:  make(map[string]int),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("session", c.id)
	return c
}

var (
	defaultOnce      sync.Once
	defaultCollector *Collector
)

// Default returns the process-wide collector used by contexts created
// without an explicit instance.
func Default() *Collector {
	defaultOnce.Do(func() {
		defaultCollector = New()
	})
	return defaultCollector
}

// ID returns the collector's session id.
func (c *Collector) ID() string { return c.id }

// Submit accumulates one snapshot. Snapshots missing path or method are
// silently dropped. When a snapshot for the same identity key already
// exists, the new one replaces it only if its serialized form is strictly
// larger; otherwise the existing one stands. Returns whether the snapshot
// was accepted.
//
// Sink delivery happens under the collector lock so concurrent
// submissions cannot reach the sink out of order: the last Store always
// carries the newest accumulated state. The sink debounces the actual
// disk write, so Store itself is cheap.
func (c *Collector) Submit(s *spec.ApiSpec) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	accepted := c.submitLocked(s)
	if accepted && c.out != nil {
		if err := c.out.Store(c.exportLocked()); err != nil {
			c.logger.Error("failed to persist spec snapshot", "error", err)
		}
	}
	return accepted
}

func (c *Collector) submitLocked(s *spec.ApiSpec) bool {
	if s == nil || !s.Complete() {
		c.logger.Debug("dropping incomplete spec snapshot")
		return false
	}

	key := s.Key()
	pos, seen := c.index[key]
	if !seen {
		c.index[key] = len(c.specs)
		c.specs = append(c.specs, s.Clone())
		c.logger.Debug("spec accumulated", "path", s.Path, "method", s.Method)
		return true
	}

	// Size-based conflict resolution: the richer serialized form wins.
	// Replacement keeps the original position so output order is stable.
	if s.Size() > c.specs[pos].Size() {
		c.specs[pos] = s.Clone()
		c.logger.Debug("spec replaced with richer snapshot", "path", s.Path, "method", s.Method)
		return true
	}
	return false
}

// Specs returns the accumulated snapshots in submission order.
func (c *Collector) Specs() []*spec.ApiSpec {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.exportLocked()
}

// Len returns the number of accumulated snapshots.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.specs)
}

// Clear empties the collection and the dedup index. Use it to reset state
// between independent documentation runs.
func (c *Collector) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.specs = nil
	c.index = make(map[string]int)
	c.logger.Debug("collector cleared")
}

// ExportSnapshot returns a serializable copy of the accumulated specs.
func (c *Collector) ExportSnapshot() []*spec.ApiSpec {
	return c.Specs()
}

// ImportSnapshot replaces the current collection with the given specs.
// The dedup index is cleared first and repopulated through the same
// key-based reconciliation as Submit, so duplicate keys inside the import
// resolve deterministically. The import is an authoritative replacement,
// not a merge.
func (c *Collector) ImportSnapshot(specs []*spec.ApiSpec) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.specs = nil
	c.index = make(map[string]int)
	for _, s := range specs {
		c.submitLocked(s)
	}
	c.logger.Debug("snapshot imported", "specs", len(c.specs))
}

func (c *Collector) exportLocked() []*spec.ApiSpec {
	out := make([]*spec.ApiSpec, len(c.specs))
	for i, s := range c.specs {
		out[i] = s.Clone()
	}
	return out
}
