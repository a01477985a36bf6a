package sink

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dev-jwshin/testswag/internal/fileutil"
	"github.com/dev-jwshin/testswag/spec"
)

// Sink abstracts persistence of accumulated specs across process
// boundaries.
type Sink interface {
	// Store records the full accumulated snapshot. Each call is an
	// authoritative replacement of the previous one, never an append.
	Store(specs []*spec.ApiSpec) error

	// Load reads the persisted snapshot. A missing or malformed store
	// yields zero specs and no error.
	Load() ([]*spec.ApiSpec, error)

	// Flush synchronously persists any pending snapshot. Hosts must call
	// it before relying on persisted state.
	Flush() error

	// Remove deletes the persisted snapshot. Removing a consumed store
	// has no side effects.
	Remove() error
}

// specFilePrefix namespaces collected spec files in shared directories.
const specFilePrefix = "testswag-specs"

// defaultDebounce batches bursts of Store calls into one write.
const defaultDebounce = 100 * time.Millisecond

// SpecPath returns the spec file path for one (directory, working
// directory, pid) combination. The working-directory hash keeps parallel
// runs of different projects apart; the pid keeps parallel runs of the
// same project apart.
func SpecPath(dir, workdir string, pid int) string {
	sum := sha1.Sum([]byte(workdir))
	name := fmt.Sprintf("%s-%s-%d.json", specFilePrefix, hex.EncodeToString(sum[:])[:10], pid)
	return filepath.Join(dir, name)
}

// Glob returns every spec file in dir written for the given working
// directory, across all pids. Used by a generation pass to merge
// multi-process test runs.
func Glob(dir, workdir string) ([]string, error) {
	sum := sha1.Sum([]byte(workdir))
	pattern := fmt.Sprintf("%s-%s-*.json", specFilePrefix, hex.EncodeToString(sum[:])[:10])
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("sink: failed to glob spec files: %w", err)
	}
	return matches, nil
}

// FileSink persists specs to a single JSON file with debounced writes.
// It is safe for concurrent use.
type FileSink struct {
	mu       sync.Mutex
	path     string
	logger   spec.Logger
	debounce time.Duration
	timer    *time.Timer
	pending  []byte
	closed   bool
}

// FileOption configures a FileSink.
type FileOption func(*FileSink)

// WithPath sets the spec file path explicitly, overriding the default
// working-directory-and-pid-derived location.
func WithPath(path string) FileOption {
	return func(s *FileSink) {
		s.path = path
	}
}

// WithDir places the spec file in the given directory instead of the
// system temp directory.
func WithDir(dir string) FileOption {
	return func(s *FileSink) {
		wd, err := os.Getwd()
		if err != nil {
			wd = "."
		}
		s.path = SpecPath(dir, wd, os.Getpid())
	}
}

// WithDebounce sets the write debounce interval. Zero makes every Store
// write synchronously.
func WithDebounce(d time.Duration) FileOption {
	return func(s *FileSink) {
		s.debounce = d
	}
}

// WithFileLogger sets the logger. Defaults to spec.NopLogger.
func WithFileLogger(logger spec.Logger) FileOption {
	return func(s *FileSink) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewFileSink creates a file sink. Without options the spec file lives in
// the system temp directory, namespaced by working directory and pid.
func NewFileSink(opts ...FileOption) *FileSink {
	s := &FileSink{
		logger:   spec.NopLogger{},
		debounce: defaultDebounce,
	}
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	s.path = SpecPath(os.TempDir(), wd, os.Getpid())
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the spec file path.
func (s *FileSink) Path() string {
	return s.path
}

// Store implements Sink. The snapshot is serialized immediately but the
// write is deferred by the debounce interval, so declaration bursts cost
// one write, not one per declaration.
func (s *FileSink) Store(specs []*spec.ApiSpec) error {
	data, err := json.Marshal(specs)
	if err != nil {
		return fmt.Errorf("sink: failed to serialize specs: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.pending = data

	if s.debounce <= 0 {
		return s.writeLocked()
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.flushAsync)
	return nil
}

func (s *FileSink) flushAsync() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.pending == nil {
		return
	}
	if err := s.writeLocked(); err != nil {
		s.logger.Error("failed to write spec file", "path", s.path, "error", err)
	}
}

func (s *FileSink) writeLocked() error {
	data := s.pending
	s.pending = nil
	if err := fileutil.EnsureParentDir(s.path); err != nil {
		return fmt.Errorf("sink: failed to create spec directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("sink: failed to write spec file: %w", err)
	}
	return nil
}

// Flush implements Sink: any pending snapshot is written synchronously
// and the debounce timer is cancelled.
func (s *FileSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.pending == nil {
		return nil
	}
	return s.writeLocked()
}

// Load implements Sink. A missing or malformed spec file is "zero specs
// available", not an error.
func (s *FileSink) Load() ([]*spec.ApiSpec, error) {
	s.mu.Lock()
	path := s.path
	s.mu.Unlock()
	return LoadFile(path, s.logger)
}

// Remove implements Sink: pending writes are discarded and the spec file
// deleted. Further Stores are ignored, so a deliberate cleanup cannot
// race a debounced write.
func (s *FileSink) Remove() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = nil
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("sink: failed to remove spec file: %w", err)
	}
	return nil
}

// LoadFile reads one spec file. Missing and malformed files both yield
// zero specs and no error; malformed content is logged.
func LoadFile(path string, logger spec.Logger) ([]*spec.ApiSpec, error) {
	if logger == nil {
		logger = spec.NopLogger{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("sink: failed to read spec file %s: %w", path, err)
	}
	var specs []*spec.ApiSpec
	if err := json.Unmarshal(data, &specs); err != nil {
		logger.Warn("ignoring malformed spec file", "path", path, "error", err)
		return nil, nil
	}
	return specs, nil
}

// LoadAll reads and concatenates every spec file written for the given
// working directory. Order is the glob's lexical file order, preserving
// per-file spec order.
func LoadAll(dir, workdir string, logger spec.Logger) ([]*spec.ApiSpec, error) {
	files, err := Glob(dir, workdir)
	if err != nil {
		return nil, err
	}
	var all []*spec.ApiSpec
	for _, path := range files {
		specs, err := LoadFile(path, logger)
		if err != nil {
			return nil, err
		}
		all = append(all, specs...)
	}
	return all, nil
}
