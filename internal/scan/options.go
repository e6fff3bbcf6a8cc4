package scan

import (
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultDepthCap bounds fan-out: the walker schedules a subdirectory onto
// another lane only from a directory whose depth is below this cap.
const DefaultDepthCap = 8

// DefaultBatchSize is the number of directory entries accumulated before a
// batch is drained and classified.
const DefaultBatchSize = 64

// Config holds the scan-wide, immutable-after-start settings recognized
// by the core.
type Config struct {
	UseParallel              bool
	MaxThreads               uint
	DepthCap                 uint
	BatchSize                uint
	RootOnly                 bool
	IncludeDirectorySelfSize bool
	UseAllocatedSize         bool

	// FirmlinkMap and DataRoots override the Boundary Oracle's default
	// table; see the With* Option functions below. Left nil, the package
	// default applies; a non-nil empty value is used as given.
	FirmlinkMap map[string]string
	DataRoots   []string

	logger       *logrus.Entry
	progressHook func(filesScanned, bytesScanned int64)
	progressTick time.Duration
}

// Option customizes a Config beyond the four required Scan parameters,
// so ambient (logger, progress) and domain (firmlink overrides) knobs
// don't have to be threaded through every call site.
type Option func(*Config)

// WithMaxThreads overrides the worker pool size. Zero means auto
// (runtime.NumCPU(), floor of one).
func WithMaxThreads(n uint) Option {
	return func(c *Config) { c.MaxThreads = n }
}

// WithSequential forces the pool size to one lane.
func WithSequential() Option {
	return func(c *Config) { c.UseParallel = false }
}

// WithDepthCap overrides the fan-out depth cap.
func WithDepthCap(n uint) Option {
	return func(c *Config) { c.DepthCap = n }
}

// WithBatchSize overrides the directory-entry batch size.
func WithBatchSize(n uint) Option {
	return func(c *Config) { c.BatchSize = n }
}

// WithFirmlinkMap overrides the Boundary Oracle's firmlink table.
func WithFirmlinkMap(m map[string]string) Option {
	return func(c *Config) { c.FirmlinkMap = m }
}

// WithDataRoots overrides the Boundary Oracle's data-root list.
func WithDataRoots(roots []string) Option {
	return func(c *Config) { c.DataRoots = roots }
}

// WithLogger attaches a structured logger; callers that don't need one get
// a disabled logrus.Logger (no allocation cost beyond the no-op entry).
func WithLogger(log *logrus.Entry) Option {
	return func(c *Config) { c.logger = log }
}

// WithProgress registers a callback invoked periodically with running
// totals while the scan is in flight.
func WithProgress(interval time.Duration, hook func(filesScanned, bytesScanned int64)) Option {
	return func(c *Config) {
		c.progressHook = hook
		c.progressTick = interval
	}
}

func defaultConfig() Config {
	return Config{
		UseParallel:      true,
		MaxThreads:       0,
		DepthCap:         DefaultDepthCap,
		BatchSize:        DefaultBatchSize,
		UseAllocatedSize: true,
		logger:           logrus.NewEntry(discardLogger()),
	}
}

// resolvedThreads returns the effective pool size: forced to one when
// parallelism is disabled, otherwise MaxThreads or runtime.NumCPU(),
// floored at one.
func (c Config) resolvedThreads() int {
	if !c.UseParallel {
		return 1
	}

	if c.MaxThreads > 0 {
		return int(c.MaxThreads)
	}

	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}

	return n
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(discardWriter{})

	return log
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
