package cayley

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/hupe1980/cliffgo/internal/resource"
	"github.com/hupe1980/cliffgo/signature"
)

// Observer receives registry events. Implementations must be safe for
// concurrent use.
type Observer interface {
	TableBuilt(key string, blades uint64, d time.Duration, err error)
	TableHit(key string)
	TableLoaded(key string, d time.Duration, err error)
}

type noopObserver struct{}

func (noopObserver) TableBuilt(string, uint64, time.Duration, error) {}
func (noopObserver) TableHit(string)                                 {}
func (noopObserver) TableLoaded(string, time.Duration, error)        {}

// RegistryOption configures a Registry.
type RegistryOption func(*registryOptions)

type registryOptions struct {
	resource resource.Config
	workers  int
	logger   *slog.Logger
	observer Observer
}

// WithMemoryLimit caps the bytes held by all tables of the registry.
// 0 means unlimited.
func WithMemoryLimit(bytes int64) RegistryOption {
	return func(o *registryOptions) {
		o.resource.MemoryLimitBytes = bytes
	}
}

// WithMaxWorkers sets the number of goroutines per table build.
func WithMaxWorkers(n int) RegistryOption {
	return func(o *registryOptions) {
		o.workers = n
	}
}

// WithMaxBuilds sets how many distinct signatures may build at once.
func WithMaxBuilds(n int) RegistryOption {
	return func(o *registryOptions) {
		o.resource.MaxBuilders = int64(n)
	}
}

// WithIORate throttles snapshot loads to bytesPerSec.
func WithIORate(bytesPerSec int64) RegistryOption {
	return func(o *registryOptions) {
		o.resource.IOLimitBytesPerSec = bytesPerSec
	}
}

// WithRegistryLogger sets the logger for build, load and evict events.
func WithRegistryLogger(l *slog.Logger) RegistryOption {
	return func(o *registryOptions) {
		o.logger = l
	}
}

// WithObserver sets the registry event observer.
func WithObserver(obs Observer) RegistryOption {
	return func(o *registryOptions) {
		o.observer = obs
	}
}

// Registry memoizes one Table per signature key.
type Registry struct {
	mu     sync.RWMutex
	tables map[string]*Table
	group  singleflight.Group

	rc       *resource.Controller
	workers  int
	logger   *slog.Logger
	observer Observer
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	o := registryOptions{
		resource: resource.Config{MaxBuilders: 2},
		logger:   slog.New(slog.DiscardHandler),
		observer: noopObserver{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	if o.observer == nil {
		o.observer = noopObserver{}
	}

	return &Registry{
		tables:   make(map[string]*Table),
		rc:       resource.NewController(o.resource),
		workers:  o.workers,
		logger:   o.logger,
		observer: o.observer,
	}
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry()
})

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry { return defaultRegistry() }

// Get returns the table of sig, building it on first use.
func (r *Registry) Get(ctx context.Context, sig signature.Signature) (*Table, error) {
	t, _, err := r.Fetch(ctx, sig)
	return t, err
}

// Fetch is Get that also reports whether this call ran the build.
//
// Concurrent first requests for one signature share a single build, which
// runs under the context of the caller that started it.
func (r *Registry) Fetch(ctx context.Context, sig signature.Signature) (*Table, bool, error) {
	if err := CheckSize(sig); err != nil {
		return nil, false, err
	}
	key := sig.Key()

	if t := r.lookup(key); t != nil {
		r.observer.TableHit(key)
		return t, false, nil
	}

	// Only the caller whose function runs sees built set.
	built := false
	v, err, _ := r.group.Do(key, func() (any, error) {
		if t := r.lookup(key); t != nil {
			return t, nil
		}
		built = true
		return r.build(ctx, sig)
	})
	if err != nil {
		return nil, built, err
	}
	return v.(*Table), built, nil
}

func (r *Registry) lookup(key string) *Table {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tables[key]
}

func (r *Registry) build(ctx context.Context, sig signature.Signature) (*Table, error) {
	key := sig.Key()
	if err := r.rc.AcquireBuilder(ctx); err != nil {
		return nil, err
	}
	defer r.rc.ReleaseBuilder()

	start := time.Now()
	t, err := Build(ctx, sig, WithWorkers(r.workers), WithController(r.rc))
	d := time.Since(start)
	r.observer.TableBuilt(key, sig.BladeCount(), d, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "table build failed",
			"signature", key,
			"error", err,
		)
		return nil, err
	}
	r.logger.DebugContext(ctx, "table built",
		"signature", key,
		"blades", t.BladeCount(),
		"bytes", t.SizeBytes(),
		"duration", d,
	)

	return r.install(t), nil
}

// install publishes t unless a table for its key is already present, in
// which case t is released and the existing table is returned.
func (r *Registry) install(t *Table) *Table {
	key := t.sig.Key()
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.tables[key]; ok {
		t.Release()
		return existing
	}
	r.tables[key] = t
	return t
}

// Load reads a snapshot from rd and installs its table. If the signature is
// already present the snapshot is discarded and the resident table returned.
func (r *Registry) Load(ctx context.Context, rd io.Reader, opts ...SnapshotOption) (*Table, error) {
	start := time.Now()
	opts = append([]SnapshotOption{withController(r.rc)}, opts...)
	t, err := ReadSnapshot(ctx, rd, opts...)
	d := time.Since(start)
	if err != nil {
		r.observer.TableLoaded("", d, err)
		r.logger.ErrorContext(ctx, "table load failed", "error", err)
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	key := t.sig.Key()
	r.observer.TableLoaded(key, d, nil)
	r.logger.InfoContext(ctx, "table loaded",
		"signature", key,
		"blades", t.BladeCount(),
		"duration", d,
	)
	return r.install(t), nil
}

// Evict drops the table of sig and returns its memory to the budget.
// Algebras holding the table keep working; only the accounting changes.
func (r *Registry) Evict(sig signature.Signature) bool {
	key := sig.Key()
	r.mu.Lock()
	t, ok := r.tables[key]
	delete(r.tables, key)
	r.mu.Unlock()
	if !ok {
		return false
	}
	t.Release()
	r.logger.Info("table evicted", "signature", key, "bytes", t.SizeBytes())
	return true
}

// Contains reports whether the table of sig is resident.
func (r *Registry) Contains(sig signature.Signature) bool {
	return r.lookup(sig.Key()) != nil
}

// Keys returns the resident signature keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	keys := make([]string, 0, len(r.tables))
	for k := range r.tables {
		keys = append(keys, k)
	}
	r.mu.RUnlock()
	slices.Sort(keys)
	return keys
}

// Len returns the number of resident tables.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tables)
}

// MemoryUsage returns the bytes charged by resident tables.
func (r *Registry) MemoryUsage() int64 { return r.rc.MemoryUsage() }

// MemoryLimit returns the table memory cap in bytes, 0 if unlimited.
func (r *Registry) MemoryLimit() int64 { return r.rc.MemoryLimit() }

// MaxBuilds returns how many distinct signatures may build at once.
func (r *Registry) MaxBuilds() int { return r.rc.MaxBuilders() }
