package cliffgo

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/cliffgo/cayley"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    builds        prometheus.Counter
//	    buildDuration prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordTableBuild(sig string, blades int, d time.Duration, err error) {
//	    p.builds.Inc()
//	    p.buildDuration.Observe(d.Seconds())
//	}
type MetricsCollector interface {
	// RecordTableBuild is called after a Cayley table had to be built.
	// blades is the blade count of the signature, err is nil if successful.
	RecordTableBuild(sig string, blades int, duration time.Duration, err error)

	// RecordTableHit is called when a resident table was reused.
	RecordTableHit(sig string)

	// RecordTableLoad is called after a table snapshot was loaded.
	RecordTableLoad(sig string, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordTableBuild(string, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordTableHit(string)                              {}
func (NoopMetricsCollector) RecordTableLoad(string, time.Duration, error)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	BuildCount      atomic.Int64
	BuildErrors     atomic.Int64
	BuildTotalNanos atomic.Int64
	BuildBlades     atomic.Int64
	HitCount        atomic.Int64
	LoadCount       atomic.Int64
	LoadErrors      atomic.Int64
	LoadTotalNanos  atomic.Int64
}

// RecordTableBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTableBuild(_ string, blades int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
		return
	}
	b.BuildBlades.Add(int64(blades))
}

// RecordTableHit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTableHit(string) {
	b.HitCount.Add(1)
}

// RecordTableLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTableLoad(_ string, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:    b.BuildCount.Load(),
		BuildErrors:   b.BuildErrors.Load(),
		BuildAvgNanos: avg(b.BuildTotalNanos.Load(), b.BuildCount.Load()),
		BuildBlades:   b.BuildBlades.Load(),
		HitCount:      b.HitCount.Load(),
		LoadCount:     b.LoadCount.Load(),
		LoadErrors:    b.LoadErrors.Load(),
		LoadAvgNanos:  avg(b.LoadTotalNanos.Load(), b.LoadCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount    int64
	BuildErrors   int64
	BuildAvgNanos int64
	BuildBlades   int64
	HitCount      int64
	LoadCount     int64
	LoadErrors    int64
	LoadAvgNanos  int64
}

// MetricsObserver adapts mc to a registry observer, so that every build,
// hit and load of a registry is recorded regardless of which algebra
// triggered it:
//
//	reg := cayley.NewRegistry(cayley.WithObserver(cliffgo.MetricsObserver(mc)))
func MetricsObserver(mc MetricsCollector) cayley.Observer {
	if mc == nil {
		mc = NoopMetricsCollector{}
	}
	return metricsObserver{mc: mc}
}

type metricsObserver struct {
	mc MetricsCollector
}

func (o metricsObserver) TableBuilt(key string, blades uint64, d time.Duration, err error) {
	o.mc.RecordTableBuild(key, int(blades), d, err)
}

func (o metricsObserver) TableHit(key string) { o.mc.RecordTableHit(key) }

func (o metricsObserver) TableLoaded(key string, d time.Duration, err error) {
	o.mc.RecordTableLoad(key, d, err)
}
