package infrastructure

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// RuntimeMetrics exposes Go runtime health alongside the scoring
// instruments so long batch runs can be watched on the same dashboard.
type RuntimeMetrics struct {
	goroutines metric.Int64Gauge
	heapAlloc  metric.Int64Gauge
	heapSys    metric.Int64Gauge
	gcPause    metric.Float64Histogram
	uptime     metric.Float64Gauge
}

// NewRuntimeMetrics registers the runtime instruments on the given meter.
func NewRuntimeMetrics(meter metric.Meter) (*RuntimeMetrics, error) {
	goroutines, err := meter.Int64Gauge(
		"runtime_goroutines",
		metric.WithDescription("Number of active goroutines"),
	)
	if err != nil {
		return nil, err
	}

	heapAlloc, err := meter.Int64Gauge(
		"runtime_heap_alloc_bytes",
		metric.WithDescription("Bytes of allocated heap objects"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	heapSys, err := meter.Int64Gauge(
		"runtime_heap_sys_bytes",
		metric.WithDescription("Heap memory obtained from the OS"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	gcPause, err := meter.Float64Histogram(
		"runtime_gc_pause_seconds",
		metric.WithDescription("Most recent garbage collection pause"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	uptime, err := meter.Float64Gauge(
		"runtime_uptime_seconds",
		metric.WithDescription("Process uptime in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &RuntimeMetrics{
		goroutines: goroutines,
		heapAlloc:  heapAlloc,
		heapSys:    heapSys,
		gcPause:    gcPause,
		uptime:     uptime,
	}, nil
}

// RuntimeStats holds one runtime snapshot.
type RuntimeStats struct {
	Goroutines  int64
	HeapAlloc   int64
	HeapSys     int64
	GCCount     uint32
	LastGCPause time.Duration
	Uptime      time.Duration
	Timestamp   time.Time
}

// Collect takes a runtime snapshot and records it on the instruments.
func (rm *RuntimeMetrics) Collect(ctx context.Context, startTime time.Time) *RuntimeStats {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	stats := &RuntimeStats{
		Goroutines:  int64(runtime.NumGoroutine()),
		HeapAlloc:   int64(memStats.HeapAlloc),
		HeapSys:     int64(memStats.HeapSys),
		GCCount:     memStats.NumGC,
		LastGCPause: time.Duration(memStats.PauseNs[(memStats.NumGC+255)%256]),
		Uptime:      time.Since(startTime),
		Timestamp:   time.Now(),
	}

	rm.goroutines.Record(ctx, stats.Goroutines)
	rm.heapAlloc.Record(ctx, stats.HeapAlloc)
	rm.heapSys.Record(ctx, stats.HeapSys)
	rm.uptime.Record(ctx, stats.Uptime.Seconds())

	if stats.LastGCPause > 0 {
		rm.gcPause.Record(ctx, stats.LastGCPause.Seconds())
	}

	return stats
}

// RuntimeCollector samples runtime metrics on a fixed interval.
type RuntimeCollector struct {
	metrics   *RuntimeMetrics
	startTime time.Time
	interval  time.Duration
	stopCh    chan struct{}
}

// NewRuntimeCollector creates a collector that samples every interval.
func NewRuntimeCollector(meter metric.Meter, interval time.Duration) (*RuntimeCollector, error) {
	metrics, err := NewRuntimeMetrics(meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create runtime metrics: %w", err)
	}

	return &RuntimeCollector{
		metrics:   metrics,
		startTime: time.Now(),
		interval:  interval,
		stopCh:    make(chan struct{}),
	}, nil
}

// Start blocks, sampling until Stop is called or the context ends.
func (rc *RuntimeCollector) Start(ctx context.Context) {
	ticker := time.NewTicker(rc.interval)
	defer ticker.Stop()

	rc.metrics.Collect(ctx, rc.startTime)

	for {
		select {
		case <-ticker.C:
			rc.metrics.Collect(ctx, rc.startTime)
		case <-rc.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Stop ends the sampling loop.
func (rc *RuntimeCollector) Stop() {
	close(rc.stopCh)
}

// Current returns a fresh snapshot without waiting for the next tick.
func (rc *RuntimeCollector) Current(ctx context.Context) *RuntimeStats {
	return rc.metrics.Collect(ctx, rc.startTime)
}
