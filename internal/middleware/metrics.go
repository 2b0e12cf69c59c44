package middleware

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"
)

type counters struct {
	requests     atomic.Uint64
	inFlight     atomic.Int64
	succeeded    atomic.Uint64
	failed       atomic.Uint64
	throttled    atomic.Uint64
	fromModel    atomic.Uint64
	fromFallback atomic.Uint64
	started      time.Time
}

var stats = &counters{started: time.Now()}

// Snapshot is the body served on /metrics.
type Snapshot struct {
	RequestsTotal      uint64  `json:"requests_total"`
	RequestsInProgress int64   `json:"requests_in_progress"`
	RequestsSuccess    uint64  `json:"requests_success"`
	RequestsFailed     uint64  `json:"requests_failed"`
	RequestsThrottled  uint64  `json:"requests_throttled"`
	AnalysesModel      uint64  `json:"analyses_model"`
	AnalysesFallback   uint64  `json:"analyses_fallback"`
	FallbackRatio      float64 `json:"fallback_ratio"`
	UptimeSeconds      float64 `json:"uptime_seconds"`
	Goroutines         int     `json:"goroutines"`
	HeapAllocBytes     uint64  `json:"heap_alloc_bytes"`
	NumGC              uint32  `json:"num_gc"`
}

// RecordAnalysis counts a finished analysis by where its result came from.
func RecordAnalysis(fromModel bool) {
	if fromModel {
		stats.fromModel.Add(1)
		return
	}
	stats.fromFallback.Add(1)
}

func GetMetrics() Snapshot {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	s := Snapshot{
		RequestsTotal:      stats.requests.Load(),
		RequestsInProgress: stats.inFlight.Load(),
		RequestsSuccess:    stats.succeeded.Load(),
		RequestsFailed:     stats.failed.Load(),
		RequestsThrottled:  stats.throttled.Load(),
		AnalysesModel:      stats.fromModel.Load(),
		AnalysesFallback:   stats.fromFallback.Load(),
		UptimeSeconds:      time.Since(stats.started).Seconds(),
		Goroutines:         runtime.NumGoroutine(),
		HeapAllocBytes:     mem.HeapAlloc,
		NumGC:              mem.NumGC,
	}
	if n := s.AnalysesModel + s.AnalysesFallback; n > 0 {
		s.FallbackRatio = float64(s.AnalysesFallback) / float64(n)
	}
	return s
}

// MetricsMiddleware counts requests by outcome. 429s from the rate limiter
// are counted as throttled, not failed.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stats.requests.Add(1)
		stats.inFlight.Add(1)
		defer stats.inFlight.Add(-1)

		rw := wrap(w)
		next.ServeHTTP(rw, r)

		switch {
		case rw.statusCode == http.StatusTooManyRequests:
			stats.throttled.Add(1)
		case rw.statusCode < 400:
			stats.succeeded.Add(1)
		default:
			stats.failed.Add(1)
		}
	})
}

func MetricsHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(GetMetrics())
}
