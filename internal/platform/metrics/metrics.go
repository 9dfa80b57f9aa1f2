// Package metrics provides observability for the game server.
package metrics

import (
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// Collector gathers performance and gameplay counters.
type Collector struct {
	// Turn engine
	ActionsPerformed int64
	ActionsRejected  int64
	PassTimeCalls    int64
	DayRollovers     int64
	Burnouts         int64
	Bankruptcies     int64

	// Persistence
	SaveCount      int64
	SaveLatencySum int64 // nanoseconds
	SaveLatencyMax int64
	SaveErrors     int64

	// LLM
	LLMRequests   int64
	LLMFailures   int64
	LLMTokensUsed int64
	LLMLatencySum int64

	// System
	StartTime time.Time
	mu        sync.RWMutex
}

// Global collector instance
var collector = &Collector{
	StartTime: time.Now(),
}

// Get returns the global collector.
func Get() *Collector {
	return collector
}

// RecordAction records a turn-engine action outcome.
func (c *Collector) RecordAction(rejected bool) {
	if rejected {
		atomic.AddInt64(&c.ActionsRejected, 1)
	} else {
		atomic.AddInt64(&c.ActionsPerformed, 1)
	}
}

// RecordPassTime records an explicit wait.
func (c *Collector) RecordPassTime() {
	atomic.AddInt64(&c.PassTimeCalls, 1)
}

// RecordRollover records day rollovers applied in one call.
func (c *Collector) RecordRollover(days int64) {
	atomic.AddInt64(&c.DayRollovers, days)
}

// RecordTerminal records a terminal condition firing.
func (c *Collector) RecordTerminal(burnout bool) {
	if burnout {
		atomic.AddInt64(&c.Burnouts, 1)
	} else {
		atomic.AddInt64(&c.Bankruptcies, 1)
	}
}

// RecordSave records a persistence write.
func (c *Collector) RecordSave(latency time.Duration, err error) {
	atomic.AddInt64(&c.SaveCount, 1)
	atomic.AddInt64(&c.SaveLatencySum, int64(latency))

	// Update max (non-atomic but acceptable for metrics)
	if int64(latency) > atomic.LoadInt64(&c.SaveLatencyMax) {
		atomic.StoreInt64(&c.SaveLatencyMax, int64(latency))
	}

	if err != nil {
		atomic.AddInt64(&c.SaveErrors, 1)
	}
}

// RecordLLMCall records an LLM API call.
func (c *Collector) RecordLLMCall(tokens int, latency time.Duration, err error) {
	atomic.AddInt64(&c.LLMRequests, 1)
	atomic.AddInt64(&c.LLMTokensUsed, int64(tokens))
	atomic.AddInt64(&c.LLMLatencySum, int64(latency))
	if err != nil {
		atomic.AddInt64(&c.LLMFailures, 1)
	}
}

// Snapshot returns current metrics as a map.
func (c *Collector) Snapshot() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	saves := atomic.LoadInt64(&c.SaveCount)
	llmRequests := atomic.LoadInt64(&c.LLMRequests)

	var saveAvg, llmAvg float64
	if saves > 0 {
		saveAvg = float64(atomic.LoadInt64(&c.SaveLatencySum)) / float64(saves) / 1e6 // ms
	}
	if llmRequests > 0 {
		llmAvg = float64(atomic.LoadInt64(&c.LLMLatencySum)) / float64(llmRequests) / 1e9 // seconds
	}

	return map[string]interface{}{
		"uptime_seconds": time.Since(c.StartTime).Seconds(),

		"engine": map[string]interface{}{
			"actions_performed": atomic.LoadInt64(&c.ActionsPerformed),
			"actions_rejected":  atomic.LoadInt64(&c.ActionsRejected),
			"pass_time_calls":   atomic.LoadInt64(&c.PassTimeCalls),
			"day_rollovers":     atomic.LoadInt64(&c.DayRollovers),
			"burnouts":          atomic.LoadInt64(&c.Burnouts),
			"bankruptcies":      atomic.LoadInt64(&c.Bankruptcies),
		},

		"persistence": map[string]interface{}{
			"saves":          saves,
			"avg_save_ms":    saveAvg,
			"max_save_ms":    float64(atomic.LoadInt64(&c.SaveLatencyMax)) / 1e6,
			"save_errors":    atomic.LoadInt64(&c.SaveErrors),
		},

		"llm": map[string]interface{}{
			"requests":        llmRequests,
			"failures":        atomic.LoadInt64(&c.LLMFailures),
			"tokens_used":     atomic.LoadInt64(&c.LLMTokensUsed),
			"avg_latency_sec": llmAvg,
		},
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-cache")

		snapshot := collector.Snapshot()
		json.NewEncoder(w).Encode(snapshot)
	}
}
