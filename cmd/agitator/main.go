// Package main - agitator
// Load generator for stress testing: simulates many concurrent players
// hammering the HTTP action endpoints.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Config for the agitator
type Config struct {
	ServerURL      string
	NumClients     int
	ActionInterval time.Duration
	TestDuration   time.Duration
}

// Stats tracks performance metrics
type Stats struct {
	RequestsSent int64
	Responses    int64
	Errors       int64
	Latencies    []time.Duration
	mu           sync.Mutex
}

// request templates for the simulation; each player cycles them at
// random, so days roll over and rejections both occur.
type actionReq struct {
	Location string                 `json:"location"`
	Action   string                 `json:"action"`
	Params   map[string]interface{} `json:"params,omitempty"`
}

var actionPool = []actionReq{
	{Location: "home", Action: "rest"},
	{Location: "workplace", Action: "work"},
	{Location: "shop", Action: "buy_food"},
	{Location: "department_store", Action: "browse_store"},
	{Location: "university", Action: "enroll_course", Params: map[string]interface{}{"course_id": "middle_school"}},
	{Location: "university", Action: "attend_lecture"},
	{Location: "job_office", Action: "get_job"},
	{Location: "estate_agent", Action: "rent_flat", Params: map[string]interface{}{"tier": 1}},
}

func main() {
	serverURL := flag.String("url", "http://localhost:8080", "Server base URL")
	numClients := flag.Int("clients", 50, "Number of concurrent players")
	interval := flag.Duration("interval", 100*time.Millisecond, "Action interval per player")
	duration := flag.Duration("duration", 60*time.Second, "Test duration")
	flag.Parse()

	cfg := Config{
		ServerURL:      *serverURL,
		NumClients:     *numClients,
		ActionInterval: *interval,
		TestDuration:   *duration,
	}

	fmt.Printf("Agitator: %d players, %s interval, %s duration against %s\n",
		cfg.NumClients, cfg.ActionInterval, cfg.TestDuration, cfg.ServerURL)

	stats := &Stats{}
	done := make(chan struct{})
	var wg sync.WaitGroup

	for i := 0; i < cfg.NumClients; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			runPlayer(cfg, fmt.Sprintf("agitator-%03d", id), stats, done)
		}(i)
	}

	// stop on duration or Ctrl+C, whichever first
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	select {
	case <-time.After(cfg.TestDuration):
	case <-quit:
	}
	close(done)
	wg.Wait()

	report(stats)
}

func runPlayer(cfg Config, username string, stats *Stats, done chan struct{}) {
	client := &http.Client{Timeout: 10 * time.Second}
	ticker := time.NewTicker(cfg.ActionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			req := actionPool[rand.Intn(len(actionPool))]
			body, _ := json.Marshal(req)

			start := time.Now()
			httpReq, err := http.NewRequest("POST", cfg.ServerURL+"/api/action", bytes.NewReader(body))
			if err != nil {
				atomic.AddInt64(&stats.Errors, 1)
				continue
			}
			httpReq.Header.Set("Content-Type", "application/json")
			httpReq.Header.Set("X-Username", username)

			atomic.AddInt64(&stats.RequestsSent, 1)
			resp, err := client.Do(httpReq)
			if err != nil {
				atomic.AddInt64(&stats.Errors, 1)
				continue
			}
			resp.Body.Close()
			latency := time.Since(start)

			if resp.StatusCode != http.StatusOK {
				atomic.AddInt64(&stats.Errors, 1)
				continue
			}
			atomic.AddInt64(&stats.Responses, 1)

			stats.mu.Lock()
			stats.Latencies = append(stats.Latencies, latency)
			stats.mu.Unlock()
		}
	}
}

func report(stats *Stats) {
	sent := atomic.LoadInt64(&stats.RequestsSent)
	ok := atomic.LoadInt64(&stats.Responses)
	errs := atomic.LoadInt64(&stats.Errors)

	fmt.Println("\n=== RESULTS ===")
	fmt.Printf("Requests sent: %d\n", sent)
	fmt.Printf("OK responses:  %d\n", ok)
	fmt.Printf("Errors:        %d\n", errs)

	stats.mu.Lock()
	defer stats.mu.Unlock()
	if len(stats.Latencies) == 0 {
		return
	}
	sort.Slice(stats.Latencies, func(i, j int) bool { return stats.Latencies[i] < stats.Latencies[j] })
	p := func(q float64) time.Duration {
		idx := int(q * float64(len(stats.Latencies)-1))
		return stats.Latencies[idx]
	}
	fmt.Printf("Latency p50:   %s\n", p(0.50))
	fmt.Printf("Latency p95:   %s\n", p(0.95))
	fmt.Printf("Latency p99:   %s\n", p(0.99))
}
