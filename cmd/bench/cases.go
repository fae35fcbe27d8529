// README: Smoke test cases; health, plan endpoint contracts, Redis cache, and health-endpoint throughput.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
	redis *redis.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 100 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.RedisAddr != "" {
		r.redis = redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
	}

	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		results = append(results, res)
		fmt.Printf("%-7s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}

	if r.redis != nil {
		_ = r.redis.Close()
	}

	return results
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	return []TestCase{
		{
			Name: "Env: API health",
			Run: func(ctx context.Context, r *Runner) Result {
				start := time.Now()
				status, _, err := r.get(ctx, base+"/health")
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				if status != http.StatusOK {
					return Result{Status: "FAIL", Note: fmt.Sprintf("status %d", status)}
				}
				return Result{Status: "PASS", Latency: time.Since(start)}
			},
		},
		{
			Name: "Env: Redis connect",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.redis == nil {
					return Result{Status: "SKIP", Note: "redis not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.redis.Ping(ctx).Err(); err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name: "Plan: reject missing destination",
			Run: func(ctx context.Context, r *Runner) Result {
				status, body, err := r.postPlan(ctx, map[string]any{"days": 2})
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				if status != http.StatusBadRequest {
					return Result{Status: "FAIL", Note: fmt.Sprintf("status %d body %s", status, truncate(body))}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name: "Plan: reject malformed JSON",
			Run: func(ctx context.Context, r *Runner) Result {
				req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/api/trips/plan", strings.NewReader("{not json"))
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				req.Header.Set("Content-Type", "application/json")
				resp, err := r.httpc.Do(req)
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				defer resp.Body.Close()
				if resp.StatusCode != http.StatusBadRequest {
					return Result{Status: "FAIL", Note: fmt.Sprintf("status %d", resp.StatusCode)}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name: "Plan: end-to-end generation",
			Run: func(ctx context.Context, r *Runner) Result {
				if !r.cfg.Live {
					return Result{Status: "SKIP", Note: "live AI calls disabled, pass -live to enable"}
				}
				start := time.Now()
				status, body, err := r.postPlan(ctx, map[string]any{"destination": "Mathura, India", "days": 2})
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				if status != http.StatusOK {
					return Result{Status: "FAIL", Note: fmt.Sprintf("status %d body %s", status, truncate(body))}
				}
				var resp struct {
					Plan struct {
						DestinationName string `json:"destination_name"`
						Itinerary       []any  `json:"itinerary"`
					} `json:"plan"`
				}
				if err := json.Unmarshal(body, &resp); err != nil {
					return Result{Status: "FAIL", Note: "unmarshal: " + err.Error()}
				}
				if resp.Plan.DestinationName == "" || len(resp.Plan.Itinerary) == 0 {
					return Result{Status: "FAIL", Note: "empty plan: " + truncate(body)}
				}
				return Result{Status: "PASS", Latency: time.Since(start)}
			},
		},
		{
			Name: "Perf: health throughput",
			Run: func(ctx context.Context, r *Runner) Result {
				ctx, cancel := context.WithTimeout(ctx, r.cfg.Duration)
				defer cancel()

				var wg sync.WaitGroup
				var mu sync.Mutex
				total, failed := 0, 0

				for i := 0; i < r.cfg.Concurrency; i++ {
					wg.Add(1)
					go func() {
						defer wg.Done()
						for ctx.Err() == nil {
							status, _, err := r.get(ctx, base+"/health")
							mu.Lock()
							total++
							if err != nil || status != http.StatusOK {
								if ctx.Err() == nil {
									failed++
								}
							}
							mu.Unlock()
						}
					}()
				}
				wg.Wait()

				if total == 0 {
					return Result{Status: "FAIL", Note: "no requests completed"}
				}
				if failed > 0 {
					return Result{Status: "FAIL", Note: fmt.Sprintf("%d/%d failed", failed, total)}
				}
				rps := float64(total) / r.cfg.Duration.Seconds()
				return Result{Status: "PASS", Note: fmt.Sprintf("%.0f req/s", rps)}
			},
		},
	}
}

func (r *Runner) get(ctx context.Context, url string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, err
	}
	resp, err := r.httpc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	return resp.StatusCode, body, err
}

func (r *Runner) postPlan(ctx context.Context, payload map[string]any) (int, []byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.BaseURL+"/api/trips/plan", bytes.NewReader(b))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.httpc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	return resp.StatusCode, body, err
}

func truncate(b []byte) string {
	s := string(b)
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
