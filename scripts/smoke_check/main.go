package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

type target struct {
	Method   string          `json:"method"`
	Path     string          `json:"path"`
	Role     string          `json:"role"`
	InternID string          `json:"internId"`
	Body     json.RawMessage `json:"body,omitempty"`
	Expect   int             `json:"expect"`
	Critical bool            `json:"critical"`
}

type config struct {
	Targets []target `json:"targets"`
}

type result struct {
	Target   target
	Status   int
	Code     string
	Error    error
	Duration time.Duration
}

func (r result) ok() bool {
	return r.Error == nil && r.Status == r.Target.Expect
}

// defaultTargets walks both dashboards against the seeded data.
var defaultTargets = []target{
	{Method: http.MethodGet, Path: "/health", Expect: http.StatusOK, Critical: true},
	{Method: http.MethodGet, Path: "/views?role=intern", Expect: http.StatusOK, Critical: true},
	{Method: http.MethodGet, Path: "/supervisor/roster", Role: "supervisor", Expect: http.StatusOK, Critical: true},
	{Method: http.MethodGet, Path: "/supervisor/roster?status=ongoing&unit=Research", Role: "supervisor", Expect: http.StatusOK},
	{Method: http.MethodGet, Path: "/supervisor/roster/stats", Role: "supervisor", Expect: http.StatusOK},
	{Method: http.MethodGet, Path: "/supervisor/roster", Role: "intern", InternID: "1", Expect: http.StatusForbidden, Critical: true},
	{Method: http.MethodGet, Path: "/intern/profile", Role: "intern", InternID: "1", Expect: http.StatusOK, Critical: true},
	{Method: http.MethodGet, Path: "/intern/weekly-summary", Role: "intern", InternID: "1", Expect: http.StatusOK},
	{Method: http.MethodPost, Path: "/intern/weekly-summary/submit", Role: "intern", InternID: "1", Expect: http.StatusBadRequest},
	{Method: http.MethodGet, Path: "/intern/weekly-summary/history", Role: "intern", InternID: "1", Expect: http.StatusOK},
	{Method: http.MethodGet, Path: "/intern/documents", Role: "intern", InternID: "1", Expect: http.StatusOK, Critical: true},
	{Method: http.MethodGet, Path: "/intern/feedback", Role: "intern", InternID: "1", Expect: http.StatusOK},
	{Method: http.MethodGet, Path: "/notifications", Role: "supervisor", Expect: http.StatusOK},
}

func main() {
	var (
		base        string
		prefix      string
		targetsPath string
		timeout     time.Duration
	)

	flag.StringVar(&base, "base", "http://localhost:8080", "Tracker API base URL")
	flag.StringVar(&prefix, "prefix", "/api/v1", "API prefix prepended to every path except /health")
	flag.StringVar(&targetsPath, "targets", "", "Optional JSON targets file replacing the built-in walk")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	targets := defaultTargets
	if targetsPath != "" {
		loaded, err := loadTargets(targetsPath)
		if err != nil {
			log.Fatalf("failed to load targets: %v", err)
		}
		targets = loaded
	}

	client := &http.Client{Timeout: timeout}
	var (
		results  []result
		breaking int
		optional int
	)
	for _, t := range targets {
		res := check(client, base, prefix, t)
		if !res.ok() {
			if t.Critical {
				breaking++
			} else {
				optional++
			}
		}
		results = append(results, res)
	}

	printReport(results)

	fmt.Printf("Critical failures: %d, Optional failures: %d\n", breaking, optional)
	if breaking > 0 {
		os.Exit(1)
	}
}

func loadTargets(path string) ([]target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	return cfg.Targets, nil
}

func check(client *http.Client, base, prefix string, tgt target) result {
	res := result{Target: tgt}
	if client == nil {
		res.Error = errors.New("nil client")
		return res
	}
	method := strings.ToUpper(strings.TrimSpace(tgt.Method))
	if method == "" {
		method = http.MethodGet
	}
	path := tgt.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path != "/health" && path != "/ready" && path != "/metrics" {
		path = strings.TrimRight(prefix, "/") + path
	}

	req, err := http.NewRequest(method, strings.TrimRight(base, "/")+path, bytes.NewReader(tgt.Body))
	if err != nil {
		res.Error = err
		return res
	}
	req.Header.Set("Content-Type", "application/json")
	if tgt.Role != "" {
		req.Header.Set("X-Tracker-Role", tgt.Role)
	}
	if tgt.InternID != "" {
		req.Header.Set("X-Intern-ID", tgt.InternID)
	}

	start := time.Now()
	resp, err := client.Do(req)
	res.Duration = time.Since(start)
	if err != nil {
		res.Error = err
		return res
	}
	defer resp.Body.Close()
	res.Status = resp.StatusCode

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		res.Error = fmt.Errorf("read body: %w", err)
		return res
	}
	res.Code = errorCode(body)
	return res
}

func errorCode(body []byte) string {
	var envelope struct {
		Error *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == nil {
		return ""
	}
	return envelope.Error.Code
}

func printReport(results []result) {
	fmt.Println("Tracker Smoke Report")
	fmt.Println("====================")
	for _, res := range results {
		status := "OK"
		if res.Error != nil {
			status = "ERROR"
		} else if !res.ok() {
			status = "FAIL"
		}
		fmt.Printf("[%s] %s %s (role=%q intern=%q)\n", status, res.Target.Method, res.Target.Path, res.Target.Role, res.Target.InternID)
		if res.Error != nil {
			fmt.Printf("  Error: %v\n", res.Error)
			continue
		}
		fmt.Printf("  Status: %d expected %d (%s) | Critical: %t\n", res.Status, res.Target.Expect, res.Duration, res.Target.Critical)
		if res.Code != "" {
			fmt.Printf("  Error code: %s\n", res.Code)
		}
	}
}
