package main

import (
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

const (
	baseURL      = "http://127.0.0.1:8080"
	numWorkers   = 50
	testDuration = 10 * time.Second
)

var countries = []string{"Japan", "USA", "Thailand", "South Korea", "Singapore", "China", "Hong Kong", "Taiwan", "France", "United Kingdom"}

var devices = []struct {
	brand, model, region string
}{
	{"Apple", "iPhone 15", "us"},
	{"Apple", "iPhone Air", "cn"},
	{"Apple", "iPhone 14", "cn"},
	{"Samsung", "Galaxy S24", "eu"},
	{"Samsung", "Galaxy A53", "global"},
	{"Google", "Pixel 10", "us"},
	{"Huawei", "P40 Pro", "global"},
	{"Apple", "iPhone 99 Ultra", "us"},
}

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

func main() {
	fmt.Println("=== GlobalPass Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s\n\n", numWorkers, testDuration)

	// Wait for server
	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	// Phase 1: Warm the catalog and response cache
	fmt.Println("\n--- Phase 1: Catalog warmup (GET /api/countries) ---")
	runPhase(2*time.Second, func(rng *rand.Rand) result {
		return doGetCountries()
	})

	// Phase 2: Mixed catalog load
	fmt.Println("\n--- Phase 2: Mixed catalog load ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.50:
			return doGetPackages(rng)
		case r < 0.70:
			return doGetCountries()
		case r < 0.85:
			return doGetStats()
		default:
			return doGetBrands()
		}
	})

	// Phase 3: Compatibility-heavy load
	fmt.Println("\n--- Phase 3: Compatibility-heavy load ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.60:
			return doCheckCompatibility(rng)
		case r < 0.80:
			return doGetBrands()
		default:
			return doGetPackages(rng)
		}
	})
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	var totalOps atomic.Int64
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(rng)
					totalOps.Add(1)
					results <- r
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-34s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + repeat("-", 100))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		avg := avgDuration(s.latencies)
		p50 := percentile(s.latencies, 0.50)
		p95 := percentile(s.latencies, 0.95)
		p99 := percentile(s.latencies, 0.99)

		fmt.Printf("  %-34s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors, fmtDur(avg), fmtDur(p50), fmtDur(p95), fmtDur(p99))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + repeat("-", 100))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

func doGet(endpoint, rawURL string) result {
	start := time.Now()
	resp, err := httpClient.Get(rawURL)
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{endpoint, resp.StatusCode, lat, resp.StatusCode != 200}
}

func doGetCountries() result {
	return doGet("GET /api/countries", baseURL+"/api/countries")
}

func doGetStats() result {
	return doGet("GET /api/packages/stats", baseURL+"/api/packages/stats")
}

func doGetBrands() result {
	return doGet("GET /api/compatibility/brands", baseURL+"/api/compatibility/brands")
}

func doGetPackages(rng *rand.Rand) result {
	country := countries[rng.Intn(len(countries))]
	u := fmt.Sprintf("%s/api/packages?country=%s", baseURL, url.QueryEscape(country))
	return doGet("GET /api/packages", u)
}

func doCheckCompatibility(rng *rand.Rand) result {
	d := devices[rng.Intn(len(devices))]
	u := fmt.Sprintf("%s/api/compatibility?brand=%s&model=%s&region=%s",
		baseURL, url.QueryEscape(d.brand), url.QueryEscape(d.model), url.QueryEscape(d.region))
	return doGet("GET /api/compatibility", u)
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
