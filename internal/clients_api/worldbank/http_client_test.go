package worldbank

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"popchart/internal/population"
)

func testFallback() *population.Table {
	t, err := population.NewTable(
		[]string{"2020"},
		[]string{"Fallbackland"},
		[][]int64{{123}},
	)
	if err != nil {
		panic(err)
	}
	return t
}

func TestFetchCSVSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(sampleCSV))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, 0)
	body, err := client.FetchCSV(context.Background())
	if err != nil {
		t.Fatalf("FetchCSV failed: %v", err)
	}
	if string(body) != sampleCSV {
		t.Errorf("body mismatch: got %d bytes", len(body))
	}
}

func TestFetchCSVSingleAttemptOnError(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, 0)
	if _, err := client.FetchCSV(context.Background()); err == nil {
		t.Fatalf("FetchCSV accepted a 500 response")
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("server hit %d times, want exactly 1", got)
	}
}

func TestFetchCSVTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(server.URL, 50*time.Millisecond, 0)
	if _, err := client.FetchCSV(context.Background()); err == nil {
		t.Fatalf("FetchCSV did not time out")
	}
}

func TestProviderServesLiveData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleCSV))
	}))
	defer server.Close()

	provider := NewProvider(NewClient(server.URL, 5*time.Second, 0), testFallback, true)
	result := provider.FetchPopulation(context.Background())

	if result.Source != SourceLive {
		t.Fatalf("source = %q, want live (reason: %v)", result.Source, result.Reason)
	}
	if result.Reason != nil {
		t.Errorf("reason = %v, want nil for live data", result.Reason)
	}
	if _, ok := result.Table.Value("China", "2020"); !ok {
		t.Errorf("live table is missing China 2020")
	}
}

func TestProviderFallsBackOnHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	provider := NewProvider(NewClient(server.URL, 5*time.Second, 0), testFallback, true)
	result := provider.FetchPopulation(context.Background())

	if result.Source != SourceFallback {
		t.Fatalf("source = %q, want fallback", result.Source)
	}
	if result.Reason == nil {
		t.Errorf("reason is nil, want the HTTP failure")
	}
	if v, _ := result.Table.Value("Fallbackland", "2020"); v != 123 {
		t.Errorf("fallback table not served, got %v", result.Table.Countries())
	}
}

func TestProviderFallsBackOnMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not a csv</html>"))
	}))
	defer server.Close()

	provider := NewProvider(NewClient(server.URL, 5*time.Second, 0), testFallback, true)
	result := provider.FetchPopulation(context.Background())

	if result.Source != SourceFallback {
		t.Fatalf("source = %q, want fallback", result.Source)
	}
	if result.Reason == nil {
		t.Errorf("reason is nil, want the parse failure")
	}
}

func TestProviderSkipsFetchWhenLiveDisabled(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(sampleCSV))
	}))
	defer server.Close()

	provider := NewProvider(NewClient(server.URL, 5*time.Second, 0), testFallback, false)
	result := provider.FetchPopulation(context.Background())

	if result.Source != SourceFallback {
		t.Fatalf("source = %q, want fallback", result.Source)
	}
	if result.Reason != nil {
		t.Errorf("reason = %v, want nil when live data was never requested", result.Reason)
	}
	if got := atomic.LoadInt32(&hits); got != 0 {
		t.Errorf("server hit %d times, want 0", got)
	}
}
