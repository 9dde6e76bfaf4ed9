package news

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func testClock() func() time.Time {
	return func() time.Time { return time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC) }
}

func newTestFetcher(ts *httptest.Server, key string) *FinnhubFetcher {
	f := NewFinnhubFetcher(key, "", 5*time.Second)
	f.BaseURL = ts.URL
	f.Now = testClock()
	return f
}

func TestFetchCompanyNews_QueryContract(t *testing.T) {
	var query url.Values
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	f := newTestFetcher(ts, "secret")
	if _, err := f.FetchCompanyNews("AAPL"); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if got := query.Get("symbol"); got != "AAPL" {
		t.Errorf("symbol = %q", got)
	}
	if got := query.Get("token"); got != "secret" {
		t.Errorf("token = %q", got)
	}
	if got := query.Get("to"); got != "2025-06-30" {
		t.Errorf("to = %q", got)
	}
	if got := query.Get("from"); got != "2025-05-31" {
		t.Errorf("from = %q, want 30 days prior", got)
	}
}

func TestFetchCompanyNews_FiltersInvalidItems(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[
			{"headline": "", "url": "https://x", "source": "A", "datetime": 1},
			{"headline": "Kept", "url": "https://x", "source": "B", "datetime": 2},
			{"headline": "NoURL", "url": "", "source": "C", "datetime": 3}
		]`))
	}))
	defer ts.Close()

	items, err := newTestFetcher(ts, "secret").FetchCompanyNews("AAPL")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 valid item, got %d", len(items))
	}
	if items[0].Headline != "Kept" {
		t.Errorf("kept the wrong item: %+v", items[0])
	}
}

func TestFetchCompanyNews_BadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "limit exceeded", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	if _, err := newTestFetcher(ts, "secret").FetchCompanyNews("AAPL"); err == nil {
		t.Error("expected an error for a non-200 status")
	}
}

func TestFetchCompanyNews_MalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"not": "an array"}`))
	}))
	defer ts.Close()

	if _, err := newTestFetcher(ts, "secret").FetchCompanyNews("AAPL"); err == nil {
		t.Error("expected an error for a malformed body")
	}
}

func TestHasKey(t *testing.T) {
	if NewFinnhubFetcher("", "", time.Second).HasKey() {
		t.Error("empty key should report HasKey false")
	}
	if !NewFinnhubFetcher("secret", "", time.Second).HasKey() {
		t.Error("configured key should report HasKey true")
	}
}
