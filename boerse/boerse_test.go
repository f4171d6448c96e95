package boerse

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kellerb/depot/date"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	c := NewClient(ts.URL+"/", "test-salt", "XETR")
	t.Cleanup(func() { c.Close() })
	return c
}

func TestPrices(t *testing.T) {
	var gotTraceID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/price_history") {
			http.NotFound(w, r)
			return
		}
		gotTraceID = r.Header.Get("x-client-traceid")
		if got := r.URL.Query().Get("isin"); got != "IE00B4L5Y983" {
			t.Errorf("isin param = %q want IE00B4L5Y983", got)
		}
		if got := r.URL.Query().Get("mic"); got != "XETR" {
			t.Errorf("mic param = %q want XETR", got)
		}
		w.Header().Set("Content-Type", "application/json")
		// quotes only on trading days; the client reindexes to the full calendar
		w.Write([]byte(`{"data":[
			{"date":"2023-01-02","close":100.5},
			{"date":"2023-01-04","close":101.25}
		]}`))
	})

	rng := date.Range{From: date.New(2023, 1, 1), To: date.New(2023, 1, 5)}
	got, err := c.Prices("IE00B4L5Y983", rng)
	if err != nil {
		t.Fatalf("Prices() error = %v", err)
	}

	if gotTraceID == "" {
		t.Errorf("request carried no x-client-traceid header")
	}

	// 01-01 is before the first quote: absent, not zero.
	if _, ok := got.Get(date.New(2023, 1, 1)); ok {
		t.Errorf("price on 2023-01-01 = present, want absent before first quote")
	}

	tests := []struct {
		day  date.Date
		want float64
	}{
		{date.New(2023, 1, 2), 100.5},
		{date.New(2023, 1, 3), 100.5}, // carried over the non-trading day
		{date.New(2023, 1, 4), 101.25},
		{date.New(2023, 1, 5), 101.25},
	}
	for _, tc := range tests {
		if v, ok := got.Get(tc.day); !ok || v != tc.want {
			t.Errorf("price(%v) = %v, %v want %v, true", tc.day, v, ok, tc.want)
		}
	}
}

func TestPricesEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[]}`))
	})
	rng := date.Range{From: date.New(2023, 1, 1), To: date.New(2023, 1, 5)}
	if _, err := c.Prices("IE00B4L5Y983", rng); err == nil {
		t.Errorf("Prices() with empty payload = nil error, want error")
	}
}

func TestName(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/instrument_information") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"instrumentName":{"originalValue":"iShs Core MSCI World UCITS ETF"}}`))
	})

	name, err := c.Name("IE00B4L5Y983")
	if err != nil {
		t.Fatalf("Name() error = %v", err)
	}
	if want := "iShs Core MSCI World UCITS ETF"; name != want {
		t.Errorf("Name() = %q want %q", name, want)
	}
}

func TestGetError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	})
	if _, err := c.Name("IE00B4L5Y983"); err == nil {
		t.Errorf("Name() against failing server = nil error, want error")
	}
}
