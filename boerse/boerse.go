// Package boerse fetches daily close prices and instrument names from the
// Börse Frankfurt JSON API. It implements depot.Quoter.
package boerse

import (
	"crypto/md5"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
	"resty.dev/v3"

	"github.com/kellerb/depot"
	"github.com/kellerb/depot/date"
)

// DefaultBaseURL is the public data endpoint of the Börse Frankfurt API.
const DefaultBaseURL = "https://api.boerse-frankfurt.de/v1/data/"

// DefaultMIC is Xetra, where the ETFs in question are traded.
const DefaultMIC = "XETR"

// defaultSalt seasons the x-client-traceid request header. The API rejects
// requests without a correctly derived trace id.
const defaultSalt = "w4ivc1ATTGta6njAZzMbkL3kJwxMfEAKDa3MNr"

// Client talks to the Börse Frankfurt API. Responses are cached on disk for
// the day, so re-runs over the same documents do not hammer the API.
type Client struct {
	http    *resty.Client
	baseURL string
	salt    string
	mic     string
}

var _ depot.Quoter = (*Client)(nil)

// NewClient returns a client for the given endpoint. Empty arguments select
// the defaults.
func NewClient(baseURL, salt, mic string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if salt == "" {
		salt = defaultSalt
	}
	if mic == "" {
		mic = DefaultMIC
	}
	hc := resty.New().
		SetTransport(&diskCache{base: http.DefaultTransport}).
		SetTimeout(15 * time.Second)
	return &Client{http: hc, baseURL: baseURL, salt: salt, mic: mic}
}

// Close releases the underlying HTTP client resources.
func (c *Client) Close() error { return c.http.Close() }

// sign derives the per-request headers the API requires: a client date, a
// trace id salted from the full request URL, and a time-window security token.
func (c *Client) sign(addr string) map[string]string {
	utc := time.Now().UTC()
	local := time.Now()
	timestr := utc.Format("2006-01-02T15:04:05.000") + "Z"

	traceid := fmt.Sprintf("%x", md5.Sum([]byte(timestr+addr+c.salt)))
	xsecurity := fmt.Sprintf("%x", md5.Sum([]byte(local.Format("200601021504"))))

	return map[string]string{
		"authority":        "api.boerse-frankfurt.de",
		"origin":           "https://www.boerse-frankfurt.de",
		"referer":          "https://www.boerse-frankfurt.de/",
		"accept":           "application/json, text/plain, */*",
		"client-date":      timestr,
		"x-client-traceid": traceid,
		"x-security":       xsecurity,
	}
}

// get performs a signed GET of one API function and decodes the JSON response
// into out.
func (c *Client) get(function string, params url.Values, out any) error {
	addr := c.baseURL + function + "?" + params.Encode()
	resp, err := c.http.R().
		SetHeaders(c.sign(addr)).
		SetResult(out).
		Get(addr)
	if err != nil {
		return fmt.Errorf("cannot GET %s: %w", function, err)
	}
	if resp.IsError() {
		return fmt.Errorf("cannot GET %s: %s", function, resp.Status())
	}
	return nil
}

// Prices returns the instrument's daily close prices covering rng, reindexed
// onto the daily calendar with the last close carried forward over non-trading
// days. Days before the first quote stay absent.
func (c *Client) Prices(isin string, rng date.Range) (*date.History[float64], error) {
	params := url.Values{}
	params.Set("isin", isin)
	params.Set("mic", c.mic)
	params.Set("minDate", rng.From.String())
	params.Set("maxDate", rng.To.String())
	params.Set("limit", strconv.Itoa(rng.Len()))
	params.Set("cleanSplit", "false")
	params.Set("cleanPayout", "false")
	params.Set("cleanSubscription", "false")

	type quote struct {
		Date  date.Date       `json:"date"`
		Close decimal.Decimal `json:"close"`
	}
	var payload struct {
		Data []quote `json:"data"`
	}
	if err := c.get("price_history", params, &payload); err != nil {
		return nil, fmt.Errorf("price history for %s: %w", isin, err)
	}

	sparse := new(date.History[float64])
	for _, q := range payload.Data {
		sparse.Append(q.Date, q.Close.InexactFloat64())
	}
	if sparse.Len() == 0 {
		return nil, fmt.Errorf("no prices for %s in %s", isin, rng)
	}

	daily := new(date.History[float64])
	for day := range rng.Days() {
		if v, ok := sparse.ValueAsOf(day); ok {
			daily.Append(day, v)
		}
	}
	return daily, nil
}

// Name returns the instrument's display name.
func (c *Client) Name(isin string) (string, error) {
	params := url.Values{}
	params.Set("isin", isin)

	var jobj any
	if err := c.get("instrument_information", params, &jobj); err != nil {
		return "", fmt.Errorf("instrument information for %s: %w", isin, err)
	}

	const path = "$.instrumentName.originalValue"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("instrument name for %s: %q %w", isin, path, err)
	}
	// jsonpath sometimes wraps a single answer in a list; keep the first one.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	name, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("instrument name for %s: %q is not a string: %v", isin, path, jval)
	}
	return name, nil
}
