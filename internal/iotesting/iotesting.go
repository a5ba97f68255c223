// Package iotesting provides shared test utilities.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gnames/gnfmt"
)

// FeedHeader is the header row used by SampleFeed.
var FeedHeader = []string{
	"Name", "Name Hi", "Meaning", "Meaning Hi", "Gender",
	"Origin", "Religion", "Zodiac", "Popularity",
}

// SampleFeed returns a small CSV feed with three names.
func SampleFeed() string {
	return FeedCSV(
		[]string{"Ishaan", "ईशान", "Sun, Lord Shiva", "सूर्य", "Boy",
			"Sanskrit", "Hindu", "Aries", "88"},
		[]string{"Noor", "नूर", "Light", "प्रकाश", "Girl",
			"Arabic", "Islam", "", ""},
		[]string{"Kiran", "किरण", "Ray of light", "किरण", "Unisex",
			"Sanskrit", "Hindu", "Leo", "61"},
	)
}

// FeedCSV builds a CSV feed with FeedHeader and the given rows.
func FeedCSV(rows ...[]string) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, gnfmt.ToCSV(FeedHeader, ','))
	for _, r := range rows {
		lines = append(lines, gnfmt.ToCSV(r, ','))
	}
	return strings.Join(lines, "\n") + "\n"
}

// FeedServer is a test HTTP server publishing a feed.
type FeedServer struct {
	*httptest.Server
	hits atomic.Int64
}

// Hits returns the number of requests served.
func (s *FeedServer) Hits() int {
	return int(s.hits.Load())
}

// NewFeedServer starts a server that responds to every request with
// status and body. The server is closed when the test finishes.
func NewFeedServer(t *testing.T, status int, body string) *FeedServer {
	t.Helper()

	res := &FeedServer{}
	res.Server = httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			res.hits.Add(1)
			w.Header().Set("Content-Type", "text/csv")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		},
	))
	t.Cleanup(res.Close)
	return res
}

// SetupHome creates a temporary home directory and sets HOME to it
// for the duration of the test. Tests that run CLI commands should
// use it so user configuration and favorites stay untouched.
//
// Returns the absolute path to the temporary home directory.
func SetupHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}
