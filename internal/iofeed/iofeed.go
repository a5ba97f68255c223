// Package iofeed downloads the names spreadsheet export over HTTP.
package iofeed

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	namenest "github.com/namenest/namenest/pkg"
	"github.com/namenest/namenest/pkg/config"
)

// MaxFeedSize limits the size of a downloaded feed.
const MaxFeedSize = 32 << 20

type fetcher struct {
	url     string
	http    *http.Client
	maxSize int64
}

// New creates a Fetcher for the feed in the configuration.
func New(cfg config.FeedConfig) namenest.Fetcher {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &fetcher{
		url:     cfg.URL,
		http:    &http.Client{Timeout: timeout},
		maxSize: MaxFeedSize,
	}
}

// URL implements namenest.Fetcher.
func (f *fetcher) URL() string {
	return f.url
}

// Fetch implements namenest.Fetcher. It makes one attempt without
// retries. Any non-2xx status is an error.
func (f *fetcher) Fetch(ctx context.Context) ([]byte, error) {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, RequestError(f.url, err)
	}
	req.Header.Set("Accept", "text/csv, application/vnd.openxmlformats-officedocument.spreadsheetml.sheet, */*")

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, RequestError(f.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, StatusError(f.url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, ReadError(f.url, err)
	}
	if int64(len(data)) > f.maxSize {
		return nil, SizeError(f.url, f.maxSize)
	}

	slog.Info("Names feed downloaded",
		"url", f.url,
		"status", resp.StatusCode,
		"size", humanize.Bytes(uint64(len(data))),
		"duration", time.Since(start).String(),
	)
	return data, nil
}
