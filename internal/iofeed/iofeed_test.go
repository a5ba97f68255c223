package iofeed_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gnames/gn"
	"github.com/namenest/namenest/internal/iofeed"
	"github.com/namenest/namenest/internal/iotesting"
	"github.com/namenest/namenest/pkg/catalog"
	"github.com/namenest/namenest/pkg/config"
	"github.com/namenest/namenest/pkg/errcode"
	"github.com/namenest/namenest/pkg/feed"
	"github.com/namenest/namenest/pkg/names"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sheet = "\"Name\",\"Gender\",\"Religion\",\"Meaning\"\n" +
	"\"Aarav\",\"Male\",\"Hinduism\",\"Peaceful, wise\"\n" +
	"\"Zara\",\"Female\",\"Islam\",\"Blooming flower\"\n"

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(sheet))
	}))
	defer srv.Close()

	f := iofeed.New(config.FeedConfig{URL: srv.URL, TimeoutSec: 2})
	assert.Equal(t, srv.URL, f.URL())

	data, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sheet, string(data))
}

func TestFetchErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	closed := httptest.NewServer(http.NotFoundHandler())
	closedURL := closed.URL
	closed.Close()

	tests := []struct {
		msg  string
		url  string
		code gn.ErrorCode
	}{
		{"status", srv.URL, errcode.FeedStatusError},
		{"connection refused", closedURL, errcode.FeedRequestError},
		{"bad url", "://nope", errcode.FeedRequestError},
	}
	for _, tt := range tests {
		f := iofeed.New(config.FeedConfig{URL: tt.url, TimeoutSec: 2})
		_, err := f.Fetch(context.Background())
		var gnErr *gn.Error
		require.True(t, errors.As(err, &gnErr), tt.msg)
		assert.Equal(t, tt.code, gnErr.Code, tt.msg)
	}
}

func TestFetchTooLarge(t *testing.T) {
	srv := iotesting.NewFeedServer(t, http.StatusOK, iotesting.SampleFeed())
	size := int64(len(iotesting.SampleFeed()))

	f := iofeed.NewWithLimit(config.FeedConfig{URL: srv.URL, TimeoutSec: 2}, size)
	data, err := f.Fetch(context.Background())
	require.NoError(t, err, "feed of exactly the limit is accepted")
	assert.Len(t, data, int(size))

	f = iofeed.NewWithLimit(config.FeedConfig{URL: srv.URL, TimeoutSec: 2}, size-1)
	data, err = f.Fetch(context.Background())
	assert.Nil(t, data, "truncated feed is not returned")
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.FeedReadError, gnErr.Code)

	c := catalog.NewLoader(f, feed.CSV, nil, false).Load(context.Background())
	assert.Equal(t, catalog.SourceMock, c.Source)
	assert.Error(t, c.FeedErr)
}

func TestFetchTimeout(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping slow test in short mode")
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(3 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	f := iofeed.New(config.FeedConfig{URL: srv.URL, TimeoutSec: 5})
	_, err := f.Fetch(ctx)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.FeedRequestError, gnErr.Code)
}

// TestLoaderWithFetcher runs the whole load pipeline against a local
// server, then against a failing one.
func TestLoaderWithFetcher(t *testing.T) {
	ok := iotesting.NewFeedServer(t, http.StatusOK, iotesting.SampleFeed())

	norm := names.NewNormalizer(50)
	f := iofeed.New(config.FeedConfig{URL: ok.URL, TimeoutSec: 2})
	c := catalog.NewLoader(f, feed.CSV, norm, false).Load(context.Background())
	assert.Equal(t, catalog.SourceFeed, c.Source)
	assert.Equal(t, 1, ok.Hits())
	require.Equal(t, 3, c.Len())
	assert.Equal(t, "Sun, Lord Shiva", c.Records[0].Meaning.EN)
	assert.Equal(t, names.Muslim, c.Records[1].Religion)
	assert.Equal(t, 50, c.Records[1].Popularity)

	bad := iotesting.NewFeedServer(t, http.StatusInternalServerError, "")

	f = iofeed.New(config.FeedConfig{URL: bad.URL, TimeoutSec: 2})
	c = catalog.NewLoader(f, feed.CSV, norm, false).Load(context.Background())
	assert.Equal(t, catalog.SourceMock, c.Source)
	assert.Error(t, c.FeedErr)
	assert.Positive(t, c.Len())
	assert.Equal(t, 1, bad.Hits(), "feed is requested once")
}
