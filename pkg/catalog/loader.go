package catalog

import (
	"context"
	"log/slog"
	"time"

	namenest "github.com/namenest/namenest/pkg"
	"github.com/namenest/namenest/pkg/feed"
	"github.com/namenest/namenest/pkg/mockdata"
	"github.com/namenest/namenest/pkg/names"
)

// Loader builds catalogs from the remote feed, falling back to mock
// data when the feed cannot supply any usable record.
type Loader struct {
	fetcher namenest.Fetcher
	format  feed.Format
	norm    *names.Normalizer
	useMock bool
}

// NewLoader creates a Loader. If fetcher is nil or useMock is true,
// the loader never touches the network.
func NewLoader(
	fetcher namenest.Fetcher,
	format feed.Format,
	norm *names.Normalizer,
	useMock bool,
) *Loader {
	if norm == nil {
		norm = names.NewNormalizer(names.DefaultPopularity)
	}
	return &Loader{
		fetcher: fetcher,
		format:  format,
		norm:    norm,
		useMock: useMock || fetcher == nil,
	}
}

// Load returns a catalog. It always succeeds: feed failures are
// logged and recorded in the FeedErr field of a mock catalog.
func (l *Loader) Load(ctx context.Context) *Catalog {
	if l.useMock {
		slog.Info("Loading mock names")
		return l.mock(nil)
	}

	start := time.Now()
	recs, dropped, err := l.fromFeed(ctx)
	if err != nil {
		slog.Warn("Names feed is unavailable, using mock data",
			"url", l.fetcher.URL(), "error", err)
		res := l.mock(err)
		res.FeedURL = l.fetcher.URL()
		return res
	}

	slog.Info("Names feed loaded",
		"url", l.fetcher.URL(),
		"records", len(recs),
		"dropped", dropped,
		"duration", time.Since(start).String(),
	)
	res := New(recs, SourceFeed)
	res.FeedURL = l.fetcher.URL()
	res.Dropped = dropped
	return res
}

func (l *Loader) fromFeed(ctx context.Context) ([]names.Record, int, error) {
	data, err := l.fetcher.Fetch(ctx)
	if err != nil {
		return nil, 0, err
	}
	rows, err := feed.Parse(data, l.format)
	if err != nil {
		return nil, 0, err
	}
	recs, dropped := l.norm.Normalize(rows)
	if len(recs) == 0 {
		return nil, dropped, EmptyFeedError(l.fetcher.URL(), len(rows))
	}
	return recs, dropped, nil
}

func (l *Loader) mock(reason error) *Catalog {
	res := New(mockdata.Records(l.norm), SourceMock)
	res.FeedErr = reason
	return res
}
