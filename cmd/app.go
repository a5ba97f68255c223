package cmd

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/namenest/namenest/internal/iofavorites"
	"github.com/namenest/namenest/internal/iofeed"
	"github.com/namenest/namenest/pkg/catalog"
	"github.com/namenest/namenest/pkg/config"
	"github.com/namenest/namenest/pkg/favorites"
	"github.com/namenest/namenest/pkg/feed"
	"github.com/namenest/namenest/pkg/names"
)

// newLoader creates a catalog loader from the configuration.
func newLoader(cfg *config.Config) *catalog.Loader {
	norm := names.NewNormalizer(cfg.Feed.DefaultPopularity)
	format := feed.ParseFormat(cfg.Feed.Format)
	return catalog.NewLoader(iofeed.New(cfg.Feed), format, norm, cfg.UseMock)
}

// loadCatalog loads names and tells the user when built-in names are
// used instead of the feed.
func loadCatalog(ctx context.Context) *catalog.Catalog {
	c := newLoader(cfg).Load(ctx)
	notifySource(c)
	return c
}

func notifySource(c *catalog.Catalog) {
	if c.FeedErr != nil {
		gn.Warn("Names feed is unavailable, showing <em>%s</em> built-in names",
			humanize.Comma(int64(c.Len())))
		gn.PrintErrorMessage(c.FeedErr)
	}
}

// openFavorites opens the favorites database of the user.
func openFavorites() (favorites.Store, error) {
	return iofavorites.Open(config.FavoritesFilePath(cfg.HomeDir))
}
