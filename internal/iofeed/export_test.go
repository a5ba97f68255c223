package iofeed

import (
	namenest "github.com/namenest/namenest/pkg"
	"github.com/namenest/namenest/pkg/config"
)

// NewWithLimit creates a Fetcher with a custom size limit.
func NewWithLimit(cfg config.FeedConfig, maxSize int64) namenest.Fetcher {
	f := New(cfg).(*fetcher)
	f.maxSize = maxSize
	return f
}
