package iofeed

import (
	"fmt"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/namenest/namenest/pkg/errcode"
)

func RequestError(url string, err error) error {
	msg := "Cannot reach the names feed at <em>%s</em>"
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FeedRequestError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: feed request failed: %w",
			fn.Name(), err),
	}
}

func StatusError(url string, status int) error {
	msg := `The names feed at <em>%s</em> returned status <em>%d</em>

<em>How to fix:</em>
  1. Check that the spreadsheet is published to the web
  2. Update <em>feed.url</em> in config.yaml`
	vars := []any{url, status}
	return &gn.Error{
		Code: errcode.FeedStatusError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("feed %s returned status %d", url, status),
	}
}

func ReadError(url string, err error) error {
	msg := "Cannot read the names feed from <em>%s</em>"
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FeedReadError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read feed body: %w",
			fn.Name(), err),
	}
}

func SizeError(url string, limit int64) error {
	msg := "The names feed at <em>%s</em> is larger than <em>%s</em>"
	vars := []any{url, humanize.Bytes(uint64(limit))}
	return &gn.Error{
		Code: errcode.FeedReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("feed %s exceeds %d bytes", url, limit),
	}
}
