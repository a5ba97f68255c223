package catalog

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/namenest/namenest/pkg/errcode"
)

// EmptyFeedError is returned when a feed has no usable records.
func EmptyFeedError(url string, rows int) error {
	msg := `The names feed at <em>%s</em> has no usable records

Rows found: <em>%d</em>. A row needs at least a value in the
<em>Name</em> column.`
	return &gn.Error{
		Code: errcode.FeedEmptyError,
		Msg:  msg,
		Vars: []any{url, rows},
		Err:  fmt.Errorf("feed %s has no records with a name", url),
	}
}

// NotFoundError is returned when no record matches an ID or slug.
func NotFoundError(key string) error {
	msg := "Cannot find a name with ID or slug <em>%s</em>"
	return &gn.Error{
		Code: errcode.NameNotFoundError,
		Msg:  msg,
		Vars: []any{key},
		Err:  fmt.Errorf("name %q not found", key),
	}
}
