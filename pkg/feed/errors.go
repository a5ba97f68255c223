package feed

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/namenest/namenest/pkg/errcode"
)

// ParseError creates an error for feed content that cannot be parsed.
func ParseError(format string, err error) error {
	msg := `Cannot parse the names feed as <em>%s</em>

<em>Possible causes:</em>
  - The spreadsheet export format differs from feed.format
  - The endpoint returned an HTML error page

<em>How to fix:</em>
  1. Open the feed URL in a browser and check its content
  2. Set <em>feed.format</em> in config.yaml to csv or xlsx`

	return &gn.Error{
		Code: errcode.FeedParseError,
		Msg:  msg,
		Vars: []any{format},
		Err:  fmt.Errorf("cannot parse %s feed: %w", format, err),
	}
}
