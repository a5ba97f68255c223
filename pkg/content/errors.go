package content

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/namenest/namenest/pkg/errcode"
)

// LoadError is returned when embedded content cannot be read or
// rendered.
func LoadError(name string, err error) error {
	msg := "Cannot load content <em>%s</em>"
	return &gn.Error{
		Code: errcode.ContentLoadError,
		Msg:  msg,
		Vars: []any{name},
		Err:  fmt.Errorf("cannot load content %s: %w", name, err),
	}
}

// PostNotFoundError is returned for an unknown blog slug.
func PostNotFoundError(slug string) error {
	msg := "Cannot find blog post <em>%s</em>"
	return &gn.Error{
		Code: errcode.PostNotFoundError,
		Msg:  msg,
		Vars: []any{slug},
		Err:  fmt.Errorf("post %q not found", slug),
	}
}
