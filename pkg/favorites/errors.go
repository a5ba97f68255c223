package favorites

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/namenest/namenest/pkg/errcode"
)

// InvalidIDError is returned for a favorite ID that is not a record ID.
func InvalidIDError(id string) error {
	msg := "<em>%s</em> is not a valid name ID"
	return &gn.Error{
		Code: errcode.FavoritesInvalidIDError,
		Msg:  msg,
		Vars: []any{id},
		Err:  fmt.Errorf("invalid favorite id %q", id),
	}
}
