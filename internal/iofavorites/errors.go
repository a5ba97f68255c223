package iofavorites

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/namenest/namenest/pkg/errcode"
)

func OpenError(path string, err error) error {
	msg := "Cannot open favorites database <em>%s</em>"
	return &gn.Error{
		Code: errcode.FavoritesOpenError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot open favorites %s: %w", path, err),
	}
}

func QueryError(op string, err error) error {
	msg := "Cannot <em>%s</em> favorites"
	return &gn.Error{
		Code: errcode.FavoritesQueryError,
		Msg:  msg,
		Vars: []any{op},
		Err:  fmt.Errorf("favorites %s: %w", op, err),
	}
}
