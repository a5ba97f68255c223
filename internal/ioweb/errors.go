package ioweb

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/namenest/namenest/pkg/errcode"
)

func ServerError(addr string, err error) error {
	msg := "HTTP API at <em>%s</em> failed"
	return &gn.Error{
		Code: errcode.ServerError,
		Msg:  msg,
		Vars: []any{addr},
		Err:  fmt.Errorf("http server %s: %w", addr, err),
	}
}
