package iologger

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/namenest/namenest/pkg/errcode"
)

func OpenLogFileError(path string, err error) error {
	msg := `Cannot open namenest log <em>%s</em>

Set <em>log.destination</em> to <em>stderr</em> in config.yaml
or NAMENEST_LOG_DESTINATION=stderr to log to the terminal.`
	vars := []any{path}
	return &gn.Error{
		Code: errcode.OpenLogFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("open log %s: %w", path, err),
	}
}
