package ioexport

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/namenest/namenest/pkg/errcode"
)

func ExportError(path string, err error) error {
	msg := "Cannot export names to <em>%s</em>"
	return &gn.Error{
		Code: errcode.ExportError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot export to %s: %w", path, err),
	}
}

func UnknownFormatError(path string) error {
	msg := `Cannot tell the export format of <em>%s</em>

Use one of the extensions <em>.csv</em>, <em>.tsv</em>, <em>.json</em>
or <em>.xlsx</em>.`
	return &gn.Error{
		Code: errcode.ExportError,
		Msg:  msg,
		Vars: []any{path},
		Err:  errors.New("unknown export format of " + path),
	}
}
