package iofs

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/namenest/namenest/pkg/errcode"
)

func CreateDirError(dir string, err error) error {
	msg := `Cannot create namenest directory <em>%s</em>

<em>How to fix:</em>
  1. Check that HOME points to a writable directory
  2. Remove a file with the same name if there is one`
	vars := []any{dir}
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("mkdir %s: %w", dir, err),
	}
}

func WriteConfigError(path string, err error) error {
	msg := "Cannot save default settings to <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.WriteConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("write config template %s: %w", path, err),
	}
}

func ReadConfigError(path string, err error) error {
	msg := `Cannot read settings from <em>%s</em>

<em>How to fix:</em>
  1. Check the YAML syntax of the file
  2. Delete the file, default settings are written on the next run`
	vars := []any{path}
	return &gn.Error{
		Code: errcode.ReadConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("read config %s: %w", path, err),
	}
}
