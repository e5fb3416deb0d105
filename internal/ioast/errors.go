package ioast

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/rolecheck/pkg/errcode"
)

// ReadDirError is returned when a source directory cannot be listed.
func ReadDirError(dir string, err error) error {
	msg := "Cannot read source directory <em>%s</em>"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read directory %s: %w",
			fn.Name(), dir, err),
	}
}

// SourceParseError is returned when a Go file has syntax errors.
func SourceParseError(path string, err error) error {
	msg := `Cannot parse Go source <em>%s</em>

<em>How to fix:</em>
  1. Make sure the file compiles: <em>go vet %s</em>
  2. Exclude the directory from <em>--src</em> list`
	vars := []any{path, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SourceParseError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot parse %s: %w",
			fn.Name(), path, err),
	}
}
