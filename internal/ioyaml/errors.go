package ioyaml

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/rolecheck/pkg/errcode"
)

func ReadFileError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn.Name(), path, err),
		Msg:  msg,
		Vars: vars,
	}
}

// RoleDefinitionError is returned for malformed definition files.
func RoleDefinitionError(path string, err error) error {
	msg := `Invalid role definitions in <em>%s</em>

<em>Possible causes:</em>
  - Invalid YAML format
  - Unknown parameter kind
  - Type, method or parameter without a name
  - Parent type is not defined in any loaded file

<em>Valid parameter kinds:</em>
  required, optional, rest, keyword-required,
  keyword-optional, keyword-rest, block`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RoleDefinitionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: invalid definitions in %s: %w",
			fn.Name(), path, err),
	}
}
