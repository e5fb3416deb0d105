package namespace

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/rolecheck/pkg/errcode"
)

// RoleNotFoundError is returned when a segment of a role path is not
// defined at its place in the path.
func RoleNotFoundError(path, segment string) error {
	msg := "Cannot find role <em>%s</em>: <em>%s</em> is not defined"
	vars := []any{path, segment}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RoleNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: uninitialized constant %q in %q",
			fn.Name(), segment, path),
	}
}

// InvalidPathError is returned when a type is defined at a path with
// empty segments.
func InvalidPathError(path string) error {
	msg := "Cannot define a type at <em>%s</em>, path has empty segments"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RoleDefinitionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: invalid path %q", fn.Name(), path),
	}
}

// IsRoleNotFound reports whether err was produced by RoleNotFoundError.
func IsRoleNotFound(err error) bool {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		return gnErr.Code == errcode.RoleNotFoundError
	}
	return false
}
