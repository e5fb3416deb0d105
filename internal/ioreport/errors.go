package ioreport

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/rolecheck/pkg/errcode"
)

// ReportWriteError is returned when the report cannot be written out.
func ReportWriteError(err error) error {
	msg := "Cannot write conformance report"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReportWriteError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot write report: %w", fn.Name(), err),
	}
}
