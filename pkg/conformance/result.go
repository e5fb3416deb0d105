package conformance

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/rolecheck/pkg/errcode"
	"github.com/gnames/rolecheck/pkg/role"
)

// Status of a finished check.
type Status int

const (
	Pass Status = iota
	Fail
)

func (s Status) String() string {
	if s == Pass {
		return "pass"
	}
	return "fail"
}

// Reason explains a failed check.
type Reason int

const (
	NoReason Reason = iota
	Missing
	SignatureMismatch
)

func (r Reason) String() string {
	switch r {
	case Missing:
		return "missing"
	case SignatureMismatch:
		return "signature-mismatch"
	default:
		return ""
	}
}

// Result is the outcome of one conformance check.
type Result struct {
	Status Status
	Reason Reason
	Role   string
	Method string

	// Want is the role signature, Got is the subject's one. Got is empty
	// when the method is missing.
	Want role.Signature
	Got  role.Signature

	// Message is the failure message, empty for passed checks.
	Message string
}

// Passed is true when the subject mirrors the role method.
func (r Result) Passed() bool {
	return r.Status == Pass
}

// Detail renders both signatures of a failed check.
func (r Result) Detail() string {
	switch r.Reason {
	case Missing:
		return fmt.Sprintf("expected: %s(%s)\nactual:   <not defined>",
			r.Method, r.Want)
	case SignatureMismatch:
		return fmt.Sprintf("expected: %s(%s)\nactual:   %s(%s)",
			r.Method, r.Want, r.Method, r.Got)
	default:
		return ""
	}
}

// Err converts a failed result into an error, nil for passed checks.
func (r Result) Err() error {
	if r.Passed() {
		return nil
	}
	code := errcode.MissingMethodError
	if r.Reason == SignatureMismatch {
		code = errcode.SignatureMismatchError
	}
	return &gn.Error{
		Code: code,
		Msg:  "%s",
		Vars: []any{r.Message},
		Err:  fmt.Errorf("%s: %s", r.Reason, r.Message),
	}
}
