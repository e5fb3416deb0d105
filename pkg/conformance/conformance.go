// Package conformance generates one check per method of a role and runs
// those checks against subjects.
//
// A check looks the role method up on the subject's type and compares
// parameter signatures. Every lookup problem is reported as a missing
// method, so a result is always a pass, a missing method, or a signature
// mismatch.
package conformance

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gnames/rolecheck/pkg/role"
)

// ErrNoMethod is returned by introspectors when a subject has no public
// method with the requested name.
var ErrNoMethod = errors.New("method is not defined")

// Introspector finds the public method a subject's type provides under
// a name.
type Introspector interface {
	Method(subject any, name string) (role.Method, error)
}

// TypeIntrospector inspects subjects that are type descriptors.
type TypeIntrospector struct{}

// Method implements Introspector for *role.Type subjects.
func (TypeIntrospector) Method(subject any, name string) (role.Method, error) {
	typ, ok := subject.(*role.Type)
	if !ok || typ == nil {
		return role.Method{}, fmt.Errorf("subject %T is not a type descriptor", subject)
	}
	m, ok := typ.Method(name)
	if !ok {
		return role.Method{}, fmt.Errorf("%s#%s: %w", typ.Name, name, ErrNoMethod)
	}
	return m, nil
}

// Case is a generated conformance check for one role method.
type Case struct {
	// Role is the name of the role the method belongs to.
	Role string
	// Method is the role method the subject has to mirror.
	Method role.Method
	// Label describes the case, e.g. `defines #Charge(amount, currency = nil)`.
	Label string

	looseNames bool
}

// Option configures case generation.
type Option func(*options)

type options struct {
	looseNames bool
}

// WithLooseNames makes cases compare parameter kinds only. By default
// parameter names are significant.
func WithLooseNames() Option {
	return func(o *options) {
		o.looseNames = true
	}
}

// Generate creates one case per public method declared directly on the
// role, in declaration order.
func Generate(r *role.Type, opts ...Option) []Case {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	methods := r.DeclaredMethods()
	res := make([]Case, 0, len(methods))
	for _, m := range methods {
		res = append(res, Case{
			Role:       r.Name,
			Method:     m,
			Label:      "defines #" + m.Label(),
			looseNames: o.looseNames,
		})
	}
	slog.Debug("Generated conformance cases",
		"role", r.Name, "cases", len(res))
	return res
}

// Check runs the case against a subject.
func (c Case) Check(intr Introspector, subject any) Result {
	res := Result{
		Role:   c.Role,
		Method: c.Method.Name,
		Want:   c.Method.Signature,
	}

	imp, err := lookup(intr, subject, c.Method.Name)
	if err != nil {
		slog.Debug("Method lookup failed",
			"role", c.Role, "method", c.Method.Name, "error", err)
		res.Status = Fail
		res.Reason = Missing
		res.Message = fmt.Sprintf(
			"Incomplete implementation of %s. #%s is not defined.",
			c.Role, c.Method.Label(),
		)
		return res
	}
	res.Got = imp.Signature

	if !c.matches(imp.Signature) {
		res.Status = Fail
		res.Reason = SignatureMismatch
		res.Message = fmt.Sprintf(
			"Incomplete implementation of %s. Parameters for #%s do not match.",
			c.Role, c.Method.Label(),
		)
		return res
	}

	res.Status = Pass
	return res
}

func (c Case) matches(sig role.Signature) bool {
	if c.looseNames {
		return c.Method.Signature.EqualKinds(sig)
	}
	return c.Method.Signature.Equal(sig)
}

// lookup converts panics of introspectors into errors, so they are
// reported like any other lookup failure.
func lookup(
	intr Introspector,
	subject any,
	name string,
) (res role.Method, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("introspection of %T failed: %v", subject, r)
		}
	}()
	if intr == nil {
		intr = TypeIntrospector{}
	}
	res, err = intr.Method(subject, name)
	if err == nil && res.Private {
		err = fmt.Errorf("%s is private: %w", name, ErrNoMethod)
	}
	return res, err
}
