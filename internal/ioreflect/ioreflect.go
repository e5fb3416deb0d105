// Package ioreflect inspects live Go values for conformance checks.
//
// Reflection knows method names, parameter counts and variadic parameters,
// but not parameter names. When the namespace holds a type loaded from
// source under `<package>.<Type>`, its signatures (with real parameter
// names) are used instead.
package ioreflect

import (
	"fmt"
	"path"
	"reflect"

	"github.com/gnames/rolecheck/pkg/conformance"
	"github.com/gnames/rolecheck/pkg/namespace"
	"github.com/gnames/rolecheck/pkg/role"
)

type ioreflect struct {
	ns *namespace.Namespace
}

// New creates an introspector for Go values. The namespace may be nil,
// then reflection alone is used.
func New(ns *namespace.Namespace) conformance.Introspector {
	res := ioreflect{ns: ns}
	return &res
}

// Method finds a public method of the subject's dynamic type.
func (r *ioreflect) Method(subject any, name string) (role.Method, error) {
	if subject == nil {
		return role.Method{}, fmt.Errorf("subject is nil")
	}
	t := reflect.TypeOf(subject)
	isPtr := t.Kind() == reflect.Pointer
	base := t
	if isPtr {
		base = t.Elem()
	}

	if r.ns != nil {
		if typ, ok := r.ns.Lookup(TypePath(base)); ok {
			m, ok := typ.Method(name)
			if !ok {
				return role.Method{}, fmt.Errorf("%s#%s: %w",
					typ.Name, name, conformance.ErrNoMethod)
			}
			if m.PointerReceiver && !isPtr {
				return role.Method{}, fmt.Errorf(
					"%s#%s has pointer receiver: %w",
					typ.Name, name, conformance.ErrNoMethod)
			}
			return m, nil
		}
	}

	rm, ok := t.MethodByName(name)
	if !ok {
		return role.Method{}, fmt.Errorf("%s#%s: %w",
			t, name, conformance.ErrNoMethod)
	}
	// the receiver is the first input of a method expression
	return role.Method{
		Name:      name,
		Signature: signature(rm.Type, 1),
	}, nil
}

// TypePath is the namespace path of a named type: `<package>.<Type>`.
// The package name is taken as the last element of its import path.
func TypePath(t reflect.Type) string {
	return path.Base(t.PkgPath()) + "." + t.Name()
}

// RoleOf builds a role from an interface type. Reflection lists methods
// in lexical order and does not tell embedded methods apart, so all of
// them are treated as declared directly. Parameters are named
// positionally: arg1, arg2, ...
func RoleOf[T any]() (*role.Type, error) {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Interface {
		return nil, fmt.Errorf("%s is not an interface", t)
	}
	res := role.New(TypePath(t))
	for i := range t.NumMethod() {
		m := t.Method(i)
		res.AddMethod(role.Method{
			Name:      m.Name,
			Signature: signature(m.Type, 0),
			Private:   !m.IsExported(),
		})
	}
	return res, nil
}

func signature(ft reflect.Type, skip int) role.Signature {
	var res role.Signature
	n := ft.NumIn()
	for i := skip; i < n; i++ {
		kind := role.Required
		if ft.IsVariadic() && i == n-1 {
			kind = role.Rest
		}
		res = append(res, role.Param{
			Kind: kind,
			Name: fmt.Sprintf("arg%d", i-skip+1),
		})
	}
	return res
}
