// Package role describes method contracts: types, their methods and the
// parameter signatures of those methods.
//
// A Type plays two parts. As a role it is the contract whose public,
// directly declared methods other types are expected to mirror. As a
// subject it is the method table of a type under test, where inherited
// methods count as well.
//
// The package is pure: types are built by loaders (Go sources, YAML
// definitions, reflection) and are read-only afterwards.
package role

// Method is a named method with its parameter signature.
type Method struct {
	Name      string
	Signature Signature

	// Private methods are not part of a contract and cannot satisfy one.
	Private bool

	// PointerReceiver is set for methods that are only available on
	// a pointer to the type.
	PointerReceiver bool
}

// Label renders the method as `Name(a, b = nil)`.
func (m Method) Label() string {
	return m.Name + "(" + m.Signature.String() + ")"
}

// Type is a named set of methods. Methods keep declaration order.
// Parents hold the types whose methods Type inherits or embeds.
type Type struct {
	Name    string
	Methods []Method
	Parents []*Type
}

// New creates a Type with given name and methods.
func New(name string, methods ...Method) *Type {
	res := &Type{Name: name}
	for _, v := range methods {
		res.AddMethod(v)
	}
	return res
}

// AddMethod appends a method. A method with the same name replaces
// the earlier definition, keeping its position.
func (t *Type) AddMethod(m Method) {
	for i := range t.Methods {
		if t.Methods[i].Name == m.Name {
			t.Methods[i] = m
			return
		}
	}
	t.Methods = append(t.Methods, m)
}

// AddParent registers a type whose methods are inherited by t.
func (t *Type) AddParent(p *Type) {
	if p == nil || p == t {
		return
	}
	t.Parents = append(t.Parents, p)
}

// DeclaredMethods returns public methods declared directly on the type,
// in declaration order.
func (t *Type) DeclaredMethods() []Method {
	var res []Method
	for _, v := range t.Methods {
		if !v.Private {
			res = append(res, v)
		}
	}
	return res
}

// Method finds a public method by name on the type or any of its parents.
// Own methods shadow inherited ones, parents are searched depth-first
// in registration order.
func (t *Type) Method(name string) (Method, bool) {
	return t.lookup(name, make(map[*Type]struct{}))
}

func (t *Type) lookup(
	name string,
	seen map[*Type]struct{},
) (Method, bool) {
	if _, ok := seen[t]; ok {
		return Method{}, false
	}
	seen[t] = struct{}{}

	for _, v := range t.Methods {
		if v.Name != name {
			continue
		}
		// a private definition hides inherited public one
		if v.Private {
			return Method{}, false
		}
		return v, true
	}

	for _, p := range t.Parents {
		if m, ok := p.lookup(name, seen); ok {
			return m, true
		}
	}
	return Method{}, false
}
