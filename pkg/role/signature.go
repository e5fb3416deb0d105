package role

import (
	"strings"
)

// Param describes one parameter of a method.
type Param struct {
	Kind ParamKind
	Name string
}

// String renders the parameter for labels. Only optional parameters are
// decorated, with " = nil". Other kinds render the bare name.
func (p Param) String() string {
	if p.Kind == Optional {
		return p.Name + " = nil"
	}
	return p.Name
}

// Signature is the ordered list of parameters of a method.
type Signature []Param

// Equal is true when both signatures have the same parameters in the same
// order. Kind and name both have to match.
func (s Signature) Equal(other Signature) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// EqualKinds compares parameter kinds only, ignoring names.
func (s Signature) EqualKinds(other Signature) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i].Kind != other[i].Kind {
			return false
		}
	}
	return true
}

// String renders parameters as a comma-separated list, marking optional
// parameters with ` = nil` and rest parameters with `...`.
func (s Signature) String() string {
	res := make([]string, len(s))
	for i, v := range s {
		res[i] = v.String()
	}
	return strings.Join(res, ", ")
}
