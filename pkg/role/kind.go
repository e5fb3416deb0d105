package role

import (
	"fmt"
	"strings"
)

// ParamKind tells how a parameter is bound at a call site.
type ParamKind int

const (
	Required ParamKind = iota
	Optional
	Rest
	KeywordRequired
	KeywordOptional
	KeywordRest
	Block
)

var kindNames = []string{
	"required",
	"optional",
	"rest",
	"keyword-required",
	"keyword-optional",
	"keyword-rest",
	"block",
}

func (k ParamKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind converts a kind name back to ParamKind. Names are
// case-insensitive, underscores are accepted instead of dashes.
func ParseKind(s string) (ParamKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "-")
	for i, v := range kindNames {
		if v == s {
			return ParamKind(i), nil
		}
	}
	return Required, fmt.Errorf("unknown parameter kind %q", s)
}
