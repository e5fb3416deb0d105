// Package rolespec plugs role conformance checks into go test.
//
// Roles are resolved and cases are generated when the suite is defined,
// before any subtest runs, so a misspelled role identifier fails the whole
// test at once:
//
//	func TestGatewayRole(t *testing.T) {
//	    rolespec.ImplementsRole(t, "Shop::Payments::Gateway",
//	        func() any { return stripe.New() },
//	        rolespec.OptIntrospector(ioreflect.New(ns)),
//	        rolespec.OptNamespace(ns),
//	    )
//	}
//
// Every generated subtest is named after the role method, for example
// `Shop::Payments::Gateway interface/defines #Charge(amount, currency)`.
package rolespec

import (
	"testing"

	"github.com/gnames/rolecheck/pkg/conformance"
	"github.com/gnames/rolecheck/pkg/namespace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Suite collects conformance cases of one or more roles.
type Suite struct {
	ns         *namespace.Namespace
	intr       conformance.Introspector
	looseNames bool
	groups     []group
}

type group struct {
	role  string
	cases []Case
}

// Case is a labeled test body generated for one role method.
type Case struct {
	Label string
	Body  func(t assert.TestingT, subject any) bool
}

// Option configures a Suite.
type Option func(*Suite)

// OptNamespace sets the namespace roles are resolved from.
// Default is namespace.Global().
func OptNamespace(ns *namespace.Namespace) Option {
	return func(s *Suite) {
		if ns != nil {
			s.ns = ns
		}
	}
}

// OptIntrospector sets how subjects are inspected.
// Default is conformance.TypeIntrospector.
func OptIntrospector(intr conformance.Introspector) Option {
	return func(s *Suite) {
		if intr != nil {
			s.intr = intr
		}
	}
}

// OptLooseNames makes generated cases ignore parameter names.
func OptLooseNames(b bool) Option {
	return func(s *Suite) {
		s.looseNames = b
	}
}

// New creates an empty suite.
func New(opts ...Option) *Suite {
	res := &Suite{
		ns:   namespace.Global(),
		intr: conformance.TypeIntrospector{},
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// ImplementsRole resolves the role and generates its cases right away.
// It returns a RoleNotFound error when the identifier does not resolve.
func (s *Suite) ImplementsRole(roleID string) error {
	r, err := s.ns.Resolve(roleID)
	if err != nil {
		return err
	}

	var opts []conformance.Option
	if s.looseNames {
		opts = append(opts, conformance.WithLooseNames())
	}

	g := group{role: r.Name}
	for _, c := range conformance.Generate(r, opts...) {
		g.cases = append(g.cases, Case{
			Label: c.Label,
			Body:  s.body(c),
		})
	}
	s.groups = append(s.groups, g)
	return nil
}

func (s *Suite) body(c conformance.Case) func(assert.TestingT, any) bool {
	intr := s.intr
	return func(t assert.TestingT, subject any) bool {
		if h, ok := t.(interface{ Helper() }); ok {
			h.Helper()
		}
		res := c.Check(intr, subject)
		if res.Passed() {
			return true
		}
		return assert.Fail(t, res.Message, res.Detail())
	}
}

// Cases returns generated cases of all roles in definition order.
func (s *Suite) Cases() []Case {
	var res []Case
	for _, g := range s.groups {
		res = append(res, g.cases...)
	}
	return res
}

// Run registers a subtest group per role and a subtest per case.
// The subject function is called once for every case.
func (s *Suite) Run(t *testing.T, subject func() any) {
	t.Helper()
	for _, g := range s.groups {
		t.Run(g.role+" interface", func(t *testing.T) {
			for _, c := range g.cases {
				t.Run(c.Label, func(t *testing.T) {
					c.Body(t, subject())
				})
			}
		})
	}
}

// ImplementsRole generates and runs conformance subtests of one role.
// An unknown role stops the test before any subtest starts.
func ImplementsRole(
	t *testing.T,
	roleID string,
	subject func() any,
	opts ...Option,
) {
	t.Helper()
	s := New(opts...)
	require.NoError(t, s.ImplementsRole(roleID),
		"role %q cannot be resolved", roleID)
	s.Run(t, subject)
}
