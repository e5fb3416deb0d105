package rolespec_test

import (
	"fmt"
	"testing"

	"github.com/gnames/rolecheck/pkg/namespace"
	"github.com/gnames/rolecheck/pkg/role"
	"github.com/gnames/rolecheck/pkg/rolespec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects failures instead of failing the running test.
type recorder struct {
	errs []string
}

func (r *recorder) Errorf(format string, args ...any) {
	r.errs = append(r.errs, fmt.Sprintf(format, args...))
}

func testNamespace(t *testing.T) *namespace.Namespace {
	ns := namespace.New()
	require.NoError(t, ns.Define("Shop::Payments::Gateway", role.New("",
		role.Method{Name: "Charge", Signature: role.Signature{
			{Kind: role.Required, Name: "amount"},
			{Kind: role.Optional, Name: "currency"},
		}},
		role.Method{Name: "Refund", Signature: role.Signature{
			{Kind: role.Required, Name: "id"},
		}},
	)))
	return ns
}

func goodSubject() *role.Type {
	return role.New("Stripe",
		role.Method{Name: "Charge", Signature: role.Signature{
			{Kind: role.Required, Name: "amount"},
			{Kind: role.Optional, Name: "currency"},
		}},
		role.Method{Name: "Refund", Signature: role.Signature{
			{Kind: role.Required, Name: "id"},
		}},
	)
}

func TestImplementsRole(t *testing.T) {
	ns := testNamespace(t)
	calls := 0
	rolespec.ImplementsRole(t, "Shop::Payments::Gateway",
		func() any {
			calls++
			return goodSubject()
		},
		rolespec.OptNamespace(ns),
	)
	assert.Equal(t, 2, calls, "subject is provided fresh per case")
}

func TestSuiteUnknownRole(t *testing.T) {
	s := rolespec.New(rolespec.OptNamespace(testNamespace(t)))
	err := s.ImplementsRole("NoSuch::Role")
	require.Error(t, err)
	assert.True(t, namespace.IsRoleNotFound(err))
	assert.Empty(t, s.Cases(), "nothing is generated for unknown roles")
}

func TestSuiteCases(t *testing.T) {
	s := rolespec.New(rolespec.OptNamespace(testNamespace(t)))
	require.NoError(t, s.ImplementsRole("Shop.Payments.Gateway"))

	cases := s.Cases()
	require.Len(t, cases, 2)
	assert.Equal(t, "defines #Charge(amount, currency = nil)", cases[0].Label)
	assert.Equal(t, "defines #Refund(id)", cases[1].Label)

	rec := &recorder{}
	for _, c := range cases {
		assert.True(t, c.Body(rec, goodSubject()))
	}
	assert.Empty(t, rec.errs)
}

func TestSuiteCaseFailures(t *testing.T) {
	s := rolespec.New(rolespec.OptNamespace(testNamespace(t)))
	require.NoError(t, s.ImplementsRole("Shop::Payments::Gateway"))
	cases := s.Cases()

	subject := role.New("Broken",
		role.Method{Name: "Charge", Signature: role.Signature{
			{Kind: role.Required, Name: "amount"},
		}},
	)

	rec := &recorder{}
	assert.False(t, cases[0].Body(rec, subject))
	assert.False(t, cases[1].Body(rec, subject))
	require.Len(t, rec.errs, 2)
	assert.Contains(t, rec.errs[0],
		"Incomplete implementation of Shop::Payments::Gateway. "+
			"Parameters for #Charge(amount, currency = nil) do not match.")
	assert.Contains(t, rec.errs[0], "actual:   Charge(amount)")
	assert.Contains(t, rec.errs[1],
		"Incomplete implementation of Shop::Payments::Gateway. "+
			"#Refund(id) is not defined.")
}

func TestSuiteLooseNames(t *testing.T) {
	subject := role.New("Renamed",
		role.Method{Name: "Charge", Signature: role.Signature{
			{Kind: role.Required, Name: "sum"},
			{Kind: role.Optional, Name: "cur"},
		}},
		role.Method{Name: "Refund", Signature: role.Signature{
			{Kind: role.Required, Name: "refundID"},
		}},
	)

	strict := rolespec.New(rolespec.OptNamespace(testNamespace(t)))
	require.NoError(t, strict.ImplementsRole("Shop::Payments::Gateway"))
	rec := &recorder{}
	for _, c := range strict.Cases() {
		c.Body(rec, subject)
	}
	assert.Len(t, rec.errs, 2)

	loose := rolespec.New(
		rolespec.OptNamespace(testNamespace(t)),
		rolespec.OptLooseNames(true),
	)
	require.NoError(t, loose.ImplementsRole("Shop::Payments::Gateway"))
	rec = &recorder{}
	for _, c := range loose.Cases() {
		c.Body(rec, subject)
	}
	assert.Empty(t, rec.errs)
}

func TestSuiteSeveralRoles(t *testing.T) {
	ns := testNamespace(t)
	require.NoError(t, ns.Define("Shop::Closer",
		role.New("", role.Method{Name: "Close"})))

	s := rolespec.New(rolespec.OptNamespace(ns))
	require.NoError(t, s.ImplementsRole("Shop::Payments::Gateway"))
	require.NoError(t, s.ImplementsRole("Shop::Closer"))
	assert.Len(t, s.Cases(), 3)

	subject := goodSubject()
	subject.AddMethod(role.Method{Name: "Close"})
	s.Run(t, func() any { return subject })
}

func TestGlobalNamespace(t *testing.T) {
	require.NoError(t, namespace.Global().Define("rolespec_test.Pinger",
		role.New("", role.Method{Name: "Ping"})))
	rolespec.ImplementsRole(t, "rolespec_test.Pinger", func() any {
		return role.New("Impl", role.Method{Name: "Ping"})
	})
}
