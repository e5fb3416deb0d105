package conformance_test

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/rolecheck/pkg/conformance"
	"github.com/gnames/rolecheck/pkg/errcode"
	"github.com/gnames/rolecheck/pkg/role"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func req(name string) role.Param {
	return role.Param{Kind: role.Required, Name: name}
}

func opt(name string) role.Param {
	return role.Param{Kind: role.Optional, Name: name}
}

func gatewayRole() *role.Type {
	base := role.New("Base", role.Method{Name: "Close"})
	res := role.New("Shop::Gateway",
		role.Method{Name: "Charge", Signature: role.Signature{req("amount"), opt("currency")}},
		role.Method{Name: "Refund", Signature: role.Signature{req("id")}},
		role.Method{Name: "helper", Private: true},
		role.Method{Name: "Status"},
	)
	res.AddParent(base)
	return res
}

func TestGenerate(t *testing.T) {
	cases := conformance.Generate(gatewayRole())

	require.Len(t, cases, 3, "one case per public declared method")
	var labels []string
	for _, v := range cases {
		assert.Equal(t, "Shop::Gateway", v.Role)
		labels = append(labels, v.Label)
	}
	assert.Equal(t, []string{
		"defines #Charge(amount, currency = nil)",
		"defines #Refund(id)",
		"defines #Status()",
	}, labels)
}

func TestGenerateEmptyRole(t *testing.T) {
	assert.Empty(t, conformance.Generate(role.New("Empty")))
}

func TestCheckPass(t *testing.T) {
	subj := role.New("Stripe",
		role.Method{Name: "Charge", Signature: role.Signature{req("amount"), opt("currency")}},
		role.Method{Name: "Status"},
		role.Method{Name: "Extra", Signature: role.Signature{req("x")}},
	)
	parent := role.New("Refunder",
		role.Method{Name: "Refund", Signature: role.Signature{req("id")}})
	subj.AddParent(parent)

	for _, c := range conformance.Generate(gatewayRole()) {
		res := c.Check(conformance.TypeIntrospector{}, subj)
		assert.True(t, res.Passed(), c.Label)
		assert.Empty(t, res.Message)
		assert.Equal(t, conformance.NoReason, res.Reason)
		assert.NoError(t, res.Err())
	}
}

func TestCheckFailures(t *testing.T) {
	r := role.New("Shop::Gateway",
		role.Method{Name: "Foo", Signature: role.Signature{req("a"), opt("b")}},
	)
	c := conformance.Generate(r)[0]

	tests := []struct {
		msg     string
		subject any
		reason  conformance.Reason
		text    string
	}{
		{
			msg:     "missing method",
			subject: role.New("S"),
			reason:  conformance.Missing,
			text:    "Incomplete implementation of Shop::Gateway. #Foo(a, b = nil) is not defined.",
		},
		{
			msg: "private method",
			subject: role.New("S", role.Method{
				Name: "Foo", Private: true,
				Signature: role.Signature{req("a"), opt("b")},
			}),
			reason: conformance.Missing,
			text:   "Incomplete implementation of Shop::Gateway. #Foo(a, b = nil) is not defined.",
		},
		{
			msg:     "not a type",
			subject: 42,
			reason:  conformance.Missing,
			text:    "Incomplete implementation of Shop::Gateway. #Foo(a, b = nil) is not defined.",
		},
		{
			msg: "fewer params",
			subject: role.New("S", role.Method{
				Name: "Foo", Signature: role.Signature{req("a")},
			}),
			reason: conformance.SignatureMismatch,
			text:   "Incomplete implementation of Shop::Gateway. Parameters for #Foo(a, b = nil) do not match.",
		},
		{
			msg: "different name",
			subject: role.New("S", role.Method{
				Name: "Foo", Signature: role.Signature{req("a"), opt("c")},
			}),
			reason: conformance.SignatureMismatch,
			text:   "Incomplete implementation of Shop::Gateway. Parameters for #Foo(a, b = nil) do not match.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			res := c.Check(conformance.TypeIntrospector{}, tt.subject)
			assert.False(t, res.Passed())
			assert.Equal(t, conformance.Fail, res.Status)
			assert.Equal(t, tt.reason, res.Reason)
			assert.Equal(t, tt.text, res.Message)
		})
	}
}

func TestKindSensitivity(t *testing.T) {
	r := role.New("R", role.Method{Name: "Foo", Signature: role.Signature{opt("a")}})
	subj := role.New("S", role.Method{Name: "Foo", Signature: role.Signature{req("a")}})

	res := conformance.Generate(r)[0].Check(nil, subj)
	assert.Equal(t, conformance.SignatureMismatch, res.Reason)
	assert.Contains(t, res.Message, "do not match.")

	res = conformance.Generate(r, conformance.WithLooseNames())[0].Check(nil, subj)
	assert.Equal(t, conformance.SignatureMismatch, res.Reason,
		"loose matching still compares kinds")
}

func TestLooseNames(t *testing.T) {
	r := role.New("R", role.Method{Name: "Foo", Signature: role.Signature{req("a")}})
	subj := role.New("S", role.Method{Name: "Foo", Signature: role.Signature{req("b")}})

	res := conformance.Generate(r)[0].Check(nil, subj)
	assert.False(t, res.Passed())

	res = conformance.Generate(r, conformance.WithLooseNames())[0].Check(nil, subj)
	assert.True(t, res.Passed())
}

type brokenIntrospector struct {
	panics bool
}

func (b brokenIntrospector) Method(any, string) (role.Method, error) {
	if b.panics {
		panic("boom")
	}
	return role.Method{}, errors.New("index out of range")
}

func TestLookupErrorsAreMissing(t *testing.T) {
	r := role.New("R", role.Method{Name: "Foo"})
	c := conformance.Generate(r)[0]

	for _, intr := range []conformance.Introspector{
		brokenIntrospector{},
		brokenIntrospector{panics: true},
	} {
		res := c.Check(intr, nil)
		assert.Equal(t, conformance.Missing, res.Reason)
		assert.Equal(t,
			"Incomplete implementation of R. #Foo() is not defined.", res.Message)
	}
}

func TestTypeIntrospector(t *testing.T) {
	var intr conformance.TypeIntrospector
	_, err := intr.Method(role.New("S"), "Foo")
	assert.ErrorIs(t, err, conformance.ErrNoMethod)

	var nilType *role.Type
	_, err = intr.Method(nilType, "Foo")
	assert.Error(t, err)
}

func TestResultDetailAndErr(t *testing.T) {
	r := role.New("R", role.Method{Name: "Foo", Signature: role.Signature{req("a"), opt("b")}})
	c := conformance.Generate(r)[0]

	missing := c.Check(nil, role.New("S"))
	assert.Equal(t, "missing", missing.Reason.String())
	assert.Equal(t, "fail", missing.Status.String())
	assert.Contains(t, missing.Detail(), "expected: Foo(a, b = nil)")
	assert.Contains(t, missing.Detail(), "<not defined>")

	var gnErr *gn.Error
	require.True(t, errors.As(missing.Err(), &gnErr))
	assert.Equal(t, errcode.MissingMethodError, gnErr.Code)

	mismatch := c.Check(nil, role.New("S",
		role.Method{Name: "Foo", Signature: role.Signature{req("a")}}))
	assert.Equal(t, "signature-mismatch", mismatch.Reason.String())
	assert.Contains(t, mismatch.Detail(), "actual:   Foo(a)")
	require.True(t, errors.As(mismatch.Err(), &gnErr))
	assert.Equal(t, errcode.SignatureMismatchError, gnErr.Code)

	pass := c.Check(nil, role.New("S",
		role.Method{Name: "Foo", Signature: role.Signature{req("a"), opt("b")}}))
	assert.Equal(t, "pass", pass.Status.String())
	assert.Empty(t, pass.Detail())
}

func TestLabelUndecoratedKinds(t *testing.T) {
	r := role.New("R", role.Method{Name: "foo", Signature: role.Signature{
		req("a"),
		{Kind: role.Rest, Name: "args"},
		{Kind: role.KeywordRequired, Name: "k"},
		{Kind: role.Block, Name: "blk"},
	}})
	c := conformance.Generate(r)[0]
	assert.Equal(t, "defines #foo(a, args, k, blk)", c.Label)

	res := c.Check(nil, role.New("S"))
	assert.Equal(t,
		"Incomplete implementation of R. #foo(a, args, k, blk) is not defined.",
		res.Message)
}
