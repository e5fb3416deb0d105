package namespace_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/rolecheck/pkg/errcode"
	"github.com/gnames/rolecheck/pkg/namespace"
	"github.com/gnames/rolecheck/pkg/role"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *namespace.Namespace {
	ns := namespace.New()
	require.NoError(t, ns.Define("Shop::Payments::Gateway",
		role.New("", role.Method{Name: "Charge"})))
	require.NoError(t, ns.Define("Shop::Cart",
		role.New("Shop::Cart", role.Method{Name: "Add"})))
	require.NoError(t, ns.Define("lifecycle.Optimizer",
		role.New("", role.Method{Name: "Optimize"})))
	return ns
}

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, namespace.Split("A::B::C"))
	assert.Equal(t, []string{"A", "B", "C"}, namespace.Split("A.B.C"))
	assert.Equal(t, []string{"a.b", "C"}, namespace.Split("a.b::C"))
	assert.Equal(t, []string{"Role"}, namespace.Split("Role"))
}

func TestResolve(t *testing.T) {
	ns := sample(t)

	tests := []struct {
		msg    string
		path   string
		name   string
		nMeth  int
		hasErr bool
	}{
		{"nested type", "Shop::Payments::Gateway", "Shop::Payments::Gateway", 1, false},
		{"dot delimiter", "Shop.Payments.Gateway", "Shop::Payments::Gateway", 1, false},
		{"go style", "lifecycle.Optimizer", "lifecycle.Optimizer", 1, false},
		{"pure namespace", "Shop::Payments", "Shop::Payments", 0, false},
		{"unknown root", "NoSuch::Role", "", 0, true},
		{"unknown leaf", "Shop::Nothing", "", 0, true},
		{"too deep", "Shop::Cart::Item", "", 0, true},
		{"empty path", "", "", 0, true},
		{"empty segment", "Shop::::Cart", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			res, err := ns.Resolve(tt.path)
			if tt.hasErr {
				require.Error(t, err)
				assert.True(t, namespace.IsRoleNotFound(err))
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name, res.Name)
			assert.Len(t, res.DeclaredMethods(), tt.nMeth)
		})
	}
}

func TestRoleNotFoundError(t *testing.T) {
	ns := namespace.New()
	_, err := ns.Resolve("NoSuch::Role")
	require.Error(t, err)

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.RoleNotFoundError, gnErr.Code)
	assert.Equal(t, []any{"NoSuch::Role", "NoSuch"}, gnErr.Vars)
	assert.Contains(t, gnErr.Err.Error(), `"NoSuch"`)

	assert.False(t, namespace.IsRoleNotFound(errors.New("other")))
	assert.False(t, namespace.IsRoleNotFound(nil))
}

func TestDefine(t *testing.T) {
	ns := namespace.New()

	err := ns.Define("A::::B", role.New(""))
	require.Error(t, err)
	assert.False(t, namespace.IsRoleNotFound(err))

	first := role.New("")
	second := role.New("")
	require.NoError(t, ns.Define("A::B", first))
	require.NoError(t, ns.Define("A::B", second))
	res, err := ns.Resolve("A::B")
	require.NoError(t, err)
	assert.Same(t, second, res)
}

func TestPaths(t *testing.T) {
	ns := sample(t)
	assert.Equal(t, []string{
		"Shop::Payments::Gateway",
		"Shop::Cart",
		"lifecycle::Optimizer",
	}, ns.Paths())
}

func TestConcurrentAccess(t *testing.T) {
	ns := namespace.New()
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				_ = ns.Define("A::B", role.New(""))
				return
			}
			_, _ = ns.Resolve("A::B")
		}()
	}
	wg.Wait()
	_, err := ns.Resolve("A::B")
	assert.NoError(t, err)
}

func TestGlobal(t *testing.T) {
	assert.Same(t, namespace.Global(), namespace.Global())
}

func TestLookup(t *testing.T) {
	ns := sample(t)

	res, ok := ns.Lookup("Shop.Cart")
	require.True(t, ok)
	assert.Equal(t, "Shop::Cart", res.Name)

	_, ok = ns.Lookup("Shop::Payments")
	assert.False(t, ok, "pure namespace has no type")

	_, ok = ns.Lookup("Nope")
	assert.False(t, ok)
}
