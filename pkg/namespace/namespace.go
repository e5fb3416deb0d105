// Package namespace keeps a tree of named bindings and resolves
// role identifiers like `Shop::Payments::Gateway` or `lifecycle.Optimizer`
// into role types.
//
// Every node of the tree can hold a type and nested namespaces at the same
// time. Lookups walk the tree from a single root, so a missing segment is
// reported before any conformance test is generated.
package namespace

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/gnames/rolecheck/pkg/role"
)

const (
	// Separator is the preferred delimiter of path segments.
	Separator = "::"
	// DotSeparator is accepted when a path does not contain Separator.
	DotSeparator = "."
)

// Loader populates a namespace from some source of type definitions.
type Loader interface {
	Load(ctx context.Context, ns *Namespace) error
}

// Namespace is a root of named bindings.
type Namespace struct {
	mu   sync.RWMutex
	root *node
}

type node struct {
	name    string
	typ     *role.Type
	members map[string]*node
	order   []string
}

func newNode(name string) *node {
	return &node{name: name, members: make(map[string]*node)}
}

var global = New()

// New creates an empty namespace root.
func New() *Namespace {
	return &Namespace{root: newNode("")}
}

// Global returns the process-wide namespace used when no namespace is
// given explicitly.
func Global() *Namespace {
	return global
}

// Split breaks a path into segments. The `::` delimiter wins when present,
// otherwise segments are separated by dots.
func Split(path string) []string {
	sep := DotSeparator
	if strings.Contains(path, Separator) {
		sep = Separator
	}
	return strings.Split(path, sep)
}

// Define binds a type at the given path, creating intermediate namespaces
// as needed. An empty type name is set to the path itself.
// Defining the same path again replaces the earlier type.
func (ns *Namespace) Define(path string, typ *role.Type) error {
	segs := Split(path)
	if slices.Contains(segs, "") {
		return InvalidPathError(path)
	}
	if typ.Name == "" {
		typ.Name = path
	}

	ns.mu.Lock()
	defer ns.mu.Unlock()

	cur := ns.root
	for _, v := range segs {
		next, ok := cur.members[v]
		if !ok {
			next = newNode(v)
			cur.members[v] = next
			cur.order = append(cur.order, v)
		}
		cur = next
	}
	cur.typ = typ
	return nil
}

// Resolve walks the path segments from the root and returns the type
// bound at the end of the path. A path that ends at a namespace without
// a type resolves to an empty role named by the path.
// Any undefined segment produces a RoleNotFound error.
func (ns *Namespace) Resolve(path string) (*role.Type, error) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()

	cur := ns.root
	for _, v := range Split(path) {
		next, ok := cur.members[v]
		if !ok || v == "" {
			return nil, RoleNotFoundError(path, v)
		}
		cur = next
	}
	if cur.typ == nil {
		return role.New(path), nil
	}
	return cur.typ, nil
}

// Lookup returns the type bound at the path. Unlike Resolve, it does not
// treat pure namespaces as empty roles.
func (ns *Namespace) Lookup(path string) (*role.Type, bool) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()

	cur := ns.root
	for _, v := range Split(path) {
		next, ok := cur.members[v]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur.typ, cur.typ != nil
}

// Paths returns paths of all bound types in definition order, using
// Separator as delimiter.
func (ns *Namespace) Paths() []string {
	ns.mu.RLock()
	defer ns.mu.RUnlock()

	var res []string
	var walk func(n *node, prefix []string)
	walk = func(n *node, prefix []string) {
		for _, k := range n.order {
			child := n.members[k]
			path := append(slices.Clone(prefix), k)
			if child.typ != nil {
				res = append(res, strings.Join(path, Separator))
			}
			walk(child, path)
		}
	}
	walk(ns.root, nil)
	return res
}
