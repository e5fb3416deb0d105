// Package ioast loads roles and subjects from Go source code.
//
// Interfaces become roles, other named types become subjects. Parameter
// names and method order are taken from the source, which reflection
// cannot provide. Types are bound in a namespace at `<package>.<Type>`.
package ioast

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/rolecheck/pkg/config"
	"github.com/gnames/rolecheck/pkg/namespace"
	"github.com/gnames/rolecheck/pkg/role"
	"golang.org/x/sync/errgroup"
)

type ioast struct {
	dirs         []string
	jobs         int
	withProgress bool
}

// New creates a loader for source directories from the configuration.
func New(cfg *config.Config) namespace.Loader {
	res := ioast{
		dirs:         cfg.Check.SourceDirs,
		jobs:         cfg.JobsNumber,
		withProgress: cfg.Check.WithProgress,
	}
	return &res
}

// Load parses all source directories concurrently, then binds found
// types and links embedded types to their parents.
func (a *ioast) Load(ctx context.Context, ns *namespace.Namespace) error {
	if len(a.dirs) == 0 {
		return nil
	}

	jobs := a.jobs
	if jobs <= 0 {
		jobs = 1
	}

	var bar *pb.ProgressBar
	if a.withProgress && len(a.dirs) > 1 {
		bar = newProgressBar(len(a.dirs), "Parsing sources: ")
		defer bar.Finish()
	}

	res := make([][]*pkgTypes, len(a.dirs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, dir := range a.dirs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			pkgs, err := parseDir(dir)
			if err != nil {
				return err
			}
			res[i] = pkgs
			if bar != nil {
				bar.Increment()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var all []*pkgTypes
	for _, v := range res {
		all = append(all, v...)
	}
	return bind(ns, all)
}

// pkgTypes holds types of one package in declaration order together
// with unresolved references to embedded types.
type pkgTypes struct {
	name   string
	dir    string
	types  []*role.Type
	embeds map[*role.Type][]string
}

func parseDir(dir string) ([]*pkgTypes, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ReadDirError(dir, err)
	}

	var files []string
	for _, v := range entries {
		name := v.Name()
		if v.IsDir() || !strings.HasSuffix(name, ".go") ||
			strings.HasSuffix(name, "_test.go") {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	slices.Sort(files)

	fset := token.NewFileSet()
	byPkg := make(map[string][]*ast.File)
	var order []string
	for _, path := range files {
		f, err := parser.ParseFile(fset, path, nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, SourceParseError(path, err)
		}
		name := f.Name.Name
		if _, ok := byPkg[name]; !ok {
			order = append(order, name)
		}
		byPkg[name] = append(byPkg[name], f)
	}

	res := make([]*pkgTypes, 0, len(order))
	for _, name := range order {
		pt := collect(name, byPkg[name])
		pt.dir = dir
		res = append(res, pt)
		slog.Debug("Parsed Go package",
			"dir", dir, "package", name, "types", len(pt.types))
	}
	return res, nil
}

func collect(pkg string, files []*ast.File) *pkgTypes {
	res := &pkgTypes{
		name:   pkg,
		embeds: make(map[*role.Type][]string),
	}
	byName := make(map[string]*role.Type)

	for _, f := range files {
		for _, d := range f.Decls {
			gd, ok := d.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, s := range gd.Specs {
				ts := s.(*ast.TypeSpec)
				typ := role.New(pkg + "." + ts.Name.Name)
				byName[ts.Name.Name] = typ
				res.types = append(res.types, typ)
				res.embeds[typ] = typeSpec(pkg, ts, typ)
			}
		}
	}

	for _, f := range files {
		for _, d := range f.Decls {
			fd, ok := d.(*ast.FuncDecl)
			if !ok || fd.Recv == nil || len(fd.Recv.List) == 0 {
				continue
			}
			recv, ptr := receiver(fd.Recv.List[0].Type)
			typ, ok := byName[recv]
			if !ok {
				continue
			}
			typ.AddMethod(role.Method{
				Name:            fd.Name.Name,
				Signature:       signature(fd.Type),
				Private:         !ast.IsExported(fd.Name.Name),
				PointerReceiver: ptr,
			})
		}
	}
	return res
}

// typeSpec adds interface methods to typ and returns references to
// embedded types.
func typeSpec(pkg string, ts *ast.TypeSpec, typ *role.Type) []string {
	var res []string
	switch t := ts.Type.(type) {
	case *ast.InterfaceType:
		for _, f := range t.Methods.List {
			if ft, ok := f.Type.(*ast.FuncType); ok && len(f.Names) > 0 {
				name := f.Names[0].Name
				typ.AddMethod(role.Method{
					Name:      name,
					Signature: signature(ft),
					Private:   !ast.IsExported(name),
				})
				continue
			}
			if ref := typeRef(pkg, f.Type); ref != "" {
				res = append(res, ref)
			}
		}
	case *ast.StructType:
		for _, f := range t.Fields.List {
			if len(f.Names) > 0 {
				continue
			}
			if ref := typeRef(pkg, f.Type); ref != "" {
				res = append(res, ref)
			}
		}
	}
	return res
}

// typeRef converts an embedded type expression to a namespace path.
// Type parameters and unions are not references.
func typeRef(pkg string, expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return pkg + "." + t.Name
	case *ast.StarExpr:
		return typeRef(pkg, t.X)
	case *ast.SelectorExpr:
		if x, ok := t.X.(*ast.Ident); ok {
			return x.Name + "." + t.Sel.Name
		}
	case *ast.IndexExpr:
		return typeRef(pkg, t.X)
	case *ast.IndexListExpr:
		return typeRef(pkg, t.X)
	}
	return ""
}

func receiver(expr ast.Expr) (string, bool) {
	switch t := expr.(type) {
	case *ast.StarExpr:
		name, _ := receiver(t.X)
		return name, true
	case *ast.Ident:
		return t.Name, false
	case *ast.IndexExpr:
		return receiver(t.X)
	case *ast.IndexListExpr:
		return receiver(t.X)
	case *ast.ParenExpr:
		return receiver(t.X)
	}
	return "", false
}

func signature(ft *ast.FuncType) role.Signature {
	var res role.Signature
	if ft.Params == nil {
		return res
	}
	for _, f := range ft.Params.List {
		kind := role.Required
		if _, ok := f.Type.(*ast.Ellipsis); ok {
			kind = role.Rest
		}
		if len(f.Names) == 0 {
			res = append(res, role.Param{Kind: kind, Name: "_"})
			continue
		}
		for _, n := range f.Names {
			res = append(res, role.Param{Kind: kind, Name: n.Name})
		}
	}
	return res
}

// bind defines all types in the namespace and links embedded types.
// References to types that were not loaded are skipped.
func bind(ns *namespace.Namespace, pkgs []*pkgTypes) error {
	seen := make(map[string]string)
	for _, p := range pkgs {
		if dir, ok := seen[p.name]; ok && dir != p.dir {
			slog.Warn("Package name is loaded from several directories",
				"package", p.name, "dirs", []string{dir, p.dir})
		}
		seen[p.name] = p.dir
		for _, t := range p.types {
			if err := ns.Define(t.Name, t); err != nil {
				return err
			}
		}
	}

	for _, p := range pkgs {
		for _, t := range p.types {
			for _, ref := range p.embeds[t] {
				parent, ok := ns.Lookup(ref)
				if !ok {
					slog.Debug("Skipping unknown embedded type",
						"type", t.Name, "embed", ref)
					continue
				}
				t.AddParent(parent)
			}
		}
	}
	return nil
}
