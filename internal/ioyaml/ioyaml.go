// Package ioyaml loads role and type definitions from YAML files.
//
// YAML definitions are language-neutral and can express every parameter
// kind, including optional and keyword parameters Go code does not have.
//
//	namespace: Shop
//	types:
//	  - name: Payments::Gateway
//	    parents: [Shop::Closer]
//	    methods:
//	      - name: charge
//	        params:
//	          - amount
//	          - {kind: optional, name: currency}
//	      - name: audit
//	        private: true
package ioyaml

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/rolecheck/pkg/config"
	"github.com/gnames/rolecheck/pkg/namespace"
	"github.com/gnames/rolecheck/pkg/role"
	"gopkg.in/yaml.v3"
)

// File is the content of a definition file.
type File struct {
	// Namespace is prepended to names of all types of the file.
	// Parents are always full paths.
	Namespace string    `yaml:"namespace,omitempty"`
	Types     []TypeDef `yaml:"types"`
}

// TypeDef describes one type.
type TypeDef struct {
	Name    string      `yaml:"name"`
	Parents []string    `yaml:"parents,omitempty"`
	Methods []MethodDef `yaml:"methods,omitempty"`
}

// MethodDef describes one method.
type MethodDef struct {
	Name    string     `yaml:"name"`
	Private bool       `yaml:"private,omitempty"`
	Params  []ParamDef `yaml:"params,omitempty"`
}

// ParamDef is either a bare name of a required parameter or a mapping
// with kind and name.
type ParamDef struct {
	Kind string `yaml:"kind"`
	Name string `yaml:"name"`
}

// UnmarshalYAML accepts scalars as required parameters.
func (p *ParamDef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		p.Kind = role.Required.String()
		p.Name = value.Value
		return nil
	}
	type plain ParamDef
	var res plain
	if err := value.Decode(&res); err != nil {
		return err
	}
	*p = ParamDef(res)
	if p.Kind == "" {
		p.Kind = role.Required.String()
	}
	return nil
}

type ioyaml struct {
	files []string
}

// New creates a loader for role files from the configuration.
func New(cfg *config.Config) namespace.Loader {
	res := ioyaml{files: cfg.Check.RoleFiles}
	return &res
}

// Load reads every file, validates it and binds its types. Parents are
// linked after all files are read, so files may refer to each other.
func (y *ioyaml) Load(ctx context.Context, ns *namespace.Namespace) error {
	type pending struct {
		typ     *role.Type
		parents []string
		file    string
	}
	var links []pending

	for _, path := range y.files {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return ReadFileError(path, err)
		}
		f, err := Parse(data)
		if err != nil {
			return RoleDefinitionError(path, err)
		}
		types, err := f.Build()
		if err != nil {
			return RoleDefinitionError(path, err)
		}
		for i, t := range types {
			if err = ns.Define(t.Name, t); err != nil {
				return err
			}
			links = append(links, pending{
				typ:     t,
				parents: f.Types[i].Parents,
				file:    path,
			})
		}
		slog.Debug("Loaded role definitions", "file", path, "types", len(types))
	}

	for _, v := range links {
		for _, p := range v.parents {
			parent, ok := ns.Lookup(p)
			if !ok {
				return RoleDefinitionError(v.file,
					fmt.Errorf("type %s: unknown parent %s", v.typ.Name, p))
			}
			v.typ.AddParent(parent)
		}
	}
	return nil
}

// Parse decodes a definition file.
func Parse(data []byte) (*File, error) {
	var res File
	if err := yaml.Unmarshal(data, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Build converts definitions to types, in file order. Parents are not
// linked.
func (f *File) Build() ([]*role.Type, error) {
	res := make([]*role.Type, 0, len(f.Types))
	for _, td := range f.Types {
		if td.Name == "" {
			return nil, fmt.Errorf("type without name")
		}
		typ := role.New(f.qualify([]string{td.Name})[0])
		for _, md := range td.Methods {
			m, err := md.method()
			if err != nil {
				return nil, fmt.Errorf("type %s: %w", typ.Name, err)
			}
			typ.AddMethod(m)
		}
		res = append(res, typ)
	}
	return res, nil
}

func (md MethodDef) method() (role.Method, error) {
	if md.Name == "" {
		return role.Method{}, fmt.Errorf("method without name")
	}
	res := role.Method{Name: md.Name, Private: md.Private}
	for i, p := range md.Params {
		kind, err := role.ParseKind(p.Kind)
		if err != nil {
			return role.Method{}, fmt.Errorf("method %s: %w", md.Name, err)
		}
		if p.Name == "" {
			return role.Method{}, fmt.Errorf(
				"method %s: parameter %d has no name", md.Name, i+1)
		}
		res.Signature = append(res.Signature, role.Param{Kind: kind, Name: p.Name})
	}
	return res, nil
}

func (f *File) qualify(names []string) []string {
	if f.Namespace == "" {
		return names
	}
	res := make([]string, len(names))
	for i, v := range names {
		res[i] = f.Namespace + namespace.Separator + v
	}
	return res
}
