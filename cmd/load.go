/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/rolecheck/internal/ioast"
	"github.com/gnames/rolecheck/internal/ioyaml"
	"github.com/gnames/rolecheck/pkg/config"
	"github.com/gnames/rolecheck/pkg/conformance"
	"github.com/gnames/rolecheck/pkg/namespace"
)

// loadNamespace fills a new namespace from role files first and Go
// sources after them.
func loadNamespace(
	ctx context.Context,
	cfg *config.Config,
) (*namespace.Namespace, error) {
	if len(cfg.Check.RoleFiles) == 0 && len(cfg.Check.SourceDirs) == 0 {
		gn.Warn(`<warn>No roles are loaded</warn>
   <warn>Use --roles or --src, or set them in config.yaml</warn>`)
	}

	ns := namespace.New()
	loaders := []namespace.Loader{
		ioyaml.New(cfg),
		ioast.New(cfg),
	}
	for _, v := range loaders {
		if err := v.Load(ctx, ns); err != nil {
			return nil, err
		}
	}
	return ns, nil
}

func caseOptions(cfg *config.Config) []conformance.Option {
	var res []conformance.Option
	if cfg.Check.LooseNames {
		res = append(res, conformance.WithLooseNames())
	}
	return res
}
