package adapter

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"

	m "demorun.dev/pkg/demorun/internal/model"
)

// GoFileAdapter hides go/parser behind an interface so the translator only
// deals with syntax trees.
type GoFileAdapter interface {
	// Parse builds an AST using the provided file set and source bytes.
	Parse(ctx context.Context, fileSet *token.FileSet, filename string, src []byte) (*ast.File, error)

	// ExtractScopes lists the top-level const/var declarations and functions.
	ExtractScopes(fileSet *token.FileSet, file *ast.File) []m.CodeScope
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser.
type LocalGoFileAdapter struct{}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter.
func NewLocalGoFileAdapter() *LocalGoFileAdapter {
	return &LocalGoFileAdapter{}
}

// Parse builds an AST for the provided filename/source pair.
func (a *LocalGoFileAdapter) Parse(ctx context.Context, fileSet *token.FileSet, filename string, src []byte) (*ast.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return parser.ParseFile(fileSet, filename, src, parser.SkipObjectResolution)
}

// ExtractScopes records one scope per declared name or function, in source order.
func (a *LocalGoFileAdapter) ExtractScopes(fileSet *token.FileSet, file *ast.File) []m.CodeScope {
	var scopes []m.CodeScope

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			if d.Tok != token.CONST && d.Tok != token.VAR {
				continue
			}

			for _, spec := range d.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}

				for _, name := range vs.Names {
					scopes = append(scopes, m.CodeScope{
						Type:      m.ScopeGlobal,
						Name:      name.Name,
						StartLine: fileSet.Position(vs.Pos()).Line,
						EndLine:   fileSet.Position(vs.End()).Line,
					})
				}
			}

		case *ast.FuncDecl:
			scopeType := m.ScopeFunction
			if d.Name.Name == "init" {
				scopeType = m.ScopeInit
			}

			scopes = append(scopes, m.CodeScope{
				Type:      scopeType,
				Name:      d.Name.Name,
				StartLine: fileSet.Position(d.Pos()).Line,
				EndLine:   fileSet.Position(d.End()).Line,
			})
		}
	}

	return scopes
}
