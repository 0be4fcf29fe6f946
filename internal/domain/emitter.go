package domain

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strconv"
	"strings"
)

// tsTypes maps Go basic types to TypeScript.
var tsTypes = map[string]string{
	"int":     "number",
	"int8":    "number",
	"int16":   "number",
	"int32":   "number",
	"int64":   "number",
	"uint":    "number",
	"uint8":   "number",
	"uint16":  "number",
	"uint32":  "number",
	"uint64":  "number",
	"uintptr": "number",
	"byte":    "number",
	"rune":    "number",
	"float32": "number",
	"float64": "number",
	"string":  "string",
	"bool":    "boolean",
}

// consoleCalls maps printing functions to their TypeScript equivalent.
var consoleCalls = map[string]string{
	"fmt.Println": "console.log",
	"fmt.Print":   "console.log",
}

// symbols holds the TypeScript types of the names declared in one block.
// An empty type means it could not be inferred.
type symbols struct {
	outer *symbols
	types map[string]string
}

func newSymbols(outer *symbols) *symbols {
	return &symbols{outer: outer, types: make(map[string]string)}
}

func (s *symbols) define(name, tsType string) {
	s.types[name] = tsType
}

func (s *symbols) resolve(name string) string {
	for scope := s; scope != nil; scope = scope.outer {
		if tsType, ok := scope.types[name]; ok {
			return tsType
		}
	}

	return ""
}

// emitter writes TypeScript for one parsed Go file, one statement per line,
// indented with tabs.
type emitter struct {
	fset  *token.FileSet
	out   strings.Builder
	depth int
	scope *symbols
	funcs map[string]string
}

func emitFile(fset *token.FileSet, file *ast.File) (string, error) {
	e := &emitter{
		fset:  fset,
		scope: newSymbols(nil),
		funcs: make(map[string]string),
	}

	// Result types first, so calls to functions declared later can be typed.
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}

		result, err := e.resultType(fn.Type)
		if err != nil {
			return "", err
		}

		e.funcs[fn.Name.Name] = result
	}

	for _, decl := range file.Decls {
		if err := e.decl(decl); err != nil {
			return "", err
		}
	}

	return e.out.String(), nil
}

func (e *emitter) unsupported(node ast.Node, what string) error {
	return fmt.Errorf("%s: %w: %s", e.fset.Position(node.Pos()), ErrUnsupported, what)
}

func (e *emitter) line(text string) {
	e.out.WriteString(strings.Repeat("\t", e.depth))
	e.out.WriteString(text)
	e.out.WriteByte('\n')
}

func (e *emitter) decl(decl ast.Decl) error {
	switch d := decl.(type) {
	case *ast.GenDecl:
		return e.genDecl(d)
	case *ast.FuncDecl:
		return e.funcDecl(d)
	}

	return e.unsupported(decl, "declaration")
}

func (e *emitter) funcDecl(fn *ast.FuncDecl) error {
	switch {
	case fn.Recv != nil:
		return e.unsupported(fn, "method "+fn.Name.Name)
	case fn.Type.TypeParams != nil:
		return e.unsupported(fn, "generic function "+fn.Name.Name)
	case fn.Body == nil:
		return e.unsupported(fn, "function without body "+fn.Name.Name)
	}

	outer := e.scope
	e.scope = newSymbols(outer)

	defer func() { e.scope = outer }()

	params, err := e.params(fn.Type.Params)
	if err != nil {
		return err
	}

	e.line(fmt.Sprintf("function %s(%s): %s {", fn.Name.Name, params, e.funcs[fn.Name.Name]))

	if err := e.block(fn.Body.List); err != nil {
		return err
	}

	e.line("}")

	return nil
}

func (e *emitter) params(fields *ast.FieldList) (string, error) {
	var parts []string

	for _, field := range fields.List {
		if len(field.Names) == 0 {
			return "", e.unsupported(field, "unnamed parameter")
		}

		tsType, err := e.typeExpr(field.Type)
		if err != nil {
			return "", err
		}

		for _, name := range field.Names {
			e.scope.define(name.Name, tsType)
			parts = append(parts, name.Name+": "+tsType)
		}
	}

	return strings.Join(parts, ", "), nil
}

func (e *emitter) resultType(fn *ast.FuncType) (string, error) {
	if fn.Results == nil || len(fn.Results.List) == 0 {
		return "void", nil
	}

	if len(fn.Results.List) > 1 || len(fn.Results.List[0].Names) > 1 {
		return "", e.unsupported(fn.Results, "multiple return values")
	}

	return e.typeExpr(fn.Results.List[0].Type)
}

func (e *emitter) typeExpr(expr ast.Expr) (string, error) {
	switch t := expr.(type) {
	case *ast.Ident:
		if tsType, ok := tsTypes[t.Name]; ok {
			return tsType, nil
		}
	case *ast.ArrayType:
		elem, err := e.typeExpr(t.Elt)
		if err != nil {
			return "", err
		}

		return elem + "[]", nil
	}

	return "", e.unsupported(expr, "type "+types.ExprString(expr))
}

func (e *emitter) genDecl(d *ast.GenDecl) error {
	var keyword string

	switch d.Tok {
	case token.IMPORT:
		return nil
	case token.CONST:
		keyword = "const"
	case token.VAR:
		keyword = "let"
	default:
		return e.unsupported(d, d.Tok.String()+" declaration")
	}

	for _, spec := range d.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok {
			return e.unsupported(spec, "declaration")
		}

		if err := e.valueSpec(keyword, vs); err != nil {
			return err
		}
	}

	return nil
}

func (e *emitter) valueSpec(keyword string, vs *ast.ValueSpec) error {
	switch {
	case len(vs.Values) != 0 && len(vs.Values) != len(vs.Names):
		return e.unsupported(vs, "multi-value declaration")
	case keyword == "const" && len(vs.Values) == 0:
		return e.unsupported(vs, "implicit constant value")
	}

	for i, name := range vs.Names {
		var value ast.Expr
		if len(vs.Values) > 0 {
			value = vs.Values[i]
		}

		if err := e.declare(keyword, name.Name, vs.Type, value); err != nil {
			return err
		}
	}

	return nil
}

// declare emits `keyword name: type = value;`. The type comes from the Go
// declaration when present, otherwise it is inferred from the value.
func (e *emitter) declare(keyword, name string, typ, value ast.Expr) error {
	var tsType string

	if typ != nil {
		t, err := e.typeExpr(typ)
		if err != nil {
			return err
		}

		tsType = t
	} else if value != nil {
		tsType = e.typeOf(value)
	}

	decl := keyword + " " + name
	if tsType != "" {
		decl += ": " + tsType
	}

	if value != nil {
		v, err := e.expr(value)
		if err != nil {
			return err
		}

		decl += " = " + v
	}

	e.scope.define(name, tsType)
	e.line(decl + ";")

	return nil
}

func (e *emitter) block(stmts []ast.Stmt) error {
	outer := e.scope
	e.scope = newSymbols(outer)
	e.depth++

	defer func() {
		e.scope = outer
		e.depth--
	}()

	for _, stmt := range stmts {
		if err := e.stmt(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (e *emitter) stmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.DeclStmt:
		gd, ok := s.Decl.(*ast.GenDecl)
		if !ok {
			return e.unsupported(s, "declaration")
		}

		return e.genDecl(gd)
	case *ast.AssignStmt:
		return e.assign(s)
	case *ast.IncDecStmt:
		x, err := e.expr(s.X)
		if err != nil {
			return err
		}

		e.line(x + s.Tok.String() + ";")

		return nil
	case *ast.ExprStmt:
		x, err := e.expr(s.X)
		if err != nil {
			return err
		}

		e.line(x + ";")

		return nil
	case *ast.ReturnStmt:
		return e.returnStmt(s)
	case *ast.IfStmt:
		return e.ifStmt(s, "if")
	case *ast.BlockStmt:
		e.line("{")

		if err := e.block(s.List); err != nil {
			return err
		}

		e.line("}")

		return nil
	case *ast.EmptyStmt:
		return nil
	}

	return e.unsupported(stmt, fmt.Sprintf("statement %T", stmt))
}

func (e *emitter) returnStmt(s *ast.ReturnStmt) error {
	switch len(s.Results) {
	case 0:
		e.line("return;")
	case 1:
		x, err := e.expr(s.Results[0])
		if err != nil {
			return err
		}

		e.line("return " + x + ";")
	default:
		return e.unsupported(s, "multiple return values")
	}

	return nil
}

// ifStmt emits an if chain. prefix is "if" or "} else if" for chained branches.
func (e *emitter) ifStmt(s *ast.IfStmt, prefix string) error {
	if s.Init != nil {
		return e.unsupported(s.Init, "if with init statement")
	}

	cond, err := e.expr(s.Cond)
	if err != nil {
		return err
	}

	e.line(prefix + " (" + cond + ") {")

	if err := e.block(s.Body.List); err != nil {
		return err
	}

	switch els := s.Else.(type) {
	case nil:
	case *ast.IfStmt:
		return e.ifStmt(els, "} else if")
	case *ast.BlockStmt:
		e.line("} else {")

		if err := e.block(els.List); err != nil {
			return err
		}
	default:
		return e.unsupported(els, "else branch")
	}

	e.line("}")

	return nil
}

func (e *emitter) assign(s *ast.AssignStmt) error {
	if len(s.Lhs) != len(s.Rhs) {
		return e.unsupported(s, "multi-value assignment")
	}

	for i := range s.Lhs {
		if s.Tok == token.DEFINE {
			ident, ok := s.Lhs[i].(*ast.Ident)
			if !ok {
				return e.unsupported(s.Lhs[i], "short declaration target")
			}

			if err := e.declare("let", ident.Name, nil, s.Rhs[i]); err != nil {
				return err
			}

			continue
		}

		lhs, err := e.expr(s.Lhs[i])
		if err != nil {
			return err
		}

		rhs, err := e.expr(s.Rhs[i])
		if err != nil {
			return err
		}

		e.line(lhs + " " + s.Tok.String() + " " + rhs + ";")
	}

	return nil
}

func (e *emitter) expr(expr ast.Expr) (string, error) {
	switch x := expr.(type) {
	case *ast.BasicLit:
		return e.basicLit(x)
	case *ast.Ident:
		if x.Name == "nil" {
			return "null", nil
		}

		return x.Name, nil
	case *ast.ParenExpr:
		inner, err := e.expr(x.X)
		if err != nil {
			return "", err
		}

		return "(" + inner + ")", nil
	case *ast.UnaryExpr:
		if x.Op != token.NOT && x.Op != token.SUB && x.Op != token.ADD {
			break
		}

		operand, err := e.expr(x.X)
		if err != nil {
			return "", err
		}

		return x.Op.String() + operand, nil
	case *ast.BinaryExpr:
		if x.Op == token.AND_NOT {
			break
		}

		left, err := e.expr(x.X)
		if err != nil {
			return "", err
		}

		right, err := e.expr(x.Y)
		if err != nil {
			return "", err
		}

		return left + " " + x.Op.String() + " " + right, nil
	case *ast.CallExpr:
		return e.call(x)
	case *ast.CompositeLit:
		if _, ok := x.Type.(*ast.ArrayType); !ok {
			break
		}

		elems, err := e.exprList(x.Elts)
		if err != nil {
			return "", err
		}

		return "[" + elems + "]", nil
	case *ast.IndexExpr:
		target, err := e.expr(x.X)
		if err != nil {
			return "", err
		}

		index, err := e.expr(x.Index)
		if err != nil {
			return "", err
		}

		return target + "[" + index + "]", nil
	case *ast.SelectorExpr:
		target, err := e.expr(x.X)
		if err != nil {
			return "", err
		}

		return target + "." + x.Sel.Name, nil
	}

	return "", e.unsupported(expr, "expression "+types.ExprString(expr))
}

func (e *emitter) exprList(exprs []ast.Expr) (string, error) {
	parts := make([]string, 0, len(exprs))

	for _, expr := range exprs {
		part, err := e.expr(expr)
		if err != nil {
			return "", err
		}

		parts = append(parts, part)
	}

	return strings.Join(parts, ", "), nil
}

func (e *emitter) call(x *ast.CallExpr) (string, error) {
	if x.Ellipsis.IsValid() {
		return "", e.unsupported(x, "variadic call")
	}

	fun, err := e.expr(x.Fun)
	if err != nil {
		return "", err
	}

	args, err := e.exprList(x.Args)
	if err != nil {
		return "", err
	}

	if fun == "len" && len(x.Args) == 1 {
		return args + ".length", nil
	}

	if mapped, ok := consoleCalls[fun]; ok {
		fun = mapped
	}

	return fun + "(" + args + ")", nil
}

func (e *emitter) basicLit(lit *ast.BasicLit) (string, error) {
	switch lit.Kind {
	case token.INT, token.FLOAT:
		return lit.Value, nil
	case token.STRING:
		if !strings.HasPrefix(lit.Value, "`") {
			return lit.Value, nil
		}

		raw, err := strconv.Unquote(lit.Value)
		if err != nil {
			return "", e.unsupported(lit, "string literal")
		}

		return strconv.Quote(raw), nil
	}

	return "", e.unsupported(lit, lit.Kind.String()+" literal")
}

// typeOf infers the TypeScript type of expr, or "" when it cannot tell.
func (e *emitter) typeOf(expr ast.Expr) string {
	switch x := expr.(type) {
	case *ast.BasicLit:
		switch x.Kind {
		case token.INT, token.FLOAT:
			return "number"
		case token.STRING:
			return "string"
		}
	case *ast.Ident:
		if x.Name == "true" || x.Name == "false" {
			return "boolean"
		}

		return e.scope.resolve(x.Name)
	case *ast.ParenExpr:
		return e.typeOf(x.X)
	case *ast.UnaryExpr:
		if x.Op == token.NOT {
			return "boolean"
		}

		return e.typeOf(x.X)
	case *ast.BinaryExpr:
		switch x.Op {
		case token.EQL, token.NEQ, token.LSS, token.LEQ, token.GTR, token.GEQ, token.LAND, token.LOR:
			return "boolean"
		}

		return e.typeOf(x.X)
	case *ast.CompositeLit:
		if _, ok := x.Type.(*ast.ArrayType); ok {
			if tsType, err := e.typeExpr(x.Type); err == nil {
				return tsType
			}
		}
	case *ast.CallExpr:
		if ident, ok := x.Fun.(*ast.Ident); ok {
			if ident.Name == "len" {
				return "number"
			}

			return e.funcs[ident.Name]
		}
	case *ast.IndexExpr:
		if elem, ok := strings.CutSuffix(e.typeOf(x.X), "[]"); ok {
			return elem
		}
	}

	return ""
}
