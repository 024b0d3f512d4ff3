package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"iter"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/calebzulawski/constify/internal/codefmt"
)

// Expansion represents one constify directive: a call to constify.ExpandN or
// constify.TryExpandN returned directly from a function in a constify-tagged
// file.
type Expansion struct {
	// Return is the return statement holding the directive call. Code
	// generation replaces this statement with the dispatch tree.
	Return *ast.ReturnStmt

	// Call is the directive call itself.
	Call *ast.CallExpr

	// Fallible is true for TryExpand directives.
	Fallible bool

	// Decls are the parsed declarations, outermost dispatch first.
	Decls []Decl

	// Body is the body function literal. Its parameters name and type the
	// constants; its block is replicated at each leaf.
	Body *ast.FuncLit

	// Result is the body's result type.
	Result types.Type

	name string
	pkg  *packages.Package
}

// Pkg returns the package where the directive is called. Expansion implements
// [codefmt.Pkger] by this method.
func (ex Expansion) Pkg() *packages.Package { return ex.pkg }

// Pos returns the token position of the directive call. Expansion implements
// [codefmt.Poser] by this method.
func (ex Expansion) Pos() token.Pos { return ex.Call.Pos() }

// String returns a string representation of the directive. For example,
// "constify.Expand2".
func (ex Expansion) String() string { return "constify." + ex.name }

// ResultName returns the name of the body's named result, or the empty string
// if the result is unnamed. A named result is what a naked return in the body
// refers to.
func (ex Expansion) ResultName() string {
	results := ex.Body.Type.Results
	if results == nil || len(results.List) == 0 {
		return ""
	}
	if names := results.List[0].Names; len(names) != 0 {
		return names[0].Name
	}
	return ""
}

// Decl is one parsed constant declaration of an expansion.
type Decl struct {
	// Name of the constant, taken from the body parameter.
	Name string

	// Type of the constant, taken from the body parameter.
	Type types.Type

	// Value is the runtime expression dispatched on.
	Value ast.Expr

	// Candidates are the constant expressions, in declared order. Never
	// empty.
	Candidates []ast.Expr

	pos token.Pos
}

// Pos returns the position of the constify.Over call. Decl implements
// [codefmt.Poser] by this method.
func (d Decl) Pos() token.Pos { return d.pos }

// ParseExpansions parses all [Expansion]s from the AST.
func (p *Parser) ParseExpansions() ([]Expansion, error) {
	var errs error
	var exps []Expansion

	for _, file := range p.ConstifyGoFiles() {
		for ex, err := range p.parseExpansionsInFile(file) {
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			exps = append(exps, ex)
		}
	}

	if errs != nil {
		return nil, errs
	}
	return exps, nil
}

// isExpandDirective checks if the name is an expansion directive: ExpandN or
// TryExpandN.
func isExpandDirective(name string) bool {
	name = strings.TrimPrefix(name, "Try")
	digits := strings.TrimPrefix(name, "Expand")
	if digits == name {
		return false
	}
	return len(digits) == 1 && '0' <= digits[0] && digits[0] <= '9'
}

// parseExpansionsInFile parses and yields [Expansion]s in the given file.
func (p *Parser) parseExpansionsInFile(file *ast.File) iter.Seq2[Expansion, error] {
	return func(yield func(Expansion, error) bool) {
		// used records directive calls consumed by a well-placed expansion,
		// including their constify.Over arguments. Any directive call left
		// over after the walk is misplaced.
		used := make(map[ast.Node]bool)

		// Ranges of accepted directive calls, for nesting detection. The walk
		// is pre-order, so an enclosing directive is always recorded before
		// an enclosed one is visited.
		var ranges []*ast.CallExpr

		done := false
		ast.Inspect(file, func(n ast.Node) bool {
			if done {
				return false
			}

			ret, ok := n.(*ast.ReturnStmt)
			if !ok || len(ret.Results) != 1 {
				return true
			}

			call, ok := ast.Unparen(ret.Results[0]).(*ast.CallExpr)
			if !ok {
				return true
			}

			name, ok := p.GetDirective(call)
			if !ok || !isExpandDirective(name) {
				return true
			}

			// Consume the directive and its constify.Over arguments up front
			// so that they are not also reported as misplaced when the
			// expansion fails to parse.
			used[call] = true
			for _, arg := range call.Args {
				if over, ok := ast.Unparen(arg).(*ast.CallExpr); ok && p.IsDirective(over, "Over") {
					used[over] = true
				}
			}

			for _, outer := range ranges {
				if outer.Pos() < call.Pos() && call.End() <= outer.End() {
					done = !yield(Expansion{}, codefmt.Errorf(p, call, "cannot nest constify directives"))
					return false
				}
			}
			ranges = append(ranges, call)

			ex, err := p.parseExpansion(ret, call, name)
			if err != nil {
				done = !yield(Expansion{}, err)
				return !done
			}

			done = !yield(ex, nil)
			return !done
		})
		if done {
			return
		}

		// Report misplaced directive calls.
		ast.Inspect(file, func(n ast.Node) bool {
			if done {
				return false
			}

			call, ok := n.(*ast.CallExpr)
			if !ok || used[call] {
				return true
			}

			name, ok := p.GetDirective(call)
			if !ok {
				return true
			}

			switch {
			case isExpandDirective(name):
				// The Over arguments belong to this diagnostic; don't report
				// them separately.
				for _, arg := range call.Args {
					if over, ok := ast.Unparen(arg).(*ast.CallExpr); ok && p.IsDirective(over, "Over") {
						used[over] = true
					}
				}
				done = !yield(Expansion{}, codefmt.Errorf(p, call, "constify.%s must be returned directly from a function", name))
			case name == "Over":
				done = !yield(Expansion{}, codefmt.Errorf(p, call, "constify.Over must be a declaration argument of an expansion directive"))
			}
			return true
		})
	}
}

// parseExpansion parses an [Expansion] from the given AST nodes.
func (p *Parser) parseExpansion(ret *ast.ReturnStmt, call *ast.CallExpr, name string) (Expansion, error) {
	ex := Expansion{
		Return:   ret,
		Call:     call,
		Fallible: strings.HasPrefix(name, "Try"),
		name:     name,
		pkg:      p.Pkg(),
	}

	arity := int(name[len(name)-1] - '0')
	if len(call.Args) != arity+1 {
		return Expansion{}, codefmt.Errorf(p, call, "%s needs %d arguments", ex, arity+1) // unreachable
	}

	// The trailing argument is the body. Its parameters carry the constant
	// names, so it must be a literal written in place.
	bodyArg := call.Args[arity]
	lit, ok := ast.Unparen(bodyArg).(*ast.FuncLit)
	if !ok {
		return Expansion{}, codefmt.Errorf(p, bodyArg, "body of %s must be a function literal; got %c", ex, bodyArg)
	}
	ex.Body = lit

	// A well-typed directive call guarantees a single result, but a driver
	// loading packages despite type errors may hand us a resultless literal.
	sig, ok := p.Pkg().TypesInfo.TypeOf(lit).(*types.Signature)
	if !ok || sig.Results().Len() == 0 {
		return Expansion{}, codefmt.Errorf(p, lit, "cannot resolve body signature")
	}
	ex.Result = sig.Results().At(0).Type()

	// Constant names come from the body's parameters.
	var names []*ast.Ident
	for _, field := range lit.Type.Params.List {
		names = append(names, field.Names...)
	}
	if len(names) != arity {
		return Expansion{}, codefmt.Errorf(p, lit, "body parameters must be named; the names become the constant names")
	}

	var errs error
	for i := 0; i < arity; i++ {
		d, err := p.parseOver(call.Args[i], names[i], sig.Params().At(i).Type())
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		ex.Decls = append(ex.Decls, d)
	}
	if errs != nil {
		return Expansion{}, errs
	}
	return ex, nil
}
