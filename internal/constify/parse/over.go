package parse

import (
	"go/ast"
	"go/types"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/calebzulawski/constify/internal/codefmt"
)

// parseOver parses one constant declaration from a constify.Over argument of
// an expansion directive. name and typ come from the matching body parameter.
func (p *Parser) parseOver(arg ast.Expr, name *ast.Ident, typ types.Type) (Decl, error) {
	call, ok := ast.Unparen(arg).(*ast.CallExpr)
	if !ok || !p.IsDirective(call, "Over") {
		return Decl{}, codefmt.Errorf(p, arg, "declaration must be a constify.Over call written in place; got %c", arg)
	}

	d := Decl{Name: name.Name, Type: typ, pos: call.Pos()}

	if name.Name == "_" {
		return Decl{}, codefmt.Errorf(p, name, "cannot bind a constant to the blank identifier")
	}

	// Only values of basic kinds can be declared const.
	basic, ok := typ.Underlying().(*types.Basic)
	if !ok || basic.Info()&(types.IsBoolean|types.IsNumeric|types.IsString) == 0 {
		return Decl{}, codefmt.Errorf(p, call, "%t is not a constant type; %s must be a boolean, numeric, or string", typ, name.Name)
	}

	// Spreading a slice would hide the candidates from the generator.
	if call.Ellipsis.IsValid() {
		return Decl{}, codefmt.Errorf(p, codefmt.Pos(call.Ellipsis), "candidates must be listed literally; cannot spread with ...")
	}

	if len(call.Args) < 2 {
		return Decl{}, codefmt.Errorf(p, call, "need at least 1 candidate for %s", name.Name)
	}
	d.Value = call.Args[0]

	// Track the exact constant values to reject duplicates, which would
	// produce unreachable arms.
	seen := linkedhashset.New()
	for _, cand := range call.Args[1:] {
		tv, ok := p.Pkg().TypesInfo.Types[cand]
		if !ok || tv.Value == nil {
			return Decl{}, codefmt.Errorf(p, cand, "candidate %c for %s is not a constant expression", cand, name.Name)
		}

		key := tv.Value.ExactString()
		if seen.Contains(key) {
			return Decl{}, codefmt.Errorf(p, cand, "duplicate candidate %c for %s", cand, name.Name)
		}
		seen.Add(key)

		d.Candidates = append(d.Candidates, cand)
	}

	return d, nil
}
