// Package expand implements the nested exhaustive-match expansion. It turns
// an ordered list of constant declarations and a body into the source text of
// a dispatch tree: one switch level per declaration, one arm per candidate,
// and one specialized copy of the body per combination of candidates.
//
// Everything here is plain source text. The parse package is responsible for
// resolving types and rendering expressions; this package only arranges them.
package expand

import (
	"github.com/calebzulawski/constify/internal/codefmt"
)

// ErrorsPkgPath is the import path of the package providing the errors
// returned by fallible dispatch trees.
const ErrorsPkgPath = "github.com/calebzulawski/constify/pkg/constifyerrors"

// Decl is the uniform record form of one constant declaration. Every field
// holds rendered Go source text.
type Decl struct {
	// Name of the constant bound in each arm of this declaration's switch.
	Name string

	// Type of the constant.
	Type string

	// Value is the runtime expression dispatched on. It appears exactly once
	// in the generated code, as the switch tag, so side effects run once and
	// in declaration order.
	Value string

	// Candidates are the constant expressions matched against Value, in the
	// order given. Must not be empty.
	Candidates []string
}

// Tree describes one expansion: the declarations from outermost to innermost
// and the body replicated at each leaf.
type Tree struct {
	Decls []Decl

	// Body is the rendered body block, braces included. For a fallible tree
	// the body's return statements must already carry the trailing nil error.
	Body string

	// Result is the rendered success result type. Fallible trees only; it
	// declares the zero value returned alongside a no-match error.
	Result string

	// Zero is the name of the zero-value variable declared in fallible
	// default arms. Empty means "zero".
	Zero string
}

// Leaves returns the number of specialized body copies the tree generates:
// the product of the candidate list lengths across all declarations.
func (t Tree) Leaves() int {
	n := 1
	for _, d := range t.Decls {
		n *= len(d.Candidates)
	}
	return n
}

// WriteTotal writes the total-mode dispatch tree. The candidates of every
// declaration must cover its value's domain; the generated default arm panics
// on an uncovered value rather than silently taking some arm.
func (t Tree) WriteTotal(w *codefmt.Writer) {
	t.writeTotal(w, t.Decls)
}

func (t Tree) writeTotal(w *codefmt.Writer, decls []Decl) {
	if len(decls) == 0 {
		// Terminal case: emit the body itself.
		w.Printf("%s\n", t.Body)
		return
	}

	d := decls[0]
	w.Printf("switch %s {\n", d.Value)
	for _, cand := range d.Candidates {
		w.Printf("case %s:\n", cand)
		// Re-declare the name with the literal candidate, not the runtime
		// value. This is what makes it constant inside the arm.
		w.Printf("const %s %s = %s\n", d.Name, d.Type, cand)
		t.writeTotal(w, decls[1:])
	}
	w.Printf("default:\n")
	w.Printf("panic(%q)\n", "constify: unexpected value for `"+d.Name+"`")
	w.Printf("}\n")
}

// WriteFallible writes the fallible-mode dispatch tree. Each switch level
// carries a default arm returning a no-match error for the level's
// declaration, so a mismatch short-circuits before any inner declaration's
// value is evaluated.
func (t Tree) WriteFallible(w *codefmt.Writer) {
	t.writeFallible(w, t.Decls)
}

func (t Tree) writeFallible(w *codefmt.Writer, decls []Decl) {
	if len(decls) == 0 {
		// Terminal case: the body returns the success result. Its returns
		// were rewritten to include the nil error.
		w.Printf("%s\n", t.Body)
		return
	}

	d := decls[0]
	w.Printf("switch %s {\n", d.Value)
	for _, cand := range d.Candidates {
		w.Printf("case %s:\n", cand)
		w.Printf("const %s %s = %s\n", d.Name, d.Type, cand)
		t.writeFallible(w, decls[1:])
	}

	zero := t.Zero
	if zero == "" {
		zero = "zero"
	}
	errsPkg := w.Import(ErrorsPkgPath, "constifyerrors")
	w.Printf("default:\n")
	w.Printf("var %s %s\n", zero, t.Result)
	w.Printf("return %s, &%s.NoMatchError{Name: %q}\n", zero, errsPkg, d.Name)
	w.Printf("}\n")
}
