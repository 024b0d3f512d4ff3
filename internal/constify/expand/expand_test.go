package expand_test

import (
	"bytes"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/calebzulawski/constify/internal/codefmt"
	"github.com/calebzulawski/constify/internal/constify/expand"
)

// newWriter creates a writer over a synthetic package, which is enough for
// the expansion emitter since it works on rendered text only.
func newWriter(buf *bytes.Buffer) *codefmt.Writer {
	pkg := &packages.Package{
		Name:      "fake",
		PkgPath:   "example.com/fake",
		Types:     types.NewPackage("example.com/fake", "fake"),
		Fset:      token.NewFileSet(),
		TypesInfo: &types.Info{},
	}
	return codefmt.NewWriter(buf, pkg)
}

// mustParseStmts checks that the emitted dispatch code is syntactically valid
// when placed inside a function with the given signature.
func mustParseStmts(t *testing.T, signature, code string) {
	t.Helper()
	src := "package p\nfunc f" + signature + " {\n" + code + "\n}"
	_, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, 0)
	require.NoError(t, err, "generated code does not parse:\n%s", code)
}

var twoFlags = []expand.Decl{
	{Name: "A", Type: "bool", Value: "addA", Candidates: []string{"true", "false"}},
	{Name: "B", Type: "bool", Value: "addB", Candidates: []string{"true", "false"}},
}

func TestLeaves(t *testing.T) {
	assert.Equal(t, 1, expand.Tree{}.Leaves())
	assert.Equal(t, 4, expand.Tree{Decls: twoFlags}.Leaves())

	tree := expand.Tree{Decls: []expand.Decl{
		{Name: "A", Type: "int", Value: "a", Candidates: []string{"1", "2", "3"}},
		{Name: "B", Type: "int", Value: "b", Candidates: []string{"4", "5"}},
	}}
	assert.Equal(t, 6, tree.Leaves())
}

func TestTotalEmptyDecls(t *testing.T) {
	var buf bytes.Buffer
	tree := expand.Tree{Body: "{\nreturn 42\n}"}
	tree.WriteTotal(newWriter(&buf))

	assert.Equal(t, "{\nreturn 42\n}\n", buf.String())
	mustParseStmts(t, "() int", buf.String())
}

func TestTotalNesting(t *testing.T) {
	var buf bytes.Buffer
	tree := expand.Tree{Decls: twoFlags, Body: "{\nreturn sum(A, B)\n}"}
	tree.WriteTotal(newWriter(&buf))
	code := buf.String()

	// One body copy per leaf.
	assert.Equal(t, tree.Leaves(), strings.Count(code, "return sum(A, B)"))

	// One outer dispatch on addA, one inner dispatch on addB per outer arm.
	assert.Equal(t, 1, strings.Count(code, "switch addA {"))
	assert.Equal(t, 2, strings.Count(code, "switch addB {"))

	// Each arm re-declares the name with the literal candidate.
	assert.Contains(t, code, "const A bool = true")
	assert.Contains(t, code, "const A bool = false")
	assert.Equal(t, 2, strings.Count(code, "const B bool = true"))
	assert.Equal(t, 2, strings.Count(code, "const B bool = false"))

	// The outer declaration dominates: addA is dispatched before addB.
	assert.Less(t, strings.Index(code, "switch addA {"), strings.Index(code, "switch addB {"))

	mustParseStmts(t, "(addA, addB bool) int", code)
}

func TestTotalDefaultPanics(t *testing.T) {
	var buf bytes.Buffer
	tree := expand.Tree{
		Decls: []expand.Decl{{Name: "Level", Type: "int", Value: "lvl", Candidates: []string{"1", "2"}}},
		Body:  "{\nreturn Level\n}",
	}
	tree.WriteTotal(newWriter(&buf))

	assert.Contains(t, buf.String(), "panic(\"constify: unexpected value for `Level`\")")
	mustParseStmts(t, "(lvl int) int", buf.String())
}

func TestFallibleDefault(t *testing.T) {
	var buf bytes.Buffer
	w := newWriter(&buf)
	tree := expand.Tree{
		Decls:  []expand.Decl{{Name: "A", Type: "uint32", Value: "a", Candidates: []string{"1", "2"}}},
		Body:   "{\nreturn A, nil\n}",
		Result: "uint32",
	}
	tree.WriteFallible(w)
	code := buf.String()

	assert.Contains(t, code, "var zero uint32")
	assert.Contains(t, code, "return zero, &constifyerrors.NoMatchError{Name: \"A\"}")
	mustParseStmts(t, "(a uint32) (uint32, error)", code)

	// The errors package is collected for the import declaration.
	imported := false
	for _, imp := range w.Imports() {
		if imp.Path() == expand.ErrorsPkgPath {
			imported = true
		}
	}
	assert.True(t, imported)
}

func TestFallibleDefaultPerLevel(t *testing.T) {
	var buf bytes.Buffer
	tree := expand.Tree{
		Decls: []expand.Decl{
			{Name: "A", Type: "uint32", Value: "a", Candidates: []string{"1", "2"}},
			{Name: "B", Type: "uint32", Value: "b", Candidates: []string{"3", "4"}},
		},
		Body:   "{\nreturn A + B, nil\n}",
		Result: "uint32",
	}
	tree.WriteFallible(newWriter(&buf))
	code := buf.String()

	// The outer level fails once; the inner level is replicated under each
	// outer arm.
	assert.Equal(t, 1, strings.Count(code, "NoMatchError{Name: \"A\"}"))
	assert.Equal(t, 2, strings.Count(code, "NoMatchError{Name: \"B\"}"))
	assert.Equal(t, 4, strings.Count(code, "return A + B, nil"))

	// A mismatch on the outer declaration returns before the inner value is
	// dispatched: the first default arm closes the outer switch.
	mustParseStmts(t, "(a, b uint32) (uint32, error)", code)
}

func TestFallibleZeroName(t *testing.T) {
	var buf bytes.Buffer
	tree := expand.Tree{
		Decls:  []expand.Decl{{Name: "A", Type: "string", Value: "s", Candidates: []string{`"x"`}}},
		Body:   "{\nreturn A, nil\n}",
		Result: "string",
		Zero:   "zero2",
	}
	tree.WriteFallible(newWriter(&buf))

	assert.Contains(t, buf.String(), "var zero2 string")
	assert.Contains(t, buf.String(), "return zero2, ")
}

func TestModesAgreeOnSuccessArms(t *testing.T) {
	decls := []expand.Decl{
		{Name: "A", Type: "uint32", Value: "a", Candidates: []string{"1", "2"}},
		{Name: "B", Type: "uint32", Value: "b", Candidates: []string{"3", "4"}},
	}

	var total bytes.Buffer
	expand.Tree{Decls: decls, Body: "{\nreturn A + B\n}"}.WriteTotal(newWriter(&total))

	var fallible bytes.Buffer
	expand.Tree{Decls: decls, Body: "{\nreturn A + B, nil\n}", Result: "uint32"}.
		WriteFallible(newWriter(&fallible))

	// Both modes produce the same arms with the same constant bindings; they
	// differ only in the default arms.
	for _, code := range []string{total.String(), fallible.String()} {
		assert.Equal(t, 1, strings.Count(code, "switch a {"))
		assert.Equal(t, 2, strings.Count(code, "switch b {"))
		for _, constDecl := range []string{
			"const A uint32 = 1", "const A uint32 = 2",
			"const B uint32 = 3", "const B uint32 = 4",
		} {
			assert.Contains(t, code, constDecl)
		}
	}
	assert.Equal(t, 4, strings.Count(total.String(), "return A + B\n"))
	assert.Equal(t, 4, strings.Count(fallible.String(), "return A + B, nil"))
}

func TestDeterministic(t *testing.T) {
	tree := expand.Tree{Decls: twoFlags, Body: "{\nreturn sum(A, B)\n}"}

	var buf1, buf2 bytes.Buffer
	tree.WriteTotal(newWriter(&buf1))
	tree.WriteTotal(newWriter(&buf2))
	assert.Equal(t, buf1.String(), buf2.String())
}
