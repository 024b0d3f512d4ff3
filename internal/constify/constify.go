// Package constifyinternal implements the code generator behind the constify
// command. It loads constify-tagged files, parses expansion directives, and
// rewrites each directive into a nested dispatch tree that re-declares the
// dispatched values as true compile-time constants.
package constifyinternal

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
	"io"
	"maps"
	"path/filepath"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"

	"github.com/calebzulawski/constify/internal/codefmt"
	"github.com/calebzulawski/constify/internal/constify/expand"
	"github.com/calebzulawski/constify/internal/constify/parse"
)

// Constify generates specialized dispatch code for the target package. Call
// [Constify.Build] and then [Constify.Generate] to get the generated code. All
// potential errors are returned by [Constify.Build]. Once [Constify.Build]
// succeeds, [Constify.Generate] never fails.
type Constify struct {
	p   *parse.Parser
	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer

	// exps maps the position of each directive's return statement to its
	// parsed expansion, in source order.
	exps *linkedhashmap.Map
}

// New creates a new [Constify] for the given package. If the package does not
// satisfy the requirements, an error is returned. The package must have its
// Syntax, Types and TypesInfo. And it must not have any errors.
func New(pkg *packages.Package) (*Constify, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	return &Constify{
		p:    parser,
		ns:   codefmt.NewNS(pkg.Types.Scope()),
		buf:  &buf,
		w:    codefmt.NewWriter(&buf, pkg),
		exps: linkedhashmap.New(),
	}, nil
}

// Build prepares code generation by parsing directives from the package. All
// potential errors are returned by this method. It must be called before
// [Constify.Generate].
func (cf *Constify) Build() error {
	exps, err := cf.p.ParseExpansions()
	if err != nil {
		return err
	}

	for _, ex := range exps {
		cf.exps.Put(ex.Return.Pos(), ex)
	}
	return nil
}

// Generate generates dispatch code for the package. It must be called after
// [Constify.Build] succeeds. It returns nil if the package has no
// constify-tagged files.
func (cf *Constify) Generate() []byte {
	if len(cf.p.ConstifyGoFiles()) == 0 {
		return nil
	}
	cf.mergeCode()
	return cf.frameCode()
}

// mergeCode copies code from the source files tagged with "//go:build
// constify", replacing every directive return with its rendered dispatch tree.
// The copied code must not keep any reference to the constify package.
func (cf *Constify) mergeCode() {
	for _, file := range cf.p.ConstifyGoFiles() {
		name := filepath.Base(cf.p.Pkg().Fset.File(file.Pos()).Name())
		first := true

		for _, decl := range file.Decls {
			if gen, ok := decl.(*ast.GenDecl); ok {
				if gen.Tok == token.IMPORT {
					// Skip import declarations in files. Required imports will
					// be collected from their usage, and then rewritten as an
					// import declaration group.
					continue
				}
			}

			if first {
				fmt.Fprintf(cf.buf, "// %s:\n\n", name)
				first = false
			}

			// Replace directive returns with their dispatch trees.
			decl = astutil.Apply(decl, func(c *astutil.Cursor) bool {
				ret, ok := c.Node().(*ast.ReturnStmt)
				if !ok {
					return true
				}

				v, found := cf.exps.Get(ret.Pos())
				if !found {
					return true
				}
				code := cf.expandCode(v.(parse.Expansion))

				// HACK: printer.Fprint does not validate the name of an Ident
				// node. It can be used to inject arbitrary code at the
				// desired position.
				c.Replace(&ast.ExprStmt{X: &ast.Ident{Name: code}})
				return false
			}, nil).(ast.Decl)

			// Prevent import name conflicts when merging multiple files into one
			decl = codefmt.RewriteImports(cf.w, decl)

			// Write rewritten declaration code
			printer.Fprint(cf.buf, cf.p.Pkg().Fset, &printer.CommentedNode{
				Node:     decl,
				Comments: file.Comments,
			})
			fmt.Fprintf(cf.buf, "\n\n")
		}
	}
}

// expandCode renders the dispatch tree replacing one directive return.
func (cf *Constify) expandCode(ex parse.Expansion) string {
	var buf bytes.Buffer
	local := maps.Clone(cf.ns)
	w := cf.w.WithBuf(&buf).WithNS(local)

	var tree expand.Tree
	for _, d := range ex.Decls {
		value := w.Sprintf("%c", codefmt.RewriteImports(w, d.Value))

		var cands []string
		for _, cand := range d.Candidates {
			cands = append(cands, w.Sprintf("%c", codefmt.RewriteImports(w, cand)))
		}

		tree.Decls = append(tree.Decls, expand.Decl{
			Name:       d.Name,
			Type:       w.Sprintf("%t", codefmt.Type(d.Type)),
			Value:      value,
			Candidates: cands,
		})
		local.Reserve(d.Name)
	}

	body := ex.Body.Body
	if ex.Fallible {
		body = rewriteReturns(body, ex.ResultName(), true)
		tree.Result = w.Sprintf("%t", codefmt.Type(ex.Result))
		tree.Zero = w.Name("zero")
	} else if ex.ResultName() != "" {
		body = rewriteReturns(body, ex.ResultName(), false)
	}
	body = codefmt.RewriteImports(w, body)
	tree.Body = renderBlock(cf.p.Pkg().Fset, body)

	// A named result lives in the literal's signature, not in its block. Each
	// inlined body copy re-declares it.
	if name := ex.ResultName(); name != "" {
		result := w.Sprintf("%t", codefmt.Type(ex.Result))
		decl := "{\nvar " + name + " " + result + "\n_ = " + name + "\n"
		tree.Body = decl + strings.TrimPrefix(tree.Body, "{")
	}

	if ex.Fallible {
		tree.WriteFallible(w)
	} else {
		tree.WriteTotal(w)
	}
	return buf.String()
}

// rewriteReturns normalizes the returns of a body whose copies are inlined
// into a function with a different result list. A naked return becomes an
// explicit return of the named result, and with withNilErr every return gains
// the trailing nil error of a fallible dispatch. Returns of nested function
// literals are left alone.
func rewriteReturns(body *ast.BlockStmt, resultName string, withNilErr bool) *ast.BlockStmt {
	return astutil.Apply(body, func(c *astutil.Cursor) bool {
		switch n := c.Node().(type) {
		case *ast.FuncLit:
			return false

		case *ast.ReturnStmt:
			results := n.Results
			if len(results) == 0 {
				results = []ast.Expr{ast.NewIdent(resultName)}
			}
			if withNilErr {
				results = append(results, ast.NewIdent("nil"))
			}
			if len(results) == len(n.Results) {
				// Explicit return in total mode; nothing to normalize.
				return false
			}
			c.Replace(&ast.ReturnStmt{
				Return:  n.Return,
				Results: results,
			})
			return false
		}
		return true
	}, nil).(*ast.BlockStmt)
}

// renderBlock renders a block statement, braces included.
func renderBlock(fset *token.FileSet, block *ast.BlockStmt) string {
	var b bytes.Buffer
	printer.Fprint(&b, fset, block)
	return b.String()
}

func (cf *Constify) frameCode() []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !constify\n")
	fmt.Fprintf(&buf, "// Code generated by github.com/calebzulawski/constify%s. DO NOT EDIT.\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", cf.p.Pkg().Name)

	if len(cf.w.Imports()) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for alias, imp := range cf.w.Imports() {
			// Check for remaining constify import
			if parse.IsConstifyImport(imp.Path()) {
				fmt.Println("constify import remains")
			}

			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, cf.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
