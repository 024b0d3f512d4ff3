// Package constify provides directives for turning runtime values into
// compile-time constants.
//
// A constify directive checks runtime values against a fixed list of candidate
// constants and evaluates a body with the matching constants. Because the
// body is replicated once per candidate combination, and each copy sees the
// declared names as true Go constants, the compiler can fold conditions and
// eliminate dead branches per combination while the actual values are still
// chosen at runtime.
//
// To start with constify, add a build constraint to files containing constify
// directives:
//
//	//go:build constify
//
// A directive is a call to [Expand1], [Expand2], ... (or their Try variants)
// returned directly from a function. Each declaration pairs a runtime value
// with its candidates using [Over], and the trailing function literal is the
// body. The body's parameter names become the constant names:
//
//	// source:
//	func Sum(a, b uint32, addA, addB bool) uint32 {
//		return constify.Expand2(
//			constify.Over(addA, true, false),
//			constify.Over(addB, true, false),
//			func(A, B bool) uint32 {
//				var sum uint32
//				if A {
//					sum += a
//				}
//				if B {
//					sum += b
//				}
//				return sum
//			})
//	}
//
// After declaring expansions, run the constify command. It will generate
// constify_gen.go for your package:
//
//	go run github.com/calebzulawski/constify/cmd/constify
//
// The generated function dispatches on each declared value in order, one
// nesting level per declaration, and re-declares the name as a constant in
// every arm:
//
//	// generated: (simplified)
//	func Sum(a, b uint32, addA, addB bool) uint32 {
//		switch addA {
//		case true:
//			const A bool = true
//			switch addB {
//			case true:
//				const B bool = true
//				... // body with A == true, B == true
//			case false:
//				const B bool = false
//				... // body with A == true, B == false
//			default:
//				panic("constify: unexpected value for `B`")
//			}
//		case false:
//			...
//		}
//	}
//
// So Sum(3, 4, false, false) == 0, Sum(3, 4, true, false) == 3,
// Sum(3, 4, false, true) == 4, and Sum(3, 4, true, true) == 7.
//
// # Exhaustiveness
//
// [Expand1] and friends require the candidates to cover every value the
// runtime expression can take. Go cannot check value coverage of a switch at
// compile time, so the generated dispatch carries a default arm that panics
// with a message naming the declaration. The panic is unreachable as long as
// the candidate list is exhaustive; it exists so that an uncovered value is
// reported instead of silently taking some arm.
//
// To match only a subset of values, use [TryExpand1] and friends instead.
// Their generated dispatch returns an error for uncovered values:
//
//	// source:
//	func Add(a, b uint32) (uint32, error) {
//		return constify.TryExpand2(
//			constify.Over(a, 1, 2),
//			constify.Over(b, 3, 4),
//			func(A, B uint32) uint32 {
//				return A + B
//			})
//	}
//
//	// generated: (simplified)
//	func Add(a, b uint32) (uint32, error) {
//		switch a {
//		case 1:
//			const A uint32 = 1
//			switch b {
//			...
//			default:
//				var zero uint32
//				return zero, &constifyerrors.NoMatchError{Name: "B"}
//			}
//		...
//	}
//
// The error names the first declaration, in declared order, whose value
// matched no candidate. Dispatch is nested, so a mismatch on an outer
// declaration short-circuits: the value expressions of inner declarations and
// the body are never evaluated.
//
// The declared value expressions are evaluated in the order they are written,
// each exactly once, regardless of which arm is taken.
package constify

// Decl is one constant declaration: a runtime value paired with the candidate
// constants it may take. Create one with [Over]; there is no other way to
// build a Decl that the generator accepts.
type Decl[V comparable] struct{ _ [0]func(V) }

// Over declares that a runtime value ranges over the given candidate
// constants. The candidate list must not be empty, every candidate must be a
// constant expression, and duplicates are rejected at generation time.
//
// The value expression may have side effects; it is evaluated exactly once,
// when the dispatch for its declaration runs.
func Over[V comparable](value V, candidates ...V) Decl[V] {
	panic("constify: not generated")
}

// Expand0 is the degenerate expansion with no declarations. It evaluates the
// body directly. It exists for completeness; generated code is the body
// itself.
func Expand0[R any](body func() R) R {
	panic("constify: not generated")
}

// Expand1 dispatches on one declaration and evaluates the body with the
// declared name bound as a constant. The candidates must cover every value
// the runtime expression can take; an uncovered value panics at runtime. For
// a recoverable variant, use [TryExpand1].
//
// The body must be a function literal. Its parameter name is the constant
// name, and its parameter type is the constant type.
func Expand1[V1 comparable, R any](d1 Decl[V1], body func(V1) R) R {
	panic("constify: not generated")
}

// Expand2 is [Expand1] over two declarations. The generated dispatch nests
// one switch per declaration in the order given, so the body is specialized
// once per combination of candidates.
func Expand2[V1, V2 comparable, R any](d1 Decl[V1], d2 Decl[V2], body func(V1, V2) R) R {
	panic("constify: not generated")
}

// Expand3 is [Expand1] over three declarations.
func Expand3[V1, V2, V3 comparable, R any](d1 Decl[V1], d2 Decl[V2], d3 Decl[V3], body func(V1, V2, V3) R) R {
	panic("constify: not generated")
}

// Expand4 is [Expand1] over four declarations. Note that the generated code
// grows with the product of the candidate list lengths; earlier declarations
// dominate the growth.
func Expand4[V1, V2, V3, V4 comparable, R any](d1 Decl[V1], d2 Decl[V2], d3 Decl[V3], d4 Decl[V4], body func(V1, V2, V3, V4) R) R {
	panic("constify: not generated")
}

// TryExpand0 is the degenerate fallible expansion with no declarations. It
// always succeeds with the body's result.
func TryExpand0[R any](body func() R) (R, error) {
	panic("constify: not generated")
}

// TryExpand1 is the fallible variant of [Expand1]. Instead of requiring the
// candidates to be exhaustive, the generated dispatch returns a
// [constifyerrors.NoMatchError] when the runtime value matches no candidate:
//
//	v, err := ... // generated from constify.TryExpand1(constify.Over(x, 1, 2), ...)
//	if err != nil {
//		// err.Error() == "unexpected value for `X`"
//	}
//
// Exactly one error is produced per call, naming the first declaration in
// declared order whose value failed to match. Declarations after the failing
// one are never evaluated.
func TryExpand1[V1 comparable, R any](d1 Decl[V1], body func(V1) R) (R, error) {
	panic("constify: not generated")
}

// TryExpand2 is [TryExpand1] over two declarations.
func TryExpand2[V1, V2 comparable, R any](d1 Decl[V1], d2 Decl[V2], body func(V1, V2) R) (R, error) {
	panic("constify: not generated")
}

// TryExpand3 is [TryExpand1] over three declarations.
func TryExpand3[V1, V2, V3 comparable, R any](d1 Decl[V1], d2 Decl[V2], d3 Decl[V3], body func(V1, V2, V3) R) (R, error) {
	panic("constify: not generated")
}

// TryExpand4 is [TryExpand1] over four declarations.
func TryExpand4[V1, V2, V3, V4 comparable, R any](d1 Decl[V1], d2 Decl[V2], d3 Decl[V3], d4 Decl[V4], body func(V1, V2, V3, V4) R) (R, error) {
	panic("constify: not generated")
}
