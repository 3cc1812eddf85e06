// Package pattern checks formula pattern declarations.
//
// A converter declares the signature it handles as a flat string:
//
//	_det(A, B);_obj(C, D);_subj(C, A)
//
// Matching is exact string equality against formula.Formula.FullFormula, so
// a declaration that is not itself in canonical form can never match
// anything. Validate rebuilds the declaration through the formula builder,
// treating each variable as a graph node, and reports whether the result is
// byte-identical to the declaration.
//
// Validation is advisory for hand-written patterns (the CLI prints the
// warnings) and mandatory for the converter registry, which refuses
// non-canonical patterns at construction.
package pattern
