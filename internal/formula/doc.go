// Package formula turns a relex relation graph into a canonical logical
// formula.
//
// A Formula is the sorted list of binary Predicates found in one sentence.
// Each Predicate ranges over two Arguments, one per distinct graph node.
// Arguments count how many Predicates use them; that count drives the
// ordering:
//
//	sum of the two arguments' usages   ascending
//	relation name                      ascending (tie-break)
//
// After sorting, arguments get variable names A, B, C, ... in order of first
// appearance. The resulting signature
//
//	_det(A, B);_obj(C, D);_subj(C, A)
//
// depends only on relation names and argument-sharing structure, never on
// the words of the sentence or on the order the parser reported relations.
// Converters key on that exact string.
//
// Formulas are built once per sentence and never mutated afterwards.
package formula
