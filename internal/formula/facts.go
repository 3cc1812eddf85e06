package formula

import (
	"github.com/google/mangle/ast"
)

// FactPredicate is the Mangle predicate grounded formulas are exported as:
//
//	relex("_det", "color", "what").
const FactPredicate = "relex"

// ToFact returns the grounded predicate as a Mangle atom.
func (p *Predicate) ToFact() ast.Atom {
	return ast.NewAtom(FactPredicate,
		ast.String(p.name),
		ast.String(p.args[0].Name()),
		ast.String(p.args[1].Name()),
	)
}

// Facts returns one atom per predicate, in signature order.
func (f *Formula) Facts() []ast.Atom {
	atoms := make([]ast.Atom, len(f.predicates))
	for i, p := range f.predicates {
		atoms[i] = p.ToFact()
	}
	return atoms
}
