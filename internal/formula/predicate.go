package formula

import "strings"

// Predicate is a named binary relation over two ordered Arguments.
type Predicate struct {
	name string
	args [2]*Argument
}

// NewPredicate creates name(first, second) and registers the predicate on
// both arguments.
func NewPredicate(name string, first, second *Argument) *Predicate {
	p := &Predicate{name: name, args: [2]*Argument{first, second}}
	first.AddRelation(p)
	second.AddRelation(p)
	return p
}

// Name returns the relation name.
func (p *Predicate) Name() string {
	return p.name
}

// Arguments returns the two arguments in order.
func (p *Predicate) Arguments() [2]*Argument {
	return p.args
}

// NumberOfArgumentUsages returns the summed usage count of both arguments,
// the primary ordering key.
func (p *Predicate) NumberOfArgumentUsages() int {
	return p.args[0].NumberOfUsages() + p.args[1].NumberOfUsages()
}

// Compare orders predicates by total argument usage, then by name.
//
// Predicates equal on both keys are compared by the first argument's usage;
// any order left after that is unspecified.
func Compare(p, q *Predicate) int {
	if d := p.NumberOfArgumentUsages() - q.NumberOfArgumentUsages(); d != 0 {
		return d
	}
	if c := strings.Compare(p.name, q.name); c != 0 {
		return c
	}
	return p.args[0].NumberOfUsages() - q.args[0].NumberOfUsages()
}

// ToFormula renders name(varA, varB).
func (p *Predicate) ToFormula() string {
	return p.render(func(a *Argument) string { return a.VariableName() })
}

// ToGroundedFormula renders name(lexA, lexB).
func (p *Predicate) ToGroundedFormula() string {
	return p.render(func(a *Argument) string { return a.Name() })
}

// ToShortFormula renders name().
func (p *Predicate) ToShortFormula() string {
	return p.name + "()"
}

func (p *Predicate) String() string {
	return p.render(func(a *Argument) string { return a.String() })
}

func (p *Predicate) render(arg func(*Argument) string) string {
	return p.name + "(" + arg(p.args[0]) + ", " + arg(p.args[1]) + ")"
}
