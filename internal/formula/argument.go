package formula

// Argument is a slot of one or more Predicates, bound to a lexical value.
type Argument struct {
	name     string
	variable string
	usages   int
}

// NewArgument creates an argument bound to name. variable may be empty, in
// which case the Formula that first includes the argument assigns one.
func NewArgument(name, variable string) *Argument {
	return &Argument{name: name, variable: variable}
}

// AddRelation records that p uses this argument.
func (a *Argument) AddRelation(p *Predicate) {
	a.usages++
}

// Name returns the bound lexical value.
func (a *Argument) Name() string {
	return a.name
}

// VariableName returns the synthetic identifier used by ToFormula.
func (a *Argument) VariableName() string {
	return a.variable
}

// NumberOfUsages returns how many predicates reference the argument.
func (a *Argument) NumberOfUsages() int {
	return a.usages
}

func (a *Argument) String() string {
	return a.variable + ":" + a.name
}
