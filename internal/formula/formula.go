package formula

import (
	"slices"
	"strconv"
	"strings"

	"github.com/roach88/question2atomese/internal/relex"
)

// Separator joins predicate renderings in a signature.
const Separator = ";"

// Formula is the sorted set of predicates of one sentence.
type Formula struct {
	sentence   *relex.Sentence
	predicates []*Predicate
	arguments  []*Argument
}

// Build walks the relation graph of s and returns its formula. Every binary
// relation becomes a predicate; unary relations are ignored. Each distinct
// node becomes one argument.
func Build(s *relex.Sentence) *Formula {
	b := &builder{args: make(map[*relex.Node]*Argument)}
	s.Foreach(b)

	f := NewFormula(b.predicates)
	f.sentence = s
	return f
}

// NewFormula sorts predicates and assigns variable names to arguments that do
// not have one yet. The input slice is not modified.
func NewFormula(predicates []*Predicate) *Formula {
	sorted := slices.Clone(predicates)
	slices.SortStableFunc(sorted, Compare)

	f := &Formula{predicates: sorted}

	seen := make(map[*Argument]bool)
	for _, p := range sorted {
		for _, a := range p.args {
			if seen[a] {
				continue
			}
			seen[a] = true
			if a.variable == "" {
				a.variable = VariableName(len(f.arguments))
			}
			f.arguments = append(f.arguments, a)
		}
	}
	return f
}

// VariableName returns the i-th synthetic variable: A..Z, then A1..Z1, ...
func VariableName(i int) string {
	letter := string(rune('A' + i%26))
	if round := i / 26; round > 0 {
		return letter + strconv.Itoa(round)
	}
	return letter
}

// FullFormula returns the canonical signature used for pattern matching.
func (f *Formula) FullFormula() string {
	return f.join((*Predicate).ToFormula)
}

// GroundedFormula returns the signature with lexical values in place of
// variables.
func (f *Formula) GroundedFormula() string {
	return f.join((*Predicate).ToGroundedFormula)
}

// ShortFormula returns the relation names only, in signature order.
func (f *Formula) ShortFormula() string {
	return f.join((*Predicate).ToShortFormula)
}

func (f *Formula) join(render func(*Predicate) string) string {
	parts := make([]string, len(f.predicates))
	for i, p := range f.predicates {
		parts[i] = render(p)
	}
	return strings.Join(parts, Separator)
}

// Predicates returns the predicates in signature order.
func (f *Formula) Predicates() []*Predicate {
	return slices.Clone(f.predicates)
}

// Arguments returns the arguments in variable order.
func (f *Formula) Arguments() []*Argument {
	return slices.Clone(f.arguments)
}

// Sentence returns the relation graph the formula was built from, or nil for
// formulas assembled with NewFormula.
func (f *Formula) Sentence() *relex.Sentence {
	return f.sentence
}

// Len returns the number of predicates.
func (f *Formula) Len() int {
	return len(f.predicates)
}

func (f *Formula) String() string {
	return f.FullFormula()
}

// builder collects predicates while walking a sentence.
type builder struct {
	args       map[*relex.Node]*Argument
	predicates []*Predicate
}

func (b *builder) BinaryRelation(relation string, src, tgt *relex.Node) bool {
	b.predicates = append(b.predicates, NewPredicate(relation, b.argument(src), b.argument(tgt)))
	return false
}

func (b *builder) UnaryRelation(*relex.Node, string) bool {
	return false
}

func (b *builder) argument(n *relex.Node) *Argument {
	if a, ok := b.args[n]; ok {
		return a
	}
	a := NewArgument(n.Name(), "")
	b.args[n] = a
	return a
}
