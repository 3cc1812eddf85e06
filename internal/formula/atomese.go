package formula

import (
	"fmt"

	"github.com/roach88/question2atomese/internal/relex"
)

// NeuralNetworkPredicate is the grounded predicate the backend resolves to
// the attribute classifier.
const NeuralNetworkPredicate = "py:runNeuralNetwork"

// BoundingBoxConcept is the concept every image region inherits from.
const BoundingBoxConcept = "BoundingBox"

// atomeseTemplates maps relation names to their Atomese fragment. Relations
// without an entry render as "".
var atomeseTemplates = map[string]func(p *Predicate) string{
	relex.RelPredAdjective: predicativeAdjective,
}

// ToAtomeseFormula renders the predicate as an Atomese query fragment, or ""
// when the relation has no template.
func (p *Predicate) ToAtomeseFormula() string {
	tmpl, ok := atomeseTemplates[p.name]
	if !ok {
		return ""
	}
	return tmpl(p)
}

// predicativeAdjective asserts that the first argument is a bounding box for
// which the classifier accepts both lexical values.
func predicativeAdjective(p *Predicate) string {
	object := p.args[0].VariableName()
	return fmt.Sprintf("(AndLink "+
		"(InheritanceLink (VariableNode \"$%[1]s\") (ConceptNode \"%[4]s\"))"+
		"(EvaluationLink (GroundedPredicateNode \"%[5]s\") (ListLink (VariableNode \"$%[1]s\") (ConceptNode \"%[2]s\")) )"+
		"(EvaluationLink (GroundedPredicateNode \"%[5]s\") (ListLink (VariableNode \"$%[1]s\") (ConceptNode \"%[3]s\")) )"+
		")", object, p.args[0].Name(), p.args[1].Name(), BoundingBoxConcept, NeuralNetworkPredicate)
}
