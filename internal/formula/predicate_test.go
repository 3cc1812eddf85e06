package formula

import (
	"testing"

	"github.com/google/mangle/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/question2atomese/internal/relex"
	"github.com/roach88/question2atomese/internal/testutil"
)

func TestNewPredicate_RegistersOnArguments(t *testing.T) {
	a := NewArgument("color", "A")
	b := NewArgument("what", "B")

	p := NewPredicate(relex.RelDeterminer, a, b)

	assert.Equal(t, 1, a.NumberOfUsages())
	assert.Equal(t, 1, b.NumberOfUsages())
	assert.Equal(t, [2]*Argument{a, b}, p.Arguments())

	NewPredicate(relex.RelSubject, NewArgument("be", "C"), a)
	assert.Equal(t, 2, a.NumberOfUsages())
	assert.Equal(t, 1, b.NumberOfUsages())
}

func TestPredicate_Renderings(t *testing.T) {
	p := NewPredicate(relex.RelDeterminer, NewArgument("color", "A"), NewArgument("what", "B"))

	assert.Equal(t, "_det(A, B)", p.ToFormula())
	assert.Equal(t, "_det(color, what)", p.ToGroundedFormula())
	assert.Equal(t, "_det()", p.ToShortFormula())
	assert.Equal(t, "_det(A:color, B:what)", p.String())
}

func TestCompare_UsageSumFirst(t *testing.T) {
	shared := NewArgument("x", "")
	det := NewPredicate("_det", shared, NewArgument("y", ""))
	NewPredicate("_aux", shared, NewArgument("q", ""))
	obj := NewPredicate("_obj", NewArgument("z", ""), NewArgument("w", ""))

	assert.Less(t, Compare(obj, det), 0, "sum 2 sorts before sum 3 despite the name")
	assert.Greater(t, Compare(det, obj), 0)
}

func TestCompare_NameTieBreak(t *testing.T) {
	det := NewPredicate("_det", NewArgument("a", ""), NewArgument("b", ""))
	obj := NewPredicate("_obj", NewArgument("c", ""), NewArgument("d", ""))

	assert.Less(t, Compare(det, obj), 0)
	assert.Greater(t, Compare(obj, det), 0)

	f := NewFormula([]*Predicate{obj, det})
	assert.Equal(t, []*Predicate{det, obj}, f.Predicates())
}

func TestCompare_EqualPredicate(t *testing.T) {
	p := NewPredicate("_det", NewArgument("a", ""), NewArgument("b", ""))

	assert.Equal(t, 0, Compare(p, p))
}

func TestToAtomeseFormula_PredicativeAdjective(t *testing.T) {
	p := NewPredicate(relex.RelPredAdjective, NewArgument("red", "x1"), NewArgument("round", "x2"))

	want := `(AndLink ` +
		`(InheritanceLink (VariableNode "$x1") (ConceptNode "BoundingBox"))` +
		`(EvaluationLink (GroundedPredicateNode "py:runNeuralNetwork") (ListLink (VariableNode "$x1") (ConceptNode "red")) )` +
		`(EvaluationLink (GroundedPredicateNode "py:runNeuralNetwork") (ListLink (VariableNode "$x1") (ConceptNode "round")) )` +
		`)`
	assert.Equal(t, want, p.ToAtomeseFormula())
}

func TestToAtomeseFormula_UnknownRelationIsEmpty(t *testing.T) {
	for _, name := range []string{relex.RelDeterminer, relex.RelObject, relex.RelAdjModifier, "_unknown", ""} {
		p := NewPredicate(name, NewArgument("red", "x1"), NewArgument("round", "x2"))
		assert.Empty(t, p.ToAtomeseFormula(), "relation %q", name)
	}
}

func TestToFact(t *testing.T) {
	p := NewPredicate(relex.RelDeterminer, NewArgument("color", "A"), NewArgument("what", "B"))

	atom := p.ToFact()
	assert.Equal(t, FactPredicate, atom.Predicate.Symbol)
	require.Len(t, atom.Args, 3)
	assertStringConstant(t, atom.Args[0], "_det")
	assertStringConstant(t, atom.Args[1], "color")
	assertStringConstant(t, atom.Args[2], "what")
}

func TestFormula_FactsInSignatureOrder(t *testing.T) {
	f := Build(testutil.WhatColorIsTheCar())

	facts := f.Facts()
	require.Len(t, facts, 3)
	for i, want := range []string{"_det", "_obj", "_subj"} {
		assertStringConstant(t, facts[i].Args[0], want)
	}
}

func assertStringConstant(t *testing.T, term ast.BaseTerm, want string) {
	t.Helper()
	c, ok := term.(ast.Constant)
	require.True(t, ok, "expected constant term, got %T", term)
	assert.Equal(t, ast.StringType, c.Type)
	assert.Equal(t, want, c.Symbol)
}
