package converter

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/question2atomese/internal/formula"
	"github.com/roach88/question2atomese/internal/relex"
	"github.com/roach88/question2atomese/internal/testutil"
)

func newGolden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestWhatOtherDetObjSubj_Golden(t *testing.T) {
	c := WhatOtherDetObjSubj()
	f := formula.Build(testutil.WhatColorIsTheCar())

	for _, form := range Forms {
		t.Run(string(form), func(t *testing.T) {
			q, err := c.Generate(f, form)
			require.NoError(t, err)

			assert.Equal(t, form, q.Form)
			assert.True(t, q.Complete())
			newGolden(t).Assert(t, "what_other_det_obj_subj_"+string(form), []byte(q.Text))
		})
	}
}

func TestWhatOtherDetObjSubj_UnfilledGolden(t *testing.T) {
	// A formula assembled by hand carries the pattern but no relation graph
	// to re-walk, so both slots stay unfilled.
	color, what := formula.NewArgument("color", ""), formula.NewArgument("what", "")
	be, car := formula.NewArgument("be", ""), formula.NewArgument("car", "")
	f := formula.NewFormula([]*formula.Predicate{
		formula.NewPredicate(relex.RelSubject, be, color),
		formula.NewPredicate(relex.RelDeterminer, color, what),
		formula.NewPredicate(relex.RelObject, be, car),
	})

	c := WhatOtherDetObjSubj()
	require.True(t, c.IsApplicable(f))

	for _, form := range Forms {
		t.Run(string(form), func(t *testing.T) {
			q, err := c.Generate(f, form)
			require.NoError(t, err)

			assert.False(t, q.Complete())
			assert.Equal(t, []string{SlotAttribute, SlotObject}, q.Missing)
			assert.Contains(t, q.Text, `(ConceptNode "null")`)
			newGolden(t).Assert(t, "what_other_det_obj_subj_unfilled_"+string(form), []byte(q.Text))
		})
	}
}

func TestWhatOtherDetObjSubj_PartialFillers(t *testing.T) {
	c := WhatOtherDetObjSubj()

	// Determiner present, object relation absent.
	s := relex.NewSentence("").Relate(relex.RelDeterminer, "color", "what")
	fill := c.Extract(s)

	assert.Equal(t, Fillers{SlotAttribute: "color"}, fill)
	assert.Equal(t, []string{SlotObject}, fill.Missing(c.Slots))

	text, err := c.Render(FormBind, fill)
	require.NoError(t, err)
	assert.Contains(t, text, `(InheritanceLink (VariableNode "$X") (ConceptNode "color"))`)
	assert.Contains(t, text, `(ListLink (VariableNode "$B") (ConceptNode "null"))`)
}

func TestWhatOtherDetObjSubj_Fillers(t *testing.T) {
	tests := []struct {
		name     string
		sentence *relex.Sentence
		want     Fillers
	}{
		{
			name:     "what color is the car",
			sentence: testutil.WhatColorIsTheCar(),
			want:     Fillers{SlotAttribute: "color", SlotObject: "car"},
		},
		{
			name:     "what shape is the ball",
			sentence: testutil.WhatShapeIsTheBall(),
			want:     Fillers{SlotAttribute: "shape", SlotObject: "ball"},
		},
		{
			name:     "other relations ignored",
			sentence: testutil.RedCar(),
			want:     Fillers{},
		},
		{
			name: "later relation wins",
			sentence: relex.NewSentence("").
				Relate(relex.RelObject, "be", "car").
				Relate(relex.RelObject, "be", "truck"),
			want: Fillers{SlotObject: "truck"},
		},
	}

	c := WhatOtherDetObjSubj()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Fillers(formula.Build(tt.sentence)))
		})
	}
}

func TestWhatOtherDetObjSubj_Metadata(t *testing.T) {
	c := WhatOtherDetObjSubj()

	assert.Equal(t, "what-other-det-obj-subj", c.Name)
	assert.Equal(t, "_det(A, B);_obj(C, D);_subj(C, A)", c.Pattern)
	assert.Equal(t, "other", c.QuestionType)
}

func TestConverter_IsApplicable(t *testing.T) {
	c := WhatOtherDetObjSubj()

	assert.True(t, c.IsApplicable(formula.Build(testutil.WhatColorIsTheCar())))
	assert.True(t, c.IsApplicable(formula.Build(testutil.WhatShapeIsTheBall())))
	assert.False(t, c.IsApplicable(formula.Build(testutil.RedCar())))
	assert.False(t, c.IsApplicable(formula.Build(relex.NewSentence(""))))
}

func TestConverter_BindCarriesFragmentTwice(t *testing.T) {
	c := WhatOtherDetObjSubj()
	f := formula.Build(testutil.WhatColorIsTheCar())

	fragment := c.Fragment(c.Fillers(f))
	bind := c.SchemeQuery(f)

	assert.Equal(t, 2, strings.Count(bind, fragment))
	assert.True(t, strings.HasPrefix(bind, "(BindLink\n"))
}

func TestConverter_SchemeQueryVariants(t *testing.T) {
	c := WhatOtherDetObjSubj()
	f := formula.Build(testutil.WhatColorIsTheCar())

	bind, err := c.Generate(f, FormBind)
	require.NoError(t, err)
	bc, err := c.Generate(f, FormBackwardChaining)
	require.NoError(t, err)
	execute, err := c.Generate(f, FormExecute)
	require.NoError(t, err)

	assert.Equal(t, bind.Text, c.SchemeQuery(f))
	assert.Equal(t, bc.Text, c.SchemeQueryURE(f))
	assert.Equal(t, execute.Text, c.SchemeQueryPM(f))
	assert.Equal(t, "(cog-execute! "+bind.Text+")", execute.Text)
	assert.Equal(t, "(conj-bc "+c.Fragment(bind.Fillers)+")\n", bc.Text)
}

func TestConverter_UnknownForm(t *testing.T) {
	c := WhatOtherDetObjSubj()

	_, err := c.Render(Form("sparql"), Fillers{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown query form")

	_, err = c.Generate(formula.Build(testutil.WhatColorIsTheCar()), Form(""))
	require.Error(t, err)
}

func TestParseForm(t *testing.T) {
	for _, form := range Forms {
		got, err := ParseForm(string(form))
		require.NoError(t, err)
		assert.Equal(t, form, got)
	}

	_, err := ParseForm("all")
	require.Error(t, err)
}

func TestFillers_GetAndMissing(t *testing.T) {
	fill := Fillers{SlotAttribute: "color", SlotObject: ""}

	assert.Equal(t, "color", fill.Get(SlotAttribute))
	assert.Equal(t, "", fill.Get(SlotObject), "present but empty is still filled")
	assert.Equal(t, UnfilledMarker, fill.Get("region"))
	assert.Nil(t, fill.Missing([]string{SlotAttribute, SlotObject}))
	assert.Equal(t, []string{"region"}, fill.Missing([]string{"region", SlotAttribute}))
}
