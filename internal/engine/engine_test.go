package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/question2atomese/internal/converter"
	"github.com/roach88/question2atomese/internal/corpus"
	"github.com/roach88/question2atomese/internal/formula"
	"github.com/roach88/question2atomese/internal/relex"
	"github.com/roach88/question2atomese/internal/testutil"
)

// regionConverter needs a slot no relation graph provides.
func regionConverter() *converter.Converter {
	c := converter.WhatOtherDetObjSubj()
	c.Name = "what-other-with-region"
	c.Slots = append(c.Slots, "region")
	return c
}

func questions() []corpus.Question {
	return []corpus.Question{
		{ID: "q1", ImageID: "img-1", Text: "What color is the car?", Sentence: testutil.WhatColorIsTheCar()},
		{ID: "q2", ImageID: "img-2", Text: "What color is the red car?", Sentence: testutil.RedCar()},
		{ID: "q3", ImageID: "img-3", Text: "What shape is the ball?", Sentence: testutil.WhatShapeIsTheBall()},
	}
}

func TestEngine_ProcessMatched(t *testing.T) {
	e := New(nil)

	r, err := e.Process(questions()[0])
	require.NoError(t, err)

	assert.True(t, r.Matched)
	assert.False(t, r.Incomplete())
	assert.Equal(t, "q1", r.QuestionID)
	assert.Equal(t, "img-1", r.ImageID)
	assert.Equal(t, "_det(A, B);_obj(C, D);_subj(C, A)", r.Signature)
	assert.Equal(t, "_det(color, what);_obj(be, car);_subj(be, color)", r.Grounded)
	assert.Equal(t, "_det();_obj();_subj()", r.Short)
	assert.Equal(t, "what-other-det-obj-subj", r.Converter)
	assert.Equal(t, "other", r.QuestionType)
	assert.Equal(t, converter.Fillers{converter.SlotAttribute: "color", converter.SlotObject: "car"}, r.Fillers)

	require.Len(t, r.Queries, len(converter.Forms))
	for i, form := range converter.Forms {
		assert.Equal(t, form, r.Queries[i].Form)
	}

	c := converter.WhatOtherDetObjSubj()
	bind, ok := r.Query(converter.FormBind)
	require.True(t, ok)
	assert.Equal(t, c.SchemeQuery(formula.Build(testutil.WhatColorIsTheCar())), bind.Text)
}

func TestEngine_ProcessNoMatch(t *testing.T) {
	e := New(nil, WithStrict(true))

	r, err := e.Process(questions()[1])
	require.NoError(t, err, "a miss is not an error, even in strict mode")

	assert.False(t, r.Matched)
	assert.False(t, r.Incomplete())
	assert.Equal(t, "_amod(A, B)", r.Signature)
	assert.Empty(t, r.Converter)
	assert.Empty(t, r.Queries)

	_, ok := r.Query(converter.FormBind)
	assert.False(t, ok)
}

func TestEngine_SelectedForms(t *testing.T) {
	e := New(nil, WithForms(converter.FormExecute))

	r, err := e.Convert(testutil.WhatColorIsTheCar())
	require.NoError(t, err)

	require.Len(t, r.Queries, 1)
	assert.Equal(t, converter.FormExecute, r.Queries[0].Form)
	assert.Contains(t, r.Queries[0].Text, "(cog-execute! (BindLink")
}

func TestEngine_UnknownFormFails(t *testing.T) {
	e := New(nil, WithForms(converter.Form("sparql")))

	_, err := e.Process(questions()[0])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "q1")
}

func TestEngine_Incomplete(t *testing.T) {
	registry := converter.MustRegistry(regionConverter())

	r, err := New(registry).Process(questions()[0])
	require.NoError(t, err)
	assert.True(t, r.Incomplete())
	assert.Equal(t, []string{"region"}, r.Missing)
	for _, q := range r.Queries {
		assert.False(t, q.Complete())
	}
}

func TestEngine_IncompleteStrict(t *testing.T) {
	registry := converter.MustRegistry(regionConverter())

	r, err := New(registry, WithStrict(true)).Process(questions()[0])
	require.Error(t, err)
	assert.True(t, IsIncomplete(err))
	assert.False(t, IsNoMatch(err))
	require.NotNil(t, r, "result is returned alongside the error")
	assert.Len(t, r.Queries, len(converter.Forms))

	var engineErr *Error
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, "q1", engineErr.QuestionID)
	assert.Equal(t, "what-other-with-region", engineErr.Converter)
	assert.Contains(t, engineErr.Message, "region")
}

func TestEngine_NilSentence(t *testing.T) {
	r, err := New(nil).Process(corpus.Question{ID: "empty", Text: "Why?"})
	require.NoError(t, err)
	assert.False(t, r.Matched)
	assert.Empty(t, r.Signature)
}

func TestEngine_SequenceNumbers(t *testing.T) {
	e := New(nil)
	first, err := e.Convert(relex.NewSentence(""))
	require.NoError(t, err)
	second, err := e.Convert(relex.NewSentence(""))
	require.NoError(t, err)

	assert.Less(t, first.Seq, second.Seq)
}

func TestEngine_Run(t *testing.T) {
	e := New(nil, WithRunIDs(NewFixedGenerator("run-1")))

	report, err := e.Run(context.Background(), questions())
	require.NoError(t, err)

	assert.Equal(t, "run-1", report.RunID)
	require.Len(t, report.Results, 3)
	assert.Equal(t, []string{"q1", "q2", "q3"}, []string{
		report.Results[0].QuestionID, report.Results[1].QuestionID, report.Results[2].QuestionID,
	})
	assert.Equal(t, 3, report.Stats.Total)
	assert.Equal(t, 2, report.Stats.Matched)
	assert.Equal(t, 0, report.Stats.Incomplete)
}

func TestEngine_RunStrictStopsAtFirstIncomplete(t *testing.T) {
	e := New(converter.MustRegistry(regionConverter()),
		WithStrict(true),
		WithRunIDs(NewFixedGenerator("run-1")))

	report, err := e.Run(context.Background(), questions())
	require.Error(t, err)
	assert.True(t, IsIncomplete(err))
	require.Len(t, report.Results, 1)
	assert.Equal(t, "q1", report.Results[0].QuestionID)
}

func TestEngine_RunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := New(nil, WithRunIDs(NewFixedGenerator("run-1"))).Run(ctx, questions())
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Results)
}
