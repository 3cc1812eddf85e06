package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_CountsAndOrder(t *testing.T) {
	s := NewStats()
	for _, r := range []*Result{
		{Signature: "_amod(A, B)", Short: "_amod()"},
		{Signature: "_det(A, B);_obj(C, D);_subj(C, A)", Short: "_det();_obj();_subj()", Matched: true, Converter: "what-other-det-obj-subj"},
		{Signature: "_amod(A, B)", Short: "_amod()"},
		{Signature: "_det(A, B);_obj(C, D);_subj(C, A)", Short: "_det();_obj();_subj()", Matched: true, Converter: "what-other-det-obj-subj", Missing: []string{"object"}},
		{Signature: "_predadj(A, B)", Short: "_predadj()"},
	} {
		s.Add(r)
	}

	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 2, s.Matched)
	assert.Equal(t, 1, s.Incomplete)

	assert.Equal(t, []Count{
		{Key: "_amod(A, B)", Count: 2},
		{Key: "_det(A, B);_obj(C, D);_subj(C, A)", Count: 2, Converter: "what-other-det-obj-subj"},
		{Key: "_predadj(A, B)", Count: 1},
	}, s.Signatures())

	assert.Equal(t, []Count{
		{Key: "_amod()", Count: 2},
		{Key: "_det();_obj();_subj()", Count: 2},
		{Key: "_predadj()", Count: 1},
	}, s.ShortFormulas())

	assert.Equal(t, []Count{
		{Key: "_amod(A, B)", Count: 2},
		{Key: "_predadj(A, B)", Count: 1},
	}, s.Unmatched())
}

func TestStats_Empty(t *testing.T) {
	s := NewStats()

	assert.Empty(t, s.Signatures())
	assert.Empty(t, s.ShortFormulas())
	assert.Empty(t, s.Unmatched())
}
