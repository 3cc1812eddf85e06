package testutil

import (
	"testing"

	"github.com/roach88/question2atomese/internal/relex"
)

// WhatColorIsTheCar returns the parse of "What color is the car?":
//
//	_det(color, what) _obj(be, car) _subj(be, color)
//
// plus a couple of unary features the core must ignore.
func WhatColorIsTheCar() *relex.Sentence {
	return relex.NewSentence("What color is the car?").
		Relate(relex.RelDeterminer, "color", "what").
		Relate(relex.RelObject, "be", "car").
		Relate(relex.RelSubject, "be", "color").
		Mark("car", "DEFINITE-FLAG").
		Mark("be", "tense")
}

// WhatShapeIsTheBall has the same structure as WhatColorIsTheCar with
// different words.
func WhatShapeIsTheBall() *relex.Sentence {
	return relex.NewSentence("What shape is the ball?").
		Relate(relex.RelSubject, "be", "shape").
		Relate(relex.RelObject, "be", "ball").
		Relate(relex.RelDeterminer, "shape", "what")
}

// RedCar returns a sentence with a lone adjectival modifier; no registered
// pattern matches it.
func RedCar() *relex.Sentence {
	return relex.NewSentence("red car").Relate(relex.RelAdjModifier, "car", "red")
}

// SentenceFromTerms builds a sentence from relation terms such as
// "_det(color, what)" and fails the test on malformed input.
func SentenceFromTerms(t testing.TB, text string, terms ...string) *relex.Sentence {
	t.Helper()

	s := relex.NewSentence(text)
	for _, raw := range terms {
		term, err := relex.ParseTerm(raw)
		if err != nil {
			t.Fatalf("parse term %q: %v", raw, err)
		}
		if err := s.AddTerm(term); err != nil {
			t.Fatalf("add term %q: %v", raw, err)
		}
	}
	return s
}
