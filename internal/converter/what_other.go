package converter

import (
	"github.com/roach88/question2atomese/internal/formula"
	"github.com/roach88/question2atomese/internal/relex"
)

// Slots used by WhatOtherDetObjSubj.
const (
	SlotAttribute = "attribute" // attribute name under question, e.g. "color"
	SlotObject    = "object"    // object whose attribute is asked, e.g. "car"
)

// Query variables: $B is the bounding box, $X the attribute value that
// answers the question.
const (
	varBoundingBox = "B"
	varAnswer      = "X"
)

// WhatOtherDetObjSubj handles "What <attribute> is the <object>?":
//
//	_det(color, what) _obj(be, car) _subj(be, color)
func WhatOtherDetObjSubj() *Converter {
	return &Converter{
		Name:         "what-other-det-obj-subj",
		Pattern:      "_det(A, B);_obj(C, D);_subj(C, A)",
		QuestionType: "other",
		Slots:        []string{SlotAttribute, SlotObject},
		Variables:    []string{varBoundingBox, varAnswer},
		Extract:      extractDetObj,
		Fragment:     whatOtherFragment,
	}
}

// extractDetObj takes the attribute from the source of _det and the object
// from the target of _obj. Later relations overwrite earlier ones.
func extractDetObj(s *relex.Sentence) Fillers {
	fill := Fillers{}
	s.Foreach(relex.VisitorFuncs{
		Binary: func(relation string, src, tgt *relex.Node) bool {
			switch relation {
			case relex.RelDeterminer:
				fill[SlotAttribute] = src.Name()
			case relex.RelObject:
				fill[SlotObject] = tgt.Name()
			}
			return false
		},
	})
	return fill
}

func whatOtherFragment(fill Fillers) string {
	box, answer := variable(varBoundingBox), variable(varAnswer)
	return andLink(
		inheritance(box, concept(formula.BoundingBoxConcept)),
		inheritance(answer, concept(fill.Get(SlotAttribute))),
		classify(box, concept(fill.Get(SlotObject))),
		classify(box, answer),
	)
}
