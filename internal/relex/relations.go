package relex

// Relation names emitted by RelEx that the core refers to by name.
const (
	RelDeterminer    = "_det"     // determiner: _det(color, what)
	RelObject        = "_obj"     // direct object: _obj(be, car)
	RelSubject       = "_subj"    // subject: _subj(be, color)
	RelAdjModifier   = "_amod"    // adjectival modifier: _amod(car, red)
	RelPredAdjective = "_predadj" // predicative adjective: _predadj(ball, red)
)
