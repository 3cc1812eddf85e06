// Package converter turns a matched formula into Atomese query text.
//
// A Converter is a value, not a type hierarchy: it pairs a canonical
// pattern with a filler extractor and a fragment builder. The Registry keeps
// an ordered list of converters and selects the first whose pattern equals
// the formula's signature:
//
//	formula.FullFormula() == converter.Pattern
//
// There is no structural unification; a formula either carries the exact
// declared signature or no converter applies.
//
// QUERY FORMS:
//
// Every converter renders the same logical query three ways, all built from
// one shared AndLink fragment:
//
//	bind     (BindLink (VariableList ...) <fragment> <fragment>)
//	bc       (conj-bc <fragment>)
//	execute  (cog-execute! <bind>)
//
// The bind form carries the fragment twice. The backend expects that shape;
// do not deduplicate it.
//
// FILLERS:
//
// Concrete words are not read off the formula. Each converter re-walks the
// original relation graph and picks its slots from specific relations. When
// a slot is never seen the query still renders, with UnfilledMarker in its
// place; Query.Missing lists such slots so callers can decide what to do.
package converter
