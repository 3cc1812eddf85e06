package pattern

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/roach88/question2atomese/internal/formula"
	"github.com/roach88/question2atomese/internal/relex"
)

// ValidationResult describes how a pattern declaration relates to the
// canonical signature it stands for.
type ValidationResult struct {
	// IsCanonical is true when the declaration equals its canonical form and
	// can therefore match a formula.
	IsCanonical bool

	// Canonical is the signature a sentence with this structure produces.
	// Empty when the declaration does not parse.
	Canonical string

	// Warnings lists every problem found. A canonical pattern may still carry
	// convention or ambiguity warnings.
	Warnings []string
}

// Validate parses decl and compares it with its canonical form.
//
// Rules:
//  1. Every term has exactly two arguments.
//  2. Variables are capitalized by convention.
//  3. The declaration equals the canonical signature of its structure.
//  4. No two terms share both relation name and usage sum; their relative
//     order would be unspecified.
//
// Validate is a pure function with no side effects.
func Validate(decl string) ValidationResult {
	v := &validator{warnings: []string{}}
	canonical := v.validate(decl)

	return ValidationResult{
		IsCanonical: canonical != "" && canonical == decl,
		Canonical:   canonical,
		Warnings:    v.warnings,
	}
}

// Canonicalize returns the canonical signature of decl.
func Canonicalize(decl string) (string, error) {
	f, err := build(decl)
	if err != nil {
		return "", err
	}
	return f.FullFormula(), nil
}

// validator accumulates warnings during validation.
type validator struct {
	warnings []string
}

func (v *validator) addWarning(format string, args ...any) {
	v.warnings = append(v.warnings, fmt.Sprintf(format, args...))
}

func (v *validator) validate(decl string) string {
	terms, err := relex.ParseTerms(decl)
	if err != nil {
		v.addWarning("unparseable pattern: %v", err)
		return ""
	}
	if len(terms) == 0 {
		v.addWarning("empty pattern - matches only sentences without binary relations")
		return ""
	}

	for _, t := range terms {
		v.validateTerm(t)
	}

	f, err := build(decl)
	if err != nil {
		// Arity problems were already reported per term.
		return ""
	}
	v.validateOrder(f)

	canonical := f.FullFormula()
	if canonical != decl {
		v.addWarning("pattern %q is not canonical, it can never match; canonical form is %q", decl, canonical)
	}
	return canonical
}

func (v *validator) validateTerm(t relex.Term) {
	if len(t.Args) != 2 {
		v.addWarning("term %s has %d arguments - patterns use binary relations only", t, len(t.Args))
		return
	}
	for _, arg := range t.Args {
		r, _ := utf8.DecodeRuneInString(arg)
		if !unicode.IsUpper(r) {
			v.addWarning("variable %q in %s should be capitalized", arg, t)
		}
	}
}

// validateOrder warns about neighbours the ordering cannot tell apart.
func (v *validator) validateOrder(f *formula.Formula) {
	preds := f.Predicates()
	for i := 1; i < len(preds); i++ {
		prev, cur := preds[i-1], preds[i]
		if prev.Name() == cur.Name() && prev.NumberOfArgumentUsages() == cur.NumberOfArgumentUsages() {
			v.addWarning("terms %s and %s tie on name and usage - their order is unspecified", prev.ToFormula(), cur.ToFormula())
		}
	}
}

// build turns a declaration into a formula, one graph node per variable.
func build(decl string) (*formula.Formula, error) {
	terms, err := relex.ParseTerms(decl)
	if err != nil {
		return nil, err
	}

	s := relex.NewSentence(decl)
	for _, t := range terms {
		if len(t.Args) != 2 {
			return nil, fmt.Errorf("%w: %s has %d arguments, want 2", relex.ErrMalformedTerm, t, len(t.Args))
		}
		s.Relate(t.Name, t.Args[0], t.Args[1])
	}
	return formula.Build(s), nil
}
