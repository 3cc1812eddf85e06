package relex

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedTerm is returned when a term does not follow the
// name(arg, arg) grammar.
var ErrMalformedTerm = errors.New("malformed term")

// Term is one relation written in the flat term grammar:
//
//	_det(color, what)
//
// The same grammar is used for relation fixtures (arguments are tokens) and
// for formula patterns (arguments are variables).
type Term struct {
	Name string
	Args []string
}

// String renders the term in canonical form: arguments separated by ", ".
func (t Term) String() string {
	return t.Name + "(" + strings.Join(t.Args, ", ") + ")"
}

// ParseTerm parses a single term. Surrounding whitespace is ignored.
func ParseTerm(s string) (Term, error) {
	raw := strings.TrimSpace(s)
	open := strings.IndexByte(raw, '(')
	if open < 0 {
		return Term{}, fmt.Errorf("%w: %q: missing '('", ErrMalformedTerm, raw)
	}
	if !strings.HasSuffix(raw, ")") {
		return Term{}, fmt.Errorf("%w: %q: missing closing ')'", ErrMalformedTerm, raw)
	}

	name := strings.TrimSpace(raw[:open])
	if name == "" {
		return Term{}, fmt.Errorf("%w: %q: empty relation name", ErrMalformedTerm, raw)
	}

	body := raw[open+1 : len(raw)-1]
	if strings.ContainsAny(body, "()") {
		return Term{}, fmt.Errorf("%w: %q: nested parentheses", ErrMalformedTerm, raw)
	}

	var args []string
	for _, part := range strings.Split(body, ",") {
		arg := strings.TrimSpace(part)
		if arg == "" {
			return Term{}, fmt.Errorf("%w: %q: empty argument", ErrMalformedTerm, raw)
		}
		args = append(args, arg)
	}

	return Term{Name: name, Args: args}, nil
}

// ParseTerms parses a ';' separated list of terms. An empty (or blank) input
// yields no terms.
func ParseTerms(s string) ([]Term, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ";")
	terms := make([]Term, 0, len(parts))
	for i, part := range parts {
		t, err := ParseTerm(part)
		if err != nil {
			return nil, fmt.Errorf("term %d: %w", i, err)
		}
		terms = append(terms, t)
	}
	return terms, nil
}

// FormatTerms joins terms with ';', the separator used by formula
// signatures.
func FormatTerms(terms []Term) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, ";")
}
