package harness

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/roach88/question2atomese/internal/engine"
)

// AssertionError describes one expectation that did not hold.
type AssertionError struct {
	Question string
	Field    string
	Expected string
	Actual   string
}

func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s.%s\n", e.Question, e.Field)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)
	return buf.String()
}

// EvaluateExpectations checks results against expects and returns one
// message per failure, in expectation order.
func EvaluateExpectations(results []*engine.Result, expects []Expectation) []string {
	byID := make(map[string]*engine.Result, len(results))
	for _, r := range results {
		byID[r.QuestionID] = r
	}

	var msgs []string
	for _, e := range expects {
		r, ok := byID[e.Question]
		if !ok {
			msgs = append(msgs, (&AssertionError{
				Question: e.Question,
				Field:    "result",
				Expected: "a result",
				Actual:   "question not processed",
			}).Error())
			continue
		}
		for _, err := range checkExpectation(r, e) {
			msgs = append(msgs, err.Error())
		}
	}
	return msgs
}

func checkExpectation(r *engine.Result, e Expectation) []error {
	var errs []error
	fail := func(field, expected, actual string) {
		errs = append(errs, &AssertionError{Question: e.Question, Field: field, Expected: expected, Actual: actual})
	}
	str := func(field, expected, actual string) {
		if expected != "" && expected != actual {
			fail(field, fmt.Sprintf("%q", expected), fmt.Sprintf("%q", actual))
		}
	}

	str("signature", e.Signature, r.Signature)
	str("grounded", e.Grounded, r.Grounded)
	str("short", e.Short, r.Short)
	str("converter", e.Converter, r.Converter)
	str("question_type", e.QuestionType, r.QuestionType)

	if e.Matched != nil && *e.Matched != r.Matched {
		fail("matched", fmt.Sprint(*e.Matched), fmt.Sprint(r.Matched))
	}
	if e.Complete != nil && *e.Complete == r.Incomplete() {
		fail("complete", fmt.Sprint(*e.Complete), fmt.Sprintf("%t (missing %v)", !r.Incomplete(), r.Missing))
	}

	for _, slot := range slices.Sorted(maps.Keys(e.Fillers)) {
		got, ok := r.Fillers[slot]
		if !ok {
			got = "<unfilled>"
		}
		if got != e.Fillers[slot] {
			fail("fillers."+slot, fmt.Sprintf("%q", e.Fillers[slot]), fmt.Sprintf("%q", got))
		}
	}

	for _, snippet := range e.Contains {
		if len(r.Queries) == 0 {
			fail("contains", fmt.Sprintf("queries containing %q", snippet), "no queries rendered")
			break
		}
		for _, q := range r.Queries {
			if !strings.Contains(q.Text, snippet) {
				fail("contains", fmt.Sprintf("%s query containing %q", q.Form, snippet), "not found")
			}
		}
	}
	return errs
}
