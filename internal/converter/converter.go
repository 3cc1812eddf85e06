package converter

import (
	"fmt"

	"github.com/roach88/question2atomese/internal/formula"
	"github.com/roach88/question2atomese/internal/relex"
)

// UnfilledMarker replaces slots the relation graph did not provide.
const UnfilledMarker = "null"

// Form selects a textual rendering of a query.
type Form string

const (
	// FormBind is a BindLink for direct pattern-matcher execution.
	FormBind Form = "bind"

	// FormBackwardChaining wraps the fragment for the unified rule engine.
	FormBackwardChaining Form = "bc"

	// FormExecute wraps the bind form in cog-execute! for eager evaluation.
	FormExecute Form = "execute"
)

// Forms lists every form in rendering order.
var Forms = []Form{FormBind, FormBackwardChaining, FormExecute}

// ParseForm converts a user-supplied name into a Form.
func ParseForm(name string) (Form, error) {
	for _, f := range Forms {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown query form %q: must be one of %v", name, Forms)
}

// Fillers maps slot names to the words extracted from a relation graph.
type Fillers map[string]string

// Get returns the word for slot, or UnfilledMarker.
func (f Fillers) Get(slot string) string {
	if v, ok := f[slot]; ok {
		return v
	}
	return UnfilledMarker
}

// Missing returns the slots with no word, in the given order.
func (f Fillers) Missing(slots []string) []string {
	var missing []string
	for _, s := range slots {
		if _, ok := f[s]; !ok {
			missing = append(missing, s)
		}
	}
	return missing
}

// Converter is a pattern-keyed query generation strategy.
type Converter struct {
	// Name identifies the converter in logs and CLI output.
	Name string

	// Pattern is the canonical signature the converter handles.
	Pattern string

	// QuestionType tags the question category for answer post-processing.
	QuestionType string

	// Slots lists the fillers the fragment needs.
	Slots []string

	// Variables are the query variables declared by the bind form, without
	// the "$" prefix.
	Variables []string

	// Extract walks the relation graph and collects fillers.
	Extract func(s *relex.Sentence) Fillers

	// Fragment renders the shared AndLink fragment.
	Fragment func(fill Fillers) string
}

// Query is one rendered query.
type Query struct {
	Form    Form
	Text    string
	Fillers Fillers
	Missing []string
}

// Complete reports whether every slot was filled.
func (q Query) Complete() bool {
	return len(q.Missing) == 0
}

// IsApplicable reports whether f carries exactly the converter's pattern.
func (c *Converter) IsApplicable(f *formula.Formula) bool {
	return f.FullFormula() == c.Pattern
}

// Fillers re-walks the sentence f was built from. A formula without a
// sentence yields no fillers.
func (c *Converter) Fillers(f *formula.Formula) Fillers {
	s := f.Sentence()
	if s == nil || c.Extract == nil {
		return Fillers{}
	}
	return c.Extract(s)
}

// Generate extracts fillers for f and renders the requested form.
func (c *Converter) Generate(f *formula.Formula, form Form) (Query, error) {
	fill := c.Fillers(f)
	text, err := c.Render(form, fill)
	if err != nil {
		return Query{}, err
	}
	return Query{
		Form:    form,
		Text:    text,
		Fillers: fill,
		Missing: fill.Missing(c.Slots),
	}, nil
}

// Render produces the text of form from already extracted fillers.
func (c *Converter) Render(form Form, fill Fillers) (string, error) {
	switch form {
	case FormBind:
		return c.bind(fill), nil
	case FormBackwardChaining:
		return conjBC(c.Fragment(fill)), nil
	case FormExecute:
		return cogExecute(c.bind(fill)), nil
	default:
		return "", fmt.Errorf("converter %s: unknown query form %q", c.Name, form)
	}
}

// SchemeQuery renders the bind form for f.
func (c *Converter) SchemeQuery(f *formula.Formula) string {
	return c.bind(c.Fillers(f))
}

// SchemeQueryURE renders the backward-chaining form for f.
func (c *Converter) SchemeQueryURE(f *formula.Formula) string {
	return conjBC(c.Fragment(c.Fillers(f)))
}

// SchemeQueryPM renders the eager-execution form for f.
func (c *Converter) SchemeQueryPM(f *formula.Formula) string {
	return cogExecute(c.SchemeQuery(f))
}

func (c *Converter) bind(fill Fillers) string {
	fragment := c.Fragment(fill)
	return bindLink(c.Variables, fragment+fragment)
}
