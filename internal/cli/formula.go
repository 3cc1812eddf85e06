package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/question2atomese/internal/formula"
)

// FormulaOptions holds flags for the formula command.
type FormulaOptions struct {
	*RootOptions
	Input InputOptions
	Facts bool // include Mangle facts
}

// FormulaRecord is the JSON shape of one question's formula.
type FormulaRecord struct {
	ID         string          `json:"id"`
	Text       string          `json:"text,omitempty"`
	Signature  string          `json:"signature"`
	Grounded   string          `json:"grounded"`
	Short      string          `json:"short"`
	Predicates []string        `json:"predicates"`
	Atomese    []AtomeseRecord `json:"atomese,omitempty"`
	Facts      []string        `json:"facts,omitempty"`
}

// AtomeseRecord is a predicate that has a direct Atomese rendering.
type AtomeseRecord struct {
	Predicate string `json:"predicate"`
	Query     string `json:"query"`
}

// NewFormulaCommand creates the formula command.
func NewFormulaCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FormulaOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "formula [corpus...]",
		Short: "Show the canonical formula of questions",
		Long: `Show the canonical formula built from each question's relations.

Prints the canonical signature converters are matched against, the
grounded and short formulas, the sorted predicates with their variables,
and direct Atomese renderings for relations that have one.

Examples:
  q2a formula questions.yaml
  q2a formula --parse "_predadj(ball, round)" --facts`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormula(opts, args, cmd)
		},
	}

	opts.Input.addFlags(cmd)
	cmd.Flags().BoolVar(&opts.Facts, "facts", false, "also print predicates as Mangle facts")

	return cmd
}

func runFormula(opts *FormulaOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	questions, err := loadInputs(args, opts.Input)
	if err != nil {
		return failInput(formatter, err)
	}

	records := make([]FormulaRecord, 0, len(questions))
	for _, q := range questions {
		records = append(records, toFormulaRecord(q.ID, q.Text, formula.Build(q.Sentence), opts.Facts))
	}

	if formatter.IsJSON() {
		return formatter.Success(records)
	}
	for _, rec := range records {
		writeFormulaText(formatter.Writer, rec)
	}
	return nil
}

func toFormulaRecord(id, text string, f *formula.Formula, facts bool) FormulaRecord {
	rec := FormulaRecord{
		ID:         id,
		Text:       text,
		Signature:  f.FullFormula(),
		Grounded:   f.GroundedFormula(),
		Short:      f.ShortFormula(),
		Predicates: make([]string, 0, f.Len()),
	}
	for _, p := range f.Predicates() {
		rec.Predicates = append(rec.Predicates, p.String())
		if q := p.ToAtomeseFormula(); q != "" {
			rec.Atomese = append(rec.Atomese, AtomeseRecord{Predicate: p.ToFormula(), Query: q})
		}
	}
	if facts {
		for _, atom := range f.Facts() {
			rec.Facts = append(rec.Facts, atom.String()+".")
		}
	}
	return rec
}

func writeFormulaText(w io.Writer, rec FormulaRecord) {
	fmt.Fprintf(w, "%s: %s\n", rec.ID, rec.Text)
	fmt.Fprintf(w, "  signature: %s\n", rec.Signature)
	fmt.Fprintf(w, "  grounded:  %s\n", rec.Grounded)
	fmt.Fprintf(w, "  short:     %s\n", rec.Short)
	fmt.Fprintln(w, "  predicates:")
	for _, p := range rec.Predicates {
		fmt.Fprintf(w, "    %s\n", p)
	}
	if len(rec.Atomese) > 0 {
		fmt.Fprintln(w, "  atomese:")
		for _, a := range rec.Atomese {
			fmt.Fprintf(w, "    %s\n      %s\n", a.Predicate, a.Query)
		}
	}
	if len(rec.Facts) > 0 {
		fmt.Fprintln(w, "  facts:")
		for _, fact := range rec.Facts {
			fmt.Fprintf(w, "    %s\n", fact)
		}
	}
}
