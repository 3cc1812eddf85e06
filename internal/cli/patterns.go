package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/question2atomese/internal/converter"
	"github.com/roach88/question2atomese/internal/pattern"
)

// PatternsOptions holds flags for the patterns command.
type PatternsOptions struct {
	*RootOptions
	Check string // pattern declaration to validate
}

// ConverterRecord describes a registered converter.
type ConverterRecord struct {
	Name         string   `json:"name"`
	Pattern      string   `json:"pattern"`
	QuestionType string   `json:"question_type"`
	Slots        []string `json:"slots,omitempty"`
}

// PatternCheck is the JSON payload of patterns --check.
type PatternCheck struct {
	Pattern     string   `json:"pattern"`
	Canonical   string   `json:"canonical,omitempty"`
	IsCanonical bool     `json:"is_canonical"`
	Warnings    []string `json:"warnings,omitempty"`
	Converter   string   `json:"converter,omitempty"`
}

// NewPatternsCommand creates the patterns command.
func NewPatternsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PatternsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List registered converters or check a pattern",
		Long: `List the registered converters in match order, or check whether a
pattern declaration is canonical.

A pattern only matches when it is written exactly as the formula builder
would render it: terms sorted by argument usage, variables named in order
of appearance, ", " inside terms and ";" between them.

Exit codes:
  0 - Success, or --check on a canonical pattern
  1 - --check on a pattern that can never match

Examples:
  q2a patterns
  q2a patterns --check "_subj(C, A); _det(A, B); _obj(C, D)"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Check != "" {
				return runPatternCheck(opts, cmd)
			}
			return runPatternList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Check, "check", "", "validate a pattern declaration")

	return cmd
}

func runPatternList(opts *PatternsOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	converters := converter.Default.Converters()
	records := make([]ConverterRecord, 0, len(converters))
	for _, c := range converters {
		records = append(records, ConverterRecord{
			Name:         c.Name,
			Pattern:      c.Pattern,
			QuestionType: c.QuestionType,
			Slots:        c.Slots,
		})
	}

	if formatter.IsJSON() {
		return formatter.Success(records)
	}
	w := formatter.Writer
	for i, r := range records {
		fmt.Fprintf(w, "%d. %s\n", i+1, r.Name)
		fmt.Fprintf(w, "   pattern:       %s\n", r.Pattern)
		fmt.Fprintf(w, "   question type: %s\n", r.QuestionType)
		fmt.Fprintf(w, "   slots:         %s\n", strings.Join(r.Slots, ", "))
	}
	fmt.Fprintf(w, "%d converter(s) registered\n", len(records))
	return nil
}

func runPatternCheck(opts *PatternsOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	result := pattern.Validate(opts.Check)
	check := PatternCheck{
		Pattern:     opts.Check,
		Canonical:   result.Canonical,
		IsCanonical: result.IsCanonical,
		Warnings:    result.Warnings,
	}
	for _, c := range converter.Default.Converters() {
		if result.Canonical != "" && c.Pattern == result.Canonical {
			check.Converter = c.Name
		}
	}

	if !result.IsCanonical {
		return formatter.Fail(ExitFailure, ErrCodeInvalidInput,
			fmt.Sprintf("pattern %q is not canonical", opts.Check), check)
	}

	if formatter.IsJSON() {
		return formatter.Success(check)
	}
	w := formatter.Writer
	fmt.Fprintf(w, "✓ %s is canonical\n", check.Pattern)
	if check.Converter != "" {
		fmt.Fprintf(w, "  handled by: %s\n", check.Converter)
	}
	for _, warning := range check.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", warning)
	}
	return nil
}
