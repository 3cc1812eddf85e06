package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/question2atomese/internal/converter"
	"github.com/roach88/question2atomese/internal/engine"
)

// FormAll renders every query form.
const FormAll = "all"

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	Input  InputOptions
	Form   string // bind | bc | execute | all
	Strict bool   // misses and unfilled slots fail the command
	Output string // write output to this file instead of stdout
}

// QuestionRecord is the JSON shape of one converted question.
type QuestionRecord struct {
	ID           string        `json:"id"`
	ImageID      string        `json:"image_id,omitempty"`
	Text         string        `json:"text,omitempty"`
	Signature    string        `json:"signature"`
	Matched      bool          `json:"matched"`
	Converter    string        `json:"converter,omitempty"`
	QuestionType string        `json:"question_type,omitempty"`
	Missing      []string      `json:"missing,omitempty"`
	Queries      []QueryRecord `json:"queries,omitempty"`
}

// QueryRecord is one rendered query.
type QueryRecord struct {
	Form string `json:"form"`
	Text string `json:"text"`
}

// ConvertResult is the JSON payload of the convert command.
type ConvertResult struct {
	Questions []QuestionRecord `json:"questions"`
	Total     int              `json:"total"`
	Matched   int              `json:"matched"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert [corpus...]",
		Short: "Convert questions into Atomese queries",
		Long: `Convert pre-parsed questions into Atomese queries.

Each question's relations are turned into a canonical formula; the first
converter whose pattern equals the formula renders the queries. Questions
no converter handles are reported and skipped.

Exit codes:
  0 - Success
  1 - Strict mode: a question had no converter or unfilled slots
  2 - Command error (unreadable corpus, invalid flags)

Examples:
  q2a convert questions.yaml
  q2a convert corpus/ --form bc
  q2a convert --parse "_det(color, what);_obj(be, car);_subj(be, color)"
  q2a convert questions.cue --strict --format json -o queries.json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args, cmd)
		},
	}

	opts.Input.addFlags(cmd)
	cmd.Flags().StringVar(&opts.Form, "form", FormAll, "query form (bind|bc|execute|all)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "fail on questions without converter or with unfilled slots")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write output to file")

	return cmd
}

// parseForms expands a --form value.
func parseForms(name string) ([]converter.Form, error) {
	if name == FormAll {
		return converter.Forms, nil
	}
	f, err := converter.ParseForm(name)
	if err != nil {
		return nil, err
	}
	return []converter.Form{f}, nil
}

func runConvert(opts *ConvertOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	forms, err := parseForms(opts.Form)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidForm, err.Error(), nil)
	}

	questions, err := loadInputs(args, opts.Input)
	if err != nil {
		return failInput(formatter, err)
	}
	formatter.VerboseLog("Loaded %d question(s)", len(questions))

	if opts.Output != "" {
		file, err := os.Create(opts.Output)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeWriteFailed, fmt.Sprintf("creating output file: %v", err), nil)
		}
		defer file.Close()
		formatter.Writer = file
	}

	eng := engine.New(converter.Default, engine.WithForms(forms...), engine.WithStrict(opts.Strict))

	report, runErr := eng.Run(runContext(cmd), questions)
	if report != nil {
		formatter.TraceID = report.RunID
	}
	if runErr != nil {
		if engine.IsIncomplete(runErr) {
			return formatter.Fail(ExitFailure, ErrCodeIncomplete, runErr.Error(), nil)
		}
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, runErr.Error(), nil)
	}

	if opts.Strict {
		for _, r := range report.Results {
			if !r.Matched {
				noMatch := engine.NewNoMatchError(r)
				return formatter.Fail(ExitFailure, ErrCodeNoMatch, noMatch.Error(), nil)
			}
		}
	}

	result := ConvertResult{
		Questions: make([]QuestionRecord, 0, len(report.Results)),
		Total:     report.Stats.Total,
		Matched:   report.Stats.Matched,
	}
	for _, r := range report.Results {
		result.Questions = append(result.Questions, toQuestionRecord(r))
	}

	if formatter.IsJSON() {
		return formatter.Success(result)
	}
	writeConvertText(formatter.Writer, result)
	return nil
}

func toQuestionRecord(r *engine.Result) QuestionRecord {
	rec := QuestionRecord{
		ID:           r.QuestionID,
		ImageID:      r.ImageID,
		Text:         r.Text,
		Signature:    r.Signature,
		Matched:      r.Matched,
		Converter:    r.Converter,
		QuestionType: r.QuestionType,
		Missing:      r.Missing,
	}
	for _, q := range r.Queries {
		rec.Queries = append(rec.Queries, QueryRecord{Form: string(q.Form), Text: q.Text})
	}
	return rec
}

// writeConvertText prints queries with ";" comment headers so the output
// can be loaded into a Scheme shell as is.
func writeConvertText(w io.Writer, result ConvertResult) {
	for _, q := range result.Questions {
		fmt.Fprintf(w, "; %s", q.ID)
		if q.ImageID != "" {
			fmt.Fprintf(w, " [%s]", q.ImageID)
		}
		if q.Text != "" {
			fmt.Fprintf(w, " %s", q.Text)
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "; signature: %s\n", q.Signature)

		if !q.Matched {
			fmt.Fprintln(w, "; no converter found")
			fmt.Fprintln(w)
			continue
		}
		fmt.Fprintf(w, "; converter: %s (question type %s)\n", q.Converter, q.QuestionType)
		if len(q.Missing) > 0 {
			fmt.Fprintf(w, "; unfilled: %s\n", strings.Join(q.Missing, ", "))
		}
		for _, query := range q.Queries {
			fmt.Fprintf(w, "; form: %s\n", query.Form)
			fmt.Fprint(w, query.Text)
			if !strings.HasSuffix(query.Text, "\n") {
				fmt.Fprintln(w)
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "; %d question(s), %d matched\n", result.Total, result.Matched)
}

// runContext returns cmd's context, or Background when the command runs
// outside Execute.
func runContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
