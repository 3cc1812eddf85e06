package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/question2atomese/internal/converter"
	"github.com/roach88/question2atomese/internal/engine"
)

// StatsOptions holds flags for the stats command.
type StatsOptions struct {
	*RootOptions
	Input     InputOptions
	Short     bool // group by relation-name sequence instead of signature
	Unmatched bool // only signatures without a converter
	Top       int  // limit rows, 0 = all
}

// CountRecord is one row of the statistics.
type CountRecord struct {
	Key       string `json:"key"`
	Count     int    `json:"count"`
	Converter string `json:"converter,omitempty"`
}

// StatsResult is the JSON payload of the stats command.
type StatsResult struct {
	Total      int           `json:"total"`
	Matched    int           `json:"matched"`
	Incomplete int           `json:"incomplete"`
	GroupBy    string        `json:"group_by"`
	Rows       []CountRecord `json:"rows"`
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StatsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "stats [corpus...]",
		Short: "Count questions per formula signature",
		Long: `Count questions per canonical signature, most frequent first.

Frequent signatures without a converter are the next candidates for a
converter. --short groups by relation names only, ignoring how the
arguments are shared.

Examples:
  q2a stats corpus/
  q2a stats corpus/ --unmatched --top 20
  q2a stats questions.yaml --short --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(opts, args, cmd)
		},
	}

	opts.Input.addFlags(cmd)
	cmd.Flags().BoolVar(&opts.Short, "short", false, "group by short formula")
	cmd.Flags().BoolVar(&opts.Unmatched, "unmatched", false, "only signatures without converter")
	cmd.Flags().IntVar(&opts.Top, "top", 0, "show only the N most frequent rows")

	return cmd
}

func runStats(opts *StatsOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if opts.Short && opts.Unmatched {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidInput, "--short and --unmatched cannot be combined", nil)
	}
	if opts.Top < 0 {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidInput, "--top must be non-negative", nil)
	}

	questions, err := loadInputs(args, opts.Input)
	if err != nil {
		return failInput(formatter, err)
	}

	// Only the signature matters here; skip rendering by asking for the
	// cheapest form.
	eng := engine.New(converter.Default, engine.WithForms(converter.FormBackwardChaining))
	report, err := eng.Run(runContext(cmd), questions)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}
	formatter.TraceID = report.RunID

	groupBy := "signature"
	counts := report.Stats.Signatures()
	switch {
	case opts.Short:
		groupBy = "short"
		counts = report.Stats.ShortFormulas()
	case opts.Unmatched:
		groupBy = "unmatched"
		counts = report.Stats.Unmatched()
	}
	if opts.Top > 0 && len(counts) > opts.Top {
		counts = counts[:opts.Top]
	}

	result := StatsResult{
		Total:      report.Stats.Total,
		Matched:    report.Stats.Matched,
		Incomplete: report.Stats.Incomplete,
		GroupBy:    groupBy,
		Rows:       make([]CountRecord, 0, len(counts)),
	}
	for _, c := range counts {
		result.Rows = append(result.Rows, CountRecord{Key: c.Key, Count: c.Count, Converter: c.Converter})
	}

	if formatter.IsJSON() {
		return formatter.Success(result)
	}

	w := formatter.Writer
	fmt.Fprintf(w, "%d question(s), %d matched, %d incomplete\n", result.Total, result.Matched, result.Incomplete)
	for _, row := range result.Rows {
		key := row.Key
		if key == "" {
			key = "(no relations)"
		}
		if row.Converter != "" {
			fmt.Fprintf(w, "%6d  %s  [%s]\n", row.Count, key, row.Converter)
		} else {
			fmt.Fprintf(w, "%6d  %s\n", row.Count, key)
		}
	}
	return nil
}
