package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/question2atomese/internal/engine"
)

// Snapshot renders a report as stable text for golden comparison.
//
// Layout:
//
//	scenario: <name>
//	run: <run id>
//	total: <n> matched: <n> incomplete: <n>
//
//	## <question id>
//	signature: ...
//	...
//	### <form>
//	<query text>
func Snapshot(name string, report *engine.Report) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "scenario: %s\n", name)
	fmt.Fprintf(&b, "run: %s\n", report.RunID)
	fmt.Fprintf(&b, "total: %d matched: %d incomplete: %d\n",
		report.Stats.Total, report.Stats.Matched, report.Stats.Incomplete)

	for _, r := range report.Results {
		fmt.Fprintf(&b, "\n## %s\n", r.QuestionID)
		fmt.Fprintf(&b, "text: %s\n", r.Text)
		fmt.Fprintf(&b, "signature: %s\n", r.Signature)
		fmt.Fprintf(&b, "grounded: %s\n", r.Grounded)
		fmt.Fprintf(&b, "converter: %s\n", orDash(r.Converter))
		fmt.Fprintf(&b, "question_type: %s\n", orDash(r.QuestionType))
		fmt.Fprintf(&b, "missing: %s\n", orDash(strings.Join(r.Missing, ", ")))
		for _, q := range r.Queries {
			fmt.Fprintf(&b, "### %s\n", q.Form)
			b.WriteString(q.Text)
			if !strings.HasSuffix(q.Text, "\n") {
				b.WriteString("\n")
			}
		}
	}
	return []byte(b.String())
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// RunWithGolden executes a scenario, fails t on unmet expectations and
// compares the snapshot against testdata/golden/<scenario.Name>.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	for _, msg := range result.Errors {
		t.Error(msg)
	}

	AssertGolden(t, scenario.Name, result)
	return nil
}

// AssertGolden compares result's snapshot against a golden file.
func AssertGolden(t *testing.T, name string, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, Snapshot(name, result.Report))
}
