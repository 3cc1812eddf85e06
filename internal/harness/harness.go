package harness

import (
	"context"
	"errors"
	"fmt"

	"github.com/roach88/question2atomese/internal/converter"
	"github.com/roach88/question2atomese/internal/corpus"
	"github.com/roach88/question2atomese/internal/engine"
	"github.com/roach88/question2atomese/internal/testutil"
)

// Run executes a scenario with the default converter registry.
func Run(scenario *Scenario) (*Result, error) {
	return RunWithRegistry(scenario, converter.Default)
}

// RunWithRegistry executes a scenario against registry.
//
// The returned error covers setup problems only (unreadable corpus, bad
// form names). Failed expectations and engine errors are reported through
// Result.
func RunWithRegistry(scenario *Scenario, registry *converter.Registry) (*Result, error) {
	questions, err := loadQuestions(scenario)
	if err != nil {
		return nil, err
	}

	forms := converter.Forms
	if len(scenario.Forms) > 0 {
		forms = make([]converter.Form, 0, len(scenario.Forms))
		for _, name := range scenario.Forms {
			f, err := converter.ParseForm(name)
			if err != nil {
				return nil, err
			}
			forms = append(forms, f)
		}
	}

	eng := engine.New(registry,
		engine.WithForms(forms...),
		engine.WithStrict(scenario.Strict),
		engine.WithRunIDs(testutil.NewFixedRunID(scenario.RunID)),
	)

	report, runErr := eng.Run(context.Background(), questions)
	result := NewResult(report)
	result.RunErr = runErr

	checkRunError(scenario, runErr, result)
	for _, msg := range EvaluateExpectations(report.Results, scenario.Expect) {
		result.AddError(msg)
	}
	return result, nil
}

func loadQuestions(scenario *Scenario) ([]corpus.Question, error) {
	var questions []corpus.Question
	if scenario.Corpus != "" {
		loaded, err := corpus.Load(scenario.Corpus)
		if err != nil {
			return nil, fmt.Errorf("failed to load corpus: %w", err)
		}
		questions = append(questions, loaded...)
	}

	inline, err := corpus.BuildAll(scenario.Questions, func(i int, le *corpus.LoadError) {
		le.Message = fmt.Sprintf("questions[%d]: %s", i, le.Message)
	})
	if err != nil {
		return nil, fmt.Errorf("invalid inline questions: %w", err)
	}
	return append(questions, inline...), nil
}

func checkRunError(scenario *Scenario, runErr error, result *Result) {
	switch {
	case runErr == nil && scenario.ExpectError == "":
	case runErr == nil:
		result.AddError(fmt.Sprintf("expected run error %s, run succeeded", scenario.ExpectError))
	case scenario.ExpectError == "":
		result.AddError(fmt.Sprintf("run failed: %v", runErr))
	default:
		var engineErr *engine.Error
		if !errors.As(runErr, &engineErr) || string(engineErr.Code) != scenario.ExpectError {
			result.AddError(fmt.Sprintf("expected run error %s, got: %v", scenario.ExpectError, runErr))
		}
	}
}
