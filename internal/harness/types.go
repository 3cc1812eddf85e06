package harness

import "github.com/roach88/question2atomese/internal/engine"

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true when every expectation held.
	Pass bool

	// Errors contains one message per failed expectation.
	Errors []string

	// Report is the engine report, partial when the run stopped early.
	Report *engine.Report

	// RunErr is the error the engine run ended with, if any.
	RunErr error
}

// NewResult creates a passing result for report.
func NewResult(report *engine.Report) *Result {
	return &Result{Pass: true, Errors: []string{}, Report: report}
}

// AddError records a failure and marks the result as failed.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}
