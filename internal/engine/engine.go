package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/question2atomese/internal/converter"
	"github.com/roach88/question2atomese/internal/corpus"
	"github.com/roach88/question2atomese/internal/formula"
	"github.com/roach88/question2atomese/internal/relex"
)

// Engine converts questions into queries using a converter Registry.
//
// Thread-safety: Process and Run may be called concurrently; the engine's
// configuration is fixed after New and the clock is atomic.
type Engine struct {
	registry *converter.Registry
	forms    []converter.Form
	strict   bool
	runIDs   RunIDGenerator
	clock    *Clock
}

// Option configures an Engine.
type Option func(*Engine)

// WithForms selects the query forms to render, in order. The default is
// every form in converter.Forms.
func WithForms(forms ...converter.Form) Option {
	return func(e *Engine) {
		e.forms = append([]converter.Form(nil), forms...)
	}
}

// WithStrict makes unfilled slots an error instead of a warning.
func WithStrict(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}

// WithRunIDs replaces the UUIDv7 run id generator.
func WithRunIDs(gen RunIDGenerator) Option {
	return func(e *Engine) {
		e.runIDs = gen
	}
}

// New creates an Engine. A nil registry selects converter.Default.
func New(registry *converter.Registry, opts ...Option) *Engine {
	if registry == nil {
		registry = converter.Default
	}
	e := &Engine{
		registry: registry,
		forms:    converter.Forms,
		runIDs:   UUIDv7Generator{},
		clock:    NewClock(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result is the outcome for one question.
type Result struct {
	// Seq orders results across the engine's lifetime.
	Seq int64

	QuestionID string
	ImageID    string
	Text       string

	Signature string
	Grounded  string
	Short     string

	Matched      bool
	Converter    string
	QuestionType string

	Fillers converter.Fillers
	Missing []string
	Queries []converter.Query
}

// Incomplete reports whether a matched converter left slots unfilled.
func (r *Result) Incomplete() bool {
	return r.Matched && len(r.Missing) > 0
}

// Query returns the rendered query of form, if it was rendered.
func (r *Result) Query(form converter.Form) (converter.Query, bool) {
	for _, q := range r.Queries {
		if q.Form == form {
			return q, true
		}
	}
	return converter.Query{}, false
}

// Convert processes a bare relation graph.
func (e *Engine) Convert(s *relex.Sentence) (*Result, error) {
	return e.Process(corpus.Question{Sentence: s})
}

// Process runs one question through the pipeline.
//
// A question without a matching converter yields a Result with Matched
// false and no error. In strict mode a Result with unfilled slots is
// returned together with an INCOMPLETE_FILLERS *Error.
func (e *Engine) Process(q corpus.Question) (*Result, error) {
	s := q.Sentence
	if s == nil {
		s = relex.NewSentence(q.Text)
	}
	f := formula.Build(s)

	result := &Result{
		Seq:        e.clock.Next(),
		QuestionID: q.ID,
		ImageID:    q.ImageID,
		Text:       q.Text,
		Signature:  f.FullFormula(),
		Grounded:   f.GroundedFormula(),
		Short:      f.ShortFormula(),
	}

	c, ok := e.registry.Match(f)
	if !ok {
		slog.Debug("no converter", "question_id", q.ID, "signature", result.Signature)
		return result, nil
	}
	slog.Debug("converter matched", "question_id", q.ID, "signature", result.Signature, "converter", c.Name)
	result.Matched = true
	result.Converter = c.Name
	result.QuestionType = c.QuestionType
	result.Fillers = c.Fillers(f)
	result.Missing = result.Fillers.Missing(c.Slots)

	for _, form := range e.forms {
		text, err := c.Render(form, result.Fillers)
		if err != nil {
			return nil, fmt.Errorf("question %s: %w", q.ID, err)
		}
		result.Queries = append(result.Queries, converter.Query{
			Form:    form,
			Text:    text,
			Fillers: result.Fillers,
			Missing: result.Missing,
		})
	}

	if result.Incomplete() {
		slog.Warn("unfilled slots rendered as marker",
			"question_id", q.ID,
			"converter", c.Name,
			"signature", result.Signature,
			"missing", result.Missing,
			"marker", converter.UnfilledMarker)
		if e.strict {
			return result, NewIncompleteError(result)
		}
	}
	return result, nil
}

// Report collects the results of one batch run.
type Report struct {
	RunID   string
	Results []*Result
	Stats   *Stats
}

// Run processes questions in order.
//
// Run stops at the first error (cancelled context, strict-mode incomplete
// question) and returns the partial report alongside it.
func (e *Engine) Run(ctx context.Context, questions []corpus.Question) (*Report, error) {
	report := &Report{
		RunID:   e.runIDs.Generate(),
		Results: make([]*Result, 0, len(questions)),
		Stats:   NewStats(),
	}
	slog.Info("run starting", "run_id", report.RunID, "questions", len(questions))

	for _, q := range questions {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		result, err := e.Process(q)
		if result != nil {
			report.Results = append(report.Results, result)
			report.Stats.Add(result)
		}
		if err != nil {
			slog.Error("run aborted", "run_id", report.RunID, "question_id", q.ID, "error", err)
			return report, err
		}
	}

	slog.Info("run finished",
		"run_id", report.RunID,
		"total", report.Stats.Total,
		"matched", report.Stats.Matched,
		"incomplete", report.Stats.Incomplete)
	return report, nil
}
