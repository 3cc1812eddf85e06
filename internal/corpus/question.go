package corpus

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/question2atomese/internal/relex"
)

// Question is one corpus entry with its relation graph.
type Question struct {
	ID      string
	ImageID string
	Text    string

	// Sentence is the relation graph built from the entry's relations.
	Sentence *relex.Sentence
}

// Record is the file shape of one question, shared by the YAML and CUE
// loaders and by inline scenario fixtures.
type Record struct {
	ID        string   `yaml:"id"`
	ImageID   string   `yaml:"image_id,omitempty"`
	Text      string   `yaml:"text"`
	Relations []string `yaml:"relations,omitempty"`

	// Parse holds all relations as one ";" separated string, the form a
	// parser log line uses. Relations and Parse may both be given.
	Parse string `yaml:"parse,omitempty"`
}

// Build turns r into a Question. Errors are *LoadError values without a
// file position; loaders add it.
func (r Record) Build() (Question, error) {
	if strings.TrimSpace(r.ID) == "" {
		return Question{}, &LoadError{Code: ErrCodeMissingID, Message: "question has no id"}
	}

	s := relex.NewSentence(r.Text)
	for i, raw := range r.Relations {
		term, err := relex.ParseTerm(raw)
		if err != nil {
			return Question{}, &LoadError{
				Code:    ErrCodeInvalidTerm,
				Message: fmt.Sprintf("question %s: relation %d: %v", r.ID, i, err),
			}
		}
		if err := s.AddTerm(term); err != nil {
			return Question{}, &LoadError{
				Code:    ErrCodeInvalidTerm,
				Message: fmt.Sprintf("question %s: relation %d: %v", r.ID, i, err),
			}
		}
	}

	terms, err := relex.ParseTerms(r.Parse)
	if err != nil {
		return Question{}, &LoadError{
			Code:    ErrCodeInvalidTerm,
			Message: fmt.Sprintf("question %s: parse: %v", r.ID, err),
		}
	}
	for _, term := range terms {
		if err := s.AddTerm(term); err != nil {
			return Question{}, &LoadError{
				Code:    ErrCodeInvalidTerm,
				Message: fmt.Sprintf("question %s: parse: %v", r.ID, err),
			}
		}
	}

	return Question{
		ID:       r.ID,
		ImageID:  r.ImageID,
		Text:     r.Text,
		Sentence: s,
	}, nil
}

// BuildAll converts records and rejects duplicate ids. at, when non-nil,
// lets the caller attach the location of record i to an error.
func BuildAll(records []Record, at func(i int, le *LoadError)) ([]Question, error) {
	questions := make([]Question, 0, len(records))
	seen := make(map[string]int, len(records))

	for i, r := range records {
		q, err := r.Build()
		if err != nil {
			var le *LoadError
			if errors.As(err, &le) && at != nil {
				at(i, le)
			}
			return nil, err
		}
		if first, ok := seen[q.ID]; ok {
			le := &LoadError{
				Code:    ErrCodeDuplicateID,
				Message: fmt.Sprintf("question id %q used by entries %d and %d", q.ID, first, i),
			}
			if at != nil {
				at(i, le)
			}
			return nil, le
		}
		seen[q.ID] = i
		questions = append(questions, q)
	}
	return questions, nil
}
