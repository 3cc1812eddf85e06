package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode categorizes engine errors.
type ErrorCode string

const (
	// ErrCodeNoMatch indicates no converter handles the question's signature.
	// The engine itself never returns it; callers that treat a miss as
	// failure build it with NewNoMatchError.
	ErrCodeNoMatch ErrorCode = "NO_MATCH"

	// ErrCodeIncompleteFillers indicates the matched converter could not
	// fill every slot from the relation graph.
	ErrCodeIncompleteFillers ErrorCode = "INCOMPLETE_FILLERS"
)

// Error is a question-level failure with enough context to find the
// offending corpus entry.
type Error struct {
	Code    ErrorCode
	Message string

	// QuestionID identifies the corpus entry.
	QuestionID string

	// Signature is the canonical formula of the question.
	Signature string

	// Converter is set when a converter matched.
	Converter string
}

func (e *Error) Error() string {
	if e.QuestionID != "" {
		return fmt.Sprintf("%s: %s (question=%s, signature=%s)", e.Code, e.Message, e.QuestionID, e.Signature)
	}
	return fmt.Sprintf("%s: %s (signature=%s)", e.Code, e.Message, e.Signature)
}

// IsNoMatch reports whether err is a no-match error.
func IsNoMatch(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeNoMatch
}

// IsIncomplete reports whether err is an incomplete-fillers error.
func IsIncomplete(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeIncompleteFillers
}

// NewNoMatchError reports that no converter handles r.
func NewNoMatchError(r *Result) *Error {
	return &Error{
		Code:       ErrCodeNoMatch,
		Message:    "no converter found",
		QuestionID: r.QuestionID,
		Signature:  r.Signature,
	}
}

// NewIncompleteError reports the slots r left unfilled.
func NewIncompleteError(r *Result) *Error {
	return &Error{
		Code:       ErrCodeIncompleteFillers,
		Message:    "unfilled slots: " + strings.Join(r.Missing, ", "),
		QuestionID: r.QuestionID,
		Signature:  r.Signature,
		Converter:  r.Converter,
	}
}
