package corpus

import (
	"errors"
	"fmt"

	"cuelang.org/go/cue/token"
)

// Error codes reported by the loaders.
const (
	ErrCodeReadFailed  = "E201" // file could not be read
	ErrCodeParseFailed = "E202" // YAML or CUE syntax error
	ErrCodeInvalidTerm = "E203" // malformed relation term
	ErrCodeMissingID   = "E204" // question without id
	ErrCodeDuplicateID = "E205" // id used twice in one corpus
	ErrCodeBadFormat   = "E206" // unsupported file extension
	ErrCodeNoFiles     = "E207" // directory holds no corpus files
	ErrCodeInvalidType = "E208" // field has the wrong type
)

// LoadError describes a corpus file that could not be turned into questions.
type LoadError struct {
	Code    string
	Message string

	// Path is the file being loaded.
	Path string

	// Pos is set for CUE files.
	Pos token.Pos
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrorCode returns the code of the first LoadError in err's chain, or ""
// when err carries none.
func ErrorCode(err error) string {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Code
	}
	return ""
}
