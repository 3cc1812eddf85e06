package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/question2atomese/internal/corpus"
)

// InputOptions selects the questions a command works on: corpus files or
// directories given as arguments, and/or one inline parse.
type InputOptions struct {
	Parse string // inline relations, "_det(color, what);_obj(be, car)"
	Text  string // question text for the inline parse
}

// inlineQuestionID names the question built from --parse.
const inlineQuestionID = "inline"

func (o *InputOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Parse, "parse", "p", "", `inline relations, e.g. "_det(color, what);_obj(be, car);_subj(be, color)"`)
	cmd.Flags().StringVar(&o.Text, "text", "", "question text for --parse")
}

// loadInputs loads every path in order, then the inline parse.
func loadInputs(paths []string, in InputOptions) ([]corpus.Question, error) {
	if len(paths) == 0 && in.Parse == "" {
		return nil, &corpus.LoadError{Code: ErrCodeInvalidInput, Message: "no input: pass corpus paths or --parse"}
	}

	var questions []corpus.Question
	for _, p := range paths {
		loaded, err := corpus.Load(p)
		if err != nil {
			return nil, err
		}
		questions = append(questions, loaded...)
	}

	if in.Parse != "" {
		q, err := corpus.Record{ID: inlineQuestionID, Text: in.Text, Parse: in.Parse}.Build()
		if err != nil {
			return nil, fmt.Errorf("--parse: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// failInput reports a loading error. Missing files and bad input are
// command errors (exit 2).
func failInput(f *OutputFormatter, err error) error {
	code := ErrCodeGeneric
	var le *corpus.LoadError
	if errors.As(err, &le) {
		code = le.Code
		if code == corpus.ErrCodeReadFailed {
			code = ErrCodeNotFound
		}
	}
	if fErr := f.Error(code, err.Error(), nil); fErr != nil {
		return fErr
	}
	return WrapExitError(ExitCommandError, "failed to load questions", err)
}
