package corpus

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Parser decodes the contents of one corpus file.
type Parser func(path string, data []byte) ([]Question, error)

// parsers maps file extensions to their decoder.
var parsers = map[string]Parser{
	".yaml": ParseYAML,
	".yml":  ParseYAML,
	".cue":  ParseCUE,
}

// IsCorpusFile reports whether path has an extension a loader understands.
func IsCorpusFile(path string) bool {
	_, ok := parsers[strings.ToLower(filepath.Ext(path))]
	return ok
}

// LoadFile reads one corpus file, choosing the decoder by extension.
func LoadFile(path string) ([]Question, error) {
	parse, ok := parsers[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, &LoadError{
			Code:    ErrCodeBadFormat,
			Message: fmt.Sprintf("unsupported corpus format %q (want .yaml, .yml or .cue)", filepath.Ext(path)),
			Path:    path,
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadFailed, Message: err.Error(), Path: path}
	}

	questions, err := parse(path, data)
	if err != nil {
		return nil, err
	}
	slog.Debug("corpus file loaded", "path", path, "questions", len(questions))
	return questions, nil
}

// LoadDir loads every corpus file under dir in lexical path order.
// Question ids must be unique across the whole directory.
func LoadDir(dir string) ([]Question, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsCorpusFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadFailed, Message: fmt.Sprintf("scanning directory: %v", err), Path: dir}
	}
	if len(files) == 0 {
		return nil, &LoadError{Code: ErrCodeNoFiles, Message: "no .yaml, .yml or .cue files found", Path: dir}
	}

	var all []Question
	owner := make(map[string]string)
	for _, path := range files {
		questions, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		for _, q := range questions {
			if prev, ok := owner[q.ID]; ok {
				return nil, &LoadError{
					Code:    ErrCodeDuplicateID,
					Message: fmt.Sprintf("question id %q already defined in %s", q.ID, prev),
					Path:    path,
				}
			}
			owner[q.ID] = path
		}
		all = append(all, questions...)
	}
	return all, nil
}

// Load reads a file or a directory.
func Load(path string) ([]Question, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadFailed, Message: err.Error(), Path: path}
	}
	if info.IsDir() {
		return LoadDir(path)
	}
	return LoadFile(path)
}
