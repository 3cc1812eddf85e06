package corpus

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlFile struct {
	Questions []Record `yaml:"questions"`
}

// ParseYAML decodes a YAML corpus. Unknown fields are rejected so typos in
// hand-written fixtures surface as errors instead of silently empty
// relations.
func ParseYAML(path string, data []byte) ([]Question, error) {
	var file yamlFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, &LoadError{
			Code:    ErrCodeParseFailed,
			Message: fmt.Sprintf("parsing YAML: %v", err),
			Path:    path,
		}
	}

	return BuildAll(file.Questions, func(i int, le *LoadError) {
		le.Path = path
		le.Message = fmt.Sprintf("questions[%d]: %s", i, le.Message)
	})
}
