package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/question2atomese/internal/converter"
	"github.com/roach88/question2atomese/internal/corpus"
)

// Scenario defines a conformance test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// RunID fixes the run id for deterministic reports.
	RunID string `yaml:"run_id,omitempty"`

	// Forms lists the query forms to render. Empty means all.
	Forms []string `yaml:"forms,omitempty"`

	// Strict turns unfilled slots into a run error.
	Strict bool `yaml:"strict,omitempty"`

	// Corpus is a corpus file or directory, relative to the scenario file.
	Corpus string `yaml:"corpus,omitempty"`

	// Questions are inline corpus entries, processed after Corpus.
	Questions []corpus.Record `yaml:"questions,omitempty"`

	// Expect holds per-question expectations.
	Expect []Expectation `yaml:"expect"`

	// ExpectError, when set, requires the run to fail with an engine
	// error of this code (e.g. INCOMPLETE_FILLERS).
	ExpectError string `yaml:"expect_error,omitempty"`
}

// Expectation describes what a question's result must look like. Nil and
// empty fields are not checked.
type Expectation struct {
	// Question is the id of the question under test.
	Question string `yaml:"question"`

	Signature    string            `yaml:"signature,omitempty"`
	Grounded     string            `yaml:"grounded,omitempty"`
	Short        string            `yaml:"short,omitempty"`
	Converter    string            `yaml:"converter,omitempty"`
	QuestionType string            `yaml:"question_type,omitempty"`
	Matched      *bool             `yaml:"matched,omitempty"`
	Complete     *bool             `yaml:"complete,omitempty"`
	Fillers      map[string]string `yaml:"fillers,omitempty"`

	// Contains lists snippets every rendered query must include.
	Contains []string `yaml:"contains,omitempty"`
}

// LoadScenario reads and validates a scenario YAML file. Unknown fields are
// rejected and a relative corpus path is resolved against the file's
// directory.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Corpus != "" && !filepath.IsAbs(scenario.Corpus) {
		scenario.Corpus = filepath.Join(filepath.Dir(path), scenario.Corpus)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// LoadScenarios loads every .yaml file in dir, in lexical order.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenario files in %s", dir)
	}

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks required fields and cross references.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.Corpus == "" && len(s.Questions) == 0 {
		return fmt.Errorf("corpus or questions is required")
	}
	if len(s.Expect) == 0 {
		return fmt.Errorf("expect list is required and must be non-empty")
	}

	for i, f := range s.Forms {
		if _, err := converter.ParseForm(f); err != nil {
			return fmt.Errorf("forms[%d]: %w", i, err)
		}
	}

	if s.Corpus != "" {
		if _, err := os.Stat(s.Corpus); err != nil {
			return fmt.Errorf("corpus not found: %s", s.Corpus)
		}
	}

	for i, e := range s.Expect {
		if e.Question == "" {
			return fmt.Errorf("expect[%d]: question is required", i)
		}
	}
	return nil
}
