package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const carScenario = `name: car_color
description: what color is the car
run_id: cli-run-0001
forms: [bc]
questions:
  - id: q1
    text: What color is the car?
    parse: "_det(color, what);_obj(be, car);_subj(be, color)"
expect:
  - question: q1
    converter: what-other-det-obj-subj
    fillers:
      attribute: color
      object: car
`

const wrongScenario = `name: wrong_converter
description: expects a converter that does not exist
questions:
  - id: q1
    relations: ["_amod(car, red)"]
expect:
  - question: q1
    matched: true
`

func writeScenario(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestTest_UpdateThenPass(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "car_color.yaml", carScenario)

	out, _, err := execute(t, "test", dir, "--update")
	require.NoError(t, err, out)

	golden, err := os.ReadFile(filepath.Join(dir, "golden", "car_color.golden"))
	require.NoError(t, err)
	assert.Contains(t, string(golden), "scenario: car_color\nrun: cli-run-0001\n")
	assert.Contains(t, string(golden), "### bc\n(conj-bc ")

	out, _, err = execute(t, "test", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "✓ car_color")
	assert.Contains(t, out, "Test Summary: 1 passed, 0 failed, 1 total")
	assert.Contains(t, out, "✓ All scenarios passed")
}

func TestTest_GoldenMismatch(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "car_color.yaml", carScenario)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "golden"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "golden", "car_color.golden"), []byte("stale\n"), 0o644))

	out, _, err := execute(t, "test", dir)
	require.Error(t, err)

	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ car_color")
	assert.Contains(t, out, "does not match golden file")
}

func TestTest_FailedExpectationJSON(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "car_color.yaml", carScenario)
	writeScenario(t, dir, "wrong.yaml", wrongScenario)

	out, _, err := execute(t, "test", dir, "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status string     `json:"status"`
		Data   TestResult `json:"data"`
		Error  CLIError   `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, ErrCodeTestFailed, resp.Error.Code)
	assert.Equal(t, 2, resp.Data.Total)
	assert.Equal(t, 1, resp.Data.Passed)
	assert.Equal(t, 1, resp.Data.Failed)
	require.Len(t, resp.Data.Scenarios, 2)
	assert.Equal(t, "wrong_converter", resp.Data.Scenarios[1].Name)
	assert.Contains(t, resp.Data.Scenarios[1].Errors[0], "q1.matched")
}

func TestTest_Filter(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "car_color.yaml", carScenario)
	writeScenario(t, dir, "wrong.yaml", wrongScenario)

	out, _, err := execute(t, "test", dir, "--filter", "car_*")
	require.NoError(t, err, out)
	assert.Contains(t, out, "1 total")
}

func TestTest_InvalidScenario(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "broken.yaml", "name: broken\n")

	out, _, err := execute(t, "test", dir)
	require.Error(t, err)
	assert.Contains(t, out, "✗ broken.yaml")
	assert.Contains(t, out, "failed to load scenario")
}

func TestTest_EmptyDir(t *testing.T) {
	out, _, err := execute(t, "test", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No scenarios found.")
}

func TestTest_MissingDir(t *testing.T) {
	out, _, err := execute(t, "test", filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)

	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E005]")
}

func TestTest_RequiresDir(t *testing.T) {
	_, _, err := execute(t, "test")
	require.Error(t, err)
}
