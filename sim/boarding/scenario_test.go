package boarding

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenarioFile(t, `
rows: 10
passengers: 40
policy: back-to-front
late_percent: 15
late_immediate: true
seed: 123
max_ticks: 5000
`)
	sc, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, 10, sc.Rows)
	assert.Equal(t, 40, sc.Passengers)
	assert.Equal(t, "back-to-front", sc.Policy)
	assert.Equal(t, 15.0, sc.LatePercent)
	assert.True(t, sc.LateImmediate)
	assert.Equal(t, int64(123), sc.Seed)
	assert.Equal(t, int64(5000), sc.MaxTicks)
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadScenarioMalformedYAML(t *testing.T) {
	path := writeScenarioFile(t, "rows: [not a number")
	_, err := LoadScenario(path)
	assert.Error(t, err)
}

func TestLoadScenarioRejectsInvalidValues(t *testing.T) {
	path := writeScenarioFile(t, "rows: 2\npolicy: no-such-policy\n")
	_, err := LoadScenario(path)
	assert.Error(t, err)
}

func TestScenarioValidate(t *testing.T) {
	valid := Scenario{Rows: 5, Policy: "random"}
	assert.NoError(t, valid.Validate())

	cases := []Scenario{
		{Rows: 0, Policy: "random"},
		{Rows: 5, Passengers: -1, Policy: "random"},
		{Rows: 5, Passengers: 31, Policy: "random"},
		{Rows: 5, Policy: "sideways"},
		{Rows: 5, Policy: "random", LatePercent: -1},
		{Rows: 5, Policy: "random", LatePercent: 101},
		{Rows: 5, Policy: "random", MaxTicks: -1},
	}
	for _, sc := range cases {
		assert.Error(t, sc.Validate(), "%+v", sc)
	}
}

func TestScenarioPassengerCountDefaultsToFullPlane(t *testing.T) {
	sc := Scenario{Rows: 7, Policy: "random"}
	assert.Equal(t, 42, sc.PassengerCount())

	sc.Passengers = 13
	assert.Equal(t, 13, sc.PassengerCount())
}
