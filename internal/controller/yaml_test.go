package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "demorun.dev/pkg/demorun/internal/model"
)

func TestYAMLUI_DisplayTranscript(t *testing.T) {
	cmd, out := newTestCmd()
	ui := NewYAMLUI(cmd)

	err := ui.DisplayTranscript(context.Background(), sampleTranscript())
	require.NoError(t, err)

	var decoded []struct {
		Step   int    `yaml:"step"`
		Label  string `yaml:"label"`
		Values []any  `yaml:"values"`
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))

	require.Len(t, decoded, 3)
	assert.Equal(t, 1, decoded[0].Step)
	assert.Equal(t, "Initial values:", decoded[0].Label)
	assert.Equal(t, []any{10, "Hello", true, []any{1, 2, 3}}, decoded[0].Values)
	assert.Empty(t, decoded[1].Values)
	assert.Equal(t, []any{142}, decoded[2].Values)
}

func TestYAMLUI_OmitsEmptyValues(t *testing.T) {
	cmd, out := newTestCmd()
	ui := NewYAMLUI(cmd)

	err := ui.DisplayTranscript(context.Background(), sampleTranscript()[1:2])
	require.NoError(t, err)

	assert.Contains(t, out.String(), "- step: 2\n")
	assert.Contains(t, out.String(), "Checking positivity of new result:")
	assert.NotContains(t, out.String(), "values")
}

func TestYAMLUI_DisplayCheckResult(t *testing.T) {
	cmd, out := newTestCmd()
	ui := NewYAMLUI(cmd)

	err := ui.DisplayCheckResult(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "runs: 2\ndeterministic: true\n", out.String())
}

func TestYAMLUI_DisplayTranslation(t *testing.T) {
	cmd, out := newTestCmd()
	ui := NewYAMLUI(cmd)

	err := ui.DisplayTranslation(context.Background(), sampleTranslation())
	require.NoError(t, err)

	var decoded m.Translation
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, sampleTranslation(), decoded)
	assert.Contains(t, out.String(), "start_line: 5")
}
