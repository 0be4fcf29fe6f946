package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "demorun.dev/pkg/demorun/internal/model"
)

// YAMLUI implements UI by marshalling results as YAML documents.
type YAMLUI struct {
	cmd *cobra.Command
}

// NewYAMLUI creates a new YAMLUI.
func NewYAMLUI(cmd *cobra.Command) *YAMLUI {
	return &YAMLUI{cmd: cmd}
}

type checkResult struct {
	Runs          int  `yaml:"runs"`
	Deterministic bool `yaml:"deterministic"`
}

// DisplayTranscript writes the transcript as a YAML sequence.
func (y *YAMLUI) DisplayTranscript(ctx context.Context, transcript m.Transcript) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return y.encode(transcript)
}

// DisplayCheckResult writes the outcome of a passed determinism check.
func (y *YAMLUI) DisplayCheckResult(ctx context.Context, runs int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return y.encode(checkResult{Runs: runs, Deterministic: true})
}

// DisplayTranslation writes the source, its hash, scopes and TypeScript.
func (y *YAMLUI) DisplayTranslation(ctx context.Context, translation m.Translation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return y.encode(translation)
}

func (y *YAMLUI) encode(v any) error {
	encoder := yaml.NewEncoder(y.cmd.OutOrStdout())
	encoder.SetIndent(2)

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}

	return encoder.Close()
}
