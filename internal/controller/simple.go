package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "demorun.dev/pkg/demorun/internal/model"
)

// SimpleUI implements UI by printing plain lines to the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayTranscript prints every line as label followed by its values.
func (s *SimpleUI) DisplayTranscript(ctx context.Context, transcript m.Transcript) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, line := range transcript {
		if err := s.print(line.Text()); err != nil {
			return err
		}
	}

	return nil
}

// DisplayCheckResult prints the outcome of a passed determinism check.
func (s *SimpleUI) DisplayCheckResult(ctx context.Context, runs int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.print(fmt.Sprintf("deterministic: %d runs, byte-identical output\n", runs))
}

// DisplayTranslation prints the generated TypeScript unchanged.
func (s *SimpleUI) DisplayTranslation(ctx context.Context, translation m.Translation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.print(translation.TypeScript)
}

func (s *SimpleUI) print(text string) error {
	_, err := fmt.Fprint(s.cmd.OutOrStdout(), text)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
