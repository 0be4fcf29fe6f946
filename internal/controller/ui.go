// Package controller provides the renderers that display demo results.
package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	m "demorun.dev/pkg/demorun/internal/model"
)

// ErrUnknownFormat is returned by NewUI for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// UI defines how demo results are displayed.
// Implementations write to the command's output stream.
type UI interface {
	DisplayTranscript(ctx context.Context, transcript m.Transcript) error
	DisplayCheckResult(ctx context.Context, runs int) error
	DisplayTranslation(ctx context.Context, translation m.Translation) error
}

// NewUI returns the UI for the given format. An empty format selects text.
func NewUI(cmd *cobra.Command, format m.Format) (UI, error) {
	switch format {
	case m.FormatText, "":
		return NewSimpleUI(cmd), nil
	case m.FormatTable:
		return NewTableUI(cmd), nil
	case m.FormatYAML:
		return NewYAMLUI(cmd), nil
	}

	return nil, fmt.Errorf("%w: %q (want %s, %s or %s)", ErrUnknownFormat, format, m.FormatText, m.FormatTable, m.FormatYAML)
}
