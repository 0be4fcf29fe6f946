package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "demorun.dev/pkg/demorun/internal/model"
)

// TableUI implements UI by rendering results as a table.
type TableUI struct {
	cmd *cobra.Command
}

// NewTableUI creates a new TableUI.
func NewTableUI(cmd *cobra.Command) *TableUI {
	return &TableUI{cmd: cmd}
}

// DisplayTranscript renders one row per emitted line.
func (t *TableUI) DisplayTranscript(ctx context.Context, transcript m.Transcript) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := make([][]string, 0, len(transcript))
	for _, line := range transcript {
		rows = append(rows, []string{strconv.Itoa(line.Step), line.Label, formatValues(line.Values)})
	}

	return t.write(renderTable(
		[]string{"Step", "Label", "Values"},
		[]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT},
		rows,
	))
}

// DisplayCheckResult renders the outcome of a passed determinism check.
func (t *TableUI) DisplayCheckResult(ctx context.Context, runs int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.write(renderTable(
		[]string{"Runs", "Result"},
		[]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT},
		[][]string{{strconv.Itoa(runs), "byte-identical"}},
	))
}

// DisplayTranslation renders the declarations found in the source, followed by
// the generated TypeScript.
func (t *TableUI) DisplayTranslation(ctx context.Context, translation m.Translation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := make([][]string, 0, len(translation.Scopes))
	for _, scope := range translation.Scopes {
		rows = append(rows, []string{
			string(scope.Type),
			scope.Name,
			fmt.Sprintf("%d-%d", scope.StartLine, scope.EndLine),
		})
	}

	table := renderTable(
		[]string{"Scope", "Name", "Lines"},
		[]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT},
		rows,
	)

	return t.write(table + "\n" + translation.TypeScript)
}

func (t *TableUI) write(text string) error {
	_, err := fmt.Fprint(t.cmd.OutOrStdout(), text)
	if err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	return nil
}

// renderTable renders rows with fixed column alignment. Without it
// tablewriter right-aligns cells that look numeric.
func renderTable(header []string, alignment []int, rows [][]string) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment(alignment)
	table.AppendBulk(rows)
	table.Render()

	return tableBuffer.String()
}

// formatValues joins values with single spaces, as fmt.Println separates them.
func formatValues(values []any) string {
	return strings.TrimSuffix(fmt.Sprintln(values...), "\n")
}
