// Package model defines the data structures produced by a demo run.
package model

import (
	"fmt"
	"strings"
)

// Line is a single emitted line of a demo run.
type Line struct {
	Step   int    `yaml:"step"`
	Label  string `yaml:"label"`
	Values []any  `yaml:"values,omitempty"`
}

// Text formats the line the way fmt.Println would print its label and values.
func (l Line) Text() string {
	args := make([]any, 0, len(l.Values)+1)
	args = append(args, l.Label)
	args = append(args, l.Values...)

	return fmt.Sprintln(args...)
}

// Transcript is the ordered list of lines emitted by one run.
type Transcript []Line

// Text concatenates the text of every line.
func (t Transcript) Text() string {
	var out strings.Builder
	for _, line := range t {
		out.WriteString(line.Text())
	}

	return out.String()
}

// Format names an output renderer.
type Format string

const (
	// FormatText prints each line as plain console output.
	FormatText Format = "text"
	// FormatTable renders the transcript as a table.
	FormatTable Format = "table"
	// FormatYAML marshals the transcript as YAML.
	FormatYAML Format = "yaml"
)
