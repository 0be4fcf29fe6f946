// Package domain implements the demonstration run and the checks built on it.
package domain

import (
	"context"
	"log/slog"

	m "demorun.dev/pkg/demorun/internal/model"
)

// Runner executes the fixed demonstration sequence once and returns the
// lines it emitted, in order.
type Runner interface {
	Run(ctx context.Context) (m.Transcript, error)
}

type runner struct{}

// NewRunner constructs the demonstration Runner.
func NewRunner() Runner {
	return &runner{}
}

func (r *runner) Run(ctx context.Context) (m.Transcript, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := &recorder{}

	var (
		a    = 10
		str  = "Hello"
		flag = true
		b    = 42
	)

	var (
		g = "Grouped"
		h = true
		c = 100
	)

	j := []int{1, 2, 3, 4, 5}

	out.emit("Initial values:", a, str, b, g, h, c, j)

	result := Add(a, b)
	out.emit("Result of add(a, b):", result)

	if !flag {
		out.emit("Flag is false, unexpected.")
	} else {
		out.emit("Flag is true, as expected:", flag)
	}

	if CheckPositive(result) {
		out.emit("Result is positive. Setting result to 10.")
		result = 10
	} else {
		out.emit("Result is not positive. Setting result to 20.")
		result = 20
	}

	out.emit("Final value of result:", result)
	out.emit("Values of multiple variables:", str, b, g, h, j)

	result = Add(c, b)
	out.emit("Result of add(c, b):", result)
	out.emit("Checking positivity of new result:")

	if CheckPositive(result) {
		out.emit("New result is positive.")
	} else {
		out.emit("New result is not positive.")
	}

	return out.lines, nil
}

// recorder collects emitted lines and numbers them from 1.
type recorder struct {
	lines m.Transcript
}

func (r *recorder) emit(label string, values ...any) {
	line := m.Line{
		Step:   len(r.lines) + 1,
		Label:  label,
		Values: values,
	}
	r.lines = append(r.lines, line)

	slog.Debug("emitted line", "step", line.Step, "label", label, "values", len(values))
}
