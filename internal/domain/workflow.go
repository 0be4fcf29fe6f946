package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"demorun.dev/pkg/demorun/internal/controller"
	m "demorun.dev/pkg/demorun/internal/model"
)

// MinCheckRuns is the smallest number of runs a determinism check compares.
const MinCheckRuns = 2

// ErrNondeterministic is returned when two runs print different output.
var ErrNondeterministic = errors.New("demo output is not deterministic")

// CheckArgs holds the arguments for Workflow.Check.
type CheckArgs struct {
	Runs int
}

// TranslateArgs holds the arguments for Workflow.Translate.
type TranslateArgs struct {
	Path m.Path
}

// Workflow wires the Runner and the Translator to a UI.
type Workflow interface {
	Run(ctx context.Context) error
	Check(ctx context.Context, args CheckArgs) error
	Translate(ctx context.Context, args TranslateArgs) error
}

type workflow struct {
	runner     Runner
	translator Translator
	ui         controller.UI
}

// NewWorkflow constructs a Workflow that displays its results through ui.
func NewWorkflow(runner Runner, translator Translator, ui controller.UI) Workflow {
	return &workflow{
		runner:     runner,
		translator: translator,
		ui:         ui,
	}
}

// Run executes the demonstration once and displays its transcript.
func (w *workflow) Run(ctx context.Context) error {
	transcript, err := w.runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("demo run failed: %w", err)
	}

	slog.Debug("demo run completed", "lines", len(transcript))

	return w.ui.DisplayTranscript(ctx, transcript)
}

// Check executes the demonstration args.Runs times in parallel and verifies
// that every run renders to the same text as the first one.
func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	runs := max(args.Runs, MinCheckRuns)
	outputs := make([]string, runs)

	group, groupCtx := errgroup.WithContext(ctx)

	for i := range runs {
		group.Go(func() error {
			transcript, err := w.runner.Run(groupCtx)
			if err != nil {
				return fmt.Errorf("run %d failed: %w", i, err)
			}

			outputs[i] = transcript.Text()
			slog.Debug("check run completed", "run", i, "bytes", len(outputs[i]))

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	for i := 1; i < runs; i++ {
		if outputs[i] == outputs[0] {
			continue
		}

		diff, err := unifiedDiff(outputs[0], outputs[i], i)
		if err != nil {
			return err
		}

		slog.Warn("demo output differs between runs", "run", i)

		return fmt.Errorf("%w: run %d differs from run 0\n%s", ErrNondeterministic, i, diff)
	}

	slog.Debug("determinism check passed", "runs", runs)

	return w.ui.DisplayCheckResult(ctx, runs)
}

// Translate converts the Go file at args.Path and displays the TypeScript.
func (w *workflow) Translate(ctx context.Context, args TranslateArgs) error {
	translation, err := w.translator.Translate(ctx, args.Path)
	if err != nil {
		return err
	}

	return w.ui.DisplayTranslation(ctx, translation)
}

func unifiedDiff(want, got string, run int) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "run 0",
		ToFile:   fmt.Sprintf("run %d", run),
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("failed to diff run %d: %w", run, err)
	}

	return diff, nil
}
