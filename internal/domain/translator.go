package domain

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"log/slog"

	"demorun.dev/pkg/demorun/internal/adapter"
	m "demorun.dev/pkg/demorun/internal/model"
)

var (
	// ErrUnsupported is returned for Go constructs that have no TypeScript translation.
	ErrUnsupported = errors.New("unsupported Go construct")
	// ErrNotAFile is returned when the translation source is a directory.
	ErrNotAFile = errors.New("not a regular file")
)

// Translator converts a Go source file into TypeScript.
//
// It covers functions with typed parameters and a single result, var/const
// declarations (including grouped blocks), short declarations, slice
// literals, if/else chains, calls, and fmt.Println which becomes
// console.log. Anything else fails with ErrUnsupported and the position.
type Translator interface {
	Translate(ctx context.Context, path m.Path) (m.Translation, error)
	TranslateSource(ctx context.Context, filename string, src []byte) (string, error)
}

type translator struct {
	fsAdapter     adapter.SourceFSAdapter
	goFileAdapter adapter.GoFileAdapter
}

// NewTranslator constructs a Translator that reads files through fsAdapter
// and parses them with goFileAdapter.
func NewTranslator(fsAdapter adapter.SourceFSAdapter, goFileAdapter adapter.GoFileAdapter) Translator {
	return &translator{
		fsAdapter:     fsAdapter,
		goFileAdapter: goFileAdapter,
	}
}

func (t *translator) Translate(ctx context.Context, path m.Path) (m.Translation, error) {
	info, err := t.fsAdapter.FileInfo(path)
	if err != nil {
		return m.Translation{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if info.IsDir() {
		return m.Translation{}, fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	src, err := t.fsAdapter.ReadFile(path)
	if err != nil {
		return m.Translation{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	hash, err := t.fsAdapter.HashFile(path)
	if err != nil {
		return m.Translation{}, fmt.Errorf("failed to hash %s: %w", path, err)
	}

	fset := token.NewFileSet()

	file, err := t.goFileAdapter.Parse(ctx, fset, string(path), src)
	if err != nil {
		return m.Translation{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	typeScript, err := emitFile(fset, file)
	if err != nil {
		return m.Translation{}, err
	}

	scopes := t.goFileAdapter.ExtractScopes(fset, file)
	slog.Debug("translated source", "path", path, "scopes", len(scopes), "bytes", len(typeScript))

	return m.Translation{
		Source:     path,
		Hash:       hash,
		Scopes:     scopes,
		TypeScript: typeScript,
	}, nil
}

func (t *translator) TranslateSource(ctx context.Context, filename string, src []byte) (string, error) {
	fset := token.NewFileSet()

	file, err := t.goFileAdapter.Parse(ctx, fset, filename, src)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	return emitFile(fset, file)
}
