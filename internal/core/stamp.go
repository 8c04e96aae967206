// Package core implements the stamping operation: query revision
// state, expand the template, write the output file.
package core

import (
	"context"
	"fmt"
	"os"

	"github.com/kilupskalvis/gitstamp/internal/config"
	"github.com/kilupskalvis/gitstamp/internal/git"
	"github.com/kilupskalvis/gitstamp/internal/models"
)

// Placeholder names recognized in templates.
const (
	PlaceholderSHA   = "sha"
	PlaceholderDirty = "is_dirty"
)

// Stamp reads the template at templatePath, substitutes the
// repository's revision state into it and writes the result to
// outputPath, overwriting any existing content. The output file is
// written last, so a failed run never leaves a file behind.
func Stamp(ctx context.Context, cfg *config.Config, client git.ClientInterface, templatePath, outputPath string) (models.RevisionState, error) {
	var state models.RevisionState

	sha, err := client.Head(ctx)
	if err != nil {
		return state, err
	}

	dirty, err := client.IsDirty(ctx)
	if err != nil {
		return state, err
	}

	state = models.RevisionState{SHA: sha, Dirty: dirty}

	raw, err := os.ReadFile(templatePath)
	if err != nil {
		return state, fmt.Errorf("failed to read template: %w", err)
	}

	expanded, err := ExpandTemplate(string(raw), map[string]string{
		PlaceholderSHA:   state.SHA,
		PlaceholderDirty: state.DirtyString(),
	})
	if err != nil {
		return state, fmt.Errorf("template %s: %w", templatePath, err)
	}

	if err := os.WriteFile(outputPath, []byte(expanded), cfg.OutputFileMode()); err != nil {
		return state, fmt.Errorf("failed to write output: %w", err)
	}

	return state, nil
}
