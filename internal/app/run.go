package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/seedgen/internal/ctxlog"
	"github.com/vk/seedgen/internal/fsutil"
	"github.com/vk/seedgen/internal/seed"
)

// Run renders the generator's artifacts and writes them in order. A wrong
// number of values prints the usage hint and writes nothing; it is not an
// error.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	args, err := a.values(ctx)
	if err != nil {
		return err
	}

	artifacts, err := a.generator.Render(args)
	if err != nil {
		var countErr *seed.ArgCountError
		if errors.As(err, &countErr) {
			a.logger.Debug("Wrong argument count, printing usage.", "want", countErr.Want, "got", countErr.Got)
			fmt.Fprintln(a.outW, a.generator.Usage())
			return nil
		}
		return fmt.Errorf("failed to render: %w", err)
	}

	for _, artifact := range artifacts {
		path, err := fsutil.WriteFile(a.config.OutputDir, artifact.Name, artifact.Content)
		if err != nil {
			return err
		}
		a.logger.Info("Artifact written.", "path", path, "bytes", len(artifact.Content))
		if artifact.Announce {
			fmt.Fprintln(a.outW, seed.SuccessMessage)
		}
	}

	a.logger.Debug("App.Run method finished.", "artifacts", len(artifacts))
	return nil
}

// values returns the positional values, loading them from the seed file when
// one is configured.
func (a *App) values(ctx context.Context) ([]string, error) {
	if a.config.SeedFile == "" {
		return a.config.Args, nil
	}

	a.logger.Debug("Loading seed file.", "path", a.config.SeedFile)
	model, err := a.loader.Load(ctx, a.config.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed file: %w", err)
	}
	args, err := model.Args(a.generator.Params)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed file: %w", err)
	}
	return args, nil
}
