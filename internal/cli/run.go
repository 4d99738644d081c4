package cli

import (
	"context"
	"io"

	"github.com/vk/seedgen/internal/app"
	"github.com/vk/seedgen/internal/hcl"
	"github.com/vk/seedgen/internal/seed"
)

// Run parses args for gen and, unless parsing asked for a clean exit, runs
// the generator. User-facing messages go to outW and logs to logW.
func Run(ctx context.Context, gen *seed.Generator, outW, logW io.Writer, args []string) error {
	appConfig, shouldExit, err := Parse(gen, args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	a := app.NewApp(outW, logW, appConfig, gen, hcl.NewLoader())
	return a.Run(ctx)
}
