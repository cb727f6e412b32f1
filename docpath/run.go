package docpath

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/beevik/etree"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"selc/state"
)

// Run implements the "path" subcommand: derive a selector for the element at
// an etree path inside an XML document.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("path")

	file := cmd.Args().Get(0)
	if len(file) == 0 {
		return errors.New("no input document has been specified")
	}
	path := cmd.Args().Get(1)
	if len(path) == 0 {
		return errors.New("no element path has been specified")
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	log.Info("Deriving selector", zap.String("document", file), zap.String("path", path))
	defer func(start time.Time) {
		log.Debug("Derivation completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(file); err != nil {
		return fmt.Errorf("unable to read document '%s': %w", file, err)
	}
	if env.Rpt != nil {
		env.Rpt.StoreCopy("documents/"+file, file) //nolint:errcheck
	}

	d := NewDeriver(env.Cfg.Path.UseIDs, env.Cfg.Path.UseClasses, log)
	s, err := d.Resolve(doc, path)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, s)
	return nil
}
