// Package build implements the "build" subcommand: it compiles selector
// recipe files and renders the results in the configured output format.
package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"selc/config"
	"selc/recipe"
	"selc/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no recipe source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) > 0 {
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Format = env.Cfg.Build.Format
	if to := cmd.String("to"); len(to) > 0 {
		format, err := config.ParseOutputFmt(to)
		if err != nil {
			log.Warn("Unknown output format requested, using configured one", zap.Error(err))
		} else {
			env.Format = format
		}
	}
	env.Overwrite = env.Cfg.Build.Overwrite || cmd.Bool("overwrite")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", env.Format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, log)
}

// process determines the input type (directory or single recipe file) and
// compiles accordingly.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("recipe source was not found (%s): %w", src, err)
	}
	if fi.Mode().IsDir() {
		return processDir(ctx, src, dst, log)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}
	return processBook(ctx, src, filepath.Base(src), dst, log)
}

// processDir walks directory tree finding recipe files and compiles them.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
		default:
			log.Debug("Skipping file, not recognized as recipe book", zap.String("file", path))
			return nil
		}

		count++

		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := processBook(ctx, path, src, dst, log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
	return err
}

// processBook compiles a single recipe file. "src" is the source path
// relative to the original argument (always including file name), "dst" is
// the destination directory; empty destination sends results to stdout.
func processBook(ctx context.Context, path, src, dst string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	log.Info("Compilation starting", zap.String("from", src))

	book, err := recipe.LoadBook(path)
	if err != nil {
		return err
	}
	if env.Rpt != nil {
		env.Rpt.StoreCopy(fmt.Sprintf("recipes/%s", filepath.Base(path)), path) //nolint:errcheck
	}

	built, err := recipe.NewCompiler(log).CompileAll(book)
	for _, e := range multierr.Errors(err) {
		log.Error("Recipe failed", zap.String("file", src), zap.Error(e))
	}
	if len(built) == 0 {
		if err != nil {
			return fmt.Errorf("no recipe in '%s' could be compiled: %w", src, err)
		}
		log.Warn("Recipe book is empty", zap.String("file", src))
		return nil
	}

	data, er := render(built, env.Format)
	if er != nil {
		return er
	}

	if len(dst) == 0 {
		if _, er := os.Stdout.Write(data); er != nil {
			return fmt.Errorf("unable to write results: %w", er)
		}
		return err
	}

	outputName := buildOutputPath(src, dst, env)
	if _, er := os.Stat(outputName); er == nil {
		if !env.Overwrite {
			return multierr.Append(err, fmt.Errorf("output file already exists: %s", outputName))
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(er) {
		return multierr.Append(err, er)
	} else if er := os.MkdirAll(filepath.Dir(outputName), 0755); er != nil {
		return multierr.Append(err, fmt.Errorf("unable to create output directory: %w", er))
	}
	if er := os.WriteFile(outputName, data, 0644); er != nil {
		return multierr.Append(err, fmt.Errorf("unable to write results: %w", er))
	}

	if env.Rpt != nil {
		env.Rpt.StoreData(fmt.Sprintf("results/%s", filepath.Base(outputName)), data)
	}

	log.Info("Compilation completed", zap.String("to", outputName), zap.Int("selectors", len(built)))
	return err
}
