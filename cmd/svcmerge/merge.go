package main

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/svcmerge/svcmerge/internal/compose"
	"github.com/svcmerge/svcmerge/internal/config"
	"github.com/svcmerge/svcmerge/internal/listing"
	"github.com/svcmerge/svcmerge/internal/render"
)

// runMerge is the main path: discover sources, compose, render, write.
// With -validate it stops after compose and prints the ingest summary.
func runMerge(flags cliFlags, logger *slog.Logger) error {
	cfg, err := config.Load(flags.Dir)
	if err != nil {
		return exitErrf(exitBadArgs, "load config: %v", err)
	}

	formatName := firstNonEmpty(flags.Format, cfg.Format, string(render.DefaultFormat))
	format, err := render.ParseFormat(formatName)
	if err != nil {
		return exitErrf(exitBadArgs, "%v", err)
	}

	sources, err := listing.Discover(flags.Dir)
	if errors.Is(err, listing.ErrNoSources) {
		return exitErrf(exitNoSources, "no listing files (*.txt) in %s", flags.Dir)
	}
	if err != nil {
		return exitErrf(exitDirAccess, "%v", err)
	}

	res, err := compose.Compose(sources, logger)
	if err != nil {
		return exitErrf(exitIngest, "%v", err)
	}

	if flags.Validate {
		printStats(os.Stdout, res)
		return nil
	}

	title := firstNonEmpty(flags.Title, cfg.Title, "Service Table")
	out := firstNonEmpty(flags.Output, cfg.Output, "services"+format.Extension())

	var buf bytes.Buffer
	if err := render.Render(&buf, format, render.FromResult(res, title)); err != nil {
		return exitErrf(exitWriteOutput, "render %s: %v", format, err)
	}
	if err := writeFileAtomic(out, buf.Bytes()); err != nil {
		return exitErrf(exitWriteOutput, "write %s: %v", out, err)
	}

	logger.Info("wrote output",
		"path", out, "format", string(format),
		"entries", res.Registry.Len(), "versions", len(res.Versions))
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// writeFileAtomic writes data via a temp file and rename so a failed run
// never leaves a partial artifact that looks like valid output.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		os.Remove(tmp.Name())
		if werr != nil {
			return werr
		}
		return cerr
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
