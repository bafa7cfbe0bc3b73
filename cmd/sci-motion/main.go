// Command sci-motion runs actor motion scenarios through the SCI motion
// kernel and prints where the actor was on every tick.
//
//	sci-motion -to 200,100 -wall 100,90,110,110 avoid
//	sci-motion -from 40,150 -to 120,-40 -gravity 2 -png jump.png jump
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	sci "github.com/32bitkid/sci-motion"
	"github.com/32bitkid/sci-motion/internal/logging"
	"github.com/32bitkid/sci-motion/kernel"
	"github.com/32bitkid/sci-motion/pmachine"
	"go.uber.org/zap"
)

func main() {
	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, closeLog := logging.New(logging.Options{File: opts.log, Verbose: opts.verbose})
	err = execute(opts, logger, os.Stdout)
	if err != nil {
		logger.Error("sci-motion", zap.Error(err))
	}
	_ = closeLog()
	if err != nil {
		os.Exit(1)
	}
}

func execute(opts options, logger *zap.Logger, out io.Writer) error {
	cfg := kernel.Config{
		Version: opts.version,
		Rand:    kernel.NewRandSource(opts.seed),
		Logger:  logger.Named("kernel"),
	}
	if opts.game != "" {
		cfg.Views = gameViews(opts.game, opts.version)
	}

	logger.Info("scenario",
		zap.String("name", opts.scenario),
		zap.Stringer("version", opts.version),
		zap.Stringer("from", opts.from),
		zap.Stringer("to", opts.to),
	)
	s, err := run(opts, cfg)
	if err != nil {
		return err
	}

	for i, tick := range s.trace.Ticks {
		mark := ""
		if tick.Blocked {
			mark = " blocked"
		}
		fmt.Fprintf(out, "%4d %4d,%-4d%s\n", i, tick.X, tick.Y, mark)
	}

	if opts.png != "" {
		return writePNG(opts.png, s.trace.Render(image.Rectangle{}))
	}
	return nil
}

func gameViews(dir string, v pmachine.Version) *sci.Root {
	if v >= pmachine.SCI01 {
		return sci.NewSCI01Root(dir)
	}
	return sci.NewSCI0Root(dir)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
