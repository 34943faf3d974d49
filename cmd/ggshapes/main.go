// Command ggshapes loads an image and renders it at three framings into a
// PNG file, optionally over a random scene of shape primitives.
//
// Usage:
//
//	ggshapes [-config ggshapes.toml] [-image path|url] [-width 800] [-height 600]
//	         [-output ggshapes.png] [-timeout 30s] [-shapes 0] [-seed 0]
//	         [-lenient] [-dry-run] [-v]
//
// Flags given on the command line override values from the config file.
// An output of "-" writes the PNG to stdout, which must be a pipe.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"golang.org/x/term"

	"github.com/gogpu/ggshapes"
	"github.com/gogpu/ggshapes/app"
	"github.com/gogpu/ggshapes/imageload"
	"github.com/gogpu/ggshapes/surface"
)

const pipeName = "-"

func main() {
	var (
		configPath = flag.String("config", "", "TOML or YAML config file")
		image      = flag.String("image", app.DefaultImage, "image path or URL")
		width      = flag.Int("width", app.DefaultWidth, "viewport width")
		height     = flag.Int("height", app.DefaultHeight, "viewport height")
		output     = flag.String("output", app.DefaultOutput, "output file, - for stdout")
		timeout    = flag.Duration("timeout", app.DefaultTimeout, "image load timeout")
		shapes     = flag.Int("shapes", 0, "number of random shapes under the image")
		seed       = flag.Uint64("seed", 0, "random scene seed, 0 for a random one")
		lenient    = flag.Bool("lenient", false, "ignore malformed shapes instead of failing")
		dryRun     = flag.Bool("dry-run", false, "print the drawing commands instead of writing a PNG")
		verbose    = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		ggshapes.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := app.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = app.LoadConfig(*configPath); err != nil {
			log.Fatalf("ggshapes: %v", err)
		}
	}

	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "image":
			cfg.Image = *image
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "output":
			cfg.Output = *output
		case "timeout":
			cfg.Timeout = app.Duration(*timeout)
		case "shapes":
			cfg.RandomShapes = *shapes
		case "seed":
			cfg.Seed = *seed
		case "lenient":
			cfg.Strict = !*lenient
		}
	})
	if *dryRun {
		cfg.Backend = "recorder"
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("ggshapes: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("ggshapes: %v", err)
	}
}

func run(ctx context.Context, cfg app.Config) error {
	loader := imageload.New(imageload.WithTimeout(cfg.Timeout.Std()))

	began := time.Now()
	res, err := app.Run(ctx, app.NewHeadless(cfg), loader, cfg)
	if err != nil {
		return err
	}

	switch c := res.Canvas.(type) {
	case *surface.Recorder:
		for _, cmd := range c.Commands() {
			fmt.Println(cmd)
		}
		return nil
	case *surface.Raster:
		defer func() {
			if err := c.Close(); err != nil {
				ggshapes.Logger().Warn("ggshapes: close raster", "err", err)
			}
		}()
		if cfg.Output == pipeName {
			if term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("`-` should be used with a pipe for stdout")
			}
			return c.EncodePNG(os.Stdout)
		}
		if err := c.SavePNG(cfg.Output); err != nil {
			return fmt.Errorf("save %s: %w", cfg.Output, err)
		}
	default:
		return fmt.Errorf("backend %q cannot write %s", cfg.Backend, cfg.Output)
	}

	log.Printf("Rendered %s to %s (%dx%d) in %v\n",
		res.Image.Path, cfg.Output, res.Width, res.Height, time.Since(began).Round(time.Millisecond))
	return nil
}
