//go:build js && wasm

// Command ggshapes-wasm is the browser build of ggshapes. It waits for the
// page to load, sizes #canvas to the window and draws ./images/lotus.jpeg
// at three framings, once.
//
// Build with:
//
//	GOOS=js GOARCH=wasm go build -o main.wasm ./cmd/ggshapes-wasm
//
// and serve main.wasm next to index.html, wasm_exec.js and images/.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gogpu/ggshapes"
	"github.com/gogpu/ggshapes/app"
	"github.com/gogpu/ggshapes/imageload"
)

func main() {
	// stdout goes to the browser console.
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	ggshapes.SetLogger(log)

	platform := app.NewBrowser()

	cfg := app.DefaultConfig()
	cfg.Image = "./images/lotus.jpeg"
	if u, err := platform.Resolve(cfg.Image); err == nil {
		cfg.Image = u
	} else {
		log.Error("ggshapes: resolve image", "err", err)
	}

	loader := imageload.New(imageload.WithTimeout(cfg.Timeout.Std()))
	if _, err := app.Run(context.Background(), platform, loader, cfg); err != nil {
		log.Error("ggshapes: render failed", "err", err)
	}

	// A wasm program must keep running for the page to stay usable.
	select {}
}
