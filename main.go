package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rtweekend/go-parallel-raytracer/pkg/integrator"
	"github.com/rtweekend/go-parallel-raytracer/pkg/renderer"
	"github.com/rtweekend/go-parallel-raytracer/pkg/scene"
)

var CLI struct {
	Scene   string  `enum:"default,cover,marched" default:"default" help:"Scene to render: default, cover or marched."`
	Width   int     `default:"800" help:"Image width in pixels."`
	Aspect  float64 `default:"1.7777777777777777" help:"Aspect ratio (width / height)."`
	Samples int     `default:"500" help:"Samples per pixel."`
	Depth   int     `default:"50" help:"Maximum ray bounce depth."`
	Workers int     `default:"0" help:"Worker threads; 0 uses all cores."`
	Seed    int64   `default:"42" help:"Base random seed."`
	Output  string  `default:"output.png" type:"path" help:"Output PNG path."`
	Debug   bool    `help:"Enable per-scanline debug logging."`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("raytracer"),
		kong.Description("A parallel recursive path tracer."),
		kong.UsageOnError(),
	)

	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var selected *scene.Scene
	switch CLI.Scene {
	case "cover":
		selected = scene.NewCoverScene(CLI.Seed, CLI.Aspect)
	case "marched":
		selected = scene.NewMarchedScene(CLI.Aspect)
	default:
		selected = scene.NewDefaultScene(CLI.Aspect)
	}

	config := renderer.Config{
		Width:           CLI.Width,
		AspectRatio:     CLI.Aspect,
		SamplesPerPixel: CLI.Samples,
		MaxDepth:        CLI.Depth,
		Workers:         CLI.Workers,
		Seed:            CLI.Seed,
	}

	r := renderer.NewRenderer(selected.World, selected.Camera, integrator.NewPathTracer(), config, log.Logger)
	img := r.Render()

	if err := writePNG(CLI.Output, img); err != nil {
		log.Fatal().Err(err).Str("path", CLI.Output).Msg("failed to write image")
	}
	log.Info().Str("path", CLI.Output).Msg("image saved")
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return file.Close()
}
