package renderer

import (
	"image"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/rtweekend/go-parallel-raytracer/pkg/core"
)

// Integrator computes the color seen along a single camera ray
type Integrator interface {
	RayColor(ray core.Ray, world core.Hittable, random *rand.Rand, depth int) core.Color
}

// Config holds the tunable rendering parameters
type Config struct {
	Width           int     // Image width in pixels
	AspectRatio     float64 // Width / height; the height is derived
	SamplesPerPixel int     // Jittered camera rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	Workers         int     // Worker goroutines; <= 0 means NumCPU
	Seed            int64   // Base seed for the per-row generators
}

// Height returns the image height derived from the width and aspect ratio
func (c Config) Height() int {
	height := int(float64(c.Width) / c.AspectRatio)
	if height < 1 {
		height = 1
	}
	return height
}

// Renderer renders a scene to an image by distributing pixel rows across a
// fixed pool of workers. The scene and camera are shared read-only; each row
// is sampled with its own deterministically seeded random generator, so the
// output is identical for any worker count.
type Renderer struct {
	world      core.Hittable
	camera     *Camera
	integrator Integrator
	config     Config
	logger     zerolog.Logger
}

// rowResult carries one finished row from a worker to the assembler
type rowResult struct {
	row    int
	pixels []uint8 // RGBA, 4 bytes per pixel
}

// NewRenderer creates a renderer for the given scene and camera
func NewRenderer(world core.Hittable, camera *Camera, integratorInst Integrator, config Config, logger zerolog.Logger) *Renderer {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	return &Renderer{
		world:      world,
		camera:     camera,
		integrator: integratorInst,
		config:     config,
		logger:     logger,
	}
}

// Render traces the full image and returns it with the origin at the top
// left. It blocks until every row has been rendered and assembled.
func (r *Renderer) Render() *image.RGBA {
	width := r.config.Width
	height := r.config.Height()
	workers := min(r.config.Workers, height)

	r.logger.Info().
		Int("width", width).
		Int("height", height).
		Int("workers", workers).
		Int("samples", r.config.SamplesPerPixel).
		Int("max_depth", r.config.MaxDepth).
		Msg("render started")

	start := time.Now()
	results := make(chan rowResult, height)
	remaining := int64(height)

	// Contiguous row chunks, one per worker. Per-pixel cost is roughly
	// uniform, so a static partition needs no work stealing.
	chunk := (height + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		firstRow := w * chunk
		lastRow := min(firstRow+chunk, height)

		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := firstRow; j < lastRow; j++ {
				results <- rowResult{row: j, pixels: r.renderRow(j, width, height)}

				left := atomic.AddInt64(&remaining, -1)
				r.logger.Debug().Int64("scanlines_remaining", left).Msg("scanline complete")
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	// Rows are assembled by index, not completion order. Rows are rendered
	// bottom-to-top and flipped here so the image origin lands at the top
	// left.
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for result := range results {
		y := height - 1 - result.row
		copy(img.Pix[y*img.Stride:], result.pixels)
	}

	r.logger.Info().
		Dur("elapsed", time.Since(start)).
		Msg("render complete")

	return img
}

// renderRow renders one scanline with its own random generator, seeded from
// the base seed and the row index so results do not depend on which worker
// runs it.
func (r *Renderer) renderRow(j, width, height int) []uint8 {
	random := rand.New(rand.NewSource(r.config.Seed + int64(j)))
	pixels := make([]uint8, 4*width)

	// A 1-pixel-wide or 1-row image would otherwise divide by zero
	uScale := float64(max(1, width-1))
	vScale := float64(max(1, height-1))

	for i := 0; i < width; i++ {
		var pixelColor core.Color
		for s := 0; s < r.config.SamplesPerPixel; s++ {
			u := (float64(i) + random.Float64()) / uScale
			v := (float64(j) + random.Float64()) / vScale
			ray := r.camera.GetRay(u, v, random)
			pixelColor = pixelColor.Add(r.integrator.RayColor(ray, r.world, random, r.config.MaxDepth))
		}

		rgba := ColorToRGBA(pixelColor, r.config.SamplesPerPixel)
		pixels[4*i] = rgba.R
		pixels[4*i+1] = rgba.G
		pixels[4*i+2] = rgba.B
		pixels[4*i+3] = rgba.A
	}

	return pixels
}
