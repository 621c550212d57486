package renderer

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/lumenpath/pathtracer/pkg/core"
	"github.com/lumenpath/pathtracer/pkg/integrator"
)

// Config contains configuration for progressive rendering
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Total samples per pixel across all passes
	Passes          int   // Number of progressive passes
	NumWorkers      int   // Number of bands (0 = use CPU count)
	MaxConcurrency  int   // Bands rendering at once (0 = use CPU count)
	Seed            int64 // Base seed; band i uses Seed+i
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		Passes:          4,
		NumWorkers:      0,
		MaxConcurrency:  0,
		Seed:            42,
	}
}

// validate fills in defaults and rejects unusable settings
func (c Config) validate() (Config, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return c, fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return c, fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.Passes <= 0 {
		c.Passes = 1
	}
	c.Passes = min(c.Passes, c.SamplesPerPixel)
	if c.NumWorkers <= 0 {
		c.NumWorkers = runtime.NumCPU()
	}
	if c.MaxConcurrency <= 0 {
		c.MaxConcurrency = runtime.NumCPU()
	}
	return c, nil
}

// PassResult contains the result of a single pass
type PassResult struct {
	PassNumber int
	Image      *image.RGBA
	Stats      RenderStats
	Elapsed    time.Duration
	IsLast     bool
}

// Renderer manages progressive rendering of a scene over disjoint scanline bands
type Renderer struct {
	config      Config
	camera      *Camera
	scene       *integrator.Scene
	integrator  integrator.Integrator
	logger      core.Logger
	accumulator *Accumulator
	bands       []*Band
}

// NewRenderer creates a renderer; the scene must not change while it renders
func NewRenderer(scene *integrator.Scene, camera *Camera, integratorInst integrator.Integrator, config Config, logger core.Logger) (*Renderer, error) {
	config, err := config.validate()
	if err != nil {
		return nil, err
	}
	if scene == nil || scene.World == nil {
		return nil, fmt.Errorf("renderer needs a scene with a world")
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Renderer{
		config:      config,
		camera:      camera,
		scene:       scene,
		integrator:  integratorInst,
		logger:      logger,
		accumulator: NewAccumulator(config.Width, config.Height),
		bands:       NewBands(config.Height, config.NumWorkers, config.Seed),
	}, nil
}

// Accumulator returns the running per-pixel sums
func (r *Renderer) Accumulator() *Accumulator {
	return r.accumulator
}

// Image returns the current state of the render as an 8-bit image
func (r *Renderer) Image() *image.RGBA {
	return ToImage(r.config.Width, r.config.Height, r.accumulator.Snapshot())
}

// getSamplesForPass returns how many samples per pixel the given 1-based pass adds.
// The total is spread evenly, earlier passes taking the remainder.
func (r *Renderer) getSamplesForPass(passNumber int) int {
	samples := r.config.SamplesPerPixel / r.config.Passes
	if passNumber <= r.config.SamplesPerPixel%r.config.Passes {
		samples++
	}
	return samples
}

// Render runs every pass, calling onPass after each one completes across all bands.
// onPass runs while the bands are held at the pass barrier.
func (r *Renderer) Render(ctx context.Context, onPass func(PassResult)) (RenderStats, error) {
	r.logger.Printf("Rendering %dx%d at %d spp in %d passes over %d bands\n",
		r.config.Width, r.config.Height, r.config.SamplesPerPixel, r.config.Passes, len(r.bands))

	start := time.Now()
	passStart := start
	barrier := NewPassBarrier(len(r.bands))
	slots := semaphore.NewWeighted(int64(r.config.MaxConcurrency))
	progress := rate.NewLimiter(rate.Every(time.Second), 1)
	var rowsDone atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	for _, band := range r.bands {
		worker := &bandWorker{
			band:       band,
			width:      r.config.Width,
			height:     r.config.Height,
			camera:     r.camera,
			scene:      r.scene,
			integrator: r.integrator,
			rowsDone:   &rowsDone,
		}

		g.Go(func() error {
			for pass := 1; pass <= r.config.Passes; pass++ {
				if err := r.renderBandPass(gctx, worker, slots, pass); err != nil {
					return err
				}

				if progress.Allow() {
					totalRows := int64(r.config.Height * r.config.Passes)
					r.logger.Printf("Progress: %d/%d rows\n", rowsDone.Load(), totalRows)
				}

				err := barrier.Arrive(gctx, func() {
					now := time.Now()
					result := r.passResult(pass, now.Sub(passStart), onPass != nil)
					passStart = now
					r.logger.Printf("Pass %d completed in %v (%.1f samples/pixel)\n",
						pass, result.Elapsed, result.Stats.AverageSamples)
					if onPass != nil {
						onPass(result)
					}
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		r.logger.Printf("Rendering stopped after %d passes: %v\n", barrier.Generation(), err)
		return r.accumulator.Stats(), err
	}

	stats := r.accumulator.Stats()
	r.logger.Printf("Render finished in %v\n", time.Since(start))
	return stats, nil
}

// renderBandPass renders one pass of a band while holding a concurrency slot
func (r *Renderer) renderBandPass(ctx context.Context, worker *bandWorker, slots *semaphore.Weighted, pass int) error {
	if err := slots.Acquire(ctx, 1); err != nil {
		return err
	}
	defer slots.Release(1)

	pixels, err := worker.renderPass(ctx, r.getSamplesForPass(pass))
	if err != nil {
		return err
	}
	return r.accumulator.Commit(worker.band.Y0, pixels)
}

// passResult snapshots the accumulator once every band has committed the pass
func (r *Renderer) passResult(pass int, elapsed time.Duration, withImage bool) PassResult {
	pixels := r.accumulator.Snapshot()
	result := PassResult{
		PassNumber: pass,
		Stats:      computeStats(pixels),
		Elapsed:    elapsed,
		IsLast:     pass == r.config.Passes,
	}
	if withImage {
		result.Image = ToImage(r.config.Width, r.config.Height, pixels)
	}
	return result
}
