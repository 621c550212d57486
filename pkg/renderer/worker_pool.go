package renderer

import (
	"context"
	"sync/atomic"

	"github.com/lumenpath/pathtracer/pkg/core"
	"github.com/lumenpath/pathtracer/pkg/integrator"
)

// Band is a contiguous run of scanlines rendered by one worker
type Band struct {
	ID      int                 // Band index, also the seed offset
	Y0, Y1  int                 // Rows [Y0, Y1), row 0 at the top of the image
	Sampler *core.RandomSampler // Band-owned sampler for deterministic results
}

// NewBands splits height rows into count disjoint bands covering the image.
// Bands differ in height by at most one row; count is capped at height.
func NewBands(height, count int, seed int64) []*Band {
	count = max(1, min(count, height))

	bands := make([]*Band, 0, count)
	y := 0
	for i := 0; i < count; i++ {
		rows := height / count
		if i < height%count {
			rows++
		}
		bands = append(bands, &Band{
			ID:      i,
			Y0:      y,
			Y1:      y + rows,
			Sampler: core.NewSeededSampler(seed + int64(i)),
		})
		y += rows
	}
	return bands
}

// Rows returns the number of scanlines in the band
func (b *Band) Rows() int {
	return b.Y1 - b.Y0
}

// bandWorker renders one band's share of every pass
type bandWorker struct {
	band       *Band
	width      int
	height     int
	camera     *Camera
	scene      *integrator.Scene
	integrator integrator.Integrator
	rowsDone   *atomic.Int64 // Shared progress counter across bands
}

// renderPass traces samples rays through every pixel of the band and returns
// the pass's sums, row-major from Y0. ctx is checked between samples.
func (w *bandWorker) renderPass(ctx context.Context, samples int) ([]PixelStats, error) {
	pixels := make([]PixelStats, w.band.Rows()*w.width)
	sampler := w.band.Sampler

	for j := w.band.Y0; j < w.band.Y1; j++ {
		for i := 0; i < w.width; i++ {
			ps := &pixels[(j-w.band.Y0)*w.width+i]
			for s := 0; s < samples; s++ {
				if err := ctx.Err(); err != nil {
					return nil, err
				}

				jitter := sampler.Get2D()
				u := (float64(i) + jitter.X) / float64(w.width)
				v := (float64(w.height-1-j) + jitter.Y) / float64(w.height)

				ray := w.camera.GetRay(u, v, sampler)
				ps.AddSample(w.integrator.RayColor(ray, w.scene, sampler))
			}
		}
		w.rowsDone.Add(1)
	}

	return pixels, nil
}
