package renderer

import (
	"context"
	"fmt"
	"sync"
)

// Accumulator holds the running per-pixel sums of a progressive render.
// Bands commit whole passes under the write lock; readers snapshot under the read lock.
type Accumulator struct {
	width, height int

	mu     sync.RWMutex
	pixels []PixelStats // Row-major, row 0 at the top of the image
}

// NewAccumulator creates an empty accumulator for a width x height image
func NewAccumulator(width, height int) *Accumulator {
	return &Accumulator{
		width:  width,
		height: height,
		pixels: make([]PixelStats, width*height),
	}
}

// Width returns the image width in pixels
func (a *Accumulator) Width() int { return a.width }

// Height returns the image height in pixels
func (a *Accumulator) Height() int { return a.height }

// Commit merges the rows starting at y0 into the running sums.
// rows must hold a whole number of image rows.
func (a *Accumulator) Commit(y0 int, rows []PixelStats) error {
	if len(rows)%a.width != 0 {
		return fmt.Errorf("commit of %d pixels is not a whole number of %d-pixel rows", len(rows), a.width)
	}
	if y0 < 0 || y0+len(rows)/a.width > a.height {
		return fmt.Errorf("commit of rows [%d, %d) outside image height %d", y0, y0+len(rows)/a.width, a.height)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	offset := y0 * a.width
	for i := range rows {
		a.pixels[offset+i].Merge(rows[i])
	}
	return nil
}

// Snapshot returns a copy of the current per-pixel sums
func (a *Accumulator) Snapshot() []PixelStats {
	a.mu.RLock()
	defer a.mu.RUnlock()

	pixels := make([]PixelStats, len(a.pixels))
	copy(pixels, a.pixels)
	return pixels
}

// Stats summarizes the samples accumulated so far
func (a *Accumulator) Stats() RenderStats {
	return computeStats(a.Snapshot())
}

// PassBarrier lets a fixed number of band workers finish a pass together.
// Each completed pass bumps the generation.
type PassBarrier struct {
	parties int

	mu         sync.Mutex
	cond       *sync.Cond
	arrived    int
	generation int
}

// NewPassBarrier creates a barrier for the given number of workers
func NewPassBarrier(parties int) *PassBarrier {
	b := &PassBarrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Generation returns the number of passes completed so far
func (b *PassBarrier) Generation() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.generation
}

// Arrive records that one worker finished the current pass and blocks until
// every worker has. The last worker to arrive runs onComplete before the
// others are released. It returns ctx.Err() if ctx is cancelled while waiting.
func (b *PassBarrier) Arrive(ctx context.Context, onComplete func()) error {
	b.mu.Lock()
	generation := b.generation
	b.arrived++

	if b.arrived == b.parties {
		b.mu.Unlock()
		if onComplete != nil {
			onComplete()
		}
		b.mu.Lock()
		b.arrived = 0
		b.generation++
		b.cond.Broadcast()
		b.mu.Unlock()
		return nil
	}
	b.mu.Unlock()

	return b.Wait(ctx, generation)
}

// Wait blocks until the generation moves past the given one or ctx is done
func (b *PassBarrier) Wait(ctx context.Context, generation int) error {
	stop := context.AfterFunc(ctx, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.cond.Broadcast()
	})
	defer stop()

	b.mu.Lock()
	defer b.mu.Unlock()
	for b.generation <= generation {
		if err := ctx.Err(); err != nil {
			return err
		}
		b.cond.Wait()
	}
	return nil
}
