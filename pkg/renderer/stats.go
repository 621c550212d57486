package renderer

import "github.com/lumenpath/pathtracer/pkg/core"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int     // Total number of pixels rendered
	TotalSamples   int     // Total number of samples taken
	AverageSamples float64 // Average samples per pixel
	MinSamples     int     // Minimum samples taken by any pixel
	MaxSamplesUsed int     // Maximum samples taken by any pixel
	MeanLuminance  float64 // Mean of the per-pixel average luminance
	MaxVariance    float64 // Largest per-pixel luminance variance
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum       core.Color // RGB accumulator for final result
	LuminanceAccum   float64    // Luminance accumulator for convergence
	LuminanceSqAccum float64    // Luminance squared for variance
	SampleCount      int        // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Color) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// Merge folds another pixel's accumulated samples into this one
func (ps *PixelStats) Merge(other PixelStats) {
	ps.ColorAccum = ps.ColorAccum.Add(other.ColorAccum)
	ps.LuminanceAccum += other.LuminanceAccum
	ps.LuminanceSqAccum += other.LuminanceSqAccum
	ps.SampleCount += other.SampleCount
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Color {
	if ps.SampleCount == 0 {
		return core.Color{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// Variance returns the sample variance of the pixel's luminance
func (ps *PixelStats) Variance() float64 {
	if ps.SampleCount < 2 {
		return 0
	}
	n := float64(ps.SampleCount)
	mean := ps.LuminanceAccum / n
	return max(0, (ps.LuminanceSqAccum/n-mean*mean)*n/(n-1))
}

// computeStats summarizes a full frame of pixel statistics
func computeStats(pixels []PixelStats) RenderStats {
	stats := RenderStats{TotalPixels: len(pixels)}
	if len(pixels) == 0 {
		return stats
	}

	stats.MinSamples = pixels[0].SampleCount
	luminanceSum := 0.0
	for i := range pixels {
		pixel := &pixels[i]
		stats.TotalSamples += pixel.SampleCount
		stats.MinSamples = min(stats.MinSamples, pixel.SampleCount)
		stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, pixel.SampleCount)
		stats.MaxVariance = max(stats.MaxVariance, pixel.Variance())
		if pixel.SampleCount > 0 {
			luminanceSum += pixel.LuminanceAccum / float64(pixel.SampleCount)
		}
	}

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	stats.MeanLuminance = luminanceSum / float64(stats.TotalPixels)
	return stats
}
