package garden

import "github.com/gogpu/garden/surface"

// DefaultLabelSize is the caption font size in logical pixels.
const DefaultLabelSize = 11

// Option configures a Garden during creation.
// Use functional options to customize Garden behavior.
//
// Example:
//
//	// Defaults: process pixel ratio, captions on
//	g, err := garden.New(cfg)
//
//	// Retina output without captions
//	g, err := garden.New(cfg, garden.WithPixelRatio(2), garden.WithLabels(false))
type Option func(*gardenOptions)

// gardenOptions holds optional configuration for Garden creation.
type gardenOptions struct {
	ratio     surface.PixelRatio
	labels    bool
	labelSize float64
	offsets   bool
}

// defaultOptions returns the default garden options.
func defaultOptions() gardenOptions {
	return gardenOptions{
		ratio:     surface.DefaultPixelRatio(),
		labels:    true,
		labelSize: DefaultLabelSize,
	}
}

// WithPixelRatio sets the backing pixel ratio of every raster in the garden.
// Without it the process-wide surface.DefaultPixelRatio is used. A ratio
// that is not a positive finite number is replaced by 1, as every raster does.
func WithPixelRatio(r surface.PixelRatio) Option {
	return func(o *gardenOptions) {
		o.ratio = r.Normalize()
	}
}

// WithLabels enables or disables plant captions.
func WithLabels(enabled bool) Option {
	return func(o *gardenOptions) {
		o.labels = enabled
	}
}

// WithLabelSize sets the caption font size. Non-positive sizes are ignored.
func WithLabelSize(size float64) Option {
	return func(o *gardenOptions) {
		if size > 0 {
			o.labelSize = size
		}
	}
}

// WithLayerOffsets makes the viewport honor layer positions when
// compositing and picking. See viewport.WithLayerOffsets.
func WithLayerOffsets() Option {
	return func(o *gardenOptions) {
		o.offsets = true
	}
}
