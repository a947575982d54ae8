// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"math"
	"os"
	"strconv"
	"sync"

	"github.com/gogpu/garden/internal/logging"
)

// PixelRatioEnv names the environment variable consulted by DefaultPixelRatio.
const PixelRatioEnv = "GARDEN_PIXEL_RATIO"

// PixelRatio is the number of backing pixels per logical pixel along each axis.
type PixelRatio float64

// DefaultPixelRatio returns the process-wide pixel ratio. It is resolved once
// from GARDEN_PIXEL_RATIO and falls back to 1 when the variable is unset or
// not a positive number.
var DefaultPixelRatio = sync.OnceValue(func() PixelRatio {
	v, ok := os.LookupEnv(PixelRatioEnv)
	if !ok {
		return 1
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || !PixelRatio(f).valid() {
		logging.Logger().Warn("surface: ignoring invalid pixel ratio", "env", PixelRatioEnv, "value", v)
		return 1
	}
	return PixelRatio(f)
})

func (r PixelRatio) valid() bool {
	f := float64(r)
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Normalize returns r, or 1 when r is not a usable ratio. Every raster
// applies it to the ratio it is given.
func (r PixelRatio) Normalize() PixelRatio {
	if !r.valid() {
		return 1
	}
	return r
}

// Scale converts a logical length to backing pixels, truncating toward zero.
func (r PixelRatio) Scale(n int) int {
	return int(float64(n) * float64(r))
}

// Snap converts a logical offset to the nearest whole backing pixel,
// rounding half up.
func (r PixelRatio) Snap(v float64) int {
	return int(math.Floor(v*float64(r) + 0.5))
}

// ScaleF converts a logical coordinate to backing pixel space.
func (r PixelRatio) ScaleF(v float64) float64 {
	return v * float64(r)
}
