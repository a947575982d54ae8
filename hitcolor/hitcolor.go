// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package hitcolor maps object identifiers to opaque RGB colors and back.
//
// Identity rasters (see surface.HitSurface) paint every pickable object with
// the color of its identifier. Reading a single pixel back and decoding it
// yields the identifier without any geometric intersection test.
//
// Identifiers occupy 24 bits: red carries bits 16-23, green bits 8-15 and
// blue bits 0-7. Callers must keep identifiers within [0, MaxID]; larger
// values are silently truncated by Encode and do not round-trip.
package hitcolor

import (
	"fmt"
	"image/color"
)

// MaxID is the largest identifier that survives an Encode/Decode round trip.
const MaxID = 1<<24 - 1

// RGB is an opaque identity color.
type RGB struct {
	R, G, B uint8
}

// Encode packs id into an RGB triple.
// The caller must ensure 0 <= id <= MaxID.
func Encode(id int) RGB {
	return RGB{
		R: uint8((id & 0xff0000) >> 16), //nolint:gosec // masked to 8 bits
		G: uint8((id & 0x00ff00) >> 8),  //nolint:gosec // masked to 8 bits
		B: uint8(id & 0x0000ff),         //nolint:gosec // masked to 8 bits
	}
}

// Decode is the inverse of Encode.
func Decode(c RGB) int {
	return int(c.R)<<16 | int(c.G)<<8 | int(c.B)
}

// CSS formats Encode(id) as an "rgb(r, g, b)" string.
func CSS(id int) string {
	return Encode(id).String()
}

// String returns the CSS rgb() notation of c.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// RGBA returns c as a fully opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// FromRGBA extracts the identity color from a raster pixel, ignoring alpha.
func FromRGBA(c color.RGBA) RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}
