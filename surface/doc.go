// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the offscreen rasters the compositing engine
// draws into.
//
// Two raster kinds share one sizing model:
//
//   - Surface: the visual raster. Drawing is anti-aliased source-over.
//   - HitSurface: the identity raster. Drawing is aliased and every painted
//     pixel carries the opaque color of an object identifier (see package
//     hitcolor), so a single pixel read resolves a point to an object.
//
// # Sizing
//
// Both kinds have a logical size and a backing *image.RGBA whose dimensions
// are the logical size multiplied by a PixelRatio. All drawing calls take
// logical coordinates; scaling into the backing raster is automatic.
// Resize always reallocates the backing raster and therefore discards the
// previous content. Zero-area rasters are valid and ignore drawing calls.
//
// # Usage
//
//	s := surface.New(200, 100, surface.WithPixelRatio(2))
//	p := surface.NewPath()
//	p.Circle(50, 50, 20)
//	s.Fill(p, color.RGBA{0, 128, 0, 255})
//
//	hit := surface.NewHit(200, 100, surface.WithPixelRatio(2))
//	hit.Fill(p, 7)
//	id, ok := hit.Query(50, 50) // 7, true
//
// Rasters are not safe for concurrent use.
package surface
