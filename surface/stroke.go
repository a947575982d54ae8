// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "math"

// flattenTolerance is the maximum curve-to-chord distance in logical pixels.
const flattenTolerance = 0.25

// segment is a flattened line segment.
type segment struct {
	x0, y0, x1, y1 float32
}

// strokeOutline returns a fillable path covering a stroke of the given width
// along p. Joins are round and caps are butt.
func strokeOutline(p *Path, width float64) *Path {
	if p.IsEmpty() || width <= 0 {
		return nil
	}

	out := NewPath()
	hw := float32(width / 2)
	for _, sub := range p.flatten() {
		appendOutline(out, sub, hw)
	}
	if out.IsEmpty() {
		return nil
	}
	return out
}

// flatten converts the path to polylines, one segment list per subpath.
func (p *Path) flatten() [][]segment {
	var (
		subs           [][]segment
		cur            []segment
		curX, curY     float32
		startX, startY float32
		i              int
	)
	flush := func() {
		if len(cur) > 0 {
			subs = append(subs, cur)
			cur = nil
		}
	}

	for _, v := range p.verbs {
		switch v {
		case verbMoveTo:
			flush()
			startX, startY = p.points[i], p.points[i+1]
			curX, curY = startX, startY
			i += 2
		case verbLineTo:
			x, y := p.points[i], p.points[i+1]
			cur = append(cur, segment{curX, curY, x, y})
			curX, curY = x, y
			i += 2
		case verbQuadTo:
			cx, cy := p.points[i], p.points[i+1]
			x, y := p.points[i+2], p.points[i+3]
			cur = flattenQuad(cur, curX, curY, cx, cy, x, y, 0)
			curX, curY = x, y
			i += 4
		case verbCubicTo:
			c1x, c1y := p.points[i], p.points[i+1]
			c2x, c2y := p.points[i+2], p.points[i+3]
			x, y := p.points[i+4], p.points[i+5]
			cur = flattenCubic(cur, curX, curY, c1x, c1y, c2x, c2y, x, y, 0)
			curX, curY = x, y
			i += 6
		case verbClose:
			if curX != startX || curY != startY {
				cur = append(cur, segment{curX, curY, startX, startY})
			}
			curX, curY = startX, startY
			flush()
		}
	}
	flush()
	return subs
}

func flattenQuad(dst []segment, x0, y0, cx, cy, x1, y1 float32, depth int) []segment {
	dx, dy := x1-x0, y1-y0
	cross := (cx-x0)*dy - (cy-y0)*dx
	lenSq := dx*dx + dy*dy
	if depth > 10 || lenSq < 1e-6 || cross*cross/lenSq < flattenTolerance*flattenTolerance {
		return append(dst, segment{x0, y0, x1, y1})
	}

	q0x, q0y := (x0+cx)*0.5, (y0+cy)*0.5
	q1x, q1y := (cx+x1)*0.5, (cy+y1)*0.5
	mx, my := (q0x+q1x)*0.5, (q0y+q1y)*0.5

	dst = flattenQuad(dst, x0, y0, q0x, q0y, mx, my, depth+1)
	return flattenQuad(dst, mx, my, q1x, q1y, x1, y1, depth+1)
}

func flattenCubic(dst []segment, x0, y0, c1x, c1y, c2x, c2y, x1, y1 float32, depth int) []segment {
	dx, dy := x1-x0, y1-y0
	lenSq := dx*dx + dy*dy
	if depth > 10 || lenSq < 1e-6 {
		return append(dst, segment{x0, y0, x1, y1})
	}

	cross1 := abs32((c1x-x0)*dy - (c1y-y0)*dx)
	cross2 := abs32((c2x-x0)*dy - (c2y-y0)*dx)
	maxCross := max(cross1, cross2)
	if maxCross*maxCross/lenSq < flattenTolerance*flattenTolerance {
		return append(dst, segment{x0, y0, x1, y1})
	}

	m01x, m01y := (x0+c1x)*0.5, (y0+c1y)*0.5
	m12x, m12y := (c1x+c2x)*0.5, (c1y+c2y)*0.5
	m23x, m23y := (c2x+x1)*0.5, (c2y+y1)*0.5
	m012x, m012y := (m01x+m12x)*0.5, (m01y+m12y)*0.5
	m123x, m123y := (m12x+m23x)*0.5, (m12y+m23y)*0.5
	mx, my := (m012x+m123x)*0.5, (m012y+m123y)*0.5

	dst = flattenCubic(dst, x0, y0, m01x, m01y, m012x, m012y, mx, my, depth+1)
	return flattenCubic(dst, mx, my, m123x, m123y, m23x, m23y, x1, y1, depth+1)
}

// appendOutline adds the stroke of one polyline to out: a rectangle per
// segment and a round join wherever consecutive segments meet. Caps are butt.
//
// Every piece winds the same way, so overlaps accumulate instead of cancelling.
func appendOutline(out *Path, segs []segment, hw float32) {
	var prev *segment
	for i := range segs {
		seg := &segs[i]
		if !addLineStroke(out, seg.x0, seg.y0, seg.x1, seg.y1, hw) {
			continue
		}
		if prev != nil && turns(prev, seg) {
			addJoin(out, seg.x0, seg.y0, hw)
		}
		prev = seg
	}
	if prev == nil {
		return
	}

	first := segs[0]
	if closed := prev.x1 == first.x0 && prev.y1 == first.y0; closed && len(segs) > 1 {
		addJoin(out, first.x0, first.y0, hw)
	}
}

// addLineStroke adds the rectangle covering one segment. It reports false for
// a degenerate segment.
func addLineStroke(out *Path, x0, y0, x1, y1, hw float32) bool {
	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length < 1e-6 {
		return false
	}
	nx, ny := -dy/length*hw, dx/length*hw

	out.MoveTo(float64(x0+nx), float64(y0+ny))
	out.LineTo(float64(x1+nx), float64(y1+ny))
	out.LineTo(float64(x1-nx), float64(y1-ny))
	out.LineTo(float64(x0-nx), float64(y0-ny))
	out.Close()
	return true
}

// turns reports whether b changes direction relative to a.
func turns(a, b *segment) bool {
	ax, ay := a.x1-a.x0, a.y1-a.y0
	bx, by := b.x1-b.x0, b.y1-b.y0
	cross := ax*by - ay*bx
	dot := ax*bx + ay*by
	return dot < 0 || abs32(cross) > 1e-3*float32(math.Hypot(float64(ax), float64(ay))*math.Hypot(float64(bx), float64(by)))
}

// addJoin adds a disc of radius hw centered on (cx, cy), flattened to within
// flattenTolerance and wound like addLineStroke's rectangles.
func addJoin(out *Path, cx, cy, hw float32) {
	r := float64(hw)
	n := 8
	if r > flattenTolerance {
		n = min(max(int(math.Ceil(math.Pi/math.Acos(1-flattenTolerance/r))), 8), 128)
	}
	out.MoveTo(float64(cx)+r, float64(cy))
	for k := 1; k < n; k++ {
		a := -2 * math.Pi * float64(k) / float64(n)
		out.LineTo(float64(cx)+r*math.Cos(a), float64(cy)+r*math.Sin(a))
	}
	out.Close()
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
