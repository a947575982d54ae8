package garden

import (
	"fmt"
	"hash/fnv"
	"image/color"
	"math"
)

// ParseHex parses a color in "RGB", "RGBA", "RRGGBB" or "RRGGBBAA" form,
// with or without a leading '#'.
func ParseHex(hex string) (color.NRGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var v [4]uint8
	v[3] = 0xff
	switch len(s) {
	case 3, 4:
		for i := range len(s) {
			d, ok := hexDigit(s[i])
			if !ok {
				return color.NRGBA{}, fmt.Errorf("garden: invalid hex color %q", hex)
			}
			v[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(s); i += 2 {
			hi, ok1 := hexDigit(s[i])
			lo, ok2 := hexDigit(s[i+1])
			if !ok1 || !ok2 {
				return color.NRGBA{}, fmt.Errorf("garden: invalid hex color %q", hex)
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return color.NRGBA{}, fmt.Errorf("garden: invalid hex color %q", hex)
	}
	return color.NRGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Shade scales the color channels of c by f, keeping alpha.
// f < 1 darkens, f > 1 lightens; channels saturate at 255.
func Shade(c color.Color, f float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.NRGBA{
		R: uint8(clamp255(float64(n.R) * f)),
		G: uint8(clamp255(float64(n.G) * f)),
		B: uint8(clamp255(float64(n.B) * f)),
		A: n.A,
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	return math.Max(0, math.Min(255, x))
}

// HSL creates an opaque color from HSL values.
// h is hue [0, 360), s is saturation [0, 1], l is lightness [0, 1].
func HSL(h, s, l float64) color.NRGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return color.NRGBA{
		R: uint8(clamp255(math.Round((r + m) * 255))),
		G: uint8(clamp255(math.Round((g + m) * 255))),
		B: uint8(clamp255(math.Round((b + m) * 255))),
		A: 0xff,
	}
}

// SpeciesColor derives a stable fill color from a species name, so plants
// of one species share a color without the caller picking one.
func SpeciesColor(species string) color.NRGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(species))
	return HSL(float64(h.Sum32()%360), 0.55, 0.45)
}
