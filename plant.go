package garden

import (
	"image/color"

	"github.com/gogpu/garden/internal/label"
	"github.com/gogpu/garden/surface"
)

// Plant is a drawable, pickable entity on the plants layer.
type Plant struct {
	// ID is assigned by AddPlant and doubles as the plant's identity color.
	ID int

	// Species is shown, title-cased, as the caption under the plant.
	Species string

	// X and Y locate the center in logical pixels.
	X, Y float64

	// Radius of the plant disc in logical pixels. Must be positive.
	Radius float64

	// Color fills the disc. Nil picks SpeciesColor(Species).
	Color color.Color
}

// Styling constants for plant rendering.
const (
	outlineWidth = 1.5
	outlineShade = 0.6
	captionGap   = 2
)

var captionColor = color.NRGBA{0x22, 0x2b, 0x22, 0xff}

func (p *Plant) fill() color.Color {
	if p.Color != nil {
		return p.Color
	}
	return SpeciesColor(p.Species)
}

// outline returns the disc silhouette shared by the visual and identity rasters.
func (p *Plant) outline() *surface.Path {
	path := surface.NewPath()
	path.Circle(p.X, p.Y, p.Radius)
	return path
}

// draw paints the plant into both rasters of its layer. The caption is
// decoration and is not pickable.
func (p *Plant) draw(vis *surface.Surface, hit *surface.HitSurface, labels *label.Labeler) error {
	path := p.outline()
	fill := p.fill()

	vis.Fill(path, fill)
	vis.Stroke(path, surface.StrokeStyle{Color: Shade(fill, outlineShade), Width: outlineWidth})
	hit.Fill(path, p.ID)

	if labels == nil || p.Species == "" {
		return nil
	}
	return labels.Draw(vis, label.Title(p.Species), p.X, p.Y+p.Radius+captionGap, captionColor)
}
