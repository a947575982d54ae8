// Command gardendemo plants a sample bed, renders it to PNG and reports
// which plant lies under a point.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/garden"
	"github.com/gogpu/garden/surface"
	"github.com/gogpu/garden/viewport"
)

// pathID marks the garden path on its own layer. PlantAt never reports it
// as a plant, whatever its value.
const pathID = 1 << 20

func main() {
	var (
		width   = flag.Int("width", 640, "canvas width in logical pixels")
		height  = flag.Int("height", 400, "canvas height in logical pixels")
		ratio   = flag.Float64("ratio", 0, "backing pixel ratio (0 uses $"+surface.PixelRatioEnv+" or 1)")
		output  = flag.String("output", "garden.png", "output file")
		pick    = flag.String("pick", "", "report the plant under logical point x,y")
		verbose = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	garden.SetLogger(logger)

	var opts []garden.Option
	if *ratio > 0 {
		opts = append(opts, garden.WithPixelRatio(surface.PixelRatio(*ratio)))
	}
	host := viewport.NewImageHost()
	g, err := garden.New(garden.Config{Width: *width, Height: *height, Host: host}, opts...)
	if err != nil {
		log.Fatalf("Failed to create garden: %v", err)
	}

	g.SetBackground(soil(*width, *height))
	if err := drawPath(g); err != nil {
		log.Fatalf("Failed to draw path: %v", err)
	}
	plantBed(g)

	if err := g.Render(); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := host.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	logger.Info("demo saved", "output", *output, "width", *width, "height", *height, "plants", len(g.Plants()))

	if *pick == "" {
		return
	}
	x, y, err := parsePoint(*pick)
	if err != nil {
		log.Fatalf("Invalid -pick: %v", err)
	}
	if p, ok := g.PlantAt(x, y); ok {
		logger.Info("pick", "x", x, "y", y, "plant", p.ID, "species", p.Species)
		return
	}
	if id, ok := g.Pick(x, y); ok {
		logger.Info("pick", "x", x, "y", y, "id", id, "plant", false)
		return
	}
	logger.Info("pick", "x", x, "y", y, "hit", false)
}

// soil returns a vertical earth-tone gradient used as the ground.
func soil(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	for y := range img.Rect.Dy() {
		t := float64(y) / float64(max(h-1, 1))
		c := garden.HSL(30, 0.35, 0.42-t*0.12)
		for x := range img.Rect.Dx() {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// drawPath draws a winding gravel path on its own layer. The path is
// pickable but is not a plant.
func drawPath(g *garden.Garden) error {
	l, err := g.AddLayer("path")
	if err != nil {
		return err
	}
	w, h := float64(g.Width()), float64(g.Height())
	p := surface.NewPath()
	p.MoveTo(0, h*0.8)
	p.CubicTo(w*0.3, h*0.55, w*0.6, h*1.05, w, h*0.75)

	gravel, _ := garden.ParseHex("#cbbf9f")
	l.Surface().Stroke(p, surface.DefaultStrokeStyle().WithColor(gravel).WithWidth(18))
	l.Hit().Stroke(p, 18, pathID)

	// Keep the path beneath the plants.
	return l.MoveDown()
}

// plantBed plants three rows of vegetables.
func plantBed(g *garden.Garden) {
	rows := []struct {
		species string
		radius  float64
		color   color.Color
	}{
		{"tomato", 22, color.NRGBA{0xd6, 0x3a, 0x2f, 0xff}},
		{"lettuce", 16, nil},
		{"sweet basil", 12, nil},
	}
	w := float64(g.Width())
	for i, row := range rows {
		y := 60 + float64(i)*80
		n := int(math.Max(1, (w-80)/(row.radius*4)))
		for j := range n {
			x := 40 + float64(j)*row.radius*4 + row.radius
			if _, err := g.AddPlant(garden.Plant{Species: row.species, X: x, Y: y, Radius: row.radius, Color: row.color}); err != nil {
				log.Fatalf("Failed to plant %s: %v", row.species, err)
			}
		}
	}
}

func parsePoint(s string) (x, y float64, err error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("want x,y, got %q", s)
	}
	if x, err = strconv.ParseFloat(strings.TrimSpace(xs), 64); err != nil {
		return 0, 0, err
	}
	if y, err = strconv.ParseFloat(strings.TrimSpace(ys), 64); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
