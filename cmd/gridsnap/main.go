package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"pangrid/grid"
	"pangrid/surface"

	"github.com/gogpu/gg"
)

func main() {
	var (
		width     = flag.Int("width", 800, "Image width in pixels.")
		height    = flag.Int("height", 600, "Image height in pixels.")
		panX      = flag.Float64("x", 0, "Pan the viewport right by this many pixels.")
		panY      = flag.Float64("y", 0, "Pan the viewport down by this many pixels.")
		outPath   = flag.String("o", "grid.png", "Output PNG file.")
		line      = flag.String("line", surface.Hex(surface.DefaultStyle.Line), "Grid line color (#rrggbb).")
		bg        = flag.String("bg", surface.Hex(surface.DefaultStyle.Background), "Background color (#rrggbb).")
		lineWidth = flag.Float64("line-width", 1, "Stroke width in pixels.")
		verbose   = flag.Bool("v", false, "Log layout details to stderr.")
	)
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		fatalf("usage: gridsnap -width W -height H [-x dx] [-y dy] [-o out.png]")
	}

	style, err := parseStyle(*line, *bg)
	if err != nil {
		fatalf("%v", err)
	}

	if *verbose {
		l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		grid.SetLogger(l)
		gg.SetLogger(l)
	}

	if err := render(*width, *height, *panX, *panY, style, *lineWidth, *outPath); err != nil {
		fatalf("gridsnap: %v", err)
	}
}

func parseStyle(line, bg string) (surface.Style, error) {
	style := surface.DefaultStyle
	var err error
	if style.Line, err = surface.ParseColor(line); err != nil {
		return style, fmt.Errorf("-line: %w", err)
	}
	if style.Background, err = surface.ParseColor(bg); err != nil {
		return style, fmt.Errorf("-bg: %w", err)
	}
	return style, nil
}

func render(width, height int, dx, dy float64, style surface.Style, lineWidth float64, outPath string) error {
	c := surface.NewCanvas(width, height, style, lineWidth)
	defer c.Close()

	m := grid.New(c)
	m.Initialize(grid.Size{Width: float64(width), Height: float64(height)})
	if dx != 0 || dy != 0 {
		m.SetViewport(m.Viewport().Pan(dx, dy))
	}
	if err := c.Flush(); err != nil {
		return err
	}
	return c.SavePNG(outPath)
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
