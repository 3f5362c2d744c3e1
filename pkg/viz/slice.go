// Package viz renders a cross-section of a signed distance field as an SVG
// image, using github.com/ajstarks/svgo (one of the teacher's own
// dependencies, pulled in transitively for zygomys tooling but unused there
// — repurposed here as a direct, exercised dependency). This is a debug aid,
// not a replacement for the VTK writer named in spec.md §1, which remains
// an external collaborator.
package viz

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/sdfgen/sdfgen/pkg/grid"
)

// Axis selects which grid axis is held constant when slicing.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// cellPixels is the rendered size, in pixels, of one voxel cell.
const cellPixels = 4

// WriteSlice renders the cross-section of g at the given index along axis
// as an SVG document. Negative phi is shaded warm (inside), positive cool
// (outside); a cell's color is most saturated at the zero crossing and
// fades to white four cell widths away from it. No outline is drawn.
func WriteSlice(w io.Writer, g *grid.Grid, axis Axis, index int) error {
	width, height := sliceDims(g, axis)
	if width <= 0 || height <= 0 {
		return fmt.Errorf("viz: slice index %d out of range for axis %v", index, axis)
	}

	canvas := svg.New(w)
	canvas.Start(width*cellPixels, height*cellPixels)
	defer canvas.End()

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			phi := sliceValue(g, axis, index, col, row)
			color := phiColor(float64(phi), g.Dx)
			canvas.Rect(col*cellPixels, row*cellPixels, cellPixels, cellPixels, "fill:"+color)
		}
	}
	return nil
}

func sliceDims(g *grid.Grid, axis Axis) (width, height int) {
	switch axis {
	case AxisX:
		return g.Ny, g.Nz
	case AxisY:
		return g.Nx, g.Nz
	default:
		return g.Nx, g.Ny
	}
}

func sliceValue(g *grid.Grid, axis Axis, index, col, row int) float32 {
	var i, j, k int
	switch axis {
	case AxisX:
		i, j, k = index, col, row
	case AxisY:
		i, j, k = col, index, row
	default:
		i, j, k = col, row, index
	}
	return g.Phi[g.Index(i, j, k)]
}

// phiColor maps a signed distance to a warm (negative) or cool (positive)
// hex color, fully saturated at phi = 0 and fading linearly to white at
// |phi| = 4*dx.
func phiColor(phi float64, dx float64) string {
	if phi < 0 {
		t := clamp01(-phi / (4 * dx))
		return blend("#CC5533", "#FFFFFF", t)
	}
	t := clamp01(phi / (4 * dx))
	return blend("#3366CC", "#FFFFFF", t)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// blend linearly interpolates between two "#RRGGBB" colors.
func blend(a, b string, t float64) string {
	ar, ag, ab := hexToRGB(a)
	br, bg, bb := hexToRGB(b)
	r := lerp(ar, br, t)
	g := lerp(ag, bg, t)
	bl := lerp(ab, bb, t)
	return fmt.Sprintf("#%02X%02X%02X", r, g, bl)
}

func hexToRGB(s string) (r, g, b int) {
	fmt.Sscanf(s, "#%02X%02X%02X", &r, &g, &b)
	return
}

func lerp(a, b int, t float64) int {
	return int(float64(a) + (float64(b)-float64(a))*t)
}
