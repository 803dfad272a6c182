package fractal

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/colornames"
)

// Palette assigns colors to root indices; index i renders with
// Palette[i % len(Palette)], so any number of discovered roots maps
// onto a finite palette.
type Palette []color.RGBA

// DefaultPalette returns eight well-separated basin colors.
func DefaultPalette() Palette {
	return Palette{
		colornames.Crimson,
		colornames.Royalblue,
		colornames.Seagreen,
		colornames.Gold,
		colornames.Darkorchid,
		colornames.Orangered,
		colornames.Teal,
		colornames.Hotpink,
	}
}

// minShade keeps slow-converging cells visible instead of fading to black.
const minShade = 0.2

// Render draws the grid as an image: each cell takes the palette color
// of its root index, shaded darker the more iterations convergence
// took; non-convergent cells are black. A nil or empty palette uses
// DefaultPalette.
//
// Complexity: O(W·H).
func (g *Grid) Render(p Palette) *image.RGBA {
	if len(p) == 0 {
		p = DefaultPalette()
	}
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := g.cells[g.index(x, y)]
			if c.Root == NonConvergent {
				img.SetRGBA(x, y, color.RGBA{A: 0xff})
				continue
			}
			img.SetRGBA(x, y, shade(p[c.Root%len(p)], c.Iterations, g.MaxIter))
		}
	}

	return img
}

// EncodePNG renders the grid with the given palette and writes it as PNG.
func (g *Grid) EncodePNG(w io.Writer, p Palette) error {
	return png.Encode(w, g.Render(p))
}

// shade scales a basin color by how quickly the cell converged:
// instant convergence keeps the full color, MaxIter-long convergence
// dims to minShade.
func shade(c color.RGBA, iter, maxIter int) color.RGBA {
	if maxIter < 1 {
		maxIter = 1
	}
	f := 1 - (1-minShade)*float64(iter)/float64(maxIter)
	if f < minShade {
		f = minShade
	}

	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: 0xff,
	}
}
