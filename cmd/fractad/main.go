// Command fractad renders Newton fractals for f(z) = zⁿ − 1 to PNG.
//
// Example:
//
//	fractad render --degree 3 --width 800 --height 800 --out basins.png
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fractad/autodiff"
	"github.com/katalvlaran/fractad/dual"
	"github.com/katalvlaran/fractad/fractal"
)

var renderFlags struct {
	out     string
	degree  int
	width   int
	height  int
	reMin   float64
	reMax   float64
	imMin   float64
	imMax   float64
	eps     float64
	maxIter int
	delta   float64
	workers int
}

var rootCmd = &cobra.Command{
	Use:   "fractad",
	Short: "Newton fractal renderer built on forward-mode autodiff",
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Scan a complex rectangle with Newton's method and write a PNG",
	RunE:  runRender,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}

func init() {
	f := renderCmd.Flags()
	f.StringVar(&renderFlags.out, "out", "fractal.png", "output PNG path")
	f.IntVar(&renderFlags.degree, "degree", 3, "polynomial degree n in f(z) = z^n - 1")
	f.IntVar(&renderFlags.width, "width", 512, "horizontal sample resolution")
	f.IntVar(&renderFlags.height, "height", 512, "vertical sample resolution")
	f.Float64Var(&renderFlags.reMin, "re-min", -2, "left edge of the region")
	f.Float64Var(&renderFlags.reMax, "re-max", 2, "right edge of the region")
	f.Float64Var(&renderFlags.imMin, "im-min", -2, "bottom edge of the region")
	f.Float64Var(&renderFlags.imMax, "im-max", 2, "top edge of the region")
	f.Float64Var(&renderFlags.eps, "eps", 1e-8, "Newton convergence tolerance")
	f.IntVar(&renderFlags.maxIter, "max-iter", 50, "Newton iteration cap")
	f.Float64Var(&renderFlags.delta, "delta", 1e-6, "root-matching tolerance")
	f.IntVar(&renderFlags.workers, "workers", 0, "scan parallelism (0 = all cores)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderFlags.degree < 2 {
		return fmt.Errorf("degree must be at least 2, got %d", renderFlags.degree)
	}
	f := unityPolynomial(renderFlags.degree)
	region := fractal.Region{
		ReMin: renderFlags.reMin, ReMax: renderFlags.reMax,
		ImMin: renderFlags.imMin, ImMax: renderFlags.imMax,
	}
	opts := fractal.Options{
		Width:         renderFlags.width,
		Height:        renderFlags.height,
		Tolerance:     renderFlags.eps,
		MaxIter:       renderFlags.maxIter,
		RootTolerance: renderFlags.delta,
		Workers:       renderFlags.workers,
	}

	start := time.Now()
	grid, err := fractal.Generate(f, region, opts)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	log.Printf("scanned %dx%d cells, %d roots, in %s",
		grid.Width, grid.Height, grid.RootCount(), time.Since(start).Round(time.Millisecond))

	out, err := os.Create(renderFlags.out)
	if err != nil {
		return fmt.Errorf("create %s: %w", renderFlags.out, err)
	}
	defer out.Close()
	if err := grid.EncodePNG(out, nil); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	log.Printf("wrote %s", renderFlags.out)

	return nil
}

// unityPolynomial builds f(z) = z^n − 1 from dual primitives.
func unityPolynomial(n int) autodiff.Func {
	return func(v []dual.Number) (dual.Number, error) {
		zn, err := dual.PowReal(v[0], float64(n))
		if err != nil {
			return nil, err
		}

		return dual.Sub(zn, dual.Lift(1))
	}
}
