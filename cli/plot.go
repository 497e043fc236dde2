package cli

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/spf13/cobra"
	"gocv.io/x/gocv"

	"github.com/MatteoPardi/Machine-Learning-Lab/datamanagers/doublemoon"
	"github.com/MatteoPardi/Machine-Learning-Lab/util"
)

var (
	plotVersion string
	plotOut     string
	plotSize    int
)

var plotCmd = &cobra.Command{
	Use:   "plot <task>",
	Short: "Render a task's dataset as a scatter plot image",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlot,
}

func init() {
	plotCmd.Flags().StringVar(&plotVersion, "version", "v1", "artifact version to plot")
	plotCmd.Flags().StringVar(&plotOut, "out", "doublemoon.png", "output image file")
	plotCmd.Flags().IntVar(&plotSize, "size", 800, "image side length in pixels")
}

func runPlot(cmd *cobra.Command, args []string) error {
	switch args[0] {
	case "doublemoon":
		path, err := store().Resolve(doublemoon.DataFileName(plotVersion))
		if err != nil {
			return err
		}
		xs, ys, err := doublemoon.ReadData(path)
		if err != nil {
			return err
		}
		if err := scatter(xs, ys, plotOut, plotSize); err != nil {
			return err
		}
		util.Logger.Info("wrote plot", "path", plotOut)
		return nil
	}
	return fmt.Errorf("unknown task %q", args[0])
}

// scatter rasterizes the points into a square image, one color per class,
// with the data range padded by 5% on each side.
func scatter(xs [][]float32, ys []int64, out string, size int) error {
	if len(xs) == 0 {
		return fmt.Errorf("no points to plot")
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, row := range xs {
		for _, v := range row {
			lo = math.Min(lo, float64(v))
			hi = math.Max(hi, float64(v))
		}
	}
	margin := 0.05 * (hi - lo)
	lo, hi = lo-margin, hi+margin
	if hi == lo {
		hi = lo + 1
	}

	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 255, 255, 0), size, size, gocv.MatTypeCV8UC3)
	defer img.Close()

	// BGR mats, so these come out red and blue
	colors := []color.RGBA{
		{R: 205, G: 60, B: 60},
		{R: 60, G: 60, B: 205},
	}
	scale := float64(size-1) / (hi - lo)
	for i, row := range xs {
		px := int((float64(row[0]) - lo) * scale)
		py := size - 1 - int((float64(row[1])-lo)*scale)
		c := colors[0]
		if ys[i] != 0 {
			c = colors[1]
		}
		gocv.Circle(&img, image.Pt(px, py), 3, c, -1)
	}
	if ok := gocv.IMWrite(out, img); !ok {
		return fmt.Errorf("write %s failed", out)
	}
	return nil
}
