// Package doublemoon implements the double moon binary-classification
// task: points on two interleaved arcs in the plane, one arc per class.
package doublemoon

import (
	"math"
	"math/rand"
)

// Source samples double moon data points.
type Source struct {
	Center0 [2]float64 // center of the class 0 arc
	Center1 [2]float64 // center of the class 1 arc
	Width   float64    // width of each moon
	Noise   float64    // stddev of the gaussian noise added per coordinate
}

// DefaultSource returns the standard double moon geometry.
func DefaultSource() Source {
	return Source{
		Center0: [2]float64{-0.5, -0.2},
		Center1: [2]float64{0.5, 0.2},
		Width:   0.4,
	}
}

// Sample draws n points, class0Frac of them (rounded down) from class 0 and
// the rest from class 1. Features are the 2D coordinates; labels are 0 or 1.
func (s Source) Sample(n int, class0Frac float64, rng *rand.Rand) (xs [][]float32, ys []int64) {
	n0 := int(class0Frac * float64(n))
	xs = make([][]float32, 0, n)
	ys = make([]int64, 0, n)
	for i := 0; i < n0; i++ {
		x1, x2 := s.arcPoint(rng)
		xs = append(xs, []float32{
			float32(s.Center0[0] + x1),
			float32(s.Center0[1] + x2),
		})
		ys = append(ys, 0)
	}
	// class 1 is the same arc mirrored downwards
	for i := n0; i < n; i++ {
		x1, x2 := s.arcPoint(rng)
		xs = append(xs, []float32{
			float32(s.Center1[0] + x1),
			float32(s.Center1[1] - x2),
		})
		ys = append(ys, 1)
	}
	return xs, ys
}

// arcPoint draws a point on the upper half annulus around the origin: the
// angle is uniform in [0, pi] and the radius is drawn so that r^2 is
// uniform between the squared inner and outer radii of the moon.
func (s Source) arcPoint(rng *rand.Rand) (x1, x2 float64) {
	inner := (1 - s.Width/2) * (1 - s.Width/2)
	outer := (1 + s.Width/2) * (1 + s.Width/2)
	angle := math.Pi * rng.Float64()
	r := math.Sqrt(inner + rng.Float64()*(outer-inner))
	x1 = r*math.Cos(angle) + s.Noise*rng.NormFloat64()
	x2 = r*math.Sin(angle) + s.Noise*rng.NormFloat64()
	return x1, x2
}
