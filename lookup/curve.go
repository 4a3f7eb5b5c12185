package lookup

import (
	"math"

	"gonum.org/v1/gonum/interp"
)

// curve is one monotone cubic over strictly increasing knots, with linear
// continuation outside the knot range.
type curve struct {
	fb     interp.FritschButland
	x0, x1 float64 // first and last knot
	y0, y1 float64 // values at x0, x1
	d0, d1 float64 // slopes at x0, x1
}

// fit panics inside gonum for non-increasing xs; callers validate first.
func (c *curve) fit(xs, ys []float64) error {
	if err := c.fb.Fit(xs, ys); err != nil {
		return err
	}
	n := len(xs) - 1
	c.x0, c.x1 = xs[0], xs[n]
	c.y0, c.y1 = ys[0], ys[n]
	c.d0 = c.fb.PredictDerivative(c.x0)
	c.d1 = c.fb.PredictDerivative(c.x1)

	return nil
}

func (c *curve) at(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case x < c.x0:
		return c.y0 + c.d0*(x-c.x0)
	case x > c.x1:
		return c.y1 + c.d1*(x-c.x1)
	}

	return c.fb.Predict(x)
}

// eval fills dst[i] = c.at(xs[i]).
func (c *curve) eval(dst, xs []float64) {
	for i, x := range xs {
		dst[i] = c.at(x)
	}
}
