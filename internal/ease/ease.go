// Package ease maps normalized animation time to normalized progress.
package ease

import (
	"errors"
	"fmt"
)

// Func maps a time fraction in [0,1] to a progress fraction. Overshooting
// curves may leave [0,1] between the endpoints.
type Func func(t float64) float64

// ErrInvalidControlPoints is returned when a control point's x coordinate
// lies outside [0,1], which would make the curve non-invertible.
var ErrInvalidControlPoints = errors.New("ease: control point x must be in [0, 1]")

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

const (
	newtonIterations    = 4
	newtonMinSlope      = 0.001
	subdivisionEpsilon  = 0.0000001
	subdivisionMaxSteps = 10

	splineTableSize  = 11
	sampleStepLength = 1.0 / (splineTableSize - 1)
)

// Polynomial coefficients of one Bezier axis with endpoints 0 and 1.
func coefA(a1, a2 float64) float64 { return 1 - 3*a2 + 3*a1 }
func coefB(a1, a2 float64) float64 { return 3*a2 - 6*a1 }
func coefC(a1 float64) float64     { return 3 * a1 }

// bezierAt evaluates one axis at parameter t using Horner's scheme.
func bezierAt(t, a1, a2 float64) float64 {
	return ((coefA(a1, a2)*t+coefB(a1, a2))*t + coefC(a1)) * t
}

// slopeAt is d(bezierAt)/dt.
func slopeAt(t, a1, a2 float64) float64 {
	return 3*coefA(a1, a2)*t*t + 2*coefB(a1, a2)*t + coefC(a1)
}

// NewCubicBezier builds a curve from (0,0) to (1,1) with interior control
// points (p1x,p1y) and (p2x,p2y), evaluated as y(x).
func NewCubicBezier(p1x, p1y, p2x, p2y float64) (Func, error) {
	if p1x < 0 || p1x > 1 || p2x < 0 || p2x > 1 {
		return nil, fmt.Errorf("%w: got %v and %v", ErrInvalidControlPoints, p1x, p2x)
	}
	if p1x == p1y && p2x == p2y {
		return Linear, nil
	}

	c := &curve{p1x: p1x, p1y: p1y, p2x: p2x, p2y: p2y}
	for i := range c.samples {
		c.samples[i] = bezierAt(float64(i)*sampleStepLength, p1x, p2x)
	}
	return c.at, nil
}

// CubicBezier is NewCubicBezier for static coefficients; it panics on
// invalid control points.
func CubicBezier(p1x, p1y, p2x, p2y float64) Func {
	f, err := NewCubicBezier(p1x, p1y, p2x, p2y)
	if err != nil {
		panic(err)
	}
	return f
}

type curve struct {
	p1x, p1y, p2x, p2y float64
	samples            [splineTableSize]float64
}

func (c *curve) at(x float64) float64 {
	if x == 0 || x == 1 {
		return x
	}
	return bezierAt(c.solveT(x), c.p1y, c.p2y)
}

// solveT finds the curve parameter whose x coordinate equals x. A Newton
// step that leaves its sample interval is redone by bisection, so results
// near a zero-slope inflection can differ slightly from bezier-easing.
func (c *curve) solveT(x float64) float64 {
	intervalStart := 0.0
	sample := 1
	last := splineTableSize - 1
	for ; sample != last && c.samples[sample] <= x; sample++ {
		intervalStart += sampleStepLength
	}
	sample--

	// Interpolate inside the sample interval for an initial guess.
	dist := (x - c.samples[sample]) / (c.samples[sample+1] - c.samples[sample])
	guess := intervalStart + dist*sampleStepLength

	intervalEnd := intervalStart + sampleStepLength
	slope := slopeAt(guess, c.p1x, c.p2x)
	switch {
	case slope >= newtonMinSlope:
		// Newton can run away near an inflection with zero slope (inOutExpo).
		if t := c.newtonRaphson(x, guess); t >= intervalStart && t <= intervalEnd {
			return t
		}
		return c.subdivide(x, intervalStart, intervalEnd)
	case slope == 0:
		return guess
	default:
		return c.subdivide(x, intervalStart, intervalEnd)
	}
}

func (c *curve) newtonRaphson(x, guess float64) float64 {
	for range newtonIterations {
		slope := slopeAt(guess, c.p1x, c.p2x)
		if slope == 0 {
			return guess
		}
		guess -= (bezierAt(guess, c.p1x, c.p2x) - x) / slope
	}
	return guess
}

func (c *curve) subdivide(x, lo, hi float64) float64 {
	var t float64
	for i := 0; i < subdivisionMaxSteps; i++ {
		t = lo + (hi-lo)/2
		diff := bezierAt(t, c.p1x, c.p2x) - x
		if diff > 0 {
			hi = t
		} else {
			lo = t
		}
		if diff > -subdivisionEpsilon && diff < subdivisionEpsilon {
			break
		}
	}
	return t
}
