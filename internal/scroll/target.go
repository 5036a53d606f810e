package scroll

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidTarget reports a target that cannot be resolved to a Point.
	ErrInvalidTarget = errors.New("scroll: invalid target")
	// ErrInvalidDuration reports a negative animation duration.
	ErrInvalidDuration = errors.New("scroll: duration must be non-negative")
)

// Target is something that resolves to a destination point: a Point,
// Coords, an Element or a Query.
type Target interface {
	isTarget()
}

// Element is a positioned piece of the document, such as a heading.
type Element interface {
	Position() Point
}

// ElementFinder resolves a query string to an element.
type ElementFinder interface {
	Find(query string) (Element, bool)
}

// Coords is an {x, y} pair given as a slice; extra values are ignored.
type Coords []float64

// Query selects an element through the Scroller's ElementFinder.
type Query string

// ElementTarget wraps an Element so it can be used as a Target.
type ElementTarget struct {
	Element Element
}

func (Point) isTarget()         {}
func (Coords) isTarget()        {}
func (Query) isTarget()         {}
func (ElementTarget) isTarget() {}

// Resolve turns a target into a document point. A nil finder makes every
// Query fail.
func Resolve(t Target, finder ElementFinder) (Point, error) {
	var p Point
	switch t := t.(type) {
	case Point:
		p = t
	case Coords:
		if len(t) < 2 {
			return Point{}, fmt.Errorf("%w: need at least 2 coordinates, got %d", ErrInvalidTarget, len(t))
		}
		p = Point{X: t[0], Y: t[1]}
	case ElementTarget:
		if t.Element == nil {
			return Point{}, fmt.Errorf("%w: nil element", ErrInvalidTarget)
		}
		p = t.Element.Position()
	case Query:
		if finder == nil {
			return Point{}, fmt.Errorf("%w: no element finder for query %q", ErrInvalidTarget, string(t))
		}
		el, ok := finder.Find(string(t))
		if !ok {
			return Point{}, fmt.Errorf("%w: no element matches %q", ErrInvalidTarget, string(t))
		}
		p = el.Position()
	default:
		return Point{}, fmt.Errorf("%w: %T", ErrInvalidTarget, t)
	}
	if !finite(p.X) || !finite(p.Y) {
		return Point{}, fmt.Errorf("%w: non-finite point (%v, %v)", ErrInvalidTarget, p.X, p.Y)
	}
	return p, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
