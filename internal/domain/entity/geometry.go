package entity

import "math"

// Rect is an axis-aligned rectangle. X, Y is the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Circle is a circle in world coordinates.
type Circle struct {
	X, Y   float64
	Radius float64
}

// ClosestPoint returns the point of r nearest to (x, y).
// Points inside r map to themselves.
func (r Rect) ClosestPoint(x, y float64) (float64, float64) {
	return clampF(x, r.X, r.Right()), clampF(y, r.Y, r.Bottom())
}

// CircleIntersectsRect reports whether c overlaps r using the closest-point
// method: the circle center is clamped into r, and the circle intersects when
// the squared distance to that point is below radius².
// Zero-width or zero-height rects work; the closest point collapses onto
// the degenerate edge.
func CircleIntersectsRect(c Circle, r Rect) bool {
	px, py := r.ClosestPoint(c.X, c.Y)
	dx := c.X - px
	dy := c.Y - py
	return dx*dx+dy*dy < c.Radius*c.Radius
}

// CirclesIntersect reports whether the distance between the centers is below
// the sum of the radii. Coincident centers intersect.
func CirclesIntersect(a, b Circle) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx+dy*dy) < a.Radius+b.Radius
}

// Normalize returns the unit vector of (x, y) and its original length.
// A zero vector returns (0, 0, 0); callers that need a direction must handle
// that case themselves.
func Normalize(x, y float64) (nx, ny, length float64) {
	length = math.Sqrt(x*x + y*y)
	if length == 0 {
		return 0, 0, 0
	}
	return x / length, y / length, length
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
