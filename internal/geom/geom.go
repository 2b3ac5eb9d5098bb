// Package geom provides the 2D primitives shared by every geometry and
// transform type: positions, displacement vectors, sizes and the 3x3
// homogeneous matrix kernel.
//
// All computation is plain float64. Degenerate inputs (NaN, ±Inf) are
// propagated, never clamped or rejected.
package geom

import "math"

// Position2D is an affine point inside the two dimensional space.
type Position2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vector2D is a displacement inside the two dimensional space.
type Vector2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size2D is a pure magnitude pair.
type Size2D struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func Pos(x, y float64) Position2D { return Position2D{X: x, Y: y} }
func Vec(x, y float64) Vector2D   { return Vector2D{X: x, Y: y} }
func Size(w, h float64) Size2D    { return Size2D{Width: w, Height: h} }

// ZeroPosition returns the origin.
func ZeroPosition() Position2D { return Position2D{} }

// OnePosition returns (1, 1).
func OnePosition() Position2D { return Position2D{X: 1, Y: 1} }

// Add displaces the position by a vector.
func (p Position2D) Add(v Vector2D) Position2D {
	return Position2D{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub displaces the position against a vector.
func (p Position2D) Sub(v Vector2D) Position2D {
	return Position2D{X: p.X - v.X, Y: p.Y - v.Y}
}

// VectorTo returns the displacement from p to other.
func (p Position2D) VectorTo(other Position2D) Vector2D {
	return Vector2D{X: other.X - p.X, Y: other.Y - p.Y}
}

// DistanceTo returns the euclidean distance between two positions.
func (p Position2D) DistanceTo(other Position2D) float64 {
	return p.VectorTo(other).Length()
}

// ZeroVector returns the zero displacement.
func ZeroVector() Vector2D { return Vector2D{} }

// OneVector returns (1, 1).
func OneVector() Vector2D { return Vector2D{X: 1, Y: 1} }

func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{X: v.X - other.X, Y: v.Y - other.Y}
}

func (v Vector2D) Mul(factor float64) Vector2D {
	return Vector2D{X: v.X * factor, Y: v.Y * factor}
}

func (v Vector2D) Div(divisor float64) Vector2D {
	return Vector2D{X: v.X / divisor, Y: v.Y / divisor}
}

func (v Vector2D) Neg() Vector2D {
	return Vector2D{X: -v.X, Y: -v.Y}
}

// Length returns the euclidean length of the vector.
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalized returns the vector scaled to length one. A zero-length input
// yields NaN components, following the shared numeric contract.
func (v Vector2D) Normalized() Vector2D {
	return v.Div(v.Length())
}

// ZeroSize returns a size with zero extent.
func ZeroSize() Size2D { return Size2D{} }

// OneSize returns a size of one by one.
func OneSize() Size2D { return Size2D{Width: 1, Height: 1} }

// Scale multiplies width and height independently.
func (s Size2D) Scale(widthFactor, heightFactor float64) Size2D {
	return Size2D{Width: s.Width * widthFactor, Height: s.Height * heightFactor}
}
