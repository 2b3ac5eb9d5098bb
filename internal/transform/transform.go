// Package transform implements the 2D affine transform algebra: single
// operation descriptors, their homogeneous matrix realization, and ordered
// pipelines of operations attached to geometry nodes.
//
// Angles are radians everywhere. Realizing an operation never mutates
// shared state, and no result is clamped or renormalized; degenerate
// operations (for example a zero-factor scale) surface as non-finite
// matrix entries when inverted.
package transform

import (
	"math"

	"github.com/gymnarium/visualisers-base/internal/geom"
)

// Op is a single affine transform descriptor. Every variant is a pure
// value: Matrix realizes it as a row-major homogeneous matrix and Reverse
// produces an operation that undoes it.
type Op interface {
	// Matrix returns the 3x3 homogeneous realization of the operation.
	Matrix() geom.Matrix3
	// Reverse returns an operation undoing this one. Leaf variants come
	// back as a Custom wrapping the inverted matrix.
	Reverse() Op

	opType() string
}

// Translation displaces by a direction vector.
type Translation struct {
	Direction geom.Vector2D
}

// Identity leaves points untouched.
type Identity struct{}

// Rotation rotates counter-clockwise around the origin by an angle in
// radians.
type Rotation struct {
	Angle float64
}

// Scale scales both axes independently.
type Scale struct {
	XFactor float64
	YFactor float64
}

// IsotropicScale scales both axes by the same factor.
type IsotropicScale struct {
	Factor float64
}

// ReflectionX mirrors across the Y axis (negates x).
type ReflectionX struct{}

// ReflectionY mirrors across the X axis (negates y).
type ReflectionY struct{}

// ShearX shears parallel to the X axis by a raw factor.
type ShearX struct {
	Amount float64
}

// ShearY shears parallel to the Y axis by a raw factor.
type ShearY struct {
	Amount float64
}

// ShearXByAngle shears parallel to the X axis by tan(Angle).
type ShearXByAngle struct {
	Angle float64
}

// ShearYByAngle shears parallel to the Y axis by tan(Angle).
type ShearYByAngle struct {
	Angle float64
}

// Composition is a named, ordered list of operations. The first listed
// operation is applied first to a point.
type Composition struct {
	Name string
	Ops  []Op
}

// Custom wraps an arbitrary 3x3 matrix.
type Custom struct {
	Name           string
	Transformation geom.Matrix3
}

func (t Translation) Matrix() geom.Matrix3 {
	return geom.Matrix3{
		{1, 0, t.Direction.X},
		{0, 1, t.Direction.Y},
		{0, 0, 1},
	}
}

func (Identity) Matrix() geom.Matrix3 {
	return geom.Identity3()
}

func (r Rotation) Matrix() geom.Matrix3 {
	sin, cos := math.Sincos(r.Angle)
	return geom.Matrix3{
		{cos, -sin, 0},
		{sin, cos, 0},
		{0, 0, 1},
	}
}

func (s Scale) Matrix() geom.Matrix3 {
	return geom.Matrix3{
		{s.XFactor, 0, 0},
		{0, s.YFactor, 0},
		{0, 0, 1},
	}
}

func (s IsotropicScale) Matrix() geom.Matrix3 {
	return geom.Matrix3{
		{s.Factor, 0, 0},
		{0, s.Factor, 0},
		{0, 0, 1},
	}
}

func (ReflectionX) Matrix() geom.Matrix3 {
	return geom.Matrix3{
		{-1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

func (ReflectionY) Matrix() geom.Matrix3 {
	return geom.Matrix3{
		{1, 0, 0},
		{0, -1, 0},
		{0, 0, 1},
	}
}

func (s ShearX) Matrix() geom.Matrix3 {
	return geom.Matrix3{
		{1, s.Amount, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

func (s ShearY) Matrix() geom.Matrix3 {
	return geom.Matrix3{
		{1, 0, 0},
		{s.Amount, 1, 0},
		{0, 0, 1},
	}
}

func (s ShearXByAngle) Matrix() geom.Matrix3 {
	return ShearX{Amount: math.Tan(s.Angle)}.Matrix()
}

func (s ShearYByAngle) Matrix() geom.Matrix3 {
	return ShearY{Amount: math.Tan(s.Angle)}.Matrix()
}

// Matrix folds the listed operations in application order. An empty
// composition realizes as the identity matrix.
func (c Composition) Matrix() geom.Matrix3 {
	matrix := geom.Identity3()
	for _, op := range c.Ops {
		matrix = matrix.Multiply(op.Matrix())
	}
	return matrix
}

func (c Custom) Matrix() geom.Matrix3 {
	return c.Transformation
}

func (t Translation) Reverse() Op    { return reverseLeaf(t) }
func (i Identity) Reverse() Op       { return reverseLeaf(i) }
func (r Rotation) Reverse() Op       { return reverseLeaf(r) }
func (s Scale) Reverse() Op          { return reverseLeaf(s) }
func (s IsotropicScale) Reverse() Op { return reverseLeaf(s) }
func (r ReflectionX) Reverse() Op    { return reverseLeaf(r) }
func (r ReflectionY) Reverse() Op    { return reverseLeaf(r) }
func (s ShearX) Reverse() Op         { return reverseLeaf(s) }
func (s ShearY) Reverse() Op         { return reverseLeaf(s) }
func (s ShearXByAngle) Reverse() Op  { return reverseLeaf(s) }
func (s ShearYByAngle) Reverse() Op  { return reverseLeaf(s) }

// Reverse reverses every child operation and the list order, so undoing
// a composition of A then B then C undoes C, then B, then A.
func (c Composition) Reverse() Op {
	reversed := make([]Op, len(c.Ops))
	for i, op := range c.Ops {
		reversed[len(c.Ops)-1-i] = op.Reverse()
	}
	return Composition{Name: "Reverse-" + c.Name, Ops: reversed}
}

func (c Custom) Reverse() Op {
	return Custom{Name: "Reverse-" + c.Name, Transformation: c.Transformation.Invert()}
}

func reverseLeaf(op Op) Op {
	return Custom{Name: "Reverse-" + op.opType(), Transformation: op.Matrix().Invert()}
}

// RotationAroundPosition rotates around an arbitrary pivot: translate the
// pivot to the origin, rotate, translate back.
func RotationAroundPosition(pivot geom.Position2D, angle float64) Composition {
	return Composition{
		Name: "RotationAroundPosition",
		Ops: []Op{
			Translation{Direction: pivot.VectorTo(geom.ZeroPosition())},
			Rotation{Angle: angle},
			Translation{Direction: geom.ZeroPosition().VectorTo(pivot)},
		},
	}
}

func (Translation) opType() string    { return "translation" }
func (Identity) opType() string       { return "identity" }
func (Rotation) opType() string       { return "rotation" }
func (Scale) opType() string          { return "scale" }
func (IsotropicScale) opType() string { return "isotropicScale" }
func (ReflectionX) opType() string    { return "reflectionX" }
func (ReflectionY) opType() string    { return "reflectionY" }
func (ShearX) opType() string         { return "shearX" }
func (ShearY) opType() string         { return "shearY" }
func (ShearXByAngle) opType() string  { return "shearXByAngle" }
func (ShearYByAngle) opType() string  { return "shearYByAngle" }
func (Composition) opType() string    { return "composition" }
func (Custom) opType() string         { return "custom" }
