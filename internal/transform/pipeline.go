package transform

import "github.com/gymnarium/visualisers-base/internal/geom"

// Pipeline is the ordered list of operations attached to one geometry
// node. Insertion order is application order: the first operation is
// applied first to a point, the last appended is outermost.
//
// A pipeline never shares backing storage with another node: Append
// returns a fresh pipeline and Clone deep-copies the op list, so mutating
// one shape's pipeline is never observable through another.
type Pipeline struct {
	Ops []Op
}

// Append returns a new pipeline with op applied after all existing ops.
func (p Pipeline) Append(op Op) Pipeline {
	ops := make([]Op, 0, len(p.Ops)+1)
	ops = append(ops, p.Ops...)
	ops = append(ops, op)
	return Pipeline{Ops: ops}
}

// Matrix folds the pipeline into a single homogeneous matrix, identically
// to Composition. An empty pipeline realizes as the identity matrix.
func (p Pipeline) Matrix() geom.Matrix3 {
	matrix := geom.Identity3()
	for _, op := range p.Ops {
		matrix = matrix.Multiply(op.Matrix())
	}
	return matrix
}

// Matrix3x2 returns the affine coefficients with the homogeneous row
// dropped.
func (p Pipeline) Matrix3x2() geom.Matrix3x2 {
	return p.Matrix().As3x2()
}

// Reverse returns a pipeline whose application undoes this one, up to
// floating-point rounding: the op list is reversed and every op is
// reversed individually.
func (p Pipeline) Reverse() Pipeline {
	ops := make([]Op, len(p.Ops))
	for i, op := range p.Ops {
		ops[len(p.Ops)-1-i] = op.Reverse()
	}
	return Pipeline{Ops: ops}
}

// Apply transforms a position through the folded pipeline matrix.
func (p Pipeline) Apply(pos geom.Position2D) geom.Position2D {
	return p.Matrix().ApplyPosition(pos)
}

// Clone returns a pipeline with its own op list.
func (p Pipeline) Clone() Pipeline {
	if p.Ops == nil {
		return Pipeline{}
	}
	ops := make([]Op, len(p.Ops))
	copy(ops, p.Ops)
	return Pipeline{Ops: ops}
}
