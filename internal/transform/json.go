package transform

import (
	"encoding/json"
	"fmt"

	"github.com/gymnarium/visualisers-base/internal/geom"
)

// opEnvelope is the wire form of an Op: a type discriminator plus the
// union of the variant payload fields.
type opEnvelope struct {
	Type string `json:"type"`

	Direction *geom.Vector2D `json:"direction,omitempty"`
	Angle     *float64       `json:"angle,omitempty"`
	XFactor   *float64       `json:"xFactor,omitempty"`
	YFactor   *float64       `json:"yFactor,omitempty"`
	Factor    *float64       `json:"factor,omitempty"`
	Amount    *float64       `json:"amount,omitempty"`

	Name   string        `json:"name,omitempty"`
	Ops    []opEnvelope  `json:"ops,omitempty"`
	Matrix *geom.Matrix3 `json:"matrix,omitempty"`
}

func encodeOp(op Op) opEnvelope {
	env := opEnvelope{Type: op.opType()}
	switch v := op.(type) {
	case Translation:
		direction := v.Direction
		env.Direction = &direction
	case Rotation:
		env.Angle = &v.Angle
	case Scale:
		env.XFactor = &v.XFactor
		env.YFactor = &v.YFactor
	case IsotropicScale:
		env.Factor = &v.Factor
	case ShearX:
		env.Amount = &v.Amount
	case ShearY:
		env.Amount = &v.Amount
	case ShearXByAngle:
		env.Angle = &v.Angle
	case ShearYByAngle:
		env.Angle = &v.Angle
	case Composition:
		env.Name = v.Name
		env.Ops = make([]opEnvelope, len(v.Ops))
		for i, child := range v.Ops {
			env.Ops[i] = encodeOp(child)
		}
	case Custom:
		env.Name = v.Name
		matrix := v.Transformation
		env.Matrix = &matrix
	}
	return env
}

func decodeOp(env opEnvelope) (Op, error) {
	switch env.Type {
	case "translation":
		if env.Direction == nil {
			return nil, fmt.Errorf("translation op missing direction")
		}
		return Translation{Direction: *env.Direction}, nil
	case "identity":
		return Identity{}, nil
	case "rotation":
		if env.Angle == nil {
			return nil, fmt.Errorf("rotation op missing angle")
		}
		return Rotation{Angle: *env.Angle}, nil
	case "scale":
		if env.XFactor == nil || env.YFactor == nil {
			return nil, fmt.Errorf("scale op missing factors")
		}
		return Scale{XFactor: *env.XFactor, YFactor: *env.YFactor}, nil
	case "isotropicScale":
		if env.Factor == nil {
			return nil, fmt.Errorf("isotropicScale op missing factor")
		}
		return IsotropicScale{Factor: *env.Factor}, nil
	case "reflectionX":
		return ReflectionX{}, nil
	case "reflectionY":
		return ReflectionY{}, nil
	case "shearX":
		if env.Amount == nil {
			return nil, fmt.Errorf("shearX op missing amount")
		}
		return ShearX{Amount: *env.Amount}, nil
	case "shearY":
		if env.Amount == nil {
			return nil, fmt.Errorf("shearY op missing amount")
		}
		return ShearY{Amount: *env.Amount}, nil
	case "shearXByAngle":
		if env.Angle == nil {
			return nil, fmt.Errorf("shearXByAngle op missing angle")
		}
		return ShearXByAngle{Angle: *env.Angle}, nil
	case "shearYByAngle":
		if env.Angle == nil {
			return nil, fmt.Errorf("shearYByAngle op missing angle")
		}
		return ShearYByAngle{Angle: *env.Angle}, nil
	case "composition":
		ops := make([]Op, len(env.Ops))
		for i, child := range env.Ops {
			op, err := decodeOp(child)
			if err != nil {
				return nil, fmt.Errorf("composition op %d: %w", i, err)
			}
			ops[i] = op
		}
		return Composition{Name: env.Name, Ops: ops}, nil
	case "custom":
		if env.Matrix == nil {
			return nil, fmt.Errorf("custom op missing matrix")
		}
		return Custom{Name: env.Name, Transformation: *env.Matrix}, nil
	default:
		return nil, fmt.Errorf("unknown transform op type %q", env.Type)
	}
}

// MarshalOp encodes a single op as a tagged JSON envelope.
func MarshalOp(op Op) ([]byte, error) {
	return json.Marshal(encodeOp(op))
}

// UnmarshalOp decodes a single op from its tagged JSON envelope.
func UnmarshalOp(data []byte) (Op, error) {
	var env opEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	return decodeOp(env)
}

// MarshalJSON encodes the pipeline as an ordered array of op envelopes.
func (p Pipeline) MarshalJSON() ([]byte, error) {
	envs := make([]opEnvelope, len(p.Ops))
	for i, op := range p.Ops {
		envs[i] = encodeOp(op)
	}
	return json.Marshal(envs)
}

// UnmarshalJSON decodes the pipeline from an ordered array of op
// envelopes.
func (p *Pipeline) UnmarshalJSON(data []byte) error {
	var envs []opEnvelope
	if err := json.Unmarshal(data, &envs); err != nil {
		return err
	}
	ops := make([]Op, len(envs))
	for i, env := range envs {
		op, err := decodeOp(env)
		if err != nil {
			return fmt.Errorf("pipeline op %d: %w", i, err)
		}
		ops[i] = op
	}
	p.Ops = ops
	return nil
}
