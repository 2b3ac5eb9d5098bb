package style

// LineShape describes how line and polyline ends are drawn.
type LineShape string

const (
	LineShapeSquare LineShape = "square"
	LineShapeRound  LineShape = "round"
	LineShapeBevel  LineShape = "bevel"
)

// CornerKind discriminates the corner shape variants.
type CornerKind string

const (
	CornerKindSquare CornerKind = "square"
	CornerKindRound  CornerKind = "round"
	CornerKindBevel  CornerKind = "bevel"
)

// CornerShape describes how square and rectangle corners are drawn.
// Radius and Resolution apply to round corners, BevelAmount to bevelled
// ones; the other fields are zero.
type CornerShape struct {
	Kind        CornerKind `json:"kind"`
	Radius      float64    `json:"radius,omitempty"`
	Resolution  uint32     `json:"resolution,omitempty"`
	BevelAmount float64    `json:"bevelAmount,omitempty"`
}

// SquareCorners returns sharp corners, the constructor default.
func SquareCorners() CornerShape {
	return CornerShape{Kind: CornerKindSquare}
}

// RoundCorners returns round corners with the given radius, approximated
// with resolution segments per corner.
func RoundCorners(radius float64, resolution uint32) CornerShape {
	return CornerShape{Kind: CornerKindRound, Radius: radius, Resolution: resolution}
}

// BevelCorners returns corners cut by the given amount.
func BevelCorners(amount float64) CornerShape {
	return CornerShape{Kind: CornerKindBevel, BevelAmount: amount}
}
