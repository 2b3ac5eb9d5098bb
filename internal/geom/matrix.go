package geom

// Matrix3 is a row-major 3x3 homogeneous matrix acting on column vectors
// [x, y, 1].
type Matrix3 [3][3]float64

// Matrix3x2 is the affine view of a Matrix3 with the homogeneous row
// dropped. Callers that only need the six affine coefficients use this.
type Matrix3x2 [2][3]float64

// Identity3 returns the identity matrix.
func Identity3() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Multiply folds two transforms into one. The result applies m first and
// then other, so pipelines accumulate with acc = acc.Multiply(next).
// Matrix multiplication is not commutative; callers must respect order.
func (m Matrix3) Multiply(other Matrix3) Matrix3 {
	var result Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			result[i][j] = m[0][j]*other[i][0] + m[1][j]*other[i][1] + m[2][j]*other[i][2]
		}
	}
	return result
}

// Apply transforms the homogeneous column vector [x, y, z].
func (m Matrix3) Apply(x, y, z float64) (float64, float64, float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2]*z,
		m[1][0]*x + m[1][1]*y + m[1][2]*z,
		m[2][0]*x + m[2][1]*y + m[2][2]*z
}

// ApplyPosition transforms an affine point through the matrix.
func (m Matrix3) ApplyPosition(p Position2D) Position2D {
	x, y, _ := m.Apply(p.X, p.Y, 1)
	return Position2D{X: x, Y: y}
}

// Determinant returns the determinant of the matrix.
func (m Matrix3) Determinant() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Invert returns the classical adjugate-over-determinant inverse. A zero
// determinant is not special-cased: the division produces ±Inf or NaN
// entries and callers must guard degenerate transforms themselves.
func (m Matrix3) Invert() Matrix3 {
	det := m.Determinant()
	return Matrix3{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) / det,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) / det,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) / det,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) / det,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) / det,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) / det,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) / det,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) / det,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) / det,
		},
	}
}

// As3x2 drops the homogeneous row.
func (m Matrix3) As3x2() Matrix3x2 {
	return Matrix3x2{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
	}
}

// AsMatrix3 restores the homogeneous row.
func (m Matrix3x2) AsMatrix3() Matrix3 {
	return Matrix3{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{0, 0, 1},
	}
}
