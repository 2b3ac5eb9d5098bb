package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func requireMatrixInDelta(t *testing.T, expected, actual Matrix3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.InDelta(t, expected[i][j], actual[i][j], tolerance, "entry (%d,%d)", i, j)
		}
	}
}

func TestMultiply(t *testing.T) {
	a := Matrix3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	b := Matrix3{{10, 11, 12}, {13, 14, 15}, {16, 17, 18}}

	want := Matrix3{{138, 171, 204}, {174, 216, 258}, {210, 261, 312}}
	requireMatrixInDelta(t, want, a.Multiply(b))
}

func TestMultiplyIdentity(t *testing.T) {
	m := Matrix3{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}}
	requireMatrixInDelta(t, m, m.Multiply(Identity3()))
	requireMatrixInDelta(t, m, Identity3().Multiply(m))
}

func TestDeterminant(t *testing.T) {
	m := Matrix3{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}}
	require.InDelta(t, 4.0, m.Determinant(), tolerance)

	require.InDelta(t, 1.0, Identity3().Determinant(), tolerance)
}

func TestInvert(t *testing.T) {
	m := Matrix3{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}}

	want := Matrix3{{0.75, 0.5, 0.25}, {0.5, 1.0, 0.5}, {0.25, 0.5, 0.75}}
	requireMatrixInDelta(t, want, m.Invert())

	requireMatrixInDelta(t, Identity3(), m.Multiply(m.Invert()))
}

func TestInvertSingularPropagatesNonFinite(t *testing.T) {
	singular := Matrix3{{1, 2, 3}, {2, 4, 6}, {0, 0, 1}}
	require.InDelta(t, 0.0, singular.Determinant(), tolerance)

	inverse := singular.Invert()
	finite := true
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.IsNaN(inverse[i][j]) || math.IsInf(inverse[i][j], 0) {
				finite = false
			}
		}
	}
	assert.False(t, finite, "inverse of a singular matrix must contain NaN or Inf entries")
}

func TestApplyPosition(t *testing.T) {
	translate := Matrix3{{1, 0, 5}, {0, 1, -3}, {0, 0, 1}}
	p := translate.ApplyPosition(Pos(1, 2))
	require.InDelta(t, 6.0, p.X, tolerance)
	require.InDelta(t, -1.0, p.Y, tolerance)
}

func TestMatrix3x2RoundTrip(t *testing.T) {
	m := Matrix3{{2, -1, 4}, {-1, 2, -7}, {0, 0, 1}}
	requireMatrixInDelta(t, m, m.As3x2().AsMatrix3())
}
