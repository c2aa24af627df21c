package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2D_Operations(t *testing.T) {
	a := Vector2D{X: 3, Y: 4}
	b := Vector2D{X: 1, Y: -2}

	assert.Equal(t, Vector2D{X: 4, Y: 2}, a.Add(b))
	assert.Equal(t, Vector2D{X: 2, Y: 6}, a.Sub(b))
	assert.Equal(t, Vector2D{X: 6, Y: 8}, a.Mul(2))
	assert.InDelta(t, 5.0, a.Mag(), 1e-12)
	assert.InDelta(t, 6.324555, a.Dist(b), 1e-6)
}

func TestVector2D_Limit(t *testing.T) {
	v := Vector2D{X: 3000, Y: 4000} // magnitude 5000

	capped := v.Limit(1000)
	assert.InDelta(t, 1000.0, capped.Mag(), 1e-9)
	// Direction preserved.
	assert.InDelta(t, v.Y/v.X, capped.Y/capped.X, 1e-9)

	// Under the cap the vector is untouched.
	assert.Equal(t, v, v.Limit(10000))
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name        string
		v, min, max int
		want        int
	}{
		{"inside", 5, 0, 10, 5},
		{"below", -5, 0, 10, 0},
		{"above", 15, 0, 10, 10},
		{"collapsed range", 5, 10, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.v, tt.min, tt.max))
		})
	}
}

func TestClampF(t *testing.T) {
	assert.Equal(t, 2.5, ClampF(2.5, 1, 4))
	assert.Equal(t, 1.0, ClampF(0.2, 1, 4))
	assert.Equal(t, 4.0, ClampF(9, 1, 4))
	// min above max collapses to min, matching Clamp.
	assert.Equal(t, 2.0, ClampF(1.5, 2, 1))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 0.0, Lerp(0, 100, 0))
	assert.Equal(t, 50.0, Lerp(0, 100, 0.5))
	assert.Equal(t, 100.0, Lerp(0, 100, 1))
	assert.Equal(t, -20.0, Lerp(0, -40, 0.5))
}
