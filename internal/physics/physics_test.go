package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNear(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		want           bool
	}{
		{"same point", 0, 0, 0, 0, true},
		{"bullet under asteroid", 2, 1, 2.1, 1.2, true},
		{"exactly on x edge", 0, 0, 0.5, 0, false},
		{"inside x outside y", 0, 0, 0.1, 0.6, false},
		{"negative side", -3, -3.5, -3.4, -3.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Near(tt.x1, tt.y1, tt.x2, tt.y2, 0.5, 0.5))
			assert.Equal(t, tt.want, Near(tt.x2, tt.y2, tt.x1, tt.y1, 0.5, 0.5), "symmetric")
		})
	}
}

func TestWithin(t *testing.T) {
	assert.True(t, Within(0, -3, 6))
	assert.False(t, Within(-3, -3, 6))
	assert.False(t, Within(6, -3, 6))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 4.0, Clamp(4.5, -4, 4))
	assert.Equal(t, -4.0, Clamp(-10, -4, 4))
	assert.Equal(t, 1.5, Clamp(1.5, -4, 4))
	assert.Equal(t, -4.0, Clamp(math.NaN(), -4, 4))
}

func TestEase(t *testing.T) {
	assert.InDelta(t, 0.15, Ease(0, 1, 0.15), 1e-12)

	x := 0.0
	for i := 0; i < 200; i++ {
		x = Ease(x, 4, 0.15)
	}
	assert.InDelta(t, 4.0, x, 1e-9)
}
