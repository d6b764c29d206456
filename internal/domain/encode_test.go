package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkerRadius(t *testing.T) {
	t.Run("nil magnitude gets the minimum radius", func(t *testing.T) {
		assert.Equal(t, 4.0, MarkerRadius(nil))
	})

	t.Run("small magnitudes are floored at the minimum", func(t *testing.T) {
		assert.Equal(t, 4.0, MarkerRadius(ptr(0.5)))
		assert.Equal(t, 4.0, MarkerRadius(ptr(-1.2)))
	})

	t.Run("magnitude 2.8 doubles relative to the floor", func(t *testing.T) {
		// 2^(2.8/1.4) = 4, the boundary where growth takes over.
		assert.InEpsilon(t, 4.0, MarkerRadius(ptr(2.8)), 1e-9)
		assert.InEpsilon(t, 8.0, MarkerRadius(ptr(4.2)), 1e-9)
	})

	t.Run("non-decreasing in magnitude", func(t *testing.T) {
		prev := MarkerRadius(ptr(-2))
		for m := -2.0; m <= 9.0; m += 0.1 {
			r := MarkerRadius(ptr(m))
			assert.GreaterOrEqual(t, r, prev, "magnitude %v", m)
			assert.GreaterOrEqual(t, r, 4.0)
			prev = r
		}
	})

	t.Run("matches the exponential mapping above the floor", func(t *testing.T) {
		assert.InEpsilon(t, math.Exp2(6.0/1.4), MarkerRadius(ptr(6.0)), 1e-9)
	})
}

func TestColorBucket(t *testing.T) {
	tests := []struct {
		name      string
		magnitude *float64
		expected  string
	}{
		{"nil magnitude", nil, ColorUnknown},
		{"negative", ptr(-0.5), "#ffffb2"},
		{"below one", ptr(0.9), "#ffffb2"},
		{"exactly one", ptr(1.0), "#fed976"},
		{"between one and two", ptr(1.9), "#fed976"},
		{"exactly two", ptr(2.0), "#feb24c"},
		{"exactly three", ptr(3.0), "#fd8d3c"},
		{"exactly four", ptr(4.0), "#f03b20"},
		{"exactly five", ptr(5.0), "#bd0026"},
		{"large magnitude", ptr(9.5), "#bd0026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ColorBucket(tt.magnitude))
		})
	}
}

func TestColorBucket_TotalOverRealLine(t *testing.T) {
	// Every magnitude lands in exactly one of the six buckets.
	seen := map[string]bool{}
	for m := -5.0; m <= 12.0; m += 0.05 {
		token := ColorBucket(ptr(m))
		assert.NotEmpty(t, token)
		assert.NotEqual(t, ColorUnknown, token)
		seen[token] = true
	}
	assert.Len(t, seen, 6)
}
