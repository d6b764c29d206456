package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func testQuakes() []Quake {
	return []Quake{
		{ID: "a", Magnitude: ptr(5.2)},
		{ID: "b", Magnitude: ptr(1.0)},
		{ID: "c", Magnitude: nil},
	}
}

func TestFilterByMagnitude(t *testing.T) {
	t.Run("zero threshold keeps everything", func(t *testing.T) {
		filtered := FilterByMagnitude(testQuakes(), 0)
		require.Len(t, filtered, 3)
		assert.Equal(t, "a", filtered[0].ID)
		assert.Equal(t, "b", filtered[1].ID)
		assert.Equal(t, "c", filtered[2].ID)
	})

	t.Run("threshold 2 keeps only the 5.2 quake", func(t *testing.T) {
		filtered := FilterByMagnitude(testQuakes(), 2)
		require.Len(t, filtered, 1)
		assert.Equal(t, "a", filtered[0].ID)
	})

	t.Run("nil magnitude hidden at any positive threshold", func(t *testing.T) {
		filtered := FilterByMagnitude(testQuakes(), 0.1)
		require.Len(t, filtered, 2)
		for _, q := range filtered {
			assert.NotEqual(t, "c", q.ID)
		}
	})

	t.Run("increasing threshold never grows the subset", func(t *testing.T) {
		quakes := testQuakes()
		prev := len(quakes)
		for threshold := 0.0; threshold <= 6.0; threshold += 0.5 {
			n := len(FilterByMagnitude(quakes, threshold))
			assert.LessOrEqual(t, n, prev, "threshold %v", threshold)
			prev = n
		}
	})

	t.Run("input is not modified", func(t *testing.T) {
		quakes := testQuakes()
		_ = FilterByMagnitude(quakes, 2)
		assert.Equal(t, "a", quakes[0].ID)
		assert.Len(t, quakes, 3)
	})
}

func TestSortByMagnitudeDesc(t *testing.T) {
	t.Run("descending with nil last", func(t *testing.T) {
		sorted := SortByMagnitudeDesc([]Quake{
			{ID: "small", Magnitude: ptr(1.0)},
			{ID: "unmeasured", Magnitude: nil},
			{ID: "big", Magnitude: ptr(5.2)},
		})
		require.Len(t, sorted, 3)
		assert.Equal(t, "big", sorted[0].ID)
		assert.Equal(t, "small", sorted[1].ID)
		assert.Equal(t, "unmeasured", sorted[2].ID)
	})

	t.Run("adjacent pairs are non-increasing", func(t *testing.T) {
		sorted := SortByMagnitudeDesc([]Quake{
			{Magnitude: ptr(2.3)}, {Magnitude: nil}, {Magnitude: ptr(4.1)},
			{Magnitude: ptr(0.2)}, {Magnitude: ptr(4.1)}, {Magnitude: ptr(-0.3)},
		})
		for i := 1; i < len(sorted); i++ {
			assert.GreaterOrEqual(t,
				EffectiveMagnitude(sorted[i-1]), EffectiveMagnitude(sorted[i]))
		}
	})

	t.Run("ties keep feed order", func(t *testing.T) {
		sorted := SortByMagnitudeDesc([]Quake{
			{ID: "first", Magnitude: ptr(3.0)},
			{ID: "second", Magnitude: ptr(3.0)},
			{ID: "third", Magnitude: ptr(3.0)},
		})
		assert.Equal(t, "first", sorted[0].ID)
		assert.Equal(t, "second", sorted[1].ID)
		assert.Equal(t, "third", sorted[2].ID)
	})

	t.Run("input is not reordered", func(t *testing.T) {
		quakes := []Quake{{ID: "b", Magnitude: ptr(1.0)}, {ID: "a", Magnitude: ptr(5.0)}}
		_ = SortByMagnitudeDesc(quakes)
		assert.Equal(t, "b", quakes[0].ID)
	})
}

func TestClampThreshold(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{"below range", -1, 0},
		{"lower bound", 0, 0},
		{"in range", 2.5, 2.5},
		{"upper bound", 6, 6},
		{"above range", 9.5, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampThreshold(tt.in))
		})
	}
}
