package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio_KnownValues(t *testing.T) {
	assert.Equal(t, 1.0, Ratio(19))
	assert.Equal(t, 0.25, Ratio(17))
	assert.Equal(t, 2.0, Ratio(20))
	assert.Equal(t, 1.0/16, Ratio(15))
}

func TestRatio_DoublesPerLevel(t *testing.T) {
	for z := 0.0; z <= 22; z += 0.5 {
		assert.Equal(t, 2*Ratio(z), Ratio(z+1), "zoom %v", z)
	}
}

func TestRatio_Monotonic(t *testing.T) {
	prev := Ratio(0)
	for z := 0.25; z <= 22; z += 0.25 {
		cur := Ratio(z)
		assert.Less(t, prev, cur, "zoom %v", z)
		prev = cur
	}
}

func TestLabelsVisible_Cutoff(t *testing.T) {
	assert.False(t, LabelsVisible(15))
	assert.False(t, LabelsVisible(12))
	assert.True(t, LabelsVisible(15.5))
	assert.True(t, LabelsVisible(19))
}

func TestFor_ScalesSizes(t *testing.T) {
	s := For(17)
	assert.Equal(t, 0.25, s.Ratio)
	assert.Equal(t, 3.0, s.FontSize)
	assert.Equal(t, 1.0, s.Padding)
	assert.Equal(t, 1.0, s.BorderRadius)
	assert.Equal(t, 0.5, s.StrokeWidth)
	assert.Equal(t, MinIconSize, s.IconSize)
	assert.True(t, s.Compact)
	assert.True(t, s.LabelsVisible)

	base := For(19)
	assert.Equal(t, Base, base.Sizes)
	assert.False(t, base.Compact)

	hidden := For(15)
	assert.False(t, hidden.LabelsVisible)
}
