package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name      string
		itemCount int
		expected  Type
	}{
		{name: "zero items", itemCount: 0, expected: Row},
		{name: "single item", itemCount: 1, expected: Row},
		{name: "row upper bound", itemCount: 3, expected: Row},
		{name: "grid lower bound", itemCount: 4, expected: Grid},
		{name: "grid upper bound", itemCount: 9, expected: Grid},
		{name: "carousel lower bound", itemCount: 10, expected: Carousel},
		{name: "large count", itemCount: 50, expected: Carousel},
		{name: "negative behaves like zero", itemCount: -1, expected: Row},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, policy.Decide(tt.itemCount))
		})
	}
}

func TestNeedsCarousel(t *testing.T) {
	policy := DefaultPolicy()

	assert.False(t, policy.NeedsCarousel(9))
	assert.True(t, policy.NeedsCarousel(10))
}

func TestSlidesToShow(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name      string
		itemCount int
		expected  int
	}{
		{name: "small carousel", itemCount: 10, expected: 3},
		{name: "just below wide threshold", itemCount: 14, expected: 3},
		{name: "wide threshold", itemCount: 15, expected: 4},
		{name: "well past threshold", itemCount: 40, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, policy.SlidesToShow(tt.itemCount))
		})
	}
}

func TestCustomPolicy(t *testing.T) {
	policy := Policy{RowMax: 2, GridMax: 5, Slides: 2, WideSlides: 3, WideThreshold: 8}

	assert.Equal(t, Row, policy.Decide(2))
	assert.Equal(t, Grid, policy.Decide(3))
	assert.Equal(t, Carousel, policy.Decide(6))
	assert.Equal(t, 2, policy.SlidesToShow(6))
	assert.Equal(t, 3, policy.SlidesToShow(8))
}
