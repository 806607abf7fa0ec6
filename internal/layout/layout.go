// Package layout provides the density policy that maps item counts to
// layout classes for rendered portfolio sections.
package layout

// Type is a layout class for a rendered section.
type Type string

// Layout classes, from sparsest to densest.
const (
	Row      Type = "row"
	Grid     Type = "grid"
	Carousel Type = "carousel"
)

// Default thresholds. These mirror the production template's breakpoints;
// they are carried on Policy so a host can tune them, but the defaults are
// the behavioral contract.
const (
	defaultRowMax        = 3
	defaultGridMax       = 9
	defaultSlides        = 3
	defaultWideSlides    = 4
	defaultWideThreshold = 15
)

// Policy decides layout classes from item counts. The zero value is not
// usable; construct with DefaultPolicy and override fields as needed.
type Policy struct {
	// RowMax is the largest item count rendered as a single row.
	RowMax int
	// GridMax is the largest item count rendered as a grid; anything
	// larger becomes a carousel.
	GridMax int
	// Slides is the carousel page size, and WideSlides the page size once
	// the item count reaches WideThreshold.
	Slides        int
	WideSlides    int
	WideThreshold int
}

// DefaultPolicy returns the production thresholds: rows up to 3 items,
// grids up to 9, carousels from 10.
func DefaultPolicy() Policy {
	return Policy{
		RowMax:        defaultRowMax,
		GridMax:       defaultGridMax,
		Slides:        defaultSlides,
		WideSlides:    defaultWideSlides,
		WideThreshold: defaultWideThreshold,
	}
}

// Decide maps an item count to its layout class. Pure and total; negative
// counts behave like zero.
func (p Policy) Decide(itemCount int) Type {
	switch {
	case itemCount <= p.RowMax:
		return Row
	case itemCount <= p.GridMax:
		return Grid
	default:
		return Carousel
	}
}

// NeedsCarousel reports whether an item count is past the grid limit and the
// adapter must wrap its props in a carousel container.
func (p Policy) NeedsCarousel(itemCount int) bool {
	return itemCount > p.GridMax
}

// SlidesToShow returns the carousel page size for an item count.
func (p Policy) SlidesToShow(itemCount int) int {
	if itemCount >= p.WideThreshold {
		return p.WideSlides
	}
	return p.Slides
}
