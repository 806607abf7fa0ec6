package selection

import (
	"github.com/nitzanshifris/cv2web/internal/layout"
	"github.com/nitzanshifris/cv2web/internal/types"
)

// Report is the analysis side-channel returned next to the selections.
// Everything in it is advisory metadata for the host (template tuning,
// debugging); the selections themselves are complete without it, and props
// never carry analysis keys that would need stripping.
type Report struct {
	Archetype types.UserArchetype `json:"archetype"`

	// SmartPath records whether the richness-scoring path ran. When it is
	// false Sections is empty.
	SmartPath bool `json:"smart_path"`

	// Sections holds per-section analysis, keyed by section name. Present
	// only on the smart path.
	Sections map[string]*SectionAnalysis `json:"sections,omitempty"`

	// Layout is the whole-CV layout recommendation.
	Layout LayoutRecommendation `json:"layout"`
}

// SectionAnalysis is the smart path's per-section verdict.
type SectionAnalysis struct {
	Richness      float64 `json:"richness"`
	ItemCount     int     `json:"item_count"`
	LayoutVariant string  `json:"layout_variant"`

	// MergeInto names the adjacent section this one should fold into when
	// it is too sparse to stand alone. Empty when no merge is suggested.
	MergeInto string `json:"merge_into,omitempty"`
}

// LayoutRecommendation is the global template-tuning hint.
type LayoutRecommendation struct {
	LayoutType layout.Type       `json:"layout_type"`
	Spacing    string            `json:"spacing"`
	Merges     map[string]string `json:"merges,omitempty"`
}

// Spacing hints, densest to airiest.
const (
	SpacingCompact     = "compact"
	SpacingComfortable = "comfortable"
	SpacingAiry        = "airy"
)
