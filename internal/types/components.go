package types

// ComponentType identifies a UI component from the fixed portfolio catalog.
// Using a typed string keeps selections JSON-friendly while the parse
// function below guarantees that unknown names are surfaced explicitly
// instead of flowing through as silently "valid" strings.
type ComponentType string

// The portfolio component catalog.
const (
	ComponentTimeline     ComponentType = "timeline"
	ComponentBentoGrid    ComponentType = "bento-grid"
	ComponentCardHover    ComponentType = "card-hover-effect"
	ComponentFloatingDock ComponentType = "floating-dock"
	ComponentTestimonials ComponentType = "animated-testimonials"
	ComponentTextGenerate ComponentType = "text-generate-effect"
	ComponentWobbleCard   ComponentType = "wobble-card"
	ComponentContentList  ComponentType = "content-list"
)

// componentImportPaths maps each catalog component to the template import
// path the portfolio generator injects into the rendered site.
var componentImportPaths = map[ComponentType]string{
	ComponentTimeline:     "@/components/ui/timeline",
	ComponentBentoGrid:    "@/components/ui/bento-grid",
	ComponentCardHover:    "@/components/ui/card-hover-effect",
	ComponentFloatingDock: "@/components/ui/floating-dock",
	ComponentTestimonials: "@/components/ui/animated-testimonials",
	ComponentTextGenerate: "@/components/ui/text-generate-effect",
	ComponentWobbleCard:   "@/components/ui/wobble-card",
	ComponentContentList:  "@/components/ui/content-list",
}

// ParseComponentType resolves a component name from the catalog. Unknown
// names return (ComponentContentList, false) so every possible input maps to
// a component with a working adapter; the caller decides whether to log the
// mismatch.
func ParseComponentType(name string) (ComponentType, bool) {
	ct := ComponentType(name)
	if _, ok := componentImportPaths[ct]; ok {
		return ct, true
	}
	return ComponentContentList, false
}

// ImportPath returns the generator-facing import path for the component.
// Unknown components resolve to the generic content-list path.
func (ct ComponentType) ImportPath() string {
	if path, ok := componentImportPaths[ct]; ok {
		return path
	}
	return componentImportPaths[ComponentContentList]
}

// UserArchetype classifies the CV owner for component-choice biasing. It is
// derived once per CV from section presence and vocabulary, never from ML.
type UserArchetype string

// Recognized archetypes.
const (
	ArchetypeCreative  UserArchetype = "creative"
	ArchetypeTechnical UserArchetype = "technical"
	ArchetypeGeneral   UserArchetype = "general"
)

// ParseArchetype resolves an archetype name, defaulting to general for
// anything unrecognized (including the empty string).
func ParseArchetype(name string) UserArchetype {
	switch UserArchetype(name) {
	case ArchetypeCreative:
		return ArchetypeCreative
	case ArchetypeTechnical:
		return ArchetypeTechnical
	default:
		return ArchetypeGeneral
	}
}

// ComponentSelection binds one CV section to the component that will render
// it, with fully-formed props ready for template injection. Selections are
// immutable once built; analysis metadata travels beside them in the
// selection report, never inside Props.
type ComponentSelection struct {
	Section       string         `json:"section"`
	ComponentType ComponentType  `json:"component_type"`
	ImportPath    string         `json:"import_path"`
	Props         map[string]any `json:"props"`
	Priority      int            `json:"priority"`
}
