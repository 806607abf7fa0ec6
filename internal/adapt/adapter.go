// Package adapt reshapes normalized CV content into the exact prop contract
// of each portfolio UI component.
package adapt

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nitzanshifris/cv2web/internal/layout"
	"github.com/nitzanshifris/cv2web/internal/normalize"
	"github.com/nitzanshifris/cv2web/internal/types"
)

// defaultMinBentoItems is the smallest item count a bento grid renders
// without collapsing into the wobble-card stack.
const defaultMinBentoItems = 3

// Error represents a contract violation by the caller (malformed content
// never produces one; adapters degrade silently instead).
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Config holds adapter construction parameters. Zero values fall back to
// production defaults.
type Config struct {
	Layout        layout.Policy
	MinBentoItems int
	Logger        zerolog.Logger
}

// handlerFunc builds one component's props from normalized content. data is
// the original argument for handlers (text effects) that read it directly.
type handlerFunc func(ct types.ComponentType, contents []normalize.Content, data any, section string) map[string]any

// handler pairs a prop builder with whether its output participates in
// carousel wrapping (list-based components do, single-string ones do not).
type handler struct {
	fn       handlerFunc
	carousel bool
}

// Adapter dispatches component types to their prop builders. Construct with
// New; instances are immutable after construction and safe for concurrent
// use.
type Adapter struct {
	layout        layout.Policy
	minBentoItems int
	log           zerolog.Logger
	handlers      map[types.ComponentType]handler
}

// New builds an Adapter with its handler table. The table is fixed at
// construction so unknown component types are an explicit fallback path, not
// a silent map miss discovered at render time.
func New(cfg Config) *Adapter {
	if cfg.Layout == (layout.Policy{}) {
		cfg.Layout = layout.DefaultPolicy()
	}
	if cfg.MinBentoItems <= 0 {
		cfg.MinBentoItems = defaultMinBentoItems
	}

	a := &Adapter{
		layout:        cfg.Layout,
		minBentoItems: cfg.MinBentoItems,
		log:           cfg.Logger,
	}
	a.handlers = map[types.ComponentType]handler{
		types.ComponentTimeline:     {fn: a.adaptTimeline, carousel: true},
		types.ComponentBentoGrid:    {fn: a.adaptBentoGrid, carousel: true},
		types.ComponentCardHover:    {fn: a.adaptCardHover, carousel: true},
		types.ComponentFloatingDock: {fn: a.adaptFloatingDock, carousel: true},
		types.ComponentTestimonials: {fn: a.adaptTestimonials, carousel: true},
		types.ComponentWobbleCard:   {fn: a.adaptWobbleCard, carousel: true},
		types.ComponentTextGenerate: {fn: a.adaptTextGenerate, carousel: false},
		types.ComponentContentList:  {fn: a.adaptContentList, carousel: true},
	}
	return a
}

// Adapt builds the props for one component from raw section data. data may
// be a single object, a list, or a bare string; anything else is a contract
// violation and the only way Adapt returns an error. Content-level problems
// (missing fields, empty items, unknown component types) degrade silently:
// the result is always a complete props mapping for some component.
func (a *Adapter) Adapt(ct types.ComponentType, data any, section string) (map[string]any, error) {
	items, err := coerceItems(data)
	if err != nil {
		return nil, err
	}

	contents := usableContents(items, section)

	h, known := a.handlers[ct]
	if !known {
		a.log.Warn().
			Str("component", string(ct)).
			Str("section", section).
			Msg("no adapter for component type, using generic fallback")
		h = a.handlers[types.ComponentContentList]
	}

	props := h.fn(ct, contents, data, section)
	if h.carousel && a.layout.NeedsCarousel(len(contents)) {
		props = a.wrapCarousel(ct, props, len(contents))
	}
	return props, nil
}

// wrapCarousel nests computed props inside a carousel container record. The
// original prop fields are preserved alongside the container fields so the
// generator can unwrap without a second adapter pass.
func (a *Adapter) wrapCarousel(ct types.ComponentType, props map[string]any, itemCount int) map[string]any {
	wrapped := map[string]any{
		"type":         "carousel",
		"component":    string(ct),
		"slidesToShow": a.layout.SlidesToShow(itemCount),
	}
	for k, v := range props {
		wrapped[k] = v
	}
	return wrapped
}

// coerceItems converts the adapter's data argument into an item list.
// Accepted shapes are a mapping (one item), a list, or a bare string;
// typed slices are tolerated for test convenience. Anything else is a
// programming error in the host service and fails loudly.
func coerceItems(data any) ([]any, error) {
	switch v := data.(type) {
	case map[string]any:
		return []any{v}, nil
	case []any:
		return v, nil
	case string:
		return []any{v}, nil
	case []map[string]any:
		items := make([]any, len(v))
		for i, m := range v {
			items[i] = m
		}
		return items, nil
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return items, nil
	default:
		return nil, &Error{Message: fmt.Sprintf("adapter data must be an object, list, or string, got %T", data)}
	}
}

// usableContents normalizes items and drops the ones where nothing resolved;
// a fully-empty item cannot contribute to any prop shape.
func usableContents(items []any, section string) []normalize.Content {
	contents := make([]normalize.Content, 0, len(items))
	for _, c := range normalize.NormalizeAll(items, section) {
		if !c.IsEmpty() {
			contents = append(contents, c)
		}
	}
	return contents
}

// firstNonEmpty returns the first non-empty string among the arguments.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
