package adapt

import (
	"github.com/nitzanshifris/cv2web/internal/normalize"
	"github.com/nitzanshifris/cv2web/internal/types"
)

// adaptTimeline builds the timeline component's props: one entry per item
// with title/subtitle/date plus the item's bullet list. Bullets live outside
// the normalizer's six standard fields (they come from responsibility-like
// keys on the raw item), so they are read through the metadata fallback.
func (a *Adapter) adaptTimeline(_ types.ComponentType, contents []normalize.Content, _ any, _ string) map[string]any {
	entries := make([]any, 0, len(contents))
	for _, c := range contents {
		bullets := normalize.Bullets(c.Raw())
		if bullets == nil {
			bullets = []string{}
		}
		entries = append(entries, map[string]any{
			"title":    c.Primary,
			"subtitle": c.Secondary,
			"date":     c.Tertiary,
			"bullets":  bullets,
		})
	}
	return map[string]any{"entries": entries}
}
