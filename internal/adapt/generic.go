package adapt

import (
	"github.com/nitzanshifris/cv2web/internal/normalize"
	"github.com/nitzanshifris/cv2web/internal/types"
)

// adaptContentList builds the generic list shape. It doubles as the
// fallback for component types without a dedicated handler, which is why the
// emitted props echo the originally requested component name: every
// conceivable component type gets some valid, non-crashing output.
func (a *Adapter) adaptContentList(ct types.ComponentType, contents []normalize.Content, _ any, _ string) map[string]any {
	items := make([]any, 0, len(contents))
	for _, c := range contents {
		items = append(items, map[string]any{
			"title":       c.Primary,
			"subtitle":    c.Secondary,
			"description": c.Description,
			"tags":        c.Tags,
		})
	}
	return map[string]any{
		"items":     items,
		"component": string(ct),
		"layout":    "row",
	}
}
