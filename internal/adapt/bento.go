package adapt

import (
	"github.com/nitzanshifris/cv2web/internal/normalize"
	"github.com/nitzanshifris/cv2web/internal/types"
)

// adaptBentoGrid builds the bento-grid component's props. A bento grid
// cannot render meaningfully below the minimum item count, so sparse input
// falls back to the wobble-card stack shape (`cards`, never `items`). This
// fallback is a hard contract the portfolio generator relies on.
func (a *Adapter) adaptBentoGrid(ct types.ComponentType, contents []normalize.Content, data any, section string) map[string]any {
	if len(contents) < a.minBentoItems {
		return a.adaptWobbleCard(ct, contents, data, section)
	}

	items := make([]any, 0, len(contents))
	for _, c := range contents {
		items = append(items, map[string]any{
			"title":       c.Primary,
			"description": firstNonEmpty(c.Description, c.JoinedTags()),
			"tags":        c.Tags,
		})
	}
	return map[string]any{"items": items}
}

// adaptWobbleCard builds the wobble-card stack shape, used both directly and
// as the bento grid's sparse-input fallback.
func (a *Adapter) adaptWobbleCard(_ types.ComponentType, contents []normalize.Content, _ any, _ string) map[string]any {
	cards := make([]any, 0, len(contents))
	for _, c := range contents {
		cards = append(cards, map[string]any{
			"title":       c.Primary,
			"description": firstNonEmpty(c.Description, c.JoinedTags(), c.Secondary),
		})
	}
	return map[string]any{"cards": cards}
}
