package adapt

import (
	"github.com/nitzanshifris/cv2web/internal/normalize"
	"github.com/nitzanshifris/cv2web/internal/types"
)

// adaptCardHover builds the card-hover-effect component's props. Tags come
// from the normalizer's tag resolution (which already splits flat
// "React • Node" technology strings into ordered lists) and the link falls
// through the project/demo/github URL priority encoded in the field tables.
func (a *Adapter) adaptCardHover(_ types.ComponentType, contents []normalize.Content, _ any, _ string) map[string]any {
	cards := make([]any, 0, len(contents))
	for _, c := range contents {
		cards = append(cards, map[string]any{
			"title":       c.Primary,
			"description": c.Description,
			"tags":        c.Tags,
			"link":        c.URL,
		})
	}
	return map[string]any{"cards": cards}
}
