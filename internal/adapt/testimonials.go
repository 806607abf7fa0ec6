package adapt

import (
	"github.com/nitzanshifris/cv2web/internal/normalize"
	"github.com/nitzanshifris/cv2web/internal/types"
)

// adaptTestimonials builds the animated-testimonials component's props,
// recasting achievement-like items as quote cards: the description becomes
// the quote, the headline the name, the org/context the designation.
func (a *Adapter) adaptTestimonials(_ types.ComponentType, contents []normalize.Content, _ any, _ string) map[string]any {
	testimonials := make([]any, 0, len(contents))
	for _, c := range contents {
		testimonials = append(testimonials, map[string]any{
			"quote":       firstNonEmpty(c.Description, c.Primary),
			"name":        c.Primary,
			"designation": firstNonEmpty(c.Secondary, c.Tertiary),
		})
	}
	return map[string]any{"testimonials": testimonials}
}
