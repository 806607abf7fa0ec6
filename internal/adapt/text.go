package adapt

import (
	"strings"

	"github.com/nitzanshifris/cv2web/internal/normalize"
	"github.com/nitzanshifris/cv2web/internal/types"
)

// Text effect rendering defaults.
const (
	defaultTextClassName = "font-normal"
	defaultTextDuration  = 0.5
)

// adaptTextGenerate builds the text-generate-effect component's props. The
// natural input is a bare string; structured input collapses to its best
// single string (description first, then headline) so the component always
// has words to animate.
func (a *Adapter) adaptTextGenerate(_ types.ComponentType, contents []normalize.Content, data any, _ string) map[string]any {
	words := ""
	if s, ok := data.(string); ok {
		words = strings.TrimSpace(s)
	} else {
		for _, c := range contents {
			if words = firstNonEmpty(c.Description, c.Primary); words != "" {
				break
			}
		}
	}
	return map[string]any{
		"words":     words,
		"className": defaultTextClassName,
		"duration":  defaultTextDuration,
	}
}
