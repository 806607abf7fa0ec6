package selection

import (
	"math"

	"github.com/nitzanshifris/cv2web/internal/normalize"
	"github.com/nitzanshifris/cv2web/internal/types"
)

// Richness scoring weights and saturation points. A section maxes out the
// count component at fullItemCount items and the text component at
// fullTextChars average characters per item.
const (
	countWeight   = 0.6
	textWeight    = 0.4
	fullItemCount = 10.0
	fullTextChars = 300.0
)

// richnessScore combines item count and per-item text length into a 0.0–1.0
// content-density score.
func richnessScore(contents []normalize.Content) float64 {
	if len(contents) == 0 {
		return 0.0
	}

	countScore := math.Min(float64(len(contents))/fullItemCount, 1.0)

	totalChars := 0
	for _, c := range contents {
		totalChars += len(c.Primary) + len(c.Secondary) + len(c.Description) + len(c.JoinedTags())
	}
	avgChars := float64(totalChars) / float64(len(contents))
	textScore := math.Min(avgChars/fullTextChars, 1.0)

	return countWeight*countScore + textWeight*textScore
}

// mergeTargets maps a sparse section to the thematically adjacent section it
// should fold into instead of standing alone.
var mergeTargets = map[string]string{
	types.SectionLanguages:      types.SectionSkills,
	types.SectionCourses:        types.SectionEducation,
	types.SectionCertifications: types.SectionEducation,
	types.SectionVolunteer:      types.SectionExperience,
	types.SectionMemberships:    types.SectionAchievements,
	types.SectionSpeaking:       types.SectionPublications,
	types.SectionPatents:        types.SectionPublications,
	types.SectionHobbies:        types.SectionSummary,
}

// mergeTargetFor returns the merge destination for a sparse section, but
// only when that destination is itself populated; there is nothing to fold
// into otherwise.
func mergeTargetFor(section string, cv types.CVData) string {
	target, ok := mergeTargets[section]
	if !ok || !cv.Has(target) {
		return ""
	}
	return target
}

// isComplexSection reports whether a single section is content-heavy enough
// to force the smart selection path on its own: an experience section where
// every item carries a deep bullet list, or a skills section with many
// well-filled categories.
func (s *Selector) isComplexSection(section string, items []any, contents []normalize.Content) bool {
	switch section {
	case types.SectionExperience:
		if len(items) < s.cfg.ComplexExperienceItems {
			return false
		}
		for _, item := range items {
			if len(normalize.Bullets(item)) < s.cfg.ComplexExperienceBullets {
				return false
			}
		}
		return true
	case types.SectionSkills:
		if len(contents) < s.cfg.ComplexSkillCategories {
			return false
		}
		for _, c := range contents {
			if len(c.Tags) < s.cfg.ComplexSkillsPerCategory {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// layoutVariantFor translates a richness score into the layout variant hint
// recorded in the analysis report: dense sections prefer the wide layouts,
// sparse-but-present ones a compact list.
func (s *Selector) layoutVariantFor(score float64, itemCount int) string {
	switch {
	case score >= s.cfg.HighRichness:
		if itemCount > s.layout.GridMax {
			return "carousel"
		}
		return "grid"
	case score < s.cfg.LowRichness:
		return "compact-list"
	default:
		return "standard"
	}
}
