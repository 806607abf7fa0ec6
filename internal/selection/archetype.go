package selection

import (
	"strings"

	"github.com/nitzanshifris/cv2web/internal/normalize"
	"github.com/nitzanshifris/cv2web/internal/types"
)

// Default archetype keyword tables. These are tunable vocabulary, not a
// fixed algorithm: the detection rules only care about hit counts.
var (
	defaultCreativeKeywords = []string{
		"design", "designer", "creative", "art", "artist", "illustration",
		"photography", "photographer", "branding", "brand", "ui", "ux",
		"typography", "animation", "motion", "visual", "portfolio",
		"figma", "sketch", "adobe",
	}
	defaultTechnicalKeywords = []string{
		"engineer", "engineering", "developer", "software", "programming",
		"backend", "frontend", "fullstack", "full-stack", "devops", "cloud",
		"kubernetes", "docker", "api", "database", "sql", "python", "java",
		"golang", "javascript", "typescript", "react", "node", "aws",
		"machine learning", "data",
	}
)

// defaultMinKeywordHits is how many distinct keyword matches a vocabulary
// needs before it counts as "heavy" usage of that vocabulary.
const defaultMinKeywordHits = 2

// detectArchetype classifies the CV owner with a deterministic rule table:
//   - projects populated and creative vocabulary at least as heavy as
//     technical → creative
//   - technical vocabulary heavy → technical
//   - otherwise → general
//
// Only the identity- and capability-bearing sections contribute text, so a
// long job history alone cannot flip the classification.
func (s *Selector) detectArchetype(cv types.CVData) types.UserArchetype {
	text := archetypeText(cv)

	creativeHits := countKeywordHits(text, s.cfg.CreativeKeywords)
	technicalHits := countKeywordHits(text, s.cfg.TechnicalKeywords)

	if cv.Has(types.SectionProjects) &&
		creativeHits >= s.cfg.MinKeywordHits &&
		creativeHits >= technicalHits {
		return types.ArchetypeCreative
	}
	if technicalHits >= s.cfg.MinKeywordHits {
		return types.ArchetypeTechnical
	}
	return types.ArchetypeGeneral
}

// archetypeSections are the sections whose text feeds archetype detection.
var archetypeSections = []string{
	types.SectionHero,
	types.SectionSummary,
	types.SectionSkills,
	types.SectionProjects,
}

// archetypeText collects the lowercased text of the detection sections.
func archetypeText(cv types.CVData) string {
	var sb strings.Builder
	for _, section := range archetypeSections {
		for _, c := range normalize.NormalizeAll(cv.SectionItems(section), section) {
			sb.WriteString(c.Primary)
			sb.WriteString(" ")
			sb.WriteString(c.Secondary)
			sb.WriteString(" ")
			sb.WriteString(c.Description)
			sb.WriteString(" ")
			sb.WriteString(c.JoinedTags())
			sb.WriteString(" ")
		}
	}
	return strings.ToLower(sb.String())
}

// countKeywordHits counts how many distinct keywords occur in the text.
// Distinct keywords (not total occurrences) keep one repeated buzzword from
// dominating the classification.
func countKeywordHits(text string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			hits++
		}
	}
	return hits
}
