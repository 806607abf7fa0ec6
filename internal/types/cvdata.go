// Package types provides type definitions for structured CV data and
// component selections used throughout the cv2web system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
)

// Known CV section names. The LLM-extraction collaborator emits these as
// top-level keys of the CV data object; any of them may be absent.
const (
	SectionHero           = "hero"
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionAchievements   = "achievements"
	SectionVolunteer      = "volunteer"
	SectionLanguages      = "languages"
	SectionContact        = "contact"
	SectionCourses        = "courses"
	SectionHobbies        = "hobbies"
	SectionPublications   = "publications"
	SectionSpeaking       = "speaking"
	SectionPatents        = "patents"
	SectionMemberships    = "memberships"
)

// KnownSections lists every section name the system understands, in
// canonical document order. Iteration over a CV always follows this order so
// that output is deterministic regardless of JSON map ordering.
var KnownSections = []string{
	SectionHero,
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCertifications,
	SectionAchievements,
	SectionVolunteer,
	SectionLanguages,
	SectionContact,
	SectionCourses,
	SectionHobbies,
	SectionPublications,
	SectionSpeaking,
	SectionPatents,
	SectionMemberships,
}

// sectionItemKeys maps a section name to the ordered list of keys under
// which that section's structured object may carry its item list. The
// extraction collaborator prefers the first form (e.g. "experienceItems")
// but older payloads use looser names.
var sectionItemKeys = map[string][]string{
	SectionExperience:     {"experienceItems", "experiences", "positions", "items"},
	SectionEducation:      {"educationItems", "degrees", "items"},
	SectionSkills:         {"skillCategories", "skillItems", "categories", "items"},
	SectionProjects:       {"projectItems", "projects", "items"},
	SectionCertifications: {"certificationItems", "certifications", "items"},
	SectionAchievements:   {"achievementItems", "achievements", "awards", "items"},
	SectionVolunteer:      {"volunteerItems", "volunteering", "items"},
	SectionLanguages:      {"languageItems", "languages", "items"},
	SectionContact:        {"contactItems", "channels", "links", "items"},
	SectionCourses:        {"courseItems", "courses", "items"},
	SectionHobbies:        {"hobbyItems", "hobbies", "interests", "items"},
	SectionPublications:   {"publicationItems", "publications", "items"},
	SectionSpeaking:       {"speakingItems", "talks", "engagements", "items"},
	SectionPatents:        {"patentItems", "patents", "items"},
	SectionMemberships:    {"membershipItems", "memberships", "affiliations", "items"},
	SectionHero:           {"items"},
	SectionSummary:        {"items"},
}

// CVData is the structured CV record produced by the extraction
// collaborator. It is deliberately map-backed: a section value may be a
// structured object (usually carrying an item list), a bare list, or a bare
// string, and schema versions are not validated here. A nil CVData behaves
// like an empty one.
type CVData map[string]any

// Section returns the raw value for a section and whether it is populated.
// Null values, empty strings, and empty collections all count as absent.
func (cv CVData) Section(name string) (any, bool) {
	if cv == nil {
		return nil, false
	}
	v, ok := cv[name]
	if !ok || isEmptyValue(v) {
		return nil, false
	}
	return v, true
}

// Has reports whether a section is populated with a non-empty value.
func (cv CVData) Has(name string) bool {
	_, ok := cv.Section(name)
	return ok
}

// PopulatedSections returns the known sections that carry a non-empty value,
// in canonical order. Unknown top-level keys are ignored.
func (cv CVData) PopulatedSections() []string {
	sections := make([]string, 0, len(cv))
	for _, name := range KnownSections {
		if cv.Has(name) {
			sections = append(sections, name)
		}
	}
	return sections
}

// SectionItems extracts the item list for a section, regardless of which of
// the three raw shapes (object, list, string) the section uses:
//   - a list is returned as-is
//   - a string becomes a single-item list
//   - an object is probed for its item list under the section's known keys;
//     if none is found the object itself is treated as a single item
//
// Absent or empty sections return nil. Any other scalar is coerced to its
// string form so downstream normalization stays total.
func (cv CVData) SectionItems(name string) []any {
	raw, ok := cv.Section(name)
	if !ok {
		return nil
	}

	switch v := raw.(type) {
	case []any:
		return v
	case string:
		return []any{v}
	case map[string]any:
		for _, key := range sectionItemKeys[name] {
			if items, found := v[key]; found {
				if list, isList := items.([]any); isList && len(list) > 0 {
					return list
				}
			}
		}
		// No recognizable item list; the object is itself the single item
		// (e.g. a hero block with name/title/summary fields).
		return []any{v}
	default:
		return []any{fmt.Sprint(v)}
	}
}

// isEmptyValue reports whether a raw section value should be treated as
// absent: nil, blank string, or an empty list/object.
func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	default:
		return false
	}
}
