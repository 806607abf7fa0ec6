package selection

import "github.com/nitzanshifris/cv2web/internal/types"

// baseComponents is the default (section → component) assignment, before
// archetype overrides.
var baseComponents = map[string]types.ComponentType{
	types.SectionHero:           types.ComponentTextGenerate,
	types.SectionSummary:        types.ComponentTextGenerate,
	types.SectionExperience:     types.ComponentTimeline,
	types.SectionEducation:      types.ComponentTimeline,
	types.SectionSkills:         types.ComponentBentoGrid,
	types.SectionProjects:       types.ComponentCardHover,
	types.SectionCertifications: types.ComponentContentList,
	types.SectionAchievements:   types.ComponentTestimonials,
	types.SectionVolunteer:      types.ComponentTimeline,
	types.SectionLanguages:      types.ComponentContentList,
	types.SectionContact:        types.ComponentFloatingDock,
	types.SectionCourses:        types.ComponentContentList,
	types.SectionHobbies:        types.ComponentContentList,
	types.SectionPublications:   types.ComponentContentList,
	types.SectionSpeaking:       types.ComponentContentList,
	types.SectionPatents:        types.ComponentContentList,
	types.SectionMemberships:    types.ComponentContentList,
}

// archetypeOverrides adjusts per-section components for a detected
// archetype. General profiles get the plainer list-based components for the
// showcase sections; creative profiles get the more visual treatments.
var archetypeOverrides = map[types.UserArchetype]map[string]types.ComponentType{
	types.ArchetypeGeneral: {
		types.SectionProjects: types.ComponentContentList,
		types.SectionSkills:   types.ComponentContentList,
	},
	types.ArchetypeCreative: {
		types.SectionHobbies:      types.ComponentBentoGrid,
		types.SectionAchievements: types.ComponentTestimonials,
	},
	types.ArchetypeTechnical: {
		types.SectionCertifications: types.ComponentWobbleCard,
	},
}

// componentFor resolves the component for a (section, archetype) pair.
// Unknown sections get the generic list.
func componentFor(section string, archetype types.UserArchetype) types.ComponentType {
	if overrides, ok := archetypeOverrides[archetype]; ok {
		if ct, found := overrides[section]; found {
			return ct
		}
	}
	if ct, ok := baseComponents[section]; ok {
		return ct
	}
	return types.ComponentContentList
}

// sectionPriorities is the fixed rendering order: hero first, contact last.
// Unlisted sections sort between the named ones at defaultPriority.
var sectionPriorities = map[string]int{
	types.SectionHero:           1,
	types.SectionSummary:        2,
	types.SectionExperience:     3,
	types.SectionProjects:       4,
	types.SectionSkills:         5,
	types.SectionEducation:      6,
	types.SectionCertifications: 7,
	types.SectionAchievements:   8,
	types.SectionPublications:   9,
	types.SectionSpeaking:       10,
	types.SectionPatents:        11,
	types.SectionVolunteer:      12,
	types.SectionCourses:        13,
	types.SectionLanguages:      14,
	types.SectionMemberships:    15,
	types.SectionHobbies:        16,
	types.SectionContact:        99,
}

const defaultPriority = 50

// priorityFor returns the section's fixed rendering priority.
func priorityFor(section string) int {
	if p, ok := sectionPriorities[section]; ok {
		return p
	}
	return defaultPriority
}
