package normalize

import "github.com/nitzanshifris/cv2web/internal/types"

// fieldCandidates holds, per logical field, the ordered list of raw keys to
// probe on an item. The first present, non-empty value wins. Candidate order
// encodes the extraction collaborator's preferred vocabulary first, then the
// looser aliases seen in older payloads.
type fieldCandidates struct {
	Primary     []string
	Secondary   []string
	Tertiary    []string
	Description []string
	Tags        []string
	URL         []string
}

// defaultCandidates covers sections without a dedicated table and unknown
// section hints.
var defaultCandidates = fieldCandidates{
	Primary:     []string{"title", "name", "label"},
	Secondary:   []string{"subtitle", "organization", "context"},
	Tertiary:    []string{"dateRange", "date", "year"},
	Description: []string{"description", "summary", "text"},
	Tags:        []string{"tags", "keywords"},
	URL:         []string{"url", "link"},
}

// sectionCandidates is the per-section field-priority table. Keeping it as
// plain data (rather than per-section code paths) makes the alias set
// auditable and lets tests enumerate it.
var sectionCandidates = map[string]fieldCandidates{
	types.SectionHero: {
		Primary:     []string{"name", "fullName", "title"},
		Secondary:   []string{"title", "headline", "role", "tagline"},
		Tertiary:    []string{"location", "city"},
		Description: []string{"summary", "bio", "description"},
		Tags:        []string{"keywords", "tags"},
		URL:         []string{"website", "url", "link"},
	},
	types.SectionSummary: {
		Primary:     []string{"title", "headline"},
		Secondary:   []string{"subtitle"},
		Tertiary:    []string{},
		Description: []string{"summary", "text", "content", "description"},
		Tags:        []string{"keywords", "tags"},
		URL:         []string{"url"},
	},
	types.SectionExperience: {
		Primary:     []string{"jobTitle", "position", "title", "role"},
		Secondary:   []string{"companyName", "organization", "employer", "company"},
		Tertiary:    []string{"dateRange", "dates", "period", "duration"},
		Description: []string{"description", "summary", "details"},
		Tags:        []string{"technologies", "skills", "tags", "tools"},
		URL:         []string{"companyUrl", "url", "link"},
	},
	types.SectionEducation: {
		Primary:     []string{"degree", "qualification", "title", "program"},
		Secondary:   []string{"institution", "school", "university"},
		Tertiary:    []string{"dateRange", "dates", "years", "graduationYear"},
		Description: []string{"description", "details", "notes"},
		Tags:        []string{"courses", "subjects", "tags"},
		URL:         []string{"institutionUrl", "url"},
	},
	types.SectionSkills: {
		Primary:     []string{"category", "categoryName", "name", "title"},
		Secondary:   []string{"level", "proficiency"},
		Tertiary:    []string{"yearsOfExperience", "years"},
		Description: []string{"description", "summary"},
		Tags:        []string{"skills", "items", "technologies", "list", "tags"},
		URL:         []string{"url"},
	},
	types.SectionProjects: {
		Primary:     []string{"name", "title", "projectName"},
		Secondary:   []string{"role", "subtitle", "category"},
		Tertiary:    []string{"dateRange", "dates", "year"},
		Description: []string{"description", "summary"},
		Tags:        []string{"technologies", "techStack", "stack", "tags"},
		URL:         []string{"projectUrl", "demoUrl", "liveUrl", "githubUrl", "url", "link"},
	},
	types.SectionCertifications: {
		Primary:     []string{"name", "title", "certification"},
		Secondary:   []string{"issuer", "organization", "authority"},
		Tertiary:    []string{"date", "dateRange", "year"},
		Description: []string{"description"},
		Tags:        []string{"tags"},
		URL:         []string{"credentialUrl", "url"},
	},
	types.SectionAchievements: {
		Primary:     []string{"title", "name", "award"},
		Secondary:   []string{"issuer", "organization", "context"},
		Tertiary:    []string{"date", "year"},
		Description: []string{"description", "details"},
		Tags:        []string{"tags"},
		URL:         []string{"url"},
	},
	types.SectionVolunteer: {
		Primary:     []string{"role", "position", "title"},
		Secondary:   []string{"organization", "cause"},
		Tertiary:    []string{"dateRange", "dates"},
		Description: []string{"description", "summary"},
		Tags:        []string{"tags"},
		URL:         []string{"url"},
	},
	types.SectionLanguages: {
		Primary:     []string{"language", "name"},
		Secondary:   []string{"proficiency", "level", "fluency"},
		Tertiary:    []string{},
		Description: []string{"description"},
		Tags:        []string{"tags"},
		URL:         []string{},
	},
	types.SectionContact: {
		Primary:     []string{"platform", "type", "label", "name"},
		Secondary:   []string{"value", "handle", "username", "address"},
		Tertiary:    []string{},
		Description: []string{"description"},
		Tags:        []string{},
		URL:         []string{"url", "href", "link"},
	},
	types.SectionCourses: {
		Primary:     []string{"name", "title", "course"},
		Secondary:   []string{"provider", "institution", "platform"},
		Tertiary:    []string{"date", "year"},
		Description: []string{"description"},
		Tags:        []string{"topics", "tags"},
		URL:         []string{"certificateUrl", "url"},
	},
	types.SectionHobbies: {
		Primary:     []string{"name", "title", "hobby"},
		Secondary:   []string{"category"},
		Tertiary:    []string{},
		Description: []string{"description"},
		Tags:        []string{"tags"},
		URL:         []string{"url"},
	},
	types.SectionPublications: {
		Primary:     []string{"title", "name"},
		Secondary:   []string{"publisher", "journal", "venue"},
		Tertiary:    []string{"date", "year"},
		Description: []string{"description", "abstract"},
		Tags:        []string{"keywords", "tags"},
		URL:         []string{"url", "doi"},
	},
	types.SectionSpeaking: {
		Primary:     []string{"title", "talk", "topic"},
		Secondary:   []string{"event", "conference", "venue"},
		Tertiary:    []string{"date", "year"},
		Description: []string{"description", "summary"},
		Tags:        []string{"tags"},
		URL:         []string{"url", "videoUrl", "slidesUrl"},
	},
	types.SectionPatents: {
		Primary:     []string{"title", "name"},
		Secondary:   []string{"office", "assignee"},
		Tertiary:    []string{"date", "year", "patentNumber"},
		Description: []string{"description", "abstract"},
		Tags:        []string{"tags"},
		URL:         []string{"url"},
	},
	types.SectionMemberships: {
		Primary:     []string{"organization", "name", "title"},
		Secondary:   []string{"role", "position"},
		Tertiary:    []string{"dateRange", "since"},
		Description: []string{"description"},
		Tags:        []string{"tags"},
		URL:         []string{"url"},
	},
}

// candidatesFor returns the field-priority table for a section, falling back
// to the default table for unknown section hints.
func candidatesFor(section string) fieldCandidates {
	if c, ok := sectionCandidates[section]; ok {
		return c
	}
	return defaultCandidates
}

// bulletKeys are the raw item keys that may carry a bullet list (timeline
// entries and the experience-complexity heuristic both read them).
var bulletKeys = []string{"responsibilities", "achievements", "highlights", "bullets", "details", "tasks"}
