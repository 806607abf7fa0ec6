package selection

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nitzanshifris/cv2web/internal/types"
)

func newTestSelector() *Selector {
	return New(DefaultConfig(), nil, zerolog.Nop())
}

// technicalCV builds a CV that detects as technical: software vocabulary in
// the summary, no projects section pushing it creative.
func technicalCV() types.CVData {
	return types.CVData{
		"hero": map[string]any{
			"name":  "Dana Levi",
			"title": "Software Engineer",
		},
		"summary": "Backend software engineer focused on distributed systems.",
		"experience": []any{
			map[string]any{"jobTitle": "Engineer", "companyName": "Acme", "dateRange": "2020-2024"},
			map[string]any{"jobTitle": "Developer", "companyName": "Initech", "dateRange": "2017-2020"},
		},
		"education": []any{
			map[string]any{"degree": "BSc Computer Science", "institution": "TAU"},
		},
		"skills": []any{
			map[string]any{"category": "Backend", "skills": []any{"Go", "Postgres"}},
		},
		"contact": []any{
			map[string]any{"platform": "email", "value": "dana@example.com"},
		},
	}
}

func creativeCV() types.CVData {
	return types.CVData{
		"hero": map[string]any{
			"name":  "Noa Bar",
			"title": "Brand Designer",
		},
		"summary": "Designer crafting branding and typography systems in Figma.",
		"projects": []any{
			map[string]any{"name": "Rebrand", "description": "Visual identity work."},
		},
		"skills": []any{
			map[string]any{"category": "Design", "skills": []any{"Figma", "Illustration"}},
		},
	}
}

func selectionFor(t *testing.T, selections []types.ComponentSelection, section string) types.ComponentSelection {
	t.Helper()
	for _, sel := range selections {
		if sel.Section == section {
			return sel
		}
	}
	t.Fatalf("no selection for section %q", section)
	return types.ComponentSelection{}
}

func TestSelectEmptyCV(t *testing.T) {
	selector := newTestSelector()

	selections, report := selector.Select(nil)
	assert.Empty(t, selections)
	require.NotNil(t, report)

	selections, report = selector.Select(types.CVData{})
	assert.Empty(t, selections)
	require.NotNil(t, report)

	// Sections whose values are present but empty contribute nothing
	selections, _ = selector.Select(types.CVData{
		"summary": "",
		"skills":  []any{},
	})
	assert.Empty(t, selections)
}

func TestSelectBasicPath(t *testing.T) {
	selector := newTestSelector()

	// Six populated sections, no complex section, technical archetype:
	// the richness analysis stays off.
	selections, report := selector.Select(technicalCV())

	require.Len(t, selections, 6)
	assert.Equal(t, types.ArchetypeTechnical, report.Archetype)
	assert.False(t, report.SmartPath)
	assert.Empty(t, report.Sections)
}

func TestSelectSmartPathBySectionCount(t *testing.T) {
	selector := newTestSelector()

	cv := technicalCV()
	cv["achievements"] = []any{
		map[string]any{"title": "Speaker award", "issuer": "GopherCon"},
	}

	// Seventh populated section crosses the threshold
	selections, report := selector.Select(cv)
	require.Len(t, selections, 7)
	assert.True(t, report.SmartPath)
	assert.Len(t, report.Sections, 7)
}

func TestSelectSmartPathByComplexExperience(t *testing.T) {
	selector := newTestSelector()

	deepItems := make([]any, 0, 5)
	for i := 0; i < 5; i++ {
		deepItems = append(deepItems, map[string]any{
			"jobTitle":    "Engineer",
			"companyName": "Acme",
			"responsibilities": []any{
				"one", "two", "three", "four", "five",
			},
		})
	}
	cv := technicalCV()
	cv["experience"] = deepItems

	// Still six sections, but the experience section alone is heavy
	_, report := selector.Select(cv)
	assert.True(t, report.SmartPath)
}

func TestSelectGeneralArchetypeUsesSmartPath(t *testing.T) {
	selector := newTestSelector()

	// No creative or technical vocabulary anywhere
	cv := types.CVData{
		"summary": "An experienced professional.",
		"skills": []any{
			map[string]any{"category": "Management", "skills": []any{"Planning"}},
		},
	}
	_, report := selector.Select(cv)
	assert.Equal(t, types.ArchetypeGeneral, report.Archetype)
	assert.True(t, report.SmartPath)
}

func TestSelectComponentMapping(t *testing.T) {
	selector := newTestSelector()

	selections, _ := selector.Select(technicalCV())

	assert.Equal(t, types.ComponentTextGenerate, selectionFor(t, selections, "hero").ComponentType)
	assert.Equal(t, types.ComponentTextGenerate, selectionFor(t, selections, "summary").ComponentType)
	assert.Equal(t, types.ComponentTimeline, selectionFor(t, selections, "experience").ComponentType)
	assert.Equal(t, types.ComponentTimeline, selectionFor(t, selections, "education").ComponentType)
	assert.Equal(t, types.ComponentBentoGrid, selectionFor(t, selections, "skills").ComponentType)
	assert.Equal(t, types.ComponentFloatingDock, selectionFor(t, selections, "contact").ComponentType)

	// Every selection carries its import path and non-nil props
	for _, sel := range selections {
		assert.Equal(t, sel.ComponentType.ImportPath(), sel.ImportPath)
		assert.NotNil(t, sel.Props)
	}
}

func TestSelectGeneralOverrides(t *testing.T) {
	selector := newTestSelector()

	cv := types.CVData{
		"summary": "An experienced professional.",
		"projects": []any{
			map[string]any{"name": "Community garden"},
		},
		"skills": []any{
			map[string]any{"category": "Soft skills", "skills": []any{"Leadership"}},
		},
	}
	selections, report := selector.Select(cv)

	require.Equal(t, types.ArchetypeGeneral, report.Archetype)
	assert.Equal(t, types.ComponentContentList, selectionFor(t, selections, "projects").ComponentType)
	assert.Equal(t, types.ComponentContentList, selectionFor(t, selections, "skills").ComponentType)
}

func TestSelectCreativeArchetype(t *testing.T) {
	selector := newTestSelector()

	_, report := selector.Select(creativeCV())
	assert.Equal(t, types.ArchetypeCreative, report.Archetype)
}

func TestSelectArchetypeOverrideOption(t *testing.T) {
	selector := newTestSelector()

	_, report := selector.Select(technicalCV(), WithArchetype(types.ArchetypeCreative))
	assert.Equal(t, types.ArchetypeCreative, report.Archetype)
}

func TestSelectOrdering(t *testing.T) {
	selector := newTestSelector()

	selections, _ := selector.Select(technicalCV())
	require.NotEmpty(t, selections)

	assert.Equal(t, "hero", selections[0].Section)
	assert.Equal(t, "contact", selections[len(selections)-1].Section)
	for i := 1; i < len(selections); i++ {
		assert.LessOrEqual(t, selections[i-1].Priority, selections[i].Priority)
	}
}

func TestSelectMergeSuggestions(t *testing.T) {
	selector := newTestSelector()

	cv := technicalCV()
	// A single thin language entry next to a populated skills section
	cv["languages"] = []any{
		map[string]any{"language": "English"},
	}
	// Push past the smart threshold so the analysis runs
	cv["achievements"] = []any{
		map[string]any{"title": "Award"},
	}

	_, report := selector.Select(cv)
	require.True(t, report.SmartPath)

	languages, ok := report.Sections["languages"]
	require.True(t, ok)
	assert.Equal(t, "skills", languages.MergeInto)
	assert.Equal(t, "skills", report.Layout.Merges["languages"])
}

func TestSelectMergeNeedsPopulatedTarget(t *testing.T) {
	selector := newTestSelector()

	// Sparse hobbies would merge into summary, but summary is absent
	cv := types.CVData{
		"hobbies": []any{map[string]any{"name": "Chess"}},
	}
	_, report := selector.Select(cv)
	require.True(t, report.SmartPath) // general archetype

	hobbies, ok := report.Sections["hobbies"]
	require.True(t, ok)
	assert.Empty(t, hobbies.MergeInto)
}

func TestSelectPropsNeverCarryAnalysisKeys(t *testing.T) {
	selector := newTestSelector()

	cv := technicalCV()
	cv["achievements"] = []any{map[string]any{"title": "Award"}}

	selections, report := selector.Select(cv)
	require.True(t, report.SmartPath)
	for _, sel := range selections {
		for key := range sel.Props {
			assert.NotContains(t, key, "richness")
			assert.NotContains(t, key, "merge")
		}
	}
}

func TestSelectDeterministic(t *testing.T) {
	selector := newTestSelector()
	cv := technicalCV()

	first, firstReport := selector.Select(cv)
	for i := 0; i < 5; i++ {
		again, againReport := selector.Select(cv)
		assert.Equal(t, first, again)
		assert.Equal(t, firstReport, againReport)
	}
}

func TestRichnessScoreBounds(t *testing.T) {
	assert.Equal(t, 0.0, richnessScore(nil))

	// A huge, text-heavy section saturates at 1.0
	cv := technicalCV()
	sections := newTestSelector().collectSections(cv)
	for _, sec := range sections {
		score := richnessScore(sec.contents)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestLayoutRecommendation(t *testing.T) {
	selector := newTestSelector()

	selections, report := selector.Select(technicalCV())
	require.Len(t, selections, 6)
	// Six sections render as a grid of sections
	assert.Equal(t, "grid", string(report.Layout.LayoutType))
	assert.NotEmpty(t, report.Layout.Spacing)
}
