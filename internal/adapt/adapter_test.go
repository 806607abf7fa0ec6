package adapt

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nitzanshifris/cv2web/internal/types"
)

func newTestAdapter() *Adapter {
	return New(Config{Logger: zerolog.Nop()})
}

func experienceItems(n int) []any {
	items := make([]any, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, map[string]any{
			"jobTitle":         fmt.Sprintf("Engineer %d", i+1),
			"companyName":      fmt.Sprintf("Company %d", i+1),
			"dateRange":        "2020-2024",
			"responsibilities": []any{"Shipped features", "Reviewed code"},
		})
	}
	return items
}

func projectItems(n int) []any {
	items := make([]any, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, map[string]any{
			"name":         fmt.Sprintf("Project %d", i+1),
			"description":  "A thing I built.",
			"technologies": []any{"Go", "React"},
			"projectUrl":   "https://example.com",
		})
	}
	return items
}

func TestAdaptTimeline(t *testing.T) {
	adapter := newTestAdapter()

	props, err := adapter.Adapt(types.ComponentTimeline, experienceItems(3), "experience")
	require.NoError(t, err)

	entries, ok := props["entries"].([]any)
	require.True(t, ok)
	require.Len(t, entries, 3)

	first, ok := entries[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Engineer 1", first["title"])
	assert.Equal(t, "Company 1", first["subtitle"])
	assert.Equal(t, "2020-2024", first["date"])
	assert.Equal(t, []string{"Shipped features", "Reviewed code"}, first["bullets"])
}

func TestAdaptTimelineEmptyBullets(t *testing.T) {
	adapter := newTestAdapter()

	props, err := adapter.Adapt(types.ComponentTimeline, []any{
		map[string]any{"jobTitle": "Engineer"},
	}, "experience")
	require.NoError(t, err)

	entries := props["entries"].([]any)
	first := entries[0].(map[string]any)
	// Missing bullets render as an empty list, never null
	assert.Equal(t, []string{}, first["bullets"])
}

func TestAdaptBentoGridFallsBackWhenSparse(t *testing.T) {
	adapter := newTestAdapter()

	// Two items are below the bento minimum: wobble-card shape instead
	props, err := adapter.Adapt(types.ComponentBentoGrid, []any{
		map[string]any{"category": "Backend", "skills": []any{"Go"}},
		map[string]any{"category": "Frontend", "skills": []any{"React"}},
	}, "skills")
	require.NoError(t, err)

	assert.NotContains(t, props, "items")
	cards, ok := props["cards"].([]any)
	require.True(t, ok)
	require.Len(t, cards, 2)

	first := cards[0].(map[string]any)
	assert.Equal(t, "Backend", first["title"])
	assert.Equal(t, "Go", first["description"])
}

func TestAdaptBentoGrid(t *testing.T) {
	adapter := newTestAdapter()

	props, err := adapter.Adapt(types.ComponentBentoGrid, []any{
		map[string]any{"category": "Backend", "skills": []any{"Go", "Postgres"}},
		map[string]any{"category": "Frontend", "skills": []any{"React"}},
		map[string]any{"category": "Infra", "skills": []any{"Docker"}},
		map[string]any{"category": "Data", "skills": []any{"SQL"}},
	}, "skills")
	require.NoError(t, err)

	assert.NotContains(t, props, "cards")
	items, ok := props["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 4)

	first := items[0].(map[string]any)
	assert.Equal(t, "Backend", first["title"])
	assert.Equal(t, []string{"Go", "Postgres"}, first["tags"])
}

func TestAdaptCarouselWrapping(t *testing.T) {
	adapter := newTestAdapter()

	// Nine usable items stay unwrapped
	props, err := adapter.Adapt(types.ComponentCardHover, projectItems(9), "projects")
	require.NoError(t, err)
	assert.NotContains(t, props, "type")
	assert.Contains(t, props, "cards")

	// Ten cross the grid limit and get the carousel container
	props, err = adapter.Adapt(types.ComponentCardHover, projectItems(10), "projects")
	require.NoError(t, err)
	assert.Equal(t, "carousel", props["type"])
	assert.Equal(t, string(types.ComponentCardHover), props["component"])
	assert.Equal(t, 3, props["slidesToShow"])
	// Inner props survive alongside the container fields
	assert.Contains(t, props, "cards")

	// Fifteen items widen the carousel page
	props, err = adapter.Adapt(types.ComponentCardHover, projectItems(15), "projects")
	require.NoError(t, err)
	assert.Equal(t, 4, props["slidesToShow"])
}

func TestAdaptTextGenerate(t *testing.T) {
	adapter := newTestAdapter()

	props, err := adapter.Adapt(types.ComponentTextGenerate, "Building things since 2010.", "summary")
	require.NoError(t, err)
	assert.Equal(t, "Building things since 2010.", props["words"])
	assert.Equal(t, "font-normal", props["className"])
	assert.Equal(t, 0.5, props["duration"])
}

func TestAdaptTextGenerateStructured(t *testing.T) {
	adapter := newTestAdapter()

	props, err := adapter.Adapt(types.ComponentTextGenerate, map[string]any{
		"summary": "A builder of systems.",
	}, "summary")
	require.NoError(t, err)
	assert.Equal(t, "A builder of systems.", props["words"])
}

func TestAdaptFloatingDock(t *testing.T) {
	adapter := newTestAdapter()

	props, err := adapter.Adapt(types.ComponentFloatingDock, []any{
		map[string]any{"platform": "email", "value": "dana@example.com"},
		map[string]any{"platform": "github", "url": "https://github.com/dana"},
		map[string]any{"platform": "linkedin", "url": "https://linkedin.com/in/dana"},
	}, "contact")
	require.NoError(t, err)

	items, ok := props["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 3)

	email := items[0].(map[string]any)
	assert.Equal(t, "IconMail", email["icon"])
	assert.Equal(t, "mailto:dana@example.com", email["href"])

	github := items[1].(map[string]any)
	assert.Equal(t, "IconBrandGithub", github["icon"])
	assert.Equal(t, "https://github.com/dana", github["href"])
}

func TestAdaptTestimonials(t *testing.T) {
	adapter := newTestAdapter()

	props, err := adapter.Adapt(types.ComponentTestimonials, []any{
		map[string]any{"title": "Employee of the Year", "issuer": "Acme", "description": "Outstanding delivery."},
	}, "achievements")
	require.NoError(t, err)

	testimonials := props["testimonials"].([]any)
	first := testimonials[0].(map[string]any)
	assert.Equal(t, "Outstanding delivery.", first["quote"])
	assert.Equal(t, "Employee of the Year", first["name"])
	assert.Equal(t, "Acme", first["designation"])
}

func TestAdaptUnknownComponentFallsBack(t *testing.T) {
	adapter := newTestAdapter()

	props, err := adapter.Adapt(types.ComponentType("hologram-3d"), projectItems(2), "projects")
	require.NoError(t, err)
	assert.Contains(t, props, "items")
}

func TestAdaptRejectsUnusableData(t *testing.T) {
	adapter := newTestAdapter()

	_, err := adapter.Adapt(types.ComponentTimeline, 42, "experience")
	require.Error(t, err)

	var adaptErr *Error
	assert.ErrorAs(t, err, &adaptErr)
}

func TestAdaptSkipsEmptyItems(t *testing.T) {
	adapter := newTestAdapter()

	props, err := adapter.Adapt(types.ComponentCardHover, []any{
		map[string]any{"name": "Real project"},
		map[string]any{},
		nil,
	}, "projects")
	require.NoError(t, err)

	cards := props["cards"].([]any)
	assert.Len(t, cards, 1)
}

func TestAdaptIsDeterministic(t *testing.T) {
	adapter := newTestAdapter()
	data := projectItems(12)

	first, err := adapter.Adapt(types.ComponentCardHover, data, "projects")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := adapter.Adapt(types.ComponentCardHover, data, "projects")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
