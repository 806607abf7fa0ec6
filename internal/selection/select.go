// Package selection maps structured CV data onto the portfolio component
// catalog: it detects the owner's archetype, assigns a component per
// section, and builds each selection's props through the adapters.
package selection

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/nitzanshifris/cv2web/internal/adapt"
	"github.com/nitzanshifris/cv2web/internal/layout"
	"github.com/nitzanshifris/cv2web/internal/normalize"
	"github.com/nitzanshifris/cv2web/internal/types"
)

// Default selection thresholds. The numeric values are the behavioral
// contract inherited from production; they are configurable but the
// defaults must not drift.
const (
	defaultMinBentoItems            = 3
	defaultSmartSectionThreshold    = 7
	defaultLowRichness              = 0.25
	defaultHighRichness             = 0.75
	defaultComplexExperienceItems   = 5
	defaultComplexExperienceBullets = 5
	defaultComplexSkillCategories   = 4
	defaultComplexSkillsPerCategory = 8
)

// Whole-CV spacing hint boundaries on the average section richness.
const (
	spacingCompactBelow = 0.35
	spacingAiryAbove    = 0.7
)

// Config holds the selector's tunable thresholds and vocabulary. Zero
// values fall back to production defaults.
type Config struct {
	// Layout thresholds shared with the adapters, and the bento grid's
	// minimum item count (below it the adapter falls back to cards).
	Layout        layout.Policy
	MinBentoItems int

	// SmartSectionThreshold is the populated-section count at which the
	// richness-scoring path engages.
	SmartSectionThreshold int

	// Richness boundaries: below LowRichness a section gets a merge
	// suggestion, at or above HighRichness its layout variant upgrades.
	LowRichness  float64
	HighRichness float64

	// Single-section complexity triggers for the smart path.
	ComplexExperienceItems   int
	ComplexExperienceBullets int
	ComplexSkillCategories   int
	ComplexSkillsPerCategory int

	// Archetype keyword vocabulary.
	CreativeKeywords  []string
	TechnicalKeywords []string
	MinKeywordHits    int
}

// DefaultConfig returns the production thresholds and keyword tables.
func DefaultConfig() Config {
	return Config{
		Layout:                   layout.DefaultPolicy(),
		MinBentoItems:            defaultMinBentoItems,
		SmartSectionThreshold:    defaultSmartSectionThreshold,
		LowRichness:              defaultLowRichness,
		HighRichness:             defaultHighRichness,
		ComplexExperienceItems:   defaultComplexExperienceItems,
		ComplexExperienceBullets: defaultComplexExperienceBullets,
		ComplexSkillCategories:   defaultComplexSkillCategories,
		ComplexSkillsPerCategory: defaultComplexSkillsPerCategory,
		CreativeKeywords:         defaultCreativeKeywords,
		TechnicalKeywords:        defaultTechnicalKeywords,
		MinKeywordHits:           defaultMinKeywordHits,
	}
}

// normalizeConfig fills zero-valued fields with their defaults so a
// partially specified Config stays usable.
func normalizeConfig(cfg Config) Config {
	def := DefaultConfig()
	if cfg.Layout == (layout.Policy{}) {
		cfg.Layout = def.Layout
	}
	if cfg.MinBentoItems <= 0 {
		cfg.MinBentoItems = def.MinBentoItems
	}
	if cfg.SmartSectionThreshold <= 0 {
		cfg.SmartSectionThreshold = def.SmartSectionThreshold
	}
	if cfg.LowRichness <= 0 {
		cfg.LowRichness = def.LowRichness
	}
	if cfg.HighRichness <= 0 {
		cfg.HighRichness = def.HighRichness
	}
	if cfg.ComplexExperienceItems <= 0 {
		cfg.ComplexExperienceItems = def.ComplexExperienceItems
	}
	if cfg.ComplexExperienceBullets <= 0 {
		cfg.ComplexExperienceBullets = def.ComplexExperienceBullets
	}
	if cfg.ComplexSkillCategories <= 0 {
		cfg.ComplexSkillCategories = def.ComplexSkillCategories
	}
	if cfg.ComplexSkillsPerCategory <= 0 {
		cfg.ComplexSkillsPerCategory = def.ComplexSkillsPerCategory
	}
	if len(cfg.CreativeKeywords) == 0 {
		cfg.CreativeKeywords = def.CreativeKeywords
	}
	if len(cfg.TechnicalKeywords) == 0 {
		cfg.TechnicalKeywords = def.TechnicalKeywords
	}
	if cfg.MinKeywordHits <= 0 {
		cfg.MinKeywordHits = def.MinKeywordHits
	}
	return cfg
}

// Selector produces ordered component selections for a CV. Construct with
// New; instances are immutable and safe for concurrent use.
type Selector struct {
	cfg     Config
	layout  layout.Policy
	adapter *adapt.Adapter
	log     zerolog.Logger
}

// New builds a Selector. A nil adapter gets a default one sharing the
// selector's layout policy, so callers that don't need adapter tuning can
// pass nil.
func New(cfg Config, adapter *adapt.Adapter, logger zerolog.Logger) *Selector {
	cfg = normalizeConfig(cfg)
	if adapter == nil {
		adapter = adapt.New(adapt.Config{
			Layout:        cfg.Layout,
			MinBentoItems: cfg.MinBentoItems,
			Logger:        logger,
		})
	}
	return &Selector{
		cfg:     cfg,
		layout:  cfg.Layout,
		adapter: adapter,
		log:     logger,
	}
}

// Option adjusts a single Select call.
type Option func(*selectOptions)

type selectOptions struct {
	archetype    types.UserArchetype
	hasArchetype bool
}

// WithArchetype overrides archetype detection for one call.
func WithArchetype(a types.UserArchetype) Option {
	return func(o *selectOptions) {
		o.archetype = a
		o.hasArchetype = true
	}
}

// sectionData is one populated section with its extraction and
// normalization already done, so the per-section loop below touches raw
// values only once.
type sectionData struct {
	name     string
	raw      any
	items    []any
	contents []normalize.Content
}

// Select produces the ordered component selections for a CV plus the
// analysis report. It never fails: an empty or nil CV yields an empty
// selection list, and sections without normalizable content are skipped
// entirely rather than emitted empty.
func (s *Selector) Select(cv types.CVData, opts ...Option) ([]types.ComponentSelection, *Report) {
	var options selectOptions
	for _, opt := range opts {
		opt(&options)
	}

	sections := s.collectSections(cv)

	archetype := options.archetype
	if !options.hasArchetype {
		archetype = s.detectArchetype(cv)
	}

	report := &Report{
		Archetype: archetype,
		Sections:  map[string]*SectionAnalysis{},
	}

	// The smart path engages for large CVs, for any single content-heavy
	// section, and for general profiles (which need the density signals to
	// pick layouts the archetype mapping would otherwise decide).
	smart := len(sections) >= s.cfg.SmartSectionThreshold || archetype == types.ArchetypeGeneral
	if !smart {
		for _, sec := range sections {
			if s.isComplexSection(sec.name, sec.items, sec.contents) {
				smart = true
				break
			}
		}
	}
	report.SmartPath = smart

	selections := make([]types.ComponentSelection, 0, len(sections))
	merges := map[string]string{}
	richnessTotal := 0.0

	for _, sec := range sections {
		ct := componentFor(sec.name, archetype)

		if smart {
			analysis := s.analyzeSection(sec, cv)
			report.Sections[sec.name] = analysis
			richnessTotal += analysis.Richness
			if analysis.MergeInto != "" {
				merges[sec.name] = analysis.MergeInto
			}
		}

		props, err := s.adapt(ct, sec)
		if err != nil {
			// Dispatch failures are programming errors; degrade to the
			// generic shape rather than dropping the section.
			s.log.Warn().Err(err).
				Str("section", sec.name).
				Str("component", string(ct)).
				Msg("adapter failed, falling back to generic component")
			ct = types.ComponentContentList
			if props, err = s.adapt(ct, sec); err != nil {
				continue
			}
		}

		selections = append(selections, types.ComponentSelection{
			Section:       sec.name,
			ComponentType: ct,
			ImportPath:    ct.ImportPath(),
			Props:         props,
			Priority:      priorityFor(sec.name),
		})
	}

	sort.SliceStable(selections, func(i, j int) bool {
		return selections[i].Priority < selections[j].Priority
	})

	report.Layout = s.recommendLayout(selections, merges, richnessTotal, smart)
	return selections, report
}

// collectSections extracts and normalizes every populated section, dropping
// the ones with no usable content after normalization.
func (s *Selector) collectSections(cv types.CVData) []sectionData {
	sections := make([]sectionData, 0, len(cv))
	for _, name := range cv.PopulatedSections() {
		raw, _ := cv.Section(name)
		items := cv.SectionItems(name)

		contents := make([]normalize.Content, 0, len(items))
		for _, c := range normalize.NormalizeAll(items, name) {
			if !c.IsEmpty() {
				contents = append(contents, c)
			}
		}
		if len(contents) == 0 {
			continue
		}

		sections = append(sections, sectionData{name: name, raw: raw, items: items, contents: contents})
	}
	return sections
}

// analyzeSection computes the smart path's per-section verdict.
func (s *Selector) analyzeSection(sec sectionData, cv types.CVData) *SectionAnalysis {
	score := richnessScore(sec.contents)
	analysis := &SectionAnalysis{
		Richness:      score,
		ItemCount:     len(sec.contents),
		LayoutVariant: s.layoutVariantFor(score, len(sec.contents)),
	}
	if score < s.cfg.LowRichness {
		analysis.MergeInto = mergeTargetFor(sec.name, cv)
	}
	return analysis
}

// adapt invokes the adapter with the shape it expects: bare strings stay
// strings (text components consume them directly), everything else passes
// its item list.
func (s *Selector) adapt(ct types.ComponentType, sec sectionData) (map[string]any, error) {
	if str, ok := sec.raw.(string); ok {
		return s.adapter.Adapt(ct, str, sec.name)
	}
	return s.adapter.Adapt(ct, sec.items, sec.name)
}

// recommendLayout builds the whole-CV layout recommendation from the
// selection count and the collected density signals.
func (s *Selector) recommendLayout(selections []types.ComponentSelection, merges map[string]string, richnessTotal float64, smart bool) LayoutRecommendation {
	rec := LayoutRecommendation{
		LayoutType: s.layout.Decide(len(selections)),
		Spacing:    SpacingComfortable,
	}
	if len(merges) > 0 {
		rec.Merges = merges
	}
	if smart && len(selections) > 0 {
		switch avg := richnessTotal / float64(len(selections)); {
		case avg < spacingCompactBelow:
			rec.Spacing = SpacingCompact
		case avg > spacingAiryAbove:
			rec.Spacing = SpacingAiry
		}
	}
	return rec
}
