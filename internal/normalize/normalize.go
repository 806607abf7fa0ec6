// Package normalize converts arbitrary CV section items into a uniform
// intermediate shape that component adapters can consume without knowing the
// extraction collaborator's field vocabulary.
package normalize

import (
	"fmt"
	"strings"
)

// Content is the normalized representation of one section item. All string
// fields default to "" and Tags to an empty slice, so downstream formatting
// never has to nil-check. Metadata carries the original raw item for
// component-specific fallback lookups (e.g. timeline bullets).
type Content struct {
	Primary     string
	Secondary   string
	Tertiary    string
	Description string
	Tags        []string
	URL         string
	Metadata    map[string]any
}

// JoinedTags returns the tags as a single ", "-joined string for components
// that render tags as flat text.
func (c Content) JoinedTags() string {
	return strings.Join(c.Tags, ", ")
}

// IsEmpty reports whether no field resolved to anything usable.
func (c Content) IsEmpty() bool {
	return c.Primary == "" &&
		c.Secondary == "" &&
		c.Tertiary == "" &&
		c.Description == "" &&
		len(c.Tags) == 0 &&
		c.URL == ""
}

// Raw returns the original item map this content was normalized from, or nil
// when the item was not a map.
func (c Content) Raw() map[string]any {
	raw, _ := c.Metadata["raw"].(map[string]any)
	return raw
}

// Normalize converts one raw item into Content using the section's
// field-priority table. It is total: string items become a bare description,
// unknown scalars are coerced through fmt, and items where no candidate key
// resolves yield an all-empty Content. It never fails.
func Normalize(item any, section string) Content {
	switch v := item.(type) {
	case nil:
		return emptyContent()
	case string:
		c := emptyContent()
		c.Description = strings.TrimSpace(v)
		return c
	case map[string]any:
		return normalizeMap(v, section)
	default:
		c := emptyContent()
		c.Description = strings.TrimSpace(fmt.Sprint(v))
		return c
	}
}

// NormalizeAll normalizes a list of raw items. The result always has one
// Content per input item; filtering empties is the caller's decision.
func NormalizeAll(items []any, section string) []Content {
	contents := make([]Content, 0, len(items))
	for _, item := range items {
		contents = append(contents, Normalize(item, section))
	}
	return contents
}

// Bullets extracts a bullet-point list from a raw item, probing the known
// bullet-carrying keys in order. Timeline entries and the experience
// complexity heuristic both need this outside the standard six fields.
func Bullets(item any) []string {
	m, ok := item.(map[string]any)
	if !ok {
		return nil
	}
	view := newItemView(m)
	for _, key := range bulletKeys {
		if raw, found := view.lookup(key); found {
			if bullets := toStringList(raw); len(bullets) > 0 {
				return bullets
			}
		}
	}
	return nil
}

func emptyContent() Content {
	return Content{Tags: []string{}, Metadata: map[string]any{}}
}

func normalizeMap(item map[string]any, section string) Content {
	view := newItemView(item)
	cands := candidatesFor(section)

	return Content{
		Primary:     view.firstString(cands.Primary),
		Secondary:   view.firstString(cands.Secondary),
		Tertiary:    view.firstString(cands.Tertiary),
		Description: view.firstString(cands.Description),
		Tags:        view.firstTags(cands.Tags),
		URL:         view.firstString(cands.URL),
		Metadata:    map[string]any{"raw": item},
	}
}

// itemView is a uniform key-value view over a raw item. Lookups try the
// exact key first, then a case-insensitive match, so hand-written fixtures
// with off-case keys still resolve. The view is built once per item so the
// candidate loops stay reflection-free.
type itemView struct {
	exact map[string]any
	lower map[string]any
}

func newItemView(item map[string]any) itemView {
	lower := make(map[string]any, len(item))
	for k, v := range item {
		lk := strings.ToLower(k)
		if _, exists := lower[lk]; !exists {
			lower[lk] = v
		}
	}
	return itemView{exact: item, lower: lower}
}

func (v itemView) lookup(key string) (any, bool) {
	if val, ok := v.exact[key]; ok {
		return val, true
	}
	if val, ok := v.lower[strings.ToLower(key)]; ok {
		return val, true
	}
	return nil, false
}

// firstString resolves the first candidate key holding a non-empty value,
// flattening lists into ", "-joined text and coercing scalars through fmt.
func (v itemView) firstString(candidates []string) string {
	for _, key := range candidates {
		raw, found := v.lookup(key)
		if !found {
			continue
		}
		if s := toFlatString(raw); s != "" {
			return s
		}
	}
	return ""
}

// firstTags resolves the first candidate key holding a non-empty tag list.
// A string value is split on the common inline separators so "Go • Python"
// and "Go, Python" both become two tags.
func (v itemView) firstTags(candidates []string) []string {
	for _, key := range candidates {
		raw, found := v.lookup(key)
		if !found {
			continue
		}
		if tags := toStringList(raw); len(tags) > 0 {
			return tags
		}
	}
	return []string{}
}

// toFlatString coerces a raw value into display text. Lists join with ", ";
// maps are not flattened (a nested object is not usable headline text).
func toFlatString(raw any) string {
	switch val := raw.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case []any:
		parts := make([]string, 0, len(val))
		for _, entry := range val {
			if s := toFlatString(entry); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case []string:
		parts := make([]string, 0, len(val))
		for _, entry := range val {
			if s := strings.TrimSpace(entry); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		return ""
	case float64:
		// JSON numbers arrive as float64; render integers without ".0".
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprint(val)
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}

// toStringList coerces a raw value into an ordered string list. Strings are
// split on bullet-like separators (•, |, ;, comma, slash).
func toStringList(raw any) []string {
	switch val := raw.(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(val))
		for _, entry := range val {
			if s := toFlatString(entry); s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		out := make([]string, 0, len(val))
		for _, entry := range val {
			if s := strings.TrimSpace(entry); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		return SplitTags(val)
	default:
		if s := toFlatString(val); s != "" {
			return []string{s}
		}
		return nil
	}
}

// tagSeparators are the inline separators technology strings use
// ("React • Node.js", "Go | Python", "HTML, CSS").
var tagSeparators = []string{"•", "|", ";", ",", "/"}

// SplitTags splits a flat technology/skills string into an ordered tag list,
// using the first separator that actually occurs in the string. A string
// with no separator becomes a single tag.
func SplitTags(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, sep := range tagSeparators {
		if !strings.Contains(s, sep) {
			continue
		}
		parts := strings.Split(s, sep)
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return []string{s}
}
