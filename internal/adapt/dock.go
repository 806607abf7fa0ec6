package adapt

import (
	"strings"

	"github.com/nitzanshifris/cv2web/internal/normalize"
	"github.com/nitzanshifris/cv2web/internal/types"
)

// dockIcons maps a contact channel type to its icon component name.
// Unrecognized types fall back to the generic user icon.
var dockIcons = map[string]string{
	"email":     "IconMail",
	"mail":      "IconMail",
	"phone":     "IconPhone",
	"github":    "IconBrandGithub",
	"gitlab":    "IconBrandGitlab",
	"linkedin":  "IconBrandLinkedin",
	"twitter":   "IconBrandX",
	"x":         "IconBrandX",
	"instagram": "IconBrandInstagram",
	"dribbble":  "IconBrandDribbble",
	"behance":   "IconBrandBehance",
	"youtube":   "IconBrandYoutube",
	"website":   "IconWorld",
	"web":       "IconWorld",
	"portfolio": "IconWorld",
}

const defaultDockIcon = "IconUser"

// adaptFloatingDock builds the floating-dock component's props: one dock
// item per contact channel with a resolved icon and href.
func (a *Adapter) adaptFloatingDock(_ types.ComponentType, contents []normalize.Content, _ any, _ string) map[string]any {
	items := make([]any, 0, len(contents))
	for _, c := range contents {
		icon := resolveDockIcon(c)
		items = append(items, map[string]any{
			"title": firstNonEmpty(c.Primary, c.Secondary),
			"icon":  icon,
			"href":  dockHref(c, icon),
		})
	}
	return map[string]any{"items": items}
}

// dockIconSniff is the ordered keyword fallback when no type field resolves.
// Order matters for determinism; single-letter channels like "x" are left
// out because they match almost anything.
var dockIconSniff = []struct {
	keyword string
	icon    string
}{
	{"github", "IconBrandGithub"},
	{"gitlab", "IconBrandGitlab"},
	{"linkedin", "IconBrandLinkedin"},
	{"twitter", "IconBrandX"},
	{"instagram", "IconBrandInstagram"},
	{"dribbble", "IconBrandDribbble"},
	{"behance", "IconBrandBehance"},
	{"youtube", "IconBrandYoutube"},
	{"mailto:", "IconMail"},
	{"email", "IconMail"},
	{"phone", "IconPhone"},
	{"website", "IconWorld"},
	{"portfolio", "IconWorld"},
}

// resolveDockIcon picks the icon from the channel's type field, falling back
// to keyword sniffing on the title and URL before the generic default.
func resolveDockIcon(c normalize.Content) string {
	if raw := c.Raw(); raw != nil {
		for _, key := range []string{"type", "platform", "icon"} {
			if v, ok := raw[key].(string); ok {
				if icon, known := dockIcons[strings.ToLower(strings.TrimSpace(v))]; known {
					return icon
				}
			}
		}
	}
	haystack := strings.ToLower(c.Primary + " " + c.URL)
	for _, s := range dockIconSniff {
		if strings.Contains(haystack, s.keyword) {
			return s.icon
		}
	}
	return defaultDockIcon
}

// dockHref resolves the dock item's link target. Channels without an
// explicit URL get a mailto:/tel: scheme when the value looks like an email
// address or the channel is a phone, and "#" as the inert last resort.
func dockHref(c normalize.Content, icon string) string {
	if c.URL != "" {
		return c.URL
	}
	value := c.Secondary
	switch {
	case value == "":
		return "#"
	case icon == "IconMail" || strings.Contains(value, "@"):
		return "mailto:" + value
	case icon == "IconPhone":
		return "tel:" + strings.ReplaceAll(value, " ", "")
	case strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://"):
		return value
	default:
		return "#"
	}
}
