package nav

import (
	"strings"

	"hypertech.group/hypersystem-web/internal/brand"
	"hypertech.group/hypersystem-web/internal/i18n"
	"hypertech.group/hypersystem-web/internal/locale"
)

// View is one of the top-level pages.
type View string

const (
	Landing View = "landing"
	Club    View = "club"
	Player  View = "player"
	Pricing View = "pricing"
)

// Views lists every page in navigation order.
var Views = []View{Landing, Club, Player, Pricing}

// ParseView maps a path segment to a view; "" is the landing page.
func ParseView(segment string) (View, bool) {
	switch strings.Trim(segment, "/") {
	case "":
		return Landing, true
	case "club":
		return Club, true
	case "player":
		return Player, true
	case "pricing":
		return Pricing, true
	}
	return "", false
}

// Segment is the path segment after the locale ("" for the landing page).
func (v View) Segment() string {
	if v == Landing {
		return ""
	}
	return string(v)
}

// Path builds the route of v under l.
func Path(l locale.Locale, v View, trailingSlash bool) string {
	p := "/" + string(l)
	if seg := v.Segment(); seg != "" {
		p += "/" + seg
	}
	if trailingSlash {
		p += "/"
	}
	return p
}

// Item is a top-level navigation entry.
type Item struct {
	View  View
	Label func(i18n.NavMessages) string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	View   View
	Href   string
	Label  string
	Active bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{View: Landing, Label: func(m i18n.NavMessages) string { return m.Product }},
	{View: Club, Label: func(m i18n.NavMessages) string { return m.ClubSystem }},
	{View: Player, Label: func(m i18n.NavMessages) string { return m.PlayerSystem }},
	{View: Pricing, Label: func(m i18n.NavMessages) string { return m.Pricing }},
}

// Build renders navigation items; the item whose view equals current is active.
func Build(l locale.Locale, current View, msgs i18n.NavMessages, trailingSlash bool) []RenderedItem {
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			View:   it.View,
			Href:   Path(l, it.View, trailingSlash),
			Label:  it.Label(msgs),
			Active: it.View == current,
		})
	}
	return items
}

// Label returns the navigation label of v.
func Label(v View, msgs i18n.NavMessages) string {
	for _, it := range Main {
		if it.View == v {
			return it.Label(msgs)
		}
	}
	return ""
}

// ScrollThreshold is the vertical offset after which the bar counts as scrolled.
const ScrollThreshold = 50

// Scrolled reports whether the page has scrolled past the threshold.
func Scrolled(scrollY int) bool { return scrollY > ScrollThreshold }

// DarkHero reports whether the bar sits over a dark hero: unscrolled on club or player.
func DarkHero(scrolled bool, v View) bool {
	return !scrolled && (v == Club || v == Player)
}

// Appearance is the class set of the navigation bar for one scroll state.
type Appearance struct {
	Scrolled     bool
	DarkHero     bool
	Bar          string
	Menu         string
	ActiveLink   string
	InactiveLink string
	LangButton   string
	Logo         string
}

// AppearanceFor derives the bar's classes from the scroll offset and view.
func AppearanceFor(scrollY int, v View) Appearance {
	scrolled := Scrolled(scrollY)
	dark := DarkHero(scrolled, v)
	a := Appearance{
		Scrolled:     scrolled,
		DarkHero:     dark,
		Bar:          "bg-transparent py-8",
		Menu:         "border-blue-600 bg-white/80",
		ActiveLink:   "bg-slate-950 text-white shadow-lg",
		InactiveLink: "text-slate-600 hover:text-blue-600 hover:bg-slate-100",
		LangButton:   "text-slate-600",
		Logo:         brand.LogoURL,
	}
	if scrolled {
		a.Bar = "bg-white/80 backdrop-blur-xl py-4 shadow-sm"
	}
	if dark {
		a.Menu = "border-white/20 bg-white/10"
		a.ActiveLink = "bg-white text-slate-950 shadow-2xl"
		a.InactiveLink = "text-white/70 hover:text-white hover:bg-white/10"
		a.LangButton = "text-white/80"
		a.Logo = brand.LogoWhiteURL
	}
	return a
}

// SwitchLocale replaces the locale segment of p with to and keeps the rest of
// the path and any query string. Paths without a locale segment get one prepended.
func SwitchLocale(p string, to locale.Locale) string {
	pathPart, query := p, ""
	if i := strings.IndexByte(p, '?'); i >= 0 {
		pathPart, query = p[:i], p[i:]
	}
	if pathPart == "" {
		pathPart = "/"
	}
	rest := strings.TrimPrefix(pathPart, "/")
	first, tail, hasTail := strings.Cut(rest, "/")
	if _, err := locale.Parse(first); err == nil && first != "" {
		if hasTail {
			return "/" + string(to) + "/" + tail + query
		}
		return "/" + string(to) + query
	}
	if rest == "" {
		return "/" + string(to) + "/" + query
	}
	return "/" + string(to) + "/" + rest + query
}

// LanguageLink is one entry of the language menu.
type LanguageLink struct {
	Locale locale.Locale
	Label  string
	Href   string
	Active bool
}

// LanguageLinks lists every supported locale with the current path switched to it.
func LanguageLinks(p string, current locale.Locale) []LanguageLink {
	out := make([]LanguageLink, 0, len(locale.All))
	for _, l := range locale.All {
		out = append(out, LanguageLink{
			Locale: l,
			Label:  l.Label(),
			Href:   SwitchLocale(p, l),
			Active: l == current,
		})
	}
	return out
}

// Crumb is a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Breadcrumbs always starts with Home and adds v when it is not the landing page.
func Breadcrumbs(l locale.Locale, v View, msgs i18n.NavMessages, trailingSlash bool) []Crumb {
	crumbs := []Crumb{{Href: Path(l, Landing, trailingSlash), Label: msgs.Home, Active: v == Landing}}
	if v == Landing {
		return crumbs
	}
	return append(crumbs, Crumb{Href: Path(l, v, trailingSlash), Label: Label(v, msgs), Active: true})
}
