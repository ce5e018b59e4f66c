package seo

import (
	"hypertech.group/hypersystem-web/internal/brand"
	"hypertech.group/hypersystem-web/internal/i18n"
	"hypertech.group/hypersystem-web/internal/locale"
	"hypertech.group/hypersystem-web/internal/nav"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	Locale      string
	SiteName    string
}

type Twitter struct {
	Card  string
	Image string
}

// Alternate is an hreflang link.
type Alternate struct {
	Hreflang string
	Href     string
}

type Meta struct {
	Title       string
	Description string
	Keywords    string
	Canonical   string
	OG          OpenGraph
	Twitter     Twitter
	Alternates  []Alternate
}

// Title picks the document title of v.
func Title(m i18n.SEOMessages, v nav.View) string {
	switch v {
	case nav.Club:
		return m.ClubTitle
	case nav.Player:
		return m.PlayerTitle
	case nav.Pricing:
		return m.PricingTitle
	}
	return m.Title
}

// Build assembles the head metadata of v in l.
func Build(baseURL string, l locale.Locale, v nav.View, m i18n.SEOMessages, trailingSlash bool) Meta {
	canonical := baseURL + nav.Path(l, v, trailingSlash)
	title := Title(m, v)
	return Meta{
		Title:       title,
		Description: m.Description,
		Keywords:    m.Keywords,
		Canonical:   canonical,
		OG: OpenGraph{
			Title:       title,
			Description: m.Description,
			Image:       brand.HeroShowcaseURL,
			Type:        "website",
			URL:         canonical,
			Locale:      l.OGLocale(),
			SiteName:    brand.Name,
		},
		Twitter:    Twitter{Card: "summary_large_image", Image: brand.HeroShowcaseURL},
		Alternates: Alternates(baseURL, v, trailingSlash),
	}
}

// Alternates lists v in every locale plus x-default pointing at the default locale.
func Alternates(baseURL string, v nav.View, trailingSlash bool) []Alternate {
	out := make([]Alternate, 0, len(locale.All)+1)
	for _, l := range locale.All {
		out = append(out, Alternate{Hreflang: l.HTMLLang(), Href: baseURL + nav.Path(l, v, trailingSlash)})
	}
	out = append(out, Alternate{Hreflang: "x-default", Href: baseURL + nav.Path(locale.Default, v, trailingSlash)})
	return out
}
