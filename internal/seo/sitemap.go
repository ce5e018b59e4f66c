package seo

import (
	"encoding/xml"
	"fmt"
	"strings"

	"hypertech.group/hypersystem-web/internal/locale"
	"hypertech.group/hypersystem-web/internal/nav"
)

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc   string        `xml:"loc"`
	Links []sitemapLink `xml:"xhtml:link"`
}

type sitemapLink struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// Sitemap lists every locale and view with hreflang alternates.
func Sitemap(baseURL string, trailingSlash bool) ([]byte, error) {
	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		XHTML: "http://www.w3.org/1999/xhtml",
	}
	for _, l := range locale.All {
		for _, v := range nav.Views {
			u := sitemapURL{Loc: baseURL + nav.Path(l, v, trailingSlash)}
			for _, alt := range Alternates(baseURL, v, trailingSlash) {
				u.Links = append(u.Links, sitemapLink{Rel: "alternate", Hreflang: alt.Hreflang, Href: alt.Href})
			}
			set.URLs = append(set.URLs, u)
		}
	}
	b, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("seo: marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), b...), nil
}

// Robots returns robots.txt pointing at the sitemap.
func Robots(baseURL string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /*/_fragments/\n")
	b.WriteString("Sitemap: " + baseURL + "/sitemap.xml\n")
	return b.String()
}
