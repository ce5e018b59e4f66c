package seo

import (
	"encoding/json"
	"html/template"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Script marshals v for a <script type="application/ld+json"> body.
// encoding/json escapes <, > and & so the payload cannot close the element.
func Script(v any) template.JS {
	return template.JS(JSON(v))
}

// Organization returns a minimal Organization schema.
func Organization(name, url, logoURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	return m
}

// Offer is the price advertised in SoftwareApplication.
type Offer struct {
	Price    int64
	Currency string
}

// SoftwareApplication describes the product for rich results.
func SoftwareApplication(name, description, url, author string, offer Offer) map[string]any {
	m := map[string]any{
		"@context":            "https://schema.org",
		"@type":               "SoftwareApplication",
		"name":                name,
		"applicationCategory": "BusinessApplication",
		"operatingSystem":     "Web",
		"description":         description,
		"offers": map[string]any{
			"@type":         "Offer",
			"price":         offer.Price,
			"priceCurrency": offer.Currency,
		},
		"author": map[string]any{"@type": "Organization", "name": author},
	}
	if url != "" {
		m["url"] = url
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}
