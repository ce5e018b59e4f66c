// Package locale enumerates the site's supported locales and negotiates between them.
package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a supported route prefix such as "zh-TW".
type Locale string

const (
	ZhTW Locale = "zh-TW"
	ZhCN Locale = "zh-CN"
	En   Locale = "en"
	Ja   Locale = "ja"
)

// Default is used when nothing else matches.
const Default = ZhTW

// ErrUnsupported is returned by Parse for codes outside the supported set.
var ErrUnsupported = errors.New("locale: unsupported")

// All lists supported locales in menu order.
var All = []Locale{ZhTW, ZhCN, En, Ja}

var (
	tags = map[Locale]language.Tag{
		ZhTW: language.TraditionalChinese,
		ZhCN: language.SimplifiedChinese,
		En:   language.English,
		Ja:   language.Japanese,
	}
	labels = map[Locale]string{
		ZhTW: "繁體中文",
		ZhCN: "简体中文",
		En:   "English",
		Ja:   "日本語",
	}
	// matcher order mirrors All so index lookups stay aligned.
	matcher = language.NewMatcher([]language.Tag{
		language.MustParse("zh-TW"),
		language.MustParse("zh-CN"),
		language.English,
		language.Japanese,
	})
)

// Parse validates a route segment. Matching is exact on the canonical spelling
// with a case-insensitive fallback ("zh-tw" parses as zh-TW).
func Parse(code string) (Locale, error) {
	for _, l := range All {
		if string(l) == code {
			return l, nil
		}
	}
	for _, l := range All {
		if strings.EqualFold(string(l), code) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupported, code)
}

// IsSupported reports whether code is exactly one of the supported route prefixes.
func IsSupported(code string) bool {
	for _, l := range All {
		if string(l) == code {
			return true
		}
	}
	return false
}

// Negotiate picks the best supported locale for an Accept-Language header.
func Negotiate(acceptLanguage string) Locale {
	if strings.TrimSpace(acceptLanguage) == "" {
		return Default
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(prefs...)
	if conf == language.No {
		return Default
	}
	return All[idx]
}

// String returns the route prefix.
func (l Locale) String() string { return string(l) }

// Tag returns the x/text language tag.
func (l Locale) Tag() language.Tag {
	if t, ok := tags[l]; ok {
		return t
	}
	return tags[Default]
}

// Label is the native display name used by the language menu.
func (l Locale) Label() string { return labels[l] }

// HTMLLang is the value for the document lang attribute and hreflang.
func (l Locale) HTMLLang() string { return string(l) }

// OGLocale formats the locale for og:locale ("zh_TW").
func (l Locale) OGLocale() string {
	switch l {
	case En:
		return "en_US"
	case Ja:
		return "ja_JP"
	}
	return strings.ReplaceAll(string(l), "-", "_")
}
