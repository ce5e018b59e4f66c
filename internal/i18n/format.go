package i18n

import (
	"fmt"
	"strings"
)

// Params supplies values for {name} placeholders.
type Params map[string]string

// Format replaces {name} placeholders in tmpl with params. A placeholder without a
// value is an error rather than an empty string. Braces that do not enclose an
// identifier are copied through unchanged.
func Format(tmpl string, params Params) (string, error) {
	if !strings.Contains(tmpl, "{") {
		return tmpl, nil
	}
	var b strings.Builder
	b.Grow(len(tmpl))
	rest := tmpl
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[open+1:], '}')
		if end < 0 {
			b.WriteString(rest)
			break
		}
		name := rest[open+1 : open+1+end]
		if !isIdent(name) {
			b.WriteString(rest[:open+1])
			rest = rest[open+1:]
			continue
		}
		value, ok := params[name]
		if !ok {
			return "", fmt.Errorf("%w: {%s} in %q", ErrMissingParam, name, tmpl)
		}
		b.WriteString(rest[:open])
		b.WriteString(value)
		rest = rest[open+1+end+1:]
	}
	return b.String(), nil
}

// Placeholders lists the placeholder names used by tmpl in order of appearance.
func Placeholders(tmpl string) []string {
	var out []string
	rest := tmpl
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			return out
		}
		end := strings.IndexByte(rest[open+1:], '}')
		if end < 0 {
			return out
		}
		name := rest[open+1 : open+1+end]
		if isIdent(name) {
			out = append(out, name)
			rest = rest[open+1+end+1:]
			continue
		}
		rest = rest[open+1:]
	}
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
