// Package templates embeds the html/template sources of the site.
package templates

import "embed"

// FS holds layout.tmpl, partials/*.tmpl and pages/*.tmpl.
//
//go:embed layout.tmpl partials/*.tmpl pages/*.tmpl
var FS embed.FS
