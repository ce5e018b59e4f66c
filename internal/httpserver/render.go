package httpserver

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"os"
)

// Template sets; each one is the shared layout plus pages/<set>.tmpl.
const (
	setNotFound = "notfound"
	rootName    = "root"
)

var pageSets = []string{"landing", "club", "player", "pricing", setNotFound}

// SectionTitle feeds the section_title partial.
type SectionTitle struct {
	Tag   string
	Title string
	Lines []string
}

var funcMap = template.FuncMap{
	// section builds a SectionTitle; extra values are strings or string slices.
	"section": func(tag, title string, extra ...any) SectionTitle {
		s := SectionTitle{Tag: tag, Title: title}
		for _, e := range extra {
			switch v := e.(type) {
			case string:
				if v != "" {
					s.Lines = append(s.Lines, v)
				}
			case []string:
				s.Lines = append(s.Lines, v...)
			}
		}
		return s
	},
}

// Renderer executes page and fragment templates into buffers. In dev mode the
// sets are reparsed from disk on every render.
type Renderer struct {
	fsys   fs.FS
	devDir string
	sets   map[string]*template.Template
}

// NewRenderer parses every set from fsys. A non-empty devDir switches to
// reparsing from that directory per render.
func NewRenderer(fsys fs.FS, devDir string) (*Renderer, error) {
	r := &Renderer{fsys: fsys, devDir: devDir}
	if devDir != "" {
		r.fsys = os.DirFS(devDir)
	}
	sets, err := parseSets(r.fsys)
	if err != nil {
		return nil, err
	}
	r.sets = sets
	return r, nil
}

func parseSets(fsys fs.FS) (map[string]*template.Template, error) {
	base, err := template.New("_root").Funcs(funcMap).ParseFS(fsys, "layout.tmpl", "partials/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	sets := make(map[string]*template.Template, len(pageSets))
	for _, name := range pageSets {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		if _, err := t.ParseFS(fsys, "pages/"+name+".tmpl"); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		sets[name] = t
	}
	return sets, nil
}

// Render executes template name of set into a buffer so failures never leave
// partial markup on the wire.
func (r *Renderer) Render(set, name string, data any) ([]byte, error) {
	sets := r.sets
	if r.devDir != "" {
		fresh, err := parseSets(r.fsys)
		if err != nil {
			return nil, fmt.Errorf("template parse error: %w", err)
		}
		sets = fresh
	}
	t, ok := sets[set]
	if !ok {
		return nil, fmt.Errorf("unknown template set %q", set)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("template exec error: %w", err)
	}
	return buf.Bytes(), nil
}
