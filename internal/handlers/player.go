package handlers

import (
	"fmt"
	"html/template"

	"hypertech.group/hypersystem-web/internal/i18n"
)

// PlayerView is the player system page.
type PlayerView struct {
	Modules TabsView
	FAQs    []FAQView
}

// FAQView is one accordion entry. Toggle opens it, or closes it when open.
type FAQView struct {
	Q      string
	A      template.HTML
	Open   bool
	Toggle StateLink
}

func (b *Builder) player(lk Linker, s State, m *i18n.Messages) (*PlayerView, error) {
	modules, err := b.tabs(lk, s, m.Player.Modules, s.Module, FragmentModules, func(s State, i int) State {
		s.Module = s.Module.Select(i)
		return s
	})
	if err != nil {
		return nil, err
	}
	v := &PlayerView{Modules: modules, FAQs: make([]FAQView, 0, len(m.Player.Faqs))}
	for i, f := range m.Player.Faqs {
		answer, err := b.Markdown.Block(f.A)
		if err != nil {
			return nil, fmt.Errorf("handlers: faq %d: %w", i, err)
		}
		next := s
		next.FAQ = s.FAQ.Toggle(i)
		v.FAQs = append(v.FAQs, FAQView{
			Q:      f.Q,
			A:      answer,
			Open:   s.FAQ.IsOpen(i),
			Toggle: lk.Link(FragmentFAQ, next),
		})
	}
	return v, nil
}
