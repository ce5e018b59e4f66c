package handlers

import (
	"hypertech.group/hypersystem-web/internal/brand"
	"hypertech.group/hypersystem-web/internal/i18n"
)

// ClubView is the club system page.
type ClubView struct {
	Modules    TabsView
	Highlights []HighlightView
	CTA        StateLink
}

// HighlightView is a feature card decorated with a card suit.
type HighlightView struct {
	Title string
	Desc  string
	Suit  string
}

func (b *Builder) club(lk Linker, s State, m *i18n.Messages) (*ClubView, error) {
	modules, err := b.tabs(lk, s, m.Club.Modules, s.Module, FragmentModules, func(s State, i int) State {
		s.Module = s.Module.Select(i)
		return s
	})
	if err != nil {
		return nil, err
	}
	v := &ClubView{Modules: modules, CTA: lk.Link(FragmentModal, s.WithTrial())}
	for i, h := range m.Club.Highlights {
		v.Highlights = append(v.Highlights, HighlightView{
			Title: h.Title,
			Desc:  h.Desc,
			Suit:  brand.CardSuits[i%len(brand.CardSuits)],
		})
	}
	return v, nil
}
