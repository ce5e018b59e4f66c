package handlers

import (
	"strings"

	"hypertech.group/hypersystem-web/internal/calculator"
	"hypertech.group/hypersystem-web/internal/format"
	"hypertech.group/hypersystem-web/internal/i18n"
	"hypertech.group/hypersystem-web/internal/nav"
	"hypertech.group/hypersystem-web/internal/uistate"
)

// LandingView is the home page: hero, product preview, calculator and contact.
type LandingView struct {
	Cards      []HeroCard
	Product    TabsView
	Subtitle   []string
	Calculator CalculatorView
	Contact    StateLink
}

// HeroCard links from the hero to a system page.
type HeroCard struct {
	Title string
	Desc  string
	Href  string
	Dark  bool
}

// CalculatorView is the ROI calculator. Before a run only Pains and the buttons are set.
type CalculatorView struct {
	Pains []Option
	Run   StateLink
	Reset StateLink
	Ran   bool

	Money  string
	Hours  string
	Risk   string
	Growth string
}

func (b *Builder) landing(lk Linker, s State, m *i18n.Messages) (*LandingView, error) {
	product, err := b.tabs(lk, s, m.Product.Modules, s.Tab, FragmentProduct, func(s State, i int) State {
		s.Tab = s.Tab.Select(i)
		return s
	})
	if err != nil {
		return nil, err
	}
	return &LandingView{
		Cards: []HeroCard{
			{Title: m.Hero.Card1Title, Desc: m.Hero.Card1Desc, Href: nav.Path(lk.Locale, nav.Club, lk.TrailingSlash), Dark: true},
			{Title: m.Hero.Card2Title, Desc: m.Hero.Card2Desc, Href: nav.Path(lk.Locale, nav.Player, lk.TrailingSlash)},
		},
		Product:    product,
		Subtitle:   strings.Split(m.Product.Subtitle, "\n"),
		Calculator: b.calculator(lk, s, m),
		Contact:    lk.Link(FragmentModal, s.WithTrial()),
	}, nil
}

func (b *Builder) calculator(lk Linker, s State, m *i18n.Messages) CalculatorView {
	v := CalculatorView{Pains: make([]Option, 0, len(m.Calculator.PainPoints))}
	for i, label := range m.Calculator.PainPoints {
		next := s
		next.Calculator.Pains = s.Calculator.Pains.Toggle(i)
		v.Pains = append(v.Pains, Option{
			Index:  i,
			Label:  label,
			Active: s.Calculator.Pains.Has(i),
			Link:   lk.Link(FragmentCalculator, next),
		})
	}
	run := s
	run.Calculator.Ran = true
	v.Run = lk.Link(FragmentCalculator, run)
	reset := s
	reset.Calculator = calculator.State{Pains: uistate.ParseSet("", len(m.Calculator.PainPoints))}
	v.Reset = lk.Link(FragmentCalculator, reset)

	if res, ok := s.Calculator.Results(); ok {
		v.Ran = true
		v.Money = format.Money(res.Money, lk.Locale)
		v.Hours = format.Number(int64(res.Hours), lk.Locale)
		v.Risk = res.Risk
		if res.Risk == calculator.RiskHigh {
			v.Risk = m.Calculator.RiskHigh
		}
		v.Growth = res.Growth
	}
	return v
}
