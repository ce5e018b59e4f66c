package handlers

import (
	"fmt"
	"html/template"

	"hypertech.group/hypersystem-web/internal/format"
	"hypertech.group/hypersystem-web/internal/i18n"
	"hypertech.group/hypersystem-web/internal/pricing"
)

// PricingView is the pricing page.
type PricingView struct {
	Annual       bool
	Toggle       StateLink
	Plans        []PlanView
	Details      bool
	DetailsLink  StateLink
	DetailsLabel string
	PlanNames    []string
	Compare      []CompareRowView
	Addons       []i18n.Addon
	AddonNote    template.HTML
}

// PlanView is one column of the plan grid.
type PlanView struct {
	Key        pricing.Key
	Name       string
	Tag        string
	Desc       string
	PriceValue int64
	Price      string
	Unit       string
	Avg        string
	Popular    bool
	Features   []string
	CTA        StateLink
	CTALabel   string
}

// CompareRowView is one line of the comparison table, cells in plan order.
type CompareRowView struct {
	Label string
	Cells []string
}

func (b *Builder) pricing(lk Linker, s State, m *i18n.Messages) (*PricingView, error) {
	pm := m.Pricing
	toggled := s
	toggled.Billing = s.Billing.Toggle()
	details := s
	details.Details = !s.Details

	v := &PricingView{
		Annual:       s.Billing.IsAnnual(),
		Toggle:       lk.Link(FragmentPricing, toggled),
		Details:      s.Details,
		DetailsLink:  lk.Link(FragmentPricing, details),
		DetailsLabel: pm.ShowDetail,
		Addons:       pm.Addons.Items,
	}
	if s.Details {
		v.DetailsLabel = pm.HideDetail
	}

	unit := pm.MonthUnit
	if s.Billing.IsAnnual() {
		unit = pm.YearUnit
	}
	for _, k := range pricing.Keys {
		p := pricing.Plan(pm.Plans, k)
		price := pricing.Price(p, s.Billing)
		pv := PlanView{
			Key:        k,
			Name:       p.Name,
			Tag:        p.Tag,
			Desc:       p.Desc,
			PriceValue: price,
			Price:      format.Money(price, lk.Locale),
			Unit:       unit,
			Popular:    k == pricing.Popular,
			Features:   p.Features,
			CTA:        lk.Link(FragmentModal, s.WithSubscription(k)),
			CTALabel:   pm.CtaPaid,
		}
		if pricing.CTA(k) == pricing.OpenTrial {
			pv.CTALabel = pm.CtaFree
		}
		if avg, ok := pricing.AverageMonthly(p, s.Billing); ok {
			pv.Avg = format.Money(avg, lk.Locale)
		}
		v.Plans = append(v.Plans, pv)
		v.PlanNames = append(v.PlanNames, p.Name)
	}

	for _, row := range pm.Compare {
		v.Compare = append(v.Compare, CompareRowView{
			Label: row.Label,
			Cells: []string{row.Free, row.Starter, row.Pro, row.Enterprise},
		})
	}

	note, err := b.Markdown.Inline(pm.Addons.Note)
	if err != nil {
		return nil, fmt.Errorf("handlers: addons note: %w", err)
	}
	v.AddonNote = note
	return v, nil
}
