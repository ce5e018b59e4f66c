package handlers

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"hypertech.group/hypersystem-web/internal/i18n"
	"hypertech.group/hypersystem-web/internal/leads"
	"hypertech.group/hypersystem-web/internal/locale"
	"hypertech.group/hypersystem-web/internal/markdown"
	"hypertech.group/hypersystem-web/internal/modal"
	"hypertech.group/hypersystem-web/internal/nav"
	"hypertech.group/hypersystem-web/internal/pricing"
)

func newBuilder(t *testing.T) *Builder {
	t.Helper()
	cat, err := i18n.LoadEmbedded()
	require.NoError(t, err)
	return &Builder{Catalog: cat, Markdown: markdown.New(), BaseURL: "https://hypersystem.tw", TrailingSlash: true}
}

func page(t *testing.T, b *Builder, l locale.Locale, v nav.View, rawQuery string) (*PageData, *modal.Controller) {
	t.Helper()
	q, err := url.ParseQuery(rawQuery)
	require.NoError(t, err)
	c := &modal.Controller{}
	d, err := b.Page(Request{Locale: l, View: v, Query: q, Modal: c, CSRFToken: "tok"})
	require.NoError(t, err)
	return d, c
}

// follow parses the query of a state link href.
func follow(t *testing.T, link StateLink) string {
	t.Helper()
	u, err := url.Parse(link.Href)
	require.NoError(t, err)
	return u.RawQuery
}

func TestParseStateModalFallbacks(t *testing.T) {
	b := newBuilder(t)
	m := b.Catalog.Messages(locale.En)

	s := ParseState(url.Values{"modal": {"subscribe"}, "plan": {"free"}}, m, nav.Pricing)
	require.Equal(t, ModalTrial, s.Modal)
	require.Empty(t, s.Plan)

	s = ParseState(url.Values{"modal": {"subscribe"}, "plan": {"gold"}}, m, nav.Pricing)
	require.Equal(t, ModalTrial, s.Modal)

	s = ParseState(url.Values{"modal": {"subscribe"}, "plan": {"pro"}}, m, nav.Pricing)
	require.Equal(t, ModalSubscribe, s.Modal)
	require.Equal(t, pricing.Pro, s.Plan)
	require.Equal(t, "modal=subscribe&plan=pro", s.Encode())

	require.Empty(t, ParseState(url.Values{"tab": {"9"}, "faq": {"x"}}, m, nav.Landing).Encode())
}

func TestLandingHeroCardsLinkToSystems(t *testing.T) {
	d, _ := page(t, newBuilder(t), locale.ZhTW, nav.Landing, "")
	require.NotNil(t, d.Landing)
	require.Equal(t, "/zh-TW/club/", d.Landing.Cards[0].Href)
	require.Equal(t, "/zh-TW/player/", d.Landing.Cards[1].Href)
	require.Equal(t, "/zh-TW/", d.Path)
	require.Len(t, d.JSONLD, 3)
	require.Contains(t, string(d.JSONLD[0]), `"price":5000`)
}

func TestProductTabs(t *testing.T) {
	b := newBuilder(t)
	d, _ := page(t, b, locale.En, nav.Landing, "")
	tabs := d.Landing.Product
	require.True(t, tabs.Options[0].Active)
	require.Contains(t, string(tabs.Active.Desc), "<strong>publish everywhere</strong>")

	second := tabs.Options[1].Link
	require.Equal(t, "/en/?tab=1", second.Href)
	require.Equal(t, "/en/_fragments/product?tab=1&view=landing", second.Fragment)
	require.Equal(t, "#product", second.Target)

	d, _ = page(t, b, locale.En, nav.Landing, follow(t, second))
	require.True(t, d.Landing.Product.Options[1].Active)
	require.Equal(t, "CRM Management", d.Landing.Product.Active.Name)
}

func TestCalculatorPainToggleRoundTrip(t *testing.T) {
	b := newBuilder(t)
	d, _ := page(t, b, locale.En, nav.Landing, "")
	calc := d.Landing.Calculator
	require.False(t, calc.Ran)

	d, _ = page(t, b, locale.En, nav.Landing, follow(t, calc.Pains[2].Link))
	require.True(t, d.Landing.Calculator.Pains[2].Active)

	d, _ = page(t, b, locale.En, nav.Landing, follow(t, d.Landing.Calculator.Pains[2].Link))
	require.False(t, d.Landing.Calculator.Pains[2].Active)
	require.Empty(t, d.State.Encode())
}

func TestCalculatorRun(t *testing.T) {
	b := newBuilder(t)
	d, _ := page(t, b, locale.En, nav.Landing, "pains=0,3")
	d, _ = page(t, b, locale.En, nav.Landing, follow(t, d.Landing.Calculator.Run))
	calc := d.Landing.Calculator
	require.True(t, calc.Ran)
	require.Equal(t, "$450,000", calc.Money)
	require.Equal(t, "120", calc.Hours)
	require.Equal(t, "High", calc.Risk)
	require.Equal(t, "+25%", calc.Growth)

	d, _ = page(t, b, locale.En, nav.Landing, follow(t, calc.Reset))
	require.False(t, d.Landing.Calculator.Ran)
	require.Empty(t, d.State.Encode())
}

func TestPricingBillingToggle(t *testing.T) {
	b := newBuilder(t)
	d, _ := page(t, b, locale.En, nav.Pricing, "")
	p := d.Pricing
	require.True(t, p.Annual)
	pro := p.Plans[2]
	require.Equal(t, pricing.Pro, pro.Key)
	require.True(t, pro.Popular)
	require.EqualValues(t, 50000, pro.PriceValue)
	require.Equal(t, "$50,000", pro.Price)
	require.Equal(t, "year", pro.Unit)
	require.Equal(t, "$4,167", pro.Avg)

	d, _ = page(t, b, locale.En, nav.Pricing, follow(t, p.Toggle))
	monthly := d.Pricing.Plans[2]
	require.False(t, d.Pricing.Annual)
	require.EqualValues(t, 5000, monthly.PriceValue)
	require.Equal(t, "month", monthly.Unit)
	require.Empty(t, monthly.Avg)
	require.True(t, monthly.Popular)

	d, _ = page(t, b, locale.En, nav.Pricing, follow(t, d.Pricing.Toggle))
	require.EqualValues(t, 50000, d.Pricing.Plans[2].PriceValue)
}

func TestPricingFreePlanHasNoAnnualPrice(t *testing.T) {
	d, _ := page(t, newBuilder(t), locale.En, nav.Pricing, "")
	free := d.Pricing.Plans[0]
	require.EqualValues(t, 0, free.PriceValue)
	require.Equal(t, "Get Started Free", free.CTALabel)
	require.Contains(t, free.CTA.Href, "modal=trial")
	require.NotContains(t, free.CTA.Href, "plan=")
}

func TestPricingDetails(t *testing.T) {
	b := newBuilder(t)
	d, _ := page(t, b, locale.En, nav.Pricing, "")
	require.False(t, d.Pricing.Details)
	require.Len(t, d.Pricing.Compare, 5)
	require.Len(t, d.Pricing.Compare[0].Cells, 4)

	d, _ = page(t, b, locale.En, nav.Pricing, follow(t, d.Pricing.DetailsLink))
	require.True(t, d.Pricing.Details)
	require.Equal(t, "Hide comparison", d.Pricing.DetailsLabel)
}

func TestSubscriptionThenTrial(t *testing.T) {
	b := newBuilder(t)
	d, _ := page(t, b, locale.En, nav.Pricing, "")
	d, c := page(t, b, locale.En, nav.Pricing, follow(t, d.Pricing.Plans[2].CTA))
	require.True(t, c.State().Subscription())
	require.Equal(t, "Pro", c.State().Plan)
	require.Equal(t, "Subscribe to Pro", d.Modal.Title)
	require.Equal(t, "pro", d.Modal.PlanKey)

	d, c = page(t, b, locale.En, nav.Pricing, follow(t, d.Modal.Close))
	require.False(t, c.IsOpen())
	require.False(t, d.Modal.Open)

	d, c = page(t, b, locale.En, nav.Pricing, follow(t, d.TrialLink))
	require.True(t, c.IsOpen())
	require.Empty(t, c.State().Plan)
	require.Equal(t, "Request a Free Trial", d.Modal.Title)
}

func TestPlayerFAQAccordion(t *testing.T) {
	b := newBuilder(t)
	d, _ := page(t, b, locale.En, nav.Player, "")
	for _, f := range d.Player.FAQs {
		require.False(t, f.Open)
	}
	d, _ = page(t, b, locale.En, nav.Player, follow(t, d.Player.FAQs[1].Toggle))
	require.True(t, d.Player.FAQs[1].Open)
	require.Equal(t, "#faq", d.Player.FAQs[1].Toggle.Target)

	d, _ = page(t, b, locale.En, nav.Player, follow(t, d.Player.FAQs[1].Toggle))
	require.False(t, d.Player.FAQs[1].Open)
}

func TestClubModulesAndNav(t *testing.T) {
	d, _ := page(t, newBuilder(t), locale.Ja, nav.Club, "module=1")
	require.True(t, d.Club.Modules.Options[1].Active)
	require.Len(t, d.Club.Highlights, 4)
	require.Equal(t, "♠", d.Club.Highlights[0].Suit)
	require.True(t, d.NavTop.DarkHero)
	require.False(t, d.NavScrolled.DarkHero)

	for _, it := range d.Nav {
		require.Equal(t, it.View == nav.Club, it.Active)
	}
	for _, lang := range d.Languages {
		require.True(t, strings.HasPrefix(lang.Href, "/"+string(lang.Locale)+"/club/"), lang.Href)
	}
}

func TestApplySubmission(t *testing.T) {
	b := newBuilder(t)
	d, c := page(t, b, locale.En, nav.Landing, "modal=trial")
	ApplySubmission(d, c, leads.Form{Brand: "x"}, &leads.ValidationError{Fields: map[string]leads.Problem{
		"contact": leads.ProblemRequired,
		"phone":   leads.ProblemInvalid,
	}})
	require.True(t, d.Modal.Open)
	require.Equal(t, "x", d.Modal.Values.Brand)
	require.Equal(t, "This field is required", d.Modal.Errors["contact"])
	require.True(t, d.Modal.HasError("phone"))
	require.False(t, d.Modal.HasError("brand"))

	ApplySubmission(d, c, leads.Form{}, nil)
	require.True(t, d.Modal.Thanks)
	require.False(t, c.IsOpen())
}

func TestNotFound(t *testing.T) {
	d := newBuilder(t).NotFound(locale.Ja, &modal.Controller{}, "")
	require.Equal(t, "/ja/", d.NotFound.HomeHref)
	require.Equal(t, "ja", d.Lang)
	for _, it := range d.Nav {
		require.False(t, it.Active)
	}
}
