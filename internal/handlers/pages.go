package handlers

import (
	"fmt"
	"html/template"
	"net/url"

	"hypertech.group/hypersystem-web/internal/brand"
	"hypertech.group/hypersystem-web/internal/i18n"
	"hypertech.group/hypersystem-web/internal/locale"
	"hypertech.group/hypersystem-web/internal/markdown"
	"hypertech.group/hypersystem-web/internal/modal"
	"hypertech.group/hypersystem-web/internal/nav"
	"hypertech.group/hypersystem-web/internal/seo"
)

// PageData is the view model shared by every page and fragment using the layout.
type PageData struct {
	Locale    locale.Locale
	Lang      string
	View      nav.View
	Path      string
	State     State
	T         *i18n.Messages
	Meta      seo.Meta
	JSONLD    []template.JS
	Analytics Analytics
	Brand     Brand
	CSRFToken string

	Nav         []nav.RenderedItem
	NavTop      nav.Appearance
	NavScrolled nav.Appearance
	HomeHref    string
	Languages   []nav.LanguageLink
	Breadcrumbs []nav.Crumb
	TrialLink   StateLink

	Modal ModalView

	// Optional per-page view model payloads
	Landing  *LandingView
	Club     *ClubView
	Player   *PlayerView
	Pricing  *PricingView
	NotFound *NotFoundView
}

// Brand carries the static brand assets used by the layout.
type Brand struct {
	Name           string
	Logo           string
	LogoWhite      string
	HeroShowcase   string
	HeroBackground string
	Suits          []string
}

var defaultBrand = Brand{
	Name:           brand.Name,
	Logo:           brand.LogoURL,
	LogoWhite:      brand.LogoWhiteURL,
	HeroShowcase:   brand.HeroShowcaseURL,
	HeroBackground: brand.HeroBackground,
	Suits:          brand.CardSuits,
}

// NotFoundView backs the localized 404 page.
type NotFoundView struct {
	HomeHref string
}

// Builder assembles view models. It is safe for concurrent use once configured.
type Builder struct {
	Catalog       *i18n.Catalog
	Markdown      *markdown.Renderer
	BaseURL       string
	TrailingSlash bool
	Analytics     Analytics
}

// Request carries the per-request inputs of a render.
type Request struct {
	Locale    locale.Locale
	View      nav.View
	Query     url.Values
	Modal     *modal.Controller
	CSRFToken string
}

// Page builds the full view model of req.View. The modal controller is driven
// from the query so the overlay renders open when the URL asks for it.
func (b *Builder) Page(req Request) (*PageData, error) {
	m := b.Catalog.Messages(req.Locale)
	s := ParseState(req.Query, m, req.View)
	s.Apply(req.Modal, m.Pricing.Plans)

	lk := b.linker(req.Locale, req.View)
	d := b.base(req, m, s)
	d.Path = lk.PagePath(s)
	d.Meta = seo.Build(b.BaseURL, req.Locale, req.View, m.SEO, b.TrailingSlash)
	d.Languages = nav.LanguageLinks(d.Path, req.Locale)
	d.Breadcrumbs = nav.Breadcrumbs(req.Locale, req.View, m.Nav, b.TrailingSlash)
	d.JSONLD = b.jsonLD(d)

	modalView, err := b.modal(lk, s, req.Modal.State(), m)
	if err != nil {
		return nil, err
	}
	d.Modal = modalView

	switch req.View {
	case nav.Landing:
		d.Landing, err = b.landing(lk, s, m)
	case nav.Club:
		d.Club, err = b.club(lk, s, m)
	case nav.Player:
		d.Player, err = b.player(lk, s, m)
	case nav.Pricing:
		d.Pricing, err = b.pricing(lk, s, m)
	default:
		err = fmt.Errorf("handlers: unknown view %q", req.View)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// NotFound builds the 404 page in l.
func (b *Builder) NotFound(l locale.Locale, c *modal.Controller, csrfToken string) *PageData {
	m := b.Catalog.Messages(l)
	req := Request{Locale: l, Modal: c, CSRFToken: csrfToken}
	c.Close()
	d := b.base(req, m, State{})
	home := nav.Path(l, nav.Landing, b.TrailingSlash)
	d.Path = home
	d.Meta = seo.Meta{Title: m.Errors.NotFoundTitle + " | " + brand.Name, Description: m.Errors.NotFoundDesc}
	d.Languages = nav.LanguageLinks(home, l)
	d.NotFound = &NotFoundView{HomeHref: home}
	d.Modal = ModalView{Close: StateLink{Href: home}}
	return d
}

func (b *Builder) base(req Request, m *i18n.Messages, s State) *PageData {
	lk := b.linker(req.Locale, req.View)
	return &PageData{
		Locale:      req.Locale,
		Lang:        req.Locale.HTMLLang(),
		View:        req.View,
		State:       s,
		T:           m,
		Analytics:   b.Analytics,
		Brand:       defaultBrand,
		CSRFToken:   req.CSRFToken,
		Nav:         nav.Build(req.Locale, req.View, m.Nav, b.TrailingSlash),
		NavTop:      nav.AppearanceFor(0, req.View),
		NavScrolled: nav.AppearanceFor(nav.ScrollThreshold+1, req.View),
		HomeHref:    nav.Path(req.Locale, nav.Landing, b.TrailingSlash),
		TrialLink:   lk.Link(FragmentModal, s.WithTrial()),
	}
}

func (b *Builder) linker(l locale.Locale, v nav.View) Linker {
	return Linker{Locale: l, View: v, TrailingSlash: b.TrailingSlash}
}

func (b *Builder) jsonLD(d *PageData) []template.JS {
	m := d.T
	crumbs := make([]seo.BreadcrumbItem, 0, len(d.Breadcrumbs))
	for _, c := range d.Breadcrumbs {
		crumbs = append(crumbs, seo.BreadcrumbItem{Name: c.Label, Item: b.BaseURL + c.Href})
	}
	return []template.JS{
		seo.Script(seo.SoftwareApplication(brand.Name, m.SEO.Description, d.Meta.Canonical, brand.Organization,
			seo.Offer{Price: m.Pricing.Plans.Pro.Price, Currency: "TWD"})),
		seo.Script(seo.Organization(brand.Organization, b.BaseURL, brand.LogoURL)),
		seo.Script(seo.BreadcrumbList(crumbs)),
	}
}
