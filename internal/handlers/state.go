package handlers

import (
	"net/url"

	"hypertech.group/hypersystem-web/internal/calculator"
	"hypertech.group/hypersystem-web/internal/i18n"
	"hypertech.group/hypersystem-web/internal/locale"
	"hypertech.group/hypersystem-web/internal/modal"
	"hypertech.group/hypersystem-web/internal/nav"
	"hypertech.group/hypersystem-web/internal/pricing"
	"hypertech.group/hypersystem-web/internal/uistate"
)

// Query parameter names of the page state.
const (
	ParamTab     = "tab"
	ParamModule  = "module"
	ParamFAQ     = "faq"
	ParamPains   = "pains"
	ParamRun     = "run"
	ParamBilling = "billing"
	ParamDetails = "details"
	ParamModal   = "modal"
	ParamPlan    = "plan"
	ParamView    = "view"
)

// Fragment names; each is also the id of the element it replaces.
const (
	FragmentProduct    = "product"
	FragmentCalculator = "calculator"
	FragmentFAQ        = "faq"
	FragmentModules    = "modules"
	FragmentPricing    = "pricing"
	FragmentModal      = "modal"
)

// Modal query values.
const (
	ModalTrial     = "trial"
	ModalSubscribe = "subscribe"
)

// State is everything a page remembers between clicks. It lives entirely in the URL,
// so a reload without query resets it.
type State struct {
	Tab        uistate.Tabs
	Module     uistate.Tabs
	FAQ        uistate.Accordion
	Calculator calculator.State
	Billing    pricing.Billing
	Details    bool
	Modal      string
	Plan       pricing.Key
}

// ParseState reads the state of a page of m from values. Counts come from the
// bundle so indices past the translated lists are dropped.
func ParseState(values url.Values, m *i18n.Messages, v nav.View) State {
	s := State{
		Tab:        uistate.ParseTabs(values.Get(ParamTab), len(m.Product.Modules)),
		Module:     uistate.ParseTabs(values.Get(ParamModule), moduleCount(m, v)),
		FAQ:        uistate.ParseAccordion(values.Get(ParamFAQ), len(m.Player.Faqs)),
		Calculator: calculator.ParseState(values.Get(ParamPains), values.Get(ParamRun), len(m.Calculator.PainPoints)),
		Billing:    pricing.ParseBilling(values.Get(ParamBilling)),
		Details:    uistate.Flag(values.Get(ParamDetails)),
	}
	switch values.Get(ParamModal) {
	case ModalTrial:
		s.Modal = ModalTrial
	case ModalSubscribe:
		s.Modal = ModalSubscribe
		if k, ok := pricing.ParseKey(values.Get(ParamPlan)); ok && pricing.CTA(k) == pricing.OpenSubscription {
			s.Plan = k
		} else {
			// free or unknown plans fall back to the generic trial request
			s.Modal = ModalTrial
		}
	}
	return s
}

func moduleCount(m *i18n.Messages, v nav.View) int {
	if v == nav.Club {
		return len(m.Club.Modules)
	}
	return len(m.Player.Modules)
}

// Values encodes s, leaving defaults out so the plain page URL stays canonical.
func (s State) Values() url.Values {
	out := url.Values{}
	set := func(k, v string) {
		if v != "" {
			out.Set(k, v)
		}
	}
	set(ParamTab, s.Tab.Param())
	set(ParamModule, s.Module.Param())
	set(ParamFAQ, s.FAQ.Param())
	set(ParamPains, s.Calculator.Pains.Param())
	if s.Calculator.Ran {
		out.Set(ParamRun, "1")
	}
	set(ParamBilling, s.Billing.Param())
	if s.Details {
		out.Set(ParamDetails, "1")
	}
	set(ParamModal, s.Modal)
	if s.Modal == ModalSubscribe {
		set(ParamPlan, string(s.Plan))
	}
	return out
}

// Encode is the query string of s, keys sorted.
func (s State) Encode() string { return s.Values().Encode() }

// WithTrial opens the generic trial request.
func (s State) WithTrial() State {
	s.Modal, s.Plan = ModalTrial, ""
	return s
}

// WithSubscription opens the subscription request for k. Plans without a paid
// checkout open the trial request instead.
func (s State) WithSubscription(k pricing.Key) State {
	if pricing.CTA(k) != pricing.OpenSubscription {
		return s.WithTrial()
	}
	s.Modal, s.Plan = ModalSubscribe, k
	return s
}

// WithoutModal closes the overlay.
func (s State) WithoutModal() State {
	s.Modal, s.Plan = "", ""
	return s
}

// Apply drives c to the overlay described by s. Plan names are localized from plans.
func (s State) Apply(c *modal.Controller, plans i18n.Plans) {
	switch s.Modal {
	case ModalTrial:
		c.OpenTrial()
	case ModalSubscribe:
		c.OpenSubscription(pricing.Plan(plans, s.Plan).Name)
	default:
		c.Close()
	}
}

// StateLink is a control that moves a page to another state: Href reloads the full
// page, Fragment is fetched by htmx and swapped into Target.
type StateLink struct {
	Href     string
	Fragment string
	Target   string
}

// Linker builds StateLinks for one page.
type Linker struct {
	Locale        locale.Locale
	View          nav.View
	TrailingSlash bool
}

// PagePath is the page URL for s.
func (lk Linker) PagePath(s State) string {
	p := nav.Path(lk.Locale, lk.View, lk.TrailingSlash)
	if q := s.Encode(); q != "" {
		return p + "?" + q
	}
	return p
}

// FragmentPath is the htmx endpoint of fragment for s.
func (lk Linker) FragmentPath(fragment string, s State) string {
	v := s.Values()
	v.Set(ParamView, string(lk.View))
	return "/" + string(lk.Locale) + "/_fragments/" + fragment + "?" + v.Encode()
}

// Link targets fragment (swapped into #fragment) with next as the new state.
func (lk Linker) Link(fragment string, next State) StateLink {
	return StateLink{
		Href:     lk.PagePath(next),
		Fragment: lk.FragmentPath(fragment, next),
		Target:   "#" + fragment,
	}
}
