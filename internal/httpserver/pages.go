package httpserver

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hypertech.group/hypersystem-web/internal/handlers"
	"hypertech.group/hypersystem-web/internal/leads"
	"hypertech.group/hypersystem-web/internal/locale"
	custommw "hypertech.group/hypersystem-web/internal/middleware"
	"hypertech.group/hypersystem-web/internal/modal"
	"hypertech.group/hypersystem-web/internal/nav"
	"hypertech.group/hypersystem-web/internal/observability"
	"hypertech.group/hypersystem-web/internal/pricing"
	"hypertech.group/hypersystem-web/internal/seo"
)

const (
	kindPage     = "page"
	kindFragment = "fragment"
)

// fragmentViews lists the views each fragment belongs to.
var fragmentViews = map[string][]nav.View{
	handlers.FragmentProduct:    {nav.Landing},
	handlers.FragmentCalculator: {nav.Landing},
	handlers.FragmentModules:    {nav.Club, nav.Player},
	handlers.FragmentFAQ:        {nav.Player},
	handlers.FragmentPricing:    {nav.Pricing},
	handlers.FragmentModal:      nav.Views,
}

func (a *app) request(r *http.Request, v nav.View, q url.Values) handlers.Request {
	return handlers.Request{
		Locale:    custommw.Locale(r.Context()),
		View:      v,
		Query:     q,
		Modal:     modal.FromContext(r.Context()),
		CSRFToken: custommw.CSRFToken(r.Context()),
	}
}

// page renders the full document of v.
func (a *app) page(v nav.View) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := a.builder.Page(a.request(r, v, r.URL.Query()))
		if err != nil {
			a.serverError(w, r, err)
			return
		}
		a.render(w, r, string(v), rootName, d, http.StatusOK, kindPage)
	}
}

// fragment renders one section of a page for htmx swaps.
func (a *app) fragment(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "fragment")
	v, ok := viewByName(r.URL.Query().Get(handlers.ParamView))
	if !ok || !fragmentOf(name, v) {
		a.notFound(w, r)
		return
	}
	q := r.URL.Query()
	q.Del(handlers.ParamView)
	d, err := a.builder.Page(a.request(r, v, q))
	if err != nil {
		a.serverError(w, r, err)
		return
	}
	a.render(w, r, string(v), name, d, http.StatusOK, kindFragment)
}

// modalClose swaps the overlay for its empty container.
func (a *app) modalClose(w http.ResponseWriter, r *http.Request) {
	v, ok := viewByName(r.URL.Query().Get(handlers.ParamView))
	if !ok {
		v = nav.Landing
	}
	d, err := a.builder.Page(a.request(r, v, url.Values{}))
	if err != nil {
		a.serverError(w, r, err)
		return
	}
	a.render(w, r, string(v), handlers.FragmentModal, d, http.StatusOK, kindFragment)
}

// contact accepts the modal form. htmx requests get the overlay back, plain
// form posts get the whole page.
func (a *app) contact(w http.ResponseWriter, r *http.Request) {
	form := leads.FormFromRequest(r)
	v, ok := viewByName(r.PostFormValue(handlers.ParamView))
	if !ok {
		v = nav.Landing
	}
	q := url.Values{handlers.ParamModal: {handlers.ModalTrial}}
	if k, ok := pricing.ParseKey(form.Plan); ok && pricing.CTA(k) == pricing.OpenSubscription {
		q = url.Values{handlers.ParamModal: {handlers.ModalSubscribe}, handlers.ParamPlan: {string(k)}}
	}
	req := a.request(r, v, q)
	d, err := a.builder.Page(req)
	if err != nil {
		a.serverError(w, r, err)
		return
	}

	status := http.StatusOK
	lead, err := a.intake.Submit(r.Context(), req.Locale, form)
	var verr *leads.ValidationError
	switch {
	case errors.As(err, &verr):
		status = http.StatusUnprocessableEntity
		handlers.ApplySubmission(d, req.Modal, form, verr)
	case err != nil:
		a.serverError(w, r, err)
		return
	default:
		observability.FromContext(r.Context()).Info("lead accepted", zap.String("lead_id", lead.ID.String()))
		handlers.ApplySubmission(d, req.Modal, form, nil)
	}

	if custommw.IsHTMX(r.Context()) {
		a.render(w, r, string(v), handlers.FragmentModal, d, status, kindFragment)
		return
	}
	a.render(w, r, string(v), rootName, d, status, kindPage)
}

// rootRedirect sends / to the preferred locale's landing page.
func (a *app) rootRedirect(w http.ResponseWriter, r *http.Request) {
	l := custommw.PreferredLocale(r, a.cfg.Site.DefaultLocale)
	w.Header().Add("Vary", "Accept-Language")
	w.Header().Add("Vary", "Cookie")
	http.Redirect(w, r, nav.Path(l, nav.Landing, a.cfg.Site.TrailingSlash), http.StatusFound)
}

// notFound renders the 404 page, localized when the first path segment is a locale.
func (a *app) notFound(w http.ResponseWriter, r *http.Request) {
	l := a.cfg.Site.DefaultLocale
	first, _, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/"), "/")
	if locale.IsSupported(first) {
		l = locale.Locale(first)
	}
	d := a.builder.NotFound(l, &modal.Controller{}, custommw.CSRFToken(r.Context()))
	a.render(w, r, setNotFound, rootName, d, http.StatusNotFound, kindPage)
}

// forbiddenMessage is the CSRF rejection text in l.
func (a *app) forbiddenMessage(l locale.Locale) string {
	return a.builder.Catalog.Messages(l).Errors.Forbidden
}

func (a *app) robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(seo.Robots(a.cfg.Site.BaseURL)))
}

func (a *app) sitemapXML(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(a.sitemap)
}

func (a *app) render(w http.ResponseWriter, r *http.Request, set, name string, d *handlers.PageData, status int, kind string) {
	body, err := a.renderer.Render(set, name, d)
	if err != nil {
		a.serverError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
	a.metrics.ObserveRender(string(d.Locale), set, kind)
}

func (a *app) serverError(w http.ResponseWriter, r *http.Request, err error) {
	observability.FromContext(r.Context()).Error("render failed", zap.Error(err), zap.String("path", r.URL.Path))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func viewByName(name string) (nav.View, bool) {
	if name == "" {
		return nav.Landing, true
	}
	for _, v := range nav.Views {
		if string(v) == name {
			return v, true
		}
	}
	return "", false
}

func fragmentOf(name string, v nav.View) bool {
	for _, fv := range fragmentViews[name] {
		if fv == v {
			return true
		}
	}
	return false
}
