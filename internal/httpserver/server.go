package httpserver

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"hypertech.group/hypersystem-web/internal/config"
	"hypertech.group/hypersystem-web/internal/handlers"
	"hypertech.group/hypersystem-web/internal/i18n"
	"hypertech.group/hypersystem-web/internal/leads"
	"hypertech.group/hypersystem-web/internal/markdown"
	custommw "hypertech.group/hypersystem-web/internal/middleware"
	"hypertech.group/hypersystem-web/internal/modal"
	"hypertech.group/hypersystem-web/internal/nav"
	"hypertech.group/hypersystem-web/internal/seo"
	"hypertech.group/hypersystem-web/public"
	"hypertech.group/hypersystem-web/templates"
)

// Config holds runtime options for the site HTTP server. Zero-valued dependencies
// fall back to the embedded defaults.
type Config struct {
	App       config.Config
	Logger    *zap.Logger
	Catalog   *i18n.Catalog
	Templates fs.FS
	Assets    fs.FS
	LeadSink  leads.Sink
	Registry  *prometheus.Registry

	// TracerProvider and Propagator default to the otel globals.
	TracerProvider trace.TracerProvider
	Propagator     propagation.TextMapPropagator
}

// New constructs the HTTP server with middleware stack and embedded assets.
func New(cfg Config) (*http.Server, error) {
	h, err := NewHandler(cfg)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:              cfg.App.Server.Addr,
		Handler:           h,
		ReadHeaderTimeout: cfg.App.Server.ReadTimeout,
		ReadTimeout:       cfg.App.Server.ReadTimeout,
		WriteTimeout:      cfg.App.Server.WriteTimeout,
		IdleTimeout:       cfg.App.Server.IdleTimeout,
	}, nil
}

// NewHandler builds the routed, instrumented handler without binding a listener.
func NewHandler(cfg Config) (http.Handler, error) {
	a, err := newApp(cfg)
	if err != nil {
		return nil, err
	}
	var opts []otelhttp.Option
	if cfg.TracerProvider != nil {
		opts = append(opts, otelhttp.WithTracerProvider(cfg.TracerProvider))
	}
	if cfg.Propagator != nil {
		opts = append(opts, otelhttp.WithPropagators(cfg.Propagator))
	}
	operation := cfg.App.Tracing.ServiceName
	if operation == "" {
		operation = "hypersystem-web"
	}
	return otelhttp.NewHandler(a.routes(), operation, opts...), nil
}

type app struct {
	cfg      config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	metrics  *custommw.Metrics
	builder  *handlers.Builder
	renderer *Renderer
	intake   *leads.Intake
	assets   fs.FS
	sitemap  []byte
}

func newApp(cfg Config) (*app, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	catalog := cfg.Catalog
	if catalog == nil {
		c, err := i18n.LoadEmbedded()
		if err != nil {
			return nil, fmt.Errorf("load messages: %w", err)
		}
		catalog = c
	}

	tmplFS := cfg.Templates
	if tmplFS == nil {
		tmplFS = templates.FS
	}
	devDir := ""
	if cfg.App.Templates.Dev {
		devDir = cfg.App.Templates.Dir
	}
	renderer, err := NewRenderer(tmplFS, devDir)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	assets := cfg.Assets
	if assets == nil {
		a, err := public.AssetsFS()
		if err != nil {
			return nil, fmt.Errorf("embed assets: %w", err)
		}
		assets = a
	}

	sink := cfg.LeadSink
	if sink == nil {
		sink = leads.LogSink{Logger: logger.Named("leads")}
	}

	reg := cfg.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	site := cfg.App.Site
	sitemap, err := seo.Sitemap(site.BaseURL, site.TrailingSlash)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg.App,
		logger:   logger,
		registry: reg,
		metrics:  custommw.NewMetrics(reg),
		builder: &handlers.Builder{
			Catalog:       catalog,
			Markdown:      markdown.New(),
			BaseURL:       site.BaseURL,
			TrailingSlash: site.TrailingSlash,
			Analytics:     handlers.AnalyticsFromConfig(cfg.App.Analytics),
		},
		renderer: renderer,
		intake:   leads.NewIntake(sink),
		assets:   assets,
		sitemap:  sitemap,
	}, nil
}

func (a *app) routes() http.Handler {
	secure := a.cfg.SecureCookies()
	trailing := a.cfg.Site.TrailingSlash
	notFound := http.HandlerFunc(a.notFound)

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.GetHead)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP.
	router.Use(chimw.RealIP)
	router.Use(custommw.Logger(a.logger))
	router.Use(a.metrics.Handler)
	router.Use(chimw.Recoverer)
	router.Use(chimw.Compress(5))
	router.Use(chimw.Timeout(a.cfg.Server.RequestTimeout))
	router.Use(custommw.HTMX)
	router.NotFound(a.notFound)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
	router.Get("/robots.txt", a.robots)
	router.Get("/sitemap.xml", a.sitemapXML)
	router.Handle("/assets/*", http.StripPrefix("/assets", custommw.AssetsWithCache(a.assets)))
	router.Get("/", a.rootRedirect)

	router.Route("/{locale}", func(r chi.Router) {
		r.Use(custommw.RouteLocale(notFound, secure))
		r.Use(custommw.VaryLocale)
		r.Use(custommw.TrailingSlash(trailing))
		r.Use(custommw.CSRF(secure, a.forbiddenMessage))
		r.Use(modal.Provide)

		for _, v := range nav.Views {
			r.Get(pagePattern(v, trailing), a.page(v))
		}
		r.Post("/contact", a.contact)

		r.Route("/_fragments", func(r chi.Router) {
			r.Use(custommw.RequireHTMX(notFound))
			r.Get("/modal/close", a.modalClose)
			r.Get("/{fragment}", a.fragment)
		})
	})
	return router
}

// pagePattern is the route of v relative to the locale prefix.
func pagePattern(v nav.View, trailing bool) string {
	seg := v.Segment()
	if seg == "" {
		return "/"
	}
	if trailing {
		return "/" + seg + "/"
	}
	return "/" + seg
}
