// Package export renders the site into a directory of static files.
package export

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"hypertech.group/hypersystem-web/internal/config"
	"hypertech.group/hypersystem-web/internal/locale"
	"hypertech.group/hypersystem-web/internal/nav"
)

const (
	defaultConcurrency = 4
	missingPath        = "/_export-missing"
)

// Exporter drives an in-process handler and writes each response under Dir.
type Exporter struct {
	Handler     http.Handler
	Site        config.SiteConfig
	Assets      fs.FS
	Logger      *zap.Logger
	Concurrency int
}

// Result summarises one export run.
type Result struct {
	Pages  int
	Assets int
}

type target struct {
	urlPath    string
	file       string
	wantStatus int
}

// targets lists the request path and output file of every exported page,
// including the localized 404 page of the default locale.
func targets(site config.SiteConfig) []target {
	out := make([]target, 0, len(locale.All)*len(nav.Views)+1)
	for _, l := range locale.All {
		for _, v := range nav.Views {
			p := nav.Path(l, v, site.TrailingSlash)
			out = append(out, target{urlPath: p, file: fileFor(p), wantStatus: http.StatusOK})
		}
	}
	missing := "/" + string(site.DefaultLocale) + missingPath
	if site.TrailingSlash {
		missing += "/"
	}
	out = append(out, target{
		urlPath:    missing,
		file:       "404.html",
		wantStatus: http.StatusNotFound,
	})
	return out
}

// fileFor maps a URL path to the file a static host serves for it.
func fileFor(p string) string {
	p = strings.TrimPrefix(p, "/")
	if p == "" || strings.HasSuffix(p, "/") {
		return path.Join(p, "index.html")
	}
	if path.Ext(p) != "" {
		return p
	}
	if locale.IsSupported(p) {
		// locale root without trailing slash
		return path.Join(p, "index.html")
	}
	return p + ".html"
}

// Run writes every page, the root redirect, sitemap.xml, robots.txt and the
// asset tree into dir.
func (e *Exporter) Run(ctx context.Context, dir string) (Result, error) {
	logger := e.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if e.Handler == nil {
		return Result{}, fmt.Errorf("export: handler is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("export: create %s: %w", dir, err)
	}

	limit := e.Concurrency
	if limit <= 0 {
		limit = defaultConcurrency
	}

	var pages atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, t := range targets(e.Site) {
		t := t
		g.Go(func() error {
			if err := e.writeResponse(gctx, dir, t); err != nil {
				return err
			}
			pages.Add(1)
			logger.Debug("page exported", zap.String("path", t.urlPath), zap.String("file", t.file))
			return nil
		})
	}
	for _, t := range []target{
		{urlPath: "/sitemap.xml", file: "sitemap.xml", wantStatus: http.StatusOK},
		{urlPath: "/robots.txt", file: "robots.txt", wantStatus: http.StatusOK},
	} {
		t := t
		g.Go(func() error { return e.writeResponse(gctx, dir, t) })
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	if err := writeRootRedirect(dir, nav.Path(e.Site.DefaultLocale, nav.Landing, e.Site.TrailingSlash)); err != nil {
		return Result{}, err
	}

	res := Result{Pages: int(pages.Load())}
	if e.Assets != nil {
		n, err := copyTree(e.Assets, filepath.Join(dir, "assets"))
		if err != nil {
			return Result{}, err
		}
		res.Assets = n
	}
	logger.Info("export finished", zap.String("dir", dir), zap.Int("pages", res.Pages), zap.Int("assets", res.Assets))
	return res, nil
}

// Check renders every page without writing anything and returns how many
// rendered with the expected status.
func (e *Exporter) Check(ctx context.Context) (int, error) {
	if e.Handler == nil {
		return 0, fmt.Errorf("export: handler is required")
	}
	n := 0
	for _, t := range targets(e.Site) {
		if _, err := e.fetch(ctx, t); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func (e *Exporter) fetch(ctx context.Context, t target) ([]byte, error) {
	req := httptest.NewRequest(http.MethodGet, t.urlPath, nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	e.Handler.ServeHTTP(rec, req)
	if rec.Code != t.wantStatus {
		return nil, fmt.Errorf("export: GET %s: status %d, want %d", t.urlPath, rec.Code, t.wantStatus)
	}
	return rec.Body.Bytes(), nil
}

func (e *Exporter) writeResponse(ctx context.Context, dir string, t target) error {
	body, err := e.fetch(ctx, t)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, filepath.FromSlash(t.file)), body)
}

var redirectTmpl = template.Must(template.New("redirect").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="0; url={{.}}">
<link rel="canonical" href="{{.}}">
<title>HyperSystem</title>
</head>
<body><a href="{{.}}">{{.}}</a></body>
</html>
`))

// writeRootRedirect points / at the default locale, since a static host cannot
// read Accept-Language.
func writeRootRedirect(dir, to string) error {
	var b strings.Builder
	if err := redirectTmpl.Execute(&b, to); err != nil {
		return fmt.Errorf("export: root redirect: %w", err)
	}
	return writeFile(filepath.Join(dir, "index.html"), []byte(b.String()))
}

func writeFile(name string, body []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return fmt.Errorf("export: create dir for %s: %w", name, err)
	}
	if err := os.WriteFile(name, body, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", name, err)
	}
	return nil
}

func copyTree(src fs.FS, dst string) (int, error) {
	n := 0
	err := fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		in, err := src.Open(p)
		if err != nil {
			return err
		}
		defer in.Close()
		out, err := os.Create(target)
		if err != nil {
			return err
		}
		if _, err := io.Copy(out, in); err != nil {
			out.Close()
			return err
		}
		n++
		return out.Close()
	})
	if err != nil {
		return n, fmt.Errorf("export: copy assets: %w", err)
	}
	return n, nil
}
