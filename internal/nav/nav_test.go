package nav

import (
	"testing"

	"hypertech.group/hypersystem-web/internal/brand"
	"hypertech.group/hypersystem-web/internal/i18n"
	"hypertech.group/hypersystem-web/internal/locale"
)

var navMsgs = i18n.NavMessages{Product: "Product", ClubSystem: "Club", PlayerSystem: "Player", Pricing: "Pricing", Home: "Home"}

func TestPath(t *testing.T) {
	cases := []struct {
		l     locale.Locale
		v     View
		slash bool
		want  string
	}{
		{locale.ZhTW, Landing, true, "/zh-TW/"},
		{locale.ZhTW, Landing, false, "/zh-TW"},
		{locale.En, Club, true, "/en/club/"},
		{locale.Ja, Pricing, false, "/ja/pricing"},
	}
	for _, c := range cases {
		if got := Path(c.l, c.v, c.slash); got != c.want {
			t.Errorf("Path(%s, %s, %v) = %q, want %q", c.l, c.v, c.slash, got, c.want)
		}
	}
}

func TestParseView(t *testing.T) {
	for _, v := range Views {
		got, ok := ParseView(v.Segment())
		if !ok || got != v {
			t.Fatalf("ParseView(%q) = %q, %v", v.Segment(), got, ok)
		}
	}
	if _, ok := ParseView("checkout"); ok {
		t.Fatal("unknown segment should not parse")
	}
}

func TestBuildMarksCurrentViewActive(t *testing.T) {
	items := Build(locale.En, Player, navMsgs, true)
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}
	for _, it := range items {
		if it.Active != (it.View == Player) {
			t.Errorf("item %s active=%v", it.View, it.Active)
		}
	}
	if items[2].Href != "/en/player/" || items[2].Label != "Player" {
		t.Errorf("unexpected player item: %+v", items[2])
	}
}

func TestScrolledThreshold(t *testing.T) {
	if Scrolled(0) || Scrolled(50) {
		t.Fatal("50 or less is not scrolled")
	}
	if !Scrolled(51) {
		t.Fatal("51 is scrolled")
	}
}

func TestDarkHero(t *testing.T) {
	cases := []struct {
		scrolled bool
		v        View
		want     bool
	}{
		{false, Club, true},
		{false, Player, true},
		{true, Club, false},
		{false, Landing, false},
		{false, Pricing, false},
	}
	for _, c := range cases {
		if got := DarkHero(c.scrolled, c.v); got != c.want {
			t.Errorf("DarkHero(%v, %s) = %v, want %v", c.scrolled, c.v, got, c.want)
		}
	}
}

func TestAppearanceFor(t *testing.T) {
	top := AppearanceFor(0, Club)
	if !top.DarkHero || top.Logo != brand.LogoWhiteURL {
		t.Fatalf("expected dark hero with white logo, got %+v", top)
	}
	scrolled := AppearanceFor(120, Club)
	if scrolled.DarkHero || scrolled.Logo != brand.LogoURL || !scrolled.Scrolled {
		t.Fatalf("expected light scrolled bar, got %+v", scrolled)
	}
	if AppearanceFor(0, Pricing).DarkHero {
		t.Fatal("pricing has a light hero")
	}
}

func TestSwitchLocale(t *testing.T) {
	cases := map[string]string{
		"/en/pricing/":         "/ja/pricing/",
		"/en/pricing":          "/ja/pricing",
		"/en/":                 "/ja/",
		"/en":                  "/ja",
		"/":                    "/ja/",
		"":                     "/ja/",
		"/zh-TW/club/?tab=2":   "/ja/club/?tab=2",
		"/pricing/":            "/ja/pricing/",
		"/zh-CN/player/?faq=1": "/ja/player/?faq=1",
	}
	for in, want := range cases {
		if got := SwitchLocale(in, locale.Ja); got != want {
			t.Errorf("SwitchLocale(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLanguageLinksFromPricing(t *testing.T) {
	links := LanguageLinks("/en/pricing/", locale.En)
	if len(links) != len(locale.All) {
		t.Fatalf("expected %d links, got %d", len(locale.All), len(links))
	}
	for _, link := range links {
		want := "/" + string(link.Locale) + "/pricing/"
		if link.Href != want {
			t.Errorf("link %s href = %q, want %q", link.Locale, link.Href, want)
		}
		if link.Active != (link.Locale == locale.En) {
			t.Errorf("link %s active=%v", link.Locale, link.Active)
		}
	}
	if links[0].Label != "繁體中文" {
		t.Errorf("unexpected first label %q", links[0].Label)
	}
}

func TestBreadcrumbs(t *testing.T) {
	crumbs := Breadcrumbs(locale.En, Landing, navMsgs, true)
	if len(crumbs) != 1 || !crumbs[0].Active {
		t.Fatalf("unexpected landing crumbs: %+v", crumbs)
	}
	crumbs = Breadcrumbs(locale.En, Pricing, navMsgs, true)
	if len(crumbs) != 2 || crumbs[1].Href != "/en/pricing/" || crumbs[1].Label != "Pricing" {
		t.Fatalf("unexpected pricing crumbs: %+v", crumbs)
	}
}
