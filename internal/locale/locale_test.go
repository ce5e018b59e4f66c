package locale

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	for _, l := range All {
		got, err := Parse(string(l))
		if err != nil || got != l {
			t.Fatalf("Parse(%q) = %q, %v", l, got, err)
		}
	}
	if got, err := Parse("zh-tw"); err != nil || got != ZhTW {
		t.Fatalf("expected case-insensitive match, got %q, %v", got, err)
	}
	for _, code := range []string{"", "fr", "zh", "en-US", "zh-HK"} {
		if _, err := Parse(code); !errors.Is(err, ErrUnsupported) {
			t.Errorf("Parse(%q) expected ErrUnsupported, got %v", code, err)
		}
	}
}

func TestIsSupportedIsExact(t *testing.T) {
	if !IsSupported("ja") {
		t.Fatal("ja should be supported")
	}
	if IsSupported("JA") {
		t.Fatal("route prefixes are case sensitive")
	}
}

func TestNegotiate(t *testing.T) {
	cases := map[string]Locale{
		"":                         ZhTW,
		"ja,en;q=0.5":              Ja,
		"en-US,en;q=0.9":           En,
		"zh-CN,zh;q=0.9":           ZhCN,
		"zh-Hant-HK":               ZhTW,
		"fr-FR":                    ZhTW,
		"fr;q=0.9, ja;q=0.8":       Ja,
		"en;q=0.2, zh-TW;q=0.8":    ZhTW,
		"garbage;;;q=not-a-number": ZhTW,
	}
	for header, want := range cases {
		if got := Negotiate(header); got != want {
			t.Errorf("Negotiate(%q) = %s, want %s", header, got, want)
		}
	}
}

func TestLabelsAndOG(t *testing.T) {
	if ZhCN.Label() != "简体中文" || En.Label() != "English" {
		t.Fatalf("unexpected labels: %s %s", ZhCN.Label(), En.Label())
	}
	if ZhTW.OGLocale() != "zh_TW" || En.OGLocale() != "en_US" {
		t.Fatalf("unexpected og locales: %s %s", ZhTW.OGLocale(), En.OGLocale())
	}
}
