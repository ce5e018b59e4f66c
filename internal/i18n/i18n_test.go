package i18n

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"hypertech.group/hypersystem-web/internal/locale"
)

func TestLoadEmbeddedBundles(t *testing.T) {
	c, err := LoadEmbedded()
	require.NoError(t, err)

	for _, l := range locale.All {
		m := c.Messages(l)
		require.NotEmpty(t, m.SEO.Title, l)
		require.Len(t, m.Calculator.PainPoints, 4, l)
		require.Len(t, m.Product.Modules, 5, l)
		require.Len(t, m.Player.Modules, 5, l)
		require.NotEmpty(t, m.Player.Faqs, l)
		require.Contains(t, m.Modal.TitleSubscription, "{plan}", l)
		require.Equal(t, "Diagnostic Required", m.Calculator.Placeholder, l)
	}

	tw := c.Messages(locale.ZhTW)
	require.Equal(t, int64(5000), tw.Pricing.Plans.Pro.Price)
	require.NotNil(t, tw.Pricing.Plans.Pro.AnnualPrice)
	require.Equal(t, int64(50000), *tw.Pricing.Plans.Pro.AnnualPrice)
	require.Nil(t, tw.Pricing.Plans.Free.AnnualPrice)
}

func TestMessagesFallsBackToDefault(t *testing.T) {
	c, err := LoadEmbedded()
	require.NoError(t, err)
	require.Same(t, c.Messages(locale.ZhTW), c.Messages(locale.Locale("fr")))
}

func TestLookup(t *testing.T) {
	c, err := LoadEmbedded()
	require.NoError(t, err)

	got, err := c.Lookup(locale.En, "hero.title1")
	require.NoError(t, err)
	require.Equal(t, c.Messages(locale.En).Hero.Title1, got)

	got, err = c.Lookup(locale.Ja, "player.faqs.0.q")
	require.NoError(t, err)
	require.Equal(t, c.Messages(locale.Ja).Player.Faqs[0].Q, got)

	got, err = c.Lookup(locale.ZhTW, "pricing.plans.pro.price")
	require.NoError(t, err)
	require.Equal(t, "5000", got)

	for _, key := range []string{"hero.nope", "hero", "player.faqs.99.q", "player.faqs.x.q", "hero.title1.deeper"} {
		_, err := c.Lookup(locale.En, key)
		require.ErrorIs(t, err, ErrMissingKey, key)
	}
}

func TestKeysMatchAcrossLocales(t *testing.T) {
	c, err := LoadEmbedded()
	require.NoError(t, err)

	ref := c.Keys(locale.Default)
	require.Contains(t, ref, "hero.title1")
	for _, l := range locale.All {
		require.Equal(t, ref, c.Keys(l), l)
	}
}

func TestLoadRejectsMissingLocale(t *testing.T) {
	fsys := copyEmbedded(t)
	delete(fsys, "ja.yaml")

	_, err := Load(fsys)
	require.Error(t, err)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadRejectsUnknownField(t *testing.T) {
	fsys := copyEmbedded(t)
	fsys["en.yaml"].Data = append(fsys["en.yaml"].Data, []byte("\nsurprise: true\n")...)

	_, err := Load(fsys)
	require.Error(t, err)
	require.Contains(t, err.Error(), "en.yaml")
}

func TestLoadRejectsInvalidBundle(t *testing.T) {
	fsys := copyEmbedded(t)
	src := string(fsys["en.yaml"].Data)
	src = strings.Replace(src, "titleSubscription: Subscribe to {plan}", "titleSubscription: Subscribe now", 1)
	fsys["en.yaml"].Data = []byte(src)

	_, err := Load(fsys)
	var bErr *BundleError
	require.True(t, errors.As(err, &bErr), "expected BundleError, got %v", err)
	require.Equal(t, locale.En, bErr.Locale)
	require.Contains(t, strings.Join(bErr.Fields, " "), "modal.titleSubscription")
}

func TestLoadRejectsPriceDrift(t *testing.T) {
	fsys := copyEmbedded(t)
	src := string(fsys["ja.yaml"].Data)
	src = strings.Replace(src, "price: 5000", "price: 5500", 1)
	fsys["ja.yaml"].Data = []byte(src)

	_, err := Load(fsys)
	require.Error(t, err)
	require.Contains(t, err.Error(), "prices differ")
}

func copyEmbedded(t *testing.T) fstest.MapFS {
	t.Helper()
	out := fstest.MapFS{}
	for _, l := range locale.All {
		name := string(l) + ".yaml"
		b, err := fs.ReadFile(Embedded(), name)
		require.NoError(t, err)
		out[name] = &fstest.MapFile{Data: b}
	}
	return out
}
