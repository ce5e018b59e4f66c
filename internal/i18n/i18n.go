// Package i18n loads the per-locale message bundles and formats their placeholders.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"hypertech.group/hypersystem-web/internal/locale"
)

//go:embed locales/*.yaml
var embedded embed.FS

var (
	// ErrMissingKey is returned by Lookup when a dotted path does not resolve to text.
	ErrMissingKey = errors.New("i18n: missing key")
	// ErrMissingParam is returned by Format when a placeholder has no value.
	ErrMissingParam = errors.New("i18n: missing parameter")
)

// Catalog holds the validated bundle of every supported locale. It is read-only after Load.
type Catalog struct {
	bundles map[locale.Locale]*Messages
	raw     map[locale.Locale]map[string]any
}

// Embedded returns the bundles compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "locales")
	if err != nil {
		panic(err)
	}
	return sub
}

// LoadEmbedded loads the compiled-in bundles.
func LoadEmbedded() (*Catalog, error) {
	return Load(Embedded())
}

// Load reads "<locale>.yaml" for every supported locale from fsys. A missing file,
// an unknown field or a failed validation is an error.
func Load(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{
		bundles: make(map[locale.Locale]*Messages, len(locale.All)),
		raw:     make(map[locale.Locale]map[string]any, len(locale.All)),
	}
	validate := newValidator()
	for _, l := range locale.All {
		name := string(l) + ".yaml"
		b, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", name, err)
		}
		msgs, err := decodeStrict(b)
		if err != nil {
			return nil, fmt.Errorf("i18n: decode %s: %w", name, err)
		}
		if err := validate.Struct(msgs); err != nil {
			return nil, newBundleError(l, err)
		}
		var raw map[string]any
		if err := yaml.Unmarshal(b, &raw); err != nil {
			return nil, fmt.Errorf("i18n: decode %s: %w", name, err)
		}
		c.bundles[l] = msgs
		c.raw[l] = raw
	}
	if err := c.checkPrices(); err != nil {
		return nil, err
	}
	return c, nil
}

func decodeStrict(b []byte) (*Messages, error) {
	dec := yaml.NewDecoder(strings.NewReader(string(b)))
	dec.KnownFields(true)
	var msgs Messages
	if err := dec.Decode(&msgs); err != nil {
		return nil, err
	}
	return &msgs, nil
}

// Messages returns the bundle for l, or the default locale's bundle when l is unknown.
func (c *Catalog) Messages(l locale.Locale) *Messages {
	if m, ok := c.bundles[l]; ok {
		return m
	}
	return c.bundles[locale.Default]
}

// Lookup resolves a dotted path such as "hero.title1" or "player.faqs.0.q".
func (c *Catalog) Lookup(l locale.Locale, key string) (string, error) {
	var node any = c.raw[l]
	if node == nil {
		return "", fmt.Errorf("%w: %s (%s)", ErrMissingKey, key, l)
	}
	for _, part := range strings.Split(key, ".") {
		switch v := node.(type) {
		case map[string]any:
			next, ok := v[part]
			if !ok {
				return "", fmt.Errorf("%w: %s (%s)", ErrMissingKey, key, l)
			}
			node = next
		case []any:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(v) {
				return "", fmt.Errorf("%w: %s (%s)", ErrMissingKey, key, l)
			}
			node = v[i]
		default:
			return "", fmt.Errorf("%w: %s (%s)", ErrMissingKey, key, l)
		}
	}
	switch v := node.(type) {
	case string:
		return v, nil
	case int, int64, float64, bool:
		return fmt.Sprint(v), nil
	}
	return "", fmt.Errorf("%w: %s (%s)", ErrMissingKey, key, l)
}

// Keys lists every leaf path of the locale's bundle, sorted.
func (c *Catalog) Keys(l locale.Locale) []string {
	var out []string
	var walk func(prefix string, node any)
	walk = func(prefix string, node any) {
		switch v := node.(type) {
		case map[string]any:
			for k, child := range v {
				walk(join(prefix, k), child)
			}
		case []any:
			for i, child := range v {
				walk(join(prefix, strconv.Itoa(i)), child)
			}
		default:
			out = append(out, prefix)
		}
	}
	walk("", c.raw[l])
	sort.Strings(out)
	return out
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// checkPrices makes sure every locale quotes the same numbers for a plan.
func (c *Catalog) checkPrices() error {
	ref := c.bundles[locale.Default]
	for _, l := range locale.All {
		m := c.bundles[l]
		for _, pair := range [][2]Plan{
			{ref.Pricing.Plans.Free, m.Pricing.Plans.Free},
			{ref.Pricing.Plans.Starter, m.Pricing.Plans.Starter},
			{ref.Pricing.Plans.Pro, m.Pricing.Plans.Pro},
			{ref.Pricing.Plans.Enterprise, m.Pricing.Plans.Enterprise},
		} {
			if !samePrice(pair[0], pair[1]) {
				return fmt.Errorf("i18n: %s: plan %q prices differ from %s", l, pair[1].Name, locale.Default)
			}
		}
	}
	return nil
}

func samePrice(a, b Plan) bool {
	return a.Price == b.Price && equalPtr(a.AnnualPrice, b.AnnualPrice) && equalPtr(a.Avg, b.Avg)
}

func equalPtr(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// BundleError lists the fields of one locale's bundle that failed validation.
type BundleError struct {
	Locale locale.Locale
	Fields []string
}

func (e *BundleError) Error() string {
	return fmt.Sprintf("i18n: bundle %s invalid: %s", e.Locale, strings.Join(e.Fields, ", "))
}

func newBundleError(l locale.Locale, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("i18n: validate %s: %w", l, err)
	}
	out := &BundleError{Locale: l}
	for _, fe := range verrs {
		ns := strings.TrimPrefix(fe.Namespace(), "Messages.")
		if fe.Param() != "" {
			out.Fields = append(out.Fields, fmt.Sprintf("%s (%s=%s)", ns, fe.Tag(), fe.Param()))
			continue
		}
		out.Fields = append(out.Fields, fmt.Sprintf("%s (%s)", ns, fe.Tag()))
	}
	return out
}
