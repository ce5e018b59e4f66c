package format

import (
	"strings"
	"testing"

	"hypertech.group/hypersystem-web/internal/locale"
)

func TestMoneyGroupsThousands(t *testing.T) {
	if got := Money(450000, locale.En); got != "$450,000" {
		t.Fatalf("Money(en) = %q", got)
	}
	if got := Money(0, locale.En); got != "$0" {
		t.Fatalf("Money(0) = %q", got)
	}
	if got := Money(-2500, locale.En); got != "-$2,500" {
		t.Fatalf("Money(-2500) = %q", got)
	}
	for _, l := range locale.All {
		got := Money(120000, l)
		if !strings.HasPrefix(got, "$") || !strings.Contains(got, "120") {
			t.Errorf("Money(%s) = %q", l, got)
		}
	}
}
