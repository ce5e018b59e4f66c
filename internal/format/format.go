package format

import (
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"hypertech.group/hypersystem-web/internal/locale"
)

// Number groups digits the way l writes them, e.g. 450000 => "450,000".
func Number(n int64, l locale.Locale) string {
	return message.NewPrinter(l.Tag()).Sprint(number.Decimal(n))
}

// Money prefixes the grouped amount with a dollar sign.
// Example: Money(450000, locale.En) => "$450,000"
func Money(n int64, l locale.Locale) string {
	if n < 0 {
		return "-$" + Number(-n, l)
	}
	return "$" + Number(n, l)
}
