// Package pricing derives the displayed price of each plan from the billing toggle.
package pricing

import (
	"strings"

	"hypertech.group/hypersystem-web/internal/i18n"
)

// Billing is the monthly/annual toggle. Annual is the default.
type Billing int

const (
	Annual Billing = iota
	Monthly
)

// ParseBilling reads the "billing" query value.
func ParseBilling(raw string) Billing {
	if strings.EqualFold(strings.TrimSpace(raw), "monthly") {
		return Monthly
	}
	return Annual
}

// Toggle flips between monthly and annual.
func (b Billing) Toggle() Billing {
	if b == Annual {
		return Monthly
	}
	return Annual
}

func (b Billing) IsAnnual() bool { return b == Annual }

func (b Billing) String() string {
	if b == Monthly {
		return "monthly"
	}
	return "annual"
}

// Param is the query value; the default encodes as "".
func (b Billing) Param() string {
	if b == Annual {
		return ""
	}
	return b.String()
}

// Key identifies a plan independent of locale.
type Key string

const (
	Free       Key = "free"
	Starter    Key = "starter"
	Pro        Key = "pro"
	Enterprise Key = "enterprise"
)

// Keys is the grid order.
var Keys = []Key{Free, Starter, Pro, Enterprise}

// Popular is the plan carrying the "most popular" badge.
const Popular = Pro

// ParseKey validates a plan key.
func ParseKey(raw string) (Key, bool) {
	for _, k := range Keys {
		if string(k) == raw {
			return k, true
		}
	}
	return "", false
}

// Plan returns the localized plan for k.
func Plan(plans i18n.Plans, k Key) i18n.Plan {
	switch k {
	case Starter:
		return plans.Starter
	case Pro:
		return plans.Pro
	case Enterprise:
		return plans.Enterprise
	}
	return plans.Free
}

// Price is the amount shown for p under b: the annual price when billing annually
// and the plan defines one, the monthly price otherwise.
func Price(p i18n.Plan, b Billing) int64 {
	if b == Annual && p.AnnualPrice != nil {
		return *p.AnnualPrice
	}
	return p.Price
}

// AverageMonthly is shown under the annual price when the plan defines it.
func AverageMonthly(p i18n.Plan, b Billing) (int64, bool) {
	if b != Annual || p.Avg == nil {
		return 0, false
	}
	return *p.Avg, true
}

// Action is what a plan's call to action opens.
type Action int

const (
	// OpenTrial opens the generic trial request.
	OpenTrial Action = iota
	// OpenSubscription opens a subscription request for the plan.
	OpenSubscription
)

// CTA returns the action for k.
func CTA(k Key) Action {
	if k == Free {
		return OpenTrial
	}
	return OpenSubscription
}
