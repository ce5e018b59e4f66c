package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hypertech.group/hypersystem-web/internal/i18n"
)

func ptr(v int64) *int64 { return &v }

var pro = i18n.Plan{Name: "Pro", Price: 5000, AnnualPrice: ptr(50000), Avg: ptr(4167)}

func TestPriceFollowsBilling(t *testing.T) {
	require.Equal(t, int64(50000), Price(pro, Annual))
	require.Equal(t, int64(5000), Price(pro, Monthly))

	free := i18n.Plan{Name: "Free", Price: 0}
	require.Equal(t, int64(0), Price(free, Annual))
}

func TestDoubleToggleRestoresPrice(t *testing.T) {
	for _, b := range []Billing{Annual, Monthly} {
		require.Equal(t, Price(pro, b), Price(pro, b.Toggle().Toggle()))
		require.NotEqual(t, Price(pro, b), Price(pro, b.Toggle()))
	}
}

func TestAverageMonthlyOnlyWhenAnnual(t *testing.T) {
	avg, ok := AverageMonthly(pro, Annual)
	require.True(t, ok)
	require.Equal(t, int64(4167), avg)

	_, ok = AverageMonthly(pro, Monthly)
	require.False(t, ok)

	_, ok = AverageMonthly(i18n.Plan{Price: 10}, Annual)
	require.False(t, ok)
}

func TestParseBilling(t *testing.T) {
	require.Equal(t, Annual, ParseBilling(""))
	require.Equal(t, Annual, ParseBilling("annual"))
	require.Equal(t, Annual, ParseBilling("weekly"))
	require.Equal(t, Monthly, ParseBilling("Monthly"))
	require.Equal(t, "", Annual.Param())
	require.Equal(t, "monthly", Monthly.Param())
}

func TestPlansAndCTA(t *testing.T) {
	plans := i18n.Plans{Free: i18n.Plan{Name: "F"}, Starter: i18n.Plan{Name: "S"}, Pro: pro, Enterprise: i18n.Plan{Name: "E"}}
	require.Equal(t, "Pro", Plan(plans, Pro).Name)
	require.Equal(t, "E", Plan(plans, Enterprise).Name)
	require.Equal(t, Pro, Popular)

	require.Equal(t, OpenTrial, CTA(Free))
	for _, k := range []Key{Starter, Pro, Enterprise} {
		require.Equal(t, OpenSubscription, CTA(k))
	}

	_, ok := ParseKey("platinum")
	require.False(t, ok)
	k, ok := ParseKey("starter")
	require.True(t, ok)
	require.Equal(t, Starter, k)
}
