package services

import (
	"bytes"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/configurable-price-service/internal/app/pricing/domain"
)

var now = time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)

func money(t *testing.T, s string) *domain.Money {
	t.Helper()
	m, err := domain.NewMoneyFromDecimal(s)
	require.NoError(t, err)
	return m
}

func tp(t time.Time) *time.Time {
	return &t
}

func variant(t *testing.T, base string) domain.VariantPriceInfo {
	return domain.VariantPriceInfo{BasePrice: money(t, base)}
}

func special(t *testing.T, base, sp string, from, to *time.Time) domain.VariantPriceInfo {
	return domain.VariantPriceInfo{
		BasePrice:       money(t, base),
		SpecialPrice:    money(t, sp),
		SpecialFromDate: from,
		SpecialToDate:   to,
	}
}

func requirePrice(t *testing.T, want string, got *domain.Money, ok bool) {
	t.Helper()
	require.True(t, ok, "expected a display price")
	require.NotNil(t, got)
	assert.True(t, money(t, want).Equals(got), "want %s, got %s", want, got)
}

func TestSelectDisplayPrice_Empty(t *testing.T) {
	s := NewPriceSelector()

	price, ok := s.SelectDisplayPrice(nil, now)
	assert.False(t, ok)
	assert.Nil(t, price)

	price, ok = s.SelectDisplayPrice([]domain.VariantPriceInfo{}, now)
	assert.False(t, ok)
	assert.Nil(t, price)
}

// TestSelectDisplayPrice_SkipsMissingBasePrice verifies struct literals
// without a base price are ignored instead of breaking the reduction.
func TestSelectDisplayPrice_SkipsMissingBasePrice(t *testing.T) {
	s := NewPriceSelector()

	price, ok := s.SelectDisplayPrice([]domain.VariantPriceInfo{{}, {SpecialPrice: money(t, "5")}}, now)
	assert.False(t, ok)
	assert.Nil(t, price)

	price, ok = s.SelectDisplayPrice([]domain.VariantPriceInfo{
		{},
		variant(t, "100"),
		{SpecialPrice: money(t, "500")},
		special(t, "150", "120", nil, nil),
	}, now)
	requirePrice(t, "120", price, ok)

	price, ok = NewLowestPriceResolver().ResolvePrice([]domain.VariantPriceInfo{variant(t, "100"), {}, variant(t, "70")}, now)
	requirePrice(t, "70", price, ok)
}

// TestSelectDisplayPrice_MaxWithoutSpecials verifies the plain maximum over base prices.
func TestSelectDisplayPrice_MaxWithoutSpecials(t *testing.T) {
	s := NewPriceSelector()

	cases := [][]string{
		{"10"},
		{"10", "20", "15"},
		{"99.99", "100.00", "100"},
		{"0", "0"},
		{"5.5", "5.49", "5.51"},
	}
	for _, bases := range cases {
		vs := make([]domain.VariantPriceInfo, 0, len(bases))
		highest := money(t, bases[0])
		for _, b := range bases {
			vs = append(vs, variant(t, b))
			highest = highest.Max(money(t, b))
		}
		price, ok := s.SelectDisplayPrice(vs, now)
		requirePrice(t, highest.String(), price, ok)
	}
}

func TestSelectDisplayPrice_SingleSpecialNoDates(t *testing.T) {
	s := NewPriceSelector()

	price, ok := s.SelectDisplayPrice([]domain.VariantPriceInfo{
		special(t, "100", "80", nil, nil),
	}, now)
	requirePrice(t, "80", price, ok)
}

// TestSelectDisplayPrice_SpecialOnMaxVariant verifies the override fires once the
// special variant becomes the running maximum.
func TestSelectDisplayPrice_SpecialOnMaxVariant(t *testing.T) {
	s := NewPriceSelector()

	price, ok := s.SelectDisplayPrice([]domain.VariantPriceInfo{
		variant(t, "100"),
		special(t, "150", "120", nil, nil),
	}, now)
	requirePrice(t, "120", price, ok)
}

func TestSelectDisplayPrice_ActiveWindow(t *testing.T) {
	s := NewPriceSelector()

	price, ok := s.SelectDisplayPrice([]domain.VariantPriceInfo{
		special(t, "100", "90", tp(now.Add(-24*time.Hour)), tp(now.Add(24*time.Hour))),
	}, now)
	requirePrice(t, "90", price, ok)
}

func TestSelectDisplayPrice_ExpiredWindow(t *testing.T) {
	s := NewPriceSelector()

	price, ok := s.SelectDisplayPrice([]domain.VariantPriceInfo{
		special(t, "100", "90", tp(now.Add(-48*time.Hour)), tp(now.Add(-24*time.Hour))),
	}, now)
	requirePrice(t, "100", price, ok)
}

func TestSelectDisplayPrice_SpecialOnLowerVariantIgnored(t *testing.T) {
	s := NewPriceSelector()

	price, ok := s.SelectDisplayPrice([]domain.VariantPriceInfo{
		special(t, "50", "10", nil, nil),
		variant(t, "100"),
	}, now)
	requirePrice(t, "100", price, ok)
}

// TestSelectDisplayPrice_TieWithoutSpecialKeepsOverride verifies that a later
// variant tying the maximum without an active special does not reset the price.
func TestSelectDisplayPrice_TieWithoutSpecialKeepsOverride(t *testing.T) {
	s := NewPriceSelector()

	price, ok := s.SelectDisplayPrice([]domain.VariantPriceInfo{
		special(t, "100", "80", nil, nil),
		variant(t, "80"),
		special(t, "80", "70", tp(now.Add(time.Hour)), nil),
	}, now)
	requirePrice(t, "80", price, ok)
}

// TestSelectDisplayPrice_LaterHigherVariantRaisesPrice verifies the running price
// after an override is still compared against later base prices.
func TestSelectDisplayPrice_LaterHigherVariantRaisesPrice(t *testing.T) {
	s := NewPriceSelector()

	price, ok := s.SelectDisplayPrice([]domain.VariantPriceInfo{
		special(t, "150", "120", nil, nil),
		variant(t, "130"),
	}, now)
	requirePrice(t, "130", price, ok)
}

func TestSelectDisplayPrice_WindowArms(t *testing.T) {
	s := NewPriceSelector()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		from *time.Time
		to   *time.Time
		want string
	}{
		{"both dates active", tp(past), tp(future), "90"},
		{"both dates from equals now", tp(now), tp(future), "90"},
		{"both dates to equals now", tp(past), tp(now), "100"},
		{"both dates not started", tp(future), tp(future.Add(time.Hour)), "100"},
		{"from only started", tp(past), nil, "90"},
		{"from only equals now", tp(now), nil, "100"},
		{"from only not started", tp(future), nil, "100"},
		{"to only before end", nil, tp(future), "90"},
		{"to only equals now", nil, tp(now), "100"},
		{"to only ended", nil, tp(past), "100"},
		{"no dates", nil, nil, "90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, ok := s.SelectDisplayPrice([]domain.VariantPriceInfo{
				special(t, "100", "90", tt.from, tt.to),
			}, now)
			requirePrice(t, tt.want, price, ok)
		})
	}
}

// TestSelectDisplayPrice_MinutePrecision verifies bounds are compared at minute granularity.
func TestSelectDisplayPrice_MinutePrecision(t *testing.T) {
	s := NewPriceSelector()
	at := now.Add(45 * time.Second)

	// from one second after now, same minute: from <= now holds.
	price, ok := s.SelectDisplayPrice([]domain.VariantPriceInfo{
		special(t, "100", "90", tp(at.Add(time.Second)), tp(now.Add(time.Hour))),
	}, at)
	requirePrice(t, "90", price, ok)

	// to later in the same minute: now < to fails.
	price, ok = s.SelectDisplayPrice([]domain.VariantPriceInfo{
		special(t, "100", "90", nil, tp(at.Add(10*time.Second))),
	}, at)
	requirePrice(t, "100", price, ok)
}

// TestSelectDisplayPrice_ShuffledOrder verifies permutations yield the same result.
func TestSelectDisplayPrice_ShuffledOrder(t *testing.T) {
	s := NewPriceSelector()

	vs := []domain.VariantPriceInfo{
		variant(t, "100"),
		special(t, "150", "120", nil, nil),
		variant(t, "75"),
		special(t, "60", "30", tp(now.Add(-time.Hour)), nil),
	}
	want, ok := s.SelectDisplayPrice(vs, now)
	requirePrice(t, "120", want, ok)

	reversed := make([]domain.VariantPriceInfo, len(vs))
	for i := range vs {
		reversed[len(vs)-1-i] = vs[i]
	}
	got, ok := s.SelectDisplayPrice(reversed, now)
	requirePrice(t, want.String(), got, ok)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]domain.VariantPriceInfo(nil), vs...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		got, ok := s.SelectDisplayPrice(shuffled, now)
		requirePrice(t, want.String(), got, ok)
	}
}

func TestSelectDisplayPrice_DoesNotMutateInput(t *testing.T) {
	s := NewPriceSelector()
	vs := []domain.VariantPriceInfo{special(t, "100", "80", nil, nil)}

	_, _ = s.SelectDisplayPrice(vs, now)
	assert.Equal(t, "100.00", vs[0].BasePrice.String())
	assert.Equal(t, "80.00", vs[0].SpecialPrice.String())
}

func TestSelectDisplayPrice_TraceLogging(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := NewPriceSelector(WithLogger(l))

	_, ok := s.SelectDisplayPrice([]domain.VariantPriceInfo{special(t, "100", "80", nil, nil)}, now)
	require.True(t, ok)

	out := buf.String()
	assert.Contains(t, out, "special price candidate")
	assert.Contains(t, out, `"special_price":"80.00"`)
	assert.Contains(t, out, `"price":"80.00"`)
}

func TestLowestPriceResolver(t *testing.T) {
	r := NewLowestPriceResolver()

	_, ok := r.ResolvePrice(nil, now)
	assert.False(t, ok)

	price, ok := r.ResolvePrice([]domain.VariantPriceInfo{
		variant(t, "100"),
		special(t, "150", "40", nil, nil),
		special(t, "60", "10", tp(now.Add(time.Hour)), nil),
	}, now)
	requirePrice(t, "40", price, ok)

	// a special above the base price never raises the final price
	price, ok = r.ResolvePrice([]domain.VariantPriceInfo{special(t, "20", "25", nil, nil)}, now)
	requirePrice(t, "20", price, ok)
}
