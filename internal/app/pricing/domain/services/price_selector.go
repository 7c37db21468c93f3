package services

import (
	"log/slog"
	"time"

	"github.com/murkotick/configurable-price-service/internal/app/pricing/domain"
)

// PriceSelector picks the display price of a configurable product: the highest
// base price among its saleable variants, replaced by that variant's special
// price when the special is in effect.
type PriceSelector struct {
	logger *slog.Logger
}

// Option configures a PriceSelector.
type Option func(*PriceSelector)

// WithLogger sets the logger used for price trace lines.
func WithLogger(l *slog.Logger) Option {
	return func(s *PriceSelector) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewPriceSelector creates a PriceSelector. Without options it logs nothing.
func NewPriceSelector(opts ...Option) *PriceSelector {
	s := &PriceSelector{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SelectDisplayPrice reduces variants to a single display price.
// It returns false when variants is empty. Entries without a base price
// (only possible for values not built by NewVariantPriceInfo) are skipped.
//
// The tie check runs against the running price, so a special applied by an
// earlier variant stays in place unless a later variant raises the maximum.
func (s *PriceSelector) SelectDisplayPrice(variants []domain.VariantPriceInfo, now time.Time) (*domain.Money, bool) {
	var price *domain.Money
	for _, v := range variants {
		if v.BasePrice == nil {
			continue
		}
		if price == nil {
			price = v.BasePrice
		} else {
			price = price.Max(v.BasePrice)
		}

		if !price.Equals(v.BasePrice) || !v.HasSpecialPrice() {
			continue
		}

		window := v.Window()
		s.logger.Debug("special price candidate",
			slog.String("base_price", v.BasePrice.String()),
			slog.String("special_price", v.SpecialPrice.String()),
			slog.String("window", window.String()),
			slog.Time("now", now),
		)

		if window.IsActiveAt(now) {
			price = v.SpecialPrice
		}
	}
	if price == nil {
		return nil, false
	}

	s.logger.Debug("display price selected",
		slog.String("price", price.String()),
		slog.Int("variants", len(variants)),
	)
	return price, true
}
