package services

import (
	"time"

	"github.com/murkotick/configurable-price-service/internal/app/pricing/domain"
)

// LowestPriceResolver is the catalog's default rule for configurable
// products: the cheapest final price among saleable variants.
type LowestPriceResolver struct{}

func NewLowestPriceResolver() *LowestPriceResolver {
	return &LowestPriceResolver{}
}

// ResolvePrice returns the lowest final price, or false for an empty list.
// Entries without a base price are skipped.
func (r *LowestPriceResolver) ResolvePrice(variants []domain.VariantPriceInfo, now time.Time) (*domain.Money, bool) {
	var lowest *domain.Money
	for _, v := range variants {
		if v.BasePrice == nil {
			continue
		}
		p := v.FinalPriceAt(now)
		if lowest == nil || p.LessThan(lowest) {
			lowest = p
		}
	}
	return lowest, lowest != nil
}
