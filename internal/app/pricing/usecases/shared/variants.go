package shared

import (
	"fmt"

	"github.com/murkotick/configurable-price-service/internal/app/pricing/domain"
	"github.com/murkotick/configurable-price-service/internal/app/pricing/dto"
	"github.com/murkotick/configurable-price-service/internal/app/pricing/utils"
)

// VariantPriceInfos turns catalog rows into price snapshots, preserving order.
// Rows with a zero or missing denominator or a negative price are rejected.
func VariantPriceInfos(rows []*dto.VariantDTO) ([]domain.VariantPriceInfo, error) {
	out := make([]domain.VariantPriceInfo, 0, len(rows))
	for _, r := range rows {
		if r == nil {
			continue
		}
		if r.BasePriceDen == 0 {
			return nil, fmt.Errorf("variant %d: zero base price denominator: %w", r.VariantID, domain.ErrInvalidPrice)
		}
		base := domain.NewMoney(r.BasePriceNum, r.BasePriceDen)

		var special *domain.Money
		if r.SpecialPriceNum != nil {
			if r.SpecialPriceDen == nil || *r.SpecialPriceDen == 0 {
				return nil, fmt.Errorf("variant %d: missing or zero special price denominator: %w", r.VariantID, domain.ErrInvalidPrice)
			}
			special = domain.NewMoney(*r.SpecialPriceNum, *r.SpecialPriceDen)
		}

		info, err := domain.NewVariantPriceInfo(base, special,
			utils.ParseTimePtr(r.SpecialFrom), utils.ParseTimePtr(r.SpecialTo))
		if err != nil {
			return nil, fmt.Errorf("variant %d: %w", r.VariantID, err)
		}
		out = append(out, info)
	}
	return out, nil
}
