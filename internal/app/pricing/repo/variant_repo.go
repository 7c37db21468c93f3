package repo

import (
	"time"

	"cloud.google.com/go/spanner"

	domain "github.com/murkotick/configurable-price-service/internal/app/pricing/domain"
	"github.com/murkotick/configurable-price-service/internal/models/m_variant"
)

// VariantRepo is the Spanner implementation of the variant write repository.
type VariantRepo struct{}

func NewVariantRepo() *VariantRepo {
	return &VariantRepo{}
}

// buildVariantValues is unexported so tests in this package can inspect the
// column map without relying on spanner.Mutation internals.
func buildVariantValues(v *domain.Variant, now time.Time) map[string]interface{} {
	base := v.Price.BasePrice

	var special m_variant.SpecialPrice
	if sp := v.Price.SpecialPrice; sp != nil {
		num, den := sp.Numerator(), sp.Denominator()
		special.Numerator = &num
		special.Denominator = &den
	}
	special.From = v.Price.SpecialFromDate
	special.To = v.Price.SpecialToDate

	return m_variant.BuildUpsertMap(v.ParentID, v.ID, v.StoreID, v.SKU, v.Saleable,
		base.Numerator(), base.Denominator(), special, now.UTC())
}

// DeleteByParentMut removes every variant row of parentID, across stores.
// Sync issues it ahead of the upserts so dropped children disappear.
func (r *VariantRepo) DeleteByParentMut(parentID int64) *spanner.Mutation {
	return m_variant.DeleteByParentMutation(parentID)
}

// UpsertMut builds an InsertOrUpdate mutation for the variant row.
func (r *VariantRepo) UpsertMut(v *domain.Variant, now time.Time) *spanner.Mutation {
	if v == nil {
		return nil
	}
	return m_variant.UpsertMutation(buildVariantValues(v, now))
}
