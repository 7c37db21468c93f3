package m_variant

import (
	"time"

	"cloud.google.com/go/spanner"
)

// UpsertMutation builds an InsertOrUpdate mutation for a variant row.
func UpsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.InsertOrUpdate(TableName, cols, vals)
}

// DeleteByParentMutation deletes all rows whose key starts with parentID.
func DeleteByParentMutation(parentID int64) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{parentID}.AsPrefix())
}

// SpecialPrice holds the optional promotion columns of a variant.
// A nil Numerator means no special price is configured.
type SpecialPrice struct {
	Numerator   *int64
	Denominator *int64
	From        *time.Time
	To          *time.Time
}

// BuildUpsertMap prepares the canonical fields for a variant upsert.
// Absent special price columns are written as NULL so a sync clears them.
func BuildUpsertMap(parentID, variantID, storeID int64, sku string, saleable bool,
	baseNum, baseDen int64, special SpecialPrice, updatedAt time.Time) map[string]interface{} {

	m := map[string]interface{}{
		ColParentID:             parentID,
		ColVariantID:            variantID,
		ColStoreID:              storeID,
		ColSKU:                  sku,
		ColSaleable:             saleable,
		ColBasePriceNumerator:   baseNum,
		ColBasePriceDenominator: baseDen,
		ColUpdatedAt:            updatedAt,
	}

	if special.Numerator != nil && special.Denominator != nil {
		m[ColSpecialPriceNumerator] = *special.Numerator
		m[ColSpecialPriceDenominator] = *special.Denominator
	} else {
		m[ColSpecialPriceNumerator] = nil
		m[ColSpecialPriceDenominator] = nil
	}

	if special.From != nil {
		m[ColSpecialFromDate] = special.From.UTC()
	} else {
		m[ColSpecialFromDate] = nil
	}

	if special.To != nil {
		m[ColSpecialToDate] = special.To.UTC()
	} else {
		m[ColSpecialToDate] = nil
	}

	return m
}
