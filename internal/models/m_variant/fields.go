package m_variant

// Field constants for the product_variants table, keyed by (parent_id, variant_id, store_id).
const (
	TableName = "product_variants"

	ColParentID                = "parent_id"
	ColVariantID               = "variant_id"
	ColStoreID                 = "store_id"
	ColSKU                     = "sku"
	ColSaleable                = "saleable"
	ColBasePriceNumerator      = "base_price_numerator"
	ColBasePriceDenominator    = "base_price_denominator"
	ColSpecialPriceNumerator   = "special_price_numerator"
	ColSpecialPriceDenominator = "special_price_denominator"
	ColSpecialFromDate         = "special_from_date"
	ColSpecialToDate           = "special_to_date"
	ColUpdatedAt               = "updated_at"
)
