package dto

// ProductDTO contains the catalog fields the pricing pipeline needs.
// Timestamps use *string (RFC3339) the way they come out of read queries.
type ProductDTO struct {
	ProductID int64
	SKU       string
	Name      *string
	TypeID    string
	CreatedAt *string
	UpdatedAt *string
}

// VariantDTO is one saleable child row.
type VariantDTO struct {
	VariantID    int64
	ParentID     int64
	StoreID      int64
	SKU          string
	Saleable     bool
	BasePriceNum int64
	BasePriceDen int64

	// Special price columns are all optional.
	SpecialPriceNum *int64
	SpecialPriceDen *int64
	SpecialFrom     *string
	SpecialTo       *string
}

// Reasons reported on a DisplayPriceDTO.
const (
	ReasonOverride      = "override"
	ReasonInvalidParent = "invalid_parent"
	ReasonNotFound      = "not_found"
	ReasonNoVariants    = "no_variants"
)

// DisplayPriceDTO is the outcome of resolving a configurable product's display price.
type DisplayPriceDTO struct {
	ProductID string
	StoreID   int64

	// DisplayPrice is the price to show, as a decimal string.
	DisplayPrice string
	// BaselinePrice is the catalog's default (lowest variant) price.
	BaselinePrice string

	// Overridden is false when the baseline was kept.
	Overridden   bool
	Reason       string
	VariantCount int
}
