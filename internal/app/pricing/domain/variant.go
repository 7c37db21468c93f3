package domain

import "time"

// VariantPriceInfo is the read-only price snapshot of one saleable child variant.
// It is built per pricing request and discarded afterwards.
type VariantPriceInfo struct {
	BasePrice       *Money
	SpecialPrice    *Money
	SpecialFromDate *time.Time
	SpecialToDate   *time.Time
}

// NewVariantPriceInfo validates the base price and returns the snapshot.
// special, from and to are optional.
func NewVariantPriceInfo(base, special *Money, from, to *time.Time) (VariantPriceInfo, error) {
	if err := validatePrice(base); err != nil {
		return VariantPriceInfo{}, err
	}
	if special != nil && special.IsNegative() {
		return VariantPriceInfo{}, ErrNegativePrice
	}
	return VariantPriceInfo{
		BasePrice:       base,
		SpecialPrice:    special,
		SpecialFromDate: copyTime(from),
		SpecialToDate:   copyTime(to),
	}, nil
}

// HasSpecialPrice reports whether a promotion is configured.
func (v VariantPriceInfo) HasSpecialPrice() bool {
	return v.SpecialPrice != nil
}

// Window returns the special price validity window.
func (v VariantPriceInfo) Window() SpecialWindow {
	return NewSpecialWindow(v.SpecialFromDate, v.SpecialToDate)
}

// SpecialActiveAt reports whether the variant has a special price in effect at now.
func (v VariantPriceInfo) SpecialActiveAt(now time.Time) bool {
	return v.HasSpecialPrice() && v.Window().IsActiveAt(now)
}

// FinalPriceAt is the price a shopper pays for this variant alone at now:
// the special price when it is active and lower than the base price.
func (v VariantPriceInfo) FinalPriceAt(now time.Time) *Money {
	if v.SpecialActiveAt(now) && v.SpecialPrice.LessThan(v.BasePrice) {
		return v.SpecialPrice
	}
	return v.BasePrice
}

// Variant is a purchasable child SKU of a configurable product.
type Variant struct {
	ID       int64
	ParentID int64
	SKU      string
	StoreID  int64
	Saleable bool
	Price    VariantPriceInfo
}

// NewVariant validates and constructs a Variant.
func NewVariant(id, parentID, storeID int64, sku string, saleable bool, price VariantPriceInfo) (*Variant, error) {
	if id <= 0 {
		return nil, ErrInvalidVariantID
	}
	if err := validatePrice(price.BasePrice); err != nil {
		return nil, err
	}
	return &Variant{
		ID:       id,
		ParentID: parentID,
		SKU:      sku,
		StoreID:  storeID,
		Saleable: saleable,
		Price:    price,
	}, nil
}

func validatePrice(price *Money) error {
	if price == nil {
		return ErrInvalidPrice
	}
	if price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}
