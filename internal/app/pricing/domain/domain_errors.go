package domain

import "errors"

// Errors describing why no display price override could be computed.
// They are classification values; the pricing core itself never fails.
var (
	// ErrInvalidParent indicates the parent is not a configurable product,
	// or its identifier is not numeric.
	ErrInvalidParent = errors.New("parent is not a configurable product")

	// ErrNoVariants indicates a configurable product with no saleable children.
	ErrNoVariants = errors.New("configurable product has no saleable variants")
)

// Domain errors for catalog entities
var (
	// ErrProductNotFound indicates that a product with the given ID does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidProductID indicates a product id that is not a positive integer.
	ErrInvalidProductID = errors.New("product id must be a positive integer")

	// ErrInvalidVariantID indicates a variant id that is not a positive integer.
	ErrInvalidVariantID = errors.New("variant id must be a positive integer")

	// ErrEmptySKU indicates an attempt to store a product without a SKU.
	ErrEmptySKU = errors.New("product sku cannot be empty")

	// ErrUnknownProductType indicates a type code outside simple/virtual/configurable.
	ErrUnknownProductType = errors.New("unknown product type")

	// ErrNotConfigurable indicates variants were attached to a non-configurable product.
	ErrNotConfigurable = errors.New("only configurable products can have variants")

	// ErrVariantParentMismatch indicates a variant that belongs to another parent.
	ErrVariantParentMismatch = errors.New("variant does not belong to product")
)

// Domain errors for Money value object
var (
	// ErrNegativePrice indicates an attempt to set a negative price.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrInvalidPrice indicates a missing base price.
	ErrInvalidPrice = errors.New("base price is required")
)
