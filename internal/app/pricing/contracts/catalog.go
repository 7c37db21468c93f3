package contracts

import (
	"context"

	"github.com/murkotick/configurable-price-service/internal/app/pricing/dto"
)

// CatalogReader is the external catalog collaborator. It resolves the
// parent-to-children relationship and filters children to the store and to
// saleable rows before any price logic sees them.
type CatalogReader interface {
	// GetProduct returns domain.ErrProductNotFound (wrapped) when no row exists.
	GetProduct(ctx context.Context, productID int64) (*dto.ProductDTO, error)

	// ListSaleableVariants returns the saleable children of parentID visible in storeID,
	// ordered by variant id.
	ListSaleableVariants(ctx context.Context, parentID, storeID int64) ([]*dto.VariantDTO, error)
}
