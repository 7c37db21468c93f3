package queries

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/configurable-price-service/internal/app/pricing/dto"
	"github.com/murkotick/configurable-price-service/internal/app/pricing/queries/get_product"
	"github.com/murkotick/configurable-price-service/internal/app/pricing/queries/list_variants"
)

// SpannerReadModel is an infrastructure adapter that satisfies contracts.CatalogReader.
// It composes the individual query implementations.
type SpannerReadModel struct {
	getQ  *get_product.SpannerGetProductQuery
	listQ *list_variants.SpannerListVariantsQuery
}

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{
		getQ:  get_product.NewSpannerGetProductQuery(client),
		listQ: list_variants.NewSpannerListVariantsQuery(client),
	}
}

func (rm *SpannerReadModel) GetProduct(ctx context.Context, productID int64) (*dto.ProductDTO, error) {
	return rm.getQ.GetProduct(ctx, productID)
}

func (rm *SpannerReadModel) ListSaleableVariants(ctx context.Context, parentID, storeID int64) ([]*dto.VariantDTO, error) {
	return rm.listQ.ListSaleableVariants(ctx, parentID, storeID)
}
