package get_product

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/configurable-price-service/internal/app/pricing/domain"
	"github.com/murkotick/configurable-price-service/internal/app/pricing/dto"
	"github.com/murkotick/configurable-price-service/internal/app/pricing/utils"
)

// SpannerGetProductQuery reads a single product row from Spanner.
type SpannerGetProductQuery struct {
	Client *spanner.Client
}

func NewSpannerGetProductQuery(client *spanner.Client) *SpannerGetProductQuery {
	return &SpannerGetProductQuery{Client: client}
}

// GetProduct fetches the product row. A missing row yields domain.ErrProductNotFound.
func (q *SpannerGetProductQuery) GetProduct(ctx context.Context, productID int64) (*dto.ProductDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT product_id, sku, name, type_id, created_at, updated_at
		      FROM products
		      WHERE product_id = @id`,
		Params: map[string]interface{}{"id": productID},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("get product %d: %w", productID, domain.ErrProductNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", productID, err)
	}

	var (
		id                   int64
		sku                  string
		name                 spanner.NullString
		typeID               string
		createdAt, updatedAt time.Time
	)
	if err := row.Columns(&id, &sku, &name, &typeID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("decode product %d: %w", productID, err)
	}

	out := &dto.ProductDTO{
		ProductID: id,
		SKU:       sku,
		TypeID:    typeID,
	}
	if name.Valid {
		n := name.StringVal
		out.Name = &n
	}

	out.CreatedAt = utils.FormatTimePtr(&createdAt)
	out.UpdatedAt = utils.FormatTimePtr(&updatedAt)

	return out, nil
}
