package list_variants

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/configurable-price-service/internal/app/pricing/dto"
	"github.com/murkotick/configurable-price-service/internal/app/pricing/utils"
)

// SpannerListVariantsQuery lists the saleable children of a configurable product.
type SpannerListVariantsQuery struct {
	Client *spanner.Client
}

func NewSpannerListVariantsQuery(client *spanner.Client) *SpannerListVariantsQuery {
	return &SpannerListVariantsQuery{Client: client}
}

// ListSaleableVariants returns children of parentID in storeID with saleable = TRUE,
// ordered by variant_id so callers see a stable order.
func (q *SpannerListVariantsQuery) ListSaleableVariants(ctx context.Context, parentID, storeID int64) ([]*dto.VariantDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT variant_id, parent_id, store_id, sku, saleable,
		             base_price_numerator, base_price_denominator,
		             special_price_numerator, special_price_denominator,
		             special_from_date, special_to_date
		      FROM product_variants
		      WHERE parent_id = @parent
		        AND store_id = @store
		        AND saleable = TRUE
		      ORDER BY variant_id`,
		Params: map[string]interface{}{
			"parent": parentID,
			"store":  storeID,
		},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]*dto.VariantDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list variants of %d: %w", parentID, err)
		}

		var (
			variantID, parent, store int64
			sku                      string
			saleable                 bool
			baseNum, baseDen         int64
			specialNum, specialDen   spanner.NullInt64
			from, to                 spanner.NullTime
		)
		if err := row.Columns(&variantID, &parent, &store, &sku, &saleable,
			&baseNum, &baseDen, &specialNum, &specialDen, &from, &to); err != nil {
			return nil, fmt.Errorf("decode variant of %d: %w", parentID, err)
		}

		v := &dto.VariantDTO{
			VariantID:    variantID,
			ParentID:     parent,
			StoreID:      store,
			SKU:          sku,
			Saleable:     saleable,
			BasePriceNum: baseNum,
			BasePriceDen: baseDen,
		}
		if specialNum.Valid && specialDen.Valid {
			n, d := specialNum.Int64, specialDen.Int64
			v.SpecialPriceNum = &n
			v.SpecialPriceDen = &d
		}
		if from.Valid {
			v.SpecialFrom = utils.FormatTimePtr(&from.Time)
		}
		if to.Valid {
			v.SpecialTo = utils.FormatTimePtr(&to.Time)
		}
		out = append(out, v)
	}

	return out, nil
}
