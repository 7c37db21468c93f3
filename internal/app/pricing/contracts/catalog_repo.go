package contracts

import (
	"time"

	"cloud.google.com/go/spanner"

	domain "github.com/murkotick/configurable-price-service/internal/app/pricing/domain"
)

// ProductRepo is the write-side repository for catalog products.
// Methods return Spanner mutations; they do not apply them.
type ProductRepo interface {
	InsertMut(p *domain.CatalogProduct) *spanner.Mutation
	UpdateMut(p *domain.CatalogProduct) *spanner.Mutation
}

// VariantRepo is the write-side repository for configurable children.
type VariantRepo interface {
	DeleteByParentMut(parentID int64) *spanner.Mutation
	UpsertMut(v *domain.Variant, now time.Time) *spanner.Mutation
}
