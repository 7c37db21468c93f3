package repo

import (
	"cloud.google.com/go/spanner"

	domain "github.com/murkotick/configurable-price-service/internal/app/pricing/domain"
	"github.com/murkotick/configurable-price-service/internal/models/m_product"
)

// ProductRepo is the Spanner implementation of the product write repository.
// It returns *spanner.Mutation objects but never applies them.
type ProductRepo struct{}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{}
}

// buildInsertValues and buildUpdateValues are unexported so tests in the same
// package can inspect the maps without relying on spanner.Mutation internals.
func buildInsertValues(p *domain.CatalogProduct) map[string]interface{} {
	return m_product.BuildInsertMap(p.ID(), p.SKU(), p.Name(), string(p.TypeID()),
		p.CreatedAt().UTC(), p.UpdatedAt().UTC())
}

func buildUpdateValues(p *domain.CatalogProduct) map[string]interface{} {
	return m_product.BuildUpdateMap(p.ID(), p.SKU(), p.Name(), string(p.TypeID()), p.UpdatedAt().UTC())
}

// InsertMut builds an Insert mutation for a product seen for the first time.
func (r *ProductRepo) InsertMut(p *domain.CatalogProduct) *spanner.Mutation {
	if p == nil {
		return nil
	}
	return m_product.InsertMutation(buildInsertValues(p))
}

// UpdateMut builds an Update mutation that leaves created_at untouched.
func (r *ProductRepo) UpdateMut(p *domain.CatalogProduct) *spanner.Mutation {
	if p == nil {
		return nil
	}
	return m_product.UpdateMutation(buildUpdateValues(p))
}
