package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation builds a spanner.Insert mutation for a new product.
// Expected keys are the column names declared in fields.go.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols, vals := split(values)
	return spanner.Insert(TableName, cols, vals)
}

// UpdateMutation builds a spanner.Update mutation for an existing product.
// values must contain the primary key.
func UpdateMutation(values map[string]interface{}) *spanner.Mutation {
	cols, vals := split(values)
	return spanner.Update(TableName, cols, vals)
}

func split(values map[string]interface{}) ([]string, []interface{}) {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return cols, vals
}

// BuildInsertMap prepares every column of a first-time product write.
func BuildInsertMap(productID int64, sku, name, typeID string, createdAt, updatedAt time.Time) map[string]interface{} {
	m := BuildUpdateMap(productID, sku, name, typeID, updatedAt)
	m[ColCreatedAt] = createdAt
	return m
}

// BuildUpdateMap prepares the columns a re-sync may change. created_at is
// left out so it keeps the first sync time.
func BuildUpdateMap(productID int64, sku, name, typeID string, updatedAt time.Time) map[string]interface{} {
	m := map[string]interface{}{
		ColProductID: productID,
		ColSKU:       sku,
		ColTypeID:    typeID,
		ColUpdatedAt: updatedAt,
	}
	if name != "" {
		m[ColName] = name
	} else {
		m[ColName] = nil
	}
	return m
}
