package m_product

// Field constants for the products table.
const (
	TableName = "products"

	ColProductID = "product_id"
	ColSKU       = "sku"
	ColName      = "name"
	ColTypeID    = "type_id"
	ColCreatedAt = "created_at"
	ColUpdatedAt = "updated_at"
)
