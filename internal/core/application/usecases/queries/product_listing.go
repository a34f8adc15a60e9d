package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fetchProducts reads catalog rows matching the WHERE clause.
func fetchProducts(ctx context.Context, db *gorm.DB, where, orderBy string, args ...any) ([]ProductResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			supplier_id,
			name,
			description,
			category,
			price,
			stock_qty,
			unit,
			is_available,
			created_at,
			updated_at
		FROM products
		WHERE `+where+`
		ORDER BY `+orderBy+`
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductResponse, 0)

	for rows.Next() {
		var (
			id, supplierID uuid.UUID
			resp           ProductResponse
		)

		err = rows.Scan(
			&id, &supplierID,
			&resp.Name, &resp.Description, &resp.Category,
			&resp.Price, &resp.StockQty, &resp.Unit, &resp.IsAvailable,
			&resp.CreatedAt, &resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.SupplierID, err = kernel.UUIDFromBytes(supplierID[:]); err != nil {
			return nil, err
		}

		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
