package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler aggregates a vendor's orders into time buckets
// with Postgres date formatting: YYYY-MM-DD for daily, ISO year-week for
// weekly, YYYY-MM for monthly.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for vendor spending stats.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the query. Buckets are returned in ascending order;
// cancelled and failed orders are counted but excluded from spending.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) ([]GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	format := bucketFormat(query.Period())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			to_char(o.created_at, ?) AS bucket,
			COUNT(*) AS order_count,
			COALESCE(SUM(o.total_amount) FILTER (WHERE o.status NOT IN ('cancelled', 'failed')), 0) AS total_spent,
			COALESCE(SUM((SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id)), 0) AS item_count
		FROM orders o
		WHERE o.vendor_id = ?
		GROUP BY bucket
		ORDER BY bucket
	`, format, query.VendorID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]GetOrderStatsQueryResponse, 0)

	for rows.Next() {
		var resp GetOrderStatsQueryResponse
		if err = rows.Scan(&resp.Bucket, &resp.OrderCount, &resp.TotalSpent, &resp.ItemCount); err != nil {
			return nil, err
		}
		stats = append(stats, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

func bucketFormat(period StatsPeriod) string {
	switch period {
	case StatsPeriodWeekly:
		return "IYYY-IW"
	case StatsPeriodMonthly:
		return "YYYY-MM"
	default:
		return "YYYY-MM-DD"
	}
}
