package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// StatsPeriod selects the bucketing granularity for order statistics.
type StatsPeriod string

const (
	StatsPeriodDaily   StatsPeriod = "daily"
	StatsPeriodWeekly  StatsPeriod = "weekly"
	StatsPeriodMonthly StatsPeriod = "monthly"
)

// StatsPeriodFromString parses a wire representation of a stats period.
func StatsPeriodFromString(value string) (StatsPeriod, error) {
	switch StatsPeriod(value) {
	case StatsPeriodDaily, StatsPeriodWeekly, StatsPeriodMonthly:
		return StatsPeriod(value), nil
	default:
		return "", errs.NewValueIsInvalidError("period")
	}
}

// GetOrderStatsQuery retrieves a vendor's spending aggregated into daily,
// weekly, or monthly buckets.
type GetOrderStatsQuery struct {
	vendorID kernel.UUID
	period   StatsPeriod

	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a stats query for a vendor.
func NewGetOrderStatsQuery(vendorID kernel.UUID, period StatsPeriod) (GetOrderStatsQuery, error) {
	if err := vendorID.Validate(); err != nil {
		return GetOrderStatsQuery{}, err
	}
	if _, err := StatsPeriodFromString(string(period)); err != nil {
		return GetOrderStatsQuery{}, err
	}

	return GetOrderStatsQuery{
		vendorID: vendorID,
		period:   period,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// VendorID returns the vendor whose spending is aggregated.
func (q GetOrderStatsQuery) VendorID() kernel.UUID {
	return q.vendorID
}

// Period returns the bucketing granularity.
func (q GetOrderStatsQuery) Period() StatsPeriod {
	return q.period
}

// GetOrderStatsQueryResponse is one time bucket of a vendor's order history.
// Cancelled orders count toward OrderCount but not TotalSpent.
type GetOrderStatsQueryResponse struct {
	Bucket     string
	OrderCount int
	TotalSpent float64
	ItemCount  int
}
