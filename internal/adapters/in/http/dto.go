package http

import (
	"time"

	"marketplace/internal/core/application/usecases/queries"
)

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body for placing a vendor order.
type CreateOrderRequest struct {
	VendorID        string                   `json:"vendor_id"`
	SupplierID      string                   `json:"supplier_id"`
	Items           []CreateOrderItemRequest `json:"items"`
	DeliveryAddress string                   `json:"delivery_address"`
	ContactPhone    string                   `json:"contact_phone"`
	PickupAddress   string                   `json:"pickup_address,omitempty"`
	Notes           string                   `json:"notes,omitempty"`
}

// CreateOrderItemRequest is one requested order line.
type CreateOrderItemRequest struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
}

// AdvanceOrderStatusRequest is the body for a supplier-side status change.
type AdvanceOrderStatusRequest struct {
	Status string `json:"status"`
}

// CreateProductRequest is the body for adding a catalog product.
type CreateProductRequest struct {
	SupplierID  string  `json:"supplier_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	StockQty    float64 `json:"stock_qty"`
	Unit        string  `json:"unit"`
}

// CreateProductResponse returns the identifier of the created product.
type CreateProductResponse struct {
	ProductID string `json:"product_id"`
}

// UpdateProductRequest is the body for editing a catalog product. StockQty and
// IsAvailable are optional; omitted fields keep their current value.
type UpdateProductRequest struct {
	SupplierID  string   `json:"supplier_id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Unit        string   `json:"unit"`
	StockQty    *float64 `json:"stock_qty,omitempty"`
	IsAvailable *bool    `json:"is_available,omitempty"`
}

// AcceptDeliveryRequest is the body for an agent claiming a ready order.
// Lat/Lng report the agent's current position and are optional.
type AcceptDeliveryRequest struct {
	AgentID string   `json:"agent_id"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

// AcceptDeliveryResponse returns the claimed order together with the delivery
// run created for it.
type AcceptDeliveryResponse struct {
	Order    OrderResponse           `json:"order"`
	Delivery DeliveryDetailsResponse `json:"delivery"`
}

// UpdateDeliveryStatusRequest is the body for a courier status report.
type UpdateDeliveryStatusRequest struct {
	Status          string `json:"status"`
	ProofOfDelivery string `json:"proof_of_delivery,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// ProductResponse is one catalog entry.
type ProductResponse struct {
	ID          string    `json:"id"`
	SupplierID  string    `json:"supplier_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	StockQty    float64   `json:"stock_qty"`
	Unit        string    `json:"unit"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OrderItemResponse is one order line in an order view.
type OrderItemResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

// OrderResponse is one order in a vendor or supplier listing.
type OrderResponse struct {
	ID              string              `json:"id"`
	VendorID        string              `json:"vendor_id"`
	SupplierID      string              `json:"supplier_id"`
	AgentID         *string             `json:"agent_id,omitempty"`
	Status          string              `json:"status"`
	TotalAmount     float64             `json:"total_amount"`
	DeliveryAddress string              `json:"delivery_address"`
	PickupAddress   string              `json:"pickup_address"`
	ContactPhone    string              `json:"contact_phone"`
	Notes           string              `json:"notes,omitempty"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// OrderStatsResponse is one time bucket of a vendor's order history.
type OrderStatsResponse struct {
	Bucket     string  `json:"bucket"`
	OrderCount int     `json:"order_count"`
	TotalSpent float64 `json:"total_spent"`
	ItemCount  int     `json:"item_count"`
}

// OrderStatsGroupedResponse rolls a vendor's order history up by day, ISO week
// and month in one payload.
type OrderStatsGroupedResponse struct {
	Daily   []OrderStatsResponse `json:"daily"`
	Weekly  []OrderStatsResponse `json:"weekly"`
	Monthly []OrderStatsResponse `json:"monthly"`
}

func toOrderStatsResponses(stats []queries.GetOrderStatsQueryResponse) []OrderStatsResponse {
	out := make([]OrderStatsResponse, len(stats))
	for i, bucket := range stats {
		out[i] = OrderStatsResponse{
			Bucket:     bucket.Bucket,
			OrderCount: bucket.OrderCount,
			TotalSpent: bucket.TotalSpent,
			ItemCount:  bucket.ItemCount,
		}
	}
	return out
}

// AvailableDeliveryResponse is one claimable order in the agent's feed.
type AvailableDeliveryResponse struct {
	OrderID         string   `json:"order_id"`
	SupplierID      string   `json:"supplier_id"`
	PickupAddress   string   `json:"pickup_address"`
	DeliveryAddress string   `json:"delivery_address"`
	TotalAmount     float64  `json:"total_amount"`
	ItemCount       int      `json:"item_count"`
	DistanceMeters  *float64 `json:"distance_meters,omitempty"`
	EtaMinutes      *int     `json:"eta_minutes,omitempty"`
}

// AgentDeliveryResponse is one delivery run in an agent's listing.
type AgentDeliveryResponse struct {
	DeliveryID            string     `json:"delivery_id"`
	OrderID               string     `json:"order_id"`
	Status                string     `json:"status"`
	PickupAddress         string     `json:"pickup_address"`
	DeliveryAddress       string     `json:"delivery_address"`
	ContactPhone          string     `json:"contact_phone"`
	OrderTotalAmount      float64    `json:"order_total_amount"`
	EstimatedDeliveryTime *time.Time `json:"estimated_delivery_time,omitempty"`
	ActualDeliveryTime    *time.Time `json:"actual_delivery_time,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}

// DeliveryLegResponse describes one leg of a run with distance and ETA.
type DeliveryLegResponse struct {
	From           string  `json:"from"`
	To             string  `json:"to"`
	DistanceMeters float64 `json:"distance_meters"`
	EtaMinutes     int     `json:"eta_minutes"`
}

// DeliveryDetailsResponse is the full view of one delivery run.
type DeliveryDetailsResponse struct {
	DeliveryID            string                `json:"delivery_id"`
	OrderID               string                `json:"order_id"`
	AgentID               string                `json:"agent_id"`
	Status                string                `json:"status"`
	PickupAddress         string                `json:"pickup_address"`
	DeliveryAddress       string                `json:"delivery_address"`
	ContactPhone          string                `json:"contact_phone"`
	ProofOfDelivery       string                `json:"proof_of_delivery,omitempty"`
	DeliveryNotes         string                `json:"delivery_notes,omitempty"`
	OrderTotalAmount      float64               `json:"order_total_amount"`
	Items                 []OrderItemResponse   `json:"items"`
	Legs                  []DeliveryLegResponse `json:"legs"`
	EstimatedDeliveryTime *time.Time            `json:"estimated_delivery_time,omitempty"`
	ActualDeliveryTime    *time.Time            `json:"actual_delivery_time,omitempty"`
	CreatedAt             time.Time             `json:"created_at"`
	UpdatedAt             time.Time             `json:"updated_at"`
}

func toProductResponse(p queries.ProductResponse) ProductResponse {
	return ProductResponse{
		ID:          p.ID.String(),
		SupplierID:  p.SupplierID.String(),
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		StockQty:    p.StockQty,
		Unit:        p.Unit,
		IsAvailable: p.IsAvailable,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductResponses(products []queries.ProductResponse) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}

func toOrderItemResponses(items []queries.OrderItemResponse) []OrderItemResponse {
	out := make([]OrderItemResponse, len(items))
	for i, item := range items {
		out[i] = OrderItemResponse{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
		}
	}
	return out
}

func toOrderResponse(o queries.OrderResponse) OrderResponse {
	var agentID *string
	if o.AgentID != nil {
		s := o.AgentID.String()
		agentID = &s
	}

	return OrderResponse{
		ID:              o.ID.String(),
		VendorID:        o.VendorID.String(),
		SupplierID:      o.SupplierID.String(),
		AgentID:         agentID,
		Status:          o.Status,
		TotalAmount:     o.TotalAmount,
		DeliveryAddress: o.DeliveryAddress,
		PickupAddress:   o.PickupAddress,
		ContactPhone:    o.ContactPhone,
		Notes:           o.Notes,
		Items:           toOrderItemResponses(o.Items),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func toOrderResponses(orders []queries.OrderResponse) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = toOrderResponse(o)
	}
	return out
}

func toDeliveryDetailsResponse(details queries.GetDeliveryDetailsQueryResponse) DeliveryDetailsResponse {
	legs := make([]DeliveryLegResponse, len(details.Legs))
	for i, leg := range details.Legs {
		legs[i] = DeliveryLegResponse{
			From:           leg.From,
			To:             leg.To,
			DistanceMeters: leg.DistanceMeters,
			EtaMinutes:     leg.EtaMinutes,
		}
	}

	return DeliveryDetailsResponse{
		DeliveryID:            details.DeliveryID.String(),
		OrderID:               details.OrderID.String(),
		AgentID:               details.AgentID.String(),
		Status:                details.Status,
		PickupAddress:         details.PickupAddress,
		DeliveryAddress:       details.DeliveryAddress,
		ContactPhone:          details.ContactPhone,
		ProofOfDelivery:       details.ProofOfDelivery,
		DeliveryNotes:         details.DeliveryNotes,
		OrderTotalAmount:      details.OrderTotalAmount,
		Items:                 toOrderItemResponses(details.Items),
		Legs:                  legs,
		EstimatedDeliveryTime: details.EstimatedDeliveryTime,
		ActualDeliveryTime:    details.ActualDeliveryTime,
		CreatedAt:             details.CreatedAt,
		UpdatedAt:             details.UpdatedAt,
	}
}
