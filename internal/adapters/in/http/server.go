// Package http exposes the marketplace over a REST API built on echo. The
// handlers translate between wire DTOs and application commands/queries; all
// business rules stay in the core.
package http

import (
	"net/http"
	"strconv"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateOrder          commands.CreateOrderCommandHandler
	CancelOrder          commands.CancelOrderCommandHandler
	AdvanceOrderStatus   commands.AdvanceOrderStatusCommandHandler
	AcceptDelivery       commands.AcceptDeliveryCommandHandler
	UpdateDeliveryStatus commands.UpdateDeliveryStatusCommandHandler
	CreateProduct        commands.CreateProductCommandHandler
	UpdateProduct        commands.UpdateProductCommandHandler
	DeleteProduct        commands.DeleteProductCommandHandler

	OrderDetails        queries.GetOrderQueryHandler
	VendorOrders        queries.GetVendorOrdersQueryHandler
	SupplierOrders      queries.GetSupplierOrdersQueryHandler
	OrderStats          queries.GetOrderStatsQueryHandler
	AvailableProducts   queries.GetAvailableProductsQueryHandler
	SupplierProducts    queries.GetSupplierProductsQueryHandler
	AvailableDeliveries queries.GetAvailableDeliveriesQueryHandler
	AgentDeliveries     queries.GetAgentDeliveriesQueryHandler
	DeliveryDetails     queries.GetDeliveryDetailsQueryHandler
}

// defaultSearchRadiusMeters bounds the available-deliveries feed when the
// agent reports a location without an explicit radius.
const defaultSearchRadiusMeters = 5000

// Server routes HTTP requests to the application use cases.
type Server struct {
	handlers          Handlers
	defaultSupplierID kernel.UUID
}

// NewServer creates the HTTP server facade. defaultSupplierID is substituted
// into order requests that name no supplier; the zero UUID disables the
// fallback.
func NewServer(handlers Handlers, defaultSupplierID kernel.UUID) *Server {
	return &Server{handlers: handlers, defaultSupplierID: defaultSupplierID}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	vendor := api.Group("/vendor")
	vendor.POST("/orders", s.CreateOrder)
	vendor.POST("/orders/:orderId/cancel", s.CancelOrder)
	vendor.GET("/my-orders/:vendorId", s.GetVendorOrders)
	vendor.GET("/order-stats/:vendorId", s.GetOrderStats)
	vendor.GET("/products", s.GetAvailableProducts)

	supplier := api.Group("/supplier")
	supplier.POST("/products", s.CreateProduct)
	supplier.PUT("/products/:productId", s.UpdateProduct)
	supplier.DELETE("/products/:productId", s.DeleteProduct)
	supplier.GET("/my-products/:supplierId", s.GetSupplierProducts)
	supplier.GET("/my-orders/:supplierId", s.GetSupplierOrders)
	supplier.PATCH("/orders/:orderId/status", s.AdvanceOrderStatus)

	deliveries := api.Group("/delivery")
	deliveries.GET("/available", s.GetAvailableDeliveries)
	deliveries.POST("/accept/:orderId", s.AcceptDelivery)
	deliveries.PATCH("/:deliveryId/status", s.UpdateDeliveryStatus)
	deliveries.GET("/agent/:agentId", s.GetAgentDeliveries)
	deliveries.GET("/:deliveryId/details", s.GetDeliveryDetails)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// CreateOrder handles POST /api/vendor/orders.
//
//	@Summary	Place a vendor order with one supplier
//	@Tags		vendor
//	@Accept		json
//	@Produce	json
//	@Param		order	body		CreateOrderRequest	true	"Order to place"
//	@Success	201		{object}	OrderResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/api/vendor/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	vendorID, err := kernel.UUIDFromString(req.VendorID)
	if err != nil {
		return respondBadRequest(ctx, "invalid vendor_id")
	}

	supplierID := s.defaultSupplierID
	if req.SupplierID != "" {
		if supplierID, err = kernel.UUIDFromString(req.SupplierID); err != nil {
			return respondBadRequest(ctx, "invalid supplier_id")
		}
	}

	items := make([]commands.CreateOrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		productID, lineErr := kernel.UUIDFromString(line.ProductID)
		if lineErr != nil {
			return respondBadRequest(ctx, "invalid product_id")
		}

		items = append(items, commands.CreateOrderItem{
			ProductID: productID,
			Quantity:  line.Quantity,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, vendorID, supplierID, items,
		req.DeliveryAddress, req.ContactPhone, req.PickupAddress, req.Notes,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID)
}

// GetVendorOrders handles GET /api/vendor/my-orders/:vendorId.
//
//	@Summary	List a vendor's orders, newest first
//	@Tags		vendor
//	@Produce	json
//	@Param		vendorId	path		string	true	"Vendor ID"
//	@Param		status		query		string	false	"Status filter"
//	@Success	200			{array}		OrderResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/api/vendor/my-orders/{vendorId} [get]
func (s *Server) GetVendorOrders(ctx echo.Context) error {
	vendorID, err := kernel.UUIDFromString(ctx.Param("vendorId"))
	if err != nil {
		return respondBadRequest(ctx, "invalid vendor id")
	}

	query, err := queries.NewGetVendorOrdersQuery(vendorID, ctx.QueryParam("status"))
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.handlers.VendorOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// CancelOrder handles POST /api/vendor/orders/:orderId/cancel.
//
//	@Summary	Cancel an order and restore reserved stock
//	@Tags		vendor
//	@Produce	json
//	@Param		orderId	path	string	true	"Order ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/api/vendor/orders/{orderId}/cancel [post]
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderStats handles GET /api/vendor/order-stats/:vendorId.
//
//	@Summary	Aggregate a vendor's order history by day, week and month
//	@Tags		vendor
//	@Produce	json
//	@Param		vendorId	path		string	true	"Vendor ID"
//	@Success	200			{object}	OrderStatsGroupedResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/api/vendor/order-stats/{vendorId} [get]
func (s *Server) GetOrderStats(ctx echo.Context) error {
	vendorID, err := kernel.UUIDFromString(ctx.Param("vendorId"))
	if err != nil {
		return respondBadRequest(ctx, "invalid vendor id")
	}

	var response OrderStatsGroupedResponse
	for _, group := range []struct {
		period queries.StatsPeriod
		target *[]OrderStatsResponse
	}{
		{queries.StatsPeriodDaily, &response.Daily},
		{queries.StatsPeriodWeekly, &response.Weekly},
		{queries.StatsPeriodMonthly, &response.Monthly},
	} {
		query, queryErr := queries.NewGetOrderStatsQuery(vendorID, group.period)
		if queryErr != nil {
			return respondError(ctx, queryErr)
		}

		stats, statsErr := s.handlers.OrderStats.Handle(ctx.Request().Context(), query)
		if statsErr != nil {
			return respondError(ctx, statsErr)
		}

		*group.target = toOrderStatsResponses(stats)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAvailableProducts handles GET /api/vendor/products.
//
//	@Summary	List orderable products, optionally narrowed to a category
//	@Tags		catalog
//	@Produce	json
//	@Param		category	query		string	false	"Category filter"
//	@Success	200			{array}		ProductResponse
//	@Router		/api/vendor/products [get]
func (s *Server) GetAvailableProducts(ctx echo.Context) error {
	query := queries.NewGetAvailableProductsQuery(ctx.QueryParam("category"))

	products, err := s.handlers.AvailableProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponses(products))
}

// CreateProduct handles POST /api/supplier/products.
//
//	@Summary	Add a product to a supplier's catalog
//	@Tags		supplier
//	@Accept		json
//	@Produce	json
//	@Param		product	body		CreateProductRequest	true	"Product to add"
//	@Success	201		{object}	CreateProductResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/api/supplier/products [post]
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req CreateProductRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	supplierID, err := kernel.UUIDFromString(req.SupplierID)
	if err != nil {
		return respondBadRequest(ctx, "invalid supplier_id")
	}

	unit, err := product.UnitFromString(req.Unit)
	if err != nil {
		return respondError(ctx, err)
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		productID, supplierID,
		req.Name, req.Description, req.Category,
		req.Price, req.StockQty, unit,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateProductResponse{ProductID: productID.String()})
}

// UpdateProduct handles PUT /api/supplier/products/:productId.
//
//	@Summary	Edit a catalog product
//	@Tags		supplier
//	@Accept		json
//	@Produce	json
//	@Param		productId	path	string					true	"Product ID"
//	@Param		product		body	UpdateProductRequest	true	"New product data"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/supplier/products/{productId} [put]
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return respondBadRequest(ctx, "invalid product id")
	}

	var req UpdateProductRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	supplierID, err := kernel.UUIDFromString(req.SupplierID)
	if err != nil {
		return respondBadRequest(ctx, "invalid supplier_id")
	}

	unit, err := product.UnitFromString(req.Unit)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID, supplierID,
		req.Name, req.Description, req.Category,
		req.Price, unit,
		req.StockQty, req.IsAvailable,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /api/supplier/products/:productId. The owning
// supplier is named in the supplier_id query parameter.
//
//	@Summary	Remove a product from the catalog
//	@Tags		supplier
//	@Produce	json
//	@Param		productId	path	string	true	"Product ID"
//	@Param		supplier_id	query	string	true	"Owning supplier ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/supplier/products/{productId} [delete]
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return respondBadRequest(ctx, "invalid product id")
	}

	supplierID, err := kernel.UUIDFromString(ctx.QueryParam("supplier_id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid supplier_id")
	}

	cmd, err := commands.NewDeleteProductCommand(productID, supplierID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetSupplierProducts handles GET /api/supplier/my-products/:supplierId.
//
//	@Summary	List a supplier's full catalog, including delisted entries
//	@Tags		supplier
//	@Produce	json
//	@Param		supplierId	path		string	true	"Supplier ID"
//	@Success	200			{array}		ProductResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/api/supplier/my-products/{supplierId} [get]
func (s *Server) GetSupplierProducts(ctx echo.Context) error {
	supplierID, err := kernel.UUIDFromString(ctx.Param("supplierId"))
	if err != nil {
		return respondBadRequest(ctx, "invalid supplier id")
	}

	query, err := queries.NewGetSupplierProductsQuery(supplierID)
	if err != nil {
		return respondError(ctx, err)
	}

	products, err := s.handlers.SupplierProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponses(products))
}

// GetSupplierOrders handles GET /api/supplier/my-orders/:supplierId.
//
//	@Summary	List orders placed with a supplier, newest first
//	@Tags		supplier
//	@Produce	json
//	@Param		supplierId	path		string	true	"Supplier ID"
//	@Param		status		query		string	false	"Status filter"
//	@Success	200			{array}		OrderResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/api/supplier/my-orders/{supplierId} [get]
func (s *Server) GetSupplierOrders(ctx echo.Context) error {
	supplierID, err := kernel.UUIDFromString(ctx.Param("supplierId"))
	if err != nil {
		return respondBadRequest(ctx, "invalid supplier id")
	}

	query, err := queries.NewGetSupplierOrdersQuery(supplierID, ctx.QueryParam("status"))
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.handlers.SupplierOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// AdvanceOrderStatus handles PATCH /api/supplier/orders/:orderId/status.
//
//	@Summary	Move an order along the supplier fulfillment path
//	@Tags		supplier
//	@Accept		json
//	@Produce	json
//	@Param		orderId	path		string						true	"Order ID"
//	@Param		status	body		AdvanceOrderStatusRequest	true	"Target status"
//	@Success	200		{object}	OrderResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/api/supplier/orders/{orderId}/status [patch]
func (s *Server) AdvanceOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var req AdvanceOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	nextStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, nextStatus)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AdvanceOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// GetAvailableDeliveries handles GET /api/delivery/available.
//
//	@Summary	List ready orders no agent has claimed yet
//	@Tags		delivery
//	@Produce	json
//	@Param		lat		query		number	false	"Agent latitude"
//	@Param		lng		query		number	false	"Agent longitude"
//	@Param		radius	query		number	false	"Radius in meters, defaults to 5000 when a location is given"
//	@Success	200		{array}		AvailableDeliveryResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/api/delivery/available [get]
func (s *Server) GetAvailableDeliveries(ctx echo.Context) error {
	agentLocation, err := parseOptionalLocation(ctx.QueryParam("lat"), ctx.QueryParam("lng"))
	if err != nil {
		return respondError(ctx, err)
	}

	radius := 0.0
	if agentLocation != nil {
		radius = defaultSearchRadiusMeters
	}
	if raw := ctx.QueryParam("radius"); raw != "" {
		if radius, err = strconv.ParseFloat(raw, 64); err != nil {
			return respondBadRequest(ctx, "invalid radius")
		}
	}

	query, err := queries.NewGetAvailableDeliveriesQuery(agentLocation, radius)
	if err != nil {
		return respondError(ctx, err)
	}

	available, err := s.handlers.AvailableDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AvailableDeliveryResponse, len(available))
	for i, entry := range available {
		response[i] = AvailableDeliveryResponse{
			OrderID:         entry.OrderID.String(),
			SupplierID:      entry.SupplierID.String(),
			PickupAddress:   entry.PickupAddress,
			DeliveryAddress: entry.DeliveryAddress,
			TotalAmount:     entry.TotalAmount,
			ItemCount:       entry.ItemCount,
			DistanceMeters:  entry.DistanceMeters,
			EtaMinutes:      entry.EtaMinutes,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptDelivery handles POST /api/delivery/accept/:orderId.
//
//	@Summary	Claim a ready order for a delivery agent
//	@Tags		delivery
//	@Accept		json
//	@Produce	json
//	@Param		orderId	path		string					true	"Order ID"
//	@Param		claim	body		AcceptDeliveryRequest	true	"Claiming agent"
//	@Success	200		{object}	AcceptDeliveryResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/api/delivery/accept/{orderId} [post]
func (s *Server) AcceptDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var req AcceptDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	agentID, err := kernel.UUIDFromString(req.AgentID)
	if err != nil {
		return respondBadRequest(ctx, "invalid agent_id")
	}

	var agentLocation *kernel.GeoPoint
	if req.Lat != nil && req.Lng != nil {
		point, locErr := kernel.NewGeoPoint(*req.Lat, *req.Lng)
		if locErr != nil {
			return respondError(ctx, locErr)
		}
		agentLocation = &point
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewAcceptDeliveryCommand(deliveryID, orderID, agentID, agentLocation)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AcceptDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	orderView, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return respondError(ctx, err)
	}
	deliveryView, err := s.loadDeliveryDetails(ctx, deliveryID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AcceptDeliveryResponse{
		Order:    orderView,
		Delivery: deliveryView,
	})
}

// UpdateDeliveryStatus handles PATCH /api/delivery/:deliveryId/status.
//
//	@Summary	Record a courier's status report for a run
//	@Tags		delivery
//	@Accept		json
//	@Produce	json
//	@Param		deliveryId	path		string						true	"Delivery ID"
//	@Param		report		body		UpdateDeliveryStatusRequest	true	"Status report"
//	@Success	200			{object}	DeliveryDetailsResponse
//	@Failure	404			{object}	ErrorResponse
//	@Failure	409			{object}	ErrorResponse
//	@Router		/api/delivery/{deliveryId}/status [patch]
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return respondBadRequest(ctx, "invalid delivery id")
	}

	var req UpdateDeliveryStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	nextStatus, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, nextStatus, req.ProofOfDelivery, req.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateDeliveryStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	deliveryView, err := s.loadDeliveryDetails(ctx, deliveryID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryView)
}

// GetAgentDeliveries handles GET /api/delivery/agent/:agentId.
//
//	@Summary	List an agent's delivery runs, newest first
//	@Tags		delivery
//	@Produce	json
//	@Param		agentId	path		string	true	"Agent ID"
//	@Param		status	query		string	false	"Status filter"
//	@Success	200		{array}		AgentDeliveryResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/api/delivery/agent/{agentId} [get]
func (s *Server) GetAgentDeliveries(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("agentId"))
	if err != nil {
		return respondBadRequest(ctx, "invalid agent id")
	}

	query, err := queries.NewGetAgentDeliveriesQuery(agentID, ctx.QueryParam("status"))
	if err != nil {
		return respondError(ctx, err)
	}

	runs, err := s.handlers.AgentDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AgentDeliveryResponse, len(runs))
	for i, run := range runs {
		response[i] = AgentDeliveryResponse{
			DeliveryID:            run.DeliveryID.String(),
			OrderID:               run.OrderID.String(),
			Status:                run.Status,
			PickupAddress:         run.PickupAddress,
			DeliveryAddress:       run.DeliveryAddress,
			ContactPhone:          run.ContactPhone,
			OrderTotalAmount:      run.OrderTotalAmount,
			EstimatedDeliveryTime: run.EstimatedDeliveryTime,
			ActualDeliveryTime:    run.ActualDeliveryTime,
			CreatedAt:             run.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeliveryDetails handles GET /api/delivery/:deliveryId/details.
//
//	@Summary	Show one delivery run with order lines and route legs
//	@Tags		delivery
//	@Produce	json
//	@Param		deliveryId	path		string	true	"Delivery ID"
//	@Success	200			{object}	DeliveryDetailsResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/api/delivery/{deliveryId}/details [get]
func (s *Server) GetDeliveryDetails(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return respondBadRequest(ctx, "invalid delivery id")
	}

	query, err := queries.NewGetDeliveryDetailsQuery(deliveryID)
	if err != nil {
		return respondError(ctx, err)
	}

	details, err := s.handlers.DeliveryDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryDetailsResponse(details))
}

// loadOrder reads back an order after a successful mutation so the caller
// gets the resulting entity state.
func (s *Server) loadOrder(ctx echo.Context, orderID kernel.UUID) (OrderResponse, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return OrderResponse{}, err
	}

	orderView, err := s.handlers.OrderDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return OrderResponse{}, err
	}

	return toOrderResponse(orderView), nil
}

func (s *Server) respondWithOrder(ctx echo.Context, status int, orderID kernel.UUID) error {
	orderView, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(status, orderView)
}

// loadDeliveryDetails reads back a delivery run after a successful mutation.
func (s *Server) loadDeliveryDetails(ctx echo.Context, deliveryID kernel.UUID) (DeliveryDetailsResponse, error) {
	query, err := queries.NewGetDeliveryDetailsQuery(deliveryID)
	if err != nil {
		return DeliveryDetailsResponse{}, err
	}

	details, err := s.handlers.DeliveryDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return DeliveryDetailsResponse{}, err
	}

	return toDeliveryDetailsResponse(details), nil
}

// parseOptionalLocation builds a GeoPoint from lat/lng query parameters.
// Both must be present; both absent means no location was reported.
func parseOptionalLocation(latParam, lngParam string) (*kernel.GeoPoint, error) {
	if latParam == "" && lngParam == "" {
		return nil, nil //nolint:nilnil //absence of a coordinate is not an error
	}

	lat, err := strconv.ParseFloat(latParam, 64)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("lat", err)
	}

	lng, err := strconv.ParseFloat(lngParam, 64)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("lng", err)
	}

	point, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return nil, err
	}

	return &point, nil
}
