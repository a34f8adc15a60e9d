package order

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// defaultPickupAddress is used when the caller does not name a pickup point.
const defaultPickupAddress = "Supplier pickup point"

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a vendor's purchase from a single supplier.
// It owns the line items, the total amount snapshotted at creation, the status
// state machine, and the optional delivery-agent assignment.
//
// Invariants:
//   - items are non-empty and every line is valid
//   - totalAmount equals the sum of line totals, fixed at creation
//   - status transitions follow the edges defined in Status
//   - at most one agent is ever assigned, and only from ready_for_pickup
type Order struct {
	id         kernel.UUID
	vendorID   kernel.UUID
	supplierID kernel.UUID
	agentID    *kernel.UUID

	items       []Item
	totalAmount float64
	status      Status

	deliveryAddress string
	pickupAddress   string
	contactPhone    string
	notes           string

	// pickupLocation is the supplier's coordinate when known; used by the
	// proximity filter and copied onto the delivery at acceptance.
	pickupLocation *kernel.GeoPoint

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a pending order from validated line items. The total amount
// is computed here, once, from the items' line totals. An empty pickupAddress
// falls back to a generic supplier pickup point.
func NewOrder(
	id kernel.UUID,
	vendorID kernel.UUID,
	supplierID kernel.UUID,
	items []Item,
	deliveryAddress string,
	contactPhone string,
	pickupAddress string,
	pickupLocation *kernel.GeoPoint,
	notes string,
) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:    Pending,
		notes:     notes,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setVendorID(vendorID),
		order.setSupplierID(supplierID),
		order.setItems(items),
		order.setDeliveryAddress(deliveryAddress),
		order.setContactPhone(contactPhone),
		order.setPickupAddress(pickupAddress),
		order.setPickupLocation(pickupLocation),
	); err != nil {
		return nil, err
	}

	for _, item := range order.items {
		order.totalAmount += item.LineTotal()
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence, including its status,
// agent assignment, stored total, and timestamps. The status/agent combination
// is checked for consistency.
func RestoreOrder(
	id kernel.UUID,
	vendorID kernel.UUID,
	supplierID kernel.UUID,
	items []Item,
	totalAmount float64,
	status Status,
	agentID *kernel.UUID,
	deliveryAddress string,
	contactPhone string,
	pickupAddress string,
	pickupLocation *kernel.GeoPoint,
	notes string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveAgent(agentID != nil); err != nil {
		return nil, err
	}
	if agentID != nil {
		if err := agentID.Validate(); err != nil {
			return nil, err
		}
	}

	order, err := NewOrder(
		id, vendorID, supplierID, items,
		deliveryAddress, contactPhone, pickupAddress, pickupLocation, notes,
	)
	if err != nil {
		return nil, err
	}

	order.status = status
	order.agentID = agentID
	order.totalAmount = totalAmount
	order.createdAt = createdAt
	order.updatedAt = updatedAt
	return order, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// VendorID returns the ordering vendor's identifier.
func (o *Order) VendorID() kernel.UUID {
	return o.vendorID
}

// SupplierID returns the fulfilling supplier's identifier.
func (o *Order) SupplierID() kernel.UUID {
	return o.supplierID
}

// AgentID returns the assigned delivery agent's ID, or nil before acceptance.
func (o *Order) AgentID() *kernel.UUID {
	return o.agentID
}

// Items returns the order lines.
func (o *Order) Items() []Item {
	return o.items
}

// TotalAmount returns the sum of line totals fixed at creation.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryAddress returns the vendor's drop-off address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// PickupAddress returns the supplier-side pickup address.
func (o *Order) PickupAddress() string {
	return o.pickupAddress
}

// ContactPhone returns the vendor's contact number for the courier.
func (o *Order) ContactPhone() string {
	return o.contactPhone
}

// Notes returns free-form order notes.
func (o *Order) Notes() string {
	return o.notes
}

// PickupLocation returns the supplier coordinate, or nil when unknown.
func (o *Order) PickupLocation() *kernel.GeoPoint {
	return o.pickupLocation
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AdvanceTo moves the order along a legal state-machine edge. Illegal
// transitions return an InvalidTransitionError and leave the status unchanged.
// Assignment-coupled transitions (out_for_delivery) must go through Assign.
func (o *Order) AdvanceTo(next Status) error {
	if next == OutForDelivery {
		return errs.NewInvalidTransitionError("order", o.status.String(), next.String())
	}

	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Assign claims the order for a delivery agent. The order must be in
// ready_for_pickup with no agent; a second assignment attempt fails with
// AlreadyAssignedError. On success the status becomes out_for_delivery.
//
// The persistence layer additionally enforces this as a conditional update so
// two racing agents cannot both observe an unassigned order.
func (o *Order) Assign(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	if o.agentID != nil {
		return errs.NewAlreadyAssignedError(o.id.String())
	}

	newStatus, err := o.status.TransitionTo(OutForDelivery)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.agentID = &agentID
	o.touch()
	return nil
}

// Cancel abandons the order. Legal from any non-terminal status.
func (o *Order) Cancel() error {
	newStatus, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// MarkDelivered completes the order. Only legal from out_for_delivery; used by
// the delivery reconciliation when the courier confirms the drop-off.
func (o *Order) MarkDelivered() error {
	newStatus, err := o.status.TransitionTo(Delivered)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// MarkFailed records an unsuccessful delivery attempt. Only legal from
// out_for_delivery.
func (o *Order) MarkFailed() error {
	newStatus, err := o.status.TransitionTo(Failed)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendorId", err)
	}
	o.vendorID = vendorID
	return nil
}

func (o *Order) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("supplierId", err)
	}
	o.supplierID = supplierID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setContactPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("contactPhone")
	}
	o.contactPhone = phone
	return nil
}

func (o *Order) setPickupAddress(address string) error {
	if address == "" {
		address = defaultPickupAddress
	}
	o.pickupAddress = address
	return nil
}

func (o *Order) setPickupLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	o.pickupLocation = location
	return nil
}
