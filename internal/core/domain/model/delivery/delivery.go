package delivery

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery was not created
// through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Delivery is the aggregate root for a single courier run: one agent carrying
// one order from the supplier's pickup point to the vendor. It is created when
// an agent claims a ready order and ends in delivered or failed.
//
// Invariants:
//   - exactly one order and one agent per delivery
//   - status follows assigned -> picked_up -> out_for_delivery -> delivered,
//     with failed reachable from any active status
//   - actualDeliveryTime is stamped exactly once, on the delivered transition
type Delivery struct {
	id      kernel.UUID
	orderID kernel.UUID
	agentID kernel.UUID

	status Status

	pickupAddress   string
	deliveryAddress string

	// Coordinates are optional: agentLocation is the agent's position at
	// acceptance, the other two are geocoded from the addresses (possibly
	// later, by the backfill job).
	agentLocation    *kernel.GeoPoint
	pickupLocation   *kernel.GeoPoint
	deliveryLocation *kernel.GeoPoint

	proofOfDelivery string
	deliveryNotes   string

	estimatedDeliveryTime *time.Time
	actualDeliveryTime    *time.Time

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewDelivery creates an assigned delivery for a claimed order.
func NewDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	agentID kernel.UUID,
	pickupAddress string,
	deliveryAddress string,
	agentLocation *kernel.GeoPoint,
	pickupLocation *kernel.GeoPoint,
	deliveryLocation *kernel.GeoPoint,
	estimatedDeliveryTime *time.Time,
) (*Delivery, error) {
	now := time.Now().UTC()
	delivery := &Delivery{
		status:                Assigned,
		estimatedDeliveryTime: estimatedDeliveryTime,
		createdAt:             now,
		updatedAt:             now,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		delivery.setID(id),
		delivery.setOrderID(orderID),
		delivery.setAgentID(agentID),
		delivery.setPickupAddress(pickupAddress),
		delivery.setDeliveryAddress(deliveryAddress),
		delivery.setAgentLocation(agentLocation),
		delivery.setPickupLocation(pickupLocation),
		delivery.setDeliveryLocation(deliveryLocation),
	); err != nil {
		return nil, err
	}

	return delivery, nil
}

// RestoreDelivery reconstructs a delivery from persistence.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	agentID kernel.UUID,
	status Status,
	pickupAddress string,
	deliveryAddress string,
	agentLocation *kernel.GeoPoint,
	pickupLocation *kernel.GeoPoint,
	deliveryLocation *kernel.GeoPoint,
	proofOfDelivery string,
	deliveryNotes string,
	estimatedDeliveryTime *time.Time,
	actualDeliveryTime *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Delivery, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	delivery, err := NewDelivery(
		id, orderID, agentID,
		pickupAddress, deliveryAddress,
		agentLocation, pickupLocation, deliveryLocation,
		estimatedDeliveryTime,
	)
	if err != nil {
		return nil, err
	}

	delivery.status = status
	delivery.proofOfDelivery = proofOfDelivery
	delivery.deliveryNotes = deliveryNotes
	delivery.actualDeliveryTime = actualDeliveryTime
	delivery.createdAt = createdAt
	delivery.updatedAt = updatedAt
	return delivery, nil
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by identifier.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the carried order's identifier.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// AgentID returns the claiming agent's identifier.
func (d *Delivery) AgentID() kernel.UUID {
	return d.agentID
}

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// PickupAddress returns the supplier-side pickup address.
func (d *Delivery) PickupAddress() string {
	return d.pickupAddress
}

// DeliveryAddress returns the vendor's drop-off address.
func (d *Delivery) DeliveryAddress() string {
	return d.deliveryAddress
}

// AgentLocation returns the agent's coordinate at acceptance, or nil.
func (d *Delivery) AgentLocation() *kernel.GeoPoint {
	return d.agentLocation
}

// PickupLocation returns the geocoded pickup coordinate, or nil.
func (d *Delivery) PickupLocation() *kernel.GeoPoint {
	return d.pickupLocation
}

// DeliveryLocation returns the geocoded drop-off coordinate, or nil.
func (d *Delivery) DeliveryLocation() *kernel.GeoPoint {
	return d.deliveryLocation
}

// ProofOfDelivery returns the courier's proof reference, empty until delivered.
func (d *Delivery) ProofOfDelivery() string {
	return d.proofOfDelivery
}

// DeliveryNotes returns free-form courier notes.
func (d *Delivery) DeliveryNotes() string {
	return d.deliveryNotes
}

// EstimatedDeliveryTime returns the ETA computed at acceptance, or nil.
func (d *Delivery) EstimatedDeliveryTime() *time.Time {
	return d.estimatedDeliveryTime
}

// ActualDeliveryTime returns the hand-over timestamp, or nil until delivered.
func (d *Delivery) ActualDeliveryTime() *time.Time {
	return d.actualDeliveryTime
}

// CreatedAt returns the creation timestamp.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns the last-mutation timestamp.
func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

// MarkPickedUp records that the agent collected the parcel at the supplier.
func (d *Delivery) MarkPickedUp() error {
	return d.transition(PickedUp)
}

// MarkOutForDelivery records that the agent is en route to the vendor.
func (d *Delivery) MarkOutForDelivery() error {
	return d.transition(OutForDelivery)
}

// MarkDelivered completes the run, stamping the actual delivery time and
// storing the courier's proof reference. Only legal from out_for_delivery.
func (d *Delivery) MarkDelivered(proofOfDelivery string) error {
	if err := d.transition(Delivered); err != nil {
		return err
	}

	now := time.Now().UTC()
	d.actualDeliveryTime = &now
	d.proofOfDelivery = proofOfDelivery
	return nil
}

// MarkFailed ends the run unsuccessfully, recording the courier's reason.
// Legal from any active status.
func (d *Delivery) MarkFailed(reason string) error {
	if err := d.transition(Failed); err != nil {
		return err
	}

	d.deliveryNotes = reason
	return nil
}

// AddNotes appends courier notes without changing the status.
func (d *Delivery) AddNotes(notes string) {
	d.deliveryNotes = notes
	d.touch()
}

// BackfillCoordinates fills missing pickup/drop-off coordinates from a later
// geocoding pass. Coordinates already present are never overwritten.
func (d *Delivery) BackfillCoordinates(pickup, dropoff *kernel.GeoPoint) error {
	if d.pickupLocation == nil && pickup != nil {
		if err := d.setPickupLocation(pickup); err != nil {
			return err
		}
	}
	if d.deliveryLocation == nil && dropoff != nil {
		if err := d.setDeliveryLocation(dropoff); err != nil {
			return err
		}
	}

	d.touch()
	return nil
}

func (d *Delivery) transition(next Status) error {
	newStatus, err := d.status.TransitionTo(next)
	if err != nil {
		return err
	}

	d.status = newStatus
	d.touch()
	return nil
}

func (d *Delivery) touch() {
	d.updatedAt = time.Now().UTC()
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("agentId", err)
	}
	d.agentID = agentID
	return nil
}

func (d *Delivery) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	d.pickupAddress = address
	return nil
}

func (d *Delivery) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	d.deliveryAddress = address
	return nil
}

func (d *Delivery) setAgentLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	d.agentLocation = location
	return nil
}

func (d *Delivery) setPickupLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	d.pickupLocation = location
	return nil
}

func (d *Delivery) setDeliveryLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	d.deliveryLocation = location
	return nil
}
