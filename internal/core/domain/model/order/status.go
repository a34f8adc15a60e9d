package order

import (
	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	pending -> confirmed -> ready_for_pickup -> out_for_delivery -> delivered
//	                                            out_for_delivery -> failed
//	any non-terminal state -> cancelled
//
// delivered, cancelled, and failed are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly placed order.
	Pending

	// Confirmed indicates the supplier has accepted the order.
	Confirmed

	// ReadyForPickup indicates the supplier has staged the items for courier
	// collection. Orders in this status with no agent are claimable.
	ReadyForPickup

	// OutForDelivery indicates an agent has claimed the order and is
	// transporting it.
	OutForDelivery

	// Delivered indicates the order reached the vendor. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned before completion. Terminal.
	Cancelled

	// Failed indicates the delivery could not be completed. Terminal.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Confirmed:      "confirmed",
		ReadyForPickup: "ready_for_pickup",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
		Failed:         "failed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Confirmed:      "confirmed",
		ReadyForPickup: "ready_for_pickup",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
		Failed:         "failed",
	}
}

// transitions enumerates the legal edges of the order state machine.
// Cancelled is reachable from every non-terminal state.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {Confirmed, Cancelled},
		Confirmed:      {ReadyForPickup, Cancelled},
		ReadyForPickup: {OutForDelivery, Cancelled},
		OutForDelivery: {Delivered, Failed, Cancelled},
	}
}

// StatusFromString parses the wire representation of a status.
// Returns an error for unknown values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status")
}

// Validate checks the Status is one of the defined order statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the wire name of the status ("ready_for_pickup" etc.).
// Implements fmt.Stringer; safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Failed
}

// CanTransitionTo reports whether next is a legal transition from s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next if the edge s->next exists in the state machine,
// or an InvalidTransitionError leaving the caller's status untouched.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), next.String())
	}
	return next, nil
}

// ValidateCanHaveAgent validates the consistency between order status and
// agent assignment when restoring from persistence.
//
// Rules:
//   - pending, confirmed, and ready_for_pickup orders must not carry an agent
//   - out_for_delivery, delivered, and failed orders must carry an agent
//   - cancelled orders may or may not, depending on when they were cancelled
func (s Status) ValidateCanHaveAgent(hasAgent bool) error {
	if s == Cancelled {
		return nil
	}

	requiresAgent := s == OutForDelivery || s == Delivered || s == Failed
	if hasAgent != requiresAgent {
		return errs.NewValueIsInvalidError("agentId")
	}

	return nil
}
