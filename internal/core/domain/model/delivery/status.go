package delivery

import "marketplace/internal/pkg/errs"

// Status represents the lifecycle of a delivery run from the moment an agent
// claims an order until the parcel is handed over (or the attempt fails).
type Status int

const (
	Unknown Status = iota
	Assigned
	PickedUp
	OutForDelivery
	Delivered
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Assigned:       "assigned",
		PickedUp:       "picked_up",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Failed:         "failed",
	}
}

func getValidStatusStrings() map[string]Status {
	return map[string]Status{
		"assigned":         Assigned,
		"picked_up":        PickedUp,
		"out_for_delivery": OutForDelivery,
		"delivered":        Delivered,
		"failed":           Failed,
	}
}

func transitions() map[Status][]Status {
	return map[Status][]Status{
		Assigned:       {PickedUp, Failed},
		PickedUp:       {OutForDelivery, Failed},
		OutForDelivery: {Delivered, Failed},
	}
}

// StatusFromString parses a wire representation of a delivery status.
func StatusFromString(value string) (Status, error) {
	status, ok := getValidStatusStrings()[value]
	if !ok {
		return Unknown, errs.NewValueIsInvalidError("status")
	}
	return status, nil
}

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	name, ok := getStatusStrings()[s]
	if !ok {
		return "unknown"
	}
	return name
}

// IsTerminal reports whether the delivery run has ended.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed
}

// CanTransitionTo reports whether the edge from s to next is legal.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next if the edge from s is legal, or an
// InvalidTransitionError otherwise.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return s, err
	}
	if !s.CanTransitionTo(next) {
		return s, errs.NewInvalidTransitionError("delivery", s.String(), next.String())
	}
	return next, nil
}
