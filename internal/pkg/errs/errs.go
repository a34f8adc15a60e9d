package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification with errors.Is.
var (
	ErrValueIsRequired       = errors.New("value is required")
	ErrValueIsInvalid        = errors.New("value is invalid")
	ErrValueIsOutOfRange     = errors.New("value is out of range")
	ErrObjectNotFound        = errors.New("object not found")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrAlreadyAssigned       = errors.New("order already assigned")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// sanitize flattens multi-line values so error messages stay single-line in logs.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ValueIsRequiredError indicates a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a malformed or otherwise unacceptable value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a value outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsOutOfRange, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates a referenced entity is absent from storage.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidTransitionError indicates a state-machine violation. The entity's
// status is left unchanged by the rejected operation.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s cannot move from %s to %s", ErrInvalidTransition, e.Entity, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InsufficientStockError indicates an order line requested more units than the
// product currently has. The rejected operation must not apply any partial
// decrement.
type InsufficientStockError struct {
	ProductID string
	Requested float64
	Available float64
}

func NewInsufficientStockError(productID string, requested, available float64) *InsufficientStockError {
	return &InsufficientStockError{ProductID: productID, Requested: requested, Available: available}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: product %s has %v, requested %v",
		ErrInsufficientStock, e.ProductID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// AlreadyAssignedError indicates a delivery claim lost the race: the order
// already carries an agent. Clients may retry against a different order.
type AlreadyAssignedError struct {
	OrderID string
}

func NewAlreadyAssignedError(orderID string) *AlreadyAssignedError {
	return &AlreadyAssignedError{OrderID: orderID}
}

func (e *AlreadyAssignedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrAlreadyAssigned, e.OrderID)
}

func (e *AlreadyAssignedError) Unwrap() error {
	return ErrAlreadyAssigned
}

// DependencyUnavailableError indicates an external collaborator (geocoder,
// event broker) failed. Owning operations log it and proceed with a degraded
// fallback value instead of failing.
type DependencyUnavailableError struct {
	Dependency string
	Cause      error
}

func NewDependencyUnavailableError(dependency string, cause error) *DependencyUnavailableError {
	return &DependencyUnavailableError{Dependency: dependency, Cause: cause}
}

func (e *DependencyUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrDependencyUnavailable, e.Dependency, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrDependencyUnavailable, e.Dependency)
}

func (e *DependencyUnavailableError) Unwrap() error {
	return ErrDependencyUnavailable
}
