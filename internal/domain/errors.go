package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigMissing means the tenant never ran setup. Callers skip it.
	ErrConfigMissing = errors.New("tenant is not configured")

	// ErrChannelUnavailable aborts the tenant pass.
	ErrChannelUnavailable = errors.New("notification channel unavailable")

	// ErrRoleUnavailable disables role actions for the current pass only.
	ErrRoleUnavailable = errors.New("status role unavailable")

	// ErrDeliveryFailure is transient; the subject is retried on the next tick.
	ErrDeliveryFailure = errors.New("delivery failed")

	ErrPermissionDenied = errors.New("permission denied")

	// ErrStoreFailure aborts the current pass; the loop retries next tick.
	ErrStoreFailure = errors.New("store failure")

	ErrInvalidDate      = errors.New("invalid day/month")
	ErrInvalidCheckHour = errors.New("check hour must be between 0 and 23")
)

// GatewayReason classifies a failed gateway call.
type GatewayReason string

const (
	ReasonNotFound  GatewayReason = "not_found"
	ReasonForbidden GatewayReason = "forbidden"
	ReasonTransient GatewayReason = "transient"
)

// GatewayError is returned by every Gateway implementation.
type GatewayError struct {
	Op     string
	Reason GatewayReason
	Err    error
}

func NewGatewayError(op string, reason GatewayReason, err error) *GatewayError {
	return &GatewayError{Op: op, Reason: reason, Err: err}
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Reason, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Is lets callers match gateway failures against the taxonomy sentinels.
func (e *GatewayError) Is(target error) bool {
	switch target {
	case ErrPermissionDenied:
		return e.Reason == ReasonForbidden
	case ErrDeliveryFailure:
		return e.Reason != ReasonForbidden
	}
	return false
}

// GatewayReasonOf extracts the reason of a gateway failure, defaulting to transient.
func GatewayReasonOf(err error) GatewayReason {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr.Reason
	}
	return ReasonTransient
}
