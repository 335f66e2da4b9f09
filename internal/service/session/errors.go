package session

import "errors"

var (
	ErrSessionClosed      = errors.New("session is closed")
	ErrInitializeInFlight = errors.New("initialization already in flight")
	ErrDriverUnknown      = errors.New("driver is not known yet")
	ErrLocationUnknown    = errors.New("current location is not known yet")
	ErrDeliveryInProgress = errors.New("driver already has an active delivery")
	ErrNoActiveDelivery   = errors.New("no active delivery")
	ErrProofRequired      = errors.New("proof image is required to complete a delivery")
)
