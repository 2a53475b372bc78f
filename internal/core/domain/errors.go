package domain

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse marks a carrier response that was received but could
// not be mapped: a required field is missing or a present date/time field
// does not parse. Wrap it with context describing the offending field.
var ErrMalformedResponse = errors.New("malformed carrier response")

// ErrTrackingNotFound means the carrier has no information for the number.
var ErrTrackingNotFound = errors.New("tracking number not found")

// ErrUnknownCarrier means no registered carrier handles the request.
var ErrUnknownCarrier = errors.New("unknown carrier")

// CarrierError is an in-band error reported by the carrier itself
// (the response arrived but describes a failure instead of a shipment).
type CarrierError struct {
	Carrier     string
	Code        string
	Description string
}

func (e *CarrierError) Error() string {
	return fmt.Sprintf("%s carrier error %s: %s", e.Carrier, e.Code, e.Description)
}
