package domain

import "time"

// Carrier codes supported by the gateway.
const (
	CarrierUPS = "ups"
)

// TrackingEvent is a single recorded status change in a shipment's
// lifecycle, as reported by the carrier (e.g. "DELIVERED", "IN TRANSIT").
type TrackingEvent struct {
	Description     string     `json:"description" bson:"description"`
	StatusCode      string     `json:"status_code,omitempty" bson:"status_code,omitempty"`
	OccurredAt      *time.Time `json:"occurred_at,omitempty" bson:"occurred_at,omitempty"`
	City            string     `json:"city,omitempty" bson:"city,omitempty"`
	State           string     `json:"state,omitempty" bson:"state,omitempty"`
	PostalCode      string     `json:"postal_code,omitempty" bson:"postal_code,omitempty"`
	Country         string     `json:"country,omitempty" bson:"country,omitempty"`
	SignedForByName string     `json:"signed_for_by_name,omitempty" bson:"signed_for_by_name,omitempty"`
}

// TrackingResult is the flat view of a carrier tracking response.
// It is built exactly once per carrier call and never mutated afterwards.
//
// ServiceType is the only field the carrier is required to report; every
// other field stays at its zero value when the carrier omits it. Empty
// string means "not reported", timestamps use nil for the same.
type TrackingResult struct {
	TrackingNumber string `json:"tracking_number" bson:"tracking_number"`
	Carrier        string `json:"carrier" bson:"carrier"`

	OriginCity    string `json:"origin_city,omitempty" bson:"origin_city,omitempty"`
	OriginState   string `json:"origin_state,omitempty" bson:"origin_state,omitempty"`
	OriginCountry string `json:"origin_country,omitempty" bson:"origin_country,omitempty"`

	DestinationCity    string `json:"destination_city,omitempty" bson:"destination_city,omitempty"`
	DestinationState   string `json:"destination_state,omitempty" bson:"destination_state,omitempty"`
	DestinationZip     string `json:"destination_zip,omitempty" bson:"destination_zip,omitempty"`
	DestinationCountry string `json:"destination_country,omitempty" bson:"destination_country,omitempty"`

	ServiceType   string `json:"service_type" bson:"service_type"`
	Status        string `json:"status,omitempty" bson:"status,omitempty"`
	SignatureName string `json:"signature_name,omitempty" bson:"signature_name,omitempty"`

	ShipDate            *time.Time `json:"ship_date,omitempty" bson:"ship_date,omitempty"`
	EstimatedDeliveryAt *time.Time `json:"estimated_delivery_at,omitempty" bson:"estimated_delivery_at,omitempty"`
	DeliveryAt          *time.Time `json:"delivery_at,omitempty" bson:"delivery_at,omitempty"`

	// Events preserves the carrier-reported order: the first entry is the
	// most recent activity.
	Events []TrackingEvent `json:"events,omitempty" bson:"events,omitempty"`
}

// Delivered reports whether the carrier confirmed delivery.
func (r *TrackingResult) Delivered() bool {
	return r.DeliveryAt != nil
}

// LastEvent returns the most recent activity entry, or nil when the
// carrier reported none.
func (r *TrackingResult) LastEvent() *TrackingEvent {
	if len(r.Events) == 0 {
		return nil
	}
	return &r.Events[0]
}

// TrackingSnapshot is a persisted TrackingResult with fetch metadata.
type TrackingSnapshot struct {
	ID        string         `json:"id,omitempty" bson:"_id,omitempty"`
	Result    TrackingResult `json:"result" bson:"result"`
	FetchedAt time.Time      `json:"fetched_at" bson:"fetched_at"`
}
