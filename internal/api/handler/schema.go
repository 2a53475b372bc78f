package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// refreshRequest asks the gateway to re-fetch a batch of shipments in the
// background.
type refreshRequest struct {
	TrackingNumbers []string `json:"tracking_numbers" validate:"required,min=1,max=100,dive,required"`
	// Carrier pins the carrier; when empty each number is auto-detected.
	Carrier string `json:"carrier" validate:"omitempty,oneof=ups"`
}

// --- Response types ---
//
// Response-only types owned by the transport layer, intentionally separate
// from domain types so the JSON contract is not coupled to internal changes.

type trackingEventResponse struct {
	Description     string     `json:"description"`
	StatusCode      string     `json:"status_code,omitempty"`
	OccurredAt      *time.Time `json:"occurred_at,omitempty"`
	City            string     `json:"city,omitempty"`
	State           string     `json:"state,omitempty"`
	PostalCode      string     `json:"postal_code,omitempty"`
	Country         string     `json:"country,omitempty"`
	SignedForByName string     `json:"signed_for_by_name,omitempty"`
}

type trackingResponse struct {
	TrackingNumber string `json:"tracking_number"`
	Carrier        string `json:"carrier"`
	ServiceType    string `json:"service_type"`
	Status         string `json:"status,omitempty"`

	OriginCity    string `json:"origin_city,omitempty"`
	OriginState   string `json:"origin_state,omitempty"`
	OriginCountry string `json:"origin_country,omitempty"`

	DestinationCity    string `json:"destination_city,omitempty"`
	DestinationState   string `json:"destination_state,omitempty"`
	DestinationZip     string `json:"destination_zip,omitempty"`
	DestinationCountry string `json:"destination_country,omitempty"`

	SignatureName string `json:"signature_name,omitempty"`

	ShipDate            *time.Time `json:"ship_date,omitempty"`
	EstimatedDeliveryAt *time.Time `json:"estimated_delivery_at,omitempty"`
	DeliveryAt          *time.Time `json:"delivery_at,omitempty"`

	Events []trackingEventResponse `json:"events,omitempty"`

	FromCache bool `json:"from_cache"`
}

// historyItemResponse is the lightweight item used in history responses.
// It intentionally omits the event list to keep payloads small.
type historyItemResponse struct {
	FetchedAt           time.Time  `json:"fetched_at"`
	Status              string     `json:"status,omitempty"`
	ServiceType         string     `json:"service_type"`
	EstimatedDeliveryAt *time.Time `json:"estimated_delivery_at,omitempty"`
	DeliveryAt          *time.Time `json:"delivery_at,omitempty"`
}

type historyResponse struct {
	TrackingNumber string                `json:"tracking_number"`
	Items          []historyItemResponse `json:"items"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}
