package ups

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/parceltrack/carrier-gateway/internal/core/domain"
)

// Carrier wire formats: date fields are YYYYMMDD, time fields HHMMSS,
// concatenated without a separator. Values are facility-local time; the
// carrier does not normalize to UTC, so neither do we.
const (
	dateLayout     = "20060102"
	dateTimeLayout = "20060102150405"
)

const statusCodeSuccess = "1"

// errCodeNoInformation is the UPS error code for a tracking number the
// carrier has no record of.
const errCodeNoInformation = "151018"

func decodeTrackResponse(body []byte) (*trackResponse, error) {
	decoded := new(trackResponse)
	if err := xml.Unmarshal(body, decoded); err != nil {
		return nil, fmt.Errorf("%w: xml decode: %v", domain.ErrMalformedResponse, err)
	}
	return decoded, nil
}

// toResult maps the decoded response onto the flat domain value. Absent
// nodes degrade to unset fields; only the service description is required,
// and a present date/time that fails to parse is an error.
func (r *trackResponse) toResult(trackingNumber string) (*domain.TrackingResult, error) {
	if r.Response.StatusCode != statusCodeSuccess {
		return nil, carrierFailure(r.Response.Error)
	}

	shipment := r.Shipment
	if shipment == nil {
		shipment = &shipmentNode{}
	}

	if shipment.Service == nil || shipment.Service.Description == "" {
		return nil, fmt.Errorf("%w: missing service description", domain.ErrMalformedResponse)
	}

	result := &domain.TrackingResult{
		TrackingNumber: trackingNumber,
		Carrier:        domain.CarrierUPS,
		ServiceType:    shipment.Service.Description,
	}

	if addr := partyAddress(shipment.Shipper); addr != nil {
		result.OriginCity = addr.City
		result.OriginState = addr.StateProvinceCode
		result.OriginCountry = addr.CountryCode
	}
	if addr := partyAddress(shipment.ShipTo); addr != nil {
		result.DestinationCity = addr.City
		result.DestinationState = addr.StateProvinceCode
		result.DestinationZip = addr.PostalCode
		result.DestinationCountry = addr.CountryCode
	}

	if shipment.CurrentStatus != nil {
		result.Status = shipment.CurrentStatus.Description
	}

	var err error
	if result.ShipDate, err = parseDate("pickup date", shipment.PickupDate); err != nil {
		return nil, err
	}
	if est := shipment.EstimatedDeliveryDetails; est != nil {
		if result.EstimatedDeliveryAt, err = parseDateTime("estimated delivery", est.Date, est.Time); err != nil {
			return nil, err
		}
	}
	if dd := shipment.DeliveryDetails; dd != nil && dd.DeliveryDate != nil {
		if result.DeliveryAt, err = parseDateTime("delivery date", dd.DeliveryDate.Date, dd.DeliveryDate.Time); err != nil {
			return nil, err
		}
	}

	if result.Events, err = mapActivities(shipment.Activities); err != nil {
		return nil, err
	}
	if last := result.LastEvent(); last != nil {
		result.SignatureName = last.SignedForByName
	}

	return result, nil
}

// mapActivities converts the activity list in carrier order, so the first
// event stays the most recent one.
func mapActivities(activities []activityNode) ([]domain.TrackingEvent, error) {
	if len(activities) == 0 {
		return nil, nil
	}

	events := make([]domain.TrackingEvent, 0, len(activities))
	for _, a := range activities {
		event := domain.TrackingEvent{}

		if a.Status != nil && a.Status.StatusType != nil {
			event.Description = a.Status.StatusType.Description
			event.StatusCode = a.Status.StatusType.Code
		}
		if a.Location != nil {
			event.SignedForByName = a.Location.SignedForByName
			if addr := a.Location.Address; addr != nil {
				event.City = addr.City
				event.State = addr.StateProvinceCode
				event.PostalCode = addr.PostalCode
				event.Country = addr.CountryCode
			}
		}

		occurredAt, err := parseDateTime("activity", a.Date, a.Time)
		if err != nil {
			return nil, err
		}
		event.OccurredAt = occurredAt

		events = append(events, event)
	}
	return events, nil
}

// parseDate parses a date-only carrier field. Empty input stays unset.
func parseDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	ts, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q: %v", domain.ErrMalformedResponse, field, value, err)
	}
	return &ts, nil
}

// parseDateTime parses a split date+time pair. The timestamp is only set
// when both components are present.
func parseDateTime(field, date, clock string) (*time.Time, error) {
	if date == "" || clock == "" {
		return nil, nil
	}
	ts, err := time.ParseInLocation(dateTimeLayout, date+clock, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q: %v", domain.ErrMalformedResponse, field, date+clock, err)
	}
	return &ts, nil
}

func partyAddress(p *partyNode) *addressNode {
	if p == nil {
		return nil
	}
	return p.Address
}

func carrierFailure(e *responseError) error {
	if e == nil {
		return fmt.Errorf("%w: failure response without error detail", domain.ErrMalformedResponse)
	}
	if e.Code == errCodeNoInformation {
		return fmt.Errorf("%w: %s", domain.ErrTrackingNotFound, e.Description)
	}
	return &domain.CarrierError{
		Carrier:     domain.CarrierUPS,
		Code:        e.Code,
		Description: e.Description,
	}
}
