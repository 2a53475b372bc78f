package handler

import (
	"github.com/samber/lo"

	"github.com/parceltrack/carrier-gateway/internal/core/domain"
	"github.com/parceltrack/carrier-gateway/internal/core/ports"
)

// --- Service output → HTTP responses ---

func toTrackingResponse(detail *ports.TrackingDetail) trackingResponse {
	r := detail.Result

	return trackingResponse{
		TrackingNumber: r.TrackingNumber,
		Carrier:        r.Carrier,
		ServiceType:    r.ServiceType,
		Status:         r.Status,

		OriginCity:    r.OriginCity,
		OriginState:   r.OriginState,
		OriginCountry: r.OriginCountry,

		DestinationCity:    r.DestinationCity,
		DestinationState:   r.DestinationState,
		DestinationZip:     r.DestinationZip,
		DestinationCountry: r.DestinationCountry,

		SignatureName: r.SignatureName,

		ShipDate:            r.ShipDate,
		EstimatedDeliveryAt: r.EstimatedDeliveryAt,
		DeliveryAt:          r.DeliveryAt,

		Events: lo.Map(r.Events, func(e domain.TrackingEvent, _ int) trackingEventResponse {
			return trackingEventResponse{
				Description:     e.Description,
				StatusCode:      e.StatusCode,
				OccurredAt:      e.OccurredAt,
				City:            e.City,
				State:           e.State,
				PostalCode:      e.PostalCode,
				Country:         e.Country,
				SignedForByName: e.SignedForByName,
			}
		}),

		FromCache: detail.FromCache,
	}
}

func toHistoryResponse(trackingNumber string, snapshots []domain.TrackingSnapshot) historyResponse {
	return historyResponse{
		TrackingNumber: trackingNumber,
		Items: lo.Map(snapshots, func(s domain.TrackingSnapshot, _ int) historyItemResponse {
			return historyItemResponse{
				FetchedAt:           s.FetchedAt,
				Status:              s.Result.Status,
				ServiceType:         s.Result.ServiceType,
				EstimatedDeliveryAt: s.Result.EstimatedDeliveryAt,
				DeliveryAt:          s.Result.DeliveryAt,
			}
		}),
	}
}

// --- HTTP request → service input ---

func toRefreshInputs(req refreshRequest) []ports.RefreshInput {
	return lo.Map(req.TrackingNumbers, func(number string, _ int) ports.RefreshInput {
		return ports.RefreshInput{TrackingNumber: number, Carrier: req.Carrier}
	})
}
