// Package ups adapts the legacy UPS XML tracking API to the gateway's
// carrier port: one Track call builds the request payload, performs a
// single POST against the carrier endpoint, and maps the XML response
// into a domain.TrackingResult. The adapter does not retry.
package ups

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/parceltrack/carrier-gateway/internal/core/domain"
)

// trackPath is the fixed tracking endpoint path, relative to the base URL.
const trackPath = "/Track"

const defaultTimeout = 10 * time.Second

// Config captures the settings for the UPS client.
type Config struct {
	BaseURL     string
	Credentials Credentials
	// Timeout bounds the whole round trip. Defaults to defaultTimeout.
	Timeout time.Duration
}

// Client is the UPS carrier adapter. It is stateless and safe for
// concurrent use.
type Client struct {
	http  *resty.Client
	creds Credentials
	log   zerolog.Logger
}

// NewClient creates a UPS client on its own resty transport.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout)

	return &Client{http: httpc, creds: cfg.Credentials, log: log}
}

// Code returns the carrier code served by this adapter.
func (c *Client) Code() string {
	return domain.CarrierUPS
}

// Track requests activity detail for trackingNumber and maps the carrier
// response. Transport failures and non-2xx statuses surface as errors
// without retry; undecodable or incomplete bodies surface as
// domain.ErrMalformedResponse.
func (c *Client) Track(ctx context.Context, trackingNumber string) (*domain.TrackingResult, error) {
	payload, err := buildTrackRequest(c.creds, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("build track request: %w", err)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/xml").
		SetBody(payload).
		Post(trackPath)
	if err != nil {
		return nil, fmt.Errorf("ups track request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("ups track request: unexpected status %s", resp.Status())
	}

	decoded, err := decodeTrackResponse(resp.Body())
	if err != nil {
		return nil, err
	}

	result, err := decoded.toResult(trackingNumber)
	if err != nil {
		return nil, err
	}

	c.log.Debug().
		Str("tracking_number", trackingNumber).
		Str("service_type", result.ServiceType).
		Str("status", result.Status).
		Int("events", len(result.Events)).
		Msg("ups shipment tracked")

	return result, nil
}
