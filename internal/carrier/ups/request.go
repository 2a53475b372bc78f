package ups

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Fixed values of the legacy UPS Track request envelope.
const (
	requestAction  = "Track"
	requestOption  = "activity"
	includeFreight = "01"
)

// Credentials are the UPS XML API access credentials. They are supplied by
// configuration; the gateway never issues or stores them elsewhere.
type Credentials struct {
	LicenseNumber string
	UserID        string
	Password      string
}

type accessRequest struct {
	XMLName             xml.Name `xml:"AccessRequest"`
	AccessLicenseNumber string   `xml:"AccessLicenseNumber"`
	UserID              string   `xml:"UserId"`
	Password            string   `xml:"Password"`
}

type trackRequest struct {
	XMLName        xml.Name     `xml:"TrackRequest"`
	Request        requestBlock `xml:"Request"`
	IncludeFreight string       `xml:"IncludeFreight"`
	TrackingNumber string       `xml:"TrackingNumber"`
}

type requestBlock struct {
	RequestAction string `xml:"RequestAction"`
	RequestOption string `xml:"RequestOption"`
}

// buildTrackRequest renders the payload the legacy UPS Track endpoint
// expects: an AccessRequest document followed by a TrackRequest document,
// concatenated in one body. The tracking number is passed through verbatim,
// whatever its shape; escaping is left to the XML encoder.
func buildTrackRequest(creds Credentials, trackingNumber string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(xml.Header)
	access := accessRequest{
		AccessLicenseNumber: creds.LicenseNumber,
		UserID:              creds.UserID,
		Password:            creds.Password,
	}
	if err := xml.NewEncoder(&buf).Encode(access); err != nil {
		return nil, fmt.Errorf("encode access request: %w", err)
	}

	buf.WriteString("\n")
	buf.WriteString(xml.Header)
	track := trackRequest{
		Request: requestBlock{
			RequestAction: requestAction,
			RequestOption: requestOption,
		},
		IncludeFreight: includeFreight,
		TrackingNumber: trackingNumber,
	}
	if err := xml.NewEncoder(&buf).Encode(track); err != nil {
		return nil, fmt.Errorf("encode track request: %w", err)
	}

	return buf.Bytes(), nil
}
