package ups

import "encoding/xml"

// Decoded shape of the legacy UPS Track XML response. Every node below
// Shipment is optional on the wire; pointers distinguish "absent" from
// "present but empty".

type trackResponse struct {
	XMLName  xml.Name       `xml:"TrackResponse"`
	Response responseStatus `xml:"Response"`
	Shipment *shipmentNode  `xml:"Shipment"`
}

type responseStatus struct {
	StatusCode string         `xml:"ResponseStatusCode"`
	Error      *responseError `xml:"Error"`
}

type responseError struct {
	Code        string `xml:"ErrorCode"`
	Description string `xml:"ErrorDescription"`
}

type shipmentNode struct {
	Shipper                  *partyNode         `xml:"Shipper"`
	ShipTo                   *partyNode         `xml:"ShipTo"`
	Service                  *serviceNode       `xml:"Service"`
	CurrentStatus            *currentStatusNode `xml:"CurrentStatus"`
	PickupDate               string             `xml:"PickupDate"`
	EstimatedDeliveryDetails *dateTimeNode      `xml:"EstimatedDeliveryDetails"`
	DeliveryDetails          *deliveryDetails   `xml:"DeliveryDetails"`
	// Package is read but unused downstream; reserved by the carrier
	// contract for package-level detail.
	Package    *packageNode   `xml:"Package"`
	Activities []activityNode `xml:"Activity"`
}

type partyNode struct {
	Address *addressNode `xml:"Address"`
}

type addressNode struct {
	City              string `xml:"City"`
	StateProvinceCode string `xml:"StateProvinceCode"`
	PostalCode        string `xml:"PostalCode"`
	CountryCode       string `xml:"CountryCode"`
}

type serviceNode struct {
	Code        string `xml:"Code"`
	Description string `xml:"Description"`
}

type currentStatusNode struct {
	Code        string `xml:"Code"`
	Description string `xml:"Description"`
}

type dateTimeNode struct {
	Date string `xml:"Date"`
	Time string `xml:"Time"`
}

type deliveryDetails struct {
	DeliveryDate *dateTimeNode `xml:"DeliveryDate"`
}

type packageNode struct {
	TrackingNumber string `xml:"TrackingNumber"`
}

// activityNode entries arrive most-recent-first; the first one is the
// shipment's latest known status change.
type activityNode struct {
	Location *activityLocation `xml:"ActivityLocation"`
	Status   *activityStatus   `xml:"Status"`
	Date     string            `xml:"Date"`
	Time     string            `xml:"Time"`
}

type activityLocation struct {
	Address         *addressNode `xml:"Address"`
	SignedForByName string       `xml:"SignedForByName"`
}

type activityStatus struct {
	StatusType *statusTypeNode `xml:"StatusType"`
}

type statusTypeNode struct {
	Code        string `xml:"Code"`
	Description string `xml:"Description"`
}
