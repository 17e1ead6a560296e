/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package spi

import (
	"encoding/json"
	"time"
)

const (
	// IssuingEventTopic carries issuing outcomes that are delivered to tenants and holders.
	IssuingEventTopic = "credential-agent-issuing"
)

// EventType event type.
type EventType string

const (
	// CredentialsIssued is published when a finalize call produced at least one credential.
	CredentialsIssued = EventType("credentials_issued")
	// OffersReady is published when the vendor completed offer ingestion for an exchange.
	OffersReady = EventType("offers_ready")
)

type Payload []byte

type Event struct {
	// SpecVersion is spec version(required).
	SpecVersion string `json:"specVersion"`
	// ID identifies the event(required).
	ID string `json:"id"`
	// Source is URI for producer(required).
	Source string `json:"source"`
	// Type defines event type(required).
	Type EventType `json:"type"`
	// Time defines time of occurrence(required).
	Time time.Time `json:"time"`
	// DataContentType is data content type(optional).
	DataContentType string `json:"dataContentType,omitempty"`
	// Data defines message(optional).
	Data Payload `json:"data,omitempty"`
	// TenantID is the tenant the event belongs to(optional).
	TenantID string `json:"tenantId,omitempty"`
	// ExchangeID is the exchange the event belongs to(optional).
	ExchangeID string `json:"exchangeId,omitempty"`
}

// Copy an event.
func (m *Event) Copy() *Event {
	return &Event{
		SpecVersion:     m.SpecVersion,
		ID:              m.ID,
		Source:          m.Source,
		Type:            m.Type,
		Time:            m.Time,
		DataContentType: m.DataContentType,
		Data:            append(Payload(nil), m.Data...),
		TenantID:        m.TenantID,
		ExchangeID:      m.ExchangeID,
	}
}

// DecodeData unmarshals the event payload into v.
func (m *Event) DecodeData(v interface{}) error {
	return json.Unmarshal(m.Data, v)
}

// NewEventWithPayload creates a new Event with payload.
func NewEventWithPayload(uuid string, source string, eventType EventType, payload Payload) *Event {
	event := NewEvent(uuid, source, eventType)
	event.Data = payload
	event.DataContentType = "application/json"

	return event
}

// NewEvent creates a new Event and sets all required fields.
func NewEvent(uuid string, source string, eventType EventType) *Event {
	return &Event{
		SpecVersion: "1.0",
		ID:          uuid,
		Source:      source,
		Type:        eventType,
		Time:        time.Now().UTC(),
	}
}

// CredentialsIssuedPayload is the data of a CredentialsIssued event.
type CredentialsIssuedPayload struct {
	TenantDID        string   `json:"tenantDID"`
	ExchangeID       string   `json:"exchangeId"`
	VendorUserID     string   `json:"vendorUserId,omitempty"`
	IssuedOfferIDs   []string `json:"issuedOfferIds"`
	RejectedOfferIDs []string `json:"rejectedOfferIds"`
	// IssuedCredentials maps vendor offer ids to the credential ids minted for them.
	IssuedCredentials map[string]string `json:"issuedCredentials,omitempty"`
}

// OffersReadyPayload is the data of an OffersReady event.
type OffersReadyPayload struct {
	TenantDID  string   `json:"tenantDID"`
	ExchangeID string   `json:"exchangeId"`
	PushURL    string   `json:"pushUrl"`
	PushToken  string   `json:"pushToken"`
	OfferIDs   []string `json:"offerIds"`
}
