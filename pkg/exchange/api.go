/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package exchange

import (
	"context"
	"time"

	"github.com/samber/lo"
)

// State is a step of the exchange lifecycle recorded in the event log.
type State string

const (
	StateNew                   State = "NEW"
	StateIdentified            State = "IDENTIFIED"
	StateNotIdentified         State = "NOT_IDENTIFIED"
	StateDisclosureReceived    State = "DISCLOSURE_RECEIVED"
	StateDisclosureChecked     State = "DISCLOSURE_CHECKED"
	StateOffersRequested       State = "OFFERS_REQUESTED"
	StateOffersWaitingOnVendor State = "OFFERS_WAITING_ON_VENDOR"
	StateOffersReceived        State = "OFFERS_RECEIVED"
	StateNoOffersReceived      State = "NO_OFFERS_RECEIVED"
	StateOfferValidationError  State = "OFFER_VALIDATION_ERROR"
	StateOfferIDUndefinedError State = "OFFER_ID_UNDEFINED_ERROR"
	StateOffersSent            State = "OFFERS_SENT"
	StateClaimingInProgress    State = "CLAIMING_IN_PROGRESS"
	StateComplete              State = "COMPLETE"
	StateUnexpectedError       State = "UNEXPECTED_ERROR"
)

// Type of exchange.
type Type string

const (
	TypeIssuing    Type = "ISSUING"
	TypeDisclosure Type = "DISCLOSURE"
)

// Event is a single entry of the exchange event log.
type Event struct {
	State     State     `json:"state"`
	Timestamp time.Time `json:"timestamp"`
}

// PushDelegate is the holder-side push target registered for the exchange.
type PushDelegate struct {
	PushURL   string `json:"pushUrl"`
	PushToken string `json:"pushToken"`
}

// Exchange is one holder interaction with a tenant.
// The current status is never stored; it is derived from Events by ProjectProgress.
type Exchange struct {
	ID                  string            `json:"id"`
	TenantID            string            `json:"tenantId"`
	DisclosureID        string            `json:"disclosureId,omitempty"`
	Type                Type              `json:"type"`
	Events              []Event           `json:"events"`
	OfferIDs            []string          `json:"offerIds,omitempty"`
	FinalizedOfferIDs   []string          `json:"finalizedOfferIds,omitempty"`
	OfferHashes         []string          `json:"offerHashes,omitempty"`
	VendorUserID        string            `json:"vendorUserId,omitempty"`
	VendorOfferStatuses map[string]string `json:"vendorOfferStatuses,omitempty"`
	Challenge           string            `json:"challenge,omitempty"`
	ChallengeIssuedAt   int64             `json:"challengeIssuedAt,omitempty"`
	Err                 string            `json:"err,omitempty"`
	PushDelegate        *PushDelegate     `json:"pushDelegate,omitempty"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}

// HasState returns true if any of the given states was ever recorded.
func (e *Exchange) HasState(states ...State) bool {
	return lo.ContainsBy(e.Events, func(ev Event) bool {
		return lo.Contains(states, ev.State)
	})
}

// LastState returns the state of the most recent event.
func (e *Exchange) LastState() (State, bool) {
	if len(e.Events) == 0 {
		return "", false
	}

	return e.Events[len(e.Events)-1].State, true
}

// ContainsOffer returns true if the offer belongs to the exchange.
func (e *Exchange) ContainsOffer(offerID string) bool {
	return lo.Contains(e.OfferIDs, offerID)
}

// IsFinalized returns true if a finalization outcome has been recorded for the offer.
func (e *Exchange) IsFinalized(offerID string) bool {
	return lo.Contains(e.FinalizedOfferIDs, offerID)
}

// AllOffersFinalized returns true if every offer of the exchange has an outcome.
func (e *Exchange) AllOffersFinalized() bool {
	return lo.EveryBy(e.OfferIDs, e.IsFinalized)
}

// OffersUpdate is applied atomically to an exchange by the ingestion pipeline.
type OffersUpdate struct {
	Events              []Event
	OfferIDs            []string
	OfferHashes         []string
	VendorOfferStatuses map[string]string
	// Challenge replaces the current proof challenge when not empty.
	Challenge         string
	ChallengeIssuedAt int64
}

// Store persists exchanges. Every method is a single atomic document update;
// events are only ever appended.
type Store interface {
	Create(ctx context.Context, ex *Exchange) error
	Get(ctx context.Context, tenantID, id string) (*Exchange, error)
	AppendEvents(ctx context.Context, id string, events ...Event) (*Exchange, error)
	// Fail appends the events and records the error message.
	Fail(ctx context.Context, id string, message string, events ...Event) (*Exchange, error)
	// Identify sets the holder identity and appends the events.
	Identify(ctx context.Context, id string, vendorUserID string, events ...Event) (*Exchange, error)
	RecordOffers(ctx context.Context, id string, update *OffersUpdate) (*Exchange, error)
	AddFinalizedOffer(ctx context.Context, id string, offerID string) (*Exchange, error)
}
