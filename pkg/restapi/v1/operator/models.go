/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package operator

import (
	"errors"
	"time"

	"github.com/trustbloc/credential-agent/pkg/exchange"
	"github.com/trustbloc/credential-agent/pkg/offer"
	"github.com/trustbloc/credential-agent/pkg/restapi/resterr"
)

// CreateExchangeRequest is the body of POST /exchanges.
type CreateExchangeRequest struct {
	Type         exchange.Type          `json:"type,omitempty"`
	DisclosureID string                 `json:"disclosureId,omitempty"`
	PushDelegate *exchange.PushDelegate `json:"pushDelegate,omitempty"`
}

// ExchangeResponse describes a created exchange.
type ExchangeResponse struct {
	ID           string           `json:"id"`
	Type         exchange.Type    `json:"type"`
	DisclosureID string           `json:"disclosureId,omitempty"`
	Events       []exchange.Event `json:"events"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// IdentifyRequest binds the holder known to the vendor to an exchange.
type IdentifyRequest struct {
	VendorUserID string `json:"vendorUserId"`
}

func (r *IdentifyRequest) Validate() error {
	if r.VendorUserID == "" {
		return resterr.NewValidationError(resterr.InvalidValue, "vendorUserId", errors.New("vendorUserId is required"))
	}

	return nil
}

// IdentifyResponse carries the access token of the holder.
type IdentifyResponse struct {
	Token string `json:"token"`
}

// CompleteOffersResponse lists the offers of the exchange once the vendor is done.
type CompleteOffersResponse struct {
	OfferIDs []string `json:"offerIds"`
}

// CleanPIIRequest selects the offers to clean. An empty filter selects every offer of the tenant.
type CleanPIIRequest struct {
	Filter *offer.CleanPIIFilter `json:"filter,omitempty"`
}

// CleanPIIResponse reports how many offers were cleaned.
type CleanPIIResponse struct {
	NumCleaned int64 `json:"numCleaned"`
}
