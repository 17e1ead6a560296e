/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package holder

import (
	"github.com/trustbloc/credential-agent/pkg/offer"
	"github.com/trustbloc/credential-agent/pkg/pop"
)

// CredentialOffersRequest is the body of POST /issue/credential-offers.
type CredentialOffersRequest struct {
	ExchangeID  string   `json:"exchangeId"`
	Types       []string `json:"types,omitempty"`
	OfferHashes []string `json:"offerHashes,omitempty"`
}

// CredentialOffersResponse lists the offers the holder may act on.
type CredentialOffersResponse struct {
	Offers    []*offer.Offer `json:"offers"`
	Challenge string         `json:"challenge,omitempty"`
}

// FinalizeOffersRequest is the body of POST /issue/finalize-offers.
type FinalizeOffersRequest struct {
	ExchangeID       string     `json:"exchangeId"`
	ApprovedOfferIDs []string   `json:"approvedOfferIds,omitempty"`
	RejectedOfferIDs []string   `json:"rejectedOfferIds,omitempty"`
	Proof            *pop.Proof `json:"proof,omitempty"`
}

// ExchangeProgressResponse is the holder view of an exchange.
type ExchangeProgressResponse struct {
	ID                 string `json:"id"`
	Type               string `json:"type"`
	DisclosureComplete bool   `json:"disclosureComplete"`
	ExchangeComplete   bool   `json:"exchangeComplete"`
	ExchangeError      string `json:"exchangeError,omitempty"`
}
