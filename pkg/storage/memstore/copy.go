/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package memstore

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/samber/lo"

	"github.com/trustbloc/credential-agent/pkg/exchange"
	"github.com/trustbloc/credential-agent/pkg/offer"
)

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p

	return &v
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}

	return append(make([]T, 0, len(s)), s...)
}

func cloneExchange(ex *exchange.Exchange) *exchange.Exchange {
	c := *ex

	c.Events = cloneSlice(ex.Events)
	c.OfferIDs = cloneSlice(ex.OfferIDs)
	c.FinalizedOfferIDs = cloneSlice(ex.FinalizedOfferIDs)
	c.OfferHashes = cloneSlice(ex.OfferHashes)
	c.PushDelegate = clonePtr(ex.PushDelegate)

	if ex.VendorOfferStatuses != nil {
		c.VendorOfferStatuses = lo.Assign(ex.VendorOfferStatuses)
	}

	return &c
}

func cloneOffer(o *offer.Offer) (*offer.Offer, error) {
	subject, err := cloneSubject(o.CredentialSubject)
	if err != nil {
		return nil, fmt.Errorf("copy credential subject of offer %s: %w", o.ID, err)
	}

	c := *o

	c.Context = cloneSlice(o.Context)
	c.Type = cloneSlice(o.Type)
	c.CredentialSubject = subject
	c.CredentialSchema = cloneSlice(o.CredentialSchema)
	c.CredentialStatus = clonePtr(o.CredentialStatus)
	c.ValidFrom = clonePtr(o.ValidFrom)
	c.ValidUntil = clonePtr(o.ValidUntil)
	c.ExpirationDate = clonePtr(o.ExpirationDate)
	c.Replaces = cloneResources(o.Replaces)
	c.RelatedResource = cloneResources(o.RelatedResource)
	c.LinkedCredentials = cloneSlice(o.LinkedCredentials)
	c.ContentHash = clonePtr(o.ContentHash)
	c.LinkCodeCommitment = clonePtr(o.LinkCodeCommitment)
	c.ConsentedAt = clonePtr(o.ConsentedAt)
	c.RejectedAt = clonePtr(o.RejectedAt)
	c.Issued = clonePtr(o.Issued)
	c.RevokedAt = clonePtr(o.RevokedAt)
	c.IssuingClaim = clonePtr(o.IssuingClaim)

	return &c, nil
}

func cloneResources(resources []offer.RelatedResource) []offer.RelatedResource {
	return lo.Map(resources, func(r offer.RelatedResource, _ int) offer.RelatedResource {
		r.Type = cloneSlice(r.Type)
		r.Hint = cloneSlice(r.Hint)

		return r
	})
}

// cloneSubject deep copies the credential subject, nested objects and arrays included.
func cloneSubject(subject map[string]interface{}) (map[string]interface{}, error) {
	if subject == nil {
		return nil, nil
	}

	c := make(map[string]interface{}, len(subject))

	if err := copier.CopyWithOption(&c, subject, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}

	return c, nil
}
