/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package offerstore

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/trustbloc/credential-agent/pkg/offer"
	"github.com/trustbloc/credential-agent/pkg/storage/mongodb/internal"
)

type taggedDigestDocument struct {
	Type  string `bson:"type"`
	Value string `bson:"value"`
}

type statusDocument struct {
	ID                   string `bson:"id"`
	Type                 string `bson:"type"`
	StatusListIndex      int    `bson:"statusListIndex"`
	StatusListID         int64  `bson:"statusListId"`
	StatusListCredential string `bson:"statusListCredential,omitempty"`
}

type resourceDocument struct {
	ID       string   `bson:"id"`
	Type     []string `bson:"type,omitempty"`
	Hint     []string `bson:"hint,omitempty"`
	LinkCode string   `bson:"linkCode,omitempty"`
}

type schemaDocument struct {
	ID   string `bson:"id"`
	Type string `bson:"type"`
}

type claimDocument struct {
	Token     string    `bson:"token"`
	ExpiresAt time.Time `bson:"expiresAt"`
}

type linkDocument struct {
	LinkType string `bson:"linkType"`
	LinkedID string `bson:"linkedCredentialId"`
}

// mongoDocument keeps exchangeId and vendorUserId at the top level so that pending and PII queries
// can use the indexes. The credential subject is stored with escaped keys.
type mongoDocument struct {
	ID           string `bson:"_id"`
	TenantID     string `bson:"tenantId"`
	ExchangeID   string `bson:"exchangeId"`
	OfferID      string `bson:"offerId,omitempty"`
	VendorUserID string `bson:"vendorUserId"`

	Context           []string              `bson:"context,omitempty"`
	IssuerID          string                `bson:"issuerId"`
	Type              []string              `bson:"type"`
	CredentialSubject bson.M                `bson:"credentialSubject"`
	CredentialSchema  []schemaDocument      `bson:"credentialSchema,omitempty"`
	CredentialStatus  *statusDocument       `bson:"credentialStatus,omitempty"`
	ValidFrom         *time.Time            `bson:"validFrom,omitempty"`
	ValidUntil        *time.Time            `bson:"validUntil,omitempty"`
	ExpirationDate    *time.Time            `bson:"expirationDate,omitempty"`
	Replaces          []resourceDocument    `bson:"replaces,omitempty"`
	RelatedResource   []resourceDocument    `bson:"relatedResource,omitempty"`
	LinkedCredentials []linkDocument        `bson:"linkedCredentials,omitempty"`
	ContentHash       *taggedDigestDocument `bson:"contentHash,omitempty"`
	Hash              string                `bson:"hash,omitempty"`
	LinkCode          string                `bson:"linkCode,omitempty"`
	LinkCodeCommit    *taggedDigestDocument `bson:"linkCodeCommitment,omitempty"`

	ConsentedAt      *time.Time `bson:"consentedAt,omitempty"`
	RejectedAt       *time.Time `bson:"rejectedAt,omitempty"`
	Issued           *time.Time `bson:"issued,omitempty"`
	RevokedAt        *time.Time `bson:"revokedAt,omitempty"`
	DigestSRI        string     `bson:"digestSRI,omitempty"`
	DID              string     `bson:"did,omitempty"`
	SignedCredential string     `bson:"signedCredential,omitempty"`

	IssuingClaim *claimDocument `bson:"issuingClaim,omitempty"`

	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func toDocument(o *offer.Offer) (*mongoDocument, error) {
	subject, err := internal.PrepareDataForBSONStorage(o.CredentialSubject)
	if err != nil {
		return nil, fmt.Errorf("prepare credential subject of offer %s: %w", o.ID, err)
	}

	return &mongoDocument{
		ID:                o.ID,
		TenantID:          o.TenantID,
		ExchangeID:        o.ExchangeID,
		OfferID:           o.OfferID,
		VendorUserID:      o.VendorUserID(),
		Context:           o.Context,
		IssuerID:          o.Issuer.ID,
		Type:              o.Type,
		CredentialSubject: subject,
		CredentialSchema: lo.Map(o.CredentialSchema, func(c offer.CredentialSchema, _ int) schemaDocument {
			return schemaDocument{ID: c.ID, Type: c.Type}
		}),
		CredentialStatus: toStatusDocument(o.CredentialStatus),
		ValidFrom:        utc(o.ValidFrom),
		ValidUntil:       utc(o.ValidUntil),
		ExpirationDate:   utc(o.ExpirationDate),
		Replaces:         toResourceDocuments(o.Replaces),
		RelatedResource:  toResourceDocuments(o.RelatedResource),
		LinkedCredentials: lo.Map(o.LinkedCredentials, func(l offer.LinkedCredential, _ int) linkDocument {
			return linkDocument{LinkType: l.LinkType, LinkedID: l.LinkedID}
		}),
		ContentHash:      toDigestDocument(o.ContentHash),
		Hash:             o.Hash,
		LinkCode:         o.LinkCode,
		ConsentedAt:      utc(o.ConsentedAt),
		RejectedAt:       utc(o.RejectedAt),
		Issued:           utc(o.Issued),
		RevokedAt:        utc(o.RevokedAt),
		DigestSRI:        o.DigestSRI,
		DID:              o.DID,
		SignedCredential: o.SignedCredential,
		CreatedAt:        o.CreatedAt.UTC(),
		UpdatedAt:        o.UpdatedAt.UTC(),
		LinkCodeCommit:   toCommitmentDocument(o.LinkCodeCommitment),
		IssuingClaim:     toClaimDocument(o.IssuingClaim),
	}, nil
}

func fromDocument(doc *mongoDocument) *offer.Offer {
	o := &offer.Offer{
		ID:                doc.ID,
		TenantID:          doc.TenantID,
		ExchangeID:        doc.ExchangeID,
		OfferID:           doc.OfferID,
		Context:           doc.Context,
		Issuer:            offer.Issuer{ID: doc.IssuerID},
		Type:              doc.Type,
		CredentialSubject: internal.RestoreJSONMap(doc.CredentialSubject),
		ValidFrom:         utc(doc.ValidFrom),
		ValidUntil:        utc(doc.ValidUntil),
		ExpirationDate:    utc(doc.ExpirationDate),
		Replaces:          fromResourceDocuments(doc.Replaces),
		RelatedResource:   fromResourceDocuments(doc.RelatedResource),
		Hash:              doc.Hash,
		LinkCode:          doc.LinkCode,
		ConsentedAt:       utc(doc.ConsentedAt),
		RejectedAt:        utc(doc.RejectedAt),
		Issued:            utc(doc.Issued),
		RevokedAt:         utc(doc.RevokedAt),
		DigestSRI:         doc.DigestSRI,
		DID:               doc.DID,
		SignedCredential:  doc.SignedCredential,
		CreatedAt:         doc.CreatedAt.UTC(),
		UpdatedAt:         doc.UpdatedAt.UTC(),
	}

	if len(doc.CredentialSchema) > 0 {
		o.CredentialSchema = lo.Map(doc.CredentialSchema, func(c schemaDocument, _ int) offer.CredentialSchema {
			return offer.CredentialSchema{ID: c.ID, Type: c.Type}
		})
	}

	if len(doc.LinkedCredentials) > 0 {
		o.LinkedCredentials = lo.Map(doc.LinkedCredentials, func(l linkDocument, _ int) offer.LinkedCredential {
			return offer.LinkedCredential{LinkType: l.LinkType, LinkedID: l.LinkedID}
		})
	}

	if doc.CredentialStatus != nil {
		o.CredentialStatus = &offer.CredentialStatus{
			ID:                   doc.CredentialStatus.ID,
			Type:                 doc.CredentialStatus.Type,
			StatusListIndex:      doc.CredentialStatus.StatusListIndex,
			StatusListID:         doc.CredentialStatus.StatusListID,
			StatusListCredential: doc.CredentialStatus.StatusListCredential,
		}
	}

	if doc.IssuingClaim != nil {
		o.IssuingClaim = &offer.IssuingClaim{Token: doc.IssuingClaim.Token, ExpiresAt: doc.IssuingClaim.ExpiresAt.UTC()}
	}

	if doc.ContentHash != nil {
		o.ContentHash = &offer.ContentHash{Type: doc.ContentHash.Type, Value: doc.ContentHash.Value}
	}

	if doc.LinkCodeCommit != nil {
		o.LinkCodeCommitment = &offer.LinkCodeCommitment{Type: doc.LinkCodeCommit.Type, Value: doc.LinkCodeCommit.Value}
	}

	return o
}

func toStatusDocument(s *offer.CredentialStatus) *statusDocument {
	if s == nil {
		return nil
	}

	return &statusDocument{
		ID:                   s.ID,
		Type:                 s.Type,
		StatusListIndex:      s.StatusListIndex,
		StatusListID:         s.StatusListID,
		StatusListCredential: s.StatusListCredential,
	}
}

func toClaimDocument(c *offer.IssuingClaim) *claimDocument {
	if c == nil {
		return nil
	}

	return &claimDocument{Token: c.Token, ExpiresAt: c.ExpiresAt.UTC()}
}

func toDigestDocument(h *offer.ContentHash) *taggedDigestDocument {
	if h == nil {
		return nil
	}

	return &taggedDigestDocument{Type: h.Type, Value: h.Value}
}

func toCommitmentDocument(c *offer.LinkCodeCommitment) *taggedDigestDocument {
	if c == nil {
		return nil
	}

	return &taggedDigestDocument{Type: c.Type, Value: c.Value}
}

func toResourceDocuments(resources []offer.RelatedResource) []resourceDocument {
	return lo.Map(resources, func(r offer.RelatedResource, _ int) resourceDocument {
		return resourceDocument{ID: r.ID, Type: r.Type, Hint: r.Hint, LinkCode: r.LinkCode}
	})
}

func fromResourceDocuments(resources []resourceDocument) []offer.RelatedResource {
	if len(resources) == 0 {
		return nil
	}

	return lo.Map(resources, func(r resourceDocument, _ int) offer.RelatedResource {
		return offer.RelatedResource{ID: r.ID, Type: r.Type, Hint: r.Hint, LinkCode: r.LinkCode}
	})
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}

	v := t.UTC()

	return &v
}
