/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package offer

import (
	"context"
	"time"
)

// Issuer of the credential.
type Issuer struct {
	ID string `json:"id"`
}

// CredentialSchema references the JSON schema of a credential type.
type CredentialSchema struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// CredentialStatus references the revocation list entry of an issued credential.
type CredentialStatus struct {
	ID                   string `json:"id"`
	Type                 string `json:"type"`
	StatusListIndex      int    `json:"statusListIndex"`
	StatusListID         int64  `json:"statusListId"`
	StatusListCredential string `json:"statusListCredential,omitempty"`
}

// RelatedResource references a previously issued credential.
type RelatedResource struct {
	ID   string   `json:"id"`
	Type []string `json:"type,omitempty"`
	// Hint is the type of the referenced credential, resolved at ingestion.
	Hint []string `json:"hint,omitempty"`
	// LinkCode is disclosed only when the referenced credential was revoked.
	LinkCode string `json:"linkCode,omitempty"`
}

// LinkedCredential links the offer to another credential of the holder.
type LinkedCredential struct {
	LinkType string `json:"linkType"`
	LinkedID string `json:"linkedCredentialId"`
}

// ContentHash is the tagged digest of the substantive content of an offer.
type ContentHash struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// LinkCodeCommitment is the tagged digest of the offer link code.
type LinkCodeCommitment struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Offer is a candidate credential. It is either pending, consented (issued) or rejected,
// and ConsentedAt and RejectedAt are never both set.
type Offer struct {
	ID         string `json:"id"`
	TenantID   string `json:"tenantId,omitempty"`
	ExchangeID string `json:"exchangeId,omitempty"`
	// OfferID is the identifier assigned by the vendor.
	OfferID string `json:"offerId,omitempty"`

	Context           []string               `json:"@context,omitempty"`
	Issuer            Issuer                 `json:"issuer"`
	Type              []string               `json:"type"`
	CredentialSubject map[string]interface{} `json:"credentialSubject"`
	CredentialSchema  []CredentialSchema     `json:"credentialSchema,omitempty"`
	CredentialStatus  *CredentialStatus      `json:"credentialStatus,omitempty"`
	ValidFrom         *time.Time             `json:"validFrom,omitempty"`
	ValidUntil        *time.Time             `json:"validUntil,omitempty"`
	ExpirationDate    *time.Time             `json:"expirationDate,omitempty"`
	Replaces          []RelatedResource      `json:"replaces,omitempty"`
	RelatedResource   []RelatedResource      `json:"relatedResource,omitempty"`
	LinkedCredentials []LinkedCredential     `json:"linkedCredentials,omitempty"`

	ContentHash        *ContentHash        `json:"contentHash,omitempty"`
	Hash               string              `json:"hash,omitempty"`
	LinkCode           string              `json:"-"`
	LinkCodeCommitment *LinkCodeCommitment `json:"linkCodeCommitment,omitempty"`

	ConsentedAt      *time.Time `json:"consentedAt,omitempty"`
	RejectedAt       *time.Time `json:"rejectedAt,omitempty"`
	Issued           *time.Time `json:"issued,omitempty"`
	RevokedAt        *time.Time `json:"revokedAt,omitempty"`
	DigestSRI        string     `json:"digestSRI,omitempty"`
	DID              string     `json:"did,omitempty"`
	SignedCredential string     `json:"-"`
	// IssuingClaim is held by the finalize call issuing the offer.
	IssuingClaim *IssuingClaim `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VendorUserID returns the holder identifier carried in the credential subject.
func (o *Offer) VendorUserID() string {
	v, _ := o.CredentialSubject[VendorUserIDField].(string)

	return v
}

// IsPending returns true if the offer has not been finalized.
func (o *Offer) IsPending() bool {
	return o.ConsentedAt == nil && o.RejectedAt == nil
}

// IsClaimed returns true if an unexpired issuing claim is held on the offer.
func (o *Offer) IsClaimed(now time.Time) bool {
	return o.IssuingClaim != nil && o.IssuingClaim.ExpiresAt.After(now)
}

// IssuingClaim reserves a pending offer for one issuance. A claim past ExpiresAt may be taken over.
type IssuingClaim struct {
	Token     string
	ExpiresAt time.Time
}

// VendorUserIDField is the credential subject field identifying the holder at the vendor.
const VendorUserIDField = "vendorUserId"

// PendingFilter selects offers the holder may still act on.
type PendingFilter struct {
	TenantID     string
	ExchangeID   string
	VendorUserID string
	// Types restricts the result to offers having any of the types.
	Types []string
	// ExcludeHashes drops offers whose content hash is listed.
	ExcludeHashes []string
}

// CleanPIIFilter selects offers whose credential subject is reduced to the holder stub.
type CleanPIIFilter struct {
	VendorUserIDs []string `json:"vendorUserIds,omitempty"`
	ExchangeIDs   []string `json:"exchangeIds,omitempty"`
	OfferIDs      []string `json:"offerIds,omitempty"`
}

// Consent holds the issuance outcome written to an approved offer.
type Consent struct {
	ConsentedAt      time.Time
	DigestSRI        string
	DID              string
	CredentialStatus *CredentialStatus
	SignedCredential string
	ScrubPII         bool
	// ClaimToken must match the issuing claim held on the offer, if any. The claim is released.
	ClaimToken string
}

// Store persists offers.
type Store interface {
	Create(ctx context.Context, offers ...*Offer) error
	Get(ctx context.Context, tenantID, id string) (*Offer, error)
	FindPending(ctx context.Context, filter *PendingFilter) ([]*Offer, error)
	// FindByCredentialIDs returns issued offers of the tenant by their credential ids.
	FindByCredentialIDs(ctx context.Context, tenantID string, credentialIDs []string) ([]*Offer, error)
	// ClaimIssuing reserves a pending offer for issuance. It returns ErrNotPending if the offer
	// was already consented or rejected and ErrIssuingClaimed if another unexpired claim is held.
	ClaimIssuing(ctx context.Context, tenantID, id string, claim *IssuingClaim, now time.Time) (*Offer, error)
	// ReleaseIssuing drops the issuing claim if it is still held with the token.
	ReleaseIssuing(ctx context.Context, tenantID, id string, token string) error
	// Consent marks a pending offer as issued. It returns ErrNotPending if the
	// offer was already consented or rejected and ErrIssuingClaimed if the offer is
	// claimed under another token.
	Consent(ctx context.Context, tenantID, id string, consent *Consent) (*Offer, error)
	// Reject marks a pending offer as rejected. It returns ErrNotPending if the
	// offer was already consented or rejected and ErrIssuingClaimed while an
	// unexpired issuing claim is held.
	Reject(ctx context.Context, tenantID, id string, rejectedAt time.Time, scrubPII bool) (*Offer, error)
	CleanPII(ctx context.Context, tenantID string, filter *CleanPIIFilter) (int64, error)
}
