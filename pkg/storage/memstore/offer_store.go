/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/trustbloc/credential-agent/pkg/offer"
	"github.com/trustbloc/credential-agent/pkg/restapi/resterr"
)

var _ offer.Store = (*OfferStore)(nil)

// OfferStore keeps offers in memory.
type OfferStore struct {
	mu    sync.Mutex
	items map[string]*offer.Offer
	now   func() time.Time
}

func NewOfferStore() *OfferStore {
	return &OfferStore{
		items: map[string]*offer.Offer{},
		now:   time.Now,
	}
}

func (s *OfferStore) Create(_ context.Context, offers ...*offer.Offer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clones := make([]*offer.Offer, 0, len(offers))

	for _, o := range offers {
		if _, ok := s.items[o.ID]; ok {
			return fmt.Errorf("offer %s already exists", o.ID)
		}

		c, err := cloneOffer(o)
		if err != nil {
			return err
		}

		clones = append(clones, c)
	}

	for _, c := range clones {
		s.items[c.ID] = c
	}

	return nil
}

func (s *OfferStore) Get(_ context.Context, tenantID, id string) (*offer.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.items[id]
	if !ok || o.TenantID != tenantID {
		return nil, resterr.ErrDataNotFound
	}

	return cloneOffer(o)
}

func (s *OfferStore) FindPending(_ context.Context, f *offer.PendingFilter) ([]*offer.Offer, error) {
	return s.find(func(o *offer.Offer) bool {
		if o.TenantID != f.TenantID || !o.IsPending() {
			return false
		}

		ownedByExchange := f.ExchangeID != "" && o.ExchangeID == f.ExchangeID
		preloadedForHolder := f.VendorUserID != "" && o.ExchangeID == "" && o.VendorUserID() == f.VendorUserID

		if !ownedByExchange && !preloadedForHolder {
			return false
		}

		if len(f.Types) > 0 && !lo.Some(o.Type, f.Types) {
			return false
		}

		return o.ContentHash == nil || !lo.Contains(f.ExcludeHashes, o.ContentHash.Value)
	})
}

func (s *OfferStore) FindByCredentialIDs(
	_ context.Context,
	tenantID string,
	credentialIDs []string,
) ([]*offer.Offer, error) {
	return s.find(func(o *offer.Offer) bool {
		return o.TenantID == tenantID && o.DID != "" && lo.Contains(credentialIDs, o.DID)
	})
}

func (s *OfferStore) ClaimIssuing(
	_ context.Context,
	tenantID, id string,
	claim *offer.IssuingClaim,
	now time.Time,
) (*offer.Offer, error) {
	return s.update(tenantID, id, claim.Token, now, func(o *offer.Offer) {
		o.IssuingClaim = &offer.IssuingClaim{Token: claim.Token, ExpiresAt: claim.ExpiresAt.UTC()}
	})
}

func (s *OfferStore) ReleaseIssuing(_ context.Context, tenantID, id string, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.items[id]
	if !ok || o.TenantID != tenantID {
		return resterr.ErrDataNotFound
	}

	if o.IssuingClaim != nil && o.IssuingClaim.Token == token {
		o.IssuingClaim = nil
		o.UpdatedAt = s.now().UTC()
	}

	return nil
}

func (s *OfferStore) Consent(_ context.Context, tenantID, id string, c *offer.Consent) (*offer.Offer, error) {
	return s.update(tenantID, id, c.ClaimToken, c.ConsentedAt, func(o *offer.Offer) {
		consentedAt := c.ConsentedAt.UTC()

		o.ConsentedAt = &consentedAt
		o.Issued = &consentedAt
		o.DigestSRI = c.DigestSRI
		o.DID = c.DID
		o.CredentialStatus = c.CredentialStatus
		o.SignedCredential = c.SignedCredential
		o.IssuingClaim = nil

		if c.ScrubPII {
			scrub(o)
		}
	})
}

func (s *OfferStore) Reject(
	_ context.Context,
	tenantID, id string,
	rejectedAt time.Time,
	scrubPII bool,
) (*offer.Offer, error) {
	return s.update(tenantID, id, "", rejectedAt, func(o *offer.Offer) {
		at := rejectedAt.UTC()
		o.RejectedAt = &at

		if scrubPII {
			scrub(o)
		}
	})
}

func (s *OfferStore) CleanPII(_ context.Context, tenantID string, f *offer.CleanPIIFilter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64

	for _, o := range s.items {
		if o.TenantID != tenantID || !matchesCleanFilter(o, f) {
			continue
		}

		scrub(o)
		o.UpdatedAt = s.now().UTC()
		count++
	}

	return count, nil
}

func matchesCleanFilter(o *offer.Offer, f *offer.CleanPIIFilter) bool {
	if f == nil {
		return true
	}

	if len(f.VendorUserIDs) > 0 && !lo.Contains(f.VendorUserIDs, o.VendorUserID()) {
		return false
	}

	if len(f.ExchangeIDs) > 0 && !lo.Contains(f.ExchangeIDs, o.ExchangeID) {
		return false
	}

	return len(f.OfferIDs) == 0 || lo.Contains(f.OfferIDs, o.ID)
}

func scrub(o *offer.Offer) {
	o.CredentialSubject = map[string]interface{}{
		offer.VendorUserIDField: o.VendorUserID(),
	}
}

// update applies the change to a pending offer unless an unexpired claim is held under another token.
func (s *OfferStore) update(
	tenantID, id string,
	token string,
	now time.Time,
	apply func(o *offer.Offer),
) (*offer.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.items[id]
	if !ok || o.TenantID != tenantID {
		return nil, resterr.ErrDataNotFound
	}

	if !o.IsPending() {
		return nil, offer.ErrNotPending
	}

	if o.IsClaimed(now) && (token == "" || o.IssuingClaim.Token != token) {
		return nil, offer.ErrIssuingClaimed
	}

	apply(o)
	o.UpdatedAt = s.now().UTC()

	return cloneOffer(o)
}

func (s *OfferStore) find(match func(o *offer.Offer) bool) ([]*offer.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*offer.Offer

	for _, o := range s.items {
		if !match(o) {
			continue
		}

		c, err := cloneOffer(o)
		if err != nil {
			return nil, err
		}

		result = append(result, c)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}

		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}
