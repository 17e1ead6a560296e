/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package memstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/trustbloc/credential-agent/pkg/exchange"
	"github.com/trustbloc/credential-agent/pkg/restapi/resterr"
)

var _ exchange.Store = (*ExchangeStore)(nil)

// ExchangeStore keeps exchanges in memory. Every update runs under a single lock.
type ExchangeStore struct {
	mu    sync.Mutex
	items map[string]*exchange.Exchange
	now   func() time.Time
}

func NewExchangeStore() *ExchangeStore {
	return &ExchangeStore{
		items: map[string]*exchange.Exchange{},
		now:   time.Now,
	}
}

func (s *ExchangeStore) Create(_ context.Context, ex *exchange.Exchange) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[ex.ID]; ok {
		return fmt.Errorf("exchange %s already exists", ex.ID)
	}

	s.items[ex.ID] = cloneExchange(ex)

	return nil
}

func (s *ExchangeStore) Get(_ context.Context, tenantID, id string) (*exchange.Exchange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ex, ok := s.items[id]
	if !ok || ex.TenantID != tenantID {
		return nil, resterr.ErrDataNotFound
	}

	return cloneExchange(ex), nil
}

func (s *ExchangeStore) AppendEvents(_ context.Context, id string, events ...exchange.Event) (*exchange.Exchange, error) {
	return s.update(id, func(ex *exchange.Exchange) {
		ex.Events = append(ex.Events, events...)
	})
}

func (s *ExchangeStore) Fail(
	_ context.Context,
	id string,
	message string,
	events ...exchange.Event,
) (*exchange.Exchange, error) {
	return s.update(id, func(ex *exchange.Exchange) {
		ex.Events = append(ex.Events, events...)
		ex.Err = message
	})
}

func (s *ExchangeStore) Identify(
	_ context.Context,
	id string,
	vendorUserID string,
	events ...exchange.Event,
) (*exchange.Exchange, error) {
	return s.update(id, func(ex *exchange.Exchange) {
		ex.Events = append(ex.Events, events...)
		ex.VendorUserID = vendorUserID
	})
}

func (s *ExchangeStore) RecordOffers(
	_ context.Context,
	id string,
	u *exchange.OffersUpdate,
) (*exchange.Exchange, error) {
	return s.update(id, func(ex *exchange.Exchange) {
		ex.Events = append(ex.Events, u.Events...)
		ex.OfferIDs = lo.Uniq(append(ex.OfferIDs, u.OfferIDs...))
		ex.OfferHashes = lo.Uniq(append(ex.OfferHashes, u.OfferHashes...))

		if len(u.VendorOfferStatuses) > 0 && ex.VendorOfferStatuses == nil {
			ex.VendorOfferStatuses = map[string]string{}
		}

		for k, v := range u.VendorOfferStatuses {
			ex.VendorOfferStatuses[k] = v
		}

		if u.Challenge != "" {
			ex.Challenge = u.Challenge
			ex.ChallengeIssuedAt = u.ChallengeIssuedAt
		}
	})
}

func (s *ExchangeStore) AddFinalizedOffer(_ context.Context, id string, offerID string) (*exchange.Exchange, error) {
	return s.update(id, func(ex *exchange.Exchange) {
		ex.FinalizedOfferIDs = append(ex.FinalizedOfferIDs, offerID)
	})
}

func (s *ExchangeStore) update(id string, apply func(ex *exchange.Exchange)) (*exchange.Exchange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ex, ok := s.items[id]
	if !ok {
		return nil, resterr.ErrDataNotFound
	}

	apply(ex)
	ex.UpdatedAt = s.now().UTC()

	return cloneExchange(ex), nil
}
