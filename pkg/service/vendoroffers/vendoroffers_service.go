/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination vendoroffers_service_mocks_test.go -self_package mocks -package vendoroffers_test -source=vendoroffers_service.go -mock_names offerIngester=MockOfferIngester,eventPublisher=MockEventPublisher

package vendoroffers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/trustbloc/credential-agent/internal/pkg/log"
	"github.com/trustbloc/credential-agent/pkg/event/spi"
	"github.com/trustbloc/credential-agent/pkg/exchange"
	"github.com/trustbloc/credential-agent/pkg/offer"
	"github.com/trustbloc/credential-agent/pkg/restapi/resterr"
	"github.com/trustbloc/credential-agent/pkg/service/offeringestion"
	"github.com/trustbloc/credential-agent/pkg/tenant"
)

var logger = log.New("vendor-offers")

type offerIngester interface {
	Ingest(
		ctx context.Context,
		cfg *tenant.IssuingConfig,
		ex *exchange.Exchange,
		vendorOffers []*offer.Offer,
		knownHashes []string,
	) (*offeringestion.IngestResult, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, eventType spi.EventType, tenantID, exchangeID string, payload interface{}) error
}

// Config holds configuration options and dependencies for Service.
type Config struct {
	ExchangeStore  exchange.Store
	OfferStore     offer.Store
	Ingester       offerIngester
	EventPublisher eventPublisher
}

// Service implements the operations the tenant back office calls directly.
type Service struct {
	exchanges exchange.Store
	offers    offer.Store
	ingester  offerIngester
	publisher eventPublisher
	now       func() time.Time
}

func NewService(config *Config) *Service {
	return &Service{
		exchanges: config.ExchangeStore,
		offers:    config.OfferStore,
		ingester:  config.Ingester,
		publisher: config.EventPublisher,
		now:       time.Now,
	}
}

// AddOffer validates and stores one offer for the exchange.
func (s *Service) AddOffer(
	ctx context.Context,
	cfg *tenant.IssuingConfig,
	exchangeID string,
	o *offer.Offer,
) (*offer.Offer, error) {
	ex, err := s.getExchange(ctx, cfg.TenantID, exchangeID)
	if err != nil {
		return nil, err
	}

	res, err := s.ingest(ctx, cfg, ex, o, ex.OfferHashes)
	if err != nil {
		return nil, err
	}

	update := &exchange.OffersUpdate{
		OfferIDs:            lo.Map(res.Offers, func(o *offer.Offer, _ int) string { return o.ID }),
		OfferHashes:         res.Hashes,
		VendorOfferStatuses: res.Statuses,
	}

	if res.Invalid {
		update.Events = []exchange.Event{{State: exchange.StateOfferValidationError, Timestamp: s.now().UTC()}}
	}

	if _, err = s.exchanges.RecordOffers(ctx, ex.ID, update); err != nil {
		return nil, resterr.NewSystemError(resterr.ExchangeStoreComponent, "record-offers", err)
	}

	return s.accepted(o, res)
}

// AddPreparedOffer stores an offer for the holder named in its credential subject. The offer is
// picked up by the next exchange of the holder.
func (s *Service) AddPreparedOffer(ctx context.Context, cfg *tenant.IssuingConfig, o *offer.Offer) (*offer.Offer, error) {
	vendorUserID := o.VendorUserID()
	if vendorUserID == "" {
		return nil, resterr.NewValidationError(resterr.InvalidValue, "credentialSubject.vendorUserId",
			errors.New("prepared offers must name the holder"))
	}

	pending, err := s.offers.FindPending(ctx, &offer.PendingFilter{
		TenantID:     cfg.TenantID,
		VendorUserID: vendorUserID,
	})
	if err != nil {
		return nil, resterr.NewSystemError(resterr.OfferStoreComponent, "find-pending", err)
	}

	known := lo.FilterMap(pending, func(p *offer.Offer, _ int) (string, bool) {
		return p.Hash, p.Hash != ""
	})

	res, err := s.ingest(ctx, cfg, &exchange.Exchange{TenantID: cfg.TenantID}, o, known)
	if err != nil {
		return nil, err
	}

	return s.accepted(o, res)
}

// CompleteOffers marks the vendor ingestion of the exchange as finished and notifies the holder.
func (s *Service) CompleteOffers(ctx context.Context, cfg *tenant.IssuingConfig, exchangeID string) ([]string, error) {
	ex, err := s.getExchange(ctx, cfg.TenantID, exchangeID)
	if err != nil {
		return nil, err
	}

	state := exchange.StateOffersReceived
	if len(ex.OfferIDs) == 0 {
		state = exchange.StateNoOffersReceived
	}

	ex, err = s.exchanges.AppendEvents(ctx, ex.ID, exchange.Event{State: state, Timestamp: s.now().UTC()})
	if err != nil {
		return nil, resterr.NewSystemError(resterr.ExchangeStoreComponent, "append-events", err)
	}

	offerIDs := lo.Ternary(ex.OfferIDs == nil, []string{}, ex.OfferIDs)

	if ex.PushDelegate != nil {
		err = s.publisher.Publish(ctx, spi.OffersReady, cfg.TenantID, ex.ID, &spi.OffersReadyPayload{
			TenantDID:  cfg.TenantDID,
			ExchangeID: ex.ID,
			PushURL:    ex.PushDelegate.PushURL,
			PushToken:  ex.PushDelegate.PushToken,
			OfferIDs:   offerIDs,
		})
		if err != nil {
			logger.Error("failed to publish offers ready", log.WithExchangeID(ex.ID), log.WithError(err))
		}
	}

	logger.Info("vendor offers completed", log.WithExchangeID(ex.ID), log.WithState(string(state)),
		log.WithCount(len(offerIDs)))

	return offerIDs, nil
}

// CleanPII reduces the credential subjects of the matching offers of the tenant to the holder stub.
func (s *Service) CleanPII(ctx context.Context, cfg *tenant.IssuingConfig, filter *offer.CleanPIIFilter) (int64, error) {
	n, err := s.offers.CleanPII(ctx, cfg.TenantID, filter)
	if err != nil {
		return 0, resterr.NewSystemError(resterr.OfferStoreComponent, "clean-pii", err)
	}

	logger.Info("offers cleaned", log.WithTenantID(cfg.TenantID), log.WithCount(int(n)))

	return n, nil
}

func (s *Service) ingest(
	ctx context.Context,
	cfg *tenant.IssuingConfig,
	ex *exchange.Exchange,
	o *offer.Offer,
	known []string,
) (*offeringestion.IngestResult, error) {
	res, err := s.ingester.Ingest(ctx, cfg, ex, []*offer.Offer{o}, known)
	if err != nil {
		if resterr.IsCode(err, resterr.OfferIDUndefined) {
			return nil, resterr.NewValidationError(resterr.InvalidValue, "offerId", err)
		}

		return nil, err
	}

	return res, nil
}

// accepted returns the stored offer, or the reason it was not stored.
func (s *Service) accepted(o *offer.Offer, res *offeringestion.IngestResult) (*offer.Offer, error) {
	if len(res.Offers) == 1 {
		return res.Offers[0], nil
	}

	status := res.Statuses[o.OfferID]

	if status == offeringestion.StatusDuplicate {
		return nil, resterr.NewCustomError(resterr.DuplicateOffer,
			fmt.Errorf("offer %s duplicates an existing offer", o.OfferID))
	}

	return nil, resterr.NewValidationError(resterr.InvalidValue, "offer", errors.New(status))
}

func (s *Service) getExchange(ctx context.Context, tenantID, id string) (*exchange.Exchange, error) {
	ex, err := s.exchanges.Get(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, resterr.ErrDataNotFound) {
			return nil, resterr.NewCustomError(resterr.DoesntExist, fmt.Errorf("exchange %s", id))
		}

		return nil, resterr.NewSystemError(resterr.ExchangeStoreComponent, "get", err)
	}

	return ex, nil
}
