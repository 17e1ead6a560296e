/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination offeringestion_service_mocks_test.go -self_package mocks -package offeringestion_test -source=offeringestion_service.go -mock_names vendorClient=MockVendorClient,offerValidator=MockOfferValidator,challengeIssuer=MockChallengeIssuer

package offeringestion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/trustbloc/credential-agent/internal/pkg/log"
	"github.com/trustbloc/credential-agent/pkg/client/vendor"
	"github.com/trustbloc/credential-agent/pkg/doc/validator/offervalidator"
	"github.com/trustbloc/credential-agent/pkg/exchange"
	"github.com/trustbloc/credential-agent/pkg/observability/metrics"
	"github.com/trustbloc/credential-agent/pkg/offer"
	"github.com/trustbloc/credential-agent/pkg/restapi/resterr"
	"github.com/trustbloc/credential-agent/pkg/tenant"
)

const (
	// StatusOK is recorded for a vendor offer that was stored.
	StatusOK = "OK"
	// StatusDuplicate is recorded for a vendor offer whose content was already offered.
	StatusDuplicate = "Duplicate"

	// ProofProtocolVersion is the first protocol version requiring proof of possession.
	ProofProtocolVersion = 2
)

var logger = log.New("offer-ingestion")

type vendorClient interface {
	GenerateOffers(
		ctx context.Context,
		webhook *tenant.WebhookConfig,
		req *vendor.GenerateOffersRequest,
	) (*vendor.OffersReply, error)
}

type offerValidator interface {
	Validate(ctx context.Context, o *offer.Offer) error
}

type challengeIssuer interface {
	IssueChallenge() (string, int64, error)
}

// ServiceInterface serves offers to holders and ingests vendor offers.
type ServiceInterface interface {
	RequestOffers(ctx context.Context, cfg *tenant.IssuingConfig, req *Request) (*Result, error)
	Ingest(
		ctx context.Context,
		cfg *tenant.IssuingConfig,
		ex *exchange.Exchange,
		vendorOffers []*offer.Offer,
		knownHashes []string,
	) (*IngestResult, error)
}

// Config holds configuration options and dependencies for Service.
type Config struct {
	ExchangeStore exchange.Store
	OfferStore    offer.Store
	Vendor        vendorClient
	Validator     offerValidator
	Challenges    challengeIssuer
	Metrics       metrics.Metrics
}

// Service resolves the offers a holder is shown for an exchange.
type Service struct {
	exchanges  exchange.Store
	offers     offer.Store
	vendor     vendorClient
	validator  offerValidator
	challenges challengeIssuer
	metrics    metrics.Metrics
	now        func() time.Time
}

// Request for the offers of an exchange.
type Request struct {
	ExchangeID string
	Types      []string
	// OfferHashes are content hashes of offers the holder already has.
	OfferHashes     []string
	ProtocolVersion int
}

// Result of an offers request.
type Result struct {
	Offers    []*offer.Offer
	Challenge string
	// Waiting is true when the vendor is still preparing offers.
	Waiting bool
}

func NewService(config *Config) *Service {
	return &Service{
		exchanges:  config.ExchangeStore,
		offers:     config.OfferStore,
		vendor:     config.Vendor,
		validator:  config.Validator,
		challenges: config.Challenges,
		metrics:    config.Metrics,
		now:        time.Now,
	}
}

// IngestResult is the outcome of validating and deduplicating a batch of vendor offers.
type IngestResult struct {
	Offers   []*offer.Offer
	Statuses map[string]string
	Hashes   []string
	Invalid  bool
}

// RequestOffers returns the pending offers of the exchange, asking the vendor for more
// when the tenant configuration requires it, and records the outcome on the exchange.
func (s *Service) RequestOffers(ctx context.Context, cfg *tenant.IssuingConfig, req *Request) (*Result, error) {
	ex, err := s.exchanges.Get(ctx, cfg.TenantID, req.ExchangeID)
	if err != nil {
		if errors.Is(err, resterr.ErrDataNotFound) {
			return nil, resterr.NewCustomError(resterr.DoesntExist, fmt.Errorf("exchange %s", req.ExchangeID))
		}

		return nil, resterr.NewSystemError(resterr.ExchangeStoreComponent, "get", err)
	}

	if ex.VendorUserID == "" {
		return nil, resterr.NewCustomError(resterr.InvalidStateTransition,
			fmt.Errorf("exchange %s has no identified holder", ex.ID))
	}

	events := []exchange.State{exchange.StateOffersRequested}

	var (
		challenge         string
		challengeIssuedAt int64
	)

	if req.ProtocolVersion >= ProofProtocolVersion {
		challenge, challengeIssuedAt, err = s.challenges.IssueChallenge()
		if err != nil {
			return nil, s.fail(ctx, ex, resterr.NewSystemError(resterr.OfferIngestionSvcComponent,
				"issue-challenge", err), append(events, exchange.StateUnexpectedError)...)
		}
	}

	prepared, err := s.findPrepared(ctx, cfg, ex, req)
	if err != nil {
		return nil, s.fail(ctx, ex, resterr.NewSystemError(resterr.OfferStoreComponent, "find-pending", err),
			append(events, exchange.StateUnexpectedError)...)
	}

	var (
		waiting  bool
		ingested = &IngestResult{}
	)

	if s.vendorCallRequired(cfg, ex) {
		reply, vendorErr := s.callVendor(ctx, cfg, ex, req)
		if vendorErr != nil {
			if errors.Is(vendorErr, vendor.ErrOfferIDUndefined) {
				return nil, s.fail(ctx, ex, resterr.NewCustomError(resterr.OfferIDUndefined, vendorErr),
					append(events, exchange.StateOfferIDUndefinedError, exchange.StateUnexpectedError)...)
			}

			return nil, s.fail(ctx, ex, resterr.NewCustomError(resterr.UpstreamUnavailable, vendorErr),
				append(events, exchange.StateUnexpectedError)...)
		}

		if reply.Waiting {
			waiting = true
			events = append(events, exchange.StateOffersWaitingOnVendor)
		} else {
			known := append(append([]string(nil), ex.OfferHashes...), hashesOf(prepared)...)

			ingested, err = s.Ingest(ctx, cfg, ex, reply.Offers, known)
			if err != nil {
				return nil, s.fail(ctx, ex, err, append(events, exchange.StateUnexpectedError)...)
			}

			if ingested.Invalid {
				events = append(events, exchange.StateOfferValidationError)
			}
		}
	}

	offers := append(prepared, ingested.Offers...) //nolint:gocritic

	switch {
	case len(offers) > 0:
		events = append(events, exchange.StateOffersSent)
	case !waiting:
		events = append(events, exchange.StateNoOffersReceived)
	}

	update := &exchange.OffersUpdate{
		Events:              s.events(events...),
		OfferIDs:            lo.Map(offers, func(o *offer.Offer, _ int) string { return o.ID }),
		OfferHashes:         hashesOf(offers),
		VendorOfferStatuses: ingested.Statuses,
		Challenge:           challenge,
		ChallengeIssuedAt:   challengeIssuedAt,
	}

	if _, err = s.exchanges.RecordOffers(ctx, ex.ID, update); err != nil {
		return nil, resterr.NewSystemError(resterr.ExchangeStoreComponent, "record-offers", err)
	}

	result := &Result{Challenge: challenge, Waiting: waiting}

	result.Offers, err = s.annotate(ctx, cfg.TenantID, offers)
	if err != nil {
		return nil, resterr.NewSystemError(resterr.OfferStoreComponent, "find-related", err)
	}

	logger.Info("offers resolved", log.WithTenantID(cfg.TenantID), log.WithExchangeID(ex.ID),
		log.WithCount(len(result.Offers)))

	return result, nil
}

// Ingest validates, hashes and deduplicates vendor offers against the known content
// hashes and stores the accepted ones for the exchange. Rejected offers are reported
// in the statuses keyed by the vendor offer id.
func (s *Service) Ingest(
	ctx context.Context,
	cfg *tenant.IssuingConfig,
	ex *exchange.Exchange,
	vendorOffers []*offer.Offer,
	knownHashes []string,
) (*IngestResult, error) {
	res := &IngestResult{Statuses: map[string]string{}}
	seen := lo.SliceToMap(knownHashes, func(h string) (string, struct{}) { return h, struct{}{} })
	now := s.now().UTC()

	for _, o := range vendorOffers {
		if o.OfferID == "" {
			return nil, resterr.NewCustomError(resterr.OfferIDUndefined, vendor.ErrOfferIDUndefined)
		}

		if o.CredentialSubject == nil {
			o.CredentialSubject = map[string]interface{}{}
		}

		if _, ok := o.CredentialSubject[offer.VendorUserIDField]; !ok && ex.VendorUserID != "" {
			o.CredentialSubject[offer.VendorUserIDField] = ex.VendorUserID
		}

		if o.Issuer.ID == "" {
			o.Issuer.ID = cfg.TenantDID
		}

		if err := s.validator.Validate(ctx, o); err != nil {
			if !offervalidator.IsInvalidOffer(err) {
				return nil, resterr.NewCustomError(resterr.UpstreamUnavailable, err)
			}

			res.Statuses[o.OfferID] = err.Error()
			res.Invalid = true
			s.metrics.OfferIngested(metrics.OutcomeInvalid)

			logger.Debug("vendor offer is invalid", log.WithExchangeID(ex.ID), log.WithOfferID(o.OfferID),
				log.WithError(err))

			continue
		}

		hash, err := offer.ComputeContentHash(o)
		if err != nil {
			return nil, resterr.NewSystemError(resterr.OfferIngestionSvcComponent, "content-hash", err)
		}

		if _, ok := seen[hash.Value]; ok {
			res.Statuses[o.OfferID] = StatusDuplicate
			s.metrics.OfferIngested(metrics.OutcomeDuplicate)

			continue
		}

		seen[hash.Value] = struct{}{}

		linkCode, commitment, err := offer.NewLinkCode()
		if err != nil {
			return nil, resterr.NewSystemError(resterr.OfferIngestionSvcComponent, "link-code", err)
		}

		o.ID = uuid.NewString()
		o.TenantID = cfg.TenantID
		o.ExchangeID = ex.ID
		o.ContentHash = hash
		o.Hash = hash.Value
		o.LinkCode = linkCode
		o.LinkCodeCommitment = commitment
		o.CreatedAt = now
		o.UpdatedAt = now

		res.Offers = append(res.Offers, o)
		res.Hashes = append(res.Hashes, hash.Value)
		res.Statuses[o.OfferID] = StatusOK
		s.metrics.OfferIngested(metrics.OutcomeOK)
	}

	if len(res.Offers) > 0 {
		if err := s.offers.Create(ctx, res.Offers...); err != nil {
			return nil, resterr.NewSystemError(resterr.OfferStoreComponent, "create", err)
		}
	}

	return res, nil
}

func (s *Service) findPrepared(
	ctx context.Context,
	cfg *tenant.IssuingConfig,
	ex *exchange.Exchange,
	req *Request,
) ([]*offer.Offer, error) {
	filter := &offer.PendingFilter{
		TenantID:      cfg.TenantID,
		ExchangeID:    ex.ID,
		Types:         req.Types,
		ExcludeHashes: req.OfferHashes,
	}

	if cfg.OfferMode.UsesPreloaded() {
		filter.VendorUserID = ex.VendorUserID
	}

	return s.offers.FindPending(ctx, filter)
}

// vendorCallRequired is false once the vendor accepted or delivered offers asynchronously.
func (s *Service) vendorCallRequired(cfg *tenant.IssuingConfig, ex *exchange.Exchange) bool {
	return cfg.OfferMode.UsesWebhook() && cfg.Webhook.URL != "" &&
		!ex.HasState(exchange.StateOffersWaitingOnVendor, exchange.StateOffersReceived)
}

func (s *Service) callVendor(
	ctx context.Context,
	cfg *tenant.IssuingConfig,
	ex *exchange.Exchange,
	req *Request,
) (*vendor.OffersReply, error) {
	st := time.Now()

	defer func() {
		s.metrics.VendorOffersTime(time.Since(st))
	}()

	return s.vendor.GenerateOffers(ctx, &cfg.Webhook, &vendor.GenerateOffersRequest{
		ExchangeID:   ex.ID,
		TenantDID:    cfg.TenantDID,
		VendorUserID: ex.VendorUserID,
		Types:        req.Types,
	})
}

// annotate returns copies of the offers whose references to earlier credentials carry
// the referenced types, and the link code when the referenced credential was revoked.
func (s *Service) annotate(ctx context.Context, tenantID string, offers []*offer.Offer) ([]*offer.Offer, error) {
	refIDs := lo.Uniq(lo.FlatMap(offers, func(o *offer.Offer, _ int) []string {
		return append(resourceIDs(o.Replaces), resourceIDs(o.RelatedResource)...)
	}))

	if len(refIDs) == 0 {
		return offers, nil
	}

	refs, err := s.offers.FindByCredentialIDs(ctx, tenantID, refIDs)
	if err != nil {
		return nil, err
	}

	byID := lo.KeyBy(refs, func(o *offer.Offer) string { return o.DID })

	return lo.Map(offers, func(o *offer.Offer, _ int) *offer.Offer {
		cp := *o
		cp.Replaces = annotateResources(o.Replaces, byID)
		cp.RelatedResource = annotateResources(o.RelatedResource, byID)

		return &cp
	}), nil
}

func annotateResources(resources []offer.RelatedResource, byID map[string]*offer.Offer) []offer.RelatedResource {
	if resources == nil {
		return nil
	}

	return lo.Map(resources, func(r offer.RelatedResource, _ int) offer.RelatedResource {
		ref, ok := byID[r.ID]
		if !ok {
			return r
		}

		r.Hint = append([]string(nil), ref.Type...)

		if ref.RevokedAt != nil && ref.LinkCodeCommitment != nil {
			r.LinkCode = ref.LinkCode
		}

		return r
	})
}

// fail records the error on the exchange and returns it.
func (s *Service) fail(ctx context.Context, ex *exchange.Exchange, err error, states ...exchange.State) error {
	msg, _, _ := resterr.GetErrorDetails(err)

	if _, failErr := s.exchanges.Fail(ctx, ex.ID, msg, s.events(states...)...); failErr != nil {
		logger.Error("failed to record exchange error", log.WithExchangeID(ex.ID), log.WithError(failErr))
	}

	logger.Warn("offers request failed", log.WithExchangeID(ex.ID), log.WithError(err))

	return err
}

func (s *Service) events(states ...exchange.State) []exchange.Event {
	now := s.now().UTC()

	return lo.Map(states, func(st exchange.State, _ int) exchange.Event {
		return exchange.Event{State: st, Timestamp: now}
	})
}

func hashesOf(offers []*offer.Offer) []string {
	return lo.FilterMap(offers, func(o *offer.Offer, _ int) (string, bool) {
		if o.ContentHash == nil {
			return "", false
		}

		return o.ContentHash.Value, true
	})
}

func resourceIDs(resources []offer.RelatedResource) []string {
	return lo.FilterMap(resources, func(r offer.RelatedResource, _ int) (string, bool) {
		return r.ID, r.ID != ""
	})
}
