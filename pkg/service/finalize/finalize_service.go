/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination finalize_service_mocks_test.go -self_package mocks -package finalize_test -source=finalize_service.go -mock_names proofVerifier=MockProofVerifier,statusService=MockStatusService,keyProvider=MockKeyProvider,jwtSigner=MockJWTSigner,eventPublisher=MockEventPublisher

package finalize

import (
	"context"
	"crypto/sha512"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-jose/go-jose/v3"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/trustbloc/credential-agent/internal/pkg/log"
	"github.com/trustbloc/credential-agent/pkg/client/ledger"
	"github.com/trustbloc/credential-agent/pkg/event/spi"
	"github.com/trustbloc/credential-agent/pkg/exchange"
	"github.com/trustbloc/credential-agent/pkg/kms"
	"github.com/trustbloc/credential-agent/pkg/observability/metrics"
	"github.com/trustbloc/credential-agent/pkg/offer"
	"github.com/trustbloc/credential-agent/pkg/pop"
	"github.com/trustbloc/credential-agent/pkg/restapi/resterr"
	"github.com/trustbloc/credential-agent/pkg/service/credentialstatus"
	"github.com/trustbloc/credential-agent/pkg/tenant"
)

const (
	// ProofProtocolVersion is the first protocol version requiring proof of possession.
	ProofProtocolVersion = 2

	credentialsContext = "https://www.w3.org/2018/credentials/v1"
	vcType             = "VerifiableCredential"
	digestSRIPrefix    = "sha384-"

	defaultClaimTTL       = 5 * time.Minute
	defaultClaimWait      = 30 * time.Second
	defaultPublishTimeout = time.Second
	claimPollInterval     = 50 * time.Millisecond
)

var logger = log.New("finalize")

type proofVerifier interface {
	Verify(ex *exchange.Exchange, proof *pop.Proof) (string, error)
}

type statusService interface {
	Allocate(ctx context.Context, cfg *tenant.IssuingConfig) (*credentialstatus.StatusEntry, error)
	Anchor(
		ctx context.Context,
		cfg *tenant.IssuingConfig,
		entry *credentialstatus.StatusEntry,
		credentialType string,
		contentHash string,
		publicKey string,
	) error
}

type keyProvider interface {
	GetKeyHandle(ctx context.Context, cfg *kms.KeyConfig) (kms.KeyHandle, error)
}

type jwtSigner interface {
	SignJWT(ctx context.Context, key kms.KeyHandle, claims interface{}) (string, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, eventType spi.EventType, tenantID, exchangeID string, payload interface{}) error
}

// ServiceInterface finalizes the holder decisions of an exchange.
type ServiceInterface interface {
	FinalizeOffers(ctx context.Context, cfg *tenant.IssuingConfig, req *Request) ([]string, error)
}

// Config holds configuration options and dependencies for Service.
type Config struct {
	ExchangeStore  exchange.Store
	OfferStore     offer.Store
	ProofVerifier  proofVerifier
	Status         statusService
	KeyRegistry    keyProvider
	Signer         jwtSigner
	EventPublisher eventPublisher
	Metrics        metrics.Metrics
	// ClaimTTL bounds how long an approval may hold an offer while issuing it.
	ClaimTTL time.Duration
	// ClaimWait is how long an approval waits for a concurrent approval of the same offer.
	ClaimWait time.Duration
	// PublishTimeout bounds the issued credentials notification.
	PublishTimeout time.Duration
}

// Request holds the holder decisions.
type Request struct {
	ExchangeID       string
	ApprovedOfferIDs []string
	RejectedOfferIDs []string
	Proof            *pop.Proof
	ProtocolVersion  int
}

// Service turns approved offers into signed, ledger-anchored credentials and records rejections.
type Service struct {
	exchanges   exchange.Store
	offers      offer.Store
	verifier    proofVerifier
	status      statusService
	keyRegistry keyProvider
	signer      jwtSigner
	publisher   eventPublisher
	metrics     metrics.Metrics
	now         func() time.Time

	claimTTL       time.Duration
	claimWait      time.Duration
	publishTimeout time.Duration
}

func NewService(config *Config) *Service {
	return &Service{
		exchanges:   config.ExchangeStore,
		offers:      config.OfferStore,
		verifier:    config.ProofVerifier,
		status:      config.Status,
		keyRegistry: config.KeyRegistry,
		signer:      config.Signer,
		publisher:   config.EventPublisher,
		metrics:     config.Metrics,
		now:         time.Now,

		claimTTL:       lo.Ternary(config.ClaimTTL > 0, config.ClaimTTL, defaultClaimTTL),
		claimWait:      lo.Ternary(config.ClaimWait > 0, config.ClaimWait, defaultClaimWait),
		publishTimeout: lo.Ternary(config.PublishTimeout > 0, config.PublishTimeout, defaultPublishTimeout),
	}
}

type credentialClaims struct {
	Issuer    string                 `json:"iss"`
	Subject   string                 `json:"sub,omitempty"`
	ID        string                 `json:"jti"`
	IssuedAt  int64                  `json:"iat"`
	NotBefore int64                  `json:"nbf"`
	Expiry    int64                  `json:"exp,omitempty"`
	VC        map[string]interface{} `json:"vc"`
}

// outcome collects what a finalize call committed.
type outcome struct {
	credentials []string
	issued      []*offer.Offer
	rejected    []string
}

// FinalizeOffers records the rejections and issues the approved offers in the order given.
// It returns the signed credentials of the approved offers. An approval that fails stops the
// call; offers committed before the failure stay committed.
func (s *Service) FinalizeOffers(ctx context.Context, cfg *tenant.IssuingConfig, req *Request) ([]string, error) {
	ex, err := s.exchanges.Get(ctx, cfg.TenantID, req.ExchangeID)
	if err != nil {
		if errors.Is(err, resterr.ErrDataNotFound) {
			return nil, resterr.NewCustomError(resterr.DoesntExist, fmt.Errorf("exchange %s", req.ExchangeID))
		}

		return nil, resterr.NewSystemError(resterr.ExchangeStoreComponent, "get", err)
	}

	if err = s.checkPreconditions(ctx, cfg, ex, req); err != nil {
		return nil, err
	}

	ex, err = s.exchanges.AppendEvents(ctx, ex.ID, s.event(exchange.StateClaimingInProgress))
	if err != nil {
		return nil, resterr.NewSystemError(resterr.ExchangeStoreComponent, "append-events", err)
	}

	var subjectID string

	// an exchange holding a challenge was opened by a holder that proves possession.
	if req.ProtocolVersion >= ProofProtocolVersion || ex.Challenge != "" {
		subjectID, err = s.verifier.Verify(ex, req.Proof)
		if err != nil {
			logger.Debug("proof of possession rejected", log.WithExchangeID(ex.ID), log.WithError(err))

			return nil, err
		}
	}

	out := &outcome{}

	for _, id := range req.RejectedOfferIDs {
		if err = s.reject(ctx, cfg, ex, id, out); err != nil {
			return nil, s.fail(ctx, ex, err)
		}
	}

	for _, id := range req.ApprovedOfferIDs {
		if err = s.approve(ctx, cfg, ex, id, subjectID, out); err != nil {
			if errors.Is(err, offer.ErrIssuingClaimed) {
				// another call is still issuing the offer; the exchange is not at fault.
				return nil, err
			}

			return nil, s.fail(ctx, ex, err)
		}
	}

	if err = s.completeIfFinalized(ctx, ex.ID, cfg.TenantID); err != nil {
		return nil, err
	}

	s.notify(ctx, cfg, ex, out)

	logger.Info("offers finalized", log.WithTenantID(cfg.TenantID), log.WithExchangeID(ex.ID),
		log.WithCount(len(out.issued)))

	return lo.Ternary(out.credentials == nil, []string{}, out.credentials), nil
}

// checkPreconditions validates the whole request before anything is written.
func (s *Service) checkPreconditions(
	ctx context.Context,
	cfg *tenant.IssuingConfig,
	ex *exchange.Exchange,
	req *Request,
) error {
	if both := lo.Intersect(req.ApprovedOfferIDs, req.RejectedOfferIDs); len(both) > 0 {
		return resterr.NewValidationError(resterr.InvalidValue, "offerIds",
			fmt.Errorf("offer %s is both approved and rejected", both[0]))
	}

	for _, id := range append(append([]string(nil), req.ApprovedOfferIDs...), req.RejectedOfferIDs...) {
		if !ex.ContainsOffer(id) {
			return resterr.NewCustomError(resterr.OfferNotFound,
				fmt.Errorf("offer %s is not part of exchange %s", id, ex.ID))
		}

		if ex.HasState(exchange.StateComplete) && !ex.IsFinalized(id) {
			return resterr.NewCustomError(resterr.InvalidStateTransition,
				fmt.Errorf("exchange %s is complete", ex.ID))
		}
	}

	for _, id := range req.ApprovedOfferIDs {
		o, err := s.offers.Get(ctx, cfg.TenantID, id)
		if err != nil {
			return s.offerError(id, err)
		}

		if o.RejectedAt != nil {
			return resterr.NewCustomError(resterr.AlreadyRejected, fmt.Errorf("offer %s was rejected", id))
		}
	}

	return nil
}

func (s *Service) reject(
	ctx context.Context,
	cfg *tenant.IssuingConfig,
	ex *exchange.Exchange,
	id string,
	out *outcome,
) error {
	if _, err := s.offers.Reject(ctx, cfg.TenantID, id, s.now(), cfg.ScrubPII); err != nil {
		if errors.Is(err, offer.ErrNotPending) {
			// consented offers stay issued; rejected ones were already recorded.
			return nil
		}

		if errors.Is(err, offer.ErrIssuingClaimed) {
			return resterr.NewCustomError(resterr.InvalidStateTransition,
				fmt.Errorf("offer %s is being issued", id))
		}

		return s.offerError(id, err)
	}

	if _, err := s.exchanges.AddFinalizedOffer(ctx, ex.ID, id); err != nil {
		return resterr.NewSystemError(resterr.ExchangeStoreComponent, "add-finalized-offer", err)
	}

	out.rejected = append(out.rejected, id)
	s.metrics.OfferRejected()

	return nil
}

func (s *Service) approve(
	ctx context.Context,
	cfg *tenant.IssuingConfig,
	ex *exchange.Exchange,
	id string,
	subjectID string,
	out *outcome,
) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = claimPollInterval
	b.MaxInterval = time.Second
	b.MaxElapsedTime = s.claimWait

	var (
		issued *offer.Offer
		stored *offer.Offer
	)

	err := backoff.Retry(func() error {
		var err error

		issued, stored, err = s.claimAndIssue(ctx, cfg, id, subjectID)

		return err
	}, backoff.WithContext(b, ctx))
	if err != nil {
		if errors.Is(err, offer.ErrIssuingClaimed) || errors.Is(err, offer.ErrNotPending) {
			return resterr.NewCustomError(resterr.InvalidStateTransition,
				fmt.Errorf("offer %s is being issued: %w", id, offer.ErrIssuingClaimed))
		}

		return err
	}

	if stored != nil {
		out.credentials = append(out.credentials, stored.SignedCredential)

		return nil
	}

	if _, err = s.exchanges.AddFinalizedOffer(ctx, ex.ID, id); err != nil {
		return resterr.NewSystemError(resterr.ExchangeStoreComponent, "add-finalized-offer", err)
	}

	out.credentials = append(out.credentials, issued.SignedCredential)
	out.issued = append(out.issued, issued)
	s.metrics.CredentialIssued()

	return nil
}

// claimAndIssue issues a pending offer under an issuing claim. An offer consented before is
// returned as stored. Claim conflicts are returned as is so the caller polls again; every
// other error is permanent.
func (s *Service) claimAndIssue(
	ctx context.Context,
	cfg *tenant.IssuingConfig,
	id string,
	subjectID string,
) (*offer.Offer, *offer.Offer, error) {
	o, err := s.offers.Get(ctx, cfg.TenantID, id)
	if err != nil {
		return nil, nil, backoff.Permanent(s.offerError(id, err))
	}

	switch {
	case o.ConsentedAt != nil:
		return nil, o, nil
	case o.RejectedAt != nil:
		return nil, nil, backoff.Permanent(
			resterr.NewCustomError(resterr.AlreadyRejected, fmt.Errorf("offer %s was rejected", id)))
	}

	now := s.now()
	claim := &offer.IssuingClaim{Token: uuid.NewString(), ExpiresAt: now.Add(s.claimTTL)}

	o, err = s.offers.ClaimIssuing(ctx, cfg.TenantID, id, claim, now)
	if err != nil {
		if errors.Is(err, offer.ErrIssuingClaimed) || errors.Is(err, offer.ErrNotPending) {
			logger.Debug("offer is being issued concurrently", log.WithOfferID(id))

			return nil, nil, err
		}

		return nil, nil, backoff.Permanent(s.offerError(id, err))
	}

	issued, err := s.issue(ctx, cfg, o, subjectID, claim.Token)
	if err != nil {
		if errors.Is(err, offer.ErrIssuingClaimed) || errors.Is(err, offer.ErrNotPending) {
			return nil, nil, err
		}

		if relErr := s.offers.ReleaseIssuing(ctx, cfg.TenantID, id, claim.Token); relErr != nil {
			logger.Warn("failed to release issuing claim", log.WithOfferID(id), log.WithError(relErr))
		}

		return nil, nil, backoff.Permanent(err)
	}

	return issued, nil, nil
}

// issue signs the offer, anchors its metadata on the ledger and records the consent.
func (s *Service) issue(
	ctx context.Context,
	cfg *tenant.IssuingConfig,
	o *offer.Offer,
	subjectID string,
	claimToken string,
) (*offer.Offer, error) {
	keyCfg, err := cfg.Keys.Get(tenant.KeyPurposeIssuingMetadata)
	if err != nil {
		return nil, resterr.NewCustomError(resterr.KeyNotFound, err)
	}

	key, err := s.keyRegistry.GetKeyHandle(ctx, keyCfg)
	if err != nil {
		return nil, resterr.NewSystemError(resterr.KMSRegistryComponent, "get-key-handle", err)
	}

	entry, err := s.status.Allocate(ctx, cfg)
	if err != nil {
		return nil, ledgerError(resterr.CredentialStatusComponent, "allocate", err)
	}

	now := s.now().UTC()

	final := *o
	final.Issuer.ID = cfg.TenantDID
	final.CredentialStatus = entry.CredentialStatus
	final.DID = entry.CredentialID

	contentHash, err := offer.ComputeContentHash(&final)
	if err != nil {
		return nil, resterr.NewSystemError(resterr.FinalizeSvcComponent, "content-hash", err)
	}

	final.ContentHash = contentHash

	jwt, err := s.signer.SignJWT(ctx, key, buildClaims(&final, subjectID, now))
	if err != nil {
		return nil, resterr.NewSystemError(resterr.CredentialSignerComponent, "sign", err)
	}

	publicKey, err := publicJWK(key)
	if err != nil {
		return nil, resterr.NewSystemError(resterr.FinalizeSvcComponent, "public-key", err)
	}

	if err = s.status.Anchor(ctx, cfg, entry, primaryType(final.Type), contentHash.Value, publicKey); err != nil {
		return nil, ledgerError(resterr.LedgerClientComponent, "anchor", err)
	}

	consented, err := s.offers.Consent(ctx, cfg.TenantID, o.ID, &offer.Consent{
		ConsentedAt:      now,
		DigestSRI:        DigestSRI(jwt),
		DID:              entry.CredentialID,
		CredentialStatus: entry.CredentialStatus,
		SignedCredential: jwt,
		ScrubPII:         cfg.ScrubPII,
		ClaimToken:       claimToken,
	})
	if err != nil {
		if errors.Is(err, offer.ErrNotPending) || errors.Is(err, offer.ErrIssuingClaimed) {
			logger.Warn("issuing claim lost before consent", log.WithOfferID(o.ID), log.WithError(err))

			return nil, err
		}

		return nil, s.offerError(o.ID, err)
	}

	return consented, nil
}

func (s *Service) completeIfFinalized(ctx context.Context, exchangeID, tenantID string) error {
	ex, err := s.exchanges.Get(ctx, tenantID, exchangeID)
	if err != nil {
		return resterr.NewSystemError(resterr.ExchangeStoreComponent, "get", err)
	}

	if !ex.AllOffersFinalized() || ex.HasState(exchange.StateComplete) {
		return nil
	}

	if _, err = s.exchanges.AppendEvents(ctx, ex.ID, s.event(exchange.StateComplete)); err != nil {
		return resterr.NewSystemError(resterr.ExchangeStoreComponent, "append-events", err)
	}

	return nil
}

// notify publishes the issued credentials to the tenant. The publish is bounded by its own
// deadline so a congested bus never holds the holder's response. Failures are logged only.
func (s *Service) notify(ctx context.Context, cfg *tenant.IssuingConfig, ex *exchange.Exchange, out *outcome) {
	if len(out.issued) == 0 {
		return
	}

	payload := &spi.CredentialsIssuedPayload{
		TenantDID:        cfg.TenantDID,
		ExchangeID:       ex.ID,
		VendorUserID:     ex.VendorUserID,
		IssuedOfferIDs:   lo.Map(out.issued, func(o *offer.Offer, _ int) string { return o.ID }),
		RejectedOfferIDs: lo.Ternary(out.rejected == nil, []string{}, out.rejected),
		IssuedCredentials: lo.SliceToMap(out.issued, func(o *offer.Offer) (string, string) {
			return o.OfferID, o.DID
		}),
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()

	if err := s.publisher.Publish(publishCtx, spi.CredentialsIssued, cfg.TenantID, ex.ID, payload); err != nil {
		logger.Error("failed to publish issued credentials", log.WithExchangeID(ex.ID), log.WithError(err))
	}
}

// fail records the error on the exchange and returns it.
func (s *Service) fail(ctx context.Context, ex *exchange.Exchange, err error) error {
	msg, _, _ := resterr.GetErrorDetails(err)

	if _, failErr := s.exchanges.Fail(ctx, ex.ID, msg, s.event(exchange.StateUnexpectedError)); failErr != nil {
		logger.Error("failed to record exchange error", log.WithExchangeID(ex.ID), log.WithError(failErr))
	}

	logger.Warn("finalize failed", log.WithExchangeID(ex.ID), log.WithError(err))

	return err
}

func (s *Service) offerError(id string, err error) error {
	if errors.Is(err, resterr.ErrDataNotFound) {
		return resterr.NewCustomError(resterr.OfferNotFound, fmt.Errorf("offer %s", id))
	}

	return resterr.NewSystemError(resterr.OfferStoreComponent, "get", err)
}

func (s *Service) event(state exchange.State) exchange.Event {
	return exchange.Event{State: state, Timestamp: s.now().UTC()}
}

// ledgerError keeps the code reported by the ledger so the caller can act on it.
func ledgerError(component resterr.Component, operation string, err error) error {
	var ledgerErr *ledger.Error

	if errors.As(err, &ledgerErr) {
		code := resterr.UpstreamUnavailable
		if ledgerErr.StatusCode == http.StatusForbidden {
			code = resterr.IssuingNotPermitted
		}

		return resterr.NewUpstreamError(code, ledgerErr.Code, err)
	}

	if errors.Is(err, tenant.ErrKeyNotFound) {
		return resterr.NewCustomError(resterr.KeyNotFound, err)
	}

	return resterr.NewSystemError(component, operation, err)
}

// DigestSRI returns the subresource integrity digest of a signed credential.
func DigestSRI(jwt string) string {
	digest := sha512.Sum384([]byte(jwt))

	return digestSRIPrefix + base64.StdEncoding.EncodeToString(digest[:])
}

func buildClaims(o *offer.Offer, subjectID string, now time.Time) *credentialClaims {
	subject := lo.Assign(o.CredentialSubject)
	if subjectID != "" {
		subject["id"] = subjectID
	}

	vc := map[string]interface{}{
		"@context":          lo.Uniq(append([]string{credentialsContext}, o.Context...)),
		"id":                o.DID,
		"type":              lo.Uniq(append([]string{vcType}, o.Type...)),
		"issuer":            o.Issuer,
		"issued":            now.Format(time.RFC3339),
		"credentialSubject": subject,
		"credentialStatus":  o.CredentialStatus,
		"contentHash":       o.ContentHash,
	}

	if len(o.CredentialSchema) > 0 {
		vc["credentialSchema"] = o.CredentialSchema
	}

	if o.LinkCodeCommitment != nil {
		vc["linkCodeCommitment"] = o.LinkCodeCommitment
	}

	if len(o.Replaces) > 0 {
		vc["replaces"] = stripAnnotations(o.Replaces)
	}

	if len(o.RelatedResource) > 0 {
		vc["relatedResource"] = stripAnnotations(o.RelatedResource)
	}

	if len(o.LinkedCredentials) > 0 {
		vc["linkedCredentials"] = o.LinkedCredentials
	}

	claims := &credentialClaims{
		Issuer:    o.Issuer.ID,
		Subject:   subjectID,
		ID:        o.DID,
		IssuedAt:  now.Unix(),
		NotBefore: now.Unix(),
		VC:        vc,
	}

	if o.ValidFrom != nil {
		vc["validFrom"] = o.ValidFrom.UTC().Format(time.RFC3339)
		claims.NotBefore = o.ValidFrom.Unix()
	}

	switch {
	case o.ValidUntil != nil:
		vc["validUntil"] = o.ValidUntil.UTC().Format(time.RFC3339)
		claims.Expiry = o.ValidUntil.Unix()
	case o.ExpirationDate != nil:
		vc["expirationDate"] = o.ExpirationDate.UTC().Format(time.RFC3339)
		claims.Expiry = o.ExpirationDate.Unix()
	}

	return claims
}

func stripAnnotations(resources []offer.RelatedResource) []offer.RelatedResource {
	return lo.Map(resources, func(r offer.RelatedResource, _ int) offer.RelatedResource {
		return offer.RelatedResource{ID: r.ID, Type: r.Type}
	})
}

// primaryType is the most specific credential type.
func primaryType(types []string) string {
	specific := lo.Without(types, vcType)
	if len(specific) == 0 {
		return vcType
	}

	return specific[len(specific)-1]
}

func publicJWK(key kms.KeyHandle) (string, error) {
	jwk := jose.JSONWebKey{Key: key.Public(), KeyID: key.KID(), Algorithm: key.Algorithm()}

	b, err := jwk.MarshalJSON()
	if err != nil {
		return "", err
	}

	return string(b), nil
}
