/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination notification_service_mocks_test.go -self_package mocks -package notification_test -source=notification_service.go -mock_names vendorClient=MockVendorClient,tenantRegistry=MockTenantRegistry

package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/trustbloc/credential-agent/internal/pkg/log"
	"github.com/trustbloc/credential-agent/pkg/event/spi"
	"github.com/trustbloc/credential-agent/pkg/observability/metrics"
	"github.com/trustbloc/credential-agent/pkg/tenant"
)

var logger = log.New("notification")

const (
	defaultMaxRetries      = 5
	defaultInitialInterval = 500 * time.Millisecond
	defaultMaxInterval     = 10 * time.Second
)

type vendorClient interface {
	SendIssuedCredentials(ctx context.Context, webhook *tenant.WebhookConfig, payload interface{}) error
	Push(ctx context.Context, pushURL, pushToken string, payload interface{}) error
}

type tenantRegistry interface {
	GetByDID(ctx context.Context, did string) (*tenant.Tenant, error)
}

// Config holds configuration options and dependencies for Service.
type Config struct {
	Vendor  vendorClient
	Tenants tenantRegistry
	Metrics metrics.Metrics
	// MaxRetries bounds the delivery attempts after the first one.
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// Service delivers issuing events to tenant webhooks and holder push delegates.
type Service struct {
	vendor          vendorClient
	tenants         tenantRegistry
	metrics         metrics.Metrics
	maxRetries      uint64
	initialInterval time.Duration
	maxInterval     time.Duration
}

// PushMessage is sent to the push delegate of the holder.
type PushMessage struct {
	ID         string   `json:"id"`
	Type       string   `json:"type"`
	ExchangeID string   `json:"exchangeId"`
	OfferIDs   []string `json:"offerIds"`
}

func NewService(config *Config) *Service {
	s := &Service{
		vendor:          config.Vendor,
		tenants:         config.Tenants,
		metrics:         config.Metrics,
		maxRetries:      config.MaxRetries,
		initialInterval: config.InitialInterval,
		maxInterval:     config.MaxInterval,
	}

	if s.maxRetries == 0 {
		s.maxRetries = defaultMaxRetries
	}

	if s.initialInterval == 0 {
		s.initialInterval = defaultInitialInterval
	}

	if s.maxInterval == 0 {
		s.maxInterval = defaultMaxInterval
	}

	return s
}

// HandleEvent delivers the event. It is registered as the handler of the issuing topic.
func (s *Service) HandleEvent(ctx context.Context, e *spi.Event) error {
	var err error

	switch e.Type {
	case spi.CredentialsIssued:
		err = s.credentialsIssued(ctx, e)
	case spi.OffersReady:
		err = s.offersReady(ctx, e)
	default:
		logger.Debug("ignoring event", log.WithEvent(e))

		return nil
	}

	if err != nil {
		s.metrics.NotificationFailed(string(e.Type))

		return fmt.Errorf("deliver %s event %s: %w", e.Type, e.ID, err)
	}

	return nil
}

func (s *Service) credentialsIssued(ctx context.Context, e *spi.Event) error {
	payload := &spi.CredentialsIssuedPayload{}

	if err := e.DecodeData(payload); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	t, err := s.tenants.GetByDID(ctx, payload.TenantDID)
	if err != nil {
		return fmt.Errorf("get tenant: %w", err)
	}

	cfg, err := t.ResolveIssuingConfig("")
	if err != nil {
		return err
	}

	if cfg.Webhook.URL == "" {
		logger.Debug("tenant has no webhook", log.WithTenantID(t.ID), log.WithExchangeID(payload.ExchangeID))

		return nil
	}

	return s.deliver(ctx, e, func() error {
		return s.vendor.SendIssuedCredentials(ctx, &cfg.Webhook, payload)
	})
}

func (s *Service) offersReady(ctx context.Context, e *spi.Event) error {
	payload := &spi.OffersReadyPayload{}

	if err := e.DecodeData(payload); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	if payload.PushURL == "" {
		return nil
	}

	msg := &PushMessage{
		ID:         e.ID,
		Type:       string(e.Type),
		ExchangeID: payload.ExchangeID,
		OfferIDs:   payload.OfferIDs,
	}

	return s.deliver(ctx, e, func() error {
		return s.vendor.Push(ctx, payload.PushURL, payload.PushToken, msg)
	})
}

// deliver retries the operation with exponential backoff until it succeeds or the
// retries are exhausted.
func (s *Service) deliver(ctx context.Context, e *spi.Event, op func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.initialInterval
	b.MaxInterval = s.maxInterval
	b.MaxElapsedTime = 0

	attempt := 0

	return backoff.Retry(func() error {
		attempt++

		err := op()
		if err != nil {
			logger.Warn("notification delivery failed", log.WithEvent(e),
				log.WithCount(attempt), log.WithError(err))
		}

		return err
	}, backoff.WithContext(backoff.WithMaxRetries(b, s.maxRetries), ctx))
}
