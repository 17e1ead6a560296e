/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination exchangeledger_service_mocks_test.go -self_package mocks -package exchangeledger_test -source=exchangeledger_service.go -mock_names tokenMinter=MockTokenMinter

package exchangeledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trustbloc/credential-agent/internal/pkg/log"
	"github.com/trustbloc/credential-agent/pkg/exchange"
	"github.com/trustbloc/credential-agent/pkg/restapi/resterr"
	"github.com/trustbloc/credential-agent/pkg/tenant"
)

var logger = log.New("exchange-ledger")

type tokenMinter interface {
	Mint(ctx context.Context, t *tenant.Tenant, exchangeID, subject string) (string, error)
}

// Config holds configuration options and dependencies for Service.
type Config struct {
	Store       exchange.Store
	TokenMinter tokenMinter
}

// Service owns the exchange event log. State transitions of other components go
// through the same store seam.
type Service struct {
	store       exchange.Store
	tokenMinter tokenMinter
	now         func() time.Time
}

// CreateRequest describes a new exchange.
type CreateRequest struct {
	Type         exchange.Type          `json:"type"`
	DisclosureID string                 `json:"disclosureId"`
	PushDelegate *exchange.PushDelegate `json:"pushDelegate,omitempty"`
}

// IdentifyResult is the identified exchange and the access token minted for its holder.
type IdentifyResult struct {
	Exchange *exchange.Exchange
	Token    string
}

func NewService(config *Config) *Service {
	return &Service{
		store:       config.Store,
		tokenMinter: config.TokenMinter,
		now:         time.Now,
	}
}

// Create starts a new exchange in state NEW.
func (s *Service) Create(ctx context.Context, t *tenant.Tenant, req *CreateRequest) (*exchange.Exchange, error) {
	exType := req.Type
	if exType == "" {
		exType = exchange.TypeIssuing
	}

	if exType != exchange.TypeIssuing && exType != exchange.TypeDisclosure {
		return nil, resterr.NewValidationError(resterr.InvalidValue, "type",
			fmt.Errorf("unsupported exchange type %q", req.Type))
	}

	if req.PushDelegate != nil && req.PushDelegate.PushURL == "" {
		return nil, resterr.NewValidationError(resterr.InvalidValue, "pushDelegate.pushUrl",
			errors.New("push url is required"))
	}

	now := s.now().UTC()

	ex := &exchange.Exchange{
		ID:           uuid.NewString(),
		TenantID:     t.ID,
		DisclosureID: req.DisclosureID,
		Type:         exType,
		Events:       []exchange.Event{{State: exchange.StateNew, Timestamp: now}},
		PushDelegate: req.PushDelegate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.Create(ctx, ex); err != nil {
		return nil, resterr.NewSystemError(resterr.ExchangeStoreComponent, "create", err)
	}

	logger.Debug("exchange created", log.WithTenantID(t.ID), log.WithExchangeID(ex.ID))

	return ex, nil
}

// Get returns the exchange of the tenant.
func (s *Service) Get(ctx context.Context, tenantID, id string) (*exchange.Exchange, error) {
	ex, err := s.store.Get(ctx, tenantID, id)
	if err != nil {
		return nil, mapStoreError(err, "get")
	}

	return ex, nil
}

// Identify binds the holder to the exchange and mints the holder access token.
func (s *Service) Identify(
	ctx context.Context,
	t *tenant.Tenant,
	exchangeID string,
	vendorUserID string,
) (*IdentifyResult, error) {
	if vendorUserID == "" {
		return nil, resterr.NewValidationError(resterr.InvalidValue, "vendorUserId",
			errors.New("vendor user id is required"))
	}

	ex, err := s.Get(ctx, t.ID, exchangeID)
	if err != nil {
		return nil, err
	}

	if ex.VendorUserID != "" && ex.VendorUserID != vendorUserID {
		return nil, resterr.NewCustomError(resterr.InvalidStateTransition,
			fmt.Errorf("exchange %s is already bound to another holder", exchangeID))
	}

	token, err := s.tokenMinter.Mint(ctx, t, exchangeID, vendorUserID)
	if err != nil {
		if errors.Is(err, tenant.ErrKeyNotFound) {
			return nil, resterr.NewCustomError(resterr.KeyNotFound, err)
		}

		return nil, resterr.NewSystemError(resterr.ExchangeSvcComponent, "mint-access-token", err)
	}

	ex, err = s.store.Identify(ctx, exchangeID, vendorUserID, s.event(exchange.StateIdentified))
	if err != nil {
		return nil, mapStoreError(err, "identify")
	}

	logger.Info("holder identified", log.WithTenantID(t.ID), log.WithExchangeID(exchangeID))

	return &IdentifyResult{Exchange: ex, Token: token}, nil
}

// AppendEvent records one state transition.
func (s *Service) AppendEvent(
	ctx context.Context,
	exchangeID string,
	state exchange.State,
	timestamp time.Time,
) (*exchange.Exchange, error) {
	ex, err := s.store.AppendEvents(ctx, exchangeID, exchange.Event{State: state, Timestamp: timestamp.UTC()})
	if err != nil {
		return nil, mapStoreError(err, "append-event")
	}

	return ex, nil
}

// Progress returns the holder-visible projection of the exchange.
func (s *Service) Progress(ctx context.Context, tenantID, exchangeID string) (*exchange.Exchange, exchange.Progress, error) {
	ex, err := s.Get(ctx, tenantID, exchangeID)
	if err != nil {
		return nil, exchange.Progress{}, err
	}

	return ex, exchange.ProjectProgress(ex), nil
}

func (s *Service) event(state exchange.State) exchange.Event {
	return exchange.Event{State: state, Timestamp: s.now().UTC()}
}

func mapStoreError(err error, operation string) error {
	if errors.Is(err, resterr.ErrDataNotFound) {
		return resterr.NewCustomError(resterr.DoesntExist, fmt.Errorf("exchange: %w", err))
	}

	return resterr.NewSystemError(resterr.ExchangeStoreComponent, operation, err)
}
