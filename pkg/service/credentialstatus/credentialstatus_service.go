/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination credentialstatus_service_mocks_test.go -self_package mocks -package credentialstatus_test -source=credentialstatus_service.go -mock_names ledgerClient=MockLedgerClient,keyProvider=MockKeyProvider,jwtSigner=MockJWTSigner

package credentialstatus

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/trustbloc/credential-agent/internal/pkg/log"
	"github.com/trustbloc/credential-agent/pkg/client/ledger"
	"github.com/trustbloc/credential-agent/pkg/kms"
	"github.com/trustbloc/credential-agent/pkg/offer"
	"github.com/trustbloc/credential-agent/pkg/tenant"
)

var logger = log.New("credential-status")

const (
	// RevocationStatusType is the credentialStatus type of ledger revocation lists.
	RevocationStatusType = "LedgerRevocationList2021"

	defaultListSize = 10000
)

type ledgerClient interface {
	LookupPrimary(ctx context.Context, did string) (string, error)
	CreateCredentialMetadataList(ctx context.Context, req *ledger.MetadataListRequest) error
	AddCredentialMetadataEntry(ctx context.Context, req *ledger.MetadataEntryRequest) error
	AddRevocationListSigned(ctx context.Context, req *ledger.RevocationListRequest) error
}

type keyProvider interface {
	GetKeyHandle(ctx context.Context, cfg *kms.KeyConfig) (kms.KeyHandle, error)
}

type jwtSigner interface {
	SignJWT(ctx context.Context, key kms.KeyHandle, claims interface{}) (string, error)
}

// ServiceInterface reserves and anchors the ledger entries of credentials.
type ServiceInterface interface {
	Allocate(ctx context.Context, cfg *tenant.IssuingConfig) (*StatusEntry, error)
	Anchor(
		ctx context.Context,
		cfg *tenant.IssuingConfig,
		entry *StatusEntry,
		credentialType string,
		contentHash string,
		publicKey string,
	) error
}

// Config defines configuration for Service.
type Config struct {
	Store       AllocationStore
	Ledger      ledgerClient
	KeyRegistry keyProvider
	Signer      jwtSigner
	// ListSize is the number of entries of a newly created list.
	ListSize int
	// RevocationRegistry is the ledger address of the revocation registry.
	RevocationRegistry string
}

// Service reserves ledger list entries for credentials and anchors their metadata.
type Service struct {
	store              AllocationStore
	ledger             ledgerClient
	keyRegistry        keyProvider
	signer             jwtSigner
	listSize           int
	revocationRegistry string
	now                func() time.Time
}

func New(config *Config) *Service {
	listSize := config.ListSize
	if listSize <= 0 {
		listSize = defaultListSize
	}

	return &Service{
		store:              config.Store,
		ledger:             config.Ledger,
		keyRegistry:        config.KeyRegistry,
		signer:             config.Signer,
		listSize:           listSize,
		revocationRegistry: config.RevocationRegistry,
		now:                time.Now,
	}
}

// Allocate reserves a revocation entry and a metadata entry for a credential of the tenant.
// Lists created on the way are registered on the ledger before their first index is used.
func (s *Service) Allocate(ctx context.Context, cfg *tenant.IssuingConfig) (*StatusEntry, error) {
	revocation, err := s.allocate(ctx, cfg, ListKindRevocation)
	if err != nil {
		return nil, err
	}

	metadata, err := s.allocate(ctx, cfg, ListKindMetadata)
	if err != nil {
		return nil, err
	}

	primary, err := s.ledger.LookupPrimary(ctx, cfg.TenantDID)
	if err != nil {
		return nil, err
	}

	listURI := fmt.Sprintf("ethereum:%s/getRevokedStatus?address=%s&listId=%d",
		s.revocationRegistry, primary, revocation.ListID)

	return &StatusEntry{
		Revocation:   *revocation,
		Metadata:     *metadata,
		Primary:      primary,
		CredentialID: fmt.Sprintf("did:ledger:v1:%s:%d:%d", primary, metadata.ListID, metadata.Index),
		CredentialStatus: &offer.CredentialStatus{
			ID:                   fmt.Sprintf("%s&index=%d", listURI, revocation.Index),
			Type:                 RevocationStatusType,
			StatusListIndex:      revocation.Index,
			StatusListID:         revocation.ListID,
			StatusListCredential: listURI,
		},
	}, nil
}

// Anchor writes the metadata entry of an issued credential to the ledger.
func (s *Service) Anchor(
	ctx context.Context,
	cfg *tenant.IssuingConfig,
	entry *StatusEntry,
	credentialType string,
	contentHash string,
	publicKey string,
) error {
	req := &ledger.MetadataEntryRequest{
		IssuerDID:      cfg.TenantDID,
		ListID:         entry.Metadata.ListID,
		Index:          entry.Metadata.Index,
		CredentialType: credentialType,
		ContentHash:    contentHash,
		PublicKey:      publicKey,
	}

	tx, err := s.signTransaction(ctx, cfg, "addCredentialMetadataEntry", req.ListID, req.Index)
	if err != nil {
		return err
	}

	req.SignedTransaction = tx

	return s.ledger.AddCredentialMetadataEntry(ctx, req)
}

func (s *Service) allocate(ctx context.Context, cfg *tenant.IssuingConfig, kind ListKind) (*Allocation, error) {
	a, err := s.store.TakeIndex(ctx, cfg.TenantID, kind)
	if err == nil {
		return a, nil
	}

	if !errors.Is(err, ErrNoFreeIndex) {
		return nil, fmt.Errorf("take %s index: %w", kind, err)
	}

	listID := rand.Int63() //nolint:gosec
	indexes := rand.Perm(s.listSize) //nolint:gosec

	logger.Info("creating ledger list", log.WithTenantID(cfg.TenantID),
		log.WithState(string(kind)), log.WithCount(s.listSize))

	if err = s.createLedgerList(ctx, cfg, kind, listID); err != nil {
		return nil, err
	}

	if err = s.store.CreateList(ctx, cfg.TenantID, kind, listID, indexes[1:]); err != nil {
		return nil, fmt.Errorf("store %s list: %w", kind, err)
	}

	return &Allocation{ListID: listID, Index: indexes[0], IsNewList: true}, nil
}

func (s *Service) createLedgerList(ctx context.Context, cfg *tenant.IssuingConfig, kind ListKind, listID int64) error {
	switch kind {
	case ListKindRevocation:
		tx, err := s.signTransaction(ctx, cfg, "addRevocationListSigned", listID, 0)
		if err != nil {
			return err
		}

		return s.ledger.AddRevocationListSigned(ctx, &ledger.RevocationListRequest{
			IssuerDID:         cfg.TenantDID,
			ListID:            listID,
			SignedTransaction: tx,
		})
	case ListKindMetadata:
		tx, err := s.signTransaction(ctx, cfg, "createCredentialMetadataList", listID, 0)
		if err != nil {
			return err
		}

		return s.ledger.CreateCredentialMetadataList(ctx, &ledger.MetadataListRequest{
			IssuerDID:         cfg.TenantDID,
			ListID:            listID,
			SignedTransaction: tx,
		})
	default:
		return fmt.Errorf("unsupported list kind %q", kind)
	}
}

type transactionClaims struct {
	Issuer    string `json:"iss"`
	Operation string `json:"op"`
	ListID    int64  `json:"listId"`
	Index     int    `json:"index"`
	IssuedAt  int64  `json:"iat"`
}

// signTransaction authorizes a ledger write with the tenant DLT_TRANSACTIONS key.
func (s *Service) signTransaction(
	ctx context.Context,
	cfg *tenant.IssuingConfig,
	operation string,
	listID int64,
	index int,
) (string, error) {
	keyCfg, err := cfg.Keys.Get(tenant.KeyPurposeDLTTransactions)
	if err != nil {
		return "", err
	}

	key, err := s.keyRegistry.GetKeyHandle(ctx, keyCfg)
	if err != nil {
		return "", fmt.Errorf("get ledger transaction key: %w", err)
	}

	tx, err := s.signer.SignJWT(ctx, key, &transactionClaims{
		Issuer:    cfg.TenantDID,
		Operation: operation,
		ListID:    listID,
		Index:     index,
		IssuedAt:  s.now().Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("sign ledger transaction: %w", err)
	}

	return tx, nil
}
