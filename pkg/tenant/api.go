/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/samber/lo"

	vcskms "github.com/trustbloc/credential-agent/pkg/kms"
)

var ErrKeyNotFound = errors.New("key not found")

// KeyPurpose is the usage intent a tenant key is registered for.
type KeyPurpose string

const (
	// KeyPurposeExchanges signs access tokens.
	KeyPurposeExchanges KeyPurpose = "EXCHANGES"
	// KeyPurposeIssuingMetadata signs issued credentials.
	KeyPurposeIssuingMetadata KeyPurpose = "ISSUING_METADATA"
	// KeyPurposeDLTTransactions signs ledger transactions.
	KeyPurposeDLTTransactions KeyPurpose = "DLT_TRANSACTIONS"
)

// Valid returns true for the known purposes.
func (p KeyPurpose) Valid() bool {
	switch p {
	case KeyPurposeExchanges, KeyPurposeIssuingMetadata, KeyPurposeDLTTransactions:
		return true
	default:
		return false
	}
}

// OfferMode selects where offers come from.
type OfferMode string

const (
	OfferModePreloaded OfferMode = "preloaded"
	OfferModeWebhook   OfferMode = "webhook"
	OfferModeAll       OfferMode = "all"
)

// UsesPreloaded returns true if previously prepared offers are looked up.
func (m OfferMode) UsesPreloaded() bool {
	return m == OfferModePreloaded || m == OfferModeAll
}

// UsesWebhook returns true if the vendor is called for offers.
func (m OfferMode) UsesWebhook() bool {
	return m == OfferModeWebhook || m == OfferModeAll
}

// AuthType of tenant webhooks.
type AuthType string

const (
	AuthTypeNone              AuthType = ""
	AuthTypeBearer            AuthType = "bearer"
	AuthTypeClientCredentials AuthType = "oauth2"
)

// WebhookAuth holds the credentials used to call the tenant back office.
type WebhookAuth struct {
	Type         AuthType `json:"type,omitempty"`
	BearerToken  string   `json:"bearerToken,omitempty"`
	ClientID     string   `json:"clientId,omitempty"`
	ClientSecret string   `json:"clientSecret,omitempty"`
	TokenURL     string   `json:"tokenUrl,omitempty"`
	Scopes       []string `json:"scopes,omitempty"`
}

// WebhookConfig locates the tenant back office.
type WebhookConfig struct {
	URL  string      `json:"url"`
	Auth WebhookAuth `json:"auth"`
}

// KeyConfig is a tenant key registered for one or more purposes.
type KeyConfig struct {
	vcskms.KeyConfig
	Purposes []KeyPurpose `json:"purposes"`
}

// Disclosure configures an issuing flow of the tenant.
type Disclosure struct {
	ID        string    `json:"id"`
	OfferMode OfferMode `json:"offerMode,omitempty"`
}

// Tenant is an issuer hosted by the agent.
type Tenant struct {
	ID               string         `json:"id"`
	DID              string         `json:"did"`
	Name             string         `json:"name,omitempty"`
	Keys             []*KeyConfig   `json:"keys"`
	Webhook          *WebhookConfig `json:"webhook,omitempty"`
	DefaultOfferMode OfferMode      `json:"defaultOfferMode,omitempty"`
	Disclosures      []Disclosure   `json:"disclosures,omitempty"`
	// ScrubPII reduces credential subjects to the holder stub once an offer is finalized.
	ScrubPII bool `json:"scrubPii,omitempty"`
}

// KeyRing maps key purposes to keys.
type KeyRing map[KeyPurpose]vcskms.KeyConfig

// Get returns the key for the purpose.
func (r KeyRing) Get(purpose KeyPurpose) (*vcskms.KeyConfig, error) {
	k, ok := r[purpose]
	if !ok {
		return nil, fmt.Errorf("%w: purpose %s", ErrKeyNotFound, purpose)
	}

	return &k, nil
}

// KeyRing builds the purpose map of the tenant keys. Unknown purposes are ignored.
func (t *Tenant) KeyRing() KeyRing {
	ring := KeyRing{}

	for _, k := range t.Keys {
		for _, p := range k.Purposes {
			if p.Valid() {
				ring[p] = k.KeyConfig
			}
		}
	}

	return ring
}

// IssuingConfig is the tenant configuration in effect for one request.
type IssuingConfig struct {
	TenantID  string
	TenantDID string
	OfferMode OfferMode
	Webhook   WebhookConfig
	ScrubPII  bool
	Keys      KeyRing
}

// ResolveIssuingConfig combines the tenant settings with those of the disclosure.
func (t *Tenant) ResolveIssuingConfig(disclosureID string) (IssuingConfig, error) {
	cfg := IssuingConfig{
		TenantID:  t.ID,
		TenantDID: t.DID,
		OfferMode: t.DefaultOfferMode,
		ScrubPII:  t.ScrubPII,
		Keys:      t.KeyRing(),
	}

	if t.Webhook != nil {
		if err := copier.CopyWithOption(&cfg.Webhook, t.Webhook, copier.Option{DeepCopy: true}); err != nil {
			return IssuingConfig{}, fmt.Errorf("copy webhook config: %w", err)
		}
	}

	if d, ok := lo.Find(t.Disclosures, func(d Disclosure) bool { return d.ID == disclosureID }); ok &&
		d.OfferMode != "" {
		cfg.OfferMode = d.OfferMode
	}

	if cfg.OfferMode == "" {
		if cfg.Webhook.URL != "" {
			cfg.OfferMode = OfferModeAll
		} else {
			cfg.OfferMode = OfferModePreloaded
		}
	}

	return cfg, nil
}

// Registry resolves tenants.
type Registry interface {
	GetByDID(ctx context.Context, did string) (*Tenant, error)
}
