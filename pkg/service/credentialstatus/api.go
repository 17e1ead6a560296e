/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credentialstatus

import (
	"context"
	"errors"

	"github.com/trustbloc/credential-agent/pkg/offer"
)

// ErrNoFreeIndex is returned by an AllocationStore when every list of the tenant is exhausted.
var ErrNoFreeIndex = errors.New("no free index in status lists")

// ListKind is the ledger registry a list belongs to.
type ListKind string

const (
	ListKindRevocation ListKind = "revocation"
	ListKindMetadata   ListKind = "metadata"
)

// Allocation is a reserved entry of a ledger list.
type Allocation struct {
	ListID int64 `json:"listId"`
	Index  int   `json:"index"`
	// IsNewList is true if the list was created for this allocation.
	IsNewList bool `json:"-"`
}

// AllocationStore hands out free list indexes. Both methods are atomic.
type AllocationStore interface {
	// TakeIndex removes and returns the next free index of a list of the tenant.
	// It returns ErrNoFreeIndex if every list of the tenant is exhausted.
	TakeIndex(ctx context.Context, tenantID string, kind ListKind) (*Allocation, error)
	// CreateList registers a list with the given free indexes.
	CreateList(ctx context.Context, tenantID string, kind ListKind, listID int64, freeIndexes []int) error
}

// StatusEntry is the ledger footprint reserved for one credential.
type StatusEntry struct {
	Revocation Allocation
	Metadata   Allocation
	// Primary is the ledger account of the issuer.
	Primary string
	// CredentialID is the identifier of the credential derived from its metadata entry.
	CredentialID     string
	CredentialStatus *offer.CredentialStatus
}
