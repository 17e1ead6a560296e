/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package memstore

import (
	"context"
	"sync"

	"github.com/trustbloc/credential-agent/pkg/service/credentialstatus"
)

var _ credentialstatus.AllocationStore = (*AllocationStore)(nil)

type allocationList struct {
	listID int64
	free   []int
}

// AllocationStore keeps ledger list allocations in memory.
type AllocationStore struct {
	mu    sync.Mutex
	lists map[string][]*allocationList
}

func NewAllocationStore() *AllocationStore {
	return &AllocationStore{lists: map[string][]*allocationList{}}
}

func (s *AllocationStore) TakeIndex(
	_ context.Context,
	tenantID string,
	kind credentialstatus.ListKind,
) (*credentialstatus.Allocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.lists[allocationKey(tenantID, kind)] {
		if len(l.free) == 0 {
			continue
		}

		index := l.free[0]
		l.free = l.free[1:]

		return &credentialstatus.Allocation{ListID: l.listID, Index: index}, nil
	}

	return nil, credentialstatus.ErrNoFreeIndex
}

func (s *AllocationStore) CreateList(
	_ context.Context,
	tenantID string,
	kind credentialstatus.ListKind,
	listID int64,
	freeIndexes []int,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := allocationKey(tenantID, kind)

	s.lists[key] = append(s.lists[key], &allocationList{
		listID: listID,
		free:   append([]int(nil), freeIndexes...),
	})

	return nil
}

func allocationKey(tenantID string, kind credentialstatus.ListKind) string {
	return tenantID + "/" + string(kind)
}
