/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package allocationstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trustbloc/credential-agent/pkg/service/credentialstatus"
	"github.com/trustbloc/credential-agent/pkg/storage/mongodb"
)

const (
	collectionName = "allocations"
)

var _ credentialstatus.AllocationStore = (*Store)(nil)

type mongoDocument struct {
	ID        string    `bson:"_id"`
	TenantID  string    `bson:"tenantId"`
	Kind      string    `bson:"kind"`
	ListID    int64     `bson:"listId"`
	Free      []int     `bson:"free"`
	CreatedAt time.Time `bson:"createdAt"`
}

// Store keeps the free indexes of ledger lists in MongoDB. An index is taken by popping the head of
// the free array of the oldest non-exhausted list, so two callers never receive the same index.
type Store struct {
	mongoClient *mongodb.Client
	now         func() time.Time
}

// New creates Store.
func New(ctx context.Context, mongoClient *mongodb.Client) (*Store, error) {
	s := &Store{
		mongoClient: mongoClient,
		now:         time.Now,
	}

	if err := s.migrate(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	return s.mongoClient.EnsureIndexes(ctx, collectionName, mongo.IndexModel{
		Keys: bson.D{
			{Key: "tenantId", Value: 1},
			{Key: "kind", Value: 1},
			{Key: "createdAt", Value: 1},
		},
	})
}

func (s *Store) TakeIndex(
	ctx context.Context,
	tenantID string,
	kind credentialstatus.ListKind,
) (*credentialstatus.Allocation, error) {
	filter := bson.D{
		{Key: "tenantId", Value: tenantID},
		{Key: "kind", Value: string(kind)},
		{Key: "free.0", Value: bson.M{"$exists": true}},
	}

	opts := options.FindOneAndUpdate().
		SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "listId", Value: 1}}).
		SetProjection(bson.M{"listId": 1, "free": bson.M{"$slice": 1}}).
		SetReturnDocument(options.Before)

	doc := &mongoDocument{}

	err := s.collection().FindOneAndUpdate(ctx, filter, bson.M{"$pop": bson.M{"free": -1}}, opts).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, credentialstatus.ErrNoFreeIndex
	}

	if err != nil {
		return nil, fmt.Errorf("take index: %w", err)
	}

	if len(doc.Free) == 0 {
		return nil, fmt.Errorf("take index: list %d returned no free index", doc.ListID)
	}

	return &credentialstatus.Allocation{ListID: doc.ListID, Index: doc.Free[0]}, nil
}

func (s *Store) CreateList(
	ctx context.Context,
	tenantID string,
	kind credentialstatus.ListKind,
	listID int64,
	freeIndexes []int,
) error {
	free := freeIndexes
	if free == nil {
		free = []int{}
	}

	_, err := s.collection().InsertOne(ctx, &mongoDocument{
		ID:        fmt.Sprintf("%s/%s/%d", tenantID, kind, listID),
		TenantID:  tenantID,
		Kind:      string(kind),
		ListID:    listID,
		Free:      free,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("insert list: %w", err)
	}

	return nil
}

func (s *Store) collection() *mongo.Collection {
	return s.mongoClient.Collection(collectionName)
}
