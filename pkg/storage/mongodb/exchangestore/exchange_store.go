/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package exchangestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trustbloc/credential-agent/pkg/exchange"
	"github.com/trustbloc/credential-agent/pkg/restapi/resterr"
	"github.com/trustbloc/credential-agent/pkg/storage/mongodb"
	"github.com/trustbloc/credential-agent/pkg/storage/mongodb/internal"
)

const (
	collectionName = "exchanges"
)

var _ exchange.Store = (*Store)(nil)

type eventDocument struct {
	State     string    `bson:"state"`
	Timestamp time.Time `bson:"timestamp"`
}

type pushDelegateDocument struct {
	PushURL   string `bson:"pushUrl"`
	PushToken string `bson:"pushToken"`
}

type mongoDocument struct {
	ID                  string                `bson:"_id"`
	TenantID            string                `bson:"tenantId"`
	DisclosureID        string                `bson:"disclosureId,omitempty"`
	Type                string                `bson:"type"`
	Events              []eventDocument       `bson:"events"`
	OfferIDs            []string              `bson:"offerIds"`
	FinalizedOfferIDs   []string              `bson:"finalizedOfferIds"`
	OfferHashes         []string              `bson:"offerHashes"`
	VendorUserID        string                `bson:"vendorUserId,omitempty"`
	VendorOfferStatuses map[string]string     `bson:"vendorOfferStatuses,omitempty"`
	Challenge           string                `bson:"challenge,omitempty"`
	ChallengeIssuedAt   int64                 `bson:"challengeIssuedAt,omitempty"`
	Err                 string                `bson:"err,omitempty"`
	PushDelegate        *pushDelegateDocument `bson:"pushDelegate,omitempty"`
	CreatedAt           time.Time             `bson:"createdAt"`
	UpdatedAt           time.Time             `bson:"updatedAt"`
}

// Store persists exchanges in MongoDB. Every update is a single findAndModify on one document.
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
		Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "vendorUserId", Value: 1}},
	})
}

func (s *Store) Create(ctx context.Context, ex *exchange.Exchange) error {
	if _, err := s.collection().InsertOne(ctx, toDocument(ex)); err != nil {
		return fmt.Errorf("insert exchange: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, tenantID, id string) (*exchange.Exchange, error) {
	doc := &mongoDocument{}

	err := s.collection().FindOne(ctx, bson.D{{Key: "_id", Value: id}, {Key: "tenantId", Value: tenantID}}).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, resterr.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("find exchange: %w", err)
	}

	return fromDocument(doc), nil
}

func (s *Store) AppendEvents(ctx context.Context, id string, events ...exchange.Event) (*exchange.Exchange, error) {
	return s.update(ctx, id, bson.M{
		"$push": bson.M{"events": pushEach(events)},
	})
}

func (s *Store) Fail(
	ctx context.Context,
	id string,
	message string,
	events ...exchange.Event,
) (*exchange.Exchange, error) {
	return s.update(ctx, id, bson.M{
		"$push": bson.M{"events": pushEach(events)},
		"$set":  bson.M{"err": message},
	})
}

func (s *Store) Identify(
	ctx context.Context,
	id string,
	vendorUserID string,
	events ...exchange.Event,
) (*exchange.Exchange, error) {
	return s.update(ctx, id, bson.M{
		"$push": bson.M{"events": pushEach(events)},
		"$set":  bson.M{"vendorUserId": vendorUserID},
	})
}

func (s *Store) RecordOffers(
	ctx context.Context,
	id string,
	u *exchange.OffersUpdate,
) (*exchange.Exchange, error) {
	set := bson.M{}

	for k, v := range u.VendorOfferStatuses {
		set["vendorOfferStatuses."+internal.EscapeKey(k)] = v
	}

	if u.Challenge != "" {
		set["challenge"] = u.Challenge
		set["challengeIssuedAt"] = u.ChallengeIssuedAt
	}

	return s.update(ctx, id, bson.M{
		"$push": bson.M{"events": pushEach(u.Events)},
		"$addToSet": bson.M{
			"offerIds":    bson.M{"$each": nonNil(u.OfferIDs)},
			"offerHashes": bson.M{"$each": nonNil(u.OfferHashes)},
		},
		"$set": set,
	})
}

func (s *Store) AddFinalizedOffer(ctx context.Context, id string, offerID string) (*exchange.Exchange, error) {
	return s.update(ctx, id, bson.M{
		"$push": bson.M{"finalizedOfferIds": offerID},
	})
}

// update applies the update to the exchange and returns the updated document.
func (s *Store) update(ctx context.Context, id string, update bson.M) (*exchange.Exchange, error) {
	set, _ := update["$set"].(bson.M)
	if set == nil {
		set = bson.M{}
	}

	set["updatedAt"] = s.now().UTC()
	update["$set"] = set

	doc := &mongoDocument{}

	err := s.collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, resterr.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("update exchange: %w", err)
	}

	return fromDocument(doc), nil
}

func (s *Store) collection() *mongo.Collection {
	return s.mongoClient.Collection(collectionName)
}

func pushEach(events []exchange.Event) bson.M {
	return bson.M{"$each": toEventDocuments(events)}
}

func toEventDocuments(events []exchange.Event) []eventDocument {
	return lo.Map(events, func(e exchange.Event, _ int) eventDocument {
		return eventDocument{State: string(e.State), Timestamp: e.Timestamp.UTC()}
	})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

func toDocument(ex *exchange.Exchange) *mongoDocument {
	doc := &mongoDocument{
		ID:                ex.ID,
		TenantID:          ex.TenantID,
		DisclosureID:      ex.DisclosureID,
		Type:              string(ex.Type),
		Events:            toEventDocuments(ex.Events),
		OfferIDs:          nonNil(ex.OfferIDs),
		FinalizedOfferIDs: nonNil(ex.FinalizedOfferIDs),
		OfferHashes:       nonNil(ex.OfferHashes),
		VendorUserID:      ex.VendorUserID,
		Challenge:         ex.Challenge,
		ChallengeIssuedAt: ex.ChallengeIssuedAt,
		Err:               ex.Err,
		CreatedAt:         ex.CreatedAt.UTC(),
		UpdatedAt:         ex.UpdatedAt.UTC(),
	}

	if len(ex.VendorOfferStatuses) > 0 {
		doc.VendorOfferStatuses = lo.MapKeys(ex.VendorOfferStatuses, func(_ string, k string) string {
			return internal.EscapeKey(k)
		})
	}

	if ex.PushDelegate != nil {
		doc.PushDelegate = &pushDelegateDocument{
			PushURL:   ex.PushDelegate.PushURL,
			PushToken: ex.PushDelegate.PushToken,
		}
	}

	return doc
}

func fromDocument(doc *mongoDocument) *exchange.Exchange {
	ex := &exchange.Exchange{
		ID:                doc.ID,
		TenantID:          doc.TenantID,
		DisclosureID:      doc.DisclosureID,
		Type:              exchange.Type(doc.Type),
		Events:            fromEventDocuments(doc.Events),
		OfferIDs:          emptyToNil(doc.OfferIDs),
		FinalizedOfferIDs: emptyToNil(doc.FinalizedOfferIDs),
		OfferHashes:       emptyToNil(doc.OfferHashes),
		VendorUserID:      doc.VendorUserID,
		Challenge:         doc.Challenge,
		ChallengeIssuedAt: doc.ChallengeIssuedAt,
		Err:               doc.Err,
		CreatedAt:         doc.CreatedAt.UTC(),
		UpdatedAt:         doc.UpdatedAt.UTC(),
	}

	if len(doc.VendorOfferStatuses) > 0 {
		ex.VendorOfferStatuses = lo.MapKeys(doc.VendorOfferStatuses, func(_ string, k string) string {
			return internal.UnescapeKey(k)
		})
	}

	if doc.PushDelegate != nil {
		ex.PushDelegate = &exchange.PushDelegate{
			PushURL:   doc.PushDelegate.PushURL,
			PushToken: doc.PushDelegate.PushToken,
		}
	}

	return ex
}

func fromEventDocuments(events []eventDocument) []exchange.Event {
	return lo.Map(events, func(e eventDocument, _ int) exchange.Event {
		return exchange.Event{State: exchange.State(e.State), Timestamp: e.Timestamp.UTC()}
	})
}

func emptyToNil(s []string) []string {
	if len(s) == 0 {
		return nil
	}

	return s
}
