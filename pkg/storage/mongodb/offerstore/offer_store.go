/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package offerstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trustbloc/credential-agent/pkg/offer"
	"github.com/trustbloc/credential-agent/pkg/restapi/resterr"
	"github.com/trustbloc/credential-agent/pkg/storage/mongodb"
)

const (
	collectionName = "offers"
)

var _ offer.Store = (*Store)(nil)

type holderRef struct {
	ID           string `bson:"_id"`
	VendorUserID string `bson:"vendorUserId"`
}

// Store persists offers in MongoDB.
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
	return s.mongoClient.EnsureIndexes(ctx, collectionName,
		mongo.IndexModel{
			Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "exchangeId", Value: 1}},
		},
		mongo.IndexModel{
			Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "vendorUserId", Value: 1}},
		},
		mongo.IndexModel{
			Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "did", Value: 1}},
		},
	)
}

func (s *Store) Create(ctx context.Context, offers ...*offer.Offer) error {
	if len(offers) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(offers))

	for _, o := range offers {
		doc, err := toDocument(o)
		if err != nil {
			return err
		}

		docs = append(docs, doc)
	}

	if _, err := s.collection().InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert offers: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, tenantID, id string) (*offer.Offer, error) {
	doc := &mongoDocument{}

	err := s.collection().FindOne(ctx, bson.D{{Key: "_id", Value: id}, {Key: "tenantId", Value: tenantID}}).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, resterr.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("find offer: %w", err)
	}

	return fromDocument(doc), nil
}

func (s *Store) FindPending(ctx context.Context, f *offer.PendingFilter) ([]*offer.Offer, error) {
	var owners bson.A

	if f.ExchangeID != "" {
		owners = append(owners, bson.M{"exchangeId": f.ExchangeID})
	}

	if f.VendorUserID != "" {
		owners = append(owners, bson.M{"exchangeId": "", "vendorUserId": f.VendorUserID})
	}

	if len(owners) == 0 {
		return nil, nil
	}

	filter := bson.M{
		"tenantId":    f.TenantID,
		"consentedAt": nil,
		"rejectedAt":  nil,
		"$or":         owners,
	}

	if len(f.Types) > 0 {
		filter["type"] = bson.M{"$in": f.Types}
	}

	if len(f.ExcludeHashes) > 0 {
		filter["contentHash.value"] = bson.M{"$nin": f.ExcludeHashes}
	}

	return s.find(ctx, filter)
}

func (s *Store) FindByCredentialIDs(ctx context.Context, tenantID string, credentialIDs []string) ([]*offer.Offer, error) {
	if len(credentialIDs) == 0 {
		return nil, nil
	}

	return s.find(ctx, bson.M{
		"tenantId": tenantID,
		"did":      bson.M{"$in": credentialIDs},
	})
}

// ClaimIssuing sets the issuing claim of a pending offer that holds no unexpired claim.
func (s *Store) ClaimIssuing(
	ctx context.Context,
	tenantID, id string,
	claim *offer.IssuingClaim,
	now time.Time,
) (*offer.Offer, error) {
	return s.update(ctx, tenantID, id, claim.Token, now, bson.M{
		"$set": bson.M{
			"issuingClaim": toClaimDocument(claim),
			"updatedAt":    s.now().UTC(),
		},
	})
}

func (s *Store) ReleaseIssuing(ctx context.Context, tenantID, id string, token string) error {
	res, err := s.collection().UpdateOne(ctx,
		bson.M{"_id": id, "tenantId": tenantID, "issuingClaim.token": token},
		bson.M{
			"$unset": bson.M{"issuingClaim": ""},
			"$set":   bson.M{"updatedAt": s.now().UTC()},
		})
	if err != nil {
		return fmt.Errorf("release issuing claim: %w", err)
	}

	if res.MatchedCount == 0 {
		if _, err = s.Get(ctx, tenantID, id); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) Consent(ctx context.Context, tenantID, id string, c *offer.Consent) (*offer.Offer, error) {
	consentedAt := c.ConsentedAt.UTC()

	set := bson.M{
		"consentedAt":      consentedAt,
		"issued":           consentedAt,
		"digestSRI":        c.DigestSRI,
		"did":              c.DID,
		"signedCredential": c.SignedCredential,
	}

	if c.CredentialStatus != nil {
		set["credentialStatus"] = toStatusDocument(c.CredentialStatus)
	}

	return s.finalize(ctx, tenantID, id, c.ClaimToken, c.ConsentedAt, set, c.ScrubPII)
}

func (s *Store) Reject(
	ctx context.Context,
	tenantID, id string,
	rejectedAt time.Time,
	scrubPII bool,
) (*offer.Offer, error) {
	return s.finalize(ctx, tenantID, id, "", rejectedAt, bson.M{"rejectedAt": rejectedAt.UTC()}, scrubPII)
}

// CleanPII replaces the credential subject of every matching offer with the holder stub.
func (s *Store) CleanPII(ctx context.Context, tenantID string, f *offer.CleanPIIFilter) (int64, error) {
	filter := bson.M{"tenantId": tenantID}

	if f != nil {
		if len(f.VendorUserIDs) > 0 {
			filter["vendorUserId"] = bson.M{"$in": f.VendorUserIDs}
		}

		if len(f.ExchangeIDs) > 0 {
			filter["exchangeId"] = bson.M{"$in": f.ExchangeIDs}
		}

		if len(f.OfferIDs) > 0 {
			filter["_id"] = bson.M{"$in": f.OfferIDs}
		}
	}

	cursor, err := s.collection().Find(ctx, filter,
		options.Find().SetProjection(bson.M{"_id": 1, "vendorUserId": 1}))
	if err != nil {
		return 0, fmt.Errorf("find offers to clean: %w", err)
	}

	defer func() {
		_ = cursor.Close(ctx)
	}()

	var matched []holderRef

	if err = cursor.All(ctx, &matched); err != nil {
		return 0, fmt.Errorf("decode offers to clean: %w", err)
	}

	if len(matched) == 0 {
		return 0, nil
	}

	now := s.now().UTC()

	models := lo.Map(matched, func(m holderRef, _ int) mongo.WriteModel {
		return mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": m.ID}).
			SetUpdate(bson.M{"$set": bson.M{
				"credentialSubject": stub(m.VendorUserID),
				"updatedAt":         now,
			}})
	})

	if _, err = s.collection().BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false)); err != nil {
		return 0, fmt.Errorf("clean offers: %w", err)
	}

	return int64(len(matched)), nil
}

// finalize records the outcome of a pending offer and releases its issuing claim.
func (s *Store) finalize(
	ctx context.Context,
	tenantID, id string,
	token string,
	now time.Time,
	set bson.M,
	scrubPII bool,
) (*offer.Offer, error) {
	if scrubPII {
		current, err := s.Get(ctx, tenantID, id)
		if err != nil {
			return nil, err
		}

		set["credentialSubject"] = stub(current.VendorUserID())
	}

	set["updatedAt"] = s.now().UTC()

	return s.update(ctx, tenantID, id, token, now, bson.M{
		"$set":   set,
		"$unset": bson.M{"issuingClaim": ""},
	})
}

// update applies the change to a pending offer unless an unexpired claim is held under another token.
func (s *Store) update(
	ctx context.Context,
	tenantID, id string,
	token string,
	now time.Time,
	change bson.M,
) (*offer.Offer, error) {
	unclaimed := bson.A{
		bson.M{"issuingClaim": nil},
		bson.M{"issuingClaim.expiresAt": bson.M{"$lte": now.UTC()}},
	}

	if token != "" {
		unclaimed = append(unclaimed, bson.M{"issuingClaim.token": token})
	}

	filter := bson.M{
		"_id":         id,
		"tenantId":    tenantID,
		"consentedAt": nil,
		"rejectedAt":  nil,
		"$or":         unclaimed,
	}

	doc := &mongoDocument{}

	err := s.collection().FindOneAndUpdate(ctx, filter, change,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, s.conflict(ctx, tenantID, id)
	}

	if err != nil {
		return nil, fmt.Errorf("update offer: %w", err)
	}

	return fromDocument(doc), nil
}

// conflict explains why a conditional update matched nothing.
func (s *Store) conflict(ctx context.Context, tenantID, id string) error {
	current, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return err
	}

	if !current.IsPending() {
		return offer.ErrNotPending
	}

	return offer.ErrIssuingClaimed
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]*offer.Offer, error) {
	cursor, err := s.collection().Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find offers: %w", err)
	}

	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []*mongoDocument

	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode offers: %w", err)
	}

	return lo.Map(docs, func(doc *mongoDocument, _ int) *offer.Offer {
		return fromDocument(doc)
	}), nil
}

func (s *Store) collection() *mongo.Collection {
	return s.mongoClient.Collection(collectionName)
}

func stub(vendorUserID string) bson.M {
	return bson.M{offer.VendorUserIDField: vendorUserID}
}
