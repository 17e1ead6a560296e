/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination schemacache_mocks_test.go -self_package mocks -package schemacache_test -source=schemacache.go -mock_names s3Client=MockS3Client

package schemacache

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/trustbloc/credential-agent/pkg/client/schema"
)

const (
	contentType = "application/schema+json"
	keyPrefix   = "schemas/"
)

type s3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Store keeps JSON schema documents in an S3 bucket. Objects carry an Expires header
// and are treated as missing once it has passed.
type Store struct {
	client s3Client
	bucket string
	ttl    time.Duration
	now    func() time.Time
}

func New(client s3Client, bucket string, ttl time.Duration) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.resolveS3Key(key)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, schema.ErrCacheMiss
		}

		return nil, fmt.Errorf("s3 get schema: %w", err)
	}

	defer out.Body.Close()

	if out.Expires != nil && s.now().After(*out.Expires) {
		return nil, schema.ErrCacheMiss
	}

	b, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read schema object: %w", err)
	}

	return b, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	input := &s3.PutObjectInput{
		Body:        bytes.NewReader(value),
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.resolveS3Key(key)),
		ContentType: aws.String(contentType),
	}

	if s.ttl > 0 {
		input.Expires = aws.Time(s.now().Add(s.ttl))
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("s3 put schema: %w", err)
	}

	return nil
}

func (s *Store) resolveS3Key(key string) string {
	return keyPrefix + url.PathEscape(key)
}
