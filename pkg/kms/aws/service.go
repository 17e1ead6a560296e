/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package aws

import (
	"context"
	"crypto"
	"crypto/ecdsa"
	"crypto/x509"
	"encoding/asn1"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/kms/types"
	"github.com/samber/lo"

	vcskms "github.com/trustbloc/credential-agent/pkg/kms"
)

type awsClient interface {
	Sign(ctx context.Context, params *kms.SignInput, optFns ...func(*kms.Options)) (*kms.SignOutput, error)
	GetPublicKey(ctx context.Context, params *kms.GetPublicKeyInput,
		optFns ...func(*kms.Options)) (*kms.GetPublicKeyOutput, error)
}

type metricsProvider interface {
	SignTime(value time.Duration)
}

type ecdsaSignature struct {
	R, S *big.Int
}

type algorithm struct {
	jws  string
	hash crypto.Hash
	size int
}

// nolint: gochecknoglobals
var signingAlgorithms = map[types.SigningAlgorithmSpec]algorithm{
	types.SigningAlgorithmSpecEcdsaSha256: {jws: vcskms.ES256, hash: crypto.SHA256, size: 32},
	types.SigningAlgorithmSpecEcdsaSha384: {jws: vcskms.ES384, hash: crypto.SHA384, size: 48},
}

// Service creates key handles backed by AWS KMS asymmetric keys.
type Service struct {
	client     awsClient
	metrics    metricsProvider
	algorithms []types.SigningAlgorithmSpec
}

type options struct {
	client     awsClient
	algorithms []types.SigningAlgorithmSpec
}

// Opt configures the Service.
type Opt func(o *options)

// WithAWSClient replaces the KMS client built from the aws config.
func WithAWSClient(client awsClient) Opt {
	return func(o *options) { o.client = client }
}

// WithSigningAlgorithms sets the order in which signing algorithms are picked when a key
// supports several of them. By default the first algorithm reported by KMS is used.
func WithSigningAlgorithms(specs ...types.SigningAlgorithmSpec) Opt {
	return func(o *options) { o.algorithms = specs }
}

// New returns a Service signing with the KMS of awsConfig.
func New(awsConfig *aws.Config, metrics metricsProvider, opts ...Opt) *Service {
	o := &options{}

	for _, fn := range opts {
		fn(o)
	}

	client := o.client
	if client == nil {
		client = kms.NewFromConfig(*awsConfig)
	}

	return &Service{
		client:     client,
		metrics:    metrics,
		algorithms: o.algorithms,
	}
}

// KeyHandle fetches the public key of the configured kms key.
func (s *Service) KeyHandle(ctx context.Context, cfg *vcskms.KeyConfig) (vcskms.KeyHandle, error) {
	keyID := getKeyID(cfg.KeyID)

	out, err := s.client.GetPublicKey(ctx, &kms.GetPublicKeyInput{KeyId: aws.String(keyID)})
	if err != nil {
		return nil, fmt.Errorf("get public key: %w", err)
	}

	spec, err := s.pickAlgorithm(keyID, out.SigningAlgorithms)
	if err != nil {
		return nil, err
	}

	alg, ok := signingAlgorithms[spec]
	if !ok {
		return nil, fmt.Errorf("%w: signing algorithm %s", vcskms.ErrUnsupportedKey, spec)
	}

	pub, err := x509.ParsePKIXPublicKey(out.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	ecPub, ok := pub.(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: public key %T", vcskms.ErrUnsupportedKey, pub)
	}

	return &keyHandle{
		service: s,
		kid:     cfg.KID,
		keyID:   keyID,
		spec:    spec,
		alg:     alg,
		pub:     ecPub,
	}, nil
}

func (s *Service) pickAlgorithm(
	keyID string,
	supported []types.SigningAlgorithmSpec,
) (types.SigningAlgorithmSpec, error) {
	if len(supported) == 0 {
		return "", fmt.Errorf("%w: key %s has no signing algorithm", vcskms.ErrUnsupportedKey, keyID)
	}

	if len(s.algorithms) == 0 {
		return supported[0], nil
	}

	for _, preferred := range s.algorithms {
		if lo.Contains(supported, preferred) {
			return preferred, nil
		}
	}

	return "", fmt.Errorf("%w: key %s supports none of %v", vcskms.ErrUnsupportedKey, keyID, s.algorithms)
}

func (s *Service) sign(ctx context.Context, h *keyHandle, data []byte) ([]byte, error) {
	startTime := time.Now()

	defer func() {
		if s.metrics != nil {
			s.metrics.SignTime(time.Since(startTime))
		}
	}()

	hasher := h.alg.hash.New()
	hasher.Write(data)

	result, err := s.client.Sign(ctx, &kms.SignInput{
		KeyId:            aws.String(h.keyID),
		Message:          hasher.Sum(nil),
		MessageType:      types.MessageTypeDigest,
		SigningAlgorithm: h.spec,
	})
	if err != nil {
		return nil, fmt.Errorf("kms sign: %w", err)
	}

	signature := ecdsaSignature{}

	if _, err = asn1.Unmarshal(result.Signature, &signature); err != nil {
		return nil, fmt.Errorf("parse kms signature: %w", err)
	}

	sig := make([]byte, 2*h.alg.size)
	signature.R.FillBytes(sig[:h.alg.size])
	signature.S.FillBytes(sig[h.alg.size:])

	return sig, nil
}

// getKeyID accepts both plain key ids and aws-kms://arn:... key URIs.
func getKeyID(keyURI string) string {
	return strings.TrimPrefix(keyURI, "aws-kms://")
}

type keyHandle struct {
	service *Service
	kid     string
	keyID   string
	spec    types.SigningAlgorithmSpec
	alg     algorithm
	pub     *ecdsa.PublicKey
}

func (h *keyHandle) KID() string {
	return h.kid
}

func (h *keyHandle) Algorithm() string {
	return h.alg.jws
}

func (h *keyHandle) Public() crypto.PublicKey {
	return h.pub
}

func (h *keyHandle) Sign(ctx context.Context, data []byte) ([]byte, error) {
	return h.service.sign(ctx, h, data)
}
