/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package redis

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultKeyPrefix = "credential-agent"
	keySeparator     = ":"
)

// Client is the redis connection shared by the schema cache and the readiness probe.
type Client struct {
	client    redis.UniversalClient
	timeout   time.Duration
	keyPrefix string
}

// New connects to redis and verifies the connection with a ping.
// A sentinel failover client is used when a master name is set, a cluster client when more
// than one address is given, and a single node client otherwise.
func New(addrs []string, opts ...ClientOpt) (*Client, error) {
	if len(addrs) == 0 {
		return nil, fmt.Errorf("redis: no addresses")
	}

	o := &clientOpts{
		timeout:   defaultTimeout,
		keyPrefix: defaultKeyPrefix,
	}

	for _, fn := range opts {
		fn(o)
	}

	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:                 addrs,
		MasterName:            o.masterName,
		Password:              o.password,
		TLSConfig:             o.tlsConfig,
		ContextTimeoutEnabled: true,
	})

	c := &Client{
		client:    client,
		timeout:   o.timeout,
		keyPrefix: o.keyPrefix,
	}

	if o.traceProvider != nil {
		if err := redisotel.InstrumentTracing(client, redisotel.WithTracerProvider(o.traceProvider)); err != nil {
			_ = client.Close()

			return nil, fmt.Errorf("instrument redis tracing: %w", err)
		}
	}

	ctx, cancel := c.ContextWithTimeout()
	defer cancel()

	if err := c.Ping(ctx); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return c, nil
}

func (c *Client) ContextWithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), c.timeout)
}

func (c *Client) API() redis.UniversalClient {
	return c.client
}

// Key joins parts into a key under the client's namespace, e.g. "credential-agent:schema:<id>".
func (c *Client) Key(parts ...string) string {
	if c.keyPrefix == "" {
		return strings.Join(parts, keySeparator)
	}

	return c.keyPrefix + keySeparator + strings.Join(parts, keySeparator)
}

func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.client.Close()
}

type clientOpts struct {
	masterName    string
	password      string
	keyPrefix     string
	tlsConfig     *tls.Config
	timeout       time.Duration
	traceProvider trace.TracerProvider
}

type ClientOpt func(opts *clientOpts)

func WithMasterName(masterName string) ClientOpt {
	return func(opts *clientOpts) {
		opts.masterName = masterName
	}
}

func WithPassword(password string) ClientOpt {
	return func(opts *clientOpts) {
		opts.password = password
	}
}

// WithKeyPrefix namespaces every key built by Key. An empty prefix disables namespacing.
func WithKeyPrefix(prefix string) ClientOpt {
	return func(opts *clientOpts) {
		opts.keyPrefix = prefix
	}
}

func WithTLSConfig(tlsConfig *tls.Config) ClientOpt {
	return func(opts *clientOpts) {
		opts.tlsConfig = tlsConfig
	}
}

// WithTimeout bounds the initial connection check.
func WithTimeout(timeout time.Duration) ClientOpt {
	return func(opts *clientOpts) {
		opts.timeout = timeout
	}
}

func WithTraceProvider(traceProvider trace.TracerProvider) ClientOpt {
	return func(opts *clientOpts) {
		opts.traceProvider = traceProvider
	}
}
