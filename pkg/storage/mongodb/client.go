/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/mongo"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultTimeout     = 15 * time.Second
	defaultMaxPoolSize = 200
)

// Client owns the connection pool shared by the exchange, offer and allocation stores.
type Client struct {
	client       *mongo.Client
	databaseName string
	timeout      time.Duration
}

// New connects to MongoDB and binds the client to databaseName.
func New(connString string, databaseName string, opts ...ClientOpt) (*Client, error) {
	op := &clientOpts{
		timeout:     defaultTimeout,
		readPref:    readpref.Primary(),
		maxPoolSize: defaultMaxPoolSize,
	}

	for _, fn := range opts {
		fn(op)
	}

	mongoOpts := mongooptions.Client().
		ApplyURI(connString).
		SetReadPreference(op.readPref).
		SetMaxPoolSize(op.maxPoolSize)

	if op.traceProvider != nil {
		mongoOpts.SetMonitor(otelmongo.NewMonitor(otelmongo.WithTracerProvider(op.traceProvider)))
	}

	ctx, cancel := context.WithTimeout(context.Background(), op.timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, mongoOpts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	return &Client{
		client:       client,
		databaseName: databaseName,
		timeout:      op.timeout,
	}, nil
}

func (c *Client) Database() *mongo.Database {
	return c.client.Database(c.databaseName)
}

// Collection returns a handle on the named collection of the bound database.
func (c *Client) Collection(name string) *mongo.Collection {
	return c.Database().Collection(name)
}

// EnsureIndexes creates the given indexes on a collection. Existing identical indexes are left in place.
func (c *Client) EnsureIndexes(ctx context.Context, collection string, models ...mongo.IndexModel) error {
	if len(models) == 0 {
		return nil
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	names, err := c.Collection(collection).Indexes().CreateMany(ctx, models)
	if err != nil {
		return fmt.Errorf("create indexes for collection %s: %w", collection, err)
	}

	if len(names) != len(models) {
		return fmt.Errorf("create indexes for collection %s: expected %d, created %d",
			collection, len(models), len(names))
	}

	return nil
}

// Ping checks that the primary is reachable. It backs the readiness check.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	return c.client.Ping(ctx, readpref.Primary())
}

func (c *Client) ContextWithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), c.timeout)
}

// Close disconnects the pool. Closing an already closed client is a no-op.
func (c *Client) Close() error {
	ctx, cancel := c.ContextWithTimeout()
	defer cancel()

	if err := c.client.Disconnect(ctx); err != nil && !errors.Is(err, mongo.ErrClientDisconnected) {
		return fmt.Errorf("disconnect from mongodb: %w", err)
	}

	return nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, c.timeout)
}

type clientOpts struct {
	timeout       time.Duration
	readPref      *readpref.ReadPref
	maxPoolSize   uint64
	traceProvider trace.TracerProvider
}

type ClientOpt func(opts *clientOpts)

func WithTimeout(timeout time.Duration) ClientOpt {
	return func(opts *clientOpts) {
		opts.timeout = timeout
	}
}

// WithReadPref overrides the read preference. Stores read their own writes, so the default is primary.
func WithReadPref(readPref *readpref.ReadPref) ClientOpt {
	return func(opts *clientOpts) {
		opts.readPref = readPref
	}
}

// WithMaxPoolSize caps the number of pooled connections. Zero keeps the default.
func WithMaxPoolSize(size int) ClientOpt {
	return func(opts *clientOpts) {
		opts.maxPoolSize = lo.Ternary(size > 0, uint64(size), opts.maxPoolSize)
	}
}

func WithTraceProvider(traceProvider trace.TracerProvider) ClientOpt {
	return func(opts *clientOpts) {
		opts.traceProvider = traceProvider
	}
}
