/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"

	"github.com/trustbloc/credential-agent/internal/pkg/log"
	cmdutils "github.com/trustbloc/credential-agent/internal/pkg/utils/cmd"
	"github.com/trustbloc/credential-agent/pkg/exchange"
	"github.com/trustbloc/credential-agent/pkg/offer"
	"github.com/trustbloc/credential-agent/pkg/service/credentialstatus"
	"github.com/trustbloc/credential-agent/pkg/storage/memstore"
	"github.com/trustbloc/credential-agent/pkg/storage/mongodb"
	"github.com/trustbloc/credential-agent/pkg/storage/mongodb/allocationstore"
	"github.com/trustbloc/credential-agent/pkg/storage/mongodb/exchangestore"
	"github.com/trustbloc/credential-agent/pkg/storage/mongodb/offerstore"
)

const (
	// DatabaseURLFlagName is the database url.
	DatabaseURLFlagName = "database-url"
	// DatabaseURLFlagUsage describes the usage.
	DatabaseURLFlagUsage = "Database URL with credentials if required." +
		" Format must be <driver>:[//]<driver-specific-dsn>." +
		" Examples: 'mem://test', 'mongodb://mongodb.example.com:27017'." +
		" Supported drivers are [mem, mongodb]." +
		" Alternatively, this can be set with the following environment variable: " + DatabaseURLEnvKey
	// DatabaseURLEnvKey is the database url.
	DatabaseURLEnvKey = "DATABASE_URL"

	// DatabaseTimeoutFlagName is the database timeout.
	DatabaseTimeoutFlagName = "database-timeout"
	// DatabaseTimeoutFlagUsage describes the usage.
	DatabaseTimeoutFlagUsage = "Total time in seconds to wait until the datasource is available before giving up." +
		" Default: 30 seconds." +
		" Alternatively, this can be set with the following environment variable: " + DatabaseTimeoutEnvKey
	// DatabaseTimeoutEnvKey is the database timeout.
	DatabaseTimeoutEnvKey = "DATABASE_TIMEOUT"

	// DatabasePrefixFlagName is the storage prefix.
	DatabasePrefixFlagName = "database-prefix"
	// DatabasePrefixEnvKey is the storage prefix.
	DatabasePrefixEnvKey = "DATABASE_PREFIX"
	// DatabasePrefixFlagUsage describes the usage.
	DatabasePrefixFlagUsage = "An optional prefix of the database name. " +
		"Alternatively, this can be set with the following environment variable: " + DatabasePrefixEnvKey

	// DatabaseTimeoutDefault is the default storage timeout.
	DatabaseTimeoutDefault = 30

	databaseName = "credentialagent"

	driverMem     = "mem"
	driverMongoDB = "mongodb"
)

// DBParameters holds database configuration.
type DBParameters struct {
	URL     string
	Prefix  string
	Timeout uint64
}

// Stores holds the persistence of exchanges, offers and status list allocations.
type Stores struct {
	Exchanges   exchange.Store
	Offers      offer.Store
	Allocations credentialstatus.AllocationStore
	// MongoClient is nil for in-memory stores.
	MongoClient *mongodb.Client
}

// Close releases the database connection.
func (s *Stores) Close() error {
	if s.MongoClient == nil {
		return nil
	}

	return s.MongoClient.Close()
}

// Flags registers common command flags.
func Flags(cmd *cobra.Command) {
	cmd.Flags().StringP(DatabaseURLFlagName, "", "", DatabaseURLFlagUsage)
	cmd.Flags().StringP(DatabasePrefixFlagName, "", "", DatabasePrefixFlagUsage)
	cmd.Flags().StringP(DatabaseTimeoutFlagName, "", "", DatabaseTimeoutFlagUsage)
}

// DBParams fetches the DB parameters configured for this command.
func DBParams(cmd *cobra.Command) (*DBParameters, error) {
	var err error

	params := &DBParameters{}

	params.URL, err = cmdutils.GetUserSetVarFromString(cmd, DatabaseURLFlagName, DatabaseURLEnvKey, false)
	if err != nil {
		return nil, fmt.Errorf("failed to configure dbURL: %w", err)
	}

	params.Prefix = cmdutils.GetUserSetOptionalVarFromString(cmd, DatabasePrefixFlagName, DatabasePrefixEnvKey)

	timeout, err := cmdutils.GetInt(cmd, DatabaseTimeoutFlagName, DatabaseTimeoutEnvKey, DatabaseTimeoutDefault)
	if err != nil {
		return nil, fmt.Errorf("failed to configure dbTimeout: %w", err)
	}

	if timeout < 0 {
		return nil, fmt.Errorf("failed to configure dbTimeout: negative value %d", timeout)
	}

	params.Timeout = uint64(timeout)

	return params, nil
}

// InitStores opens the stores selected by the database url. Connecting to MongoDB is
// retried once a second until the timeout is reached.
func InitStores(ctx context.Context, params *DBParameters, logger *log.Log,
	opts ...mongodb.ClientOpt) (*Stores, error) {
	driver, _, err := parseURL(params.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", params.URL, err)
	}

	switch driver {
	case driverMem:
		return &Stores{
			Exchanges:   memstore.NewExchangeStore(),
			Offers:      memstore.NewOfferStore(),
			Allocations: memstore.NewAllocationStore(),
		}, nil
	case driverMongoDB:
		return initMongoStores(ctx, params, logger, opts...)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", driver)
	}
}

func initMongoStores(ctx context.Context, params *DBParameters, logger *log.Log,
	opts ...mongodb.ClientOpt) (*Stores, error) {
	var client *mongodb.Client

	err := retry(
		func() error {
			c, openErr := mongodb.New(params.URL, params.Prefix+databaseName, opts...)
			if openErr != nil {
				return openErr
			}

			if pingErr := c.Ping(ctx); pingErr != nil {
				_ = c.Close()

				return pingErr
			}

			client = c

			return nil
		},
		params.Timeout,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to init mongodb stores: %w", err)
	}

	exchanges, err := exchangestore.New(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("create exchange store: %w", err)
	}

	offers, err := offerstore.New(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("create offer store: %w", err)
	}

	allocations, err := allocationstore.New(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("create allocation store: %w", err)
	}

	return &Stores{
		Exchanges:   exchanges,
		Offers:      offers,
		Allocations: allocations,
		MongoClient: client,
	}, nil
}

func parseURL(u string) (string, string, error) {
	const urlParts = 2

	parsed := strings.SplitN(u, ":", urlParts)

	if len(parsed) != urlParts {
		return "", "", fmt.Errorf("invalid dbURL %s", u)
	}

	driver := parsed[0]

	if driver == driverMongoDB {
		return driver, u, nil
	}

	return driver, strings.TrimPrefix(parsed[1], "//"), nil
}

func retry(task func() error, numRetries uint64, logger *log.Log) error {
	const sleep = 1 * time.Second

	return backoff.RetryNotify(
		task,
		backoff.WithMaxRetries(backoff.NewConstantBackOff(sleep), numRetries),
		func(retryErr error, t time.Duration) {
			logger.Warn("Failed to connect to storage, will sleep before trying again.",
				log.WithDuration(t), log.WithError(retryErr))
		},
	)
}
