/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/trustbloc/credential-agent/cmd/common"
	"github.com/trustbloc/credential-agent/internal/pkg/log"
	agenttls "github.com/trustbloc/credential-agent/internal/pkg/tls"
	"github.com/trustbloc/credential-agent/pkg/accesstoken"
	"github.com/trustbloc/credential-agent/pkg/client/ledger"
	"github.com/trustbloc/credential-agent/pkg/client/schema"
	"github.com/trustbloc/credential-agent/pkg/client/vendor"
	"github.com/trustbloc/credential-agent/pkg/doc/validator/offervalidator"
	"github.com/trustbloc/credential-agent/pkg/event"
	"github.com/trustbloc/credential-agent/pkg/kms"
	awskms "github.com/trustbloc/credential-agent/pkg/kms/aws"
	"github.com/trustbloc/credential-agent/pkg/kms/local"
	"github.com/trustbloc/credential-agent/pkg/kms/signer"
	"github.com/trustbloc/credential-agent/pkg/observability/health/probe"
	"github.com/trustbloc/credential-agent/pkg/observability/metrics"
	"github.com/trustbloc/credential-agent/pkg/observability/metrics/noop"
	"github.com/trustbloc/credential-agent/pkg/observability/metrics/prometheus"
	"github.com/trustbloc/credential-agent/pkg/observability/tracing"
	credentialstatustracing "github.com/trustbloc/credential-agent/pkg/observability/tracing/wrappers/credentialstatus"
	finalizetracing "github.com/trustbloc/credential-agent/pkg/observability/tracing/wrappers/finalize"
	offeringestiontracing "github.com/trustbloc/credential-agent/pkg/observability/tracing/wrappers/offeringestion"
	"github.com/trustbloc/credential-agent/pkg/pop"
	"github.com/trustbloc/credential-agent/pkg/restapi/resterr"
	"github.com/trustbloc/credential-agent/pkg/restapi/v1/healthcheck"
	"github.com/trustbloc/credential-agent/pkg/restapi/v1/holder"
	"github.com/trustbloc/credential-agent/pkg/restapi/v1/logapi"
	"github.com/trustbloc/credential-agent/pkg/restapi/v1/mw"
	"github.com/trustbloc/credential-agent/pkg/restapi/v1/operator"
	"github.com/trustbloc/credential-agent/pkg/restapi/v1/version"
	"github.com/trustbloc/credential-agent/pkg/service/credentialstatus"
	"github.com/trustbloc/credential-agent/pkg/service/exchangeledger"
	"github.com/trustbloc/credential-agent/pkg/service/finalize"
	"github.com/trustbloc/credential-agent/pkg/service/notification"
	"github.com/trustbloc/credential-agent/pkg/service/offeringestion"
	"github.com/trustbloc/credential-agent/pkg/service/vendoroffers"
	"github.com/trustbloc/credential-agent/pkg/storage/mongodb"
	"github.com/trustbloc/credential-agent/pkg/storage/redis"
	redisschemacache "github.com/trustbloc/credential-agent/pkg/storage/redis/schemacache"
	s3schemacache "github.com/trustbloc/credential-agent/pkg/storage/s3/schemacache"
	"github.com/trustbloc/credential-agent/pkg/tenant"
	"github.com/trustbloc/credential-agent/pkg/tenant/reader/file"
)

var logger = log.New("credential-agent")

const (
	holderAPIPrefix   = "/api/holder/" + version.HolderAPIVersion + "/org/:" + mw.TenantDIDParam
	operatorAPIPrefix = "/operator-api/" + version.OperatorAPIVersion + "/tenants/:" + mw.TenantDIDParam
	adminAPIPrefix    = "/admin"
	healthCheckPath   = "/healthcheck"
	eventSource       = "credential-agent"

	httpClientTimeout = 30 * time.Second
	readHeaderTimeout = 10 * time.Second
)

type httpServer interface {
	ListenAndServe() error
	ListenAndServeTLS(certFile, keyFile string) error
}

// Options of the start command.
type Options struct {
	Version    string
	HTTPServer httpServer
}

// StartOpts configures the start command.
type StartOpts func(opts *Options)

// WithHTTPServer replaces the http server built from the startup parameters.
func WithHTTPServer(srv httpServer) StartOpts {
	return func(opts *Options) {
		opts.HTTPServer = srv
	}
}

// WithVersion sets the version reported on startup.
func WithVersion(version string) StartOpts {
	return func(opts *Options) {
		opts.Version = version
	}
}

// GetStartCmd returns the Cobra start command.
func GetStartCmd(opts ...StartOpts) *cobra.Command {
	startCmd := createStartCmd(opts...)

	createFlags(startCmd)

	return startCmd
}

func createStartCmd(opts ...StartOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start credential-agent",
		Long:  "Start the credential-agent issuing service",
		RunE: func(cmd *cobra.Command, args []string) error {
			parameters, err := getStartupParameters(cmd)
			if err != nil {
				return fmt.Errorf("failed to get startup parameters: %w", err)
			}

			common.SetLogSpec(logger, parameters.logLevel)

			o := &Options{}

			for _, f := range opts {
				f(o)
			}

			logger.Info("Starting credential-agent", log.WithURL(parameters.hostURL),
				zap.String("version", o.Version))

			return startAgent(cmd.Context(), parameters, o)
		},
	}
}

func startAgent(ctx context.Context, parameters *startupParameters, o *Options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	shutdownTracing, tracer, err := tracing.Initialize(tracing.Config{
		Exporter:       parameters.tracingParams.exporter,
		ServiceName:    parameters.tracingParams.serviceName,
		ServiceVersion: o.Version,
		SampleRatio:    parameters.tracingParams.sampleRatio,
	})
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}

	defer shutdownTracing()

	e, cleanup, err := buildEchoHandler(ctx, parameters, tracer, o.Version)
	if err != nil {
		return err
	}

	defer cleanup()

	srv := o.HTTPServer
	if srv == nil {
		srv = &http.Server{
			Addr:              parameters.hostURL,
			Handler:           e,
			ReadHeaderTimeout: readHeaderTimeout,
		}
	}

	if parameters.tlsParameters.serveCertPath != "" && parameters.tlsParameters.serveKeyPath != "" {
		return srv.ListenAndServeTLS(parameters.tlsParameters.serveCertPath, parameters.tlsParameters.serveKeyPath)
	}

	return srv.ListenAndServe()
}

//nolint:funlen,gocyclo
func buildEchoHandler(
	ctx context.Context,
	parameters *startupParameters,
	tracer trace.Tracer,
	buildVersion string,
) (*echo.Echo, func(), error) {
	var closers []func()

	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	fail := func(err error) (*echo.Echo, func(), error) {
		cleanup()

		return nil, nil, err
	}

	m := getMetrics(parameters.metricsProviderName)

	rootCAs, err := agenttls.LoadCertPool(parameters.tlsParameters.systemCertPool, parameters.tlsParameters.caCerts)
	if err != nil {
		return fail(fmt.Errorf("get cert pool: %w", err))
	}

	tlsConfig := &tls.Config{
		RootCAs:    rootCAs,
		MinVersion: tls.VersionTLS12,
	}

	httpClient := &http.Client{
		Timeout: httpClientTimeout,
		Transport: &http.Transport{
			TLSClientConfig: tlsConfig,
		},
	}

	tenants, err := file.NewReader(parameters.tenantsFilePath)
	if err != nil {
		return fail(err)
	}

	stores, err := common.InitStores(ctx, parameters.dbParameters, logger,
		mongodb.WithTraceProvider(otel.GetTracerProvider()))
	if err != nil {
		return fail(err)
	}

	closers = append(closers, func() {
		if closeErr := stores.Close(); closeErr != nil {
			logger.Warn("Failed to close stores", log.WithError(closeErr))
		}
	})

	keyRegistry, err := createKeyRegistry(ctx, parameters.kmsParameters, tenants.All(), m)
	if err != nil {
		return fail(err)
	}

	jwtSigner := signer.NewJWTSigner(m)

	cacheBackend, err := createSchemaCache(ctx, parameters.schemaCacheParams, tlsConfig)
	if err != nil {
		return fail(err)
	}

	closers = append(closers, cacheBackend.close)

	healthChecks := cacheBackend.checks

	if stores.MongoClient != nil {
		healthChecks = append(healthChecks, healthcheck.Check{
			Name:  "mongodb",
			Check: probe.Ping("mongodb", stores.MongoClient),
		})
	}

	schemaClient := schema.New(&schema.Config{
		HTTPClient:   httpClient,
		RegistrarURL: parameters.registrarURL,
		Cache:        cacheBackend.cache,
	})

	vendorClient := vendor.New(&vendor.Config{HTTPClient: httpClient})

	ledgerClient := ledger.New(&ledger.Config{
		HTTPClient: httpClient,
		BaseURL:    parameters.ledgerParameters.url,
	})

	popVerifier := pop.NewVerifier(&pop.Config{
		Audience:      parameters.popParameters.audience,
		ChallengeTTL:  parameters.popParameters.challengeTTL,
		SubjectFormat: parameters.popParameters.subjectFormat,
	})

	tokenCodec := accesstoken.NewCodec(keyRegistry, parameters.accessTokenTTL)

	exchangeService := exchangeledger.NewService(&exchangeledger.Config{
		Store:       stores.Exchanges,
		TokenMinter: tokenCodec,
	})

	eventBus := event.NewEventBus()
	closers = append(closers, func() { _ = eventBus.Close() })

	notificationService := notification.NewService(&notification.Config{
		Vendor:  vendorClient,
		Tenants: tenants,
		Metrics: m,
	})

	subscriber, err := event.NewEventSubscriber(eventBus, parameters.issuingEventTopic, notificationService.HandleEvent)
	if err != nil {
		return fail(err)
	}

	subscriber.Start()
	closers = append(closers, subscriber.Stop)

	eventPublisher := event.NewEventPublisher(eventBus, eventSource, parameters.issuingEventTopic)

	statusService := credentialstatustracing.Wrap(credentialstatus.New(&credentialstatus.Config{
		Store:              stores.Allocations,
		Ledger:             ledgerClient,
		KeyRegistry:        keyRegistry,
		Signer:             jwtSigner,
		ListSize:           parameters.ledgerParameters.listSize,
		RevocationRegistry: parameters.ledgerParameters.revocationRegistry,
	}), tracer)

	offerService := offeringestiontracing.Wrap(offeringestion.NewService(&offeringestion.Config{
		ExchangeStore: stores.Exchanges,
		OfferStore:    stores.Offers,
		Vendor:        vendorClient,
		Validator:     offervalidator.New(schemaClient),
		Challenges:    popVerifier,
		Metrics:       m,
	}), tracer)

	finalizeService := finalizetracing.Wrap(finalize.NewService(&finalize.Config{
		ExchangeStore:  stores.Exchanges,
		OfferStore:     stores.Offers,
		ProofVerifier:  popVerifier,
		Status:         statusService,
		KeyRegistry:    keyRegistry,
		Signer:         jwtSigner,
		EventPublisher: eventPublisher,
		Metrics:        m,
	}), tracer)

	vendorOffersService := vendoroffers.NewService(&vendoroffers.Config{
		ExchangeStore:  stores.Exchanges,
		OfferStore:     stores.Offers,
		Ingester:       offerService,
		EventPublisher: eventPublisher,
	})

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = resterr.HTTPErrorHandler
	e.Use(echomw.Recover())

	holderGroup := e.Group(holderAPIPrefix, mw.ResolveTenant(tenants), mw.AccessTokenAuth(tokenCodec))
	holder.RegisterHandlers(holderGroup, holder.NewController(&holder.Config{
		ExchangeService: exchangeService,
		OfferService:    offerService,
		FinalizeService: finalizeService,
	}))

	operatorGroup := e.Group(operatorAPIPrefix, mw.APIKeyAuth(parameters.apiKeys...), mw.ResolveTenant(tenants))
	operator.RegisterHandlers(operatorGroup, operator.NewController(&operator.Config{
		ExchangeService:     exchangeService,
		VendorOffersService: vendorOffersService,
	}))

	adminGroup := e.Group(adminAPIPrefix, mw.APIKeyAuth(parameters.apiKeys...))
	logapi.RegisterHandlers(adminGroup, logapi.NewController())

	version.RegisterHandlers(e, version.NewController(version.Config{Version: buildVersion}))

	e.GET(healthCheckPath, healthcheck.NewController(healthChecks...).GetHealthcheck)

	if parameters.metricsProviderName == metricsProviderPrometheus {
		e.GET(prometheus.MetricsPath, prometheus.NewHandler())
	}

	newReadinessController(e).Ready(true)

	return e, cleanup, nil
}

func getMetrics(providerName string) metrics.Metrics {
	if providerName == metricsProviderPrometheus {
		return prometheus.GetMetrics()
	}

	return noop.GetMetrics()
}

// createKeyRegistry registers the local kms and, when the default or any tenant key asks for it, AWS KMS.
func createKeyRegistry(
	ctx context.Context,
	params *kmsParameters,
	tenants []*tenant.Tenant,
	m metrics.Metrics,
) (*kms.Registry, error) {
	registry := kms.NewRegistry(&kms.Config{
		KMSType:  params.kmsType,
		Endpoint: params.kmsEndpoint,
		Region:   params.kmsRegion,
	})

	registry.Register(kms.Local, local.NewKeyManager())

	if !usesKMSType(params.kmsType, tenants, kms.AWS) {
		return registry, nil
	}

	awsCfg, err := loadAWSConfig(ctx, params.kmsRegion, params.kmsEndpoint)
	if err != nil {
		return nil, fmt.Errorf("load aws kms config: %w", err)
	}

	registry.Register(kms.AWS, awskms.New(&awsCfg, m))

	return registry, nil
}

func usesKMSType(defaultType kms.Type, tenants []*tenant.Tenant, kmsType kms.Type) bool {
	for _, t := range tenants {
		for _, k := range t.Keys {
			if k.KMSType == kmsType || (k.KMSType == "" && defaultType == kmsType) {
				return true
			}
		}
	}

	return false
}

func loadAWSConfig(ctx context.Context, region, endpoint string) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error

	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	if endpoint != "" {
		opts = append(opts, awsconfig.WithEndpointResolverWithOptions(
			aws.EndpointResolverWithOptionsFunc(func(service, reg string, _ ...interface{}) (aws.Endpoint, error) {
				return aws.Endpoint{
					URL:           endpoint,
					SigningRegion: reg,
				}, nil
			}),
		))
	}

	return awsconfig.LoadDefaultConfig(ctx, opts...)
}

type schemaCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, schema []byte) error
}

type schemaCacheBackend struct {
	cache  schemaCache
	checks []healthcheck.Check
	close  func()
}

func createSchemaCache(
	ctx context.Context,
	params *schemaCacheParameters,
	tlsConfig *tls.Config,
) (*schemaCacheBackend, error) {
	switch params.cacheType {
	case schemaCacheRedis:
		client, err := redis.New(params.redisAddrs,
			redis.WithMasterName(params.redisMasterName),
			redis.WithPassword(params.redisPassword),
			redis.WithTLSConfig(tlsConfig),
			redis.WithTraceProvider(otel.GetTracerProvider()),
		)
		if err != nil {
			return nil, fmt.Errorf("create redis client: %w", err)
		}

		return &schemaCacheBackend{
			cache:  redisschemacache.New(client, params.ttl),
			checks: []healthcheck.Check{{Name: "redis", Check: probe.Ping("redis", client)}},
			close:  func() { _ = client.Close() },
		}, nil
	case schemaCacheS3:
		awsCfg, err := loadAWSConfig(ctx, params.s3Region, params.s3Endpoint)
		if err != nil {
			return nil, fmt.Errorf("load aws s3 config: %w", err)
		}

		client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.UsePathStyle = params.s3Endpoint != ""
		})

		return &schemaCacheBackend{
			cache: s3schemacache.New(client, params.s3Bucket, params.ttl),
			close: func() {},
		}, nil
	default:
		return &schemaCacheBackend{close: func() {}}, nil
	}
}
