/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/trustbloc/credential-agent/cmd/common"
	cmdutils "github.com/trustbloc/credential-agent/internal/pkg/utils/cmd"
	"github.com/trustbloc/credential-agent/pkg/event/spi"
	"github.com/trustbloc/credential-agent/pkg/kms"
	"github.com/trustbloc/credential-agent/pkg/observability/tracing"
	"github.com/trustbloc/credential-agent/pkg/pop"
)

// kms params
const (
	kmsTypeFlagName  = "default-kms-type"
	kmsTypeEnvKey    = "CREDENTIAL_AGENT_DEFAULT_KMS_TYPE"
	kmsTypeFlagUsage = "Default KMS type of tenant keys that do not name one (local,aws). Default: local. " +
		commonEnvVarUsageText + kmsTypeEnvKey

	kmsEndpointFlagName  = "default-kms-endpoint"
	kmsEndpointEnvKey    = "CREDENTIAL_AGENT_DEFAULT_KMS_ENDPOINT"
	kmsEndpointFlagUsage = "Default KMS URL. " + commonEnvVarUsageText + kmsEndpointEnvKey

	kmsRegionFlagName  = "default-kms-region"
	kmsRegionEnvKey    = "CREDENTIAL_AGENT_DEFAULT_KMS_REGION"
	kmsRegionFlagUsage = "Default KMS region. " + commonEnvVarUsageText + kmsRegionEnvKey
)

// schema cache params
const (
	schemaCacheTypeFlagName  = "schema-cache-type"
	schemaCacheTypeEnvKey    = "CREDENTIAL_AGENT_SCHEMA_CACHE_TYPE"
	schemaCacheTypeFlagUsage = "Cache of credential type schemas. Supported: redis, s3. " +
		"Schemas are not cached if not set. " + commonEnvVarUsageText + schemaCacheTypeEnvKey

	schemaCacheTTLFlagName  = "schema-cache-ttl"
	schemaCacheTTLEnvKey    = "CREDENTIAL_AGENT_SCHEMA_CACHE_TTL"
	schemaCacheTTLFlagUsage = "How long a fetched schema is cached. Default: 1h. " +
		commonEnvVarUsageText + schemaCacheTTLEnvKey

	redisAddrsFlagName  = "redis-addrs"
	redisAddrsEnvKey    = "CREDENTIAL_AGENT_REDIS_ADDRS"
	redisAddrsFlagUsage = "Comma-separated list of Redis host:port. Required by the redis schema cache. " +
		commonEnvVarUsageText + redisAddrsEnvKey

	redisMasterNameFlagName  = "redis-master-name"
	redisMasterNameEnvKey    = "CREDENTIAL_AGENT_REDIS_MASTER_NAME"
	redisMasterNameFlagUsage = "Redis sentinel master name. " + commonEnvVarUsageText + redisMasterNameEnvKey

	redisPasswordFlagName  = "redis-password"
	redisPasswordEnvKey    = "CREDENTIAL_AGENT_REDIS_PASSWORD" //nolint: gosec
	redisPasswordFlagUsage = "Redis password. " + commonEnvVarUsageText + redisPasswordEnvKey

	s3BucketFlagName  = "schema-cache-s3-bucket"
	s3BucketEnvKey    = "CREDENTIAL_AGENT_SCHEMA_CACHE_S3_BUCKET"
	s3BucketFlagUsage = "S3 bucket of the s3 schema cache. " + commonEnvVarUsageText + s3BucketEnvKey

	s3RegionFlagName  = "schema-cache-s3-region"
	s3RegionEnvKey    = "CREDENTIAL_AGENT_SCHEMA_CACHE_S3_REGION"
	s3RegionFlagUsage = "S3 region of the s3 schema cache. " + commonEnvVarUsageText + s3RegionEnvKey

	s3EndpointFlagName  = "schema-cache-s3-endpoint"
	s3EndpointEnvKey    = "CREDENTIAL_AGENT_SCHEMA_CACHE_S3_ENDPOINT"
	s3EndpointFlagUsage = "Optional S3 compatible endpoint of the s3 schema cache. " +
		commonEnvVarUsageText + s3EndpointEnvKey
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLFlagUsage     = "URL to run the credential-agent instance on. Format: HostName:Port. " +
		commonEnvVarUsageText + hostURLEnvKey
	hostURLEnvKey = "CREDENTIAL_AGENT_HOST_URL"

	apiKeyFlagName  = "api-key"
	apiKeyEnvKey    = "CREDENTIAL_AGENT_API_KEY" //nolint: gosec
	apiKeyFlagUsage = "Key the tenant back office sends in the X-API-Key header of operator requests. " +
		"Accepts a comma-separated list so that keys can be rotated. " +
		commonEnvVarUsageText + apiKeyEnvKey

	tenantsFilePathFlagName  = "tenants-file-path"
	tenantsFilePathEnvKey    = "CREDENTIAL_AGENT_TENANTS_FILE_PATH"
	tenantsFilePathFlagUsage = "Path to the JSON file with the tenant profiles. " +
		commonEnvVarUsageText + tenantsFilePathEnvKey

	tlsSystemCertPoolFlagName  = "tls-systemcertpool"
	tlsSystemCertPoolFlagUsage = "Use system certificate pool." +
		" Possible values [true] [false]. Defaults to false if not set. " + commonEnvVarUsageText + tlsSystemCertPoolEnvKey
	tlsSystemCertPoolEnvKey = "CREDENTIAL_AGENT_TLS_SYSTEMCERTPOOL"

	tlsCACertsFlagName  = "tls-cacerts"
	tlsCACertsFlagUsage = "Comma-Separated list of ca certs path. " + commonEnvVarUsageText + tlsCACertsEnvKey
	tlsCACertsEnvKey    = "CREDENTIAL_AGENT_TLS_CACERTS"

	tlsCertificateFlagName  = "tls-certificate"
	tlsCertificateFlagUsage = "TLS certificate for the server. " + commonEnvVarUsageText + tlsCertificateEnvKey
	tlsCertificateEnvKey    = "CREDENTIAL_AGENT_TLS_CERTIFICATE"

	tlsKeyFlagName  = "tls-key"
	tlsKeyFlagUsage = "TLS key for the server. " + commonEnvVarUsageText + tlsKeyEnvKey
	tlsKeyEnvKey    = "CREDENTIAL_AGENT_TLS_KEY"

	ledgerURLFlagName  = "ledger-url"
	ledgerURLEnvKey    = "CREDENTIAL_AGENT_LEDGER_URL"
	ledgerURLFlagUsage = "URL of the ledger gateway. " + commonEnvVarUsageText + ledgerURLEnvKey

	revocationRegistryFlagName  = "revocation-registry"
	revocationRegistryEnvKey    = "CREDENTIAL_AGENT_REVOCATION_REGISTRY"
	revocationRegistryFlagUsage = "Ledger address of the revocation registry. " +
		commonEnvVarUsageText + revocationRegistryEnvKey

	statusListSizeFlagName  = "status-list-size"
	statusListSizeEnvKey    = "CREDENTIAL_AGENT_STATUS_LIST_SIZE"
	statusListSizeFlagUsage = "Number of entries of a new revocation or metadata list. Default: 10000. " +
		commonEnvVarUsageText + statusListSizeEnvKey

	registrarURLFlagName  = "registrar-url"
	registrarURLEnvKey    = "CREDENTIAL_AGENT_REGISTRAR_URL"
	registrarURLFlagUsage = "URL of the registrar that serves credential types and schemas. " +
		commonEnvVarUsageText + registrarURLEnvKey

	accessTokenTTLFlagName  = "access-token-ttl"
	accessTokenTTLEnvKey    = "CREDENTIAL_AGENT_ACCESS_TOKEN_TTL" //nolint: gosec
	accessTokenTTLFlagUsage = "Lifetime of holder access tokens. Default: 168h. " +
		commonEnvVarUsageText + accessTokenTTLEnvKey

	popChallengeTTLFlagName  = "pop-challenge-ttl"
	popChallengeTTLEnvKey    = "CREDENTIAL_AGENT_POP_CHALLENGE_TTL"
	popChallengeTTLFlagUsage = "How long an issued proof challenge stays valid. Default: 10m. " +
		commonEnvVarUsageText + popChallengeTTLEnvKey

	popAudienceFlagName  = "pop-audience"
	popAudienceEnvKey    = "CREDENTIAL_AGENT_POP_AUDIENCE"
	popAudienceFlagUsage = "Audience holders put in the proof aud claim. " + commonEnvVarUsageText + popAudienceEnvKey

	popSubjectFormatFlagName  = "pop-subject-format"
	popSubjectFormatEnvKey    = "CREDENTIAL_AGENT_POP_SUBJECT_FORMAT"
	popSubjectFormatFlagUsage = "How the holder key is written into credentialSubject.id (did, thumbprint). " +
		"Default: did. " + commonEnvVarUsageText + popSubjectFormatEnvKey

	issuingTopicFlagName  = "issuing-event-topic"
	issuingTopicEnvKey    = "CREDENTIAL_AGENT_ISSUING_EVENT_TOPIC"
	issuingTopicFlagUsage = "The name of the issuing event topic. " + commonEnvVarUsageText + issuingTopicEnvKey

	metricsProviderFlagName         = "metrics-provider-name"
	metricsProviderEnvKey           = "CREDENTIAL_AGENT_METRICS_PROVIDER_NAME"
	allowedMetricsProviderFlagUsage = "The metrics provider name (for example: 'prometheus' etc.). " +
		commonEnvVarUsageText + metricsProviderEnvKey

	tracingProviderFlagName  = "tracing-provider"
	tracingProviderEnvKey    = "CREDENTIAL_AGENT_TRACING_PROVIDER"
	tracingProviderFlagUsage = "The tracing provider (JAEGER, STDOUT). " +
		commonEnvVarUsageText + tracingProviderEnvKey

	tracingServiceNameFlagName  = "tracing-service-name"
	tracingServiceNameEnvKey    = "CREDENTIAL_AGENT_TRACING_SERVICE_NAME"
	tracingServiceNameFlagUsage = "The name of the tracing service. Default: credential-agent. " +
		commonEnvVarUsageText + tracingServiceNameEnvKey

	tracingSampleRatioFlagName  = "tracing-sample-ratio"
	tracingSampleRatioEnvKey    = "CREDENTIAL_AGENT_TRACING_SAMPLE_RATIO"
	tracingSampleRatioFlagUsage = "The fraction of requests traced, between 0 and 1. Default: 1. " +
		commonEnvVarUsageText + tracingSampleRatioEnvKey

	metricsProviderPrometheus = "prometheus"

	schemaCacheRedis = "redis"
	schemaCacheS3    = "s3"

	defaultTracingServiceName = "credential-agent"
)

const (
	defaultSchemaCacheTTL  = time.Hour
	defaultAccessTokenTTL  = 7 * 24 * time.Hour
	defaultPoPChallengeTTL = 10 * time.Minute
	defaultStatusListSize  = 10000
)

type startupParameters struct {
	hostURL             string
	apiKeys             []string
	tenantsFilePath     string
	logLevel            string
	dbParameters        *common.DBParameters
	kmsParameters       *kmsParameters
	tlsParameters       *tlsParameters
	ledgerParameters    *ledgerParameters
	registrarURL        string
	schemaCacheParams   *schemaCacheParameters
	accessTokenTTL      time.Duration
	popParameters       *popParameters
	issuingEventTopic   string
	metricsProviderName string
	tracingParams       *tracingParams
}

type tracingParams struct {
	exporter    tracing.SpanExporterType
	serviceName string
	sampleRatio float64
}

type tlsParameters struct {
	systemCertPool bool
	caCerts        []string
	serveCertPath  string
	serveKeyPath   string
}

type kmsParameters struct {
	kmsType     kms.Type
	kmsEndpoint string
	kmsRegion   string
}

type ledgerParameters struct {
	url                string
	revocationRegistry string
	listSize           int
}

type schemaCacheParameters struct {
	cacheType       string
	ttl             time.Duration
	redisAddrs      []string
	redisMasterName string
	redisPassword   string
	s3Bucket        string
	s3Region        string
	s3Endpoint      string
}

type popParameters struct {
	audience      string
	challengeTTL  time.Duration
	subjectFormat pop.SubjectFormat
}

func getStartupParameters(cmd *cobra.Command) (*startupParameters, error) {
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	apiKey, err := cmdutils.GetUserSetVarFromString(cmd, apiKeyFlagName, apiKeyEnvKey, false)
	if err != nil {
		return nil, err
	}

	tenantsFilePath, err := cmdutils.GetUserSetVarFromString(cmd, tenantsFilePathFlagName, tenantsFilePathEnvKey, false)
	if err != nil {
		return nil, err
	}

	dbParams, err := common.DBParams(cmd)
	if err != nil {
		return nil, err
	}

	kmsParams, err := getKMSParameters(cmd)
	if err != nil {
		return nil, err
	}

	tlsParams, err := getTLS(cmd)
	if err != nil {
		return nil, err
	}

	ledgerParams, err := getLedgerParameters(cmd)
	if err != nil {
		return nil, err
	}

	registrarURL, err := cmdutils.GetUserSetVarFromString(cmd, registrarURLFlagName, registrarURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	schemaCacheParams, err := getSchemaCacheParameters(cmd)
	if err != nil {
		return nil, err
	}

	accessTokenTTL, err := cmdutils.GetDuration(cmd, accessTokenTTLFlagName, accessTokenTTLEnvKey,
		defaultAccessTokenTTL)
	if err != nil {
		return nil, err
	}

	popParams, err := getPoPParameters(cmd, hostURL)
	if err != nil {
		return nil, err
	}

	issuingTopic := cmdutils.GetUserSetOptionalVarFromString(cmd, issuingTopicFlagName, issuingTopicEnvKey)
	if issuingTopic == "" {
		issuingTopic = spi.IssuingEventTopic
	}

	metricsProviderName := cmdutils.GetUserSetOptionalVarFromString(cmd, metricsProviderFlagName,
		metricsProviderEnvKey)
	if metricsProviderName != "" && metricsProviderName != metricsProviderPrometheus {
		return nil, fmt.Errorf("unsupported metrics provider: %s", metricsProviderName)
	}

	tracingParams, err := getTracingParams(cmd)
	if err != nil {
		return nil, err
	}

	return &startupParameters{
		hostURL:             hostURL,
		apiKeys:             splitAPIKeys(apiKey),
		tenantsFilePath:     tenantsFilePath,
		logLevel:            cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey),
		dbParameters:        dbParams,
		kmsParameters:       kmsParams,
		tlsParameters:       tlsParams,
		ledgerParameters:    ledgerParams,
		registrarURL:        registrarURL,
		schemaCacheParams:   schemaCacheParams,
		accessTokenTTL:      accessTokenTTL,
		popParameters:       popParams,
		issuingEventTopic:   issuingTopic,
		metricsProviderName: metricsProviderName,
		tracingParams:       tracingParams,
	}, nil
}

func getKMSParameters(cmd *cobra.Command) (*kmsParameters, error) {
	kmsType := kms.Type(cmdutils.GetUserSetOptionalVarFromString(cmd, kmsTypeFlagName, kmsTypeEnvKey))
	if kmsType == "" {
		kmsType = kms.Local
	}

	if !supportedKmsType(kmsType) {
		return nil, fmt.Errorf("unsupported kms type: %s", kmsType)
	}

	return &kmsParameters{
		kmsType:     kmsType,
		kmsEndpoint: cmdutils.GetUserSetOptionalVarFromString(cmd, kmsEndpointFlagName, kmsEndpointEnvKey),
		kmsRegion:   cmdutils.GetUserSetOptionalVarFromString(cmd, kmsRegionFlagName, kmsRegionEnvKey),
	}, nil
}

func supportedKmsType(kmsType kms.Type) bool {
	return kmsType == kms.Local || kmsType == kms.AWS
}

func getTLS(cmd *cobra.Command) (*tlsParameters, error) {
	tlsSystemCertPool, err := cmdutils.GetBool(cmd, tlsSystemCertPoolFlagName, tlsSystemCertPoolEnvKey, false)
	if err != nil {
		return nil, err
	}

	return &tlsParameters{
		systemCertPool: tlsSystemCertPool,
		caCerts:        cmdutils.GetUserSetOptionalCSVVar(cmd, tlsCACertsFlagName, tlsCACertsEnvKey),
		serveCertPath:  cmdutils.GetUserSetOptionalVarFromString(cmd, tlsCertificateFlagName, tlsCertificateEnvKey),
		serveKeyPath:   cmdutils.GetUserSetOptionalVarFromString(cmd, tlsKeyFlagName, tlsKeyEnvKey),
	}, nil
}

func getLedgerParameters(cmd *cobra.Command) (*ledgerParameters, error) {
	ledgerURL, err := cmdutils.GetUserSetVarFromString(cmd, ledgerURLFlagName, ledgerURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	registry, err := cmdutils.GetUserSetVarFromString(cmd, revocationRegistryFlagName, revocationRegistryEnvKey, false)
	if err != nil {
		return nil, err
	}

	listSize, err := cmdutils.GetInt(cmd, statusListSizeFlagName, statusListSizeEnvKey, defaultStatusListSize)
	if err != nil {
		return nil, err
	}

	if listSize <= 0 {
		return nil, fmt.Errorf("invalid value for %s [%d]: must be positive", statusListSizeFlagName, listSize)
	}

	return &ledgerParameters{
		url:                ledgerURL,
		revocationRegistry: registry,
		listSize:           listSize,
	}, nil
}

func getSchemaCacheParameters(cmd *cobra.Command) (*schemaCacheParameters, error) {
	ttl, err := cmdutils.GetDuration(cmd, schemaCacheTTLFlagName, schemaCacheTTLEnvKey, defaultSchemaCacheTTL)
	if err != nil {
		return nil, err
	}

	params := &schemaCacheParameters{
		cacheType:       cmdutils.GetUserSetOptionalVarFromString(cmd, schemaCacheTypeFlagName, schemaCacheTypeEnvKey),
		ttl:             ttl,
		redisAddrs:      cmdutils.GetUserSetOptionalCSVVar(cmd, redisAddrsFlagName, redisAddrsEnvKey),
		redisMasterName: cmdutils.GetUserSetOptionalVarFromString(cmd, redisMasterNameFlagName, redisMasterNameEnvKey),
		redisPassword:   cmdutils.GetUserSetOptionalVarFromString(cmd, redisPasswordFlagName, redisPasswordEnvKey),
	}

	switch params.cacheType {
	case "":
	case schemaCacheRedis:
		if len(params.redisAddrs) == 0 {
			return nil, fmt.Errorf("%s is required by the redis schema cache", redisAddrsFlagName)
		}
	case schemaCacheS3:
		params.s3Bucket, err = cmdutils.GetUserSetVarFromString(cmd, s3BucketFlagName, s3BucketEnvKey, false)
		if err != nil {
			return nil, err
		}

		params.s3Region = cmdutils.GetUserSetOptionalVarFromString(cmd, s3RegionFlagName, s3RegionEnvKey)
		params.s3Endpoint = cmdutils.GetUserSetOptionalVarFromString(cmd, s3EndpointFlagName, s3EndpointEnvKey)
	default:
		return nil, fmt.Errorf("unsupported schema cache type: %s", params.cacheType)
	}

	return params, nil
}

func getPoPParameters(cmd *cobra.Command, hostURL string) (*popParameters, error) {
	challengeTTL, err := cmdutils.GetDuration(cmd, popChallengeTTLFlagName, popChallengeTTLEnvKey,
		defaultPoPChallengeTTL)
	if err != nil {
		return nil, err
	}

	audience := cmdutils.GetUserSetOptionalVarFromString(cmd, popAudienceFlagName, popAudienceEnvKey)
	if audience == "" {
		audience = hostURL
	}

	format := pop.SubjectFormat(cmdutils.GetUserSetOptionalVarFromString(cmd, popSubjectFormatFlagName,
		popSubjectFormatEnvKey))

	switch format {
	case "":
		format = pop.SubjectFormatDID
	case pop.SubjectFormatDID, pop.SubjectFormatThumbprint:
	default:
		return nil, fmt.Errorf("unsupported pop subject format: %s", format)
	}

	return &popParameters{
		audience:      audience,
		challengeTTL:  challengeTTL,
		subjectFormat: format,
	}, nil
}

func getTracingParams(cmd *cobra.Command) (*tracingParams, error) {
	serviceName := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingServiceNameFlagName, tracingServiceNameEnvKey)
	if serviceName == "" {
		serviceName = defaultTracingServiceName
	}

	exporter := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingProviderFlagName, tracingProviderEnvKey)
	if !tracing.IsExporterSupported(exporter) {
		return nil, fmt.Errorf("unsupported tracing provider: %s", exporter)
	}

	sampleRatio, err := cmdutils.GetFloat(cmd, tracingSampleRatioFlagName, tracingSampleRatioEnvKey, 1)
	if err != nil {
		return nil, err
	}

	if sampleRatio < 0 || sampleRatio > 1 {
		return nil, fmt.Errorf("invalid value for %s [%v]: must be between 0 and 1", tracingSampleRatioFlagName,
			sampleRatio)
	}

	return &tracingParams{
		exporter:    exporter,
		serviceName: serviceName,
		sampleRatio: sampleRatio,
	}, nil
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().String(apiKeyFlagName, "", apiKeyFlagUsage)
	startCmd.Flags().String(tenantsFilePathFlagName, "", tenantsFilePathFlagUsage)
	startCmd.Flags().StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "", common.LogLevelPrefixFlagUsage)

	common.Flags(startCmd)

	startCmd.Flags().String(kmsTypeFlagName, "", kmsTypeFlagUsage)
	startCmd.Flags().String(kmsEndpointFlagName, "", kmsEndpointFlagUsage)
	startCmd.Flags().String(kmsRegionFlagName, "", kmsRegionFlagUsage)

	startCmd.Flags().String(tlsSystemCertPoolFlagName, "", tlsSystemCertPoolFlagUsage)
	startCmd.Flags().StringSlice(tlsCACertsFlagName, []string{}, tlsCACertsFlagUsage)
	startCmd.Flags().String(tlsCertificateFlagName, "", tlsCertificateFlagUsage)
	startCmd.Flags().String(tlsKeyFlagName, "", tlsKeyFlagUsage)

	startCmd.Flags().String(ledgerURLFlagName, "", ledgerURLFlagUsage)
	startCmd.Flags().String(revocationRegistryFlagName, "", revocationRegistryFlagUsage)
	startCmd.Flags().String(statusListSizeFlagName, "", statusListSizeFlagUsage)
	startCmd.Flags().String(registrarURLFlagName, "", registrarURLFlagUsage)

	startCmd.Flags().String(schemaCacheTypeFlagName, "", schemaCacheTypeFlagUsage)
	startCmd.Flags().String(schemaCacheTTLFlagName, "", schemaCacheTTLFlagUsage)
	startCmd.Flags().StringSlice(redisAddrsFlagName, []string{}, redisAddrsFlagUsage)
	startCmd.Flags().String(redisMasterNameFlagName, "", redisMasterNameFlagUsage)
	startCmd.Flags().String(redisPasswordFlagName, "", redisPasswordFlagUsage)
	startCmd.Flags().String(s3BucketFlagName, "", s3BucketFlagUsage)
	startCmd.Flags().String(s3RegionFlagName, "", s3RegionFlagUsage)
	startCmd.Flags().String(s3EndpointFlagName, "", s3EndpointFlagUsage)

	startCmd.Flags().String(accessTokenTTLFlagName, "", accessTokenTTLFlagUsage)
	startCmd.Flags().String(popChallengeTTLFlagName, "", popChallengeTTLFlagUsage)
	startCmd.Flags().String(popAudienceFlagName, "", popAudienceFlagUsage)
	startCmd.Flags().String(popSubjectFormatFlagName, "", popSubjectFormatFlagUsage)

	startCmd.Flags().String(issuingTopicFlagName, "", issuingTopicFlagUsage)
	startCmd.Flags().String(metricsProviderFlagName, "", allowedMetricsProviderFlagUsage)
	startCmd.Flags().String(tracingProviderFlagName, "", tracingProviderFlagUsage)
	startCmd.Flags().String(tracingServiceNameFlagName, "", tracingServiceNameFlagUsage)
	startCmd.Flags().String(tracingSampleRatioFlagName, "", tracingSampleRatioFlagUsage)
}

func splitAPIKeys(value string) []string {
	return lo.Compact(lo.Map(strings.Split(value, ","), func(k string, _ int) string {
		return strings.TrimSpace(k)
	}))
}
