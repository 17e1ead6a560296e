/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/trustbloc/credential-agent/pkg/event/spi"
	"github.com/trustbloc/credential-agent/pkg/kms"
	"github.com/trustbloc/credential-agent/pkg/observability/tracing"
	"github.com/trustbloc/credential-agent/pkg/pop"
)

func TestGetStartupParameters(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cmd := GetStartCmd()
		require.NoError(t, cmd.ParseFlags(validArgs(t)))

		params, err := getStartupParameters(cmd)
		require.NoError(t, err)

		require.Equal(t, "localhost:8080", params.hostURL)
		require.Equal(t, []string{"api-key"}, params.apiKeys)
		require.Equal(t, kms.Local, params.kmsParameters.kmsType)
		require.Equal(t, defaultStatusListSize, params.ledgerParameters.listSize)
		require.Equal(t, "0xregistry", params.ledgerParameters.revocationRegistry)
		require.Empty(t, params.schemaCacheParams.cacheType)
		require.Equal(t, defaultSchemaCacheTTL, params.schemaCacheParams.ttl)
		require.Equal(t, 7*24*time.Hour, params.accessTokenTTL)
		require.Equal(t, "localhost:8080", params.popParameters.audience)
		require.Equal(t, defaultPoPChallengeTTL, params.popParameters.challengeTTL)
		require.Equal(t, pop.SubjectFormatDID, params.popParameters.subjectFormat)
		require.Equal(t, spi.IssuingEventTopic, params.issuingEventTopic)
		require.Empty(t, params.metricsProviderName)
		require.Equal(t, tracing.None, params.tracingParams.exporter)
		require.Equal(t, defaultTracingServiceName, params.tracingParams.serviceName)
		require.Equal(t, 1.0, params.tracingParams.sampleRatio)
		require.Equal(t, "mem://test", params.dbParameters.URL)
	})

	t.Run("overrides", func(t *testing.T) {
		cmd := GetStartCmd()
		require.NoError(t, cmd.ParseFlags(append(validArgs(t),
			"--"+kmsTypeFlagName, "aws",
			"--"+kmsRegionFlagName, "us-east-1",
			"--"+statusListSizeFlagName, "50",
			"--"+schemaCacheTypeFlagName, "s3",
			"--"+s3BucketFlagName, "schemas",
			"--"+schemaCacheTTLFlagName, "10m",
			"--"+accessTokenTTLFlagName, "1h",
			"--"+popAudienceFlagName, "https://agent.example.com",
			"--"+popSubjectFormatFlagName, "thumbprint",
			"--"+popChallengeTTLFlagName, "1m",
			"--"+issuingTopicFlagName, "custom-topic",
			"--"+metricsProviderFlagName, "prometheus",
			"--"+tracingProviderFlagName, tracing.Stdout,
			"--"+tracingServiceNameFlagName, "agent-1",
			"--"+tracingSampleRatioFlagName, "0.1",
		)))

		params, err := getStartupParameters(cmd)
		require.NoError(t, err)

		require.Equal(t, kms.AWS, params.kmsParameters.kmsType)
		require.Equal(t, "us-east-1", params.kmsParameters.kmsRegion)
		require.Equal(t, 50, params.ledgerParameters.listSize)
		require.Equal(t, schemaCacheS3, params.schemaCacheParams.cacheType)
		require.Equal(t, "schemas", params.schemaCacheParams.s3Bucket)
		require.Equal(t, 10*time.Minute, params.schemaCacheParams.ttl)
		require.Equal(t, time.Hour, params.accessTokenTTL)
		require.Equal(t, "https://agent.example.com", params.popParameters.audience)
		require.Equal(t, pop.SubjectFormatThumbprint, params.popParameters.subjectFormat)
		require.Equal(t, time.Minute, params.popParameters.challengeTTL)
		require.Equal(t, "custom-topic", params.issuingEventTopic)
		require.Equal(t, metricsProviderPrometheus, params.metricsProviderName)
		require.Equal(t, tracing.Stdout, params.tracingParams.exporter)
		require.Equal(t, "agent-1", params.tracingParams.serviceName)
		require.Equal(t, 0.1, params.tracingParams.sampleRatio)
	})

	t.Run("rotated api keys", func(t *testing.T) {
		cmd := GetStartCmd()
		require.NoError(t, cmd.ParseFlags(append(validArgs(t), "--"+apiKeyFlagName, "new-key, old-key,")))

		params, err := getStartupParameters(cmd)
		require.NoError(t, err)
		require.Equal(t, []string{"new-key", "old-key"}, params.apiKeys)
	})

	t.Run("redis schema cache", func(t *testing.T) {
		cmd := GetStartCmd()
		require.NoError(t, cmd.ParseFlags(append(validArgs(t),
			"--"+schemaCacheTypeFlagName, "redis",
			"--"+redisAddrsFlagName, "redis-1:6379,redis-2:6379",
			"--"+redisMasterNameFlagName, "master",
		)))

		params, err := getStartupParameters(cmd)
		require.NoError(t, err)
		require.Equal(t, []string{"redis-1:6379", "redis-2:6379"}, params.schemaCacheParams.redisAddrs)
		require.Equal(t, "master", params.schemaCacheParams.redisMasterName)
	})
}

func TestGetStartupParametersErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		error string
	}{
		{
			name:  "unsupported kms type",
			args:  []string{"--" + kmsTypeFlagName, "web"},
			error: "unsupported kms type: web",
		},
		{
			name:  "unsupported schema cache",
			args:  []string{"--" + schemaCacheTypeFlagName, "memcached"},
			error: "unsupported schema cache type: memcached",
		},
		{
			name:  "redis cache without addresses",
			args:  []string{"--" + schemaCacheTypeFlagName, "redis"},
			error: "redis-addrs is required by the redis schema cache",
		},
		{
			name:  "s3 cache without bucket",
			args:  []string{"--" + schemaCacheTypeFlagName, "s3"},
			error: "schema-cache-s3-bucket (command line flag)",
		},
		{
			name:  "unsupported pop subject format",
			args:  []string{"--" + popSubjectFormatFlagName, "jwk"},
			error: "unsupported pop subject format: jwk",
		},
		{
			name:  "unsupported metrics provider",
			args:  []string{"--" + metricsProviderFlagName, "statsd"},
			error: "unsupported metrics provider: statsd",
		},
		{
			name:  "unsupported tracing provider",
			args:  []string{"--" + tracingProviderFlagName, "ZIPKIN"},
			error: "unsupported tracing provider: ZIPKIN",
		},
		{
			name:  "sample ratio out of range",
			args:  []string{"--" + tracingSampleRatioFlagName, "1.5"},
			error: "invalid value for tracing-sample-ratio [1.5]: must be between 0 and 1",
		},
		{
			name:  "non positive status list size",
			args:  []string{"--" + statusListSizeFlagName, "0"},
			error: "invalid value for status-list-size [0]: must be positive",
		},
		{
			name:  "invalid access token ttl",
			args:  []string{"--" + accessTokenTTLFlagName, "7d"},
			error: "access-token-ttl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := GetStartCmd()
			require.NoError(t, cmd.ParseFlags(append(validArgs(t), tt.args...)))

			_, err := getStartupParameters(cmd)
			require.ErrorContains(t, err, tt.error)
		})
	}

	t.Run("missing ledger url", func(t *testing.T) {
		cmd := GetStartCmd()
		require.NoError(t, cmd.ParseFlags([]string{
			"--" + hostURLFlagName, "localhost:8080",
			"--" + apiKeyFlagName, "api-key",
			"--" + tenantsFilePathFlagName, "tenants.json",
			"--" + "database-url", "mem://test",
		}))

		_, err := getStartupParameters(cmd)
		require.ErrorContains(t, err,
			"Neither ledger-url (command line flag) nor CREDENTIAL_AGENT_LEDGER_URL (environment variable) have been set.")
	})
}
