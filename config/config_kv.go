// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import "time"

const (
	NETWORK_NAME = "NETWORK_NAME"

	DEPLOYER_PRIVATE_KEY = "DEPLOYER_PRIVATE_KEY"
	DEPLOYER_NONCE       = "DEPLOYER_NONCE"

	DEPLOYMENTS_DB_PATH         = "DEPLOYMENTS_DB_PATH"
	DEPLOYMENTS_DB_OPEN_TIMEOUT = "DEPLOYMENTS_DB_OPEN_TIMEOUT"

	LOGGER_FULL_LOG                 = "LOGGER_FULL_LOG"
	LOGGER_HTTP_ENDPOINT            = "LOGGER_HTTP_ENDPOINT"
	LOGGER_BULK_SIZE                = "LOGGER_BULK_SIZE"
	LOGGER_FILE_TRUNCATION_INTERVAL = "LOGGER_FILE_TRUNCATION_INTERVAL"

	METRICS_REPORT_ENABLED = "METRICS_REPORT_ENABLED"
)

type config struct {
	kv map[string]DeploymentConfigValue
}

func emptyConfig() mutableDeploymentConfig {
	return &config{
		kv: make(map[string]DeploymentConfigValue),
	}
}

func (c *config) Set(key string, value DeploymentConfigValue) mutableDeploymentConfig {
	c.kv[key] = value
	return c
}

func (c *config) SetDuration(key string, value time.Duration) mutableDeploymentConfig {
	c.kv[key] = DeploymentConfigValue{DurationValue: value}
	return c
}

func (c *config) SetUint32(key string, value uint32) mutableDeploymentConfig {
	c.kv[key] = DeploymentConfigValue{Uint32Value: value}
	return c
}

func (c *config) SetString(key string, value string) mutableDeploymentConfig {
	c.kv[key] = DeploymentConfigValue{StringValue: value}
	return c
}

func (c *config) SetBool(key string, value bool) mutableDeploymentConfig {
	c.kv[key] = DeploymentConfigValue{BoolValue: value}
	return c
}

func (c *config) NetworkName() string {
	return c.kv[NETWORK_NAME].StringValue
}

func (c *config) DeployerPrivateKey() string {
	return c.kv[DEPLOYER_PRIVATE_KEY].StringValue
}

func (c *config) DeployerNonce() uint64 {
	return uint64(c.kv[DEPLOYER_NONCE].Uint32Value)
}

func (c *config) DeploymentsDbPath() string {
	return c.kv[DEPLOYMENTS_DB_PATH].StringValue
}

func (c *config) DeploymentsDbOpenTimeout() time.Duration {
	return c.kv[DEPLOYMENTS_DB_OPEN_TIMEOUT].DurationValue
}

func (c *config) LoggerFullLog() bool {
	return c.kv[LOGGER_FULL_LOG].BoolValue
}

func (c *config) LoggerHttpEndpoint() string {
	return c.kv[LOGGER_HTTP_ENDPOINT].StringValue
}

func (c *config) LoggerBulkSize() uint32 {
	return c.kv[LOGGER_BULK_SIZE].Uint32Value
}

func (c *config) LoggerFileTruncationInterval() time.Duration {
	return c.kv[LOGGER_FILE_TRUNCATION_INTERVAL].DurationValue
}

func (c *config) MetricsReportEnabled() bool {
	return c.kv[METRICS_REPORT_ENABLED].BoolValue
}
