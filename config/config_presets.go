// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import "time"

// all other configs are variations from the production one
func defaultProductionConfig() mutableDeploymentConfig {
	cfg := emptyConfig()

	cfg.SetString(NETWORK_NAME, "mainnet")

	// a fresh deployer key is generated when none is configured
	cfg.SetString(DEPLOYER_PRIVATE_KEY, "")
	cfg.SetUint32(DEPLOYER_NONCE, 0)

	// empty path disables the registry
	cfg.SetString(DEPLOYMENTS_DB_PATH, "")
	cfg.SetDuration(DEPLOYMENTS_DB_OPEN_TIMEOUT, 5*time.Second)

	cfg.SetDuration(LOGGER_FILE_TRUNCATION_INTERVAL, 24*time.Hour)
	cfg.SetUint32(LOGGER_BULK_SIZE, 100)
	cfg.SetBool(LOGGER_FULL_LOG, false)

	cfg.SetBool(METRICS_REPORT_ENABLED, true)

	return cfg
}

// config for deploying to a named network
func ForProduction(networkName string) mutableDeploymentConfig {
	cfg := defaultProductionConfig()

	if networkName != "" {
		cfg.SetString(NETWORK_NAME, networkName)
	}
	return cfg
}

// config for in-process deployments done by tests, registry disabled
func ForTests(deployerPrivateKey string) mutableDeploymentConfig {
	cfg := defaultProductionConfig()

	cfg.SetString(NETWORK_NAME, "hardhat")
	cfg.SetString(DEPLOYER_PRIVATE_KEY, deployerPrivateKey)
	cfg.SetDuration(DEPLOYMENTS_DB_OPEN_TIMEOUT, 1*time.Second)
	cfg.SetBool(LOGGER_FULL_LOG, true)
	cfg.SetBool(METRICS_REPORT_ENABLED, false)

	return cfg
}
