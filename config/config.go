// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import "time"

type DeploymentConfig interface {
	LoggerConfig

	// deployer
	DeployerPrivateKey() string
	DeployerNonce() uint64

	// registry
	DeploymentsDbPath() string
	DeploymentsDbOpenTimeout() time.Duration

	MetricsReportEnabled() bool
}

type LoggerConfig interface {
	NetworkName() string
	LoggerFullLog() bool
	LoggerHttpEndpoint() string
	LoggerBulkSize() uint32
	LoggerFileTruncationInterval() time.Duration
}

type mutableDeploymentConfig interface {
	DeploymentConfig
	Set(key string, value DeploymentConfigValue) mutableDeploymentConfig
	SetDuration(key string, value time.Duration) mutableDeploymentConfig
	SetUint32(key string, value uint32) mutableDeploymentConfig
	SetString(key string, value string) mutableDeploymentConfig
	SetBool(key string, value bool) mutableDeploymentConfig
	Modify(newValues ...DeploymentConfigKeyValue)
}

type DeploymentConfigKeyValue struct {
	Key   string
	Value DeploymentConfigValue
}

type DeploymentConfigValue struct {
	Uint32Value   uint32
	DurationValue time.Duration
	StringValue   string
	BoolValue     bool
}
