// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"encoding/hex"
	"github.com/pkg/errors"
	"strings"
)

func Validate(cfg DeploymentConfig) error {
	if cfg.NetworkName() == "" {
		return errors.Errorf("%s must not be empty", NETWORK_NAME)
	}

	if key := cfg.DeployerPrivateKey(); key != "" {
		decoded, err := hex.DecodeString(strings.TrimPrefix(key, "0x"))
		if err != nil {
			return errors.Wrapf(err, "%s is not a hex string", DEPLOYER_PRIVATE_KEY)
		}
		if len(decoded) != 32 {
			return errors.Errorf("%s must be 32 bytes, got %d", DEPLOYER_PRIVATE_KEY, len(decoded))
		}
	}

	if cfg.DeploymentsDbPath() != "" && cfg.DeploymentsDbOpenTimeout() <= 0 {
		return errors.Errorf("%s must be positive when %s is set", DEPLOYMENTS_DB_OPEN_TIMEOUT, DEPLOYMENTS_DB_PATH)
	}

	if cfg.LoggerHttpEndpoint() != "" && cfg.LoggerBulkSize() == 0 {
		return errors.Errorf("%s must be positive when %s is set", LOGGER_BULK_SIZE, LOGGER_HTTP_ENDPOINT)
	}

	return nil
}
