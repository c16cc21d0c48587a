// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"encoding/json"
	"fmt"
	"github.com/pkg/errors"
	"io/ioutil"
	"os"
	"strings"
	"time"
)

// Mutate
func (c *config) Modify(newValues ...DeploymentConfigKeyValue) {
	for _, kv := range newValues {
		c.kv[kv.Key] = kv.Value
	}
}

func modifyFromJson(cfg mutableDeploymentConfig, source string) error {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(source), &data); err != nil {
		return err
	}

	if err := populateConfig(cfg, data); err != nil {
		return err
	}

	return nil
}

func convertKeyName(key string) string {
	return strings.ToUpper(strings.Replace(key, "-", "_", -1))
}

func populateConfig(cfg mutableDeploymentConfig, data map[string]interface{}) error {
	for key, value := range data {

		// keys are strings even when they look like durations
		if key == "deployer-private-key" || key == "network-name" || key == "deployments-db-path" {
			s, ok := value.(string)
			if !ok {
				return fmt.Errorf("could not decode value for config key %s: expected a string, got %v", key, value)
			}
			cfg.SetString(convertKeyName(key), s)
			continue
		} else if key == "deployer-nonce" || key == "logger-bulk-size" {
			f, ok := value.(float64)
			if !ok || f < 0 || f != float64(uint32(f)) {
				return fmt.Errorf("could not decode value for config key %s: expected a non-negative integer, got %v", key, value)
			}
			cfg.SetUint32(convertKeyName(key), uint32(f))
			continue
		}

		switch value.(type) {
		case bool:
			cfg.SetBool(convertKeyName(key), value.(bool))
		case float64:
			cfg.SetUint32(convertKeyName(key), uint32(value.(float64)))
		case string:
			if duration, decodeError := time.ParseDuration(value.(string)); decodeError != nil {
				cfg.SetString(convertKeyName(key), value.(string))
			} else {
				cfg.SetDuration(convertKeyName(key), duration)
			}
		}
	}

	return nil
}

// For main reading several files into one config

type FilesPaths []string

func (i *FilesPaths) String() string {
	return strings.Join(*i, ",")
}

func (i *FilesPaths) Set(value string) error {
	*i = append(*i, value)
	return nil
}

func GetDeploymentConfigFromFiles(configFiles FilesPaths) (DeploymentConfig, error) {
	cfg := ForProduction("")

	for _, configFile := range configFiles {
		if _, err := os.Stat(configFile); os.IsNotExist(err) {
			return nil, errors.Errorf("could not open config file: %s", err)
		}

		contents, err := ioutil.ReadFile(configFile)
		if err != nil {
			return nil, err
		}

		if err := modifyFromJson(cfg, string(contents)); err != nil {
			return nil, errors.Wrapf(err, "failed parsing config file %s", configFile)
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
