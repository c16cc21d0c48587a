// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package instrumentation

import (
	"github.com/orbs-network/amze-token-go/config"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func logToTempFile(t *testing.T, f func(path string)) {
	dir, err := ioutil.TempDir("", "amze-logger")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	f(filepath.Join(dir, "deploy.log"))
}

func TestGetLogger_KeepsOnlyReportAndErrorsByDefault(t *testing.T) {
	cfg := config.ForProduction("hardhat")
	logToTempFile(t, func(path string) {
		logger := GetLogger(path, true, cfg)

		logger.Info("routine line")
		logger.Info("report line", DeploymentReportTag)
		logger.Error("error line")

		contents, err := ioutil.ReadFile(path)
		require.NoError(t, err)
		require.NotContains(t, string(contents), "routine line")
		require.Contains(t, string(contents), "report line")
		require.Contains(t, string(contents), "error line")
		require.Contains(t, string(contents), `"network":"hardhat"`)
	})
}

func TestGetLogger_FullLogKeepsEverything(t *testing.T) {
	cfg := config.ForTests("")
	logToTempFile(t, func(path string) {
		logger := GetLogger(path, true, cfg)

		logger.Info("routine line")

		contents, err := ioutil.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(contents), "routine line")
	})
}
