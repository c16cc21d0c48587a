// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/orbs-network/amze-token-go/config"
	"github.com/orbs-network/amze-token-go/deployment"
	"github.com/orbs-network/amze-token-go/instrumentation"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	logger := instrumentation.GetBootstrapCrashLogger()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("unexpected error during deployment", log.Error(errors.Errorf("unknown error: %v", r)))
			os.Exit(8)
		}
	}()

	silentLog := flag.Bool("silent", false, "disable log output to stderr")
	pathToLog := flag.String("log", "", "path/to/deploy.log")
	version := flag.Bool("version", false, "returns information about version")

	var configFiles config.FilesPaths
	flag.Var(&configFiles, "config", "path/to/config.json (may be repeated, later files override earlier ones)")

	flag.Parse()

	if *version {
		fmt.Println(config.GetVersion())
		return
	}

	cfg, err := config.GetDeploymentConfigFromFiles(configFiles)
	if err != nil {
		logger.Error("error reading configuration", log.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger = instrumentation.GetLogger(*pathToLog, *silentLog, cfg)

	ctx, stop := deployContext()
	defer stop()

	if _, err := deployment.NewDeployer(cfg, logger, os.Stdout).Deploy(ctx); err != nil {
		logger.Error("deployment failed", log.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// deployContext is cancelled on SIGINT or SIGTERM so a deployment stops before recording.
func deployContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
