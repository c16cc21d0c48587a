// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

// Package deployment creates the token ledger for a deploying account and reports the result.
package deployment

import (
	"context"
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/amze-token-go/config"
	"github.com/orbs-network/amze-token-go/crypto/digest"
	"github.com/orbs-network/amze-token-go/crypto/keys"
	"github.com/orbs-network/amze-token-go/deployment/registry"
	"github.com/orbs-network/amze-token-go/instrumentation"
	"github.com/orbs-network/amze-token-go/instrumentation/logfields"
	"github.com/orbs-network/amze-token-go/instrumentation/metric"
	"github.com/orbs-network/amze-token-go/ledger"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"io"
	"time"
)

var LogTag = log.Service("deployment")

type Deployment struct {
	Id           primitives.Keccak256
	Ledger       *ledger.Ledger
	Deployer     *keys.EcdsaSecp256K1KeyPair
	TokenAddress common.Address
	Network      string
	DeployedAt   primitives.TimestampNano
}

type Deployer struct {
	config   config.DeploymentConfig
	logger   log.Logger
	report   *report
	metrics  metric.Registry
	handlers []ledger.TransferHandler
	now      func() time.Time
}

type Option func(d *Deployer)

func WithMetricRegistry(registry metric.Registry) Option {
	return func(d *Deployer) {
		d.metrics = registry
	}
}

func WithTransferHandler(handler ledger.TransferHandler) Option {
	return func(d *Deployer) {
		d.handlers = append(d.handlers, handler)
	}
}

func WithClock(now func() time.Time) Option {
	return func(d *Deployer) {
		d.now = now
	}
}

func NewDeployer(cfg config.DeploymentConfig, logger log.Logger, out io.Writer, opts ...Option) *Deployer {
	d := &Deployer{
		config:  cfg,
		logger:  logger.WithTags(LogTag),
		report:  newReport(out),
		metrics: metric.NewRegistry(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Deployer) Deploy(ctx context.Context) (*Deployment, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "deployment aborted before it started")
	}

	deployer, err := d.deployerKey()
	if err != nil {
		return nil, err
	}
	account := deployer.Account()

	if err := d.report.deployingWith(account); err != nil {
		return nil, err
	}

	l := ledger.NewLedger(account, d.ledgerOptions()...)

	nonce := d.config.DeployerNonce()
	tokenAddress := digest.CalcTokenAddress(account, nonce)
	d.metrics.NewText("Deployment.TokenAddress", tokenAddress.Hex())
	if err := d.report.tokenAddress(tokenAddress); err != nil {
		return nil, err
	}
	if err := d.report.tokenBalance(l.BalanceOf(account)); err != nil {
		return nil, err
	}

	deployment := &Deployment{
		Id:           digest.CalcDeploymentId(account, tokenAddress, nonce),
		Ledger:       l,
		Deployer:     deployer,
		TokenAddress: tokenAddress,
		Network:      d.config.NetworkName(),
		DeployedAt:   primitives.TimestampNano(d.now().UnixNano()),
	}

	if err := d.record(ctx, deployment, nonce); err != nil {
		return nil, err
	}

	d.logger.Info("token deployed", instrumentation.DeploymentReportTag,
		log.Stringable("deployment-id", deployment.Id),
		logfields.Account("deployer", account),
		logfields.TokenAddress(tokenAddress),
		logfields.Network(deployment.Network),
		logfields.TimestampNano("deployed-at", deployment.DeployedAt))

	if d.config.MetricsReportEnabled() {
		d.metrics.Report(d.logger)
	}

	return deployment, nil
}

func (d *Deployer) deployerKey() (*keys.EcdsaSecp256K1KeyPair, error) {
	if privateKey := d.config.DeployerPrivateKey(); privateKey != "" {
		keyPair, err := keys.NewEcdsaSecp256K1KeyPairFromHex(privateKey)
		if err != nil {
			return nil, errors.Wrap(err, "configured deployer key is invalid")
		}
		return keyPair, nil
	}

	d.logger.Info("no deployer key configured, generating a new one")
	return keys.GenerateEcdsaSecp256K1Key()
}

func (d *Deployer) ledgerOptions() []ledger.Option {
	opts := []ledger.Option{ledger.WithLogger(d.logger), ledger.WithMetrics(d.metrics)}
	for _, handler := range d.handlers {
		opts = append(opts, ledger.WithTransferHandler(handler))
	}
	return opts
}

func (d *Deployer) record(ctx context.Context, deployment *Deployment, nonce uint64) error {
	path := d.config.DeploymentsDbPath()
	if path == "" {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "deployment aborted before it was recorded")
	}

	reg, err := registry.Open(path, d.config.DeploymentsDbOpenTimeout())
	if err != nil {
		return err
	}
	defer reg.Close()

	err = reg.Put(&registry.Record{
		Id:           deployment.Id.String(),
		Network:      deployment.Network,
		TokenAddress: deployment.TokenAddress,
		Deployer:     deployment.Deployer.Account(),
		Nonce:        nonce,
		TotalSupply:  deployment.Ledger.TotalSupply(),
		Balances:     deployment.Ledger.Snapshot(),
		DeployedAt:   deployment.DeployedAt,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to record deployment of %s", deployment.TokenAddress.Hex())
	}

	d.logger.Info("deployment recorded", logfields.TokenAddress(deployment.TokenAddress), log.String("db-path", path))
	return nil
}
