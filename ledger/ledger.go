// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

// Package ledger holds the balances of the AMZE fungible token.
//
// A Ledger is created once per deployment: the constructing account becomes the owner and is
// credited with the entire fixed supply. Afterwards balances only move through Transfer, so the
// sum of all balances always equals TotalSupply.
package ledger

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/amze-token-go/instrumentation/logfields"
	"github.com/orbs-network/amze-token-go/instrumentation/metric"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"math/big"
	"sync"
	"time"
)

const (
	TokenName   = "AMZE Token"
	TokenSymbol = "AMZE"
)

var LogTag = log.Service("ledger")

// ErrInsufficientBalance is returned by Transfer when the source balance cannot cover the amount.
// The message matches the revert reason of the deployed token.
var ErrInsufficientBalance = errors.New("Not enough tokens")

type Ledger struct {
	logger   log.Logger
	metrics  *metrics
	handlers []TransferHandler

	owner       common.Address
	totalSupply *big.Int

	mu struct {
		sync.RWMutex
		balances map[common.Address]*big.Int
	}
}

type Option func(l *Ledger)

func WithLogger(logger log.Logger) Option {
	return func(l *Ledger) {
		l.logger = logger.WithTags(LogTag)
	}
}

func WithMetrics(factory metric.Factory) Option {
	return func(l *Ledger) {
		l.metrics = newMetrics(factory)
	}
}

func WithTransferHandler(handler TransferHandler) Option {
	return func(l *Ledger) {
		l.handlers = append(l.handlers, handler)
	}
}

func NewLedger(owner common.Address, opts ...Option) *Ledger {
	l := &Ledger{
		logger:      log.GetLogger(LogTag).WithFilters(log.DiscardAll()),
		owner:       owner,
		totalSupply: InitialSupply(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.metrics == nil {
		l.metrics = newMetrics(metric.NewRegistry())
	}

	l.mu.balances = map[common.Address]*big.Int{
		owner: new(big.Int).Set(l.totalSupply),
	}
	l.metrics.accounts.Update(1)

	l.logger.Info("minted initial supply", logfields.Account("owner", owner), logfields.Amount("total-supply", l.totalSupply))
	l.notify(&TransferEvent{From: common.Address{}, To: owner, Amount: new(big.Int).Set(l.totalSupply)})

	return l
}

func (l *Ledger) Name() string {
	return TokenName
}

func (l *Ledger) Symbol() string {
	return TokenSymbol
}

func (l *Ledger) Decimals() uint8 {
	return Decimals
}

func (l *Ledger) Owner() common.Address {
	return l.owner
}

func (l *Ledger) TotalSupply() *big.Int {
	return new(big.Int).Set(l.totalSupply)
}

func (l *Ledger) BalanceOf(account common.Address) *big.Int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.balanceOf(account)
}

// Transfer moves amount from one account to another. Nothing is written unless the whole
// transfer succeeds.
func (l *Ledger) Transfer(from common.Address, to common.Address, amount *big.Int) error {
	start := time.Now()
	defer l.metrics.processingTime.RecordSince(start)

	if err := l.transfer(from, to, amount); err != nil {
		l.metrics.rejected.Inc()
		l.logger.Info("transfer rejected", log.Error(err), logfields.Account("from", from), logfields.Account("to", to))
		return err
	}

	l.metrics.succeeded.Inc()
	l.metrics.rate.Measure(1)
	l.notify(&TransferEvent{From: from, To: to, Amount: new(big.Int).Set(amount)})

	return nil
}

func (l *Ledger) transfer(from common.Address, to common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return errors.Wrapf(ErrInsufficientBalance, "transfer amount %v from %s is not a valid amount", amount, from.Hex())
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fromBalance := l.balanceOf(from)
	if fromBalance.Cmp(amount) < 0 {
		return errors.Wrapf(ErrInsufficientBalance, "transfer of %s from %s to %s failed since balance is only %s", amount, from.Hex(), to.Hex(), fromBalance)
	}

	if from == to {
		return nil
	}

	l.write(from, fromBalance.Sub(fromBalance, amount))
	toBalance := l.balanceOf(to)
	l.write(to, toBalance.Add(toBalance, amount))
	l.metrics.accounts.Update(int64(len(l.mu.balances)))

	return nil
}

// Snapshot returns a copy of every non-zero balance.
func (l *Ledger) Snapshot() map[common.Address]*big.Int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	res := make(map[common.Address]*big.Int, len(l.mu.balances))
	for account, balance := range l.mu.balances {
		res[account] = new(big.Int).Set(balance)
	}
	return res
}

// must be called under lock; returns a copy
func (l *Ledger) balanceOf(account common.Address) *big.Int {
	if balance, ok := l.mu.balances[account]; ok {
		return new(big.Int).Set(balance)
	}
	return new(big.Int)
}

// must be called under write lock; zero balances are dropped so absence keeps meaning zero
func (l *Ledger) write(account common.Address, balance *big.Int) {
	if balance.Sign() == 0 {
		delete(l.mu.balances, account)
		return
	}
	l.mu.balances[account] = balance
}
