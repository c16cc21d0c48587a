// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package ledger

import (
	"github.com/orbs-network/amze-token-go/instrumentation/metric"
	"github.com/orbs-network/amze-token-go/test/with"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestTransfer_UpdatesMetrics(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		registry := metric.NewRegistry()
		h := newHarness(parent, WithMetrics(registry))

		require.EqualValues(t, 1, registry.Get("Ledger.Accounts.Count").(*metric.Gauge).Value())

		require.NoError(t, h.ledger.Transfer(h.owner, h.addr1, Tokens(1)))
		require.NoError(t, h.ledger.Transfer(h.owner, h.addr2, Tokens(1)))
		require.Error(t, h.ledger.Transfer(h.addr1, h.addr2, Tokens(2)))

		require.EqualValues(t, 2, registry.Get("Ledger.Transfer.Succeeded.Count").(*metric.Gauge).Value())
		require.EqualValues(t, 1, registry.Get("Ledger.Transfer.Rejected.Count").(*metric.Gauge).Value())
		require.EqualValues(t, 3, registry.Get("Ledger.Accounts.Count").(*metric.Gauge).Value())
		require.EqualValues(t, 3, registry.Get("Ledger.Transfer.ProcessingTime.Millis").(*metric.Histogram).CurrentSamples())
		require.NotNil(t, registry.Get("Ledger.Transfer.Rate"))
	})
}

func TestTransfer_AccountsGaugeShrinksWhenAccountEmptied(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		registry := metric.NewRegistry()
		h := newHarness(parent, WithMetrics(registry))

		require.NoError(t, h.ledger.Transfer(h.owner, h.addr1, InitialSupply()))

		require.EqualValues(t, 1, registry.Get("Ledger.Accounts.Count").(*metric.Gauge).Value())
	})
}
