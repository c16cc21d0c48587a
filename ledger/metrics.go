// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package ledger

import (
	"github.com/orbs-network/amze-token-go/instrumentation/metric"
	"time"
)

type metrics struct {
	succeeded      *metric.Gauge
	rejected       *metric.Gauge
	accounts       *metric.Gauge
	rate           *metric.Rate
	processingTime *metric.Histogram
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		succeeded:      m.NewGauge("Ledger.Transfer.Succeeded.Count"),
		rejected:       m.NewGauge("Ledger.Transfer.Rejected.Count"),
		accounts:       m.NewGauge("Ledger.Accounts.Count"),
		rate:           m.NewRate("Ledger.Transfer.Rate"),
		processingTime: m.NewLatency("Ledger.Transfer.ProcessingTime.Millis", 5*time.Second),
	}
}
