// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"fmt"
	"github.com/codahale/hdrhistogram"
	"github.com/orbs-network/scribe/log"
	"sync"
	"sync/atomic"
	"time"
)

type Histogram struct {
	namedMetric
	overflowCount int64

	mu struct {
		sync.Mutex
		histo *hdrhistogram.WindowedHistogram
	}
}

type histogramExport struct {
	Name    string
	Min     float64
	P50     float64
	P95     float64
	P99     float64
	Max     float64
	Avg     float64
	Samples int64
}

func newHistogram(name string, max int64) *Histogram {
	h := &Histogram{namedMetric: namedMetric{name: name}}
	h.mu.histo = hdrhistogram.NewWindowed(5, 1, max, 2)
	return h
}

func (h *Histogram) RecordSince(t time.Time) {
	h.Record(int64(time.Since(t)))
}

func (h *Histogram) Record(measurement int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.mu.histo.Current.RecordValue(measurement); err != nil {
		atomic.AddInt64(&h.overflowCount, 1)
	}
}

func (h *Histogram) CurrentSamples() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.mu.histo.Current.TotalCount()
}

func (h *Histogram) Rotate() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.mu.histo.Rotate()
}

func (h *Histogram) String() string {
	e := h.export()

	return fmt.Sprintf(
		"metric %s: [min=%f, p50=%f, p95=%f, p99=%f, max=%f, avg=%f, samples=%d, overflows=%d]\n",
		h.name, e.Min, e.P50, e.P95, e.P99, e.Max, e.Avg, e.Samples, atomic.LoadInt64(&h.overflowCount))
}

func (h *Histogram) Export() exportedMetric {
	return h.export()
}

func (h *Histogram) export() histogramExport {
	h.mu.Lock()
	defer h.mu.Unlock()

	histo := h.mu.histo.Current

	return histogramExport{
		h.name,
		toMillis(histo.Min()),
		toMillis(histo.ValueAtQuantile(50)),
		toMillis(histo.ValueAtQuantile(95)),
		toMillis(histo.ValueAtQuantile(99)),
		toMillis(histo.Max()),
		floatToMillis(histo.Mean()),
		histo.TotalCount(),
	}
}

func (h histogramExport) LogRow() []*log.Field {
	if h.Samples == 0 {
		return nil
	}

	return []*log.Field{
		log.String("metric", h.Name),
		log.String("metric-type", "histogram"),
		log.Float64("min", h.Min),
		log.Float64("p50", h.P50),
		log.Float64("p95", h.P95),
		log.Float64("p99", h.P99),
		log.Float64("max", h.Max),
		log.Float64("avg", h.Avg),
		log.Int64("samples", h.Samples),
	}
}

func toMillis(nanoseconds int64) float64 {
	return floatToMillis(float64(nanoseconds))
}

func floatToMillis(nanoseconds float64) float64 {
	return nanoseconds / 1e+6
}
