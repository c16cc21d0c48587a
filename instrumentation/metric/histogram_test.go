// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestHistogram_RecordsSamplesInMillis(t *testing.T) {
	h := newHistogram("Some.Latency", (10 * time.Second).Nanoseconds())
	h.Record((2 * time.Millisecond).Nanoseconds())
	h.Record((4 * time.Millisecond).Nanoseconds())

	e := h.export()
	require.EqualValues(t, 2, e.Samples)
	require.InDelta(t, 2, e.Min, 0.1)
	require.InDelta(t, 4, e.Max, 0.1)
	require.NotNil(t, e.LogRow())
}

func TestHistogram_EmptyHistogramIsNotReported(t *testing.T) {
	h := newHistogram("Some.Latency", (10 * time.Second).Nanoseconds())

	require.Nil(t, h.export().LogRow())
}

func TestHistogram_RotateStartsNewWindow(t *testing.T) {
	h := newHistogram("Some.Latency", (10 * time.Second).Nanoseconds())
	h.RecordSince(time.Now())
	require.EqualValues(t, 1, h.CurrentSamples())

	h.Rotate()

	require.EqualValues(t, 0, h.CurrentSamples())
}
