// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package rand

import (
	"fmt"
	"github.com/orbs-network/go-mock"
	"github.com/stretchr/testify/require"
	"math/big"
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestWithRandLogsCorrectSeedAndTestName(t *testing.T) {
	seedPreference.mode = randModeTestClockSeed
	nlMock := NewNamedLoggerMock("MockName")
	var loggedSeed int64
	nlMock.When("Log", mock.Any).Call(func(message string) {
		var err error
		tokens := strings.Split(message, " ")
		loggedSeed, err = strconv.ParseInt(tokens[2], 0, 64)
		require.NoError(t, err, "expected third word in log message to be an int64 random seed")
		require.Equal(t, "(MockName)", tokens[3], "expected fourth word in log message to be the name of the test")
	}).Times(1)
	randUint := NewControlledRand(nlMock).Uint64()
	expectedRandUint := rand.New(rand.NewSource(loggedSeed)).Uint64()
	require.Equal(t, expectedRandUint, randUint, "expected ControlledRand to log the random seed used for random source")
	ok, err := nlMock.Verify()
	require.True(t, ok, "%v", err)
}

func TestWithExplicitRand(t *testing.T) {
	defer func() { seedPreference = randomPreference{} }()
	require.NoError(t, seedPreference.Set("1"))

	nlMock1 := NewNamedLoggerMock("MockName1")
	nlMock1.When("Log", mock.Any)
	nlMock2 := NewNamedLoggerMock("MockName2")
	nlMock2.When("Log", mock.Any)
	randUint1 := NewControlledRand(nlMock1).Uint64()
	randUint2 := NewControlledRand(nlMock2).Uint64()
	expectedRand := rand.New(rand.NewSource(1)).Uint64()
	require.Equal(t, expectedRand, randUint1, "expected explicit random seed to produce identical random values")
	require.Equal(t, expectedRand, randUint2, "expected explicit random seed to produce identical random values")
}

func TestWithLaunchClock(t *testing.T) {
	defer func() { seedPreference = randomPreference{} }()
	require.NoError(t, seedPreference.Set("launchClock"))
	require.True(t, seedPreference.seed <= time.Now().UTC().UnixNano())

	nlMock := NewNamedLoggerMock("MockName")
	nlMock.When("Log", mock.Any).Call(func(message string) {
		require.EqualValues(t, fmt.Sprintf("random seed %v (MockName)", seedPreference.seed), message, "expected NewControlledRand to log the launch clock")
	}).Times(1)
	NewControlledRand(nlMock)
	ok, err := nlMock.Verify()
	require.True(t, ok, "%v", err)
}

func TestRandomPreference_RejectsMalformedSeed(t *testing.T) {
	var pref randomPreference
	require.Error(t, pref.Set("not-a-number"))
	require.Equal(t, randModeTestClockSeed, pref.mode)
}

func TestAmountUpTo_StaysInRange(t *testing.T) {
	ctrlRand := NewControlledRand(t)
	max := big.NewInt(5)
	for i := 0; i < 200; i++ {
		amount := ctrlRand.AmountUpTo(max)
		require.True(t, amount.Sign() >= 0, "amount %s must not be negative", amount)
		require.True(t, amount.Cmp(max) <= 0, "amount %s must not exceed %s", amount, max)
	}
}
