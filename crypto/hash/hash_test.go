// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package hash

import (
	"github.com/stretchr/testify/require"
	"testing"
)

var someData = []byte("testing")

const (
	ExpectedKeccak256 = "5f16f4c7f149ac4f9510d9cf8cf384038ad348b3bcdc01915f95de12df9d1b02"
	// topic of the standard ERC20 Transfer event
	ExpectedTransferTopic = "ddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"
)

func TestCalcKeccak256(t *testing.T) {
	h := CalcKeccak256(someData)
	require.Equal(t, KECCAK256_HASH_SIZE_BYTES, len(h))
	require.Equal(t, ExpectedKeccak256, h.String(), "result should match")
}

func TestCalcKeccak256_MultipleChunks(t *testing.T) {
	h := CalcKeccak256(someData[:3], someData[3:])
	require.Equal(t, ExpectedKeccak256, h.String(), "result should match")
}

func TestCalcKeccak256_TransferEventSignature(t *testing.T) {
	h := CalcKeccak256([]byte("Transfer(address,address,uint256)"))
	require.Equal(t, ExpectedTransferTopic, h.String(), "result should match")
}

func BenchmarkCalcKeccak256(b *testing.B) {
	for i := 0; i < b.N; i++ {
		CalcKeccak256(someData)
	}
}
