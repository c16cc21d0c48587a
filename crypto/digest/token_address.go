// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package digest

import (
	"encoding/binary"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/orbs-network/amze-token-go/crypto/hash"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
)

// CalcTokenAddress is the address a contract created by deployer with the given nonce is assigned.
func CalcTokenAddress(deployer common.Address, nonce uint64) common.Address {
	return crypto.CreateAddress(deployer, nonce)
}

func CalcDeploymentId(deployer common.Address, tokenAddress common.Address, nonce uint64) primitives.Keccak256 {
	nonceBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(nonceBytes, nonce)
	return hash.CalcKeccak256(deployer.Bytes(), tokenAddress.Bytes(), nonceBytes)
}
