// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package builders

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/amze-token-go/crypto/keys"
	testKeys "github.com/orbs-network/amze-token-go/test/crypto/keys"
)

// Signers returns n deterministic signers, like getSigners on a development network.
// The first signer is conventionally the owner.
func Signers(n int) []*keys.EcdsaSecp256K1KeyPair {
	res := make([]*keys.EcdsaSecp256K1KeyPair, n)
	for i := range res {
		res[i] = testKeys.EcdsaSecp256K1KeyPairForTests(i)
	}
	return res
}

func Accounts(n int) []common.Address {
	signers := Signers(n)
	res := make([]common.Address, n)
	for i, signer := range signers {
		res[i] = signer.Account()
	}
	return res
}
