// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package ledger

import (
	"math/big"
)

const (
	Decimals                 = 18
	InitialSupplyWholeTokens = 54000000
)

var subUnitsPerToken = new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)

// Tokens scales a whole-token count to sub-units (whole * 10^Decimals).
func Tokens(whole int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(whole), subUnitsPerToken)
}

func InitialSupply() *big.Int {
	return Tokens(InitialSupplyWholeTokens)
}
