// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package logfields

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/scribe/log"
	"math/big"
)

func Account(key string, account common.Address) *log.Field {
	return log.String(key, account.Hex())
}

func TokenAddress(address common.Address) *log.Field {
	return log.String("token-address", address.Hex())
}

// amounts are unbounded so they are logged as base-10 strings
func Amount(key string, amount *big.Int) *log.Field {
	if amount == nil {
		return log.String(key, "nil")
	}
	return log.String(key, amount.String())
}

func TimestampNano(key string, value primitives.TimestampNano) *log.Field {
	return &log.Field{Key: key, Int: int64(value), Type: log.TimeType}
}

func Network(value string) *log.Field {
	return log.String("network", value)
}
