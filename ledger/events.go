// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package ledger

import (
	"fmt"
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/amze-token-go/crypto/hash"
	"github.com/orbs-network/scribe/log"
	"math/big"
)

const TransferEventSignature = "Transfer(address,address,uint256)"

var TransferEventTopic = hash.CalcKeccak256([]byte(TransferEventSignature))

// TransferEvent is emitted for every successful transfer, and once on construction for the mint
// (From is the zero address).
type TransferEvent struct {
	From   common.Address
	To     common.Address
	Amount *big.Int
}

func (e *TransferEvent) IsMint() bool {
	return e.From == (common.Address{})
}

func (e *TransferEvent) String() string {
	return fmt.Sprintf("%s{from:%s,to:%s,amount:%s}", TransferEventSignature, e.From.Hex(), e.To.Hex(), e.Amount)
}

type TransferHandler interface {
	HandleTransfer(event *TransferEvent)
}

// called outside the lock, handlers may read the ledger
func (l *Ledger) notify(event *TransferEvent) {
	for _, handler := range l.handlers {
		handler.HandleTransfer(event)
	}
	l.logger.Info("transfer event emitted", log.Stringable("event", event), log.Stringable("topic", TransferEventTopic))
}
