// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package ledger

import "github.com/orbs-network/go-mock"

type TransferHandlerMock struct {
	mock.Mock
}

func (m *TransferHandlerMock) HandleTransfer(event *TransferEvent) {
	m.Called(event)
}
