// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package rand

import (
	"github.com/orbs-network/go-mock"
)

type namedLoggerMock struct {
	mock.Mock
	name string
}

func NewNamedLoggerMock(name string) *namedLoggerMock {
	return &namedLoggerMock{name: name}
}

func (m *namedLoggerMock) Log(args ...interface{}) {
	m.Called(args...)
}

func (m *namedLoggerMock) Name() string {
	return m.name
}
