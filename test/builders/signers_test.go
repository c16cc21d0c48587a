// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package builders

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestSigners_AreDeterministic(t *testing.T) {
	first := Accounts(3)
	second := Accounts(3)

	require.Equal(t, first, second)
	require.NotEqual(t, first[0], first[1])
	require.NotEqual(t, first[1], first[2])
}

func TestSigners_ReturnsRequestedCount(t *testing.T) {
	require.Len(t, Signers(5), 5)
	require.Empty(t, Signers(0))
}
