// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"fmt"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"math/big"
	"testing"
)

// amounts are compared by value; big.Int has no Equal method of its own
var bigIntComparer = cmp.Comparer(func(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
})

func AssertCmpEqual(t testing.TB, expected interface{}, actual interface{}, msgAndArgs ...interface{}) bool {
	if !cmp.Equal(expected, actual, bigIntComparer) {
		diff := cmp.Diff(expected, actual, bigIntComparer)
		return assert.Fail(t, fmt.Sprintf("Not equal: \n"+
			"expected: %v\n"+
			"actual  : %v\n%s", expected, actual, diff), msgAndArgs...)
	}
	return true
}

func RequireCmpEqual(t testing.TB, expected interface{}, actual interface{}, msgAndArgs ...interface{}) {
	if AssertCmpEqual(t, expected, actual, msgAndArgs...) {
		return
	}
	t.FailNow()
}

// RequireSum fails unless the values add up to total, e.g. balances to the supply.
func RequireSum(t testing.TB, total *big.Int, values map[common.Address]*big.Int, msgAndArgs ...interface{}) {
	sum := new(big.Int)
	for _, v := range values {
		sum.Add(sum, v)
	}
	if sum.Cmp(total) != 0 {
		assert.Fail(t, fmt.Sprintf("sum %s does not match total %s", sum, total), msgAndArgs...)
		t.FailNow()
	}
}
