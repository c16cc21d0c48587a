// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package deployment

import (
	"fmt"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"io"
	"math/big"
)

// report writes the plain text lines operators read off a deployment.
type report struct {
	out io.Writer
}

func newReport(out io.Writer) *report {
	return &report{out: out}
}

func (r *report) deployingWith(account common.Address) error {
	return r.println("Deploying contracts with the account:", account.Hex())
}

func (r *report) tokenAddress(address common.Address) error {
	return r.println("Token address:", address.Hex())
}

func (r *report) tokenBalance(balance *big.Int) error {
	return r.println("Token Balance:", balance.String())
}

func (r *report) println(label string, value string) error {
	if _, err := fmt.Fprintln(r.out, label, value); err != nil {
		return errors.Wrap(err, "failed to write deployment report")
	}
	return nil
}
