// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package registry

import (
	"fmt"
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/amze-token-go/test"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"math/big"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func withRegistry(t *testing.T, f func(path string, r *Registry)) {
	dir, err := ioutil.TempDir("", "amze-registry")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "deployments.db")
	r, err := Open(path, time.Second)
	require.NoError(t, err)
	defer r.Close()

	f(path, r)
}

func someRecord(tokenAddress string) *Record {
	deployer := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	supply, _ := new(big.Int).SetString("54000000000000000000000000", 10)
	return &Record{
		Id:           "ab",
		Network:      "hardhat",
		TokenAddress: common.HexToAddress(tokenAddress),
		Deployer:     deployer,
		Nonce:        0,
		TotalSupply:  supply,
		Balances:     map[common.Address]*big.Int{deployer: supply},
		DeployedAt:   1573746957000000000,
	}
}

func TestRegistry_PutThenGet(t *testing.T) {
	withRegistry(t, func(path string, r *Registry) {
		record := someRecord("0x5FbDB2315678afecb367f032d93F642f64180aa3")
		require.NoError(t, r.Put(record))

		stored, err := r.Get(record.TokenAddress)
		require.NoError(t, err)
		test.RequireCmpEqual(t, record, stored)
	})
}

func TestRegistry_GetUnknownAddress(t *testing.T) {
	withRegistry(t, func(path string, r *Registry) {
		_, err := r.Get(common.HexToAddress("0x01"))

		require.Error(t, err)
		require.Equal(t, ErrDeploymentNotFound, errors.Cause(err))
	})
}

func TestRegistry_PutReplacesSameTokenAddress(t *testing.T) {
	withRegistry(t, func(path string, r *Registry) {
		first := someRecord("0x01")
		second := someRecord("0x01")
		second.Network = "goerli"

		require.NoError(t, r.Put(first))
		require.NoError(t, r.Put(second))

		records, err := r.List()
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Equal(t, "goerli", records[0].Network)
	})
}

func TestRegistry_ListIsOrderedByTokenAddress(t *testing.T) {
	withRegistry(t, func(path string, r *Registry) {
		require.NoError(t, r.Put(someRecord("0x03")))
		require.NoError(t, r.Put(someRecord("0x01")))
		require.NoError(t, r.Put(someRecord("0x02")))

		records, err := r.List()
		require.NoError(t, err)
		require.Len(t, records, 3)
		require.Equal(t, common.HexToAddress("0x01"), records[0].TokenAddress)
		require.Equal(t, common.HexToAddress("0x02"), records[1].TokenAddress)
		require.Equal(t, common.HexToAddress("0x03"), records[2].TokenAddress)
	})
}

func TestRegistry_SurvivesReopen(t *testing.T) {
	withRegistry(t, func(path string, r *Registry) {
		require.NoError(t, r.Put(someRecord("0x01")))
		require.NoError(t, r.Close())

		reopened, err := Open(path, time.Second)
		require.NoError(t, err)
		defer reopened.Close()

		records, err := reopened.List()
		require.NoError(t, err)
		require.Len(t, records, 1)
	})
}

func TestOpen_TimesOutWhileLockedByAnotherHandle(t *testing.T) {
	withRegistry(t, func(path string, r *Registry) {
		_, err := Open(path, 50*time.Millisecond)
		require.Error(t, err)
	})
}

func TestRegistry_ConcurrentPutAndList(t *testing.T) {
	withRegistry(t, func(path string, r *Registry) {
		var wg sync.WaitGroup
		errs := make(chan error, 40)
		for i := 1; i <= 20; i++ {
			wg.Add(2)
			go func(i int) {
				defer wg.Done()
				errs <- r.Put(someRecord(fmt.Sprintf("0x%02x", i)))
			}(i)
			go func() {
				defer wg.Done()
				_, err := r.List()
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}
		records, err := r.List()
		require.NoError(t, err)
		require.Len(t, records, 20)
	})
}
