// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

// Package registry keeps a record of every token deployment in a bolt file, keyed by token address.
package registry

import (
	"encoding/json"
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
	"math/big"
	"time"
)

var deploymentsBucket = []byte("deployments")

var ErrDeploymentNotFound = errors.New("deployment not found")

type Record struct {
	Id           string                      `json:"id"`
	Network      string                      `json:"network"`
	TokenAddress common.Address              `json:"tokenAddress"`
	Deployer     common.Address              `json:"deployer"`
	Nonce        uint64                      `json:"nonce"`
	TotalSupply  *big.Int                    `json:"totalSupply"`
	Balances     map[common.Address]*big.Int `json:"balances"`
	DeployedAt   primitives.TimestampNano    `json:"deployedAt"`
}

type Registry struct {
	db *bolt.DB
}

func Open(path string, timeout time.Duration) (*Registry, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: timeout})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open deployments db %s", path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(deploymentsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "failed to create bucket in deployments db %s", path)
	}

	return &Registry{db: db}, nil
}

func (r *Registry) Close() error {
	return r.db.Close()
}

// Put stores the record, replacing any earlier deployment to the same token address.
func (r *Registry) Put(record *Record) error {
	encoded, err := json.Marshal(record)
	if err != nil {
		return errors.Wrapf(err, "failed to encode deployment of %s", record.TokenAddress.Hex())
	}

	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(deploymentsBucket).Put(record.TokenAddress.Bytes(), encoded)
	})
}

func (r *Registry) Get(tokenAddress common.Address) (*Record, error) {
	var record *Record
	err := r.db.View(func(tx *bolt.Tx) error {
		encoded := tx.Bucket(deploymentsBucket).Get(tokenAddress.Bytes())
		if encoded == nil {
			return errors.Wrapf(ErrDeploymentNotFound, "token address %s", tokenAddress.Hex())
		}

		var err error
		record, err = decode(encoded)
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// List returns all records ordered by token address.
func (r *Registry) List() ([]*Record, error) {
	var records []*Record
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(deploymentsBucket).ForEach(func(k, v []byte) error {
			record, err := decode(v)
			if err != nil {
				return err
			}
			records = append(records, record)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func decode(encoded []byte) (*Record, error) {
	record := &Record{}
	if err := json.Unmarshal(encoded, record); err != nil {
		return nil, errors.Wrap(err, "failed to decode deployment record")
	}
	return record, nil
}
