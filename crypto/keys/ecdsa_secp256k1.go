// Copyright 2019 the amze-token-go authors
// This file is part of the amze-token-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package keys

import (
	"crypto/ecdsa"
	"encoding/hex"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"strings"
)

const (
	ECDSA_SECP256K1_PUBLIC_KEY_SIZE_BYTES  = 64
	ECDSA_SECP256K1_PRIVATE_KEY_SIZE_BYTES = 32
)

// EcdsaSecp256K1KeyPair is the key of a signer; its Account is the holder identity used by the ledger.
type EcdsaSecp256K1KeyPair struct {
	privateKey *ecdsa.PrivateKey
	account    common.Address
}

func NewEcdsaSecp256K1KeyPair(privateKey *ecdsa.PrivateKey) *EcdsaSecp256K1KeyPair {
	return &EcdsaSecp256K1KeyPair{
		privateKey: privateKey,
		account:    crypto.PubkeyToAddress(privateKey.PublicKey),
	}
}

func NewEcdsaSecp256K1KeyPairFromHex(privateKeyHex string) (*EcdsaSecp256K1KeyPair, error) {
	privateKeyHex = strings.TrimPrefix(privateKeyHex, "0x")
	if len(privateKeyHex) != 2*ECDSA_SECP256K1_PRIVATE_KEY_SIZE_BYTES {
		return nil, errors.Errorf("ecdsa secp256k1 private key must be %d hex bytes, got %d characters", ECDSA_SECP256K1_PRIVATE_KEY_SIZE_BYTES, len(privateKeyHex))
	}

	privateKey, err := crypto.HexToECDSA(privateKeyHex)
	if err != nil {
		return nil, errors.Wrap(err, "cannot decode ecdsa secp256k1 private key")
	}

	return NewEcdsaSecp256K1KeyPair(privateKey), nil
}

func GenerateEcdsaSecp256K1Key() (*EcdsaSecp256K1KeyPair, error) {
	privateKey, err := crypto.GenerateKey()
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create new ecdsa secp256k1 key")
	}
	return NewEcdsaSecp256K1KeyPair(privateKey), nil
}

func (k *EcdsaSecp256K1KeyPair) Account() common.Address {
	return k.account
}

// PublicKey is the uncompressed key without the 0x04 prefix.
func (k *EcdsaSecp256K1KeyPair) PublicKey() []byte {
	return crypto.FromECDSAPub(&k.privateKey.PublicKey)[1:]
}

func (k *EcdsaSecp256K1KeyPair) PrivateKey() []byte {
	return crypto.FromECDSA(k.privateKey)
}

func (k *EcdsaSecp256K1KeyPair) PublicKeyHex() string {
	return hex.EncodeToString(k.PublicKey())
}

func (k *EcdsaSecp256K1KeyPair) PrivateKeyHex() string {
	return hex.EncodeToString(k.PrivateKey())
}
