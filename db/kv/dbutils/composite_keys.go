// Copyright 2025 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

package dbutils

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/weaveVM/wvm-reth-sub000/common"
	"github.com/weaveVM/wvm-reth-sub000/common/length"
)

var ErrInvalidSize = errors.New("key or value has an invalid size")

// AddrHash + KeyHash
// Only for trie
func GenerateCompositeTrieKey(addressHash common.Hash, seckey common.Hash) []byte {
	compositeKey := make([]byte, 0, length.Hash+length.Hash)
	compositeKey = append(compositeKey, addressHash[:]...)
	compositeKey = append(compositeKey, seckey[:]...)
	return compositeKey
}

func ParseCompositeTrieKey(compositeKey []byte) (addressHash common.Hash, seckey common.Hash, err error) {
	if len(compositeKey) != length.Hash+length.Hash {
		return addressHash, seckey, fmt.Errorf("%w: composite key of %d bytes", ErrInvalidSize, len(compositeKey))
	}
	copy(addressHash[:], compositeKey[:length.Hash])
	copy(seckey[:], compositeKey[length.Hash:])
	return addressHash, seckey, nil
}

// GenerateStoragePrefix - every storage key of the account starts with it
func GenerateStoragePrefix(addressHash common.Hash) []byte {
	prefix := make([]byte, length.Hash)
	copy(prefix, addressHash[:])
	return prefix
}

// EncodeStorageValue - big endian without leading zeroes, zero value encodes to empty slice
func EncodeStorageValue(v *uint256.Int) []byte {
	return v.Bytes()
}

func DecodeStorageValue(enc []byte) (*uint256.Int, error) {
	if len(enc) > length.Hash {
		return nil, fmt.Errorf("%w: storage value of %d bytes", ErrInvalidSize, len(enc))
	}
	return new(uint256.Int).SetBytes(enc), nil
}
