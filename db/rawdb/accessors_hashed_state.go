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

package rawdb

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/weaveVM/wvm-reth-sub000/common"
	"github.com/weaveVM/wvm-reth-sub000/db/kv"
	"github.com/weaveVM/wvm-reth-sub000/db/kv/dbutils"
	"github.com/weaveVM/wvm-reth-sub000/execution/state/poststate"
	"github.com/weaveVM/wvm-reth-sub000/execution/types/accounts"
)

var errStopIteration = errors.New("stop iteration")

// ReadHashedAccount returns nil if the account is not stored.
func ReadHashedAccount(tx kv.Getter, addrHash common.Hash) (*accounts.Account, error) {
	enc, err := tx.GetOne(kv.HashedAccounts, addrHash[:])
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, nil
	}
	acc, err := accounts.Decode(enc)
	if err != nil {
		return nil, fmt.Errorf("decode account %s: %w", addrHash, err)
	}
	return acc, nil
}

func WriteHashedAccount(tx kv.Putter, addrHash common.Hash, acc *accounts.Account) error {
	return tx.Put(kv.HashedAccounts, addrHash[:], accounts.SerialiseV3(acc))
}

func DeleteHashedAccount(tx kv.Putter, addrHash common.Hash) error {
	return tx.Delete(kv.HashedAccounts, addrHash[:])
}

// ReadHashedStorage returns nil if the slot is not stored.
func ReadHashedStorage(tx kv.Getter, addrHash, slot common.Hash) (*uint256.Int, error) {
	enc, err := tx.GetOne(kv.HashedStorage, dbutils.GenerateCompositeTrieKey(addrHash, slot))
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, nil
	}
	return dbutils.DecodeStorageValue(enc)
}

// WriteHashedStorage deletes the slot when value is zero: zero slots are never stored.
func WriteHashedStorage(tx kv.Putter, addrHash, slot common.Hash, value *uint256.Int) error {
	k := dbutils.GenerateCompositeTrieKey(addrHash, slot)
	if value.IsZero() {
		return tx.Delete(kv.HashedStorage, k)
	}
	return tx.Put(kv.HashedStorage, k, dbutils.EncodeStorageValue(value))
}

// ClearHashedStorage removes every slot of the account and returns how many were removed.
func ClearHashedStorage(tx kv.RwTx, addrHash common.Hash) (int, error) {
	prefix := dbutils.GenerateStoragePrefix(addrHash)
	var keys [][]byte
	if err := tx.ForEach(kv.HashedStorage, prefix, func(k, _ []byte) error {
		if !bytes.HasPrefix(k, prefix) {
			return errStopIteration
		}
		keys = append(keys, common.Copy(k))
		return nil
	}); err != nil && !errors.Is(err, errStopIteration) {
		return 0, err
	}
	for _, k := range keys {
		if err := tx.Delete(kv.HashedStorage, k); err != nil {
			return 0, err
		}
	}
	return len(keys), nil
}

// ApplyPostState commits a sorted post-state: destroyed accounts are removed
// with their storage, wiped storages are cleared before the new slots are
// written and zero-valued slots are deleted.
func ApplyPostState(tx kv.RwTx, ps *poststate.HashedPostStateSorted) (common.WriteStats, error) {
	var stats common.WriteStats

	for _, addrHash := range ps.DestroyedAccounts() {
		existed, err := tx.Has(kv.HashedAccounts, addrHash[:])
		if err != nil {
			return stats, err
		}
		if err := DeleteHashedAccount(tx, addrHash); err != nil {
			return stats, err
		}
		if existed {
			stats.AccountsDeleted++
		}
		n, err := ClearHashedStorage(tx, addrHash)
		if err != nil {
			return stats, err
		}
		stats.SlotsDeleted += common.StorageCounter(n)
	}

	for i := 0; i < ps.AccountsLen(); i++ {
		addrHash, acc := ps.AccountAt(i)
		enc := accounts.SerialiseV3(&acc)
		if err := tx.Put(kv.HashedAccounts, addrHash[:], enc); err != nil {
			return stats, err
		}
		stats.AccountsPut++
		stats.BytesPut += common.StorageSize(len(addrHash) + len(enc))
	}

	for _, addrHash := range ps.StorageAddresses() {
		storage, _ := ps.Storage(addrHash)
		if storage.Wiped() {
			n, err := ClearHashedStorage(tx, addrHash)
			if err != nil {
				return stats, err
			}
			stats.SlotsDeleted += common.StorageCounter(n)
		} else {
			for _, slot := range storage.ZeroValuedSlots() {
				k := dbutils.GenerateCompositeTrieKey(addrHash, slot)
				existed, err := tx.Has(kv.HashedStorage, k)
				if err != nil {
					return stats, err
				}
				if !existed {
					continue
				}
				if err := tx.Delete(kv.HashedStorage, k); err != nil {
					return stats, err
				}
				stats.SlotsDeleted++
			}
		}
		for i := 0; i < storage.SlotsLen(); i++ {
			slot, value := storage.SlotAt(i)
			k := dbutils.GenerateCompositeTrieKey(addrHash, slot)
			v := dbutils.EncodeStorageValue(&value)
			if err := tx.Put(kv.HashedStorage, k, v); err != nil {
				return stats, err
			}
			stats.SlotsPut++
			stats.BytesPut += common.StorageSize(len(k) + len(v))
		}
	}
	return stats, nil
}
