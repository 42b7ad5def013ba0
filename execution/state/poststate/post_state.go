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

package poststate

import (
	"github.com/holiman/uint256"

	"github.com/weaveVM/wvm-reth-sub000/common"
	"github.com/weaveVM/wvm-reth-sub000/execution/commitment/prefixset"
	"github.com/weaveVM/wvm-reth-sub000/execution/types/accounts"
)

// HashedPostState is the mutation-time overlay: account and storage changes
// produced by executing one or more blocks, keyed by hashed address and
// hashed slot, not yet committed to the hashed state tables.
//
// Common pattern:
//
//	ps := poststate.NewHashedPostState()
//	ps.UpdateAccount(addrHash, &acc)
//	ps.SetStorage(addrHash, slotHash, value)
//	sorted := ps.Sorted() // snapshot for one trie pass
//
// HashedPostState is not safe for concurrent use.
type HashedPostState struct {
	// nil account means the account was destroyed
	Accounts map[common.Hash]*accounts.Account
	Storages map[common.Hash]*HashedStorage
}

func NewHashedPostState() *HashedPostState {
	return &HashedPostState{
		Accounts: make(map[common.Hash]*accounts.Account),
		Storages: make(map[common.Hash]*HashedStorage),
	}
}

// UpdateAccount records an upsert. The account is copied.
func (ps *HashedPostState) UpdateAccount(hashedAddress common.Hash, acc *accounts.Account) {
	ps.Accounts[hashedAddress] = acc.Clone()
}

// DestroyAccount marks the account as destroyed. A destroyed account loses its
// whole storage, so the storage is wiped as well.
func (ps *HashedPostState) DestroyAccount(hashedAddress common.Hash) {
	ps.Accounts[hashedAddress] = nil
	ps.WipeStorage(hashedAddress)
}

// Storage returns the storage overlay of an address, creating an empty,
// non-wiped one on first use.
func (ps *HashedPostState) Storage(hashedAddress common.Hash) *HashedStorage {
	s, ok := ps.Storages[hashedAddress]
	if !ok {
		s = NewHashedStorage(false)
		ps.Storages[hashedAddress] = s
	}
	return s
}

// SetStorage records a slot write. A zero value deletes the slot.
func (ps *HashedPostState) SetStorage(hashedAddress, hashedSlot common.Hash, value *uint256.Int) {
	ps.Storage(hashedAddress).Set(hashedSlot, value)
}

// WipeStorage marks the whole storage of the address as deleted. Slots
// written so far for this address are dropped, later writes are kept.
func (ps *HashedPostState) WipeStorage(hashedAddress common.Hash) {
	s := ps.Storage(hashedAddress)
	s.Wiped = true
	clear(s.Storage)
}

func (ps *HashedPostState) IsEmpty() bool {
	return len(ps.Accounts) == 0 && len(ps.Storages) == 0
}

// Extend applies other on top of ps: other's changes are more recent.
func (ps *HashedPostState) Extend(other *HashedPostState) {
	for hashedAddress, acc := range other.Accounts {
		if acc == nil {
			ps.Accounts[hashedAddress] = nil
			continue
		}
		ps.Accounts[hashedAddress] = acc.Clone()
	}
	for hashedAddress, storage := range other.Storages {
		if existing, ok := ps.Storages[hashedAddress]; ok {
			existing.Extend(storage)
			continue
		}
		ps.Storages[hashedAddress] = storage.Clone()
	}
}

func (ps *HashedPostState) Clone() *HashedPostState {
	c := NewHashedPostState()
	c.Extend(ps)
	return c
}

// Sorted builds the query-time snapshot. The result shares no memory with ps.
func (ps *HashedPostState) Sorted() *HashedPostStateSorted {
	sorted := &HashedPostStateSorted{
		accounts:  make([]accountEntry, 0, len(ps.Accounts)),
		destroyed: make(map[common.Hash]struct{}),
		storages:  make(map[common.Hash]*HashedStorageSorted, len(ps.Storages)),
	}
	for hashedAddress, acc := range ps.Accounts {
		if acc == nil {
			sorted.destroyed[hashedAddress] = struct{}{}
			continue
		}
		e := accountEntry{key: hashedAddress}
		e.account.Copy(acc)
		sorted.accounts = append(sorted.accounts, e)
	}
	sortEntries(sorted.accounts)

	for hashedAddress, storage := range ps.Storages {
		sorted.storages[hashedAddress] = storage.Sorted()
	}
	return sorted
}

// PrefixSets returns the trie paths touched by this post-state.
func (ps *HashedPostState) PrefixSets() prefixset.TriePrefixSets {
	accountPrefixSet := prefixset.NewMutable()
	destroyed := make(map[common.Hash]struct{})
	for hashedAddress, acc := range ps.Accounts {
		accountPrefixSet.InsertHash(hashedAddress)
		if acc == nil {
			destroyed[hashedAddress] = struct{}{}
		}
	}

	storagePrefixSets := make(map[common.Hash]prefixset.PrefixSet, len(ps.Storages))
	for hashedAddress, storage := range ps.Storages {
		accountPrefixSet.InsertHash(hashedAddress)
		var slots *prefixset.Mutable
		if storage.Wiped {
			slots = prefixset.NewAll()
		} else {
			slots = prefixset.NewMutable()
		}
		for hashedSlot := range storage.Storage {
			slots.InsertHash(hashedSlot)
		}
		storagePrefixSets[hashedAddress] = slots.Freeze()
	}

	return prefixset.TriePrefixSets{
		AccountPrefixSet:  accountPrefixSet.Freeze(),
		StoragePrefixSets: storagePrefixSets,
		DestroyedAccounts: destroyed,
	}
}

// HashedStorage is the storage overlay of one account.
type HashedStorage struct {
	// Wiped means every slot persisted before this overlay is gone.
	Wiped bool
	// zero value means the slot was deleted
	Storage map[common.Hash]uint256.Int
}

func NewHashedStorage(wiped bool) *HashedStorage {
	return &HashedStorage{Wiped: wiped, Storage: make(map[common.Hash]uint256.Int)}
}

func (s *HashedStorage) Set(hashedSlot common.Hash, value *uint256.Int) {
	s.Storage[hashedSlot] = *value
}

// Extend applies other on top of s.
func (s *HashedStorage) Extend(other *HashedStorage) {
	if other.Wiped {
		s.Wiped = true
		clear(s.Storage)
	}
	for hashedSlot, value := range other.Storage {
		s.Storage[hashedSlot] = value
	}
}

func (s *HashedStorage) Clone() *HashedStorage {
	c := NewHashedStorage(s.Wiped)
	for hashedSlot, value := range s.Storage {
		c.Storage[hashedSlot] = value
	}
	return c
}

// Sorted partitions the slots into surviving values and zero-valued tombstones.
func (s *HashedStorage) Sorted() *HashedStorageSorted {
	sorted := &HashedStorageSorted{
		wiped:     s.Wiped,
		slots:     make([]slotEntry, 0, len(s.Storage)),
		zeroSlots: make(map[common.Hash]struct{}),
	}
	for hashedSlot, value := range s.Storage {
		if value.IsZero() {
			sorted.zeroSlots[hashedSlot] = struct{}{}
			continue
		}
		sorted.slots = append(sorted.slots, slotEntry{key: hashedSlot, value: value})
	}
	sortEntries(sorted.slots)
	return sorted
}
