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
	"golang.org/x/exp/slices"

	"github.com/weaveVM/wvm-reth-sub000/common"
	"github.com/weaveVM/wvm-reth-sub000/execution/types/accounts"
)

type keyed interface {
	sortKey() common.Hash
}

type accountEntry struct {
	key     common.Hash
	account accounts.Account
}

func (e accountEntry) sortKey() common.Hash { return e.key }

type slotEntry struct {
	key   common.Hash
	value uint256.Int
}

func (e slotEntry) sortKey() common.Hash { return e.key }

func sortEntries[E keyed](entries []E) {
	slices.SortFunc(entries, func(a, b E) int { return a.sortKey().Cmp(b.sortKey()) })
}

// seekEntries returns the index of the first entry with key >= seek.
func seekEntries[E keyed](entries []E, seek common.Hash) int {
	idx, _ := slices.BinarySearchFunc(entries, seek, func(e E, k common.Hash) int { return e.sortKey().Cmp(k) })
	return idx
}

func sortedKeys(set map[common.Hash]struct{}) []common.Hash {
	keys := make([]common.Hash, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b common.Hash) int { return a.Cmp(b) })
	return keys
}

// HashedPostStateSorted is the immutable, query-time form of a
// HashedPostState. It is built once by HashedPostState.Sorted and only
// exposes read accessors, so it can back any number of cursors for the
// whole duration of a trie pass.
type HashedPostStateSorted struct {
	accounts  []accountEntry // strictly ascending, surviving upserts only
	destroyed map[common.Hash]struct{}
	storages  map[common.Hash]*HashedStorageSorted
}

func (s *HashedPostStateSorted) AccountsLen() int { return len(s.accounts) }

// AccountAt returns the i-th surviving account in ascending key order.
// The account is a copy.
func (s *HashedPostStateSorted) AccountAt(i int) (common.Hash, accounts.Account) {
	return s.accounts[i].key, s.accounts[i].account
}

// SeekAccount returns the index of the first surviving account with key >= hashedAddress,
// or AccountsLen() if there is none.
func (s *HashedPostStateSorted) SeekAccount(hashedAddress common.Hash) int {
	return seekEntries(s.accounts, hashedAddress)
}

func (s *HashedPostStateSorted) IsDestroyed(hashedAddress common.Hash) bool {
	_, ok := s.destroyed[hashedAddress]
	return ok
}

func (s *HashedPostStateSorted) DestroyedLen() int { return len(s.destroyed) }

// DestroyedAccounts returns the destroyed addresses in ascending order.
func (s *HashedPostStateSorted) DestroyedAccounts() []common.Hash {
	return sortedKeys(s.destroyed)
}

// Storage returns the storage overlay of an address, if the post-state has one.
func (s *HashedPostStateSorted) Storage(hashedAddress common.Hash) (*HashedStorageSorted, bool) {
	st, ok := s.storages[hashedAddress]
	return st, ok
}

// StorageAddresses returns the addresses with a storage overlay in ascending order.
func (s *HashedPostStateSorted) StorageAddresses() []common.Hash {
	addrs := make([]common.Hash, 0, len(s.storages))
	for k := range s.storages {
		addrs = append(addrs, k)
	}
	slices.SortFunc(addrs, func(a, b common.Hash) int { return a.Cmp(b) })
	return addrs
}

func (s *HashedPostStateSorted) IsEmpty() bool {
	return len(s.accounts) == 0 && len(s.destroyed) == 0 && len(s.storages) == 0
}

// HashedStorageSorted is the immutable, query-time storage overlay of one account.
type HashedStorageSorted struct {
	wiped     bool
	slots     []slotEntry // strictly ascending, non-zero values only
	zeroSlots map[common.Hash]struct{}
}

func (s *HashedStorageSorted) Wiped() bool { return s.wiped }

func (s *HashedStorageSorted) SlotsLen() int { return len(s.slots) }

// SlotAt returns the i-th non-zero slot in ascending key order.
func (s *HashedStorageSorted) SlotAt(i int) (common.Hash, uint256.Int) {
	return s.slots[i].key, s.slots[i].value
}

// SeekSlot returns the index of the first non-zero slot with key >= hashedSlot,
// or SlotsLen() if there is none.
func (s *HashedStorageSorted) SeekSlot(hashedSlot common.Hash) int {
	return seekEntries(s.slots, hashedSlot)
}

// IsZeroValued is true when the slot was explicitly set to zero, i.e. deleted.
func (s *HashedStorageSorted) IsZeroValued(hashedSlot common.Hash) bool {
	_, ok := s.zeroSlots[hashedSlot]
	return ok
}

func (s *HashedStorageSorted) ZeroValuedLen() int { return len(s.zeroSlots) }

// ZeroValuedSlots returns the deleted slots in ascending order.
func (s *HashedStorageSorted) ZeroValuedSlots() []common.Hash {
	return sortedKeys(s.zeroSlots)
}
