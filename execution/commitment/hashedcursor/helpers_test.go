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

package hashedcursor

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"github.com/weaveVM/wvm-reth-sub000/common"
	"github.com/weaveVM/wvm-reth-sub000/execution/types/accounts"
)

// sliceCursor is an in-memory backing cursor over sorted keys.
type sliceCursor[V any] struct {
	keys []common.Hash
	vals []V
	pos  int
}

func newSliceCursor[V any](m map[common.Hash]V) *sliceCursor[V] {
	c := &sliceCursor[V]{}
	for k := range m {
		c.keys = append(c.keys, k)
	}
	slices.SortFunc(c.keys, func(a, b common.Hash) int { return a.Cmp(b) })
	for _, k := range c.keys {
		c.vals = append(c.vals, m[k])
	}
	return c
}

func (c *sliceCursor[V]) current() (common.Hash, V, error) {
	if c.pos >= len(c.keys) {
		var empty V
		return common.Hash{}, empty, nil
	}
	return c.keys[c.pos], c.vals[c.pos], nil
}

func (c *sliceCursor[V]) Seek(key common.Hash) (common.Hash, V, error) {
	c.pos, _ = slices.BinarySearchFunc(c.keys, key, func(a, b common.Hash) int { return a.Cmp(b) })
	return c.current()
}

func (c *sliceCursor[V]) Next() (common.Hash, V, error) {
	if c.pos < len(c.keys) {
		c.pos++
	}
	return c.current()
}

func (c *sliceCursor[V]) IsStorageEmpty() (bool, error) { return len(c.keys) == 0, nil }

func (c *sliceCursor[V]) Close() {}

type testBacking struct {
	accounts map[common.Hash]*accounts.Account
	storages map[common.Hash]map[common.Hash]*uint256.Int
}

func newTestBacking() *testBacking {
	return &testBacking{
		accounts: map[common.Hash]*accounts.Account{},
		storages: map[common.Hash]map[common.Hash]*uint256.Int{},
	}
}

func (b *testBacking) setAccount(k common.Hash, nonce uint64) {
	b.accounts[k] = &accounts.Account{Nonce: nonce}
}

func (b *testBacking) setSlot(addr, slot common.Hash, v uint64) {
	if b.storages[addr] == nil {
		b.storages[addr] = map[common.Hash]*uint256.Int{}
	}
	b.storages[addr][slot] = uint256.NewInt(v)
}

func (b *testBacking) HashedAccountCursor() (HashedCursor, error) {
	return newSliceCursor(b.accounts), nil
}

func (b *testBacking) HashedStorageCursor(hashedAddress common.Hash) (HashedStorageCursor, error) {
	return newSliceCursor(b.storages[hashedAddress]), nil
}

type accountKV struct {
	key   common.Hash
	nonce uint64
}

type slotKV struct {
	key   common.Hash
	value uint64
}

func collectAccounts(t *testing.T, c HashedCursor, from common.Hash) []accountKV {
	t.Helper()
	var res []accountKV
	require.NoError(t, ForEachAccount(c, from, func(k common.Hash, acc *accounts.Account) error {
		res = append(res, accountKV{k, acc.Nonce})
		return nil
	}))
	return res
}

func collectSlots(t *testing.T, c HashedStorageCursor, from common.Hash) []slotKV {
	t.Helper()
	var res []slotKV
	require.NoError(t, ForEachStorage(c, from, func(k common.Hash, v *uint256.Int) error {
		res = append(res, slotKV{k, v.Uint64()})
		return nil
	}))
	return res
}

func h(b byte) common.Hash { return common.Hash{b} }
