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
	"fmt"

	"github.com/holiman/uint256"

	"github.com/weaveVM/wvm-reth-sub000/common"
	"github.com/weaveVM/wvm-reth-sub000/common/length"
	"github.com/weaveVM/wvm-reth-sub000/db/kv"
	"github.com/weaveVM/wvm-reth-sub000/db/kv/dbutils"
	"github.com/weaveVM/wvm-reth-sub000/execution/commitment/hashedcursor"
	"github.com/weaveVM/wvm-reth-sub000/execution/types/accounts"
)

// HashedCursorFactory reads hashed accounts and storage of one transaction.
// Cursors it returns are valid until the transaction ends.
type HashedCursorFactory struct {
	tx kv.Tx
}

var _ hashedcursor.HashedCursorFactory = (*HashedCursorFactory)(nil)

func NewHashedCursorFactory(tx kv.Tx) *HashedCursorFactory {
	return &HashedCursorFactory{tx: tx}
}

func (f *HashedCursorFactory) HashedAccountCursor() (hashedcursor.HashedCursor, error) {
	c, err := f.tx.Cursor(kv.HashedAccounts)
	if err != nil {
		return nil, err
	}
	return &accountCursor{c: c}, nil
}

func (f *HashedCursorFactory) HashedStorageCursor(hashedAddress common.Hash) (hashedcursor.HashedStorageCursor, error) {
	c, err := f.tx.Cursor(kv.HashedStorage)
	if err != nil {
		return nil, err
	}
	return &storageCursor{c: c, addrHash: hashedAddress, prefix: dbutils.GenerateStoragePrefix(hashedAddress)}, nil
}

type accountCursor struct {
	c kv.Cursor
}

func (ac *accountCursor) Seek(key common.Hash) (common.Hash, *accounts.Account, error) {
	return ac.decode(ac.c.Seek(key[:]))
}

func (ac *accountCursor) Next() (common.Hash, *accounts.Account, error) {
	return ac.decode(ac.c.Next())
}

func (ac *accountCursor) Close() { ac.c.Close() }

func (ac *accountCursor) decode(k, v []byte, err error) (common.Hash, *accounts.Account, error) {
	if err != nil || k == nil {
		return common.Hash{}, nil, err
	}
	if len(k) != length.Hash {
		return common.Hash{}, nil, fmt.Errorf("%s: %w: key of %d bytes", kv.HashedAccounts, dbutils.ErrInvalidSize, len(k))
	}
	acc, err := accounts.Decode(v)
	if err != nil {
		return common.Hash{}, nil, fmt.Errorf("decode account %x: %w", k, err)
	}
	return common.BytesToHash(k), acc, nil
}

type storageCursor struct {
	c        kv.Cursor
	addrHash common.Hash
	prefix   []byte
}

func (sc *storageCursor) Seek(key common.Hash) (common.Hash, *uint256.Int, error) {
	return sc.decode(sc.c.Seek(dbutils.GenerateCompositeTrieKey(sc.addrHash, key)))
}

func (sc *storageCursor) Next() (common.Hash, *uint256.Int, error) {
	return sc.decode(sc.c.Next())
}

func (sc *storageCursor) IsStorageEmpty() (bool, error) {
	k, _, err := sc.c.Seek(sc.prefix)
	if err != nil {
		return false, err
	}
	return k == nil || !bytes.HasPrefix(k, sc.prefix), nil
}

func (sc *storageCursor) Close() { sc.c.Close() }

func (sc *storageCursor) decode(k, v []byte, err error) (common.Hash, *uint256.Int, error) {
	if err != nil || k == nil || !bytes.HasPrefix(k, sc.prefix) {
		return common.Hash{}, nil, err
	}
	_, slot, err := dbutils.ParseCompositeTrieKey(k)
	if err != nil {
		return common.Hash{}, nil, fmt.Errorf("%s: %w", kv.HashedStorage, err)
	}
	value, err := dbutils.DecodeStorageValue(v)
	if err != nil {
		return common.Hash{}, nil, fmt.Errorf("decode slot %s of %s: %w", slot, sc.addrHash, err)
	}
	return slot, value, nil
}
