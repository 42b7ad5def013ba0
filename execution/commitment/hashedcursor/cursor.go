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

// Package hashedcursor merges a sorted in-memory post-state overlay with
// persisted hashed state into a single ascending stream of accounts and
// storage slots.
package hashedcursor

import (
	"github.com/holiman/uint256"

	"github.com/weaveVM/wvm-reth-sub000/common"
	"github.com/weaveVM/wvm-reth-sub000/execution/types/accounts"
)

//go:generate mockgen -typed=true -source=./cursor.go -destination=./cursor_mock.go -package=hashedcursor HashedCursor,HashedStorageCursor,HashedCursorFactory

// HashedCursor iterates hashed accounts in ascending key order. A nil account
// means there is no entry at or after the requested position.
type HashedCursor interface {
	Seek(key common.Hash) (common.Hash, *accounts.Account, error)
	Next() (common.Hash, *accounts.Account, error)
	Close()
}

// HashedStorageCursor iterates the storage slots of one hashed address in
// ascending key order. A nil value means there is no entry.
type HashedStorageCursor interface {
	Seek(key common.Hash) (common.Hash, *uint256.Int, error)
	Next() (common.Hash, *uint256.Int, error)
	IsStorageEmpty() (bool, error)
	Close()
}

// HashedCursorFactory hands out independent cursors. Every call returns a new
// cursor which must be closed by the caller.
type HashedCursorFactory interface {
	HashedAccountCursor() (HashedCursor, error)
	HashedStorageCursor(hashedAddress common.Hash) (HashedStorageCursor, error)
}

// ForEachAccount seeks to from and walks the cursor to exhaustion.
func ForEachAccount(c HashedCursor, from common.Hash, walker func(k common.Hash, acc *accounts.Account) error) error {
	k, acc, err := c.Seek(from)
	for ; acc != nil; k, acc, err = c.Next() {
		if err != nil {
			return err
		}
		if err := walker(k, acc); err != nil {
			return err
		}
	}
	return err
}

// ForEachStorage seeks to from and walks the cursor to exhaustion.
func ForEachStorage(c HashedStorageCursor, from common.Hash, walker func(k common.Hash, v *uint256.Int) error) error {
	k, v, err := c.Seek(from)
	for ; v != nil; k, v, err = c.Next() {
		if err != nil {
			return err
		}
		if err := walker(k, v); err != nil {
			return err
		}
	}
	return err
}
