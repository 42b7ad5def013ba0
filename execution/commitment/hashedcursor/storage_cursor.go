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
	"github.com/holiman/uint256"

	"github.com/weaveVM/wvm-reth-sub000/common"
	"github.com/weaveVM/wvm-reth-sub000/execution/state/poststate"
)

// PostStateStorageCursor merges the storage overlay of one hashed address with
// a backing storage cursor for the same address. A wiped overlay hides the
// backing cursor completely and zero-valued overlay slots hide the backing
// entries with the same key.
//
// A nil overlay means the address was not touched and the cursor passes the
// backing entries through. Errors poison the cursor like for
// PostStateAccountCursor.
type PostStateStorageCursor struct {
	backing HashedStorageCursor
	storage *poststate.HashedStorageSorted

	idx        int
	last       common.Hash
	positioned bool
	err        error
}

func NewPostStateStorageCursor(backing HashedStorageCursor, storage *poststate.HashedStorageSorted) *PostStateStorageCursor {
	mxOpenCursors.Inc()
	return &PostStateStorageCursor{backing: backing, storage: storage}
}

func (c *PostStateStorageCursor) Seek(key common.Hash) (common.Hash, *uint256.Int, error) {
	if c.err != nil {
		return common.Hash{}, nil, c.err
	}
	mxStorageSeeks.Inc()

	if c.storage != nil {
		c.idx = c.storage.SeekSlot(key)
		if c.idx < c.storage.SlotsLen() {
			if k, v := c.storage.SlotAt(c.idx); k == key {
				mxStorageOverlayHits.Inc()
				return c.setPosition(k, &v)
			}
		}
	}

	if c.backingSuppressed() {
		return c.merge(common.Hash{}, nil)
	}
	bk, bv, err := c.backing.Seek(key)
	if err != nil {
		return c.fail(err)
	}
	bk, bv, err = c.skipZeroed(bk, bv)
	if err != nil {
		return c.fail(err)
	}
	return c.merge(bk, bv)
}

func (c *PostStateStorageCursor) Next() (common.Hash, *uint256.Int, error) {
	if c.err != nil {
		return common.Hash{}, nil, c.err
	}
	if !c.positioned {
		return common.Hash{}, nil, nil
	}
	mxStorageNexts.Inc()

	var (
		bk  common.Hash
		bv  *uint256.Int
		err error
	)
	if !c.backingSuppressed() {
		bk, bv, err = c.backing.Seek(c.last)
		for err == nil && bv != nil && bk.Cmp(c.last) <= 0 {
			bk, bv, err = c.backing.Next()
		}
		if err != nil {
			return c.fail(err)
		}
		if bk, bv, err = c.skipZeroed(bk, bv); err != nil {
			return c.fail(err)
		}
	}

	for c.idx < c.slotsLen() {
		if k, _ := c.storage.SlotAt(c.idx); k.Cmp(c.last) > 0 {
			break
		}
		c.idx++
	}
	return c.merge(bk, bv)
}

// IsStorageEmpty reports whether a full traversal would return nothing. It
// never walks more backing entries than the overlay has zeroed slots.
func (c *PostStateStorageCursor) IsStorageEmpty() (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	if c.storage == nil || (!c.storage.Wiped() && c.storage.SlotsLen() == 0 && c.storage.ZeroValuedLen() == 0) {
		empty, err := c.backing.IsStorageEmpty()
		if err != nil {
			c.err, c.positioned = err, false
			return false, err
		}
		return empty, nil
	}
	if c.storage.SlotsLen() > 0 {
		return false, nil
	}
	if c.storage.Wiped() {
		return true, nil
	}

	// only deletions in the overlay: storage is empty if the backing holds
	// nothing besides the deleted slots
	k, v, err := c.backing.Seek(common.Hash{})
	if err == nil {
		_, v, err = c.skipZeroed(k, v)
	}
	if err != nil {
		c.err, c.positioned = err, false
		return false, err
	}
	return v == nil, nil
}

func (c *PostStateStorageCursor) Close() {
	if c.backing == nil {
		return
	}
	c.backing.Close()
	c.backing = nil
	mxOpenCursors.Dec()
}

func (c *PostStateStorageCursor) backingSuppressed() bool {
	return c.storage != nil && c.storage.Wiped()
}

func (c *PostStateStorageCursor) slotsLen() int {
	if c.storage == nil {
		return 0
	}
	return c.storage.SlotsLen()
}

// skipZeroed advances the backing cursor past slots the overlay deleted.
func (c *PostStateStorageCursor) skipZeroed(k common.Hash, v *uint256.Int) (common.Hash, *uint256.Int, error) {
	if c.storage == nil {
		return k, v, nil
	}
	var err error
	for v != nil && c.storage.IsZeroValued(k) {
		mxStorageTombstones.Inc()
		if k, v, err = c.backing.Next(); err != nil {
			return common.Hash{}, nil, err
		}
	}
	return k, v, nil
}

func (c *PostStateStorageCursor) merge(bk common.Hash, bv *uint256.Int) (common.Hash, *uint256.Int, error) {
	if c.idx < c.slotsLen() {
		if k, v := c.storage.SlotAt(c.idx); bv == nil || k.Cmp(bk) <= 0 {
			return c.setPosition(k, &v)
		}
	}
	if bv == nil {
		c.positioned = false
		return common.Hash{}, nil, nil
	}
	return c.setPosition(bk, bv)
}

func (c *PostStateStorageCursor) setPosition(k common.Hash, v *uint256.Int) (common.Hash, *uint256.Int, error) {
	c.last, c.positioned = k, true
	return k, v, nil
}

func (c *PostStateStorageCursor) fail(err error) (common.Hash, *uint256.Int, error) {
	c.err, c.positioned = err, false
	return common.Hash{}, nil, err
}
