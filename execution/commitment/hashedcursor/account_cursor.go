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
	"github.com/weaveVM/wvm-reth-sub000/common"
	"github.com/weaveVM/wvm-reth-sub000/execution/state/poststate"
	"github.com/weaveVM/wvm-reth-sub000/execution/types/accounts"
)

// PostStateAccountCursor merges the accounts of a sorted post-state with a
// backing account cursor. Overlay entries win over backing entries with the
// same key and destroyed accounts are never returned.
//
// After the first backing error the cursor is poisoned: every later call
// returns that error.
type PostStateAccountCursor struct {
	backing   HashedCursor
	postState *poststate.HashedPostStateSorted

	idx        int // first overlay account not yet passed
	last       common.Hash
	positioned bool
	err        error
}

func NewPostStateAccountCursor(backing HashedCursor, postState *poststate.HashedPostStateSorted) *PostStateAccountCursor {
	mxOpenCursors.Inc()
	return &PostStateAccountCursor{backing: backing, postState: postState}
}

func (c *PostStateAccountCursor) Seek(key common.Hash) (common.Hash, *accounts.Account, error) {
	if c.err != nil {
		return common.Hash{}, nil, c.err
	}
	mxAccountSeeks.Inc()

	c.idx = c.postState.SeekAccount(key)
	if c.idx < c.postState.AccountsLen() {
		if k, acc := c.postState.AccountAt(c.idx); k == key {
			mxAccountOverlayHits.Inc()
			return c.setPosition(k, &acc)
		}
	}

	bk, bv, err := c.backing.Seek(key)
	if err != nil {
		return c.fail(err)
	}
	bk, bv, err = c.skipDestroyed(bk, bv)
	if err != nil {
		return c.fail(err)
	}
	return c.merge(bk, bv)
}

func (c *PostStateAccountCursor) Next() (common.Hash, *accounts.Account, error) {
	if c.err != nil {
		return common.Hash{}, nil, c.err
	}
	if !c.positioned {
		return common.Hash{}, nil, nil
	}
	mxAccountNexts.Inc()

	bk, bv, err := c.backing.Seek(c.last)
	for err == nil && bv != nil && bk.Cmp(c.last) <= 0 {
		bk, bv, err = c.backing.Next()
	}
	if err != nil {
		return c.fail(err)
	}
	bk, bv, err = c.skipDestroyed(bk, bv)
	if err != nil {
		return c.fail(err)
	}

	for c.idx < c.postState.AccountsLen() {
		if k, _ := c.postState.AccountAt(c.idx); k.Cmp(c.last) > 0 {
			break
		}
		c.idx++
	}
	return c.merge(bk, bv)
}

func (c *PostStateAccountCursor) Close() {
	if c.backing == nil {
		return
	}
	c.backing.Close()
	c.backing = nil
	mxOpenCursors.Dec()
}

// skipDestroyed advances the backing cursor past accounts the overlay destroyed.
func (c *PostStateAccountCursor) skipDestroyed(k common.Hash, acc *accounts.Account) (common.Hash, *accounts.Account, error) {
	var err error
	for acc != nil && c.postState.IsDestroyed(k) {
		mxAccountTombstones.Inc()
		if k, acc, err = c.backing.Next(); err != nil {
			return common.Hash{}, nil, err
		}
	}
	return k, acc, nil
}

// merge picks the smaller of the current overlay candidate and the given
// backing candidate. The overlay wins on equal keys.
func (c *PostStateAccountCursor) merge(bk common.Hash, bv *accounts.Account) (common.Hash, *accounts.Account, error) {
	if c.idx < c.postState.AccountsLen() {
		if k, acc := c.postState.AccountAt(c.idx); bv == nil || k.Cmp(bk) <= 0 {
			return c.setPosition(k, &acc)
		}
	}
	if bv == nil {
		c.positioned = false
		return common.Hash{}, nil, nil
	}
	return c.setPosition(bk, bv)
}

func (c *PostStateAccountCursor) setPosition(k common.Hash, acc *accounts.Account) (common.Hash, *accounts.Account, error) {
	c.last, c.positioned = k, true
	return k, acc, nil
}

func (c *PostStateAccountCursor) fail(err error) (common.Hash, *accounts.Account, error) {
	c.err, c.positioned = err, false
	return common.Hash{}, nil, err
}
