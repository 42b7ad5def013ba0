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

package ldb

import (
	"context"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/holiman/uint256"
	"github.com/ledgerwatch/log/v3"
	"github.com/stretchr/testify/require"

	"github.com/weaveVM/wvm-reth-sub000/common"
	"github.com/weaveVM/wvm-reth-sub000/db/kv"
	"github.com/weaveVM/wvm-reth-sub000/db/rawdb"
	"github.com/weaveVM/wvm-reth-sub000/execution/commitment/hashedcursor"
	"github.com/weaveVM/wvm-reth-sub000/execution/state/poststate"
	"github.com/weaveVM/wvm-reth-sub000/execution/types/accounts"
)

type entry struct {
	addr, slot common.Hash
	nonce      uint64
	value      uint64
}

func traverse(t *testing.T, f hashedcursor.HashedCursorFactory, addrs []common.Hash) []entry {
	t.Helper()
	var res []entry
	ac, err := f.HashedAccountCursor()
	require.NoError(t, err)
	defer ac.Close()
	require.NoError(t, hashedcursor.ForEachAccount(ac, common.Hash{}, func(k common.Hash, acc *accounts.Account) error {
		res = append(res, entry{addr: k, nonce: acc.Nonce})
		return nil
	}))
	for _, addr := range addrs {
		sc, err := f.HashedStorageCursor(addr)
		require.NoError(t, err)
		require.NoError(t, hashedcursor.ForEachStorage(sc, common.Hash{}, func(k common.Hash, v *uint256.Int) error {
			res = append(res, entry{addr: addr, slot: k, value: v.Uint64()})
			return nil
		}))
		sc.Close()
	}
	return res
}

func TestCommitThenTraverseEqualsMergedView(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	addrs := make([]common.Hash, 16)
	for i := range addrs {
		addrs[i] = common.Hash{byte(i)}
	}

	for seed := int64(0); seed < 10; seed++ {
		db, _ := newTestDB(t)
		f := fuzz.NewWithSeed(seed).NilChance(0).NumElements(0, 16)

		base, overlay := poststate.NewHashedPostState(), poststate.NewHashedPostState()
		for _, ps := range []*poststate.HashedPostState{base, overlay} {
			var (
				nonces map[uint8]uint64
				slots  map[[2]uint8]uint64
				ops    map[uint8]uint8
			)
			f.Fuzz(&nonces)
			f.Fuzz(&slots)
			f.Fuzz(&ops)
			for a, op := range ops {
				switch op % 5 {
				case 0:
					if ps == overlay {
						ps.DestroyAccount(addrs[a%16])
					}
				case 1:
					ps.WipeStorage(addrs[a%16])
				}
			}
			for a, n := range nonces {
				ps.UpdateAccount(addrs[a%16], &accounts.Account{Nonce: n})
			}
			for k, v := range slots {
				ps.SetStorage(addrs[k[0]%16], common.Hash{k[1]}, uint256.NewInt(v%4))
			}
		}

		require.NoError(t, db.Update(ctx, func(tx kv.RwTx) error {
			if err := rawdb.SetSchemaVersion(tx); err != nil {
				return err
			}
			_, err := rawdb.ApplyPostState(tx, base.Sorted())
			return err
		}))

		sorted := overlay.Sorted()
		var merged []entry
		require.NoError(t, db.View(ctx, func(tx kv.Tx) error {
			merged = traverse(t, hashedcursor.NewPostStateCursorFactory(rawdb.NewHashedCursorFactory(tx), sorted, log.New()), addrs)
			return nil
		}))

		require.NoError(t, db.Update(ctx, func(tx kv.RwTx) error {
			_, err := rawdb.ApplyPostState(tx, sorted)
			return err
		}))

		var committed []entry
		require.NoError(t, db.View(ctx, func(tx kv.Tx) error {
			committed = traverse(t, rawdb.NewHashedCursorFactory(tx), addrs)
			return nil
		}))
		require.Equal(t, merged, committed, "seed %d", seed)
	}
}
