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

package memdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weaveVM/wvm-reth-sub000/db/kv"
)

func key(b byte) []byte {
	k := make([]byte, 32)
	k[0] = b
	return k
}

func TestPutGetDelete(t *testing.T) {
	_, tx := NewTestTx(t)

	require.NoError(t, tx.Put(kv.HashedAccounts, key(1), []byte("one")))
	v, err := tx.GetOne(kv.HashedAccounts, key(1))
	require.NoError(t, err)
	require.Equal(t, []byte("one"), v)

	ok, err := tx.Has(kv.HashedAccounts, key(2))
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, tx.Delete(kv.HashedAccounts, key(1)))
	v, err = tx.GetOne(kv.HashedAccounts, key(1))
	require.NoError(t, err)
	require.Nil(t, v)

	require.Error(t, tx.Put(kv.HashedAccounts, []byte{1}, []byte("short key")))
	require.ErrorIs(t, tx.Put("NoSuchTable", key(1), nil), kv.ErrUnknownTable)
}

func TestCursorOrder(t *testing.T) {
	_, tx := NewTestTx(t)
	for _, b := range []byte{5, 1, 3} {
		require.NoError(t, tx.Put(kv.HashedAccounts, key(b), []byte{b}))
	}
	c, err := tx.Cursor(kv.HashedAccounts)
	require.NoError(t, err)
	defer c.Close()

	var got []byte
	for k, v, err := c.First(); k != nil; k, v, err = c.Next() {
		require.NoError(t, err)
		require.Equal(t, k[0], v[0])
		got = append(got, k[0])
	}
	require.Equal(t, []byte{1, 3, 5}, got)

	k, _, err := c.Seek(key(2))
	require.NoError(t, err)
	require.Equal(t, key(3), k)
	k, _, err = c.Current()
	require.NoError(t, err)
	require.Equal(t, key(3), k)

	k, _, err = c.Seek(key(6))
	require.NoError(t, err)
	require.Nil(t, k)
	k, _, err = c.Next()
	require.NoError(t, err)
	require.Nil(t, k)
}

func TestReadTxIsSnapshot(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Update(ctx, func(tx kv.RwTx) error {
		return tx.Put(kv.HashedAccounts, key(1), []byte("v1"))
	}))

	ro, err := db.BeginRo(ctx)
	require.NoError(t, err)
	defer ro.Rollback()

	require.NoError(t, db.Update(ctx, func(tx kv.RwTx) error {
		if err := tx.Put(kv.HashedAccounts, key(1), []byte("v2")); err != nil {
			return err
		}
		return tx.Put(kv.HashedAccounts, key(2), []byte("v2"))
	}))

	v, err := ro.GetOne(kv.HashedAccounts, key(1))
	require.NoError(t, err)
	require.Equal(t, []byte("v1"), v)
	ok, err := ro.Has(kv.HashedAccounts, key(2))
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, db.View(ctx, func(tx kv.Tx) error {
		v, err := tx.GetOne(kv.HashedAccounts, key(1))
		require.Equal(t, []byte("v2"), v)
		return err
	}))
}

func TestRollbackDiscardsWrites(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	tx, err := db.BeginRw(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Put(kv.HashedAccounts, key(1), []byte("v1")))
	tx.Rollback()
	tx.Rollback()
	require.ErrorIs(t, tx.Commit(), kv.ErrTxDone)

	require.NoError(t, db.View(ctx, func(tx kv.Tx) error {
		ok, err := tx.Has(kv.HashedAccounts, key(1))
		require.False(t, ok)
		return err
	}))
}

func TestPutCopiesValue(t *testing.T) {
	_, tx := NewTestTx(t)
	buf := []byte("abc")
	require.NoError(t, tx.Put(kv.DatabaseInfo, []byte("k"), buf))
	buf[0] = 'x'
	v, err := tx.GetOne(kv.DatabaseInfo, []byte("k"))
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), v)
}

func TestClosedDB(t *testing.T) {
	db := NewTestDB(t)
	db.Close()
	_, err := db.BeginRo(context.Background())
	require.ErrorIs(t, err, kv.ErrClosed)
	_, err = db.BeginRw(context.Background())
	require.ErrorIs(t, err, kv.ErrClosed)
}

func TestForEach(t *testing.T) {
	_, tx := NewTestTx(t)
	for _, b := range []byte{1, 2, 3} {
		require.NoError(t, tx.Put(kv.HashedAccounts, key(b), []byte{b}))
	}
	var got []byte
	require.NoError(t, tx.ForEach(kv.HashedAccounts, key(2), func(k, v []byte) error {
		got = append(got, v[0])
		return nil
	}))
	require.Equal(t, []byte{2, 3}, got)
}
