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
	"errors"
	"testing"

	"github.com/holiman/uint256"
	"github.com/ledgerwatch/log/v3"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/weaveVM/wvm-reth-sub000/common"
	"github.com/weaveVM/wvm-reth-sub000/execution/state/poststate"
	"github.com/weaveVM/wvm-reth-sub000/execution/types/accounts"
)

var errBackingRead = errors.New("backing read failed")

func TestExactOverlayHitSkipsBacking(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	backing := NewMockHashedCursor(ctrl)
	backing.EXPECT().Close().Times(1)

	ps := poststate.NewHashedPostState()
	ps.UpdateAccount(h(5), &accounts.Account{Nonce: 5})
	c := NewPostStateAccountCursor(backing, ps.Sorted())
	defer c.Close()

	k, acc, err := c.Seek(h(5))
	require.NoError(t, err)
	require.Equal(t, h(5), k)
	require.Equal(t, uint64(5), acc.Nonce)
}

func TestExactStorageHitSkipsBacking(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	backing := NewMockHashedStorageCursor(ctrl)
	backing.EXPECT().Close().Times(1)

	ps := poststate.NewHashedPostState()
	ps.SetStorage(h(1), h(5), uint256.NewInt(5))
	storage, ok := ps.Sorted().Storage(h(1))
	require.True(t, ok)
	c := NewPostStateStorageCursor(backing, storage)
	defer c.Close()

	k, v, err := c.Seek(h(5))
	require.NoError(t, err)
	require.Equal(t, h(5), k)
	require.Equal(t, uint64(5), v.Uint64())

	empty, err := c.IsStorageEmpty()
	require.NoError(t, err)
	require.False(t, empty)
}

func TestWipedStorageNeverTouchesBacking(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	backing := NewMockHashedStorageCursor(ctrl)
	backing.EXPECT().Close().Times(1)

	ps := poststate.NewHashedPostState()
	ps.WipeStorage(h(1))
	ps.SetStorage(h(1), h(2), uint256.NewInt(2))
	ps.SetStorage(h(1), h(3), uint256.NewInt(0))
	storage, _ := ps.Sorted().Storage(h(1))
	c := NewPostStateStorageCursor(backing, storage)
	defer c.Close()

	require.Equal(t, []slotKV{{h(2), 2}}, collectSlots(t, c, common.Hash{}))
	empty, err := c.IsStorageEmpty()
	require.NoError(t, err)
	require.False(t, empty)
}

func TestSeekErrorPoisonsAccountCursor(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	backing := NewMockHashedCursor(ctrl)
	backing.EXPECT().Seek(h(1)).Return(common.Hash{}, nil, errBackingRead).Times(1)
	backing.EXPECT().Close().Times(1)

	c := NewPostStateAccountCursor(backing, poststate.NewHashedPostState().Sorted())
	defer c.Close()

	_, _, err := c.Seek(h(1))
	require.ErrorIs(t, err, errBackingRead)

	// no further backing calls once poisoned
	_, acc, err := c.Seek(h(2))
	require.ErrorIs(t, err, errBackingRead)
	require.Nil(t, acc)
	_, acc, err = c.Next()
	require.ErrorIs(t, err, errBackingRead)
	require.Nil(t, acc)
}

func TestNextErrorPoisonsAccountCursor(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	backing := NewMockHashedCursor(ctrl)
	gomock.InOrder(
		backing.EXPECT().Seek(common.Hash{}).Return(h(1), &accounts.Account{Nonce: 1}, nil),
		backing.EXPECT().Seek(h(1)).Return(h(1), &accounts.Account{Nonce: 1}, nil),
		backing.EXPECT().Next().Return(common.Hash{}, nil, errBackingRead),
	)
	backing.EXPECT().Close().Times(1)

	c := NewPostStateAccountCursor(backing, poststate.NewHashedPostState().Sorted())
	defer c.Close()

	var walked []common.Hash
	err := ForEachAccount(c, common.Hash{}, func(k common.Hash, _ *accounts.Account) error {
		walked = append(walked, k)
		return nil
	})
	require.ErrorIs(t, err, errBackingRead)
	require.Equal(t, []common.Hash{h(1)}, walked)

	_, _, err = c.Seek(common.Hash{})
	require.ErrorIs(t, err, errBackingRead)
}

func TestTombstoneSkipErrorPoisonsStorageCursor(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	backing := NewMockHashedStorageCursor(ctrl)
	gomock.InOrder(
		backing.EXPECT().Seek(common.Hash{}).Return(h(1), uint256.NewInt(1), nil),
		backing.EXPECT().Next().Return(common.Hash{}, nil, errBackingRead),
	)
	backing.EXPECT().Close().Times(1)

	ps := poststate.NewHashedPostState()
	ps.SetStorage(h(9), h(1), uint256.NewInt(0))
	storage, _ := ps.Sorted().Storage(h(9))
	c := NewPostStateStorageCursor(backing, storage)
	defer c.Close()

	_, v, err := c.Seek(common.Hash{})
	require.ErrorIs(t, err, errBackingRead)
	require.Nil(t, v)

	_, err = c.IsStorageEmpty()
	require.ErrorIs(t, err, errBackingRead)
	_, _, err = c.Next()
	require.ErrorIs(t, err, errBackingRead)
}

func TestIsStorageEmptyErrorPoisonsStorageCursor(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	backing := NewMockHashedStorageCursor(ctrl)
	backing.EXPECT().IsStorageEmpty().Return(false, errBackingRead).Times(1)
	backing.EXPECT().Close().Times(1)

	c := NewPostStateStorageCursor(backing, nil)
	defer c.Close()

	_, err := c.IsStorageEmpty()
	require.ErrorIs(t, err, errBackingRead)
	_, _, err = c.Seek(common.Hash{})
	require.ErrorIs(t, err, errBackingRead)
}

func TestFactoryWrapsBackingErrors(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	backing := NewMockHashedCursorFactory(ctrl)
	backing.EXPECT().HashedAccountCursor().Return(nil, errBackingRead)
	backing.EXPECT().HashedStorageCursor(h(1)).Return(nil, errBackingRead)

	f := NewPostStateCursorFactory(backing, poststate.NewHashedPostState().Sorted(), log.New())
	_, err := f.HashedAccountCursor()
	require.ErrorIs(t, err, errBackingRead)
	_, err = f.HashedStorageCursor(h(1))
	require.ErrorIs(t, err, errBackingRead)
}

func TestFactoryHandsOutFreshBackingCursors(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	backing := NewMockHashedCursorFactory(ctrl)
	backing.EXPECT().HashedStorageCursor(gomock.Any()).DoAndReturn(func(common.Hash) (HashedStorageCursor, error) {
		sc := NewMockHashedStorageCursor(ctrl)
		sc.EXPECT().Close().Times(1)
		return sc, nil
	}).Times(2)

	f := NewPostStateCursorFactory(backing, poststate.NewHashedPostState().Sorted(), log.New())
	c1, err := f.HashedStorageCursor(h(1))
	require.NoError(t, err)
	c2, err := f.HashedStorageCursor(h(2))
	require.NoError(t, err)
	c1.Close()
	c2.Close()
}
