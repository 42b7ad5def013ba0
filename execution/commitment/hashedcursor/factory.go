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
	"fmt"

	"github.com/ledgerwatch/log/v3"

	"github.com/weaveVM/wvm-reth-sub000/common"
	"github.com/weaveVM/wvm-reth-sub000/execution/state/poststate"
)

// PostStateCursorFactory stacks a sorted post-state on top of another cursor
// factory. It is itself a HashedCursorFactory, so several overlays can be
// layered.
type PostStateCursorFactory struct {
	backing   HashedCursorFactory
	postState *poststate.HashedPostStateSorted
	logger    log.Logger
}

var _ HashedCursorFactory = (*PostStateCursorFactory)(nil)

func NewPostStateCursorFactory(backing HashedCursorFactory, postState *poststate.HashedPostStateSorted, logger log.Logger) *PostStateCursorFactory {
	return &PostStateCursorFactory{backing: backing, postState: postState, logger: logger}
}

func (f *PostStateCursorFactory) HashedAccountCursor() (HashedCursor, error) {
	c, err := f.backing.HashedAccountCursor()
	if err != nil {
		f.logger.Debug("[hashed cursor] backing account cursor", "err", err)
		return nil, fmt.Errorf("backing account cursor: %w", err)
	}
	return NewPostStateAccountCursor(c, f.postState), nil
}

func (f *PostStateCursorFactory) HashedStorageCursor(hashedAddress common.Hash) (HashedStorageCursor, error) {
	c, err := f.backing.HashedStorageCursor(hashedAddress)
	if err != nil {
		f.logger.Debug("[hashed cursor] backing storage cursor", "addr", hashedAddress, "err", err)
		return nil, fmt.Errorf("backing storage cursor %s: %w", hashedAddress, err)
	}
	storage, _ := f.postState.Storage(hashedAddress)
	return NewPostStateStorageCursor(c, storage), nil
}
