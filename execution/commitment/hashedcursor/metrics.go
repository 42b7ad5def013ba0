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

import "github.com/weaveVM/wvm-reth-sub000/metrics"

var (
	mxAccountSeeks       = metrics.GetOrCreateCounter(`hashed_cursor_seeks{kind="account"}`)
	mxAccountNexts       = metrics.GetOrCreateCounter(`hashed_cursor_nexts{kind="account"}`)
	mxAccountOverlayHits = metrics.GetOrCreateCounter(`hashed_cursor_overlay_hits{kind="account"}`)
	mxAccountTombstones  = metrics.GetOrCreateCounter(`hashed_cursor_tombstone_skips{kind="account"}`)

	mxStorageSeeks       = metrics.GetOrCreateCounter(`hashed_cursor_seeks{kind="storage"}`)
	mxStorageNexts       = metrics.GetOrCreateCounter(`hashed_cursor_nexts{kind="storage"}`)
	mxStorageOverlayHits = metrics.GetOrCreateCounter(`hashed_cursor_overlay_hits{kind="storage"}`)
	mxStorageTombstones  = metrics.GetOrCreateCounter(`hashed_cursor_tombstone_skips{kind="storage"}`)

	mxOpenCursors = metrics.GetOrCreateGauge(`hashed_cursor_open`)
)
