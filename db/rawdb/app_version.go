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
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/weaveVM/wvm-reth-sub000/db/kv"
)

var ErrSchemaVersion = errors.New("incompatible db schema version")

// SetSchemaVersion stores kv.DBSchemaVersion on a fresh database and checks
// the stored one otherwise. Minor differences are compatible.
func SetSchemaVersion(tx kv.RwTx) error {
	enc, err := tx.GetOne(kv.DatabaseInfo, kv.DBSchemaVersionKey)
	if err != nil {
		return err
	}
	if enc != nil {
		if len(enc) != 8 {
			return fmt.Errorf("%w: %d bytes", ErrSchemaVersion, len(enc))
		}
		major, minor := binary.BigEndian.Uint32(enc), binary.BigEndian.Uint32(enc[4:])
		if major != kv.DBSchemaVersion.Major {
			return fmt.Errorf("%w: db has %d.%d, binary expects %d.%d", ErrSchemaVersion, major, minor, kv.DBSchemaVersion.Major, kv.DBSchemaVersion.Minor)
		}
		return nil
	}
	// Save version if it does not exist
	enc = make([]byte, 8)
	binary.BigEndian.PutUint32(enc, kv.DBSchemaVersion.Major)
	binary.BigEndian.PutUint32(enc[4:], kv.DBSchemaVersion.Minor)
	return tx.Put(kv.DatabaseInfo, kv.DBSchemaVersionKey, enc)
}
