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

package kv

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// key - address hash
	// value - account encoded for storage
	HashedAccounts = "HashedAccount"

	// key - address hash + storage key hash
	// value - storage value, big endian without leading zeroes
	HashedStorage = "HashedStorage"

	// DatabaseInfo is used to store information about data layout.
	DatabaseInfo = "DbInfo"
)

// Keys for DatabaseInfo
var (
	DBSchemaVersionKey = []byte("dbVersion")
)

// DBSchemaVersion - bump Major on incompatible layout changes
var DBSchemaVersion = struct{ Major, Minor uint32 }{Major: 1, Minor: 0}

// ChaindataTables - list of all tables. Opening a table outside of this list is an error.
var ChaindataTables = []string{
	HashedAccounts,
	HashedStorage,
	DatabaseInfo,
}

type TableCfgItem struct {
	// KeySize - exact key length, 0 means variable
	KeySize int
	// ID - single byte namespace used by stores without native tables
	ID byte
}

type TableCfg map[string]TableCfgItem

var ChaindataTablesCfg = TableCfg{
	HashedAccounts: {KeySize: 32, ID: 1},
	HashedStorage:  {KeySize: 64, ID: 2},
	DatabaseInfo:   {ID: 3},
}

func (cfg TableCfg) Check(table string) error {
	if _, ok := cfg[table]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	return nil
}

// CheckKey validates the key length of fixed-size tables.
func (cfg TableCfg) CheckKey(table string, key []byte) error {
	item, ok := cfg[table]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	if item.KeySize > 0 && len(key) != item.KeySize {
		return fmt.Errorf("table %s: key length %d, expected %d", table, len(key), item.KeySize)
	}
	return nil
}

func sortBuckets() {
	sort.SliceStable(ChaindataTables, func(i, j int) bool {
		return strings.Compare(ChaindataTables[i], ChaindataTables[j]) < 0
	})
}

func init() {
	sortBuckets()
	for _, name := range ChaindataTables {
		if _, ok := ChaindataTablesCfg[name]; !ok {
			panic("table " + name + " has no config")
		}
	}
}
