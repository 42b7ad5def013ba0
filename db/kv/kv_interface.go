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
	"context"
	"errors"
)

var (
	ErrClosed       = errors.New("database closed")
	ErrUnknownTable = errors.New("unknown table")
	ErrTxDone       = errors.New("transaction already finished")
)

// RoDB - read-only database. Every read transaction is a consistent snapshot:
// writes committed after BeginRo are invisible to it.
type RoDB interface {
	Close()
	BeginRo(ctx context.Context) (Tx, error)
	// View - runs f inside a read transaction and rolls it back afterwards
	View(ctx context.Context, f func(tx Tx) error) error
	AllTables() TableCfg
}

// RwDB - database with a single writer.
type RwDB interface {
	RoDB
	BeginRw(ctx context.Context) (RwTx, error)
	// Update - runs f inside a read-write transaction and commits it if f returns nil
	Update(ctx context.Context, f func(tx RwTx) error) error
}

/*
Cursor - iterates over one table in ascending key order. A nil key means the
end of the table was reached. Returned slices are valid until the next
operation on the cursor.

Example:

	for k, v, err := c.Seek(prefix); k != nil; k, v, err = c.Next() {
	   if err != nil {
	       return err
	   }
	   ... logic using `k` and `v` (key and value)
	}
*/
type Cursor interface {
	First() ([]byte, []byte, error)           // First - position at first key/data item
	Seek(seek []byte) ([]byte, []byte, error) // Seek - position at first key greater than or equal to specified key
	Next() ([]byte, []byte, error)            // Next - position at next key/value
	Current() ([]byte, []byte, error)         // Current - return key/data at current cursor position

	Close()
}

type Getter interface {
	// Has indicates whether a key exists in the database.
	Has(table string, key []byte) (bool, error)

	// GetOne references a readonly section of memory that must not be accessed after txn has terminated
	GetOne(table string, key []byte) (val []byte, err error)

	// ForEach iterates over entries with keys greater or equal to fromPrefix.
	// walker is called for each eligible entry. Iteration stops on the first
	// walker error.
	ForEach(table string, fromPrefix []byte, walker func(k, v []byte) error) error
}

// Putter wraps the database write operations.
type Putter interface {
	// Put inserts or updates a single entry.
	Put(table string, k, v []byte) error

	// Delete removes a single entry.
	Delete(table string, k []byte) error
}

// Tx - read transaction. Cursors must be closed before Rollback.
type Tx interface {
	Getter
	Cursor(table string) (Cursor, error)
	Rollback() // Rollback - abandon all the operations of the transaction instead of saving them.
}

// RwTx - read-write transaction. Reads observe the transaction's own writes.
type RwTx interface {
	Tx
	Putter
	Commit() error
}
