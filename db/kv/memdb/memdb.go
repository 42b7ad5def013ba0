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
	"sync"

	"github.com/ledgerwatch/log/v3"
	btree2 "github.com/tidwall/btree"

	"github.com/weaveVM/wvm-reth-sub000/common"
	"github.com/weaveVM/wvm-reth-sub000/db/kv"
)

type table = btree2.Map[string, []byte]

// MemoryDB keeps every table in a copy-on-write btree. Read transactions work
// on O(1) copies of the trees, the single read-write transaction works on its
// own copies and swaps them in on Commit.
type MemoryDB struct {
	mu     sync.Mutex // guards tables and closed, btree Copy is a write
	writer sync.Mutex // held by the running read-write transaction
	tables map[string]*table
	closed bool
	logger log.Logger
}

var _ kv.RwDB = (*MemoryDB)(nil)

func New(logger log.Logger) *MemoryDB {
	db := &MemoryDB{tables: make(map[string]*table, len(kv.ChaindataTables)), logger: logger}
	for _, name := range kv.ChaindataTables {
		db.tables[name] = btree2.NewMap[string, []byte](128)
	}
	return db
}

func (db *MemoryDB) AllTables() kv.TableCfg { return kv.ChaindataTablesCfg }

func (db *MemoryDB) Close() {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.closed {
		return
	}
	db.closed = true
	db.logger.Debug("[memdb] closed")
}

func (db *MemoryDB) snapshot() (map[string]*table, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.closed {
		return nil, kv.ErrClosed
	}
	tables := make(map[string]*table, len(db.tables))
	for name, t := range db.tables {
		tables[name] = t.Copy()
	}
	return tables, nil
}

func (db *MemoryDB) BeginRo(ctx context.Context) (kv.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tables, err := db.snapshot()
	if err != nil {
		return nil, err
	}
	return &memTx{tables: tables}, nil
}

func (db *MemoryDB) BeginRw(ctx context.Context) (kv.RwTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	db.writer.Lock()
	tables, err := db.snapshot()
	if err != nil {
		db.writer.Unlock()
		return nil, err
	}
	return &memRwTx{memTx: memTx{tables: tables}, db: db}, nil
}

func (db *MemoryDB) View(ctx context.Context, f func(tx kv.Tx) error) error {
	tx, err := db.BeginRo(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	return f(tx)
}

func (db *MemoryDB) Update(ctx context.Context, f func(tx kv.RwTx) error) error {
	tx, err := db.BeginRw(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if err := f(tx); err != nil {
		return err
	}
	return tx.Commit()
}

type memTx struct {
	tables map[string]*table
	done   bool
}

func (tx *memTx) table(name string) (*table, error) {
	if tx.done {
		return nil, kv.ErrTxDone
	}
	t, ok := tx.tables[name]
	if !ok {
		return nil, kv.ChaindataTablesCfg.Check(name)
	}
	return t, nil
}

func (tx *memTx) Has(name string, key []byte) (bool, error) {
	t, err := tx.table(name)
	if err != nil {
		return false, err
	}
	_, ok := t.Get(string(key))
	return ok, nil
}

func (tx *memTx) GetOne(name string, key []byte) ([]byte, error) {
	t, err := tx.table(name)
	if err != nil {
		return nil, err
	}
	v, _ := t.Get(string(key))
	return v, nil
}

func (tx *memTx) ForEach(name string, fromPrefix []byte, walker func(k, v []byte) error) error {
	c, err := tx.Cursor(name)
	if err != nil {
		return err
	}
	defer c.Close()
	for k, v, err := c.Seek(fromPrefix); k != nil; k, v, err = c.Next() {
		if err != nil {
			return err
		}
		if err := walker(k, v); err != nil {
			return err
		}
	}
	return nil
}

func (tx *memTx) Cursor(name string) (kv.Cursor, error) {
	t, err := tx.table(name)
	if err != nil {
		return nil, err
	}
	return &memCursor{iter: t.Iter()}, nil
}

func (tx *memTx) Rollback() { tx.done = true }

type memRwTx struct {
	memTx
	db *MemoryDB
}

func (tx *memRwTx) Put(name string, k, v []byte) error {
	t, err := tx.table(name)
	if err != nil {
		return err
	}
	if err := kv.ChaindataTablesCfg.CheckKey(name, k); err != nil {
		return err
	}
	t.Set(string(k), common.Copy(v))
	return nil
}

func (tx *memRwTx) Delete(name string, k []byte) error {
	t, err := tx.table(name)
	if err != nil {
		return err
	}
	t.Delete(string(k))
	return nil
}

func (tx *memRwTx) Commit() error {
	if tx.done {
		return kv.ErrTxDone
	}
	tx.done = true
	defer tx.db.writer.Unlock()

	tx.db.mu.Lock()
	defer tx.db.mu.Unlock()
	if tx.db.closed {
		return kv.ErrClosed
	}
	tx.db.tables = tx.tables
	return nil
}

func (tx *memRwTx) Rollback() {
	if tx.done {
		return
	}
	tx.done = true
	tx.db.writer.Unlock()
}

// memCursor must not be used across writes to the table it iterates.
type memCursor struct {
	iter  btree2.MapIter[string, []byte]
	valid bool
}

func (c *memCursor) current() ([]byte, []byte, error) {
	if !c.valid {
		return nil, nil, nil
	}
	return []byte(c.iter.Key()), c.iter.Value(), nil
}

func (c *memCursor) First() ([]byte, []byte, error) {
	c.valid = c.iter.First()
	return c.current()
}

func (c *memCursor) Seek(seek []byte) ([]byte, []byte, error) {
	c.valid = c.iter.Seek(string(seek))
	return c.current()
}

func (c *memCursor) Next() ([]byte, []byte, error) {
	if !c.valid {
		return nil, nil, nil
	}
	c.valid = c.iter.Next()
	return c.current()
}

func (c *memCursor) Current() ([]byte, []byte, error) { return c.current() }

func (c *memCursor) Close() { c.valid = false }
