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
	"errors"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/weaveVM/wvm-reth-sub000/db/kv"
)

// reader is implemented by both *leveldb.Snapshot and *leveldb.Transaction.
type reader interface {
	Get(key []byte, ro *opt.ReadOptions) ([]byte, error)
	Has(key []byte, ro *opt.ReadOptions) (bool, error)
	NewIterator(slice *util.Range, ro *opt.ReadOptions) iterator.Iterator
}

func tableID(table string) (byte, error) {
	item, ok := kv.ChaindataTablesCfg[table]
	if !ok {
		return 0, kv.ChaindataTablesCfg.Check(table)
	}
	return item.ID, nil
}

func tableKey(table string, k []byte) ([]byte, error) {
	id, err := tableID(table)
	if err != nil {
		return nil, err
	}
	dbKey := make([]byte, 1+len(k))
	dbKey[0] = id
	copy(dbKey[1:], k)
	return dbKey, nil
}

type roTx struct {
	reader  reader
	release func()
	done    bool
}

func (tx *roTx) Has(table string, key []byte) (bool, error) {
	if tx.done {
		return false, kv.ErrTxDone
	}
	k, err := tableKey(table, key)
	if err != nil {
		return false, err
	}
	return tx.reader.Has(k, nil)
}

func (tx *roTx) GetOne(table string, key []byte) ([]byte, error) {
	if tx.done {
		return nil, kv.ErrTxDone
	}
	k, err := tableKey(table, key)
	if err != nil {
		return nil, err
	}
	v, err := tx.reader.Get(k, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, nil
	}
	return v, err
}

func (tx *roTx) ForEach(table string, fromPrefix []byte, walker func(k, v []byte) error) error {
	c, err := tx.Cursor(table)
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

func (tx *roTx) Cursor(table string) (kv.Cursor, error) {
	if tx.done {
		return nil, kv.ErrTxDone
	}
	id, err := tableID(table)
	if err != nil {
		return nil, err
	}
	return &cursor{iter: tx.reader.NewIterator(util.BytesPrefix([]byte{id}), nil), id: id}, nil
}

func (tx *roTx) Rollback() {
	if tx.done {
		return
	}
	tx.done = true
	if tx.release != nil {
		tx.release()
	}
}

type rwTx struct {
	roTx
	tr *leveldb.Transaction
	db *DB
}

func (tx *rwTx) Put(table string, k, v []byte) error {
	if tx.done {
		return kv.ErrTxDone
	}
	if err := kv.ChaindataTablesCfg.CheckKey(table, k); err != nil {
		return err
	}
	dbKey, err := tableKey(table, k)
	if err != nil {
		return err
	}
	return tx.tr.Put(dbKey, v, nil)
}

func (tx *rwTx) Delete(table string, k []byte) error {
	if tx.done {
		return kv.ErrTxDone
	}
	dbKey, err := tableKey(table, k)
	if err != nil {
		return err
	}
	return tx.tr.Delete(dbKey, nil)
}

func (tx *rwTx) Commit() error {
	if tx.done {
		return kv.ErrTxDone
	}
	tx.done = true
	defer tx.db.writer.Unlock()
	if err := tx.tr.Commit(); err != nil {
		tx.tr.Discard()
		return err
	}
	return nil
}

func (tx *rwTx) Rollback() {
	if tx.done {
		return
	}
	tx.done = true
	tx.tr.Discard()
	tx.db.writer.Unlock()
}

// cursor strips the table prefix from iterator keys. Returned slices are only
// valid until the next cursor operation.
type cursor struct {
	iter  iterator.Iterator
	id    byte
	valid bool
}

func (c *cursor) current() ([]byte, []byte, error) {
	if !c.valid {
		return nil, nil, c.iter.Error()
	}
	return c.iter.Key()[1:], c.iter.Value(), nil
}

func (c *cursor) First() ([]byte, []byte, error) {
	c.valid = c.iter.First()
	return c.current()
}

func (c *cursor) Seek(seek []byte) ([]byte, []byte, error) {
	dbKey := make([]byte, 1+len(seek))
	dbKey[0] = c.id
	copy(dbKey[1:], seek)
	c.valid = c.iter.Seek(dbKey)
	return c.current()
}

func (c *cursor) Next() ([]byte, []byte, error) {
	if !c.valid {
		return nil, nil, c.iter.Error()
	}
	c.valid = c.iter.Next()
	return c.current()
}

func (c *cursor) Current() ([]byte, []byte, error) { return c.current() }

func (c *cursor) Close() { c.iter.Release() }
