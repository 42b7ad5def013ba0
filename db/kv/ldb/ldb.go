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

// Package ldb implements kv.RwDB on top of goleveldb. Tables share one key
// space and are told apart by a single byte prefix (kv.TableCfgItem.ID).
package ldb

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/c2h5oh/datasize"
	"github.com/ledgerwatch/log/v3"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/weaveVM/wvm-reth-sub000/db/kv"
)

const (
	DefaultBlockCache  = 8 * datasize.MB
	DefaultWriteBuffer = 4 * datasize.MB
)

type Opts struct {
	path        string
	blockCache  datasize.ByteSize
	writeBuffer datasize.ByteSize
	readOnly    bool
	logger      log.Logger
}

func New(path string, logger log.Logger) Opts {
	return Opts{path: path, blockCache: DefaultBlockCache, writeBuffer: DefaultWriteBuffer, logger: logger}
}

func (opts Opts) BlockCache(sz datasize.ByteSize) Opts {
	opts.blockCache = sz
	return opts
}

func (opts Opts) WriteBuffer(sz datasize.ByteSize) Opts {
	opts.writeBuffer = sz
	return opts
}

func (opts Opts) Readonly() Opts {
	opts.readOnly = true
	return opts
}

func (opts Opts) options() *opt.Options {
	return &opt.Options{
		BlockCacheCapacity: int(opts.blockCache.Bytes()),
		WriteBuffer:        int(opts.writeBuffer.Bytes()),
		ReadOnly:           opts.readOnly,
	}
}

func (opts Opts) Open(ctx context.Context) (*DB, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ldb, err := leveldb.OpenFile(opts.path, opts.options())
	if err != nil {
		return nil, fmt.Errorf("open leveldb %s: %w", opts.path, err)
	}
	opts.logger.Debug("[ldb] opened", "path", opts.path, "blockCache", opts.blockCache.HumanReadable(), "writeBuffer", opts.writeBuffer.HumanReadable(), "readonly", opts.readOnly)
	return &DB{ldb: ldb, opts: opts}, nil
}

func (opts Opts) MustOpen() *DB {
	db, err := opts.Open(context.Background())
	if err != nil {
		panic(err)
	}
	return db
}

type DB struct {
	ldb    *leveldb.DB
	opts   Opts
	writer sync.Mutex
	mu     sync.RWMutex // guards closed
	closed bool
}

var _ kv.RwDB = (*DB)(nil)

func (db *DB) AllTables() kv.TableCfg { return kv.ChaindataTablesCfg }

func (db *DB) Close() {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.closed {
		return
	}
	db.closed = true
	if err := db.ldb.Close(); err != nil {
		db.opts.logger.Warn("[ldb] close", "path", db.opts.path, "err", err)
		return
	}
	db.opts.logger.Debug("[ldb] closed", "path", db.opts.path)
}

func (db *DB) BeginRo(ctx context.Context) (kv.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	db.mu.RLock()
	defer db.mu.RUnlock()
	if db.closed {
		return nil, kv.ErrClosed
	}
	snap, err := db.ldb.GetSnapshot()
	if err != nil {
		return nil, err
	}
	return &roTx{reader: snap, release: snap.Release}, nil
}

func (db *DB) BeginRw(ctx context.Context) (kv.RwTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if db.opts.readOnly {
		return nil, errors.New("ldb: database opened read-only")
	}
	db.writer.Lock()
	db.mu.RLock()
	defer db.mu.RUnlock()
	if db.closed {
		db.writer.Unlock()
		return nil, kv.ErrClosed
	}
	tr, err := db.ldb.OpenTransaction()
	if err != nil {
		db.writer.Unlock()
		return nil, err
	}
	return &rwTx{roTx: roTx{reader: tr}, tr: tr, db: db}, nil
}

func (db *DB) View(ctx context.Context, f func(tx kv.Tx) error) error {
	tx, err := db.BeginRo(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	return f(tx)
}

func (db *DB) Update(ctx context.Context, f func(tx kv.RwTx) error) error {
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
