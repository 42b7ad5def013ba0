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


package main

import (
	"fmt"
	"path/filepath"

	"github.com/c2h5oh/datasize"
	"github.com/holiman/uint256"
	"github.com/ledgerwatch/log/v3"
	"github.com/urfave/cli/v2"

	"github.com/weaveVM/wvm-reth-sub000/common"
	"github.com/weaveVM/wvm-reth-sub000/db/kv"
	"github.com/weaveVM/wvm-reth-sub000/db/kv/ldb"
	"github.com/weaveVM/wvm-reth-sub000/db/rawdb"
	"github.com/weaveVM/wvm-reth-sub000/execution/commitment/hashedcursor"
	"github.com/weaveVM/wvm-reth-sub000/execution/commitment/prefixset"
	"github.com/weaveVM/wvm-reth-sub000/execution/state/poststate"
	"github.com/weaveVM/wvm-reth-sub000/execution/types/accounts"
	"github.com/weaveVM/wvm-reth-sub000/metrics"
	"github.com/weaveVM/wvm-reth-sub000/turbo/logging"
)

var dumpCommand = cli.Command{
	Action: dumpState,
	Name:   "dump",
	Usage:  "Print the hashed state, optionally seen through a post-state overlay",
	Before: applyConfigFile,
	Flags: []cli.Flag{
		&OverlayFlag,
		&FromFlag,
		&StorageFlag,
		&ChangedFlag,
	},
}

var applyCommand = cli.Command{
	Action: applyState,
	Name:   "apply",
	Usage:  "Commit a post-state overlay into the hashed state",
	Before: applyConfigFile,
	Flags: []cli.Flag{
		&OverlayFlag,
	},
}

func chaindata(datadir string) string { return filepath.Join(datadir, "chaindata") }

func openDB(cliCtx *cli.Context, logger log.Logger, readonly bool) (*ldb.DB, error) {
	datadir := cliCtx.String(DataDirFlag.Name)
	if datadir == "" {
		return nil, fmt.Errorf("--%s is required", DataDirFlag.Name)
	}
	var cache, writeBuffer datasize.ByteSize
	if err := cache.UnmarshalText([]byte(cliCtx.String(DbCacheFlag.Name))); err != nil {
		return nil, fmt.Errorf("--%s: %w", DbCacheFlag.Name, err)
	}
	if err := writeBuffer.UnmarshalText([]byte(cliCtx.String(DbWriteBufferFlag.Name))); err != nil {
		return nil, fmt.Errorf("--%s: %w", DbWriteBufferFlag.Name, err)
	}
	opts := ldb.New(chaindata(datadir), logger).BlockCache(cache).WriteBuffer(writeBuffer)
	if readonly {
		opts = opts.Readonly()
	}
	return opts.Open(cliCtx.Context)
}

func overlayFromFlag(cliCtx *cli.Context) (*poststate.HashedPostState, error) {
	path := cliCtx.String(OverlayFlag.Name)
	if path == "" {
		return poststate.NewHashedPostState(), nil
	}
	return loadOverlay(path)
}

func dumpState(cliCtx *cli.Context) error {
	logger := logging.SetupLoggerCtx("hashstate", cliCtx)
	defer writeMetrics(cliCtx, logger)

	overlay, err := overlayFromFlag(cliCtx)
	if err != nil {
		return err
	}
	var from common.Hash
	if s := cliCtx.String(FromFlag.Name); s != "" {
		if from, err = common.ParseHash(s); err != nil {
			return fmt.Errorf("--%s: %w", FromFlag.Name, err)
		}
	}
	db, err := openDB(cliCtx, logger, true)
	if err != nil {
		return err
	}
	defer db.Close()

	opts := dumpOpts{from: from, withStorage: cliCtx.Bool(StorageFlag.Name)}
	if cliCtx.Bool(ChangedFlag.Name) {
		changed := overlay.PrefixSets()
		opts.changed = &changed
	}
	return db.View(cliCtx.Context, func(tx kv.Tx) error {
		factory := hashedcursor.NewPostStateCursorFactory(rawdb.NewHashedCursorFactory(tx), overlay.Sorted(), logger)
		return dump(cliCtx, logger, factory, opts)
	})
}

type dumpOpts struct {
	from        common.Hash
	withStorage bool
	// nil means everything
	changed *prefixset.TriePrefixSets
}

// touched reports whether the account itself was changed by the overlay.
func (o dumpOpts) touched(addr common.Hash) bool {
	return o.changed == nil || o.changed.AccountPrefixSet.Contains(prefixset.Unpack(addr[:]))
}

// storageTouched reports whether the overlay changed the account's storage.
func (o dumpOpts) storageTouched(addr common.Hash) bool {
	if o.changed == nil {
		return true
	}
	_, ok := o.changed.StoragePrefixSets[addr]
	return ok
}

func dump(cliCtx *cli.Context, logger log.Logger, factory hashedcursor.HashedCursorFactory, opts dumpOpts) error {
	w := cliCtx.App.Writer
	c, err := factory.HashedAccountCursor()
	if err != nil {
		return err
	}
	defer c.Close()

	var count int
	err = hashedcursor.ForEachAccount(c, opts.from, func(addr common.Hash, acc *accounts.Account) error {
		if err := cliCtx.Context.Err(); err != nil {
			return err
		}
		if !opts.touched(addr) {
			return nil
		}
		count++
		if _, err := fmt.Fprintf(w, "%s nonce=%d balance=%s codeHash=%s\n", addr, acc.Nonce, acc.Balance.Dec(), acc.CodeHash); err != nil {
			return err
		}
		if !opts.withStorage || !opts.storageTouched(addr) {
			return nil
		}
		sc, err := factory.HashedStorageCursor(addr)
		if err != nil {
			return err
		}
		defer sc.Close()
		return hashedcursor.ForEachStorage(sc, common.Hash{}, func(slot common.Hash, v *uint256.Int) error {
			_, err := fmt.Fprintf(w, "  %s %s\n", slot, v.Hex())
			return err
		})
	})
	if err != nil {
		return err
	}
	logger.Debug("[dump] done", "accounts", count, "storage", opts.withStorage, "changedOnly", opts.changed != nil)
	return nil
}

func applyState(cliCtx *cli.Context) error {
	logger := logging.SetupLoggerCtx("hashstate", cliCtx)
	defer writeMetrics(cliCtx, logger)

	if cliCtx.String(OverlayFlag.Name) == "" {
		return fmt.Errorf("--%s is required", OverlayFlag.Name)
	}
	overlay, err := overlayFromFlag(cliCtx)
	if err != nil {
		return err
	}
	db, err := openDB(cliCtx, logger, false)
	if err != nil {
		return err
	}
	defer db.Close()

	var stats common.WriteStats
	err = db.Update(cliCtx.Context, func(tx kv.RwTx) error {
		if err := rawdb.SetSchemaVersion(tx); err != nil {
			return err
		}
		stats, err = rawdb.ApplyPostState(tx, overlay.Sorted())
		return err
	})
	if err != nil {
		return err
	}
	if stats.Empty() {
		logger.Info("[apply] nothing to commit")
		return nil
	}
	logger.Info("[apply] committed", "accountsPut", stats.AccountsPut, "accountsDeleted", stats.AccountsDeleted,
		"slotsPut", stats.SlotsPut, "slotsDeleted", stats.SlotsDeleted, "size", stats.BytesPut)
	return nil
}

func writeMetrics(cliCtx *cli.Context, logger log.Logger) {
	if !cliCtx.Bool(MetricsFlag.Name) {
		return
	}
	if err := metrics.WriteText(cliCtx.App.ErrWriter); err != nil {
		logger.Warn("[metrics] write", "err", err)
	}
}
