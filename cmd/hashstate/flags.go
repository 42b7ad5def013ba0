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
	"github.com/urfave/cli/v2"

	"github.com/weaveVM/wvm-reth-sub000/db/kv/ldb"
)

var (
	DataDirFlag = cli.StringFlag{
		Name:     "datadir",
		Usage:    "Data directory holding the hashed state database and logs",
	}
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "Sets flags from a .yaml or .toml file, command line values take precedence",
	}
	DbCacheFlag = cli.StringFlag{
		Name:  "db.cache",
		Usage: "Block cache of the database, e.g. 8MB",
		Value: ldb.DefaultBlockCache.String(),
	}
	DbWriteBufferFlag = cli.StringFlag{
		Name:  "db.write-buffer",
		Usage: "Write buffer of the database, e.g. 4MB",
		Value: ldb.DefaultWriteBuffer.String(),
	}
	MetricsFlag = cli.BoolFlag{
		Name:  "metrics",
		Usage: "Print cursor metrics in text exposition format when the command is done",
	}

	OverlayFlag = cli.StringFlag{
		Name:  "overlay",
		Usage: "Post-state overlay file (.yaml or .toml)",
	}
	FromFlag = cli.StringFlag{
		Name:  "from",
		Usage: "Hashed address to start the dump at",
	}
	ChangedFlag = cli.BoolFlag{
		Name:  "changed",
		Usage: "Only dump accounts the overlay touched, and storage only where the overlay changed it",
	}
	StorageFlag = cli.BoolFlag{
		Name:  "storage",
		Usage: "Dump the storage of every account as well",
	}
)
