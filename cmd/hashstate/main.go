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


// hashstate inspects and updates a hashed state database through post-state
// overlays.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/weaveVM/wvm-reth-sub000/turbo/logging"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "hashstate"
	app.Usage = "Inspect and update hashed state through post-state overlays"
	app.UsageText = app.Name + ` [global flags] [command] [flags]`
	app.Commands = []*cli.Command{
		&dumpCommand,
		&applyCommand,
	}
	app.Flags = append([]cli.Flag{
		&DataDirFlag,
		&ConfigFlag,
		&DbCacheFlag,
		&DbWriteBufferFlag,
		&MetricsFlag,
	}, logging.Flags...)
	return app
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
