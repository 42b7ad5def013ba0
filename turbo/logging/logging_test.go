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

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ledgerwatch/log/v3"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestTryGetLogLevel(t *testing.T) {
	lvl, err := tryGetLogLevel("debug")
	require.NoError(t, err)
	require.Equal(t, log.LvlDebug, lvl)

	lvl, err = tryGetLogLevel("1")
	require.NoError(t, err)
	require.Equal(t, log.LvlError, lvl)

	_, err = tryGetLogLevel("loud")
	require.Error(t, err)
}

func TestSetupLoggerCtxWritesLogDir(t *testing.T) {
	defer log.Root().SetHandler(log.Root().GetHandler())

	datadir := t.TempDir()
	app := &cli.App{
		Flags: append([]cli.Flag{&cli.StringFlag{Name: "datadir"}}, Flags...),
		Action: func(ctx *cli.Context) error {
			logger := SetupLoggerCtx("hashstate", ctx)
			logger.Info("written to file", "k", "v")
			return nil
		},
	}
	require.NoError(t, app.Run([]string{"hashstate", "--datadir", datadir, "--verbosity", "crit", "--log.dir.json"}))

	content, err := os.ReadFile(filepath.Join(datadir, "logs", "hashstate.log"))
	require.NoError(t, err)
	require.Contains(t, string(content), `"msg":"written to file"`)
}
