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
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/ledgerwatch/log/v3"
	"github.com/stretchr/testify/require"

	"github.com/weaveVM/wvm-reth-sub000/common"
)

func h(b byte) common.Hash { return common.Hash{b} }

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

// run executes the app and returns what it printed to stdout.
func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	require.NoError(t, app.Run(append([]string{"hashstate"}, args...)))
	return out.String()
}

func accountLine(addr common.Hash, nonce uint64, balance string) string {
	return fmt.Sprintf("%s nonce=%d balance=%s codeHash=%s\n", addr, nonce, balance, common.Hash{})
}

func slotLine(slot common.Hash, value string) string {
	return fmt.Sprintf("  %s %s\n", slot, value)
}

var baseOverlay = fmt.Sprintf(`
[accounts.%q]
nonce = 1
balance = "100"

[accounts.%q]
nonce = 2
balance = "0x20"

[storage.%q.slots]
%q = "0x07"
%q = "5"
`, h(1), h(2), h(1), h(1), h(2))

func TestLoadOverlayToml(t *testing.T) {
	p := writeFile(t, t.TempDir(), "overlay.toml", baseOverlay)
	ps, err := loadOverlay(p)
	require.NoError(t, err)

	sorted := ps.Sorted()
	require.Equal(t, 2, sorted.AccountsLen())
	addr, acc := sorted.AccountAt(1)
	require.Equal(t, h(2), addr)
	require.Equal(t, uint64(2), acc.Nonce)
	require.Equal(t, uint64(0x20), acc.Balance.Uint64())

	storage, ok := sorted.Storage(h(1))
	require.True(t, ok)
	require.False(t, storage.Wiped())
	require.Equal(t, 2, storage.SlotsLen())
	slot, v := storage.SlotAt(0)
	require.Equal(t, h(1), slot)
	require.Equal(t, uint64(7), v.Uint64())
}

func TestLoadOverlayYaml(t *testing.T) {
	content := fmt.Sprintf(`
accounts:
  "%s":
    destroyed: true
  "%s":
    nonce: 3
    code_hash: "%s"
storage:
  "%s":
    wiped: true
    slots:
      "%s": "0"
`, h(2), h(3), h(0xcc), h(3), h(9))
	p := writeFile(t, t.TempDir(), "overlay.yaml", content)
	ps, err := loadOverlay(p)
	require.NoError(t, err)

	sorted := ps.Sorted()
	require.True(t, sorted.IsDestroyed(h(2)))
	require.Equal(t, 1, sorted.AccountsLen())
	_, acc := sorted.AccountAt(0)
	require.Equal(t, h(0xcc), acc.CodeHash)

	storage, ok := sorted.Storage(h(3))
	require.True(t, ok)
	require.True(t, storage.Wiped())
	require.True(t, storage.IsZeroValued(h(9)))

	// destroying an account wipes its storage
	storage, ok = sorted.Storage(h(2))
	require.True(t, ok)
	require.True(t, storage.Wiped())
}

func TestLoadOverlayErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := loadOverlay(writeFile(t, dir, "overlay.json", "{}"))
	require.Error(t, err)

	_, err = loadOverlay(writeFile(t, dir, "short.toml", "[accounts.\"0x01\"]\nnonce = 1\n"))
	require.ErrorContains(t, err, "invalid hash length")

	_, err = loadOverlay(writeFile(t, dir, "balance.toml", fmt.Sprintf("[accounts.%q]\nbalance = \"-1\"\n", h(1))))
	require.ErrorContains(t, err, "invalid uint256")
}

func TestParseUint256(t *testing.T) {
	for in, want := range map[string]uint64{"": 0, "0": 0, "42": 42, "0x07": 7, " 0X10 ": 16} {
		v, err := parseUint256(in)
		require.NoError(t, err, in)
		require.Equal(t, want, v.Uint64(), in)
	}
	allOnes := new(uint256.Int).SetAllOne()
	v, err := parseUint256(allOnes.Hex())
	require.NoError(t, err)
	require.Equal(t, allOnes, v)

	_, err = parseUint256("0x1" + strings.Repeat("0", 64))
	require.ErrorContains(t, err, "overflows")
	_, err = parseUint256("ten")
	require.Error(t, err)
}

func TestApplyThenDumpThroughOverlay(t *testing.T) {
	defer log.Root().SetHandler(log.Root().GetHandler())

	dir := t.TempDir()
	datadir := filepath.Join(dir, "data")
	base := writeFile(t, dir, "base.toml", baseOverlay)
	run(t, "--datadir", datadir, "--verbosity", "crit", "apply", "--overlay", base)

	out := run(t, "--datadir", datadir, "--verbosity", "crit", "dump", "--storage")
	require.Equal(t,
		accountLine(h(1), 1, "100")+slotLine(h(1), "0x7")+slotLine(h(2), "0x5")+
			accountLine(h(2), 2, "32"),
		out)

	overlay := writeFile(t, dir, "overlay.yaml", fmt.Sprintf(`
accounts:
  "%s":
    destroyed: true
  "%s":
    nonce: 3
storage:
  "%s":
    slots:
      "%s": "0"
      "%s": "9"
`, h(2), h(3), h(1), h(1), h(3)))
	out = run(t, "--datadir", datadir, "--verbosity", "crit", "dump", "--storage", "--overlay", overlay)
	require.Equal(t,
		accountLine(h(1), 1, "100")+slotLine(h(2), "0x5")+slotLine(h(3), "0x9")+
			accountLine(h(3), 3, "0"),
		out)

	out = run(t, "--datadir", datadir, "--verbosity", "crit", "dump", "--overlay", overlay, "--from", h(2).Hex())
	require.Equal(t, accountLine(h(3), 3, "0"), out)

	// dumping never writes, the database still holds the base state
	out = run(t, "--datadir", datadir, "--verbosity", "crit", "dump")
	require.Equal(t, accountLine(h(1), 1, "100")+accountLine(h(2), 2, "32"), out)

	// committing the overlay gives the same view as stacking it
	run(t, "--datadir", datadir, "--verbosity", "crit", "apply", "--overlay", overlay)
	out = run(t, "--datadir", datadir, "--verbosity", "crit", "dump", "--storage")
	require.Equal(t,
		accountLine(h(1), 1, "100")+slotLine(h(2), "0x5")+slotLine(h(3), "0x9")+
			accountLine(h(3), 3, "0"),
		out)
}

func TestDumpChangedOnly(t *testing.T) {
	defer log.Root().SetHandler(log.Root().GetHandler())

	dir := t.TempDir()
	datadir := filepath.Join(dir, "data")
	base := writeFile(t, dir, "base.toml", baseOverlay)
	run(t, "--datadir", datadir, "--verbosity", "crit", "apply", "--overlay", base)

	overlay := writeFile(t, dir, "overlay.toml", fmt.Sprintf(`
[accounts.%q]
nonce = 8
balance = "100"

[accounts.%q]
nonce = 3

[storage.%q.slots]
%q = "1"
`, h(1), h(3), h(3), h(1)))

	// h(1) changed but its storage didn't, h(2) is untouched
	out := run(t, "--datadir", datadir, "--verbosity", "crit", "dump", "--storage", "--changed", "--overlay", overlay)
	require.Equal(t,
		accountLine(h(1), 8, "100")+
			accountLine(h(3), 3, "0")+slotLine(h(1), "0x1"),
		out)

	// without --changed the same overlay shows the whole merged state
	out = run(t, "--datadir", datadir, "--verbosity", "crit", "dump", "--storage", "--overlay", overlay)
	require.Equal(t,
		accountLine(h(1), 8, "100")+slotLine(h(1), "0x7")+slotLine(h(2), "0x5")+
			accountLine(h(2), 2, "32")+
			accountLine(h(3), 3, "0")+slotLine(h(1), "0x1"),
		out)
}

func TestConfigFilePresetsFlags(t *testing.T) {
	defer log.Root().SetHandler(log.Root().GetHandler())

	dir := t.TempDir()
	datadir := filepath.Join(dir, "data")
	base := writeFile(t, dir, "base.toml", baseOverlay)
	cfg := writeFile(t, dir, "config.toml", fmt.Sprintf(`
datadir = %q
verbosity = "crit"
overlay = %q
storage = true
from = %q
`, datadir, base, h(2)))

	run(t, "--config", cfg, "apply")

	out := run(t, "--config", cfg, "dump")
	require.Equal(t, accountLine(h(2), 2, "32"), out)

	// command line wins over the file
	out = run(t, "--config", cfg, "dump", "--from", h(1).Hex())
	require.Equal(t,
		accountLine(h(1), 1, "100")+slotLine(h(1), "0x7")+slotLine(h(2), "0x5")+
			accountLine(h(2), 2, "32"),
		out)
}

func TestConfigFileRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "config.json", `{"datadir": "x"}`)
	app := newApp()
	app.Writer, app.ErrWriter = io.Discard, io.Discard
	err := app.Run([]string{"hashstate", "--config", cfg, "dump"})
	require.ErrorContains(t, err, "config files only accepted are .yaml and .toml")
}

func TestApplyRequiresOverlay(t *testing.T) {
	defer log.Root().SetHandler(log.Root().GetHandler())

	app := newApp()
	app.Writer, app.ErrWriter = io.Discard, io.Discard
	err := app.Run([]string{"hashstate", "--datadir", t.TempDir(), "--verbosity", "crit", "apply"})
	require.ErrorContains(t, err, "--overlay is required")
}

func TestMetricsFlagWritesCursorMetrics(t *testing.T) {
	defer log.Root().SetHandler(log.Root().GetHandler())

	dir := t.TempDir()
	datadir := filepath.Join(dir, "data")
	base := writeFile(t, dir, "base.toml", baseOverlay)
	run(t, "--datadir", datadir, "--verbosity", "crit", "apply", "--overlay", base)

	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer, app.ErrWriter = &out, &errOut
	require.NoError(t, app.Run([]string{"hashstate", "--datadir", datadir, "--verbosity", "crit", "--metrics", "dump"}))
	require.Contains(t, errOut.String(), `hashed_cursor_seeks{kind="account"}`)
}
