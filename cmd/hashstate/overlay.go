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
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/holiman/uint256"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/weaveVM/wvm-reth-sub000/common"
	"github.com/weaveVM/wvm-reth-sub000/execution/state/poststate"
	"github.com/weaveVM/wvm-reth-sub000/execution/types/accounts"
)

// overlayFile is the on-disk form of a post-state overlay. All keys are
// hashed addresses or hashed slots in hex.
//
//	[accounts."0x<addr>"]
//	nonce = 1
//	balance = "0x10"
//	code_hash = "0x<hash>"
//
//	[accounts."0x<other>"]
//	destroyed = true
//
//	[storage."0x<addr>"]
//	wiped = true
//	slots = { "0x<slot>" = "0x07", "0x<zeroed>" = "0" }
type overlayFile struct {
	Accounts map[string]overlayAccount `toml:"accounts" yaml:"accounts"`
	Storage  map[string]overlayStorage `toml:"storage" yaml:"storage"`
}

type overlayAccount struct {
	Nonce     uint64 `toml:"nonce" yaml:"nonce"`
	Balance   string `toml:"balance" yaml:"balance"`
	CodeHash  string `toml:"code_hash" yaml:"code_hash"`
	Destroyed bool   `toml:"destroyed" yaml:"destroyed"`
}

type overlayStorage struct {
	Wiped bool              `toml:"wiped" yaml:"wiped"`
	Slots map[string]string `toml:"slots" yaml:"slots"`
}

func loadOverlay(filePath string) (*poststate.HashedPostState, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var file overlayFile
	switch filepath.Ext(filePath) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".toml":
		err = toml.Unmarshal(data, &file)
	default:
		return nil, errors.New("overlay files only accepted are .yaml and .toml")
	}
	if err != nil {
		return nil, fmt.Errorf("overlay %s: %w", filePath, err)
	}
	return file.postState()
}

func (f *overlayFile) postState() (*poststate.HashedPostState, error) {
	ps := poststate.NewHashedPostState()
	for key, entry := range f.Accounts {
		addr, err := common.ParseHash(key)
		if err != nil {
			return nil, fmt.Errorf("account key: %w", err)
		}
		if entry.Destroyed {
			ps.DestroyAccount(addr)
			continue
		}
		acc := accounts.NewAccount()
		acc.Nonce = entry.Nonce
		balance, err := parseUint256(entry.Balance)
		if err != nil {
			return nil, fmt.Errorf("balance of %s: %w", addr, err)
		}
		acc.Balance = *balance
		if entry.CodeHash != "" {
			if acc.CodeHash, err = common.ParseHash(entry.CodeHash); err != nil {
				return nil, fmt.Errorf("code hash of %s: %w", addr, err)
			}
		}
		ps.UpdateAccount(addr, &acc)
	}
	for key, entry := range f.Storage {
		addr, err := common.ParseHash(key)
		if err != nil {
			return nil, fmt.Errorf("storage key: %w", err)
		}
		if entry.Wiped {
			ps.WipeStorage(addr)
		}
		for slotKey, raw := range entry.Slots {
			slot, err := common.ParseHash(slotKey)
			if err != nil {
				return nil, fmt.Errorf("slot of %s: %w", addr, err)
			}
			value, err := parseUint256(raw)
			if err != nil {
				return nil, fmt.Errorf("value of %s/%s: %w", addr, slot, err)
			}
			ps.SetStorage(addr, slot, value)
		}
	}
	return ps, nil
}

// parseUint256 accepts decimal or 0x-prefixed hex. Empty means zero.
func parseUint256(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return new(uint256.Int), nil
	}
	b, ok := new(big.Int).SetString(s, 0)
	if !ok || b.Sign() < 0 {
		return nil, fmt.Errorf("invalid uint256 %q", s)
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return nil, fmt.Errorf("uint256 %q overflows 256 bits", s)
	}
	return v, nil
}
