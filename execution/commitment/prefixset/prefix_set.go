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

// Package prefixset tracks which trie paths were touched by a post-state so
// that the trie walker can skip every subtrie whose cached hash is still valid.
package prefixset

import (
	"strings"

	"github.com/google/btree"
	"golang.org/x/exp/slices"

	"github.com/weaveVM/wvm-reth-sub000/common"
)

// Unpack expands every byte of key into two nibbles, high nibble first.
func Unpack(key []byte) []byte {
	nibbles := make([]byte, 2*len(key))
	for i, b := range key {
		nibbles[2*i] = b >> 4
		nibbles[2*i+1] = b & 0x0f
	}
	return nibbles
}

// Mutable collects nibble paths. It is not safe for concurrent use.
type Mutable struct {
	all  bool
	keys *btree.BTreeG[string]
}

func NewMutable() *Mutable {
	return &Mutable{keys: btree.NewG[string](32, func(a, b string) bool { return a < b })}
}

// NewAll returns a set that contains every possible prefix, used when a whole
// subtrie has to be rebuilt (e.g. wiped storage).
func NewAll() *Mutable {
	m := NewMutable()
	m.all = true
	return m
}

// Insert adds a nibble path to the set. Duplicates are collapsed.
func (m *Mutable) Insert(nibbles []byte) {
	m.keys.ReplaceOrInsert(string(nibbles))
}

// InsertHash adds the unpacked hash.
func (m *Mutable) InsertHash(h common.Hash) {
	m.Insert(Unpack(h[:]))
}

func (m *Mutable) Len() int { return m.keys.Len() }

// Freeze returns an immutable, sorted copy of the set. The mutable set can be
// reused afterwards without affecting the frozen one.
func (m *Mutable) Freeze() PrefixSet {
	keys := make([]string, 0, m.keys.Len())
	m.keys.Ascend(func(k string) bool {
		keys = append(keys, k)
		return true
	})
	return PrefixSet{all: m.all, keys: keys}
}

// PrefixSet is a frozen set of nibble paths. The zero value is an empty set.
type PrefixSet struct {
	all  bool
	keys []string
}

// Contains reports whether any key of the set starts with prefix.
func (p PrefixSet) Contains(prefix []byte) bool {
	if p.all {
		return true
	}
	idx, _ := slices.BinarySearch(p.keys, string(prefix))
	return idx < len(p.keys) && strings.HasPrefix(p.keys[idx], string(prefix))
}

// ContainsAll is true for sets created with NewAll.
func (p PrefixSet) ContainsAll() bool { return p.all }

func (p PrefixSet) Len() int { return len(p.keys) }

func (p PrefixSet) IsEmpty() bool { return !p.all && len(p.keys) == 0 }

// TriePrefixSets bundles everything the trie walker needs to know about a
// post-state: the touched accounts, the touched slots per account and the
// accounts whose whole storage trie must be dropped.
type TriePrefixSets struct {
	AccountPrefixSet  PrefixSet
	StoragePrefixSets map[common.Hash]PrefixSet
	DestroyedAccounts map[common.Hash]struct{}
}
