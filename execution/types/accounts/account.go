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

package accounts

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"

	"github.com/holiman/uint256"

	"github.com/weaveVM/wvm-reth-sub000/common"
	"github.com/weaveVM/wvm-reth-sub000/common/length"
)

// Account is the flat-state representation of an account as it is stored in
// the hashed accounts table and carried by post-state overlays.
// The storage root is not part of it: it is what the trie builder derives.
type Account struct {
	Nonce    uint64
	Balance  uint256.Int
	CodeHash common.Hash // empty hash means no code
}

var ErrShortBuffer = errors.New("accounts: encoding too short")

// NewAccount creates a new account w/o code nor storage.
func NewAccount() Account {
	return Account{}
}

// HasCode is true when the account carries a bytecode hash.
func (a *Account) HasCode() bool {
	return a.CodeHash != (common.Hash{})
}

// IsEmpty is the EIP-161 notion of emptiness: zero nonce, zero balance, no code.
func (a *Account) IsEmpty() bool {
	return a.Nonce == 0 && a.Balance.IsZero() && !a.HasCode()
}

func (a *Account) Copy(image *Account) {
	a.Nonce = image.Nonce
	a.Balance.Set(&image.Balance)
	a.CodeHash = image.CodeHash
}

// Clone returns an independent copy of a.
func (a *Account) Clone() *Account {
	c := new(Account)
	c.Copy(a)
	return c
}

func (a *Account) Equals(acc *Account) bool {
	return a.Nonce == acc.Nonce &&
		a.CodeHash == acc.CodeHash &&
		a.Balance.Cmp(&acc.Balance) == 0
}

func (a *Account) String() string {
	return fmt.Sprintf("{Nonce: %d, Balance: %s, CodeHash: %s}", a.Nonce, a.Balance.Dec(), a.CodeHash.Hex())
}

// SerialiseLen returns the length of SerialiseV3 output without encoding.
func SerialiseLen(a *Account) int {
	l := 3
	l += (bits.Len64(a.Nonce) + 7) / 8
	l += a.Balance.ByteLen()
	if a.HasCode() {
		l += length.Hash
	}
	return l
}

// SerialiseV3 encodes an account as three length-prefixed fields:
// nonce (minimal big-endian), balance (minimal big-endian), code hash (0 or 32 bytes).
func SerialiseV3(a *Account) []byte {
	return SerialiseV3To(a, make([]byte, 0, SerialiseLen(a)))
}

// SerialiseV3To appends the encoding of a to buf.
func SerialiseV3To(a *Account, buf []byte) []byte {
	nonceLen := (bits.Len64(a.Nonce) + 7) / 8
	buf = append(buf, byte(nonceLen))
	if nonceLen > 0 {
		var nonce [8]byte
		binary.BigEndian.PutUint64(nonce[:], a.Nonce)
		buf = append(buf, nonce[8-nonceLen:]...)
	}

	balance := a.Balance.Bytes()
	buf = append(buf, byte(len(balance)))
	buf = append(buf, balance...)

	if a.HasCode() {
		buf = append(buf, byte(length.Hash))
		buf = append(buf, a.CodeHash[:]...)
	} else {
		buf = append(buf, 0)
	}
	return buf
}

// DeserialiseV3 is the reverse of SerialiseV3.
func DeserialiseV3(a *Account, enc []byte) error {
	a.Reset()
	if len(enc) == 0 {
		return nil
	}
	pos := 0

	nonceLen, err := fieldLen(enc, pos, 8, "nonce")
	if err != nil {
		return err
	}
	pos++
	if nonceLen > 0 {
		a.Nonce = bytesToUint64(enc[pos : pos+nonceLen])
		pos += nonceLen
	}

	balanceLen, err := fieldLen(enc, pos, 32, "balance")
	if err != nil {
		return err
	}
	pos++
	if balanceLen > 0 {
		a.Balance.SetBytes(enc[pos : pos+balanceLen])
		pos += balanceLen
	}

	codeHashLen, err := fieldLen(enc, pos, length.Hash, "code hash")
	if err != nil {
		return err
	}
	pos++
	if codeHashLen > 0 {
		if codeHashLen != length.Hash {
			return fmt.Errorf("accounts: code hash length %d, expected %d", codeHashLen, length.Hash)
		}
		copy(a.CodeHash[:], enc[pos:pos+codeHashLen])
		pos += codeHashLen
	}

	if pos != len(enc) {
		return fmt.Errorf("accounts: %d trailing bytes after decoding", len(enc)-pos)
	}
	return nil
}

// Decode returns a freshly allocated account decoded from enc.
func Decode(enc []byte) (*Account, error) {
	acc := new(Account)
	if err := DeserialiseV3(acc, enc); err != nil {
		return nil, err
	}
	return acc, nil
}

func (a *Account) Reset() {
	a.Nonce = 0
	a.Balance.Clear()
	a.CodeHash = common.Hash{}
}

func fieldLen(enc []byte, pos int, limit int, name string) (int, error) {
	if pos >= len(enc) {
		return 0, fmt.Errorf("%w: missing %s length", ErrShortBuffer, name)
	}
	l := int(enc[pos])
	if l > limit {
		return 0, fmt.Errorf("accounts: %s length %d exceeds %d", name, l, limit)
	}
	if pos+1+l > len(enc) {
		return 0, fmt.Errorf("%w: %s needs %d bytes, have %d", ErrShortBuffer, name, l, len(enc)-pos-1)
	}
	return l, nil
}

func bytesToUint64(buf []byte) (x uint64) {
	for i, b := range buf {
		x = x<<8 + uint64(b)
		if i == 7 {
			return
		}
	}
	return
}
