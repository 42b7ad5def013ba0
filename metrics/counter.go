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


package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Counter is a monotonically increasing prometheus counter that can also be
// read back.
type Counter interface {
	prometheus.Counter
	ValueGetter
	AddInt(v int)
	AddUint64(v uint64)
}

type counter struct {
	prometheus.Counter
}

// GetValue returns native float64 value stored by this counter
func (c *counter) GetValue() float64 { return readValue(c, kindCounter) }

// GetValueUint64 returns the value cast to uint64 for convenience.
func (c *counter) GetValueUint64() uint64 { return uint64(c.GetValue()) }

// AddInt adds v to the native float64 value. Exact for values up to 2^53
// (mantissa bits), which covers cursor operation counts.
func (c *counter) AddInt(v int) { c.Add(float64(v)) }

// AddUint64 is AddInt for uint64, with the same 2^53 precision bound.
func (c *counter) AddUint64(v uint64) { c.Add(float64(v)) }
