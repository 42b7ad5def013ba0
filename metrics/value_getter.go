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
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// ValueGetter reads back the current value of a metric, mostly for tests and
// progress logs.
type ValueGetter interface {
	GetValue() float64
	GetValueUint64() uint64
}

type metricKind int

const (
	kindCounter metricKind = iota
	kindGauge
)

func (k metricKind) String() string {
	if k == kindGauge {
		return "Gauge"
	}
	return "Counter"
}

// readValue snapshots m and returns the sample of the given kind.
func readValue(m prometheus.Metric, kind metricKind) float64 {
	var pb dto.Metric
	if err := m.Write(&pb); err != nil {
		panic(fmt.Errorf("calling GetValue with invalid metric: %w", err))
	}
	if kind == kindGauge {
		return pb.GetGauge().GetValue()
	}
	return pb.GetCounter().GetValue()
}
