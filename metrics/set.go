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
	"io"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Set is a group of metrics registered in one prometheus registry. Metric
// names may carry const labels in the `name{key="value",...}` form.
type Set struct {
	mu       sync.Mutex
	registry *prometheus.Registry
	metrics  map[string]metricEntry
}

// metricEntry keeps the kind next to the collector: a prometheus.Gauge also
// satisfies prometheus.Counter, so the kind can't be recovered by assertion.
type metricEntry struct {
	kind      metricKind
	collector prometheus.Collector
}

func NewSet() *Set {
	return &Set{
		registry: prometheus.NewRegistry(),
		metrics:  make(map[string]metricEntry),
	}
}

// lookup returns the collector registered under name, or nil. A collector of
// another kind is an error.
func (s *Set) lookup(name string, kind metricKind) (prometheus.Collector, error) {
	e, ok := s.metrics[name]
	if !ok {
		return nil, nil
	}
	if e.kind != kind {
		return nil, fmt.Errorf("metric %q isn't a %s. It is a %s", name, kind, e.kind)
	}
	return e.collector, nil
}

func (s *Set) GetOrCreateCounter(name string) (prometheus.Counter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.lookup(name, kindCounter)
	if err != nil {
		return nil, err
	}
	if m != nil {
		return m.(prometheus.Counter), nil
	}
	metricName, labels, err := parseMetric(name)
	if err != nil {
		return nil, err
	}
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: metricName, Help: metricName, ConstLabels: labels})
	if err := s.register(name, kindCounter, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Set) GetOrCreateGauge(name string) (prometheus.Gauge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.lookup(name, kindGauge)
	if err != nil {
		return nil, err
	}
	if m != nil {
		return m.(prometheus.Gauge), nil
	}
	metricName, labels, err := parseMetric(name)
	if err != nil {
		return nil, err
	}
	g := prometheus.NewGauge(prometheus.GaugeOpts{Name: metricName, Help: metricName, ConstLabels: labels})
	if err := s.register(name, kindGauge, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Set) register(name string, kind metricKind, c prometheus.Collector) error {
	if err := s.registry.Register(c); err != nil {
		return fmt.Errorf("register %q: %w", name, err)
	}
	s.metrics[name] = metricEntry{kind: kind, collector: c}
	return nil
}

func (s *Set) WriteText(w io.Writer) error {
	families, err := s.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func parseMetric(s string) (string, prometheus.Labels, error) {
	ident, rest, ok := strings.Cut(s, "{")
	if !ok {
		return s, nil, nil
	}
	if !strings.HasSuffix(rest, "}") {
		return "", nil, fmt.Errorf("missing closing curly brace at the end of %q", s)
	}
	rest = strings.TrimSuffix(rest, "}")
	labels := prometheus.Labels{}
	if rest == "" {
		return ident, labels, nil
	}
	for _, pair := range strings.Split(rest, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return "", nil, fmt.Errorf("missing '=' in label %q of %q", pair, s)
		}
		if len(value) < 2 || value[0] != '"' || value[len(value)-1] != '"' {
			return "", nil, fmt.Errorf("label value of %q must be quoted in %q", key, s)
		}
		labels[key] = value[1 : len(value)-1]
	}
	return ident, labels, nil
}
