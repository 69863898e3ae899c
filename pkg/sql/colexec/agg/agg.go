// Copyright 2023 Vellum Project
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package agg is the aggregation resolution and dispatch core of the
// engine. It decides which (element type, aggregation kind) combinations
// are legal, which accumulator type each combination requires, and routes
// callers to a specialization for the exact pair. It computes nothing
// itself: execution kernels consume the resolved types and dispatch.
package agg

import (
	"github.com/vellumdb/vellum/pkg/common/moerr"
	"github.com/vellumdb/vellum/pkg/container/types"
)

// Kind is one member of the closed set of aggregation operations.
type Kind int32

const (
	Sum Kind = iota
	Min
	Max
	Count
	Mean
	Median
	Quantile
	ArgMin
	ArgMax
	// DeviceSource and PortableSource are user-defined aggregations
	// carrying foreign kernel source text: accelerator-native code and
	// portable intermediate code respectively.
	DeviceSource
	PortableSource

	kindEnd
)

// Names indexes kind display names by Kind.
var Names = [...]string{
	Sum:            "sum",
	Min:            "min",
	Max:            "max",
	Count:          "count",
	Mean:           "mean",
	Median:         "median",
	Quantile:       "quantile",
	ArgMin:         "argmin",
	ArgMax:         "argmax",
	DeviceSource:   "device_udf",
	PortableSource: "portable_udf",
}

func (k Kind) String() string {
	if !k.Valid() {
		return "invalid"
	}
	return Names[k]
}

// Valid reports whether k belongs to the closed enumeration. A false
// result means a corrupted or miscast value, never an extension.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindEnd
}

// IsUserDefined reports whether k carries caller-supplied kernel source.
func (k Kind) IsUserDefined() bool {
	return k == DeviceSource || k == PortableSource
}

// Interpolation selects how quantile kernels interpolate between ranks.
// The core validates membership and forwards the mode opaque.
type Interpolation uint8

const (
	Nearest Interpolation = iota
	Linear
	Lower
	Higher
	Midpoint

	interpolationEnd
)

var interpolationNames = [...]string{
	Nearest:  "nearest",
	Linear:   "linear",
	Lower:    "lower",
	Higher:   "higher",
	Midpoint: "midpoint",
}

func (i Interpolation) String() string {
	if i >= interpolationEnd {
		return "invalid"
	}
	return interpolationNames[i]
}

func (i Interpolation) Valid() bool {
	return i < interpolationEnd
}

// Aggregation describes one requested aggregation. Values are immutable
// once constructed and are never retained by the resolver or dispatcher
// beyond the call.
type Aggregation interface {
	AggKind() Kind
}

type plainAggregation struct {
	kind Kind
}

func (a plainAggregation) AggKind() Kind { return a.kind }

// QuantileAggregation carries the ordered fractions and the interpolation
// mode for QUANTILE and MEDIAN requests.
type QuantileAggregation struct {
	kind          Kind
	quantiles     []float64
	interpolation Interpolation
}

func (a *QuantileAggregation) AggKind() Kind { return a.kind }

// Quantiles returns the requested fractions. Callers must not mutate the
// returned slice.
func (a *QuantileAggregation) Quantiles() []float64 {
	return a.quantiles
}

func (a *QuantileAggregation) Interpolation() Interpolation {
	return a.interpolation
}

// UDFAggregation carries user-supplied kernel source and its declared
// output type. The output type cannot be inferred and is taken as ground
// truth.
type UDFAggregation struct {
	kind       Kind
	source     string
	outputType types.Type
}

func (a *UDFAggregation) AggKind() Kind { return a.kind }

func (a *UDFAggregation) Source() string { return a.source }

func (a *UDFAggregation) OutputType() types.Type { return a.outputType }

func NewSum() Aggregation    { return plainAggregation{kind: Sum} }
func NewMin() Aggregation    { return plainAggregation{kind: Min} }
func NewMax() Aggregation    { return plainAggregation{kind: Max} }
func NewCount() Aggregation  { return plainAggregation{kind: Count} }
func NewMean() Aggregation   { return plainAggregation{kind: Mean} }
func NewArgMin() Aggregation { return plainAggregation{kind: ArgMin} }
func NewArgMax() Aggregation { return plainAggregation{kind: ArgMax} }

// NewQuantile builds a QUANTILE descriptor. Each fraction must lie in
// [0, 1] and at least one fraction is required.
func NewQuantile(quantiles []float64, interpolation Interpolation) (*QuantileAggregation, error) {
	if len(quantiles) == 0 {
		return nil, moerr.NewMalformedAggSpecNoCtx("quantile requires at least one fraction")
	}
	for _, q := range quantiles {
		if q < 0 || q > 1 {
			return nil, moerr.NewMalformedAggSpecNoCtx("quantile fraction %v out of range [0, 1]", q)
		}
	}
	if !interpolation.Valid() {
		return nil, moerr.NewMalformedAggSpecNoCtx("unknown interpolation mode %d", uint8(interpolation))
	}
	qs := make([]float64, len(quantiles))
	copy(qs, quantiles)
	return &QuantileAggregation{kind: Quantile, quantiles: qs, interpolation: interpolation}, nil
}

// NewMedian builds a MEDIAN descriptor: the fixed 0.5 specialization of
// the quantile machinery.
func NewMedian() *QuantileAggregation {
	return &QuantileAggregation{kind: Median, quantiles: []float64{0.5}, interpolation: Linear}
}

// NewDeviceSource builds a user-defined aggregation from
// accelerator-native kernel source.
func NewDeviceSource(source string, outputType types.Type) (*UDFAggregation, error) {
	return newUDF(DeviceSource, source, outputType)
}

// NewPortableSource builds a user-defined aggregation from portable
// intermediate kernel source.
func NewPortableSource(source string, outputType types.Type) (*UDFAggregation, error) {
	return newUDF(PortableSource, source, outputType)
}

func newUDF(kind Kind, source string, outputType types.Type) (*UDFAggregation, error) {
	if len(source) == 0 {
		return nil, moerr.NewMalformedAggSpecNoCtx("user-defined aggregation requires kernel source")
	}
	return &UDFAggregation{kind: kind, source: source, outputType: outputType}, nil
}
