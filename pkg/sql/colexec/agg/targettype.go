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

package agg

import (
	"github.com/vellumdb/vellum/pkg/common/moerr"
	"github.com/vellumdb/vellum/pkg/container/types"
)

// ArgMinSentinel initializes ARGMIN output buffers to mark groups with no
// contributing element. Valid indices are never negative, so -1 is
// unambiguous.
const ArgMinSentinel types.Index = -1

// ArgMaxSentinel initializes ARGMAX output buffers, same convention as
// ArgMinSentinel.
const ArgMaxSentinel types.Index = -1

// Element constrains the Go bindings of the element tags. []byte stands
// for the varlen group.
type Element interface {
	types.FixedSizeT | []byte
}

// targetOid is the single source of truth for the accumulator rules,
// shared by the runtime and the generic resolver. The kinds are mutually
// exclusive; the switch order carries no precedence.
func targetOid(src types.T, k Kind) (types.T, bool) {
	if src == types.T_any || src.TypeSize() == 0 {
		return types.T_any, false
	}
	switch k {
	case Min, Max:
		// min/max accumulate in the element's own type.
		return src, true
	case Count:
		return types.T_index, true
	case Mean:
		return types.T_float64, true
	case Sum:
		switch {
		case src.IsInteger(), src == types.T_index:
			// integer sums widen to avoid overflow.
			return types.T_int64, true
		case src.IsFloat(), src.IsTemporal():
			return src, true
		}
		return types.T_any, false
	case Quantile, Median:
		// median resolves straight to the quantile result type.
		return types.T_float64, true
	case ArgMin, ArgMax:
		return types.T_index, true
	}
	// user-defined kinds carry a declared output type instead of a rule,
	// and anything else has no mapping.
	return types.T_any, false
}

// TargetType resolves the accumulator/output type for aggregating
// elements of src with kind k. ok is false when no mapping exists.
func TargetType(src types.Type, k Kind) (typ types.Type, ok bool) {
	oid, ok := targetOid(src.Oid, k)
	if !ok {
		return types.Type{}, false
	}
	return oid.ToType(), true
}

// TargetTypeOf is the compile-time form of TargetType: the element type
// is a type parameter instead of a runtime tag.
func TargetTypeOf[T Element](k Kind) (types.T, bool) {
	return targetOid(elementOid[T](), k)
}

// IsValid reports whether aggregating elements of src with kind k is
// legal. It never disagrees with TargetType.
func IsValid(src types.Type, k Kind) bool {
	_, ok := TargetType(src, k)
	return ok
}

// IsValidOf is the compile-time form of IsValid.
func IsValidOf[T Element](k Kind) bool {
	_, ok := TargetTypeOf[T](k)
	return ok
}

// OutputType resolves the output type of a constructed descriptor against
// an input column type. User-defined descriptors return their declared
// output type as ground truth; everything else goes through TargetType.
func OutputType(a Aggregation, src types.Type) (types.Type, error) {
	k := a.AggKind()
	if !k.Valid() {
		return types.Type{}, moerr.NewUnsupportedAggregationNoCtx(k)
	}
	if k.IsUserDefined() {
		return a.(*UDFAggregation).OutputType(), nil
	}
	typ, ok := TargetType(src, k)
	if !ok {
		return types.Type{}, moerr.NewNoTypeMappingNoCtx(k, src)
	}
	return typ, nil
}

// IsValidAggregation is the descriptor-aware validity gate. User-defined
// descriptors are always valid: there is no inference to fail, and errors
// in their foreign source surface in the execution kernel, not here.
func IsValidAggregation(a Aggregation, src types.Type) bool {
	if a.AggKind().IsUserDefined() {
		return true
	}
	return IsValid(src, a.AggKind())
}

// elementOid maps a bound Go element type back to its tag.
func elementOid[T Element]() types.T {
	var v T
	switch any(v).(type) {
	case bool:
		return types.T_bool
	case int8:
		return types.T_int8
	case int16:
		return types.T_int16
	case int32:
		return types.T_int32
	case int64:
		return types.T_int64
	case uint8:
		return types.T_uint8
	case uint16:
		return types.T_uint16
	case uint32:
		return types.T_uint32
	case uint64:
		return types.T_uint64
	case float32:
		return types.T_float32
	case float64:
		return types.T_float64
	case types.Date:
		return types.T_date
	case types.Datetime:
		return types.T_datetime
	case types.Time:
		return types.T_time
	case types.Timestamp:
		return types.T_timestamp
	case types.Index:
		return types.T_index
	case []byte:
		return types.T_varchar
	}
	return types.T_any
}
