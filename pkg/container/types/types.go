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

package types

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// T is the semantic type tag of a column. The set is closed: every switch
// over T in the engine is a bounded switch, and an oid outside this set is
// a corrupted value, not an extension point.
type T uint8

const (
	// T_any is the zero tag. It never describes a materialized column.
	T_any T = 0

	T_bool T = 10

	// numeric group
	T_int8    T = 20
	T_int16   T = 21
	T_int32   T = 22
	T_int64   T = 23
	T_uint8   T = 24
	T_uint16  T = 25
	T_uint32  T = 26
	T_uint64  T = 27
	T_float32 T = 30
	T_float64 T = 31

	// temporal group
	T_date      T = 40
	T_datetime  T = 41
	T_time      T = 42
	T_timestamp T = 43

	// T_index is the engine's dedicated row-index / count type.
	// Valid indices are always >= 0, so -1 is reserved for sentinels.
	T_index T = 50

	// varlen group
	T_char    T = 60
	T_varchar T = 61
)

// AllTypes lists every materializable tag, in declaration order. Callers
// that enumerate the closed type set (resolvers, tests, tooling) range
// over this slice instead of guessing oid values.
var AllTypes = []T{
	T_bool,
	T_int8, T_int16, T_int32, T_int64,
	T_uint8, T_uint16, T_uint32, T_uint64,
	T_float32, T_float64,
	T_date, T_datetime, T_time, T_timestamp,
	T_index,
	T_char, T_varchar,
}

// fixed-width Go bindings for the temporal and index tags.
type (
	// Date is days since the unix epoch.
	Date int32
	// Datetime is microseconds since the unix epoch, local time zone.
	Datetime int64
	// Time is microseconds since midnight.
	Time int64
	// Timestamp is microseconds since the unix epoch, UTC.
	Timestamp int64
	// Index is a row position inside a column. Always non-negative for
	// real rows; negative values are reserved sentinels.
	Index int32
)

// Type describes one column's type: the tag plus physical sizing.
type Type struct {
	Oid   T
	Size  int32
	Width int32
	Scale int32
}

// New constructs a Type for the oid with its default physical size.
func New(oid T) Type {
	return Type{Oid: oid, Size: oid.TypeSize()}
}

// ToType is shorthand for New, reading well at call sites:
// types.T_int64.ToType().
func (t T) ToType() Type {
	return New(t)
}

// TypeSize returns the fixed byte width of the tag, or -1 for varlen tags.
func (t T) TypeSize() int32 {
	switch t {
	case T_bool, T_int8, T_uint8:
		return 1
	case T_int16, T_uint16:
		return 2
	case T_int32, T_uint32, T_float32, T_date, T_index:
		return 4
	case T_int64, T_uint64, T_float64, T_datetime, T_time, T_timestamp:
		return 8
	case T_char, T_varchar:
		return -1
	}
	return 0
}

func (t T) String() string {
	switch t {
	case T_any:
		return "any"
	case T_bool:
		return "bool"
	case T_int8:
		return "int8"
	case T_int16:
		return "int16"
	case T_int32:
		return "int32"
	case T_int64:
		return "int64"
	case T_uint8:
		return "uint8"
	case T_uint16:
		return "uint16"
	case T_uint32:
		return "uint32"
	case T_uint64:
		return "uint64"
	case T_float32:
		return "float32"
	case T_float64:
		return "float64"
	case T_date:
		return "date"
	case T_datetime:
		return "datetime"
	case T_time:
		return "time"
	case T_timestamp:
		return "timestamp"
	case T_index:
		return "index"
	case T_char:
		return "char"
	case T_varchar:
		return "varchar"
	}
	return fmt.Sprintf("unknown(%d)", uint8(t))
}

func (t Type) String() string {
	return t.Oid.String()
}

// Eq reports tag equality; physical sizing is derived from the tag and
// does not participate.
func (t Type) Eq(other Type) bool {
	return t.Oid == other.Oid
}

func (t T) IsSignedInt() bool {
	switch t {
	case T_int8, T_int16, T_int32, T_int64:
		return true
	}
	return false
}

func (t T) IsUnsignedInt() bool {
	switch t {
	case T_uint8, T_uint16, T_uint32, T_uint64:
		return true
	}
	return false
}

func (t T) IsInteger() bool {
	return t.IsSignedInt() || t.IsUnsignedInt()
}

func (t T) IsFloat() bool {
	return t == T_float32 || t == T_float64
}

func (t T) IsNumeric() bool {
	return t.IsInteger() || t.IsFloat()
}

func (t T) IsTemporal() bool {
	switch t {
	case T_date, T_datetime, T_time, T_timestamp:
		return true
	}
	return false
}

func (t T) IsVarlen() bool {
	return t == T_char || t == T_varchar
}

func (t T) IsFixedLen() bool {
	return t != T_any && !t.IsVarlen()
}

func (t Type) IsVarlen() bool {
	return t.Oid.IsVarlen()
}

// constraint unions over the Go bindings of the closed tag set.
type (
	Ints interface {
		int8 | int16 | int32 | int64
	}

	UInts interface {
		uint8 | uint16 | uint32 | uint64
	}

	Floats interface {
		float32 | float64
	}

	Temporal interface {
		Date | Datetime | Time | Timestamp
	}

	// FixedSizeT covers every fixed-width element a column can hold.
	FixedSizeT interface {
		bool | Ints | UInts | Floats | Temporal | Index
	}

	// OrderedT covers fixed-width elements with a total order.
	OrderedT interface {
		Ints | UInts | Floats | Temporal | Index
	}
)

// Number is the constraint used by arithmetic combines.
type Number interface {
	constraints.Integer | constraints.Float
}
