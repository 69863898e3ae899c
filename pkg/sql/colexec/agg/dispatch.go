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
	"context"

	"github.com/vellumdb/vellum/pkg/common/moerr"
	"github.com/vellumdb/vellum/pkg/container/types"
)

// Operation is a caller-supplied operation body for double dispatch: one
// method per element type of the closed column type system, each invoked
// with the resolved kind and the forwarded argument list. Go has no
// generic methods, so the finite cross-product is spelled as a bounded
// method set; callers typically implement every method as a one-line
// instantiation of their own generic function, which is how the compiler
// is made to emit one specialization per (element type, kind) pair.
//
// Implementations embed UnimplementedOperation to cover the types they
// do not support.
type Operation interface {
	Bool(k Kind, args ...any) (any, error)
	Int8(k Kind, args ...any) (any, error)
	Int16(k Kind, args ...any) (any, error)
	Int32(k Kind, args ...any) (any, error)
	Int64(k Kind, args ...any) (any, error)
	Uint8(k Kind, args ...any) (any, error)
	Uint16(k Kind, args ...any) (any, error)
	Uint32(k Kind, args ...any) (any, error)
	Uint64(k Kind, args ...any) (any, error)
	Float32(k Kind, args ...any) (any, error)
	Float64(k Kind, args ...any) (any, error)
	Date(k Kind, args ...any) (any, error)
	Datetime(k Kind, args ...any) (any, error)
	Time(k Kind, args ...any) (any, error)
	Timestamp(k Kind, args ...any) (any, error)
	Index(k Kind, args ...any) (any, error)
	// Bytes covers the varlen group (char, varchar).
	Bytes(k Kind, args ...any) (any, error)
}

// Dispatch resolves the runtime pair (typ.Oid, k) and invokes the
// matching specialization of op, forwarding args untouched. The kind is
// checked first: an out-of-range value fails before any operation body
// runs. This is the serial control path; failures come back as structured
// errors.
func Dispatch(ctx context.Context, typ types.Type, k Kind, op Operation, args ...any) (any, error) {
	switch k {
	case Sum, Min, Max, Count, Mean, Median, Quantile, ArgMin, ArgMax:
		return dispatchElement(ctx, typ, k, op, args...)
	default:
		// user-defined kinds run through foreign kernels and never
		// reach the dispatcher; anything else is a corrupted value.
		return nil, moerr.NewUnsupportedAggregation(ctx, k)
	}
}

// KernelDispatch is the per-thread kernel form of Dispatch: no error
// values, no allocation on the success path. A kind outside the closed
// set here means the caller launched work without validating it, which is
// a logic defect upstream; the execution unit is terminated immediately
// instead of propagating.
func KernelDispatch(typ types.Type, k Kind, op Operation, args ...any) any {
	switch k {
	case Sum, Min, Max, Count, Mean, Median, Quantile, ArgMin, ArgMax:
	default:
		panic(moerr.NewUnsupportedAggregationNoCtx(k))
	}
	v, err := dispatchElement(moerr.Context(), typ, k, op, args...)
	if err != nil {
		panic(err)
	}
	return v
}

func dispatchElement(ctx context.Context, typ types.Type, k Kind, op Operation, args ...any) (any, error) {
	switch typ.Oid {
	case types.T_bool:
		return op.Bool(k, args...)
	case types.T_int8:
		return op.Int8(k, args...)
	case types.T_int16:
		return op.Int16(k, args...)
	case types.T_int32:
		return op.Int32(k, args...)
	case types.T_int64:
		return op.Int64(k, args...)
	case types.T_uint8:
		return op.Uint8(k, args...)
	case types.T_uint16:
		return op.Uint16(k, args...)
	case types.T_uint32:
		return op.Uint32(k, args...)
	case types.T_uint64:
		return op.Uint64(k, args...)
	case types.T_float32:
		return op.Float32(k, args...)
	case types.T_float64:
		return op.Float64(k, args...)
	case types.T_date:
		return op.Date(k, args...)
	case types.T_datetime:
		return op.Datetime(k, args...)
	case types.T_time:
		return op.Time(k, args...)
	case types.T_timestamp:
		return op.Timestamp(k, args...)
	case types.T_index:
		return op.Index(k, args...)
	case types.T_char, types.T_varchar:
		return op.Bytes(k, args...)
	}
	return nil, moerr.NewNoTypeMapping(ctx, k, typ)
}

// DispatchAggregation gates a constructed descriptor through the validity
// oracle and dispatches it. User-defined descriptors are rejected: their
// kernels are compiled from source by the execution collaborator, not
// selected here.
func DispatchAggregation(ctx context.Context, typ types.Type, a Aggregation, op Operation, args ...any) (any, error) {
	k := a.AggKind()
	if k.IsUserDefined() {
		return nil, moerr.NewNotSupported(ctx, "dispatching user-defined aggregation %s", k)
	}
	if !IsValidAggregation(a, typ) {
		return nil, moerr.NewNoTypeMapping(ctx, k, typ)
	}
	return Dispatch(ctx, typ, k, op, args...)
}

// UnimplementedOperation returns a not-yet-implemented error from every
// method. Embed it to implement Operation partially.
type UnimplementedOperation struct{}

func (UnimplementedOperation) Bool(k Kind, _ ...any) (any, error) {
	return nil, moerr.NewNYINoCtx("%s on bool", k)
}

func (UnimplementedOperation) Int8(k Kind, _ ...any) (any, error) {
	return nil, moerr.NewNYINoCtx("%s on int8", k)
}

func (UnimplementedOperation) Int16(k Kind, _ ...any) (any, error) {
	return nil, moerr.NewNYINoCtx("%s on int16", k)
}

func (UnimplementedOperation) Int32(k Kind, _ ...any) (any, error) {
	return nil, moerr.NewNYINoCtx("%s on int32", k)
}

func (UnimplementedOperation) Int64(k Kind, _ ...any) (any, error) {
	return nil, moerr.NewNYINoCtx("%s on int64", k)
}

func (UnimplementedOperation) Uint8(k Kind, _ ...any) (any, error) {
	return nil, moerr.NewNYINoCtx("%s on uint8", k)
}

func (UnimplementedOperation) Uint16(k Kind, _ ...any) (any, error) {
	return nil, moerr.NewNYINoCtx("%s on uint16", k)
}

func (UnimplementedOperation) Uint32(k Kind, _ ...any) (any, error) {
	return nil, moerr.NewNYINoCtx("%s on uint32", k)
}

func (UnimplementedOperation) Uint64(k Kind, _ ...any) (any, error) {
	return nil, moerr.NewNYINoCtx("%s on uint64", k)
}

func (UnimplementedOperation) Float32(k Kind, _ ...any) (any, error) {
	return nil, moerr.NewNYINoCtx("%s on float32", k)
}

func (UnimplementedOperation) Float64(k Kind, _ ...any) (any, error) {
	return nil, moerr.NewNYINoCtx("%s on float64", k)
}

func (UnimplementedOperation) Date(k Kind, _ ...any) (any, error) {
	return nil, moerr.NewNYINoCtx("%s on date", k)
}

func (UnimplementedOperation) Datetime(k Kind, _ ...any) (any, error) {
	return nil, moerr.NewNYINoCtx("%s on datetime", k)
}

func (UnimplementedOperation) Time(k Kind, _ ...any) (any, error) {
	return nil, moerr.NewNYINoCtx("%s on time", k)
}

func (UnimplementedOperation) Timestamp(k Kind, _ ...any) (any, error) {
	return nil, moerr.NewNYINoCtx("%s on timestamp", k)
}

func (UnimplementedOperation) Index(k Kind, _ ...any) (any, error) {
	return nil, moerr.NewNYINoCtx("%s on index", k)
}

func (UnimplementedOperation) Bytes(k Kind, _ ...any) (any, error) {
	return nil, moerr.NewNYINoCtx("%s on varlen", k)
}
