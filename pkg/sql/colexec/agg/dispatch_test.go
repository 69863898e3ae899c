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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vellumdb/vellum/pkg/common/moerr"
	"github.com/vellumdb/vellum/pkg/container/types"
)

// probe records which specialization the dispatcher selected.
type probe struct {
	method string
	kind   Kind
	args   []any
}

func (p *probe) hit(method string, k Kind, args []any) (any, error) {
	p.method = method
	p.kind = k
	p.args = args
	return method, nil
}

func (p *probe) Bool(k Kind, args ...any) (any, error)      { return p.hit("bool", k, args) }
func (p *probe) Int8(k Kind, args ...any) (any, error)      { return p.hit("int8", k, args) }
func (p *probe) Int16(k Kind, args ...any) (any, error)     { return p.hit("int16", k, args) }
func (p *probe) Int32(k Kind, args ...any) (any, error)     { return p.hit("int32", k, args) }
func (p *probe) Int64(k Kind, args ...any) (any, error)     { return p.hit("int64", k, args) }
func (p *probe) Uint8(k Kind, args ...any) (any, error)     { return p.hit("uint8", k, args) }
func (p *probe) Uint16(k Kind, args ...any) (any, error)    { return p.hit("uint16", k, args) }
func (p *probe) Uint32(k Kind, args ...any) (any, error)    { return p.hit("uint32", k, args) }
func (p *probe) Uint64(k Kind, args ...any) (any, error)    { return p.hit("uint64", k, args) }
func (p *probe) Float32(k Kind, args ...any) (any, error)   { return p.hit("float32", k, args) }
func (p *probe) Float64(k Kind, args ...any) (any, error)   { return p.hit("float64", k, args) }
func (p *probe) Date(k Kind, args ...any) (any, error)      { return p.hit("date", k, args) }
func (p *probe) Datetime(k Kind, args ...any) (any, error)  { return p.hit("datetime", k, args) }
func (p *probe) Time(k Kind, args ...any) (any, error)      { return p.hit("time", k, args) }
func (p *probe) Timestamp(k Kind, args ...any) (any, error) { return p.hit("timestamp", k, args) }
func (p *probe) Index(k Kind, args ...any) (any, error)     { return p.hit("index", k, args) }
func (p *probe) Bytes(k Kind, args ...any) (any, error)     { return p.hit("bytes", k, args) }

// expected specialization per element tag.
var wantMethod = map[types.T]string{
	types.T_bool:      "bool",
	types.T_int8:      "int8",
	types.T_int16:     "int16",
	types.T_int32:     "int32",
	types.T_int64:     "int64",
	types.T_uint8:     "uint8",
	types.T_uint16:    "uint16",
	types.T_uint32:    "uint32",
	types.T_uint64:    "uint64",
	types.T_float32:   "float32",
	types.T_float64:   "float64",
	types.T_date:      "date",
	types.T_datetime:  "datetime",
	types.T_time:      "time",
	types.T_timestamp: "timestamp",
	types.T_index:     "index",
	types.T_char:      "bytes",
	types.T_varchar:   "bytes",
}

func TestDispatchDeterminism(t *testing.T) {
	ctx := context.Background()
	dispatchable := []Kind{Sum, Min, Max, Count, Mean, Median, Quantile, ArgMin, ArgMax}
	for _, oid := range types.AllTypes {
		for _, k := range dispatchable {
			p := new(probe)
			got, err := Dispatch(ctx, oid.ToType(), k, p, 1, "x")
			require.NoError(t, err)
			require.Equal(t, wantMethod[oid], got)
			require.Equal(t, wantMethod[oid], p.method)
			require.Equal(t, k, p.kind)
			require.Equal(t, []any{1, "x"}, p.args)
		}
	}
}

func TestDispatchRejectsBadKindBeforeBody(t *testing.T) {
	ctx := context.Background()
	for _, k := range []Kind{Kind(999), Kind(-1), kindEnd} {
		p := new(probe)
		_, err := Dispatch(ctx, types.T_int32.ToType(), k, p)
		require.True(t, moerr.IsErrorCode(err, moerr.ErrUnsupportedAggregation))
		require.Empty(t, p.method, "operation body must not run")
	}
}

func TestDispatchRejectsUserDefinedKinds(t *testing.T) {
	ctx := context.Background()
	for _, k := range []Kind{DeviceSource, PortableSource} {
		p := new(probe)
		_, err := Dispatch(ctx, types.T_int32.ToType(), k, p)
		require.True(t, moerr.IsErrorCode(err, moerr.ErrUnsupportedAggregation))
		require.Empty(t, p.method)
	}
}

func TestDispatchRejectsUnknownElementTag(t *testing.T) {
	p := new(probe)
	_, err := Dispatch(context.Background(), types.Type{Oid: types.T(99)}, Sum, p)
	require.True(t, moerr.IsErrorCode(err, moerr.ErrNoTypeMapping))
	require.Empty(t, p.method)
}

func TestKernelDispatch(t *testing.T) {
	p := new(probe)
	got := KernelDispatch(types.T_float64.ToType(), Max, p, 42)
	require.Equal(t, "float64", got)
	require.Equal(t, Max, p.kind)
	require.Equal(t, []any{42}, p.args)
}

func TestKernelDispatchAbortsOnBadKind(t *testing.T) {
	p := new(probe)
	require.Panics(t, func() {
		KernelDispatch(types.T_int32.ToType(), Kind(999), p)
	})
	require.Empty(t, p.method, "operation body must not run")
}

func TestKernelDispatchAbortsOnOperationError(t *testing.T) {
	var op UnimplementedOperation
	require.Panics(t, func() {
		KernelDispatch(types.T_int32.ToType(), Sum, op)
	})
}

func TestDispatchAggregation(t *testing.T) {
	ctx := context.Background()

	q, err := NewQuantile([]float64{0.9}, Higher)
	require.NoError(t, err)
	p := new(probe)
	got, err := DispatchAggregation(ctx, types.T_int32.ToType(), q, p)
	require.NoError(t, err)
	require.Equal(t, "int32", got)
	require.Equal(t, Quantile, p.kind)

	// the oracle gates dispatch: no body runs for an illegal pair.
	p = new(probe)
	_, err = DispatchAggregation(ctx, types.T_varchar.ToType(), NewSum(), p)
	require.True(t, moerr.IsErrorCode(err, moerr.ErrNoTypeMapping))
	require.Empty(t, p.method)

	udf, err := NewPortableSource("src", types.T_int64.ToType())
	require.NoError(t, err)
	p = new(probe)
	_, err = DispatchAggregation(ctx, types.T_int32.ToType(), udf, p)
	require.True(t, moerr.IsErrorCode(err, moerr.ErrNotSupported))
	require.Empty(t, p.method)
}

func TestUnimplementedOperation(t *testing.T) {
	var op UnimplementedOperation
	_, err := op.Int32(Sum)
	require.True(t, moerr.IsErrorCode(err, moerr.ErrNYI))
	_, err = op.Bytes(Min)
	require.True(t, moerr.IsErrorCode(err, moerr.ErrNYI))
}
