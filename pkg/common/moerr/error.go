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

package moerr

import (
	"context"
	"fmt"

	"github.com/vellumdb/vellum/pkg/util/errutil"
)

const (
	// 0 - 99 is OK. Special handled, no alloc.
	Ok uint16 = 0

	// Group 1: internal errors
	ErrStart        uint16 = 20100
	ErrInternal     uint16 = 20101
	ErrNYI          uint16 = 20102
	ErrNotSupported uint16 = 20103

	// Group 3: invalid input
	ErrInvalidInput uint16 = 20301
	ErrInvalidArg   uint16 = 20302

	// Group 6: aggregation resolution
	ErrUnsupportedAggregation uint16 = 20601
	ErrNoTypeMapping          uint16 = 20602
	ErrMalformedAggSpec       uint16 = 20603

	// ErrEnd, max value of error code
	ErrEnd uint16 = 65535
)

type moErrorMsgItem struct {
	errorMsgOrFormat string
}

var errorMsgRefer = map[uint16]moErrorMsgItem{
	ErrInternal:     {"internal error: %s"},
	ErrNYI:          {"%s is not yet implemented"},
	ErrNotSupported: {"%s is not supported"},

	ErrInvalidInput: {"invalid input: %s"},
	ErrInvalidArg:   {"invalid argument %s, bad value %v"},

	ErrUnsupportedAggregation: {"aggregation kind %s is outside the supported set"},
	ErrNoTypeMapping:          {"no target type mapping for aggregation %s on element type %s"},
	ErrMalformedAggSpec:       {"malformed aggregation: %s"},

	ErrEnd: {"internal error: end of errcode code"},
}

func newError(ctx context.Context, code uint16, args ...any) *Error {
	var err *Error
	item, has := errorMsgRefer[code]
	if !has {
		panic(fmt.Sprintf("not exist error code: %d", code))
	}
	if len(args) == 0 {
		err = &Error{
			code:    code,
			message: item.errorMsgOrFormat,
		}
	} else {
		err = &Error{
			code:    code,
			message: fmt.Sprintf(item.errorMsgOrFormat, args...),
		}
	}
	_ = errutil.WithContextWithDepth(ctx, err, 2)
	return err
}

// Error is the structured failure value of the serial control path.
// A nil *Error never escapes a constructor.
type Error struct {
	code    uint16
	message string
	detail  string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Detail() string {
	return e.detail
}

func (e *Error) Display() string {
	if len(e.detail) == 0 {
		return e.message
	}
	return fmt.Sprintf("%s: %s", e.message, e.detail)
}

func (e *Error) ErrorCode() uint16 {
	return e.code
}

func (e *Error) WithDetail(detail string) *Error {
	e.detail = detail
	return e
}

// Is supports errors.Is against another *Error by code.
func (e *Error) Is(err error) bool {
	t, ok := err.(*Error)
	if !ok {
		return false
	}
	return t.code == e.code
}

// IsErrorCode reports whether err is a vellum error carrying the code rc.
func IsErrorCode(e error, rc uint16) bool {
	if me, ok := e.(*Error); ok {
		return me.ErrorCode() == rc
	}
	return false
}

func (e *Error) Succeeded() bool {
	return e.code < OkMax
}

const OkMax uint16 = 99

/*
Constructors. The ctx-ful form reports the error through errutil before
returning it; the NoCtx form is for code that has no session context,
typically deep inside resolution and dispatch.
*/

func NewInternalError(ctx context.Context, msg string, args ...any) *Error {
	return newError(ctx, ErrInternal, fmt.Sprintf(msg, args...))
}

func NewInternalErrorNoCtx(msg string, args ...any) *Error {
	return NewInternalError(Context(), msg, args...)
}

func NewNYI(ctx context.Context, msg string, args ...any) *Error {
	return newError(ctx, ErrNYI, fmt.Sprintf(msg, args...))
}

func NewNYINoCtx(msg string, args ...any) *Error {
	return NewNYI(Context(), msg, args...)
}

func NewNotSupported(ctx context.Context, msg string, args ...any) *Error {
	return newError(ctx, ErrNotSupported, fmt.Sprintf(msg, args...))
}

func NewNotSupportedNoCtx(msg string, args ...any) *Error {
	return NewNotSupported(Context(), msg, args...)
}

func NewInvalidInput(ctx context.Context, msg string, args ...any) *Error {
	return newError(ctx, ErrInvalidInput, fmt.Sprintf(msg, args...))
}

func NewInvalidInputNoCtx(msg string, args ...any) *Error {
	return NewInvalidInput(Context(), msg, args...)
}

func NewInvalidArg(ctx context.Context, arg string, val any) *Error {
	return newError(ctx, ErrInvalidArg, arg, val)
}

func NewInvalidArgNoCtx(arg string, val any) *Error {
	return NewInvalidArg(Context(), arg, val)
}

func NewUnsupportedAggregation(ctx context.Context, kind fmt.Stringer) *Error {
	return newError(ctx, ErrUnsupportedAggregation, kind.String())
}

func NewUnsupportedAggregationNoCtx(kind fmt.Stringer) *Error {
	return NewUnsupportedAggregation(Context(), kind)
}

func NewNoTypeMapping(ctx context.Context, kind, typ fmt.Stringer) *Error {
	return newError(ctx, ErrNoTypeMapping, kind.String(), typ.String())
}

func NewNoTypeMappingNoCtx(kind, typ fmt.Stringer) *Error {
	return NewNoTypeMapping(Context(), kind, typ)
}

func NewMalformedAggSpec(ctx context.Context, msg string, args ...any) *Error {
	return newError(ctx, ErrMalformedAggSpec, fmt.Sprintf(msg, args...))
}

func NewMalformedAggSpecNoCtx(msg string, args ...any) *Error {
	return NewMalformedAggSpec(Context(), msg, args...)
}

// Context returns the background context used by the NoCtx constructors.
func Context() context.Context {
	return context.Background()
}
