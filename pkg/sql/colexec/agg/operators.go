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
	"github.com/vellumdb/vellum/pkg/container/types"
)

// Combine operators for the plain reductions. Only MIN, MAX and SUM map
// to a binary associative commutative operator; the remaining kinds need
// auxiliary state (running counts, positional indices, sorted buffers)
// that a binary combine cannot express, so no operator exists for them
// and code asking for one does not compile.
//
// All three are pure and allocation free: parallel reduction trees call
// them per element.

// CombineMin returns the smaller operand.
func CombineMin[T types.OrderedT](a, b T) T {
	if b < a {
		return b
	}
	return a
}

// CombineMax returns the larger operand.
func CombineMax[T types.OrderedT](a, b T) T {
	if b > a {
		return b
	}
	return a
}

// Summable constrains element types with additive structure: integers
// widen into int64 accumulators, floats and temporal values accumulate
// in their own type. The temporal bindings satisfy types.Number through
// their integer representation.
type Summable interface {
	types.Number
}

// CombineAdd returns the sum of the operands.
func CombineAdd[T Summable](a, b T) T {
	return a + b
}
