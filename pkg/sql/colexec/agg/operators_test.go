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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vellumdb/vellum/pkg/container/types"
)

func TestCombineMinMax(t *testing.T) {
	require.Equal(t, int32(-3), CombineMin(int32(-3), 5))
	require.Equal(t, int32(5), CombineMax(int32(-3), 5))
	require.Equal(t, 1.5, CombineMin(2.5, 1.5))
	require.Equal(t, 2.5, CombineMax(2.5, 1.5))
	require.Equal(t, types.Timestamp(10), CombineMin(types.Timestamp(10), types.Timestamp(20)))
	require.Equal(t, types.Timestamp(20), CombineMax(types.Timestamp(10), types.Timestamp(20)))
}

func TestCombineAdd(t *testing.T) {
	require.Equal(t, int64(7), CombineAdd(int64(3), 4))
	require.Equal(t, 0.75, CombineAdd(0.5, 0.25))
	require.Equal(t, types.Datetime(30), CombineAdd(types.Datetime(10), types.Datetime(20)))
}

func TestCombineAlgebra(t *testing.T) {
	vals := []int64{-9, -1, 0, 3, 42}
	for _, a := range vals {
		for _, b := range vals {
			// commutativity
			require.Equal(t, CombineMin(a, b), CombineMin(b, a))
			require.Equal(t, CombineMax(a, b), CombineMax(b, a))
			require.Equal(t, CombineAdd(a, b), CombineAdd(b, a))
			for _, c := range vals {
				// associativity
				require.Equal(t,
					CombineMin(CombineMin(a, b), c),
					CombineMin(a, CombineMin(b, c)))
				require.Equal(t,
					CombineMax(CombineMax(a, b), c),
					CombineMax(a, CombineMax(b, c)))
				require.Equal(t,
					CombineAdd(CombineAdd(a, b), c),
					CombineAdd(a, CombineAdd(b, c)))
			}
		}
	}
}
