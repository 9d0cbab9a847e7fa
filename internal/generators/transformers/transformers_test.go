// Copyright 2025 Greenmask
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package transformers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/greenmaskio/sqlsynth/internal/generators"
)

func TestInt64Limiter_Limit(t *testing.T) {
	l, err := NewInt64Limiter(1, 100)
	require.NoError(t, err)
	require.Equal(t, int64(1), l.Limit(0))
	require.Equal(t, int64(99), l.Limit(98))
	require.Equal(t, int64(1), l.Limit(99))
}

func TestNewInt64Limiter_WrongLimits(t *testing.T) {
	_, err := NewInt64Limiter(10, 10)
	require.ErrorIs(t, err, ErrWrongLimits)
}

func TestRandomInt64Transformer_Transform(t *testing.T) {
	l, err := NewInt64Limiter(1, 100)
	require.NoError(t, err)
	tr, err := NewRandomInt64Transformer(l, 8)
	require.NoError(t, err)
	require.NoError(t, tr.SetGenerator(generators.NewRandomBytes(1, 8)))
	for i := 0; i < 1000; i++ {
		v, err := tr.Transform(nil, nil)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, int64(1))
		require.Less(t, v, int64(100))
	}

	override, err := NewInt64Limiter(2, 11)
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		v, err := tr.Transform(override, nil)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, int64(2))
		require.LessOrEqual(t, v, int64(10))
	}
}

func TestRandomInt64Transformer_SetGenerator(t *testing.T) {
	tr, err := NewRandomInt64Transformer(nil, 8)
	require.NoError(t, err)
	require.Error(t, tr.SetGenerator(generators.NewRandomBytes(1, 4)))
}

func TestChoiceTransformer_Transform(t *testing.T) {
	data := []string{"a", "b"}
	tr, err := NewRandomChoiceTransformer(data)
	require.NoError(t, err)
	g, err := generators.NewHash([]byte{}, generators.Sha1Name)
	require.NoError(t, err)
	g = generators.NewHashReducer(g, tr.GetRequiredGeneratorByteLength())
	require.NoError(t, tr.SetGenerator(g))
	res, err := tr.Transform([]byte{})
	require.NoError(t, err)
	require.Contains(t, data, res)
}

func TestNewRandomChoiceTransformer_Empty(t *testing.T) {
	_, err := NewRandomChoiceTransformer(nil)
	require.Error(t, err)
}

func TestRandomDecimalTransformer_Transform(t *testing.T) {
	l, err := NewInt64Limiter(1, 100)
	require.NoError(t, err)
	for _, scale := range []int32{0, 1, 2, 5} {
		tr, err := NewRandomDecimalTransformer(l, scale)
		require.NoError(t, err)
		require.NoError(t, tr.SetGenerator(generators.NewRandomBytes(int64(scale), 8)))
		for i := 0; i < 100; i++ {
			v, err := tr.Transform(nil)
			require.NoError(t, err)
			s := tr.Format(v)
			if scale == 0 {
				require.NotContains(t, s, ".")
				continue
			}
			parts := strings.Split(s, ".")
			require.Len(t, parts, 2)
			require.Len(t, parts[1], int(scale))
		}
	}
}

func TestRandomDateTransformer_Transform(t *testing.T) {
	base := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	tr, err := NewRandomDateTransformer(base, 3)
	require.NoError(t, err)
	require.NoError(t, tr.SetGenerator(generators.NewRandomBytes(7, 8)))

	upper := time.Date(2026, 10, 19, 15, 30, 0, 0, time.Local)
	for i := 0; i < 100; i++ {
		res, err := tr.Transform(upper, nil)
		require.NoError(t, err)
		require.False(t, res.After(upper))
		require.Equal(t, 2021, res.Year())
		require.Equal(t, time.January, res.Month())
		require.LessOrEqual(t, res.Day(), 3)
	}
}

func TestRandomDateTransformer_ClampsToUpper(t *testing.T) {
	base := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	tr, err := NewRandomDateTransformer(base, 3)
	require.NoError(t, err)
	require.NoError(t, tr.SetGenerator(generators.NewRandomBytes(7, 8)))

	upper := time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC)
	res, err := tr.Transform(upper, nil)
	require.NoError(t, err)
	require.Equal(t, "2026-10-19", res.Format(time.DateOnly))
}

func TestRandomDateTransformer_Truncate(t *testing.T) {
	tr, err := NewRandomDateTransformer(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), 3)
	require.NoError(t, err)
	res := tr.Truncate(time.Date(2024, 2, 29, 23, 59, 59, 10, time.UTC))
	require.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), res)

	loc := time.FixedZone("UTC+5", 5*60*60)
	res = tr.Truncate(time.Date(2024, 3, 1, 1, 0, 0, 0, loc))
	require.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, loc), res)
}
