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

package config

import (
	"testing"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Weights  map[string]int `mapstructure:"weights"`
	Names    []string       `mapstructure:"names"`
	BaseDate time.Time      `mapstructure:"base_date"`
	Tables   Statements     `mapstructure:"tables"`
}

func decode(t *testing.T, input map[string]interface{}) *testConfig {
	t.Helper()
	res := &testConfig{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       DecodeHook(),
		WeaklyTypedInput: true,
		Result:           res,
	})
	require.NoError(t, err)
	require.NoError(t, dec.Decode(input))
	return res
}

func TestDecodeHook(t *testing.T) {
	cfg := decode(t, map[string]interface{}{
		"weights":   "insert=3, select=1,delete = 0",
		"names":     "Eve,Mallory",
		"base_date": "2022-03-04",
	})
	require.Equal(t, map[string]int{"insert": 3, "select": 1, "delete": 0}, cfg.Weights)
	require.Equal(t, []string{"Eve", "Mallory"}, cfg.Names)
	require.Equal(t, time.Date(2022, 3, 4, 0, 0, 0, 0, time.UTC), cfg.BaseDate)
}

func TestDecodeHook_WeightsSlice(t *testing.T) {
	cfg := decode(t, map[string]interface{}{
		"weights": []string{"insert=2", "update=5"},
	})
	require.Equal(t, map[string]int{"insert": 2, "update": 5}, cfg.Weights)
}

func TestDecodeHook_WeightsMap(t *testing.T) {
	cfg := decode(t, map[string]interface{}{
		"weights": map[string]interface{}{"insert": "4", "drop": 1},
	})
	require.Equal(t, map[string]int{"insert": 4, "drop": 1}, cfg.Weights)
}

func TestDecodeHook_Statements(t *testing.T) {
	cfg := decode(t, map[string]interface{}{
		"tables": "create table a (id int, name text); create table b (price number(10, 2));",
	})
	require.Equal(t, Statements{
		"create table a (id int, name text)",
		"create table b (price number(10, 2))",
	}, cfg.Tables)

	cfg = decode(t, map[string]interface{}{
		"tables": []string{"create table a (id int, name text)"},
	})
	require.Equal(t, Statements{"create table a (id int, name text)"}, cfg.Tables)

	cfg = decode(t, map[string]interface{}{
		"tables": "",
	})
	require.Empty(t, cfg.Tables)
}

func TestParseWeights(t *testing.T) {
	res, err := ParseWeights("")
	require.NoError(t, err)
	require.Empty(t, res)

	_, err = ParseWeights("insert")
	require.ErrorContains(t, err, "name=value")

	_, err = ParseWeights("insert=many")
	require.Error(t, err)
}

func TestParseDays(t *testing.T) {
	tests := []struct {
		raw      string
		expected int64
	}{
		{raw: "3d", expected: 3},
		{raw: "1w2d", expected: 9},
		{raw: "36h", expected: 1},
		{raw: "0s", expected: 0},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			days, err := ParseDays(tt.raw)
			require.NoError(t, err)
			require.Equal(t, tt.expected, days)
		})
	}

	_, err := ParseDays("soon")
	require.Error(t, err)
	_, err = ParseDays("-2d")
	require.Error(t, err)
}
