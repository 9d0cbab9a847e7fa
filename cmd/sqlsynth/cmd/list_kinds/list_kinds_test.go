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

package list_kinds

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/greenmaskio/sqlsynth/internal/synth"
)

func setup(t *testing.T, f string, weights map[string]int) {
	t.Helper()
	origFormat, origWeights := format, Config.Generate.Weights
	t.Cleanup(func() {
		format, Config.Generate.Weights = origFormat, origWeights
	})
	format, Config.Generate.Weights = f, weights
}

func TestRun_JsonUniform(t *testing.T) {
	setup(t, JsonFormatName, nil)
	out := &bytes.Buffer{}
	require.NoError(t, run(out))

	var info []*kindInfo
	require.NoError(t, json.Unmarshal(out.Bytes(), &info))
	require.Len(t, info, 7)
	names := make([]string, 0, len(info))
	for _, ki := range info {
		names = append(names, ki.Name)
		require.Equal(t, 1, ki.Weight)
		require.InDelta(t, 1.0/7, ki.Probability, 1e-9)
		require.NotEmpty(t, ki.Description)
	}
	require.Equal(t, []string{"create", "alter", "drop", "insert", "select", "update", "delete"}, names)
}

func TestRun_JsonWeighted(t *testing.T) {
	setup(t, JsonFormatName, map[string]int{"insert": 3, "select": 1})
	out := &bytes.Buffer{}
	require.NoError(t, run(out))

	var info []*kindInfo
	require.NoError(t, json.Unmarshal(out.Bytes(), &info))
	require.Equal(t, 0, info[0].Weight)
	require.Equal(t, 3, info[3].Weight)
	require.InDelta(t, 0.75, info[3].Probability, 1e-9)
	require.InDelta(t, 0.25, info[4].Probability, 1e-9)
}

func TestRun_Text(t *testing.T) {
	setup(t, TextFormatName, map[string]int{"delete": 1})
	out := &bytes.Buffer{}
	require.NoError(t, run(out))
	require.Contains(t, out.String(), "DESCRIPTION")
	require.Contains(t, out.String(), "100.0%")
}

func TestRun_Errors(t *testing.T) {
	setup(t, TextFormatName, map[string]int{"insert": 0})
	require.ErrorIs(t, run(&bytes.Buffer{}), synth.ErrZeroWeights)

	setup(t, "xml", nil)
	require.Error(t, run(&bytes.Buffer{}))
}
