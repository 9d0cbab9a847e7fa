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

package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/greenmaskio/sqlsynth/internal/schema"
	"github.com/greenmaskio/sqlsynth/internal/sqlgen"
)

const testDDL = "create table test_table (id number(10) primary key, name varchar(255))"

func setFlags(t *testing.T, kind string, n int) {
	t.Helper()
	origKind, origCount := kindName, count
	t.Cleanup(func() {
		kindName, count = origKind, origCount
	})
	kindName, count = kind, n
}

func TestRun_Create(t *testing.T) {
	setFlags(t, "create", 1)
	out := &bytes.Buffer{}
	require.NoError(t, run(out, testDDL, nil))
	require.Equal(t, "CREATE TABLE test_table (id number(10) NOT NULL PRIMARY KEY, name varchar(255));\n", out.String())
}

func TestRun_Seeded(t *testing.T) {
	setFlags(t, "update", 5)
	seedValue := int64(7)

	first := &bytes.Buffer{}
	require.NoError(t, run(first, testDDL, &seedValue))
	second := &bytes.Buffer{}
	require.NoError(t, run(second, testDDL, &seedValue))
	require.Equal(t, first.String(), second.String())

	lines := strings.Split(strings.TrimSuffix(first.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	for _, l := range lines {
		require.True(t, strings.HasPrefix(l, "UPDATE test_table SET id = "), l)
	}
}

func TestRun_Errors(t *testing.T) {
	setFlags(t, "truncate", 1)
	require.ErrorIs(t, run(&bytes.Buffer{}, testDDL, nil), sqlgen.ErrUnknownKind)

	setFlags(t, "select", 1)
	require.ErrorIs(t, run(&bytes.Buffer{}, "create table broken", nil), schema.ErrMalformedDDL)

	setFlags(t, "select", 0)
	require.Error(t, run(&bytes.Buffer{}, testDDL, nil))
}
