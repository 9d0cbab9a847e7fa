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

package sqlgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name     string
		expected Kind
	}{
		{name: "create", expected: CreateTableKind},
		{name: "CREATE_TABLE", expected: CreateTableKind},
		{name: "alter table", expected: AlterTableKind},
		{name: "drop-table", expected: DropTableKind},
		{name: " Insert ", expected: InsertKind},
		{name: "select", expected: SelectKind},
		{name: "update", expected: UpdateKind},
		{name: "delete", expected: DeleteKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := ParseKind(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.expected, k)
		})
	}

	_, err := ParseKind("truncate")
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestKind_String(t *testing.T) {
	names := make([]string, 0, len(AllKinds))
	for _, k := range AllKinds {
		require.True(t, k.Valid())
		require.NotEmpty(t, k.Description())
		names = append(names, k.String())
	}
	require.Equal(t, []string{"create", "alter", "drop", "insert", "select", "update", "delete"}, names)
	require.Equal(t, "Kind(42)", Kind(42).String())
	require.False(t, Kind(42).Valid())
}
