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
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownKind = errors.New("unknown statement kind")

// Kind - the statement kind to render.
type Kind int

const (
	CreateTableKind Kind = iota
	AlterTableKind
	DropTableKind
	InsertKind
	SelectKind
	UpdateKind
	DeleteKind
)

// AllKinds in declaration order.
var AllKinds = []Kind{
	CreateTableKind,
	AlterTableKind,
	DropTableKind,
	InsertKind,
	SelectKind,
	UpdateKind,
	DeleteKind,
}

var kindNames = map[Kind]string{
	CreateTableKind: "create",
	AlterTableKind:  "alter",
	DropTableKind:   "drop",
	InsertKind:      "insert",
	SelectKind:      "select",
	UpdateKind:      "update",
	DeleteKind:      "delete",
}

var kindDescriptions = map[Kind]string{
	CreateTableKind: "CREATE TABLE with every column clause, NOT NULL and PRIMARY KEY flags included",
	AlterTableKind:  "ALTER TABLE adding every column with a separate ADD COLUMN clause in a single statement",
	DropTableKind:   "DROP TABLE by name",
	InsertKind:      "INSERT of one row with a random literal per column",
	SelectKind:      "SELECT of all columns filtered by a random predicate over all columns",
	UpdateKind:      "UPDATE assigning a random literal to every column, filtered by a random predicate",
	DeleteKind:      "DELETE filtered by a random predicate over all columns",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) Description() string {
	return kindDescriptions[k]
}

func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind - accepts the short name (insert) and the table kinds spelled in
// full (create_table, alter table), case-insensitive.
func ParseKind(name string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer("_", " ", "-", " ").Replace(normalized)
	normalized = strings.TrimSuffix(normalized, " table")
	for k, n := range kindNames {
		if n == normalized {
			return k, nil
		}
	}
	return 0, fmt.Errorf("kind \"%s\": %w", name, ErrUnknownKind)
}
