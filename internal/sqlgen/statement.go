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
	"fmt"
	"strings"
)

// TautologyPredicate - rendered when no column can contribute a condition, so
// WHERE is always followed by an expression.
const TautologyPredicate = "1 = 1"

// Statement - one rendered statement kind with the data its SQL needs.
type Statement interface {
	Kind() Kind
	SQL() string
}

// Predicate - conditions joined with AND.
type Predicate []string

func (p Predicate) String() string {
	if len(p) == 0 {
		return TautologyPredicate
	}
	return strings.Join(p, " AND ")
}

type Assignment struct {
	Column string
	Value  string
}

type CreateTable struct {
	Table string
	// Definitions are the column clauses, e.g. "id number(10) NOT NULL PRIMARY KEY"
	Definitions []string
}

func (s *CreateTable) Kind() Kind {
	return CreateTableKind
}

func (s *CreateTable) SQL() string {
	return fmt.Sprintf("CREATE TABLE %s (%s);", s.Table, strings.Join(s.Definitions, ", "))
}

// AlterTable - every column becomes its own ADD COLUMN clause of one statement.
// Most dialects reject it, the output is meant as log data.
type AlterTable struct {
	Table       string
	Definitions []string
}

func (s *AlterTable) Kind() Kind {
	return AlterTableKind
}

func (s *AlterTable) SQL() string {
	clauses := make([]string, 0, len(s.Definitions))
	for _, d := range s.Definitions {
		clauses = append(clauses, "ADD COLUMN "+d)
	}
	return fmt.Sprintf("ALTER TABLE %s %s;", s.Table, strings.Join(clauses, ", "))
}

type DropTable struct {
	Table string
}

func (s *DropTable) Kind() Kind {
	return DropTableKind
}

func (s *DropTable) SQL() string {
	return fmt.Sprintf("DROP TABLE %s;", s.Table)
}

type Insert struct {
	Table   string
	Columns []string
	Values  []string
}

func (s *Insert) Kind() Kind {
	return InsertKind
}

func (s *Insert) SQL() string {
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s);",
		s.Table, strings.Join(s.Columns, ", "), strings.Join(s.Values, ", "),
	)
}

type Select struct {
	Table   string
	Columns []string
	Where   Predicate
}

func (s *Select) Kind() Kind {
	return SelectKind
}

func (s *Select) SQL() string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s;", strings.Join(s.Columns, ", "), s.Table, s.Where)
}

type Update struct {
	Table       string
	Assignments []Assignment
	Where       Predicate
}

func (s *Update) Kind() Kind {
	return UpdateKind
}

func (s *Update) SQL() string {
	set := make([]string, 0, len(s.Assignments))
	for _, a := range s.Assignments {
		set = append(set, fmt.Sprintf("%s = %s", a.Column, a.Value))
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s;", s.Table, strings.Join(set, ", "), s.Where)
}

type Delete struct {
	Table string
	Where Predicate
}

func (s *Delete) Kind() Kind {
	return DeleteKind
}

func (s *Delete) SQL() string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s;", s.Table, s.Where)
}
