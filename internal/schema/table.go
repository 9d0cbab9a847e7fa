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

// Package schema holds the table model the statement generator renders from, and
// the parser building it from a single CREATE TABLE statement.
package schema

import (
	"errors"
	"fmt"
)

var errDuplicateColumn = errors.New("duplicate column")

// Table - a parsed table. It is not changed after parsing except for Comment.
type Table struct {
	// Name is the lowercase table name.
	Name string `json:"name" yaml:"name"`
	// Columns in declaration order. The order is the generation order.
	Columns []*Column `json:"columns" yaml:"columns"`
	// Comment is free-text metadata, ignored by the generator.
	Comment *string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

func NewTable(name string, columns ...*Column) *Table {
	return &Table{
		Name:    name,
		Columns: columns,
	}
}

// AddColumn - appends the column unless a column with the same name already exists.
func (t *Table) AddColumn(c *Column) error {
	if t.Column(c.Name) != nil {
		return fmt.Errorf("column \"%s\": %w", c.Name, errDuplicateColumn)
	}
	t.Columns = append(t.Columns, c)
	return nil
}

// Column - returns the column by name or nil.
func (t *Table) Column(name string) *Column {
	for _, c := range t.Columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (t *Table) ColumnNames() []string {
	res := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		res = append(res, c.Name)
	}
	return res
}

// PrimaryKeys - names of the columns flagged as primary key. More than one
// is possible when the source DDL declared several.
func (t *Table) PrimaryKeys() []string {
	var res []string
	for _, c := range t.Columns {
		if c.IsPrimaryKey {
			res = append(res, c.Name)
		}
	}
	return res
}

func (t *Table) SetComment(comment *string) {
	t.Comment = comment
}
