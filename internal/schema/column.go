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

package schema

import (
	"fmt"
	"strings"
)

// TypeClass - the category a column type falls into for value synthesis.
type TypeClass int

const (
	OpaqueClass TypeClass = iota
	NumericClass
	TextClass
	DateClass
)

var typeClasses = map[string]TypeClass{
	"number":   NumericClass,
	"int":      NumericClass,
	"varchar":  TextClass,
	"text":     TextClass,
	"date":     DateClass,
	"datetime": DateClass,
}

func (tc TypeClass) String() string {
	switch tc {
	case NumericClass:
		return "numeric"
	case TextClass:
		return "text"
	case DateClass:
		return "date"
	}
	return "opaque"
}

// MaxDecimalPlaces - the largest scale accepted for numeric types.
const MaxDecimalPlaces = 38

type Column struct {
	Name string `json:"name" yaml:"name"`
	// Type is the normalized type tag, e.g. "number" for "number(10, 2)".
	// Unknown tags are kept as is.
	Type          string  `json:"type" yaml:"type"`
	Length        *int    `json:"length,omitempty" yaml:"length,omitempty"`
	DecimalPlaces *int    `json:"decimal_places,omitempty" yaml:"decimal_places,omitempty"`
	Nullable      bool    `json:"nullable" yaml:"nullable"`
	IsPrimaryKey  bool    `json:"is_primary_key" yaml:"is_primary_key"`
	RefTable      *string `json:"ref_table,omitempty" yaml:"ref_table,omitempty"`
	RefColumn     *string `json:"ref_column,omitempty" yaml:"ref_column,omitempty"`
}

func NewColumn(name, typeName string) *Column {
	return &Column{
		Name:     name,
		Type:     typeName,
		Nullable: true,
	}
}

func (c *Column) TypeClass() TypeClass {
	return typeClasses[c.Type]
}

func (c *Column) HasDecimalPlaces() bool {
	return c.DecimalPlaces != nil && c.TypeClass() == NumericClass
}

// SetPrimaryKey - primary key columns are never nullable.
func (c *Column) SetPrimaryKey(v bool) *Column {
	c.IsPrimaryKey = v
	c.Nullable = !v
	return c
}

func (c *Column) SetLength(length int) *Column {
	c.Length = &length
	return c
}

func (c *Column) SetDecimalPlaces(places int) *Column {
	c.DecimalPlaces = &places
	return c
}

func (c *Column) SetReference(table, column string) *Column {
	c.RefTable = &table
	c.RefColumn = &column
	return c
}

// TypeString - type with its arguments: number(10,2), varchar(255), date.
func (c *Column) TypeString() string {
	if c.Length == nil {
		return c.Type
	}
	if c.DecimalPlaces != nil {
		return fmt.Sprintf("%s(%d,%d)", c.Type, *c.Length, *c.DecimalPlaces)
	}
	return fmt.Sprintf("%s(%d)", c.Type, *c.Length)
}

// Definition - the column clause used by CREATE TABLE and ALTER TABLE.
func (c *Column) Definition() string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteString(" ")
	b.WriteString(c.TypeString())
	if !c.Nullable {
		b.WriteString(" NOT NULL")
	}
	if c.IsPrimaryKey {
		b.WriteString(" PRIMARY KEY")
	}
	return b.String()
}
