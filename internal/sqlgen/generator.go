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

// Package sqlgen renders randomized SQL statements of a fixed set of kinds
// against a parsed table.
package sqlgen

import (
	"errors"
	"fmt"
	"time"

	"github.com/greenmaskio/sqlsynth/internal/generators"
	"github.com/greenmaskio/sqlsynth/internal/generators/transformers"
	"github.com/greenmaskio/sqlsynth/internal/schema"
)

const (
	minValue = 1
	maxValue = 100

	minInListSize = 2
	maxInListSize = 11

	DefaultDateJitterDays = 3
)

var (
	DefaultNames    = []string{"Alice", "Bob", "Charlie", "David"}
	DefaultBaseDate = time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	comparisonOperators = []string{"=", ">", "<", ">=", "<="}
)

var (
	errNilTable           = errors.New("table is nil")
	errDecimalPlacesRange = errors.New("decimal places out of range")
)

type Option func(o *options)

type options struct {
	names      []string
	baseDate   time.Time
	jitterDays int64
	clock      func() time.Time
}

// WithNames - pool of text values. An empty pool keeps the default.
func WithNames(names []string) Option {
	return func(o *options) {
		if len(names) > 0 {
			o.names = names
		}
	}
}

// WithBaseDate - lower anchor of the random BETWEEN start date.
func WithBaseDate(t time.Time) Option {
	return func(o *options) {
		o.baseDate = t
	}
}

// WithDateJitterDays - the BETWEEN start date is base plus an offset in [0, days).
func WithDateJitterDays(days int64) Option {
	return func(o *options) {
		o.jitterDays = days
	}
}

// WithClock - source of "today", used for date literals and as the BETWEEN upper bound.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// Generator - builds statements for any table. Every random decision is taken
// from the single byte source passed to New, so two generators built over
// equal sources render equal output. Generator is not safe for concurrent use.
type Generator struct {
	g         generators.Generator
	ints      *transformers.RandomInt64Transformer
	listSizes *transformers.Int64Limiter
	operators *transformers.RandomChoiceTransformer
	names     *transformers.RandomChoiceTransformer
	dates     *transformers.RandomDateTransformer
	decimals  map[int32]*transformers.RandomDecimalTransformer
	valueLim  *transformers.Int64Limiter
	clock     func() time.Time
}

func New(g generators.Generator, opts ...Option) (*Generator, error) {
	o := &options{
		names:      DefaultNames,
		baseDate:   DefaultBaseDate,
		jitterDays: DefaultDateJitterDays,
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}

	valueLim, err := transformers.NewInt64Limiter(minValue, maxValue)
	if err != nil {
		return nil, fmt.Errorf("unable to create value limiter: %w", err)
	}
	listSizes, err := transformers.NewInt64Limiter(minInListSize, maxInListSize)
	if err != nil {
		return nil, fmt.Errorf("unable to create list size limiter: %w", err)
	}
	ints, err := transformers.NewRandomInt64Transformer(valueLim, generators.DefaultSize)
	if err != nil {
		return nil, fmt.Errorf("unable to create int transformer: %w", err)
	}
	operators, err := transformers.NewRandomChoiceTransformer(comparisonOperators)
	if err != nil {
		return nil, fmt.Errorf("unable to create operator transformer: %w", err)
	}
	names, err := transformers.NewRandomChoiceTransformer(o.names)
	if err != nil {
		return nil, fmt.Errorf("unable to create names transformer: %w", err)
	}
	dates, err := transformers.NewRandomDateTransformer(o.baseDate, o.jitterDays)
	if err != nil {
		return nil, fmt.Errorf("unable to create date transformer: %w", err)
	}

	if err = transformers.Bind(g, ints, operators, names, dates); err != nil {
		return nil, fmt.Errorf("unable to bind transformers: %w", err)
	}

	return &Generator{
		g:         g,
		ints:      ints,
		listSizes: listSizes,
		operators: operators,
		names:     names,
		dates:     dates,
		decimals:  make(map[int32]*transformers.RandomDecimalTransformer),
		valueLim:  valueLim,
		clock:     o.clock,
	}, nil
}

// Render - returns the SQL text of one statement of the given kind.
func (sg *Generator) Render(t *schema.Table, kind Kind) (string, error) {
	stmt, err := sg.Build(t, kind)
	if err != nil {
		return "", err
	}
	return stmt.SQL(), nil
}

// Build - returns the statement of the given kind. The table is not modified.
func (sg *Generator) Build(t *schema.Table, kind Kind) (Statement, error) {
	if t == nil {
		return nil, errNilTable
	}
	switch kind {
	case CreateTableKind:
		return &CreateTable{Table: t.Name, Definitions: definitions(t)}, nil
	case AlterTableKind:
		return &AlterTable{Table: t.Name, Definitions: definitions(t)}, nil
	case DropTableKind:
		return &DropTable{Table: t.Name}, nil
	case InsertKind:
		values, err := sg.values(t)
		if err != nil {
			return nil, fmt.Errorf("error building insert values for \"%s\": %w", t.Name, err)
		}
		return &Insert{Table: t.Name, Columns: t.ColumnNames(), Values: values}, nil
	case SelectKind:
		where, err := sg.predicate(t)
		if err != nil {
			return nil, fmt.Errorf("error building select predicate for \"%s\": %w", t.Name, err)
		}
		return &Select{Table: t.Name, Columns: t.ColumnNames(), Where: where}, nil
	case UpdateKind:
		values, err := sg.values(t)
		if err != nil {
			return nil, fmt.Errorf("error building update values for \"%s\": %w", t.Name, err)
		}
		assignments := make([]Assignment, 0, len(values))
		for i, c := range t.Columns {
			assignments = append(assignments, Assignment{Column: c.Name, Value: values[i]})
		}
		where, err := sg.predicate(t)
		if err != nil {
			return nil, fmt.Errorf("error building update predicate for \"%s\": %w", t.Name, err)
		}
		return &Update{Table: t.Name, Assignments: assignments, Where: where}, nil
	case DeleteKind:
		where, err := sg.predicate(t)
		if err != nil {
			return nil, fmt.Errorf("error building delete predicate for \"%s\": %w", t.Name, err)
		}
		return &Delete{Table: t.Name, Where: where}, nil
	}
	return nil, fmt.Errorf("kind %d: %w", int(kind), ErrUnknownKind)
}

func (sg *Generator) today() time.Time {
	return sg.dates.Truncate(sg.clock())
}

func definitions(t *schema.Table) []string {
	res := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		res = append(res, c.Definition())
	}
	return res
}
