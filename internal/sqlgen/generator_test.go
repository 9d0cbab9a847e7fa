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
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/greenmaskio/sqlsynth/internal/generators"
	"github.com/greenmaskio/sqlsynth/internal/schema"
)

const (
	ordersDDL    = "create table orders(order_id number(10) primary key, order_date date, customer_id number(10))"
	customersDDL = "create table customers(customer_id number(10) primary key, customer_name varchar(255), customer_email varchar(255))"
	productsDDL  = "create table products(product_id number(10) primary key, product_name varchar(255), product_price number(10, 2))"
)

var today = time.Date(2026, 10, 19, 15, 4, 5, 0, time.UTC)

func fixedClock() time.Time {
	return today
}

func newTestGenerator(t *testing.T, seed int64, opts ...Option) *Generator {
	t.Helper()
	opts = append([]Option{WithClock(fixedClock)}, opts...)
	g, err := New(generators.NewRandomBytes(seed, generators.DefaultSize), opts...)
	require.NoError(t, err)
	return g
}

func TestGenerator_Render_CreateTable(t *testing.T) {
	g := newTestGenerator(t, 1)

	tests := []struct {
		name     string
		ddl      string
		expected string
	}{
		{
			name:     "orders",
			ddl:      ordersDDL,
			expected: "CREATE TABLE orders (order_id number(10) NOT NULL PRIMARY KEY, order_date date, customer_id number(10));",
		},
		{
			name:     "test_table",
			ddl:      "create table test_table (id number(10) primary key, name varchar(255))",
			expected: "CREATE TABLE test_table (id number(10) NOT NULL PRIMARY KEY, name varchar(255));",
		},
		{
			name:     "decimal",
			ddl:      productsDDL,
			expected: "CREATE TABLE products (product_id number(10) NOT NULL PRIMARY KEY, product_name varchar(255), product_price number(10,2));",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := g.Render(schema.MustParse(tt.ddl), CreateTableKind)
			require.NoError(t, err)
			require.Equal(t, tt.expected, res)
		})
	}
}

func TestGenerator_Render_AlterAndDrop(t *testing.T) {
	g := newTestGenerator(t, 1)
	table := schema.MustParse(ordersDDL)

	res, err := g.Render(table, AlterTableKind)
	require.NoError(t, err)
	require.Equal(t,
		"ALTER TABLE orders ADD COLUMN order_id number(10) NOT NULL PRIMARY KEY, "+
			"ADD COLUMN order_date date, ADD COLUMN customer_id number(10);",
		res,
	)

	res, err = g.Render(table, DropTableKind)
	require.NoError(t, err)
	require.Equal(t, "DROP TABLE orders;", res)
}

func TestGenerator_Render_Insert(t *testing.T) {
	g := newTestGenerator(t, 2)
	table := schema.MustParse(productsDDL)
	pattern := regexp.MustCompile(
		`^INSERT INTO products \(product_id, product_name, product_price\) ` +
			`VALUES \((\d+), '(Alice|Bob|Charlie|David)', (\d+\.\d+)\);$`,
	)

	for i := 0; i < 200; i++ {
		res, err := g.Render(table, InsertKind)
		require.NoError(t, err)
		m := pattern.FindStringSubmatch(res)
		require.NotNilf(t, m, "unexpected insert: %s", res)

		parts := strings.Split(m[3], ".")
		require.Len(t, parts, 2)
		require.Len(t, parts[1], 2)
		require.Equal(t, "0", parts[0])
	}
}

func TestGenerator_Render_InsertDate(t *testing.T) {
	g := newTestGenerator(t, 3)
	res, err := g.Render(schema.MustParse(ordersDDL), InsertKind)
	require.NoError(t, err)
	require.Regexp(t,
		`^INSERT INTO orders \(order_id, order_date, customer_id\) `+
			`VALUES \(\d+, to_date\('2026-10-19','YYYY-MM-DD'\), \d+\);$`,
		res,
	)
}

func TestGenerator_Render_Select(t *testing.T) {
	g := newTestGenerator(t, 4)
	table := schema.MustParse(ordersDDL)
	pattern := regexp.MustCompile(
		`^SELECT order_id, order_date, customer_id FROM orders WHERE ` +
			`order_id (=|>|<|>=|<=) (\d+) AND ` +
			`order_date BETWEEN to_date\('(\d{4}-\d{2}-\d{2})','YYYY-MM-DD'\) AND to_date\('2026-10-19','YYYY-MM-DD'\) AND ` +
			`customer_id (=|>|<|>=|<=) (\d+);$`,
	)

	for i := 0; i < 100; i++ {
		res, err := g.Render(table, SelectKind)
		require.NoError(t, err)
		m := pattern.FindStringSubmatch(res)
		require.NotNilf(t, m, "unexpected select: %s", res)
		require.Contains(t, []string{"2021-01-01", "2021-01-02", "2021-01-03"}, m[3])
	}
}

func TestGenerator_Render_SelectInList(t *testing.T) {
	g := newTestGenerator(t, 5)
	table := schema.MustParse("create table people (name varchar(32))")
	pattern := regexp.MustCompile(`^SELECT name FROM people WHERE name IN \((.+)\);$`)

	sizes := make(map[int]struct{})
	for i := 0; i < 500; i++ {
		res, err := g.Render(table, SelectKind)
		require.NoError(t, err)
		m := pattern.FindStringSubmatch(res)
		require.NotNilf(t, m, "unexpected select: %s", res)
		items := strings.Split(m[1], ", ")
		require.GreaterOrEqual(t, len(items), 2)
		require.LessOrEqual(t, len(items), 10)
		for _, item := range items {
			require.Regexp(t, `^'(Alice|Bob|Charlie|David)'$`, item)
		}
		sizes[len(items)] = struct{}{}
	}
	require.Contains(t, sizes, 2)
	require.Contains(t, sizes, 10)
}

func TestGenerator_Render_SelectDecimal(t *testing.T) {
	g := newTestGenerator(t, 6)
	table := schema.MustParse("create table prices (price number(10, 3))")
	for i := 0; i < 100; i++ {
		res, err := g.Render(table, SelectKind)
		require.NoError(t, err)
		require.Regexp(t, `^SELECT price FROM prices WHERE price (=|>|<|>=|<=) 0\.\d{3};$`, res)
	}
}

func TestGenerator_Render_DecimalPlacesOutOfRange(t *testing.T) {
	g := newTestGenerator(t, 6)
	table := schema.NewTable("prices",
		schema.NewColumn("price", "number").SetLength(10).SetDecimalPlaces(schema.MaxDecimalPlaces+1),
	)
	_, err := g.Render(table, InsertKind)
	require.ErrorIs(t, err, errDecimalPlacesRange)

	table.Columns[0].SetDecimalPlaces(-1)
	_, err = g.Render(table, SelectKind)
	require.ErrorIs(t, err, errDecimalPlacesRange)

	table.Columns[0].SetDecimalPlaces(schema.MaxDecimalPlaces)
	res, err := g.Render(table, InsertKind)
	require.NoError(t, err)
	require.Regexp(t, `^INSERT INTO prices \(price\) VALUES \(0\.\d{38}\);$`, res)
}

func TestGenerator_Render_Update(t *testing.T) {
	g := newTestGenerator(t, 7)
	res, err := g.Render(schema.MustParse(customersDDL), UpdateKind)
	require.NoError(t, err)
	require.Regexp(t,
		`^UPDATE customers SET customer_id = \d+, customer_name = '\w+', customer_email = '\w+' `+
			`WHERE customer_id (=|>|<|>=|<=) \d+ AND customer_name IN \('\w+'(, '\w+')+\) `+
			`AND customer_email IN \('\w+'(, '\w+')+\);$`,
		res,
	)
}

func TestGenerator_Render_Delete(t *testing.T) {
	g := newTestGenerator(t, 8)
	res, err := g.Render(schema.MustParse(ordersDDL), DeleteKind)
	require.NoError(t, err)
	require.Regexp(t, `^DELETE FROM orders WHERE order_id .+ AND order_date BETWEEN .+ AND customer_id .+;$`, res)
}

func TestGenerator_Render_EmptyPredicate(t *testing.T) {
	g := newTestGenerator(t, 9)
	table := schema.MustParse("create table blobs (payload blob, meta json)")

	tests := []struct {
		kind     Kind
		expected string
	}{
		{kind: SelectKind, expected: "SELECT payload, meta FROM blobs WHERE 1 = 1;"},
		{kind: DeleteKind, expected: "DELETE FROM blobs WHERE 1 = 1;"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			res, err := g.Render(table, tt.kind)
			require.NoError(t, err)
			require.Equal(t, tt.expected, res)
		})
	}

	res, err := g.Render(table, UpdateKind)
	require.NoError(t, err)
	require.Regexp(t, `^UPDATE blobs SET payload = \d+, meta = \d+ WHERE 1 = 1;$`, res)
}

func TestGenerator_Render_Idempotent(t *testing.T) {
	tables := []*schema.Table{
		schema.MustParse(ordersDDL),
		schema.MustParse(customersDDL),
		schema.MustParse(productsDDL),
	}
	render := func(seed int64) []string {
		g := newTestGenerator(t, seed)
		var res []string
		for i := 0; i < 20; i++ {
			for _, table := range tables {
				for _, k := range AllKinds {
					sql, err := g.Render(table, k)
					require.NoError(t, err)
					res = append(res, sql)
				}
			}
		}
		return res
	}

	require.Equal(t, render(42), render(42))
	require.NotEqual(t, render(42), render(43))
}

func TestGenerator_Render_HashEngine(t *testing.T) {
	build := func() []string {
		src, err := generators.New(generators.HashEngineName, 0, []byte("salt"), generators.Sha256Name)
		require.NoError(t, err)
		g, err := New(src, WithClock(fixedClock))
		require.NoError(t, err)
		var res []string
		for i := 0; i < 10; i++ {
			sql, err := g.Render(schema.MustParse(customersDDL), SelectKind)
			require.NoError(t, err)
			res = append(res, sql)
		}
		return res
	}
	require.Equal(t, build(), build())
}

func TestGenerator_Render_BetweenBounds(t *testing.T) {
	pattern := regexp.MustCompile(`BETWEEN to_date\('([0-9-]+)','YYYY-MM-DD'\) AND to_date\('([0-9-]+)','YYYY-MM-DD'\)`)
	table := schema.MustParse("create table events (happened_at datetime)")

	tests := []struct {
		name  string
		now   time.Time
		base  time.Time
		days  int64
		start []string
	}{
		{
			name:  "future base date",
			now:   time.Date(2021, 6, 1, 10, 0, 0, 0, time.UTC),
			base:  time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
			days:  3,
			start: []string{"2021-06-01"},
		},
		{
			name:  "today inside jitter window",
			now:   time.Date(2021, 1, 2, 23, 59, 0, 0, time.UTC),
			base:  DefaultBaseDate,
			days:  3,
			start: []string{"2021-01-01", "2021-01-02"},
		},
		{
			name:  "wide window",
			now:   today,
			base:  DefaultBaseDate,
			days:  365,
			start: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := tt.now
			g, err := New(
				generators.NewRandomBytes(10, generators.DefaultSize),
				WithClock(func() time.Time { return now }),
				WithBaseDate(tt.base),
				WithDateJitterDays(tt.days),
			)
			require.NoError(t, err)

			for i := 0; i < 100; i++ {
				res, err := g.Render(table, SelectKind)
				require.NoError(t, err)
				m := pattern.FindStringSubmatch(res)
				require.NotNil(t, m)
				start, err := time.Parse(DateLayout, m[1])
				require.NoError(t, err)
				end, err := time.Parse(DateLayout, m[2])
				require.NoError(t, err)
				require.Equal(t, now.Format(DateLayout), m[2])
				require.False(t, start.After(end))
				if tt.start != nil {
					require.Contains(t, tt.start, m[1])
				}
			}
		})
	}
}

func TestGenerator_Render_QuotedNames(t *testing.T) {
	g := newTestGenerator(t, 11, WithNames([]string{"O'Brien"}))
	res, err := g.Render(schema.MustParse("create table people (name text)"), InsertKind)
	require.NoError(t, err)
	require.Equal(t, "INSERT INTO people (name) VALUES ('O''Brien');", res)
}

func TestGenerator_Build(t *testing.T) {
	g := newTestGenerator(t, 12)
	table := schema.MustParse(customersDDL)
	before := schema.MustParse(customersDDL)

	for _, k := range AllKinds {
		stmt, err := g.Build(table, k)
		require.NoError(t, err)
		require.Equal(t, k, stmt.Kind())
	}
	require.Equal(t, before, table)

	stmt, err := g.Build(table, UpdateKind)
	require.NoError(t, err)
	update, ok := stmt.(*Update)
	require.True(t, ok)
	require.Len(t, update.Assignments, 3)
	require.Equal(t, "customer_email", update.Assignments[2].Column)

	_, err = g.Build(table, Kind(42))
	require.ErrorIs(t, err, ErrUnknownKind)

	_, err = g.Build(nil, SelectKind)
	require.Error(t, err)
}

func TestNew_EmptyNamesKeepDefault(t *testing.T) {
	g := newTestGenerator(t, 13, WithNames(nil))
	require.Equal(t, DefaultNames, g.names.Values())
}

func TestPredicate_String(t *testing.T) {
	require.Equal(t, TautologyPredicate, Predicate(nil).String())
	require.Equal(t, "a = 1", Predicate{"a = 1"}.String())
	require.Equal(t, "a = 1 AND b > 2", Predicate{"a = 1", "b > 2"}.String())
}
