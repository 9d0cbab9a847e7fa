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
	"regexp"
	"strconv"
	"strings"
)

const (
	primaryToken    = "primary"
	keyToken        = "key"
	referencesToken = "references"
)

var (
	createTablePrefix = regexp.MustCompile(`^create\s+table\s+`)
	typeDescriptorRe  = regexp.MustCompile(`[a-z]+|[0-9]+`)
)

var unsupportedConstraintTokens = map[string]struct{}{
	"constraint": {},
	"unique":     {},
	"foreign":    {},
	"check":      {},
}

// Parse - builds a Table from a single CREATE TABLE statement. The input is
// case-insensitive and may end with a semicolon. Any error wraps ErrMalformedDDL
// or ErrUnsupportedConstraint; a partially parsed table is never returned.
func Parse(ddl string) (*Table, error) {
	src := strings.TrimSpace(strings.ToLower(ddl))

	loc := createTablePrefix.FindStringIndex(src)
	if loc == nil {
		return nil, fmt.Errorf("expected \"create table\" prefix: %w", ErrMalformedDDL)
	}
	src = src[loc[1]:]

	name, body, ok := strings.Cut(src, "(")
	if !ok {
		return nil, fmt.Errorf("expected column list in parentheses: %w", ErrMalformedDDL)
	}
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, " \t\r\n") {
		return nil, fmt.Errorf("invalid table name \"%s\": %w", name, ErrMalformedDDL)
	}

	end := strings.LastIndex(body, ")")
	if end < 0 {
		return nil, fmt.Errorf("column list is not closed: %w", ErrMalformedDDL)
	}
	body = body[:end]

	definitions, err := splitColumnDefinitions(body)
	if err != nil {
		return nil, err
	}

	t := NewTable(name)
	var primaryKeys []string
	for idx, definition := range definitions {
		tokens, err := tokenize(definition)
		if err != nil {
			return nil, fmt.Errorf("definition %d: %w", idx+1, err)
		}

		if isTablePrimaryKey(tokens) {
			keys, err := parseTablePrimaryKey(tokens)
			if err != nil {
				return nil, fmt.Errorf("definition %d \"%s\": %w", idx+1, definition, err)
			}
			primaryKeys = append(primaryKeys, keys...)
			continue
		}
		if len(tokens) > 0 {
			if _, ok := unsupportedConstraintTokens[tokens[0]]; ok {
				return nil, fmt.Errorf("definition %d \"%s\": %w", idx+1, definition, ErrUnsupportedConstraint)
			}
		}

		c, err := parseColumn(tokens)
		if err != nil {
			return nil, fmt.Errorf("column %d \"%s\": %w", idx+1, definition, err)
		}
		if err := t.AddColumn(c); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedDDL, err)
		}
	}

	if len(t.Columns) == 0 {
		return nil, fmt.Errorf("table \"%s\" has no columns: %w", name, ErrMalformedDDL)
	}

	for _, key := range primaryKeys {
		c := t.Column(key)
		if c == nil {
			return nil, fmt.Errorf("primary key references unknown column \"%s\": %w", key, ErrMalformedDDL)
		}
		c.SetPrimaryKey(true)
	}

	return t, nil
}

// MustParse - like Parse but panics on error. Intended for static table definitions.
func MustParse(ddl string) *Table {
	t, err := Parse(ddl)
	if err != nil {
		panic(fmt.Sprintf("parse \"%s\": %s", ddl, err))
	}
	return t
}

func parseColumn(tokens []string) (*Column, error) {
	if len(tokens) < 2 {
		return nil, fmt.Errorf("expected column name and type: %w", ErrMalformedDDL)
	}

	descriptor := tokens[1]
	rest := tokens[2:]
	// "number (10, 2)" - arguments separated from the type name
	if len(rest) > 0 && strings.HasPrefix(rest[0], "(") {
		descriptor += rest[0]
		rest = rest[1:]
	}

	c := NewColumn(tokens[0], "")
	if err := parseTypeDescriptor(c, descriptor); err != nil {
		return nil, err
	}

	c.SetPrimaryKey(hasPrimaryKey(rest))

	refTable, refColumn, found, err := parseReferences(rest)
	if err != nil {
		return nil, err
	}
	if found {
		c.SetReference(refTable, refColumn)
	}

	return c, nil
}

// parseTypeDescriptor - the first letter run is the type, the first and second
// digit runs are the length and the decimal places.
func parseTypeDescriptor(c *Column, descriptor string) error {
	var digits []int
	for _, part := range typeDescriptorRe.FindAllString(descriptor, -1) {
		if part[0] >= '0' && part[0] <= '9' {
			v, err := strconv.Atoi(part)
			if err != nil {
				return fmt.Errorf("type argument \"%s\": %w", part, ErrMalformedDDL)
			}
			digits = append(digits, v)
			continue
		}
		if c.Type == "" {
			c.Type = part
		}
	}

	if c.Type == "" {
		return fmt.Errorf("type \"%s\" has no name: %w", descriptor, ErrMalformedDDL)
	}
	if len(digits) > 0 {
		c.SetLength(digits[0])
	}
	if len(digits) > 1 {
		if digits[1] > MaxDecimalPlaces {
			return fmt.Errorf(
				"decimal places %d exceed %d: %w", digits[1], MaxDecimalPlaces, ErrMalformedDDL,
			)
		}
		c.SetDecimalPlaces(digits[1])
	}
	return nil
}

func hasPrimaryKey(tokens []string) bool {
	for idx, token := range tokens {
		if token != primaryToken {
			continue
		}
		for _, next := range tokens[idx+1:] {
			if next == keyToken {
				return true
			}
		}
	}
	return false
}

// parseReferences - accepts "references t(c)", "references t (c)" and "references t c".
func parseReferences(tokens []string) (table, column string, found bool, err error) {
	idx := -1
	for i, token := range tokens {
		if token == referencesToken {
			idx = i
			break
		}
	}
	if idx == -1 {
		return "", "", false, nil
	}
	if idx+1 >= len(tokens) {
		return "", "", false, fmt.Errorf("references without target table: %w", ErrMalformedDDL)
	}

	target := tokens[idx+1]
	if tableName, columnPart, ok := strings.Cut(target, "("); ok {
		table = tableName
		column = trimParentheses(columnPart)
	} else {
		table = target
		if idx+2 < len(tokens) {
			column = trimParentheses(tokens[idx+2])
		}
	}

	if table == "" || column == "" {
		return "", "", false, fmt.Errorf("references must name table and column: %w", ErrMalformedDDL)
	}
	return table, column, true, nil
}

func isTablePrimaryKey(tokens []string) bool {
	return len(tokens) > 1 && tokens[0] == primaryToken && strings.HasPrefix(tokens[1], keyToken)
}

func parseTablePrimaryKey(tokens []string) ([]string, error) {
	list := strings.TrimPrefix(strings.Join(tokens[1:], ""), keyToken)
	if !strings.HasPrefix(list, "(") || !strings.HasSuffix(list, ")") {
		return nil, fmt.Errorf("expected primary key column list: %w", ErrMalformedDDL)
	}
	var res []string
	for _, name := range strings.Split(trimParentheses(list), ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("empty primary key column: %w", ErrMalformedDDL)
		}
		res = append(res, name)
	}
	return res, nil
}

func trimParentheses(s string) string {
	return strings.Trim(s, "()")
}
