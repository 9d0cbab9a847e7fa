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

	"github.com/greenmaskio/sqlsynth/internal/schema"
)

// predicate - one condition per column in declaration order. Columns of an
// opaque type contribute nothing.
func (sg *Generator) predicate(t *schema.Table) (Predicate, error) {
	res := make(Predicate, 0, len(t.Columns))
	for _, c := range t.Columns {
		cond, ok, err := sg.condition(c)
		if err != nil {
			return nil, fmt.Errorf("column \"%s\": %w", c.Name, err)
		}
		if ok {
			res = append(res, cond)
		}
	}
	return res, nil
}

func (sg *Generator) condition(c *schema.Column) (string, bool, error) {
	switch c.TypeClass() {
	case schema.NumericClass:
		op, err := sg.operators.Transform(nil)
		if err != nil {
			return "", false, err
		}
		var v string
		if c.HasDecimalPlaces() {
			v, err = sg.decimal(*c.DecimalPlaces)
		} else {
			v, err = sg.integer()
		}
		if err != nil {
			return "", false, err
		}
		return fmt.Sprintf("%s %s %s", c.Name, op, v), true, nil
	case schema.TextClass:
		size, err := sg.ints.Transform(sg.listSizes, nil)
		if err != nil {
			return "", false, err
		}
		items := make([]string, 0, size)
		for i := int64(0); i < size; i++ {
			v, err := sg.name()
			if err != nil {
				return "", false, err
			}
			items = append(items, v)
		}
		return fmt.Sprintf("%s IN (%s)", c.Name, strings.Join(items, ", ")), true, nil
	case schema.DateClass:
		end := sg.today()
		start, err := sg.dates.Transform(end, nil)
		if err != nil {
			return "", false, err
		}
		return fmt.Sprintf("%s BETWEEN %s AND %s", c.Name, toDate(start), toDate(end)), true, nil
	}
	return "", false, nil
}
