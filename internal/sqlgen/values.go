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
	"time"

	"github.com/greenmaskio/sqlsynth/internal/generators/transformers"
	"github.com/greenmaskio/sqlsynth/internal/schema"
)

const DateLayout = "2006-01-02"

func (sg *Generator) values(t *schema.Table) ([]string, error) {
	res := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		v, err := sg.value(c)
		if err != nil {
			return nil, fmt.Errorf("column \"%s\": %w", c.Name, err)
		}
		res = append(res, v)
	}
	return res, nil
}

func (sg *Generator) value(c *schema.Column) (string, error) {
	switch c.TypeClass() {
	case schema.TextClass:
		return sg.name()
	case schema.DateClass:
		return toDate(sg.today()), nil
	case schema.NumericClass:
		if c.HasDecimalPlaces() {
			return sg.decimal(*c.DecimalPlaces)
		}
	}
	return sg.integer()
}

func (sg *Generator) integer() (string, error) {
	v, err := sg.ints.Transform(nil, nil)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", v), nil
}

func (sg *Generator) name() (string, error) {
	v, err := sg.names.Transform(nil)
	if err != nil {
		return "", err
	}
	return quote(v), nil
}

func (sg *Generator) decimal(places int) (string, error) {
	if places < 0 || places > schema.MaxDecimalPlaces {
		return "", fmt.Errorf("decimal places %d: %w", places, errDecimalPlacesRange)
	}
	scale := int32(places)
	dt, ok := sg.decimals[scale]
	if !ok {
		var err error
		dt, err = transformers.NewRandomDecimalTransformer(sg.valueLim, scale)
		if err != nil {
			return "", err
		}
		if err = dt.SetGenerator(sg.g); err != nil {
			return "", err
		}
		sg.decimals[scale] = dt
	}
	v, err := dt.Transform(nil)
	if err != nil {
		return "", err
	}
	return dt.Format(v), nil
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func toDate(t time.Time) string {
	return fmt.Sprintf("to_date('%s','YYYY-MM-DD')", t.Format(DateLayout))
}
