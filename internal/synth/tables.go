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

package synth

import (
	"fmt"

	"github.com/greenmaskio/sqlsynth/internal/schema"
)

// DefaultTables - sample schema used when no tables are configured.
var DefaultTables = []string{
	"create table orders(order_id number(10) primary key, order_date date, customer_id number(10))",
	"create table customers(customer_id number(10) primary key, customer_name varchar(255), customer_email varchar(255))",
	"create table products(product_id number(10) primary key, product_name varchar(255), product_price number(10, 2))",
}

// ParseTables - parses every statement, falling back to DefaultTables when ddls is empty.
// Table names must be unique.
func ParseTables(ddls []string) ([]*schema.Table, error) {
	if len(ddls) == 0 {
		ddls = DefaultTables
	}
	res := make([]*schema.Table, 0, len(ddls))
	seen := make(map[string]struct{}, len(ddls))
	for idx, ddl := range ddls {
		t, err := schema.Parse(ddl)
		if err != nil {
			return nil, fmt.Errorf("table %d: %w", idx, err)
		}
		if _, ok := seen[t.Name]; ok {
			return nil, fmt.Errorf("table \"%s\" is defined twice: %w", t.Name, schema.ErrMalformedDDL)
		}
		seen[t.Name] = struct{}{}
		res = append(res, t)
	}
	return res, nil
}
