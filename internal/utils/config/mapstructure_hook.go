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

package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
	"github.com/xhit/go-str2duration/v2"
)

// Statements - SQL statements. A single string, as it comes from an environment
// variable, holds several statements separated by ";". Commas are never separators.
type Statements []string

// StringToStatementsHookFunc - decodes "create table a (...); create table b (...)"
// into Statements.
func StringToStatementsHookFunc() mapstructure.DecodeHookFunc {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(Statements{}) {
			return data, nil
		}
		return ParseStatements(data.(string)), nil
	}
}

func ParseStatements(raw string) Statements {
	res := Statements{}
	for _, item := range strings.Split(raw, ";") {
		if item = strings.TrimSpace(item); item != "" {
			res = append(res, item)
		}
	}
	return res
}

// StringToWeightsHookFunc - decodes "insert=3,select=1" into map[string]int. Used
// when weights come from a flag or an environment variable.
func StringToWeightsHookFunc() mapstructure.DecodeHookFunc {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(map[string]int{}) {
			return data, nil
		}
		return ParseWeights(data.(string))
	}
}

// StringSliceToWeightsHookFunc - decodes ["insert=3", "select=1"] into map[string]int.
func StringSliceToWeightsHookFunc() mapstructure.DecodeHookFunc {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if f.Kind() != reflect.Slice || t != reflect.TypeOf(map[string]int{}) {
			return data, nil
		}
		items, err := cast.ToStringSliceE(data)
		if err != nil {
			return nil, fmt.Errorf("cannot cast weights: %w", err)
		}
		return ParseWeights(strings.Join(items, ","))
	}
}

func ParseWeights(raw string) (map[string]int, error) {
	res := make(map[string]int)
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name, value, ok := strings.Cut(item, "=")
		if !ok {
			return nil, fmt.Errorf("weight \"%s\" must be in name=value form", item)
		}
		w, err := cast.ToIntE(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("weight \"%s\": %w", item, err)
		}
		res[strings.TrimSpace(name)] = w
	}
	return res, nil
}

// ParseDays - parses durations like "3d" or "1w2d" and returns the whole number of days.
func ParseDays(raw string) (int64, error) {
	d, err := str2duration.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("cannot parse duration \"%s\": %w", raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("duration \"%s\" cannot be negative", raw)
	}
	return int64(d / (24 * time.Hour)), nil
}

// DecodeHook - hooks used to unmarshal the whole configuration.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		StringToStatementsHookFunc(),
		StringToWeightsHookFunc(),
		StringSliceToWeightsHookFunc(),
		mapstructure.StringToTimeHookFunc(time.DateOnly),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}
