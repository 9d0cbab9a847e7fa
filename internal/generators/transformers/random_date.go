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

package transformers

import (
	"time"

	"github.com/greenmaskio/sqlsynth/internal/generators"
)

// truncateToDay - midnight of the calendar day of t, in the location of t.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// RandomDateTransformer - returns base plus a whole number of days drawn from [0, days).
// The result is never later than the upper bound passed to Transform.
type RandomDateTransformer struct {
	base    time.Time
	offsets *RandomInt64Transformer
}

func NewRandomDateTransformer(base time.Time, days int64) (*RandomDateTransformer, error) {
	if days < 1 {
		days = 1
	}
	limiter, err := NewInt64Limiter(0, days)
	if err != nil {
		return nil, err
	}
	offsets, err := NewRandomInt64Transformer(limiter, 8)
	if err != nil {
		return nil, err
	}
	return &RandomDateTransformer{
		base:    truncateToDay(base),
		offsets: offsets,
	}, nil
}

func (rd *RandomDateTransformer) Transform(upper time.Time, original []byte) (time.Time, error) {
	offset, err := rd.offsets.Transform(nil, original)
	if err != nil {
		return time.Time{}, err
	}
	upper = truncateToDay(upper)
	res := time.Date(rd.base.Year(), rd.base.Month(), rd.base.Day()+int(offset), 0, 0, 0, 0, upper.Location())
	if res.After(upper) {
		return upper, nil
	}
	return res, nil
}

// Truncate - drops the time of day, the precision of every generated date.
func (rd *RandomDateTransformer) Truncate(t time.Time) time.Time {
	return truncateToDay(t)
}

func (rd *RandomDateTransformer) GetRequiredGeneratorByteLength() int {
	return rd.offsets.GetRequiredGeneratorByteLength()
}

func (rd *RandomDateTransformer) SetGenerator(g generators.Generator) error {
	return rd.offsets.SetGenerator(g)
}
