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
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/greenmaskio/sqlsynth/internal/generators"
)

// RandomDecimalTransformer - draws an integer from the limiter and shifts it by
// scale digits, so [1, 100) with scale 2 gives values in [0.01, 0.99].
type RandomDecimalTransformer struct {
	ints  *RandomInt64Transformer
	scale int32
}

func NewRandomDecimalTransformer(limiter *Int64Limiter, scale int32) (*RandomDecimalTransformer, error) {
	if scale < 0 {
		return nil, fmt.Errorf("scale cannot be negative: %d", scale)
	}
	ints, err := NewRandomInt64Transformer(limiter, 8)
	if err != nil {
		return nil, err
	}
	return &RandomDecimalTransformer{
		ints:  ints,
		scale: scale,
	}, nil
}

func (rd *RandomDecimalTransformer) Transform(original []byte) (decimal.Decimal, error) {
	v, err := rd.ints.Transform(nil, original)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.New(v, -rd.scale), nil
}

// Format - renders v with exactly the transformer scale fractional digits.
func (rd *RandomDecimalTransformer) Format(v decimal.Decimal) string {
	return v.StringFixed(rd.scale)
}

func (rd *RandomDecimalTransformer) GetRequiredGeneratorByteLength() int {
	return rd.ints.GetRequiredGeneratorByteLength()
}

func (rd *RandomDecimalTransformer) SetGenerator(g generators.Generator) error {
	return rd.ints.SetGenerator(g)
}
