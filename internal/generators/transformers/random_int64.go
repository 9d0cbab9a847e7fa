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
	"errors"
	"fmt"

	"github.com/greenmaskio/sqlsynth/internal/generators"
)

var (
	ErrWrongLimits = errors.New("wrong limits")
)

// Int64Limiter - maps an arbitrary uint64 into the half-open range [MinValue, MaxValue).
type Int64Limiter struct {
	MinValue int64
	MaxValue int64
	distance uint64
}

func NewInt64Limiter(minValue, maxValue int64) (*Int64Limiter, error) {
	if minValue >= maxValue {
		return nil, ErrWrongLimits
	}

	return &Int64Limiter{
		MinValue: minValue,
		MaxValue: maxValue,
		distance: uint64(maxValue - minValue),
	}, nil
}

func (l *Int64Limiter) Limit(v uint64) int64 {
	return l.MinValue + int64(v%l.distance)
}

type RandomInt64Transformer struct {
	generator  generators.Generator
	limiter    *Int64Limiter
	byteLength int
}

func NewRandomInt64Transformer(limiter *Int64Limiter, size int) (*RandomInt64Transformer, error) {
	if size <= 0 || size > 8 {
		return nil, fmt.Errorf("unsupported byte length %d", size)
	}
	return &RandomInt64Transformer{
		limiter:    limiter,
		byteLength: size,
	}, nil
}

// Transform - returns the next value. l overrides the configured limiter when not nil.
func (ig *RandomInt64Transformer) Transform(l *Int64Limiter, original []byte) (int64, error) {
	var res int64
	limiter := ig.limiter
	if l != nil {
		limiter = l
	}

	resBytes, err := ig.generator.Generate(original)
	if err != nil {
		return 0, err
	}

	if limiter != nil {
		res = limiter.Limit(generators.BuildUint64FromBytes(resBytes[:ig.byteLength]))
	} else {
		res = generators.BuildInt64FromBytes(resBytes[:ig.byteLength])
	}

	return res, nil
}

func (ig *RandomInt64Transformer) GetRequiredGeneratorByteLength() int {
	return ig.byteLength
}

func (ig *RandomInt64Transformer) SetGenerator(g generators.Generator) error {
	if g.Size() < ig.byteLength {
		return fmt.Errorf("requested byte length (%d) higher than generator can produce (%d)", ig.byteLength, g.Size())
	}
	ig.generator = g
	return nil
}
