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

package generators

import (
	"errors"
	"fmt"
)

const (
	RandomEngineName = "random"
	HashEngineName   = "hash"
)

// DefaultSize - every engine produces at least this many bytes per call. The
// consumers (transformers) never request more.
const DefaultSize = 8

var ErrUnknownEngine = errors.New("unknown generator engine")

// Generator - the byte stream every value transformer draws from. The input data
// is passed through for hash based generators and ignored by random ones.
type Generator interface {
	Generate([]byte) ([]byte, error)
	Size() int
}

// New - builds a generator for the engine. The random engine is seeded by seed,
// the hash engine derives a reproducible stream from the salt and hashFunction.
func New(engine string, seed int64, salt []byte, hashFunction string) (Generator, error) {
	switch engine {
	case RandomEngineName, "":
		return NewRandomBytes(seed, DefaultSize), nil
	case HashEngineName:
		g, err := GetHashBytesGen(salt, hashFunction)
		if err != nil {
			return nil, fmt.Errorf("build hash generator: %w", err)
		}
		return NewCounterStream(g), nil
	}
	return nil, fmt.Errorf("engine \"%s\": %w", engine, ErrUnknownEngine)
}
