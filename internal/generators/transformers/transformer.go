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
	"github.com/greenmaskio/sqlsynth/internal/generators"
)

// Transformer - a value producer bound to a byte generator. The generator is set
// after construction, once the required byte length is known.
type Transformer interface {
	GetRequiredGeneratorByteLength() int
	SetGenerator(g generators.Generator) error
}

// Bind - sets g into every transformer, failing on the first one g cannot serve.
func Bind(g generators.Generator, ts ...Transformer) error {
	for _, t := range ts {
		if err := t.SetGenerator(g); err != nil {
			return err
		}
	}
	return nil
}
