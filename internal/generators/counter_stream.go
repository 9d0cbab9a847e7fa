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

import "encoding/binary"

// CounterStream - turns a deterministic hash generator into a reproducible stream.
// Every call hashes the next value of an internal counter, the caller data is ignored.
type CounterStream struct {
	g       Generator
	counter uint64
	input   []byte
}

func NewCounterStream(g Generator) *CounterStream {
	return &CounterStream{
		g:     g,
		input: make([]byte, 8),
	}
}

func (cs *CounterStream) Generate(_ []byte) ([]byte, error) {
	binary.LittleEndian.PutUint64(cs.input, cs.counter)
	cs.counter++
	return cs.g.Generate(cs.input)
}

func (cs *CounterStream) Size() int {
	return cs.g.Size()
}
