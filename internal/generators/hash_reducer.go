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

type HashReducer struct {
	g    Generator
	size int
}

// NewHashReducer - cuts the output of g down to size bytes. size must not exceed g.Size().
func NewHashReducer(g Generator, size int) *HashReducer {
	if size > g.Size() {
		panic("bug: reducer size is greater than the generator size")
	}
	return &HashReducer{
		g:    g,
		size: size,
	}
}

func (hr *HashReducer) Generate(data []byte) (res []byte, err error) {
	res, err = hr.g.Generate(data)
	if err != nil {
		return nil, err
	}

	return res[:hr.size], nil
}

func (hr *HashReducer) Size() int {
	return hr.size
}
