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
	"encoding/binary"
	"fmt"
)

func BuildBytesFromInt64(value int64) []byte {
	res := make([]byte, 8)
	binary.LittleEndian.PutUint64(res, uint64(value))
	return res
}

// BuildInt64FromBytes - decode bytes array to int64 representation. In case there is less
// than 8 bytes the rest is filled by zeroes
func BuildInt64FromBytes(data []byte) (res int64) {
	return int64(BuildUint64FromBytes(data))
}

func BuildUint64FromBytes(data []byte) (res uint64) {
	intBytes := data
	if len(data) != 8 {
		intBytes = make([]byte, 8)
		copy(intBytes, data)
	}

	return binary.LittleEndian.Uint64(intBytes)
}

// GetHashBytesGen - returns hash generator by the function name. The output is reduced
// to DefaultSize bytes when the function produces more.
func GetHashBytesGen(salt []byte, funcName string) (Generator, error) {
	var g Generator
	var err error
	switch funcName {
	case SipHashName:
		g, err = NewSipHash(salt)
	case MurmurName:
		g = NewMurmurHashFromSalt(salt, MurMurHash128Size)
	case "":
		g, err = NewHash(salt, Sha3256)
	default:
		g, err = NewHash(salt, funcName)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot create hash function backend: %w", err)
	}
	if g.Size() > DefaultSize {
		g = NewHashReducer(g, DefaultSize)
	}
	return g, nil
}
