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
	"fmt"
	"hash"

	"github.com/dchest/siphash"
	"golang.org/x/crypto/sha3"
)

// SipHash - hash engine backend producing 8 bytes per call. The 128 bit key is
// derived from the run salt, so workers with different salts get unrelated streams.
type SipHash struct {
	hash.Hash
	buf []byte
}

func NewSipHash(salt []byte) (Generator, error) {
	key := sha3.New224().Sum(salt)[:16]
	return &SipHash{
		Hash: siphash.New(key),
		buf:  make([]byte, 0, siphash.Size),
	}, nil
}

func (s *SipHash) Generate(data []byte) ([]byte, error) {
	defer s.Reset()
	if _, err := s.Write(data); err != nil {
		return nil, fmt.Errorf("unable to hash generator input: %w", err)
	}
	return s.Sum(s.buf[:0]), nil
}
