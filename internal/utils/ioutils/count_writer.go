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

package ioutils

import "io"

type CountWriteCloser interface {
	GetCount() int64
	io.WriteCloser
}

// CountWriter - counts bytes passed to the underlying writer.
type CountWriter struct {
	w     io.WriteCloser
	Count int64
}

func NewCountWriter(w io.WriteCloser) *CountWriter {
	return &CountWriter{
		w: w,
	}
}

func (cw *CountWriter) Write(p []byte) (int, error) {
	c, err := cw.w.Write(p)
	cw.Count += int64(c)
	return c, err
}

func (cw *CountWriter) Close() error {
	return cw.w.Close()
}

func (cw *CountWriter) GetCount() int64 {
	return cw.Count
}
