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

import (
	"compress/gzip"
	"fmt"
	"io"

	"github.com/klauspost/pgzip"
	"github.com/rs/zerolog/log"
)

type WriteCloseFlusher interface {
	io.WriteCloser
	Flush() error
}

// GzipWriter - gzip stream of the statements written into the output object.
// pgzip output is plain gzip and reads back with either reader.
type GzipWriter struct {
	w  io.WriteCloser
	gz WriteCloseFlusher
}

func NewGzipWriter(w io.WriteCloser, usePgzip bool) *GzipWriter {
	var gz WriteCloseFlusher = gzip.NewWriter(w)
	if usePgzip {
		gz = pgzip.NewWriter(w)
	}
	return &GzipWriter{
		w:  w,
		gz: gz,
	}
}

func (gw *GzipWriter) Write(p []byte) (int, error) {
	return gw.gz.Write(p)
}

// Close - finishes the gzip stream and closes the output object. The last error
// wins, every error is logged.
func (gw *GzipWriter) Close() error {
	var lastErr error
	steps := []struct {
		msg string
		fn  func() error
	}{
		{msg: "error flushing gzip buffer", fn: gw.gz.Flush},
		{msg: "error closing gzip writer", fn: gw.gz.Close},
		{msg: "error closing output object", fn: gw.w.Close},
	}
	for _, s := range steps {
		if err := s.fn(); err != nil {
			lastErr = fmt.Errorf("%s: %w", s.msg, err)
			log.Warn().Err(err).Msg(s.msg)
		}
	}
	return lastErr
}
