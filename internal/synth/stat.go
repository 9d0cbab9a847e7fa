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

package synth

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/greenmaskio/sqlsynth/internal/sqlgen"
)

// Stat - summary of a finished run.
type Stat struct {
	RunID     string         `json:"run_id" yaml:"run_id"`
	Seed      int64          `json:"seed" yaml:"seed"`
	Output    string         `json:"output" yaml:"output"`
	Records   int            `json:"records" yaml:"records"`
	Bytes     int64          `json:"bytes" yaml:"bytes"`
	Kinds     map[string]int `json:"kinds" yaml:"kinds"`
	Tables    map[string]int `json:"tables" yaml:"tables"`
	StartedAt time.Time      `json:"started_at" yaml:"started_at"`
	Duration  time.Duration  `json:"duration" yaml:"duration"`
}

func newStat(runID string, seed int64, output string) *Stat {
	return &Stat{
		RunID:     runID,
		Seed:      seed,
		Output:    output,
		Kinds:     make(map[string]int),
		Tables:    make(map[string]int),
		StartedAt: time.Now(),
	}
}

func (s *Stat) add(table string, kind sqlgen.Kind) {
	s.Records++
	s.Kinds[kind.String()]++
	s.Tables[table]++
}

func (s *Stat) Log(logger zerolog.Logger) {
	kinds := zerolog.Dict()
	for k, v := range s.Kinds {
		kinds.Int(k, v)
	}
	tables := zerolog.Dict()
	for k, v := range s.Tables {
		tables.Int(k, v)
	}
	logger.Info().
		Str("Output", s.Output).
		Int64("Seed", s.Seed).
		Int("Records", s.Records).
		Int64("Bytes", s.Bytes).
		Dict("Kinds", kinds).
		Dict("Tables", tables).
		Dur("Duration", s.Duration).
		Msg("generation completed")
}
