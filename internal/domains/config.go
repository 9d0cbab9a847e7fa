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

package domains

import (
	"sync"
	"time"

	"github.com/greenmaskio/sqlsynth/internal/storages/directory"
	"github.com/greenmaskio/sqlsynth/internal/storages/s3"
	"github.com/greenmaskio/sqlsynth/internal/utils/config"
)

var (
	Cfg  *Config
	once sync.Once
)

const (
	defaultStorageType  = "directory"
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"
	defaultRecords      = 30
	defaultWorkers      = 1
	defaultOutput       = "output.sql"
	defaultEngine       = "random"
	defaultHashFunction = "sha3-256"
	defaultDateJitter   = "3d"
)

var (
	defaultNames    = []string{"Alice", "Bob", "Charlie", "David"}
	defaultBaseDate = time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
)

func NewConfig() *Config {
	once.Do(
		func() {
			Cfg = newConfig()
		},
	)
	return Cfg
}

func newConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Storage: StorageConfig{
			Type:      defaultStorageType,
			S3:        s3.NewConfig(),
			Directory: directory.NewConfig(),
		},
		Generate: *NewGenerate(),
	}
}

// NewGenerate - generation settings with defaults applied.
func NewGenerate() *Generate {
	return &Generate{
		Records:      defaultRecords,
		Workers:      defaultWorkers,
		Output:       defaultOutput,
		Engine:       defaultEngine,
		HashFunction: defaultHashFunction,
		Names:        append([]string(nil), defaultNames...),
		BaseDate:     defaultBaseDate,
		DateJitter:   defaultDateJitter,
	}
}

type Config struct {
	Log      LogConfig     `mapstructure:"log" yaml:"log" json:"log"`
	Storage  StorageConfig `mapstructure:"storage" yaml:"storage" json:"storage"`
	Generate Generate      `mapstructure:"generate" yaml:"generate" json:"generate"`
}

type StorageConfig struct {
	Type      string            `mapstructure:"type" yaml:"type" json:"type,omitempty"`
	S3        *s3.Config        `mapstructure:"s3"  json:"s3,omitempty" yaml:"s3"`
	Directory *directory.Config `mapstructure:"directory" json:"directory,omitempty" yaml:"directory"`
}

type LogConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format,omitempty"`
	Level  string `mapstructure:"level" yaml:"level" json:"level,omitempty"`
}

type Generate struct {
	// Records - number of statements to produce
	Records int `mapstructure:"records" yaml:"records" json:"records"`
	Workers int `mapstructure:"workers" yaml:"workers" json:"workers"`
	// Output - object name inside the storage, a text/template with sprig functions
	Output   string `mapstructure:"output" yaml:"output" json:"output"`
	Compress bool   `mapstructure:"compress" yaml:"compress" json:"compress,omitempty"`
	UsePgzip bool   `mapstructure:"use_pgzip" yaml:"use_pgzip" json:"use_pgzip,omitempty"`
	// Engine - random or hash
	Engine string `mapstructure:"engine" yaml:"engine" json:"engine"`
	// Seed - random engine seed, 0 means time based
	Seed         int64  `mapstructure:"seed" yaml:"seed" json:"seed,omitempty"`
	Salt         string `mapstructure:"salt" yaml:"salt" json:"salt,omitempty"`
	HashFunction string `mapstructure:"hash_function" yaml:"hash_function" json:"hash_function,omitempty"`
	// Tables - CREATE TABLE statements. The built-in sample tables are used when empty
	Tables config.Statements `mapstructure:"tables" yaml:"tables" json:"tables,omitempty"`
	// Weights - relative frequency of each statement kind. Every kind is equally
	// likely when empty, otherwise missing kinds are never produced
	Weights    map[string]int `mapstructure:"weights" yaml:"weights" json:"weights,omitempty"`
	Names      []string       `mapstructure:"names" yaml:"names" json:"names,omitempty"`
	BaseDate   time.Time      `mapstructure:"base_date" yaml:"base_date" json:"base_date"`
	DateJitter string         `mapstructure:"date_jitter" yaml:"date_jitter" json:"date_jitter"`
}
