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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()
	require.Same(t, cfg, NewConfig())

	require.Equal(t, defaultStorageType, cfg.Storage.Type)
	require.NotNil(t, cfg.Storage.Directory)
	require.NotNil(t, cfg.Storage.S3)
	require.Equal(t, 30, cfg.Generate.Records)
	require.Equal(t, "output.sql", cfg.Generate.Output)
	require.Empty(t, cfg.Generate.Weights)
	require.Equal(t, "2021-01-01", cfg.Generate.BaseDate.Format("2006-01-02"))
}

func TestNewGenerate_Independent(t *testing.T) {
	a := NewGenerate()
	b := NewGenerate()
	a.Names[0] = "Eve"
	require.Equal(t, "Alice", b.Names[0])
}
