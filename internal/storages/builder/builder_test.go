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

package builder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/greenmaskio/sqlsynth/internal/domains"
	"github.com/greenmaskio/sqlsynth/internal/storages/directory"
	"github.com/greenmaskio/sqlsynth/internal/storages/s3"
)

func TestGetStorage(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "")
	dir := t.TempDir()
	logCfg := &domains.LogConfig{Level: "info"}

	st, err := GetStorage(context.Background(), &domains.StorageConfig{
		Type:      DirectoryStorageType,
		Directory: &directory.Config{Path: dir},
	}, logCfg)
	require.NoError(t, err)
	require.IsType(t, &directory.Storage{}, st)
	require.Equal(t, dir, st.GetCwd())

	_, err = GetStorage(context.Background(), &domains.StorageConfig{Type: "ftp"}, logCfg)
	require.ErrorIs(t, err, errUnknownStorageType)

	_, err = GetStorage(context.Background(), &domains.StorageConfig{
		Type: S3StorageType,
		S3:   s3.NewConfig(),
	}, logCfg)
	require.Error(t, err)
}

func TestGetStorage_EnvOverride(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "ftp")
	_, err := GetStorage(context.Background(), &domains.StorageConfig{Type: DirectoryStorageType}, &domains.LogConfig{})
	require.ErrorIs(t, err, errUnknownStorageType)
}
