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
	"errors"
	"fmt"
	"os"

	"github.com/greenmaskio/sqlsynth/internal/domains"
	"github.com/greenmaskio/sqlsynth/internal/storages"
	"github.com/greenmaskio/sqlsynth/internal/storages/directory"
	"github.com/greenmaskio/sqlsynth/internal/storages/s3"
)

const (
	DirectoryStorageType = "directory"
	S3StorageType        = "s3"
)

var errUnknownStorageType = errors.New("unknown storage type")

// GetStorage - builds the storage by storage.type. STORAGE_TYPE overrides the
// configured type.
func GetStorage(ctx context.Context, stCfg *domains.StorageConfig, logCfg *domains.LogConfig) (
	storages.Storager, error,
) {
	storageType := stCfg.Type
	if envType := os.Getenv("STORAGE_TYPE"); envType != "" {
		storageType = envType
	}
	switch storageType {
	case DirectoryStorageType, "":
		return directory.NewStorage(stCfg.Directory)
	case S3StorageType:
		return s3.NewStorage(ctx, stCfg.S3, logCfg.Level)
	}
	return nil, fmt.Errorf("storage type %s: %w", storageType, errUnknownStorageType)
}
