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

package directory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/greenmaskio/sqlsynth/internal/storages"
)

const (
	dirMode  os.FileMode = 0750
	fileMode os.FileMode = 0640
)

type Storage struct {
	dirMode  os.FileMode
	fileMode os.FileMode
	cwd      string
	append   bool
	mx       *sync.Mutex
}

func NewStorage(cfg *Config) (*Storage, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	fileInfo, err := os.Stat(cfg.Path)
	if err != nil {
		return nil, err
	}
	if !fileInfo.IsDir() {
		return nil, errors.New("received directory path is file")
	}
	return &Storage{
		dirMode:  dirMode,
		fileMode: fileMode,
		cwd:      cfg.Path,
		append:   cfg.Append,
		mx:       &sync.Mutex{},
	}, nil
}

func (s *Storage) GetCwd() string {
	return s.cwd
}

func (s *Storage) GetObject(ctx context.Context, filePath string) (io.ReadCloser, error) {
	f, err := os.Open(path.Join(s.cwd, filePath))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", filePath, storages.ErrFileNotFound)
	}
	return f, err
}

// PutObject - writes body into the file. In append mode the data is added to the
// end of an existing file, otherwise the file is truncated.
func (s *Storage) PutObject(ctx context.Context, filePath string, body io.Reader) error {
	dir := path.Join(s.cwd, path.Dir(filePath))
	s.mx.Lock()
	err := os.MkdirAll(dir, s.dirMode)
	s.mx.Unlock()
	if err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	flags := os.O_CREATE | os.O_WRONLY
	if s.append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path.Join(s.cwd, filePath), flags, s.fileMode)
	if err != nil {
		return fmt.Errorf("unable to open file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Str("FilePath", filePath).Msg("error closing file")
		}
	}()

	var copyErr error
	done := make(chan struct{})
	go func() {
		_, copyErr = io.Copy(f, body)
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
	}

	if copyErr != nil {
		return fmt.Errorf("error writing data: %w", copyErr)
	}
	return nil
}

func (s *Storage) Delete(ctx context.Context, filePaths ...string) error {
	for _, fp := range filePaths {
		fullPath := path.Join(s.cwd, fp)
		fileInfo, err := os.Stat(fullPath)
		if err != nil {
			return err
		}
		if fileInfo.IsDir() {
			err = os.RemoveAll(fullPath)
		} else {
			err = os.Remove(fullPath)
		}
		if err != nil {
			return fmt.Errorf(`error deleting %s: %w`, fp, err)
		}
	}
	return nil
}

func (s *Storage) Exists(ctx context.Context, fileName string) (bool, error) {
	_, err := os.Stat(path.Join(s.cwd, fileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Storage) SubStorage(dp string, relative bool) storages.Storager {
	dirPath := dp
	if relative {
		dirPath = path.Join(s.cwd, dp)
	}
	return &Storage{
		cwd:      dirPath,
		dirMode:  s.dirMode,
		fileMode: s.fileMode,
		append:   s.append,
		mx:       s.mx,
	}
}
