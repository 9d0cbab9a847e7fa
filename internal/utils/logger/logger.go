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

package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Values of log.format
const (
	LogFormatJsonValue = "json"
	LogFormatTextValue = "text"
)

var logLevels = map[string]zerolog.Level{
	zerolog.LevelDebugValue: zerolog.DebugLevel,
	zerolog.LevelInfoValue:  zerolog.InfoLevel,
	zerolog.LevelWarnValue:  zerolog.WarnLevel,
	zerolog.LevelErrorValue: zerolog.ErrorLevel,
}

// SetLogLevel - configures the global logger shared by the commands, the generation
// runner and the storages. Logs go to stderr, stdout is left to rendered statements
// and schema listings.
func SetLogLevel(logLevelStr string, logFormat string) error {
	return setLogLevel(os.Stderr, logLevelStr, logFormat)
}

func setLogLevel(out io.Writer, logLevelStr string, logFormat string) error {
	logLevel, ok := logLevels[logLevelStr]
	if !ok {
		return fmt.Errorf("unknown log level %s", logLevelStr)
	}

	var formatWriter io.Writer
	switch logFormat {
	case LogFormatJsonValue:
		formatWriter = out
	case LogFormatTextValue, "":
		formatWriter = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	default:
		return fmt.Errorf("unknown log format %s", logFormat)
	}

	ctx := zerolog.New(formatWriter).
		Level(logLevel).
		With().
		Timestamp()
	// debug adds the caller and the process id
	if logLevel == zerolog.DebugLevel {
		ctx = ctx.Caller().Int("pid", os.Getpid())
	}
	log.Logger = ctx.Logger()
	return nil
}
