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

package s3

import (
	"strconv"

	"github.com/rs/zerolog"
)

// LogWrapper - aws.Logger writing sdk messages about output uploads into zerolog.
// The sdk only logs when storage.s3 log level is debug or higher.
type LogWrapper struct {
	logger *zerolog.Logger
}

func (lw LogWrapper) Log(objs ...interface{}) {
	event := lw.logger.Debug().Str("Storage", "s3")
	for idx, o := range objs {
		event.Any(strconv.Itoa(idx), o)
	}
	event.Msg("aws sdk")
}
