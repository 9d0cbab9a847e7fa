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

const defaultPath = "."

type Config struct {
	Path string `mapstructure:"path" yaml:"path" json:"path"`
	// Append - PutObject appends to an existing file instead of truncating it
	Append bool `mapstructure:"append" yaml:"append" json:"append"`
}

func NewConfig() *Config {
	return &Config{
		Path:   defaultPath,
		Append: true,
	}
}
