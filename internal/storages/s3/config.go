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
	"errors"
)

const (
	defaultMaxRetries   = 3
	defaultMaxPartSize  = 50 * 1024 * 1024
	defaultStorageClass = "STANDARD"
)

var errEmptyBucket = errors.New("bucket cannot be empty")

type Config struct {
	Endpoint        string `mapstructure:"endpoint" yaml:"endpoint" json:"endpoint"`
	Bucket          string `mapstructure:"bucket" yaml:"bucket" json:"bucket"`
	Prefix          string `mapstructure:"prefix" yaml:"prefix" json:"prefix"`
	Region          string `mapstructure:"region" yaml:"region" json:"region"`
	StorageClass    string `mapstructure:"storage_class" yaml:"storage_class" json:"storage_class"`
	AccessKeyId     string `mapstructure:"access_key_id" yaml:"access_key_id" json:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key" yaml:"secret_access_key" json:"secret_access_key"`
	SessionToken    string `mapstructure:"session_token" yaml:"session_token" json:"session_token"`
	RoleArn         string `mapstructure:"role_arn" yaml:"role_arn" json:"role_arn"`
	SessionName     string `mapstructure:"session_name" yaml:"session_name" json:"session_name"`
	MaxRetries      int    `mapstructure:"max_retries" yaml:"max_retries" json:"max_retries"`
	CertFile        string `mapstructure:"cert_file" yaml:"cert_file" json:"cert_file"`
	MaxPartSize     int64  `mapstructure:"max_part_size" yaml:"max_part_size" json:"max_part_size"`
	Concurrency     int    `mapstructure:"concurrency" yaml:"concurrency" json:"concurrency"`
	ForcePathStyle  bool   `mapstructure:"force_path_style" yaml:"force_path_style" json:"force_path_style"`
	UseAccelerate   bool   `mapstructure:"use_accelerate" yaml:"use_accelerate" json:"use_accelerate"`
	NoVerifySsl     bool   `mapstructure:"no_verify_ssl" yaml:"no_verify_ssl" json:"no_verify_ssl"`
}

func NewConfig() *Config {
	return &Config{
		StorageClass:   defaultStorageClass,
		ForcePathStyle: true,
		MaxRetries:     defaultMaxRetries,
		MaxPartSize:    defaultMaxPartSize,
	}
}

func (c *Config) Validate() error {
	if c.Bucket == "" {
		return errEmptyBucket
	}
	return nil
}
