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

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/greenmaskio/sqlsynth/cmd/sqlsynth/cmd/generate"
	"github.com/greenmaskio/sqlsynth/cmd/sqlsynth/cmd/list_kinds"
	"github.com/greenmaskio/sqlsynth/cmd/sqlsynth/cmd/render"
	"github.com/greenmaskio/sqlsynth/cmd/sqlsynth/cmd/show_schema"
	"github.com/greenmaskio/sqlsynth/internal/domains"
	configUtils "github.com/greenmaskio/sqlsynth/internal/utils/config"
)

const (
	defaultConfigDirName  = "sqlsynth"
	defaultConfigFileName = "config.yml"
)

var (
	Version    string
	Commit     string
	CommitDate string

	RootCmd = &cobra.Command{
		Use:   "sqlsynth",
		Short: "sqlsynth generates random SQL statements for a set of tables",
		Long: "A generator of plausible SQL traffic. It parses CREATE TABLE statements and " +
			"produces randomized CREATE, ALTER, DROP, INSERT, SELECT, UPDATE and DELETE " +
			"statements against them. The output is a plain text file with one statement " +
			"per line, stored in a directory or in S3 and optionally compressed",
	}
	cfgFile string
	Config  = domains.NewConfig()
)

func Execute() error {
	return RootCmd.Execute()
}

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				Commit = setting.Value
			}
			if setting.Key == "vcs.time" {
				CommitDate = setting.Value
			}
		}
	}
	if Version != "" {
		RootCmd.Version = fmt.Sprintf("%s %s %s", Version, Commit, CommitDate)
	} else {
		RootCmd.Version = fmt.Sprintf("%s %s", Commit, CommitDate)
	}

	cobra.OnInitialize(initConfig)
	// Removing short help flag from default
	RootCmd.PersistentFlags().BoolP("help", "", false, "help for sqlsynth")
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file ")
	RootCmd.PersistentFlags().StringP("log-format", "", "text", "logging format [text|json]")
	RootCmd.PersistentFlags().StringP("log-level", "", zerolog.LevelInfoValue,
		fmt.Sprintf(
			"logging level %s|%s|%s|%s",
			zerolog.LevelDebugValue,
			zerolog.LevelInfoValue,
			zerolog.LevelWarnValue,
			zerolog.LevelErrorValue,
		),
	)

	RootCmd.AddCommand(generate.Cmd)
	RootCmd.AddCommand(render.Cmd)
	RootCmd.AddCommand(show_schema.Cmd)
	RootCmd.AddCommand(list_kinds.Cmd)

	if err := viper.BindPFlag("log.format", RootCmd.PersistentFlags().Lookup("log-format")); err != nil {
		log.Fatal().Err(err).Msg("")
	}

	if err := viper.BindPFlag("log.level", RootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		log.Fatal().Err(err).Msg("")
	}

	RootCmd.InitDefaultCompletionCmd()
	RootCmd.InitDefaultHelpCmd()
	RootCmd.InitDefaultVersionFlag()

	for _, c := range RootCmd.Commands() {
		if c.Name() == "completion" || c.Name() == "help" {
			c.DisableFlagParsing = true
			for _, subc := range c.Commands() {
				subc.DisableFlagParsing = true
			}
		}
	}
}

// defaultConfigFile - $XDG_CONFIG_HOME/sqlsynth/config.yml when it exists.
func defaultConfigFile() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(configDir, defaultConfigDirName, defaultConfigFileName)
	if _, err := os.Stat(p); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("Path", p).Msg("cannot access default config file")
		}
		return ""
	}
	return p
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = defaultConfigFile()
	}
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal().Err(err).Msg("error reading from config file")
		}
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	// NUM_RECORDS is kept for compatibility with the environment based setup
	if err := viper.BindEnv("generate.records", "GENERATE_RECORDS", "NUM_RECORDS"); err != nil {
		log.Fatal().Err(err).Msg("")
	}

	decoderCfg := func(cfg *mapstructure.DecoderConfig) {
		cfg.DecodeHook = configUtils.DecodeHook()
	}

	if err := viper.Unmarshal(Config, decoderCfg); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
