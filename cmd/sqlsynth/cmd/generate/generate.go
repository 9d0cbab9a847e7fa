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

package generate

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/greenmaskio/sqlsynth/internal/domains"
	"github.com/greenmaskio/sqlsynth/internal/storages/builder"
	"github.com/greenmaskio/sqlsynth/internal/synth"
	"github.com/greenmaskio/sqlsynth/internal/utils/logger"
)

var (
	Cmd = &cobra.Command{
		Use:   "generate",
		Short: "generate random SQL statements and store them in the storage",
		Run: func(cmd *cobra.Command, args []string) {
			if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
				log.Fatal().Err(err).Msg("")
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			if err := run(ctx); err != nil {
				log.Fatal().Err(err).Msg("fatal")
			}
		},
	}
	Config = domains.NewConfig()
)

func run(ctx context.Context) error {
	st, err := builder.GetStorage(ctx, &Config.Storage, &Config.Log)
	if err != nil {
		return fmt.Errorf("cannot initialise storage: %w", err)
	}

	s, err := synth.New(&Config.Generate, st)
	if err != nil {
		return fmt.Errorf("invalid generation settings: %w", err)
	}

	if _, err := s.Run(ctx); err != nil {
		return fmt.Errorf("cannot generate statements: %w", err)
	}
	return nil
}

func init() {
	Cmd.Flags().IntP("records", "n", 30, "number of statements to generate")
	Cmd.Flags().IntP("workers", "j", 1, "use this many parallel workers")
	Cmd.Flags().Int64P("seed", "", 0, "random engine seed, 0 means time based")
	Cmd.Flags().StringP("engine", "", "random", "value source engine [random|hash]")
	Cmd.Flags().StringP("salt", "", "", "hash engine salt")
	Cmd.Flags().StringP("hash-function", "", "sha3-256",
		"hash engine function [sha1|sha256|sha512|sha3-224|sha3-256|sha3-384|sha3-512|siphash|murmur]")
	Cmd.Flags().StringP("output", "o", "output.sql", "output object name in the storage")
	Cmd.Flags().BoolP("compress", "", false, "compress output with gzip")
	Cmd.Flags().BoolP("pgzip", "", false, "use pgzip for compression")
	Cmd.Flags().StringArrayP("table", "t", []string{}, "CREATE TABLE statement, can be repeated")
	Cmd.Flags().StringSliceP("weight", "", []string{}, "kind weight in kind=n form, e.g. --weight insert=3")
	Cmd.Flags().StringP("date-jitter", "", "3d", "width of the BETWEEN start date window")

	for _, flagName := range []string{
		"records", "workers", "seed", "engine", "salt", "output", "compress",
	} {
		flag := Cmd.Flags().Lookup(flagName)
		if err := viper.BindPFlag("generate."+flag.Name, flag); err != nil {
			log.Fatal().Err(err).Msg("fatal")
		}
	}

	bindings := map[string]string{
		"generate.use_pgzip":     "pgzip",
		"generate.tables":        "table",
		"generate.weights":       "weight",
		"generate.date_jitter":   "date-jitter",
		"generate.hash_function": "hash-function",
	}
	for key, flagName := range bindings {
		if err := viper.BindPFlag(key, Cmd.Flags().Lookup(flagName)); err != nil {
			log.Fatal().Err(err).Msg("fatal")
		}
	}
}
