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

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/greenmaskio/sqlsynth/internal/domains"
	"github.com/greenmaskio/sqlsynth/internal/sqlgen"
	"github.com/greenmaskio/sqlsynth/internal/synth"
	"github.com/greenmaskio/sqlsynth/internal/utils/logger"
)

var (
	Cmd = &cobra.Command{
		Use:   "render [flags] <create table statement>",
		Short: "render statements of one kind for a table and print them to stdout",
		Example: `  sqlsynth render --kind insert "create table t (id number(10) primary key, name varchar(255))"
  sqlsynth render --kind select --count 5 --seed 1 "create table t (id int, created date)"`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
				log.Fatal().Err(err).Msg("")
			}

			var seedOverride *int64
			if cmd.Flags().Changed("seed") {
				seedOverride = &seed
			}
			if err := run(cmd.OutOrStdout(), strings.Join(args, " "), seedOverride); err != nil {
				log.Fatal().Err(err).Msg("")
			}
		},
	}
	Config   = domains.NewConfig()
	kindName string
	count    int
	seed     int64
)

func run(out io.Writer, ddl string, seedOverride *int64) error {
	kind, err := sqlgen.ParseKind(kindName)
	if err != nil {
		return err
	}
	if count < 1 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	cfg := Config.Generate
	cfg.Tables = []string{ddl}
	if seedOverride != nil {
		cfg.Seed = *seedOverride
	}
	s, err := synth.New(&cfg, nil)
	if err != nil {
		return err
	}
	g, _, err := s.NewStatementGenerator(0)
	if err != nil {
		return err
	}
	table := s.Tables()[0]
	for i := 0; i < count; i++ {
		sql, err := g.Render(table, kind)
		if err != nil {
			return fmt.Errorf("cannot render %s: %w", kind, err)
		}
		if _, err = fmt.Fprintln(out, sql); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	Cmd.Flags().StringVarP(&kindName, "kind", "k", "", "statement kind [create|alter|drop|insert|select|update|delete]")
	Cmd.Flags().IntVarP(&count, "count", "c", 1, "number of statements to render")
	Cmd.Flags().Int64VarP(&seed, "seed", "", 0, "random engine seed, 0 means time based")
	if err := Cmd.MarkFlagRequired("kind"); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
