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

package show_schema

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/greenmaskio/sqlsynth/internal/domains"
	"github.com/greenmaskio/sqlsynth/internal/schema"
	"github.com/greenmaskio/sqlsynth/internal/synth"
	"github.com/greenmaskio/sqlsynth/internal/utils/logger"
)

const (
	JsonFormatName = "json"
	YamlFormatName = "yaml"
	TextFormatName = "text"
)

var (
	Cmd = &cobra.Command{
		Use:   "show-schema [flags] [create table statement...]",
		Short: "parse tables and print their columns",
		Long: "Parses the given CREATE TABLE statements, or the configured tables when none are given, " +
			"and prints what the generator sees: column types, type classes, keys and references",
		Run: func(cmd *cobra.Command, args []string) {
			if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
				log.Fatal().Err(err).Msg("")
			}
			if err := run(cmd.OutOrStdout(), args); err != nil {
				log.Fatal().Err(err).Msg("")
			}
		},
	}
	Config = domains.NewConfig()
	format string
)

func run(out io.Writer, ddls []string) error {
	if len(ddls) == 0 {
		ddls = Config.Generate.Tables
	}
	tables, err := synth.ParseTables(ddls)
	if err != nil {
		return err
	}

	switch format {
	case JsonFormatName:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(tables)
	case YamlFormatName:
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(tables)
	case TextFormatName:
		renderText(out, tables)
		return nil
	}
	return fmt.Errorf(`unknown format "%s"`, format)
}

func renderText(out io.Writer, tables []*schema.Table) {
	var data [][]string
	for _, t := range tables {
		for _, c := range t.Columns {
			var ref string
			if c.RefTable != nil && c.RefColumn != nil {
				ref = fmt.Sprintf("%s(%s)", *c.RefTable, *c.RefColumn)
			}
			data = append(data, []string{
				t.Name,
				c.Name,
				c.TypeString(),
				c.TypeClass().String(),
				strconv.FormatBool(c.Nullable),
				strconv.FormatBool(c.IsPrimaryKey),
				ref,
			})
		}
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"table", "column", "type", "class", "nullable", "primary key", "references"})
	table.SetAutoMergeCellsByColumnIndex([]int{0})
	table.SetRowLine(true)
	table.AppendBulk(data)
	table.Render()
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", TextFormatName, "output format [text|json|yaml]")
}
