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

package list_kinds

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/greenmaskio/sqlsynth/internal/domains"
	"github.com/greenmaskio/sqlsynth/internal/synth"
	"github.com/greenmaskio/sqlsynth/internal/utils/logger"
	stringsUtils "github.com/greenmaskio/sqlsynth/internal/utils/strings"
)

const (
	JsonFormatName = "json"
	TextFormatName = "text"
)

const descriptionMaxLength = 60

var (
	Cmd = &cobra.Command{
		Use:   "list-kinds",
		Short: "list statement kinds with their configured weights",
		Run: func(cmd *cobra.Command, args []string) {
			if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
				log.Fatal().Err(err).Msg("")
			}
			if err := run(cmd.OutOrStdout()); err != nil {
				log.Fatal().Err(err).Msg("")
			}
		},
	}
	Config = domains.NewConfig()
	format string
)

type kindInfo struct {
	Name        string  `json:"name"`
	Weight      int     `json:"weight"`
	Probability float64 `json:"probability"`
	Description string  `json:"description"`
}

func run(out io.Writer) error {
	weights, err := synth.ParseWeights(Config.Generate.Weights)
	if err != nil {
		return err
	}
	var total int
	for _, w := range weights {
		total += w.Weight
	}
	info := make([]*kindInfo, 0, len(weights))
	for _, w := range weights {
		info = append(info, &kindInfo{
			Name:        w.Kind.String(),
			Weight:      w.Weight,
			Probability: float64(w.Weight) / float64(total),
			Description: w.Kind.Description(),
		})
	}

	switch format {
	case JsonFormatName:
		return json.NewEncoder(out).Encode(info)
	case TextFormatName:
		renderText(out, info)
		return nil
	}
	return fmt.Errorf(`unknown format "%s"`, format)
}

func renderText(out io.Writer, info []*kindInfo) {
	var data [][]string
	for _, ki := range info {
		data = append(data, []string{
			ki.Name,
			strconv.Itoa(ki.Weight),
			strconv.FormatFloat(ki.Probability*100, 'f', 1, 64) + "%",
			stringsUtils.WrapString(ki.Description, descriptionMaxLength),
		})
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"kind", "weight", "share", "description"})
	table.SetAutoWrapText(false)
	table.SetRowLine(true)
	table.AppendBulk(data)
	table.Render()
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", TextFormatName, "output format [text|json]")
}
