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

package synth

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// OutputData - values available in the output name template, e.g.
// "statements-{{ .RunID }}.sql" or "{{ now | date \"20060102\" }}/{{ .Seed }}.sql".
type OutputData struct {
	RunID   string
	Seed    int64
	Records int
	Workers int
}

func parseOutputTemplate(name string) (*template.Template, error) {
	tmpl, err := template.New("output").
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(name)
	if err != nil {
		return nil, fmt.Errorf("error parsing output template: %w", err)
	}
	return tmpl, nil
}

func (s *Synth) renderOutput(runID string) (string, error) {
	var b strings.Builder
	data := &OutputData{
		RunID:   runID,
		Seed:    s.seed,
		Records: s.cfg.Records,
		Workers: s.workers,
	}
	if err := s.output.Execute(&b, data); err != nil {
		return "", fmt.Errorf("error rendering output name: %w", err)
	}
	res := strings.TrimSpace(b.String())
	if res == "" {
		return "", errEmptyOutput
	}
	return res, nil
}
