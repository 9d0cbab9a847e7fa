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
	"errors"
	"fmt"
	"sort"

	"github.com/greenmaskio/sqlsynth/internal/generators"
	"github.com/greenmaskio/sqlsynth/internal/generators/transformers"
	"github.com/greenmaskio/sqlsynth/internal/schema"
	"github.com/greenmaskio/sqlsynth/internal/sqlgen"
)

var (
	ErrNegativeWeight = errors.New("weight cannot be negative")
	ErrZeroWeights    = errors.New("at least one kind must have a positive weight")
	errNoTables       = errors.New("no tables to pick from")
)

type KindWeight struct {
	Kind   sqlgen.Kind
	Weight int
}

// ParseWeights - converts configured weights into the kind order of sqlgen.AllKinds.
// Kinds missing in the map get zero weight. An empty map gives every kind weight 1.
func ParseWeights(weights map[string]int) ([]KindWeight, error) {
	if len(weights) == 0 {
		res := make([]KindWeight, 0, len(sqlgen.AllKinds))
		for _, k := range sqlgen.AllKinds {
			res = append(res, KindWeight{Kind: k, Weight: 1})
		}
		return res, nil
	}
	byKind := make(map[sqlgen.Kind]int, len(weights))
	for name, w := range weights {
		k, err := sqlgen.ParseKind(name)
		if err != nil {
			return nil, err
		}
		if w < 0 {
			return nil, fmt.Errorf("kind \"%s\": %w", name, ErrNegativeWeight)
		}
		byKind[k] = w
	}
	res := make([]KindWeight, 0, len(sqlgen.AllKinds))
	var total int
	for _, k := range sqlgen.AllKinds {
		res = append(res, KindWeight{Kind: k, Weight: byKind[k]})
		total += byKind[k]
	}
	if total == 0 {
		return nil, ErrZeroWeights
	}
	return res, nil
}

// KindPicker - weighted random choice of a statement kind. Zero weight kinds are
// never picked.
type KindPicker struct {
	kinds      []sqlgen.Kind
	cumulative []int64
	ints       *transformers.RandomInt64Transformer
}

func NewKindPicker(weights []KindWeight) (*KindPicker, error) {
	var total int64
	kp := &KindPicker{}
	for _, w := range weights {
		if w.Weight < 0 {
			return nil, fmt.Errorf("kind \"%s\": %w", w.Kind, ErrNegativeWeight)
		}
		if w.Weight == 0 {
			continue
		}
		total += int64(w.Weight)
		kp.kinds = append(kp.kinds, w.Kind)
		kp.cumulative = append(kp.cumulative, total)
	}
	if total == 0 {
		return nil, ErrZeroWeights
	}
	limiter, err := transformers.NewInt64Limiter(0, total)
	if err != nil {
		return nil, err
	}
	kp.ints, err = transformers.NewRandomInt64Transformer(limiter, generators.DefaultSize)
	if err != nil {
		return nil, err
	}
	return kp, nil
}

func (kp *KindPicker) Pick() (sqlgen.Kind, error) {
	v, err := kp.ints.Transform(nil, nil)
	if err != nil {
		return 0, err
	}
	idx := sort.Search(len(kp.cumulative), func(i int) bool {
		return kp.cumulative[i] > v
	})
	return kp.kinds[idx], nil
}

func (kp *KindPicker) GetRequiredGeneratorByteLength() int {
	return kp.ints.GetRequiredGeneratorByteLength()
}

func (kp *KindPicker) SetGenerator(g generators.Generator) error {
	return kp.ints.SetGenerator(g)
}

// TablePicker - uniform random choice of a table.
type TablePicker struct {
	tables []*schema.Table
	ints   *transformers.RandomInt64Transformer
}

func NewTablePicker(tables []*schema.Table) (*TablePicker, error) {
	if len(tables) == 0 {
		return nil, errNoTables
	}
	limiter, err := transformers.NewInt64Limiter(0, int64(len(tables)))
	if err != nil {
		return nil, err
	}
	ints, err := transformers.NewRandomInt64Transformer(limiter, generators.DefaultSize)
	if err != nil {
		return nil, err
	}
	return &TablePicker{
		tables: tables,
		ints:   ints,
	}, nil
}

func (tp *TablePicker) Pick() (*schema.Table, error) {
	idx, err := tp.ints.Transform(nil, nil)
	if err != nil {
		return nil, err
	}
	return tp.tables[idx], nil
}

func (tp *TablePicker) GetRequiredGeneratorByteLength() int {
	return tp.ints.GetRequiredGeneratorByteLength()
}

func (tp *TablePicker) SetGenerator(g generators.Generator) error {
	return tp.ints.SetGenerator(g)
}
