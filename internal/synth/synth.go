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

// Package synth runs the generation loop: it picks a table and a statement kind
// for every record, renders the statement and streams it into the storage.
package synth

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/greenmaskio/sqlsynth/internal/domains"
	"github.com/greenmaskio/sqlsynth/internal/generators"
	"github.com/greenmaskio/sqlsynth/internal/schema"
	"github.com/greenmaskio/sqlsynth/internal/sqlgen"
	"github.com/greenmaskio/sqlsynth/internal/storages"
	"github.com/greenmaskio/sqlsynth/internal/utils/config"
	"github.com/greenmaskio/sqlsynth/internal/utils/ioutils"
)

const statementsBufferSize = 64

var (
	errEmptyOutput     = errors.New("output name cannot be empty")
	errNegativeRecords = errors.New("records cannot be negative")
)

type Option func(s *Synth)

// WithClock - overrides the source of "today" passed to the statement generators.
func WithClock(clock func() time.Time) Option {
	return func(s *Synth) {
		s.clock = clock
	}
}

type statement struct {
	table string
	kind  sqlgen.Kind
	sql   string
}

type Synth struct {
	cfg        *domains.Generate
	st         storages.Storager
	tables     []*schema.Table
	weights    []KindWeight
	jitterDays int64
	workers    int
	seed       int64
	output     *template.Template
	clock      func() time.Time
}

func New(cfg *domains.Generate, st storages.Storager, opts ...Option) (*Synth, error) {
	if cfg.Output == "" {
		return nil, errEmptyOutput
	}
	if cfg.Records < 0 {
		return nil, errNegativeRecords
	}
	tables, err := ParseTables(cfg.Tables)
	if err != nil {
		return nil, fmt.Errorf("error parsing tables: %w", err)
	}
	for _, t := range tables {
		if pks := t.PrimaryKeys(); len(pks) > 1 {
			log.Warn().
				Str("Table", t.Name).
				Strs("PrimaryKeys", pks).
				Msg("table has more than one primary key column, rendered statements declare each of them")
		}
	}
	weights, err := ParseWeights(cfg.Weights)
	if err != nil {
		return nil, fmt.Errorf("error parsing weights: %w", err)
	}
	jitterDays, err := config.ParseDays(cfg.DateJitter)
	if err != nil {
		return nil, fmt.Errorf("error parsing date jitter: %w", err)
	}
	output, err := parseOutputTemplate(cfg.Output)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	s := &Synth{
		cfg:        cfg,
		st:         st,
		tables:     tables,
		weights:    weights,
		jitterDays: jitterDays,
		workers:    workers,
		seed:       seed,
		output:     output,
		clock:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}

	// validate the engine settings before any worker starts
	if _, _, err = s.NewStatementGenerator(0); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Synth) Tables() []*schema.Table {
	return s.tables
}

func (s *Synth) Run(ctx context.Context) (*Stat, error) {
	runID := uuid.New().String()
	output, err := s.renderOutput(runID)
	if err != nil {
		return nil, err
	}
	stat := newStat(runID, s.seed, output)
	logger := log.With().Str("RunID", stat.RunID).Logger()
	ctx = logger.WithContext(ctx)

	existed, err := s.st.Exists(ctx, output)
	if err != nil {
		return nil, fmt.Errorf("error checking output object: %w", err)
	}
	logger.Debug().
		Str("Output", output).
		Bool("Exists", existed).
		Int("Records", s.cfg.Records).
		Int("Workers", s.workers).
		Int64("Seed", s.seed).
		Msg("starting generation")

	pr, pw := io.Pipe()
	statements := make(chan *statement, s.workers*statementsBufferSize)

	eg, gtx := errgroup.WithContext(ctx)
	eg.Go(s.uploader(gtx, output, pr))
	eg.Go(s.writer(gtx, pw, statements, stat))
	eg.Go(s.workerPlanner(gtx, statements))

	if err := eg.Wait(); err != nil {
		if !existed {
			s.cleanup(context.WithoutCancel(ctx), output)
		}
		return nil, err
	}

	stat.Duration = time.Since(stat.StartedAt)
	stat.Log(logger)
	return stat, nil
}

// newSource - independent byte stream of the worker. Workers differ by seed for
// the random engine and by salt for the hash engine.
func (s *Synth) newSource(workerID int) (generators.Generator, error) {
	salt := []byte(fmt.Sprintf("%s%d", s.cfg.Salt, workerID))
	g, err := generators.New(s.cfg.Engine, s.seed+int64(workerID), salt, s.cfg.HashFunction)
	if err != nil {
		return nil, fmt.Errorf("error creating generator: %w", err)
	}
	return g, nil
}

// NewStatementGenerator - statement generator drawing from the byte stream of
// the worker. The stream itself is returned so pickers can share it.
func (s *Synth) NewStatementGenerator(workerID int) (*sqlgen.Generator, generators.Generator, error) {
	src, err := s.newSource(workerID)
	if err != nil {
		return nil, nil, err
	}
	g, err := sqlgen.New(
		src,
		sqlgen.WithNames(s.cfg.Names),
		sqlgen.WithBaseDate(s.cfg.BaseDate),
		sqlgen.WithDateJitterDays(s.jitterDays),
		sqlgen.WithClock(s.clock),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating statement generator: %w", err)
	}
	return g, src, nil
}

// recordsOf - share of the records produced by the worker.
func (s *Synth) recordsOf(workerID int) int {
	res := s.cfg.Records / s.workers
	if workerID < s.cfg.Records%s.workers {
		res++
	}
	return res
}

func (s *Synth) uploader(ctx context.Context, output string, r *io.PipeReader) func() error {
	return func() error {
		if err := s.st.PutObject(ctx, output, r); err != nil {
			_ = r.CloseWithError(err)
			return fmt.Errorf("error storing output: %w", err)
		}
		return r.Close()
	}
}

func (s *Synth) writer(
	ctx context.Context, pw *io.PipeWriter, statements <-chan *statement, stat *Stat,
) func() error {
	return func() error {
		cw := ioutils.NewCountWriter(pw)
		var w io.WriteCloser = cw
		if s.cfg.Compress {
			w = ioutils.NewGzipWriter(cw, s.cfg.UsePgzip)
		}
		buf := bufio.NewWriter(w)

		for {
			select {
			case <-ctx.Done():
				_ = pw.CloseWithError(ctx.Err())
				return ctx.Err()
			case stmt, ok := <-statements:
				if !ok {
					if err := buf.Flush(); err != nil {
						_ = pw.CloseWithError(err)
						return fmt.Errorf("error flushing output: %w", err)
					}
					if err := w.Close(); err != nil {
						_ = pw.CloseWithError(err)
						return fmt.Errorf("error closing output: %w", err)
					}
					stat.Bytes = cw.GetCount()
					return nil
				}
				if _, err := buf.WriteString(stmt.sql + "\n"); err != nil {
					_ = pw.CloseWithError(err)
					return fmt.Errorf("error writing statement: %w", err)
				}
				stat.add(stmt.table, stmt.kind)
			}
		}
	}
}

// workerPlanner - runs the workers and closes statements once all of them
// succeeded. On failure statements stay open and the writer exits by context.
func (s *Synth) workerPlanner(ctx context.Context, statements chan<- *statement) func() error {
	return func() error {
		workerEg, gtx := errgroup.WithContext(ctx)
		for j := 0; j < s.workers; j++ {
			workerEg.Go(s.worker(gtx, j, statements))
		}
		if err := workerEg.Wait(); err != nil {
			return err
		}
		close(statements)
		return nil
	}
}

func (s *Synth) worker(ctx context.Context, id int, statements chan<- *statement) func() error {
	return func() error {
		logger := zerolog.Ctx(ctx).With().Int("WorkerId", id).Logger()

		g, src, err := s.NewStatementGenerator(id)
		if err != nil {
			return fmt.Errorf("worker %d: %w", id, err)
		}
		kinds, err := NewKindPicker(s.weights)
		if err != nil {
			return fmt.Errorf("worker %d: %w", id, err)
		}
		tables, err := NewTablePicker(s.tables)
		if err != nil {
			return fmt.Errorf("worker %d: %w", id, err)
		}
		if err = kinds.SetGenerator(src); err != nil {
			return fmt.Errorf("worker %d: %w", id, err)
		}
		if err = tables.SetGenerator(src); err != nil {
			return fmt.Errorf("worker %d: %w", id, err)
		}

		count := s.recordsOf(id)
		for i := 0; i < count; i++ {
			k, err := kinds.Pick()
			if err != nil {
				return fmt.Errorf("worker %d: error picking kind: %w", id, err)
			}
			t, err := tables.Pick()
			if err != nil {
				return fmt.Errorf("worker %d: error picking table: %w", id, err)
			}
			sql, err := g.Render(t, k)
			if err != nil {
				return fmt.Errorf("worker %d: error rendering %s for \"%s\": %w", id, k, t.Name, err)
			}
			select {
			case <-ctx.Done():
				logger.Debug().Err(ctx.Err()).Msg("exited due to cancelled context")
				return ctx.Err()
			case statements <- &statement{table: t.Name, kind: k, sql: sql}:
			}
		}
		logger.Debug().Int("Records", count).Msg("worker finished")
		return nil
	}
}

func (s *Synth) cleanup(ctx context.Context, output string) {
	exists, err := s.st.Exists(ctx, output)
	if err != nil || !exists {
		return
	}
	if err := s.st.Delete(ctx, output); err != nil {
		log.Warn().Err(err).Str("Output", output).Msg("unable to delete incomplete output")
	}
}
