// processor.go - Batch decoding of encodings read from files or stdin
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/fenboard-go/internal/config"
	"github.com/lgbarn/fenboard-go/internal/errors"
	"github.com/lgbarn/fenboard-go/internal/fen"
	"github.com/lgbarn/fenboard-go/internal/hashing"
	"github.com/lgbarn/fenboard-go/internal/matching"
	"github.com/lgbarn/fenboard-go/internal/output"
	"github.com/lgbarn/fenboard-go/internal/worker"
)

// Stats counts what happened to the encodings read.
type Stats struct {
	Read       int
	Written    int
	Failed     int
	Duplicates int
	Skipped    int
}

// Processor decodes encodings and writes the resulting positions.
// Results are handled on a single goroutine, so the writer and the
// duplicate detector need no locking.
type Processor struct {
	cfg      *config.Config
	decoder  *fen.Decoder
	writer   output.PositionWriter
	detector *hashing.DuplicateDetector
	matcher  matching.PositionMatcher
	stats    Stats
	stopped  bool
}

// NewProcessor creates a processor writing to cfg.OutputFile.
func NewProcessor(cfg *config.Config) *Processor {
	p := &Processor{
		cfg:     cfg,
		decoder: cfg.Decode.Decoder(),
		writer:  output.NewWriter(cfg.OutputFile, cfg),
	}
	if cfg.Duplicate.Enabled() {
		p.detector = hashing.NewDuplicateDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.Capacity)
	}
	return p
}

// SetMatcher restricts output to positions accepted by m. A nil matcher
// accepts every position.
func (p *Processor) SetMatcher(m matching.PositionMatcher) {
	p.matcher = m
}

// Stats returns the counts so far.
func (p *Processor) Stats() Stats {
	return p.stats
}

// Stopped reports whether the -stopafter limit has been reached.
func (p *Processor) Stopped() bool {
	return p.stopped
}

// ProcessLine decodes and writes a single encoding.
func (p *Processor) ProcessLine(line, source string, lineNum int) error {
	item := worker.WorkItem{Line: line, Source: source, LineNum: lineNum}
	return p.handle(worker.DecodeFunc(p.decoder)(item))
}

// ProcessReader decodes every encoding line of r on the worker pool and
// writes the positions in input order. Blank lines and comment lines are
// skipped. It returns the first read or write error; decode failures are
// only logged and counted.
func (p *Processor) ProcessReader(ctx context.Context, r io.Reader, source string) error {
	if p.stopped {
		return nil
	}

	pool := worker.NewPoolWithOptions(
		worker.DecodeFunc(p.decoder),
		worker.WithWorkers(p.cfg.Batch.Workers),
		worker.WithBufferSize(p.cfg.Batch.BufferSize),
	)
	pool.Start()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer pool.Close()

		scanner := bufio.NewScanner(r)
		lineNum, index := 0, 0
		for scanner.Scan() {
			lineNum++
			if gctx.Err() != nil || pool.IsStopped() {
				return gctx.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			if p.skipLine(line) {
				continue
			}
			pool.Submit(worker.WorkItem{Line: line, Source: source, LineNum: lineNum, Index: index})
			index++
		}
		if err := scanner.Err(); err != nil {
			return errors.Wrapf(err, "reading %s", displayName(source))
		}
		return nil
	})

	g.Go(func() error {
		var firstErr error
		reorder := worker.NewReorderer()
		emit := func(results []worker.ProcessResult) {
			for _, res := range results {
				if firstErr != nil || p.stopped {
					return
				}
				if err := p.handle(res); err != nil {
					firstErr = err
					pool.Stop()
				}
			}
		}

		// Keep draining after a failure so the producer never blocks.
		for res := range pool.Results() {
			emit(reorder.Push(res))
			if p.stopped {
				pool.Stop()
			}
		}
		emit(reorder.Flush())
		return firstErr
	})

	return g.Wait()
}

// skipLine reports whether an input line carries no encoding.
func (p *Processor) skipLine(line string) bool {
	if line == "" {
		return true
	}
	prefix := p.cfg.Batch.CommentPrefix
	return prefix != "" && strings.HasPrefix(line, prefix)
}

// handle logs, selects, de-duplicates and writes one decoded result.
func (p *Processor) handle(res worker.ProcessResult) error {
	p.stats.Read++

	if res.Err != nil {
		p.stats.Failed++
		if p.cfg.Verbosity > 0 {
			fmt.Fprintf(p.cfg.LogFile, "%v\n", res.Err)
		}
		return nil
	}

	if p.matcher != nil && !p.matcher.Match(res.Position) {
		p.stats.Skipped++
		if p.cfg.Verbosity > 1 {
			fmt.Fprintf(p.cfg.LogFile, "%s: not selected\n", location(res.Item))
		}
		return nil
	}

	if p.detector != nil && p.detector.CheckAndAdd(res.Position) {
		p.stats.Duplicates++
		if p.cfg.Verbosity > 1 {
			fmt.Fprintf(p.cfg.LogFile, "%s: duplicate position\n", location(res.Item))
		}
		if dup := p.cfg.Duplicate.DuplicateFile; dup != nil {
			if _, err := fmt.Fprintln(dup, res.Item.Line); err != nil {
				return err
			}
		}
		return nil
	}

	if p.cfg.Verbosity > 1 {
		fmt.Fprintf(p.cfg.LogFile, "%s: %d pieces, %s to move\n",
			location(res.Item), len(res.Position.Pieces), res.Position.ToMove)
	}

	if err := p.writer.WritePosition(res.Position, res.Item.Line); err != nil {
		return err
	}
	p.stats.Written++

	if limit := p.cfg.Batch.StopAfter; limit > 0 && p.stats.Written >= limit {
		p.stopped = true
	}
	return nil
}

// Close flushes any buffered output.
func (p *Processor) Close() error {
	return p.writer.Close()
}

// location formats the input position of an item for log messages.
func location(item worker.WorkItem) string {
	if item.LineNum == 0 {
		return displayName(item.Source)
	}
	return fmt.Sprintf("%s:%d", displayName(item.Source), item.LineNum)
}

func displayName(source string) string {
	if source == "" {
		return "stdin"
	}
	return source
}
