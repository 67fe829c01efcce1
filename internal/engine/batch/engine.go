// Package batch analyzes input files line by line.
package batch

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"runtime"
	"sync"
	"time"

	"go.trai.ch/jsstring/internal/core/domain"
	"go.trai.ch/jsstring/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Span attributes set on file spans.
const (
	CachedAttribute = "jsstring.cached"
	LinesAttribute  = "jsstring.lines"
)

// Options configures a batch run over files.
type Options struct {
	// Workers bounds the lines analyzed in parallel. Zero means one per CPU.
	Workers  int
	Encoding domain.Encoding
	// Cache is the report store directory. Empty disables the store.
	Cache string
	// NoCache skips reading stored reports; fresh reports are still written.
	NoCache bool
}

// Engine runs batch analysis. Each line is analyzed on its own goroutine
// with its own strings; only domain values cross goroutines.
type Engine struct {
	reader ports.InputReader
	hasher ports.Hasher
	store  ports.ReportStore
	tracer ports.Tracer
	logger ports.Logger
	now    func() time.Time

	mu         sync.RWMutex
	fileStatus map[string]domain.FileStatus
}

// NewEngine creates a new Engine.
func NewEngine(
	reader ports.InputReader,
	hasher ports.Hasher,
	store ports.ReportStore,
	tracer ports.Tracer,
	logger ports.Logger,
) *Engine {
	return &Engine{
		reader:     reader,
		hasher:     hasher,
		store:      store,
		tracer:     tracer,
		logger:     logger,
		now:        time.Now,
		fileStatus: make(map[string]domain.FileStatus),
	}
}

// Run analyzes lines with at most parallelism goroutines and returns the
// reports in line order. A panic while analyzing a line fails the run
// with the line number attached.
func (e *Engine) Run(ctx context.Context, lines []domain.Line, parallelism int) ([]domain.LineReport, error) {
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	reports := make([]domain.LineReport, len(lines))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i, line := range lines {
		g.Go(func() (err error) {
			defer zerr.Defer(func(p error) {
				err = zerr.With(p, "line", line.Number)
			})

			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			reports[i] = Analyze(line)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// RunFiles analyzes every file in order. A file whose stored report has a
// matching digest is not read again. Failed files are reported together
// after all files were attempted.
func (e *Engine) RunFiles(ctx context.Context, files []string, opts Options) ([]domain.FileReport, error) {
	ctx, root := e.tracer.Start(ctx, "batch", ports.WithRoot())
	defer root.End()

	e.tracer.EmitPlan(ctx, files)
	e.initStatuses(files)

	var (
		reports []domain.FileReport
		errs    error
	)

	for _, path := range files {
		if ctx.Err() != nil {
			break
		}

		report, err := e.runFile(ctx, path, opts)
		if err != nil {
			e.updateStatus(path, domain.FileStatusFailed)
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "file analysis failed"), "file", path))
			continue
		}

		e.updateStatus(path, report.Status)
		reports = append(reports, *report)
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		errs = errors.Join(errs, ctxErr)
	}
	if errs != nil {
		root.RecordError(errs)
		return reports, errors.Join(domain.ErrBatchFailed, errs)
	}
	return reports, nil
}

func (e *Engine) runFile(ctx context.Context, path string, opts Options) (*domain.FileReport, error) {
	ctx, span := e.tracer.Start(ctx, path)
	defer span.End()

	e.updateStatus(path, domain.FileStatusRunning)

	digest, err := e.hasher.ComputeInputHash(path, opts.Encoding)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if cached := e.lookup(path, digest, opts); cached != nil {
		span.SetAttribute(CachedAttribute, true)
		e.logger.Debug(fmt.Sprintf("reusing report for %s", path))
		return cached, nil
	}

	lines, err := e.reader.ReadLines(path, opts.Encoding)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute(LinesAttribute, len(lines))

	lineReports, err := e.Run(ctx, lines, opts.Workers)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	report := &domain.FileReport{
		Path:      path,
		Digest:    digest,
		Encoding:  opts.Encoding,
		Lines:     lineReports,
		Timestamp: e.now(),
		Status:    domain.FileStatusAnalyzed,
	}

	if opts.Cache != "" {
		if err := e.store.Put(opts.Cache, *report); err != nil {
			e.logger.Warn(fmt.Sprintf("cannot store report for %s: %v", path, err))
		}
	}

	e.logger.Debug(fmt.Sprintf("analyzed %s (%d lines)", path, len(lineReports)))
	return report, nil
}

// lookup returns the stored report for path when it is still valid.
// Store failures are logged and treated as a miss.
func (e *Engine) lookup(path, digest string, opts Options) *domain.FileReport {
	if opts.Cache == "" || opts.NoCache {
		return nil
	}

	stored, err := e.store.Get(opts.Cache, path)
	if err != nil {
		e.logger.Warn(fmt.Sprintf("ignoring stored report for %s: %v", path, err))
		return nil
	}
	if stored == nil || stored.Digest != digest || stored.Encoding != opts.Encoding {
		return nil
	}

	stored.Path = path
	stored.Status = domain.FileStatusCached
	return stored
}

func (e *Engine) initStatuses(files []string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	clear(e.fileStatus)
	for _, f := range files {
		e.fileStatus[f] = domain.FileStatusPending
	}
}

func (e *Engine) updateStatus(path string, status domain.FileStatus) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fileStatus[path] = status
}

// Status returns the status of a file in the current or last run.
func (e *Engine) Status(path string) domain.FileStatus {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.fileStatus[path]
}

// Statuses returns a copy of every file status in the current or last run.
func (e *Engine) Statuses() map[string]domain.FileStatus {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return maps.Clone(e.fileStatus)
}
