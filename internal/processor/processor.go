// Package processor converts batches of source files concurrently.
package processor

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/penwern/curate-museum-crosswalk/pkg/crosswalk"
	"github.com/penwern/curate-museum-crosswalk/pkg/logger"
	"github.com/penwern/curate-museum-crosswalk/pkg/metadata"
	"github.com/penwern/curate-museum-crosswalk/pkg/utils"
)

// maxErrLength bounds error messages written to the log.
const maxErrLength = 300

// FileResult is the outcome of converting one input file.
type FileResult struct {
	Path    string
	Format  string
	Results []crosswalk.Result
	// Err is set when the file as a whole could not be converted.
	Err error
}

// Summary counts the outcome of a batch.
type Summary struct {
	Files       int
	FailedFiles int
	Records     int
	Failed      int
}

// Processor converts files with the formats of a registry.
type Processor struct {
	registry *crosswalk.Registry
	workers  int
	baseDir  string
}

// New returns a processor running up to workers conversions at once.
// Paths are logged relative to baseDir when it is set.
func New(registry *crosswalk.Registry, workers int, baseDir string) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{registry: registry, workers: workers, baseDir: baseDir}
}

// Resolve returns the named format, or the detected one when name is empty.
func (p *Processor) Resolve(data []byte, name string) (crosswalk.Format, error) {
	if name != "" {
		return p.registry.Lookup(name)
	}
	return p.registry.Detect(data)
}

// Convert converts one in-memory document.
func (p *Processor) Convert(data []byte, name string) (crosswalk.Format, []crosswalk.Result, error) {
	f, err := p.Resolve(data, name)
	if err != nil {
		return nil, nil, err
	}
	results, err := f.Convert(data)
	if err != nil {
		return f, nil, err
	}
	return f, results, nil
}

// ProcessFiles converts paths and calls emit for each file in input order.
// Per-file and per-record failures are logged and counted, never returned.
// The returned error is the context error or the first error from emit.
func (p *Processor) ProcessFiles(ctx context.Context, paths []string, inputFormat string, emit func(FileResult) error) (Summary, error) {
	results := make([]FileResult, len(paths))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, p.workers)

	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			select {
			case semaphore <- struct{}{}:
			case <-ctx.Done():
				results[i] = FileResult{Path: path, Err: ctx.Err()}
				return
			}
			defer func() { <-semaphore }()
			results[i] = p.processFile(ctx, path, inputFormat)
		}(i, path)
	}
	wg.Wait()

	var summary Summary
	for _, res := range results {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		summary.Files++
		display := p.display(res.Path)
		if res.Err != nil {
			summary.FailedFiles++
			logger.Warn("Skipping %s [%s]: %s", display, metadata.ErrorKind(res.Err), utils.TruncateError(res.Err.Error(), maxErrLength))
			continue
		}
		for i, r := range res.Results {
			if r.Err != nil {
				summary.Failed++
				logger.Warn("Skipping record %d in %s [%s]: %s", i, display, metadata.ErrorKind(r.Err), utils.TruncateError(r.Err.Error(), maxErrLength))
				continue
			}
			summary.Records++
		}
		logger.Debug("Converted %s as %s: %d record(s)", display, res.Format, len(res.Results))
		if emit != nil {
			if err := emit(res); err != nil {
				return summary, err
			}
		}
	}
	return summary, nil
}

func (p *Processor) processFile(ctx context.Context, path, inputFormat string) FileResult {
	res := FileResult{Path: path}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}
	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("error reading file: %w", err)
		return res
	}
	f, results, err := p.Convert(data, inputFormat)
	if f != nil {
		res.Format = f.Name()
	}
	if err != nil {
		res.Err = err
		return res
	}
	res.Results = results
	return res
}

func (p *Processor) display(path string) string {
	if p.baseDir == "" {
		return path
	}
	return utils.RelPath(p.baseDir, path)
}
