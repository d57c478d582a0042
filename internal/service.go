package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/penwern/curate-museum-crosswalk/internal/export"
	"github.com/penwern/curate-museum-crosswalk/internal/processor"
	"github.com/penwern/curate-museum-crosswalk/pkg/config"
	"github.com/penwern/curate-museum-crosswalk/pkg/crosswalk"
	"github.com/penwern/curate-museum-crosswalk/pkg/edm"
	"github.com/penwern/curate-museum-crosswalk/pkg/linkedart"
	"github.com/penwern/curate-museum-crosswalk/pkg/logger"
	"github.com/penwern/curate-museum-crosswalk/pkg/utils"
	"github.com/penwern/curate-museum-crosswalk/pkg/version"

	// Registers the LIDO format.
	_ "github.com/penwern/curate-museum-crosswalk/pkg/lido"
)

// ServiceArgs describes one batch conversion.
type ServiceArgs struct {
	Paths []string
	// Output is a file path, or "-" for stdout.
	Output       string
	OutputFormat string
	// InputFormat forces a source format instead of detecting it.
	InputFormat string
	Workers     int
}

type Service struct {
	cfg      *config.Config
	registry *crosswalk.Registry
}

// NewService builds a registry of its own, seeded from the default one, and
// replaces the configurable formats with ones built from cfg.
func NewService(ctx context.Context, cfg *config.Config) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("nil configuration")
	}
	registry := crosswalk.NewRegistry()
	defaults := crosswalk.Default()
	for _, name := range defaults.Names() {
		if f, err := defaults.Lookup(name); err == nil {
			registry.Register(f)
		}
	}
	registry.Register(linkedart.NewFormat(cfg.LinkedArtProfile()))
	registry.Register(&edm.Format{SourceURLTemplate: cfg.EDM.SourceURLTemplate})
	logger.Debug("Registered formats: %v", registry.Names())
	return &Service{cfg: cfg, registry: registry}, nil
}

func (s *Service) Close() {
	logger.Sync()
}

// Formats returns the registered source formats.
func (s *Service) Formats() []crosswalk.Format {
	var formats []crosswalk.Format
	for _, name := range s.registry.Names() {
		if f, err := s.registry.Lookup(name); err == nil {
			formats = append(formats, f)
		}
	}
	return formats
}

// ConvertBytes converts one document. An empty format name detects it.
func (s *Service) ConvertBytes(data []byte, format string) ([]crosswalk.Result, error) {
	_, results, err := processor.New(s.registry, 1, "").Convert(data, format)
	return results, err
}

// RunArgs converts every input and writes the records to the output.
func (s *Service) RunArgs(ctx context.Context, args *ServiceArgs) error {
	runID := uuid.New().String()
	startTime := time.Now()

	outputFormat := args.OutputFormat
	if outputFormat == "" {
		outputFormat = s.cfg.Output.Format
	}
	workers := args.Workers
	if workers <= 0 {
		workers = s.cfg.Workers
	}
	if args.InputFormat != "" {
		if _, err := s.registry.Lookup(args.InputFormat); err != nil {
			return err
		}
	}

	paths, err := utils.ExpandPaths(args.Paths, s.registry.FileExtensions())
	if err != nil {
		return fmt.Errorf("error resolving input paths: %w", err)
	}
	if len(paths) == 0 {
		return errors.New("no input files found")
	}
	logger.Info("Run %s: converting %d file(s) to %s", runID, len(paths), outputFormat)

	out, closeOut, err := openOutput(args.Output)
	if err != nil {
		return err
	}
	writer, err := export.NewWriter(outputFormat, out, export.Metadata{CreatedBy: version.Identifier(), RunID: runID})
	if err != nil {
		closeOut()
		return err
	}

	baseDir, _ := os.Getwd()
	proc := processor.New(s.registry, workers, baseDir)
	summary, runErr := proc.ProcessFiles(ctx, paths, args.InputFormat, func(res processor.FileResult) error {
		for _, r := range res.Results {
			if r.Err != nil {
				continue
			}
			if err := writer.Write(r.Artwork); err != nil {
				return fmt.Errorf("error writing record %s: %w", r.Artwork.ID, err)
			}
		}
		return nil
	})

	if err := writer.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("error closing %s writer: %w", outputFormat, err)
	}
	if err := closeOut(); err != nil && runErr == nil {
		runErr = fmt.Errorf("error closing output: %w", err)
	}
	if runErr != nil {
		return runErr
	}

	logger.Info("Run %s: %d record(s) from %d file(s), %d record(s) and %d file(s) skipped in %.2fs",
		runID, summary.Records, summary.Files, summary.Failed, summary.FailedFiles, time.Since(startTime).Seconds())
	if summary.Records == 0 && (summary.Failed > 0 || summary.FailedFiles > 0) {
		return errors.New("no records converted")
	}
	return nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("error creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating output file: %w", err)
	}
	return f, f.Close, nil
}
