// Package app wires the engine to its collaborators: ingestion, export,
// metrics and the optional repository push. All I/O happens here; the core
// packages stay pure.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/acadkit/cohort/config"
	"github.com/acadkit/cohort/core/alloc"
	coremetrics "github.com/acadkit/cohort/core/metrics"
	"github.com/acadkit/cohort/core/model"
	"github.com/acadkit/cohort/core/stats"
	"github.com/acadkit/cohort/infra/github"
	"github.com/acadkit/cohort/infra/ingest"
	"github.com/acadkit/cohort/infra/logger"
	"github.com/acadkit/cohort/infra/metrics"
	"github.com/acadkit/cohort/internal/eventbus"
	"github.com/acadkit/cohort/pkg/export"
)

// Service runs the partitioning pipeline: ingest a roster, allocate it
// under both strategies, summarize, export and optionally push.
type Service struct {
	cfg  *config.Config
	log  logger.Logger
	bus  *eventbus.Bus[eventbus.RunEvent]
	sink coremetrics.MetricsSink

	balanced  alloc.Allocator
	clustered alloc.Allocator
	pusher    *github.Client
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sink coremetrics.MetricsSink = coremetrics.NopSink{}
	if cfg.Metrics.PrometheusEnabled {
		prom, err := metrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sink = prom
	}

	svc := &Service{
		cfg:       cfg,
		log:       logg,
		bus:       eventbus.New[eventbus.RunEvent](),
		sink:      sink,
		balanced:  alloc.RoundRobin{Priority: cfg.Engine.Priority},
		clustered: alloc.BlockCluster{Priority: cfg.Engine.Priority},
	}
	if cfg.GitHub.Enabled {
		svc.pusher = github.New(github.Config{
			Token:  cfg.GitHub.Token,
			Owner:  cfg.GitHub.Owner,
			Repo:   cfg.GitHub.Repo,
			Branch: cfg.GitHub.Branch,
		}, logger.New("github"))
	}
	return svc, nil
}

// Events exposes the run event stream for observers.
func (s *Service) Events() <-chan eventbus.RunEvent { return s.bus.Subscribe() }

// Run executes one full pipeline pass over the input file. The engine
// computation is never interleaved with I/O: ingestion completes before
// allocation starts, export begins only after both results exist.
func (s *Service) Run(ctx context.Context, input string) (*export.Report, error) {
	runID := uuid.NewString()

	roster, err := s.ingest(input)
	if err != nil {
		return nil, err
	}
	s.bus.Publish(eventbus.RunEvent{
		RunID: runID, Stage: eventbus.StageIngested,
		Records: len(roster), Time: time.Now(),
	})
	s.log.Infof("ingested %d records (%d categories) from %s", len(roster), len(roster.Categories()), input)

	rep := &export.Report{Roster: roster}
	rep.Balanced, err = s.allocate(runID, s.balanced, roster)
	if err != nil {
		return nil, err
	}
	rep.Clustered, err = s.allocate(runID, s.clustered, roster)
	if err != nil {
		return nil, err
	}
	rep.BalancedStats = stats.Summarize(rep.Balanced)
	rep.ClusteredStats = stats.Summarize(rep.Clustered)

	bal := rep.BalancedStats.Balance()
	s.log.Debugw("group size distribution", map[string]any{
		"run_id": runID, "mean": bal.Mean, "stddev": bal.StdDev, "min": bal.Min, "max": bal.Max,
	})

	if err := s.export(ctx, runID, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *Service) ingest(input string) (model.Roster, error) {
	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(input)) {
	case ".csv":
		return ingest.ReadCSV(f)
	case ".xlsx":
		return ingest.ReadXLSX(f)
	default:
		return nil, fmt.Errorf("unsupported roster format: %s", filepath.Ext(input))
	}
}

func (s *Service) allocate(runID string, a alloc.Allocator, roster model.Roster) (model.Partition, error) {
	start := time.Now()
	p, err := a.Allocate(roster, s.cfg.Engine.Groups)
	if err != nil {
		return nil, fmt.Errorf("%s allocation: %w", a.Name(), err)
	}
	res := coremetrics.AllocationResult{
		RunID:      runID,
		Strategy:   a.Name(),
		Records:    len(roster),
		Groups:     len(p),
		Categories: len(roster.Categories()),
		Duration:   time.Since(start),
	}
	if err := s.sink.RecordAllocation(res); err != nil {
		s.log.Warnf("metrics sink: %v", err)
	}
	s.bus.Publish(eventbus.RunEvent{
		RunID: runID, Stage: eventbus.StagePartitioned, Strategy: a.Name(),
		Records: len(roster), Groups: len(p), Time: time.Now(),
	})
	return p, nil
}

func (s *Service) export(ctx context.Context, runID string, rep *export.Report) error {
	dir := s.cfg.Export.Dir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export dir: %w", err)
	}

	files := 0
	if s.cfg.Export.Has("csv") {
		artifacts, err := csvArtifacts(rep)
		if err != nil {
			return err
		}
		for _, a := range artifacts {
			path := filepath.Join(dir, a.path)
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(path, a.data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			files++
		}
		s.recordExport(runID, "csv", len(artifacts))
	}
	if s.cfg.Export.Has("xlsx") {
		path := filepath.Join(dir, "report.xlsx")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		err = export.WriteWorkbook(f, *rep)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
		files++
		s.recordExport(runID, "xlsx", 1)
	}
	if s.cfg.Export.Has("zip") {
		path := filepath.Join(dir, "cohort.zip")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		_, err = export.WriteBundle(f, *rep)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("write bundle: %w", err)
		}
		files++
		s.recordExport(runID, "zip", 1)
	}
	s.bus.Publish(eventbus.RunEvent{
		RunID: runID, Stage: eventbus.StageExported, Records: files, Time: time.Now(),
	})
	s.log.Infof("exported %d files to %s", files, dir)

	if s.pusher == nil {
		return nil
	}
	return s.push(ctx, runID, rep)
}

func (s *Service) push(ctx context.Context, runID string, rep *export.Report) error {
	artifacts, err := csvArtifacts(rep)
	if err != nil {
		return err
	}
	for _, a := range artifacts {
		path := a.path
		if s.cfg.GitHub.BasePath != "" {
			path = s.cfg.GitHub.BasePath + "/" + a.path
		}
		if err := s.pusher.PutFile(ctx, path, a.data); err != nil {
			return fmt.Errorf("push: %w", err)
		}
	}
	s.recordExport(runID, "github", len(artifacts))
	s.bus.Publish(eventbus.RunEvent{
		RunID: runID, Stage: eventbus.StagePushed, Records: len(artifacts), Time: time.Now(),
	})
	s.log.Infof("pushed %d files to %s/%s", len(artifacts), s.cfg.GitHub.Owner, s.cfg.GitHub.Repo)
	return nil
}

func (s *Service) recordExport(runID, format string, files int) {
	rec, ok := s.sink.(coremetrics.ExportRecorder)
	if !ok {
		return
	}
	ev := coremetrics.ExportEvent{RunID: runID, Format: format, Files: files, Time: time.Now()}
	if err := rec.RecordExport(ev); err != nil {
		s.log.Warnf("metrics sink: %v", err)
	}
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	return nil
}
