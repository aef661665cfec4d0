package app

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"datasight/domain/core"
	"datasight/domain/dataset"
	"datasight/internal"
	"datasight/internal/analysis"
	"datasight/ports"
)

// AnalysisResult bundles the dataset summary with its derived signals
type AnalysisResult struct {
	Info     *dataset.DatasetInfo     `json:"info"`
	Insights dataset.InsightAggregate `json:"insights"`
}

// AnalyzerService runs the full analysis pipeline over a file. The engine
// itself is synchronous; this service schedules its heavy passes
// (full-dataset quality scan, pairwise correlation sweep) under a weighted
// semaphore so several datasets can be analyzed at once without unbounded
// fan-out.
type AnalyzerService struct {
	reader ports.DatasetReader
	engine *analysis.Engine
	sem    *semaphore.Weighted
	log    *internal.Logger
}

// NewAnalyzerService creates an analyzer service
func NewAnalyzerService(reader ports.DatasetReader, engine *analysis.Engine, maxConcurrent int64, log *internal.Logger) *AnalyzerService {
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}
	if log == nil {
		log = internal.DefaultLogger
	}
	return &AnalyzerService{
		reader: reader,
		engine: engine,
		sem:    semaphore.NewWeighted(maxConcurrent),
		log:    log,
	}
}

// AnalyzeFile parses the file at path and runs every analysis pass
func (s *AnalyzerService) AnalyzeFile(ctx context.Context, path string) (*AnalysisResult, error) {
	source, err := s.reader.Read(path)
	if err != nil {
		return nil, err
	}
	return s.AnalyzeSource(ctx, source)
}

// AnalyzeSource runs every analysis pass over an already-parsed source
func (s *AnalyzerService) AnalyzeSource(ctx context.Context, source *ports.TabularSource) (*AnalysisResult, error) {
	started := time.Now()

	columns := s.engine.InferColumns(source.Records)

	info := &dataset.DatasetInfo{
		ID:          core.NewID(),
		FileName:    source.FileName,
		FileSize:    source.FileSize,
		RowCount:    len(source.Records),
		ColumnCount: len(columns),
		Columns:     columns,
		Records:     source.Records,
		AnalyzedAt:  time.Now().UTC(),
	}

	var (
		quality dataset.DataQuality
		agg     dataset.InsightAggregate
		wg      sync.WaitGroup
		runErr  error
		errOnce sync.Once
	)

	run := func(weight int64, fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.sem.Acquire(ctx, weight); err != nil {
				errOnce.Do(func() { runErr = err })
				return
			}
			defer s.sem.Release(weight)
			fn()
		}()
	}

	// The quality scan re-infers types over the full dataset; the
	// composer sweeps all correlation pairs and trend candidates. Both
	// are independent of each other.
	run(1, func() { quality = s.engine.ComputeDataQuality(source.Records) })
	run(1, func() { agg = s.engine.ComposeInsights(source.Records, info) })
	wg.Wait()

	if runErr != nil {
		return nil, runErr
	}

	info.Quality = quality
	info.Charts = analysis.RecommendCharts(columns, agg.Correlations)

	s.log.Info("analyzed %s: %d rows, %d columns, %d correlations, %d trends in %s",
		info.FileName, info.RowCount, info.ColumnCount,
		len(agg.Correlations), len(agg.TimeTrends), time.Since(started).Round(time.Millisecond))

	return &AnalysisResult{Info: info, Insights: agg}, nil
}
