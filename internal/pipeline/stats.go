package pipeline

import (
	"sync/atomic"
	"time"
)

// Stats accumulates run counters across the pipeline steps. Safe for
// concurrent use; the schedulers expose a snapshot through the status
// endpoint.
type Stats struct {
	insightsFetched   atomic.Int64
	insightsIngested  atomic.Int64
	metadataUpserted  atomic.Int64
	creativesUpserted atomic.Int64
	stagingRows       atomic.Int64
	startedAt         atomic.Int64
	finishedAt        atomic.Int64
}

func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) Start(now time.Time) {
	s.startedAt.Store(now.UnixMilli())
	s.finishedAt.Store(0)
	s.insightsFetched.Store(0)
	s.insightsIngested.Store(0)
	s.metadataUpserted.Store(0)
	s.creativesUpserted.Store(0)
	s.stagingRows.Store(0)
}

func (s *Stats) Finish(now time.Time) {
	s.finishedAt.Store(now.UnixMilli())
}

func (s *Stats) AddInsightsFetched(n int64)   { s.insightsFetched.Add(n) }
func (s *Stats) AddInsightsIngested(n int64)  { s.insightsIngested.Add(n) }
func (s *Stats) AddMetadataUpserted(n int64)  { s.metadataUpserted.Add(n) }
func (s *Stats) AddCreativesUpserted(n int64) { s.creativesUpserted.Add(n) }
func (s *Stats) SetStagingRows(n int64)       { s.stagingRows.Store(n) }

// Snapshot renders the counters for logs and the status endpoint.
func (s *Stats) Snapshot() map[string]interface{} {
	snapshot := map[string]interface{}{
		"insights_fetched":   s.insightsFetched.Load(),
		"insights_ingested":  s.insightsIngested.Load(),
		"metadata_upserted":  s.metadataUpserted.Load(),
		"creatives_upserted": s.creativesUpserted.Load(),
		"staging_rows":       s.stagingRows.Load(),
	}

	if startedAt := s.startedAt.Load(); startedAt > 0 {
		snapshot["started_at"] = time.UnixMilli(startedAt).UTC().Format(time.RFC3339)
		if finishedAt := s.finishedAt.Load(); finishedAt > 0 {
			snapshot["finished_at"] = time.UnixMilli(finishedAt).UTC().Format(time.RFC3339)
			snapshot["duration_ms"] = finishedAt - startedAt
		}
	}

	return snapshot
}
