package eventbus

import "time"

// RunEvent reports progress of one allocation run on the bus.
type RunEvent struct {
	RunID    string
	Stage    Stage
	Strategy string // set for StagePartitioned
	Records  int
	Groups   int
	Time     time.Time
}

// Stage identifies the pipeline step a RunEvent reports.
type Stage string

const (
	StageIngested    Stage = "ingested"
	StagePartitioned Stage = "partitioned"
	StageExported    Stage = "exported"
	StagePushed      Stage = "pushed"
)
