package service

import "time"

// LedgerMetrics records domain-level measurements.
type LedgerMetrics interface {
	AnalysisFinished(status string, elapsed time.Duration)
	AnalyzerCall(outcome string, elapsed time.Duration)
	GoalCacheLookup(hit bool)
}
