package ai

import "context"

// InsightProvider turns a dispatch briefing (ranked candidates plus
// order context) into a short natural-language summary for the
// dashboard. Implementations may call external models; the matching
// engine itself never depends on this.
type InsightProvider interface {
	RecommendationSummary(ctx context.Context, briefing string) (string, error)
}
