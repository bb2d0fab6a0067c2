package logic

import (
	"context"

	"github.com/gridscout/scout-api/internal/models"
)

// MetricsAggregator converts one team's raw match records into derived
// per-team, per-map, per-agent, and per-player statistics.
type MetricsAggregator interface {
	Aggregate(team models.Team, matches []models.MatchRecord) *models.TeamAggregate
	BestMaps(agg *models.TeamAggregate, topN int) []models.MapRanking
	WorstMaps(agg *models.TeamAggregate, topN int) []models.MapRanking
	MostPlayedAgents(agg *models.TeamAggregate, topN int) []models.AgentRanking
	StarPlayers(agg *models.TeamAggregate, topN int) []models.StarPlayer
	HeadToHead(teamAID string, matches []models.MatchRecord) models.HeadToHead
}

// DependencyDetector finds maps and agents whose associated win rate
// deviates meaningfully from the team's overall win rate, and
// classifies recent-form momentum.
type DependencyDetector interface {
	MapDependencies(agg *models.TeamAggregate) []models.Dependency
	AgentDependencies(agg *models.TeamAggregate, matches []models.MatchRecord) []models.Dependency
	FormPattern(agg *models.TeamAggregate) models.FormPattern
}

// SignalExtractor turns a team's aggregate and dependencies into ranked
// strength and weakness signals.
type SignalExtractor interface {
	Strengths(agg *models.TeamAggregate, agentDeps []models.Dependency, form models.FormPattern) []models.Signal
	Weaknesses(agg *models.TeamAggregate, agentDeps []models.Dependency, form models.FormPattern) []models.Signal
}

// RecommendationInput carries both teams' derived views into the
// recommendation engine, the single cross-team join point.
type RecommendationInput struct {
	Ours              *models.TeamAggregate
	Opponent          *models.TeamAggregate
	OpponentAgentDeps []models.Dependency
	OpponentStars     []models.StarPlayer
}

// RecommendationEngine produces ranked, cross-referenced coaching
// actions from both teams' statistics.
type RecommendationEngine interface {
	Recommend(in RecommendationInput) []models.Recommendation
}

// ReportAssembler composes the full scouting report for one request.
type ReportAssembler interface {
	BuildReport(ctx context.Context, bundle *models.ScoutingBundle) (*models.Report, error)
}
