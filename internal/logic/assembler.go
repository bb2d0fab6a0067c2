package logic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gridscout/scout-api/internal/models"
)

// ErrTeamNotFound is returned when a request names a team identity that
// is missing from the supplied bundle. No partial analysis is attempted.
var ErrTeamNotFound = errors.New("team not found")

const defaultDataSource = "GRID Esports API"

var (
	reportsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scout_reports_generated_total",
		Help: "Total number of scouting reports assembled",
	})

	reportBuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scout_report_build_duration_seconds",
		Help:    "Duration of full report assembly",
		Buckets: prometheus.DefBuckets,
	})
)

// teamAnalysis is one team's independently computed pipeline output.
type teamAnalysis struct {
	agg       *models.TeamAggregate
	mapDeps   []models.Dependency
	agentDeps []models.Dependency
	form      models.FormPattern
}

type reportAssembler struct {
	aggregator MetricsAggregator
	detector   DependencyDetector
	signals    SignalExtractor
	engine     RecommendationEngine
	logger     *zap.SugaredLogger
}

// NewReportAssembler wires the four analysis services into the report
// pipeline.
func NewReportAssembler(logger *zap.Logger) ReportAssembler {
	return &reportAssembler{
		aggregator: NewMetricsAggregator(),
		detector:   NewDependencyDetector(),
		signals:    NewSignalExtractor(),
		engine:     NewRecommendationEngine(),
		logger:     logger.Sugar(),
	}
}

// BuildReport runs the full analysis over the supplied snapshot. The
// two teams' pipelines are independent and run concurrently; the
// recommendation engine is the single join point. Given identical input
// records the output is identical except for report id and timestamp.
func (r *reportAssembler) BuildReport(ctx context.Context, bundle *models.ScoutingBundle) (*models.Report, error) {
	if bundle == nil {
		return nil, fmt.Errorf("nil scouting bundle: %w", ErrTeamNotFound)
	}
	if bundle.TeamA.Team.ID == "" {
		return nil, fmt.Errorf("team A: %w", ErrTeamNotFound)
	}
	if bundle.TeamB.Team.ID == "" {
		return nil, fmt.Errorf("team B: %w", ErrTeamNotFound)
	}

	start := time.Now()
	var teamA, teamB *teamAnalysis

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		teamA = r.analyzeTeam(bundle.TeamA)
		return nil
	})
	g.Go(func() error {
		teamB = r.analyzeTeam(bundle.TeamB)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	generatedAt := time.Now().UTC()
	dataSource := bundle.DataSource
	if dataSource == "" {
		dataSource = defaultDataSource
	}

	report := &models.Report{
		ReportID: fmt.Sprintf("scout_%s_%s_%s",
			bundle.TeamA.Team.ShortName, bundle.TeamB.Team.ShortName, uuid.NewString()),
		GeneratedAt: generatedAt,
		DataSource:  dataSource,

		MatchOverview:         r.buildOverview(bundle, teamA, teamB, dataSource),
		OpponentSnapshot:      r.buildSnapshot(teamB),
		KeyStrengths:          truncateSignals(r.signals.Strengths(teamB.agg, teamB.agentDeps, teamB.form)),
		ExploitableWeaknesses: truncateSignals(r.signals.Weaknesses(teamB.agg, teamB.agentDeps, teamB.form)),
		CoachRecommendations:  r.buildRecommendations(teamA, teamB),

		TeamAStats: *teamA.agg,
		TeamBStats: *teamB.agg,
	}

	reportsGenerated.Inc()
	reportBuildDuration.Observe(time.Since(start).Seconds())
	r.logger.Infow("Report assembled",
		"report_id", report.ReportID,
		"opponent_map_dependencies", len(teamB.mapDeps),
		"opponent_agent_dependencies", len(teamB.agentDeps),
		"strengths", len(report.KeyStrengths),
		"weaknesses", len(report.ExploitableWeaknesses),
		"recommendations", len(report.CoachRecommendations),
	)

	return report, nil
}

func (r *reportAssembler) analyzeTeam(history models.TeamHistory) *teamAnalysis {
	agg := r.aggregator.Aggregate(history.Team, history.Matches)
	return &teamAnalysis{
		agg:       agg,
		mapDeps:   r.detector.MapDependencies(agg),
		agentDeps: r.detector.AgentDependencies(agg, history.Matches),
		form:      r.detector.FormPattern(agg),
	}
}

func (r *reportAssembler) buildOverview(bundle *models.ScoutingBundle, teamA, teamB *teamAnalysis, dataSource string) models.MatchOverview {
	return models.MatchOverview{
		TeamAName:              bundle.TeamA.Team.Name,
		TeamBName:              bundle.TeamB.Team.Name,
		TeamARegion:            bundle.TeamA.Team.Region,
		TeamBRegion:            bundle.TeamB.Team.Region,
		MatchesAnalyzedTeamA:   teamA.agg.Overall.TotalMatches,
		MatchesAnalyzedTeamB:   teamB.agg.Overall.TotalMatches,
		AnalysisTimeWindowDays: bundle.TimeWindowDays,
		OpponentWinRate:        teamB.agg.Overall.WinRate,
		OpponentRecentForm:     teamB.agg.Overall.RecentForm,
		OpponentFormSummary:    teamB.agg.Overall.RecentFormSummary,
		HeadToHeadRecord:       r.aggregator.HeadToHead(bundle.TeamA.Team.ID, bundle.HeadToHead),
		DataSource:             dataSource,
	}
}

func (r *reportAssembler) buildSnapshot(opponent *teamAnalysis) models.OpponentSnapshot {
	return models.OpponentSnapshot{
		BestMaps:         r.aggregator.BestMaps(opponent.agg, SnapshotTopMaps),
		WorstMaps:        r.aggregator.WorstMaps(opponent.agg, SnapshotTopMaps),
		MostPlayedAgents: r.aggregator.MostPlayedAgents(opponent.agg, SnapshotTopAgents),
		StarPlayers:      r.aggregator.StarPlayers(opponent.agg, SnapshotStarPlayers),
	}
}

func (r *reportAssembler) buildRecommendations(teamA, teamB *teamAnalysis) []models.Recommendation {
	recs := r.engine.Recommend(RecommendationInput{
		Ours:              teamA.agg,
		Opponent:          teamB.agg,
		OpponentAgentDeps: teamB.agentDeps,
		OpponentStars:     r.aggregator.StarPlayers(teamB.agg, 1),
	})
	if len(recs) > ReportTopRecommendations {
		recs = recs[:ReportTopRecommendations]
	}
	return recs
}

func truncateSignals(signals []models.Signal) []models.Signal {
	if len(signals) > ReportTopSignals {
		return signals[:ReportTopSignals]
	}
	return signals
}
