package models

import "time"

// DependencyKind classifies a detected deviation. It is a closed set:
// only the two values below are ever produced.
type DependencyKind string

const (
	DependencyStrength DependencyKind = "strength"
	DependencyWeakness DependencyKind = "weakness"
)

// DependencyScope says what kind of subject a dependency refers to.
type DependencyScope string

const (
	ScopeMap   DependencyScope = "map"
	ScopeAgent DependencyScope = "agent"
)

// Dependency is a statistically notable deviation between a subset
// condition (map or agent) and the team's overall win rate. One is only
// emitted when the sample-size and deviation thresholds are met.
type Dependency struct {
	Scope           DependencyScope `json:"scope"`
	Subject         string          `json:"subject"`
	WinRate         float64         `json:"win_rate"`
	BaselineWinRate float64         `json:"overall_win_rate"`
	Difference      float64         `json:"difference"`
	GamesPlayed     int             `json:"games_played"`
	Kind            DependencyKind  `json:"type"`
	Description     string          `json:"description"`
}

// Momentum classification derived from recent form.
type Momentum string

const (
	MomentumPositive Momentum = "positive"
	MomentumNegative Momentum = "negative"
	MomentumNeutral  Momentum = "neutral"
)

// Trend values for recent-form analysis.
const (
	TrendImproving        = "improving"
	TrendDeclining        = "declining"
	TrendStable           = "stable"
	TrendInsufficientData = "insufficient_data"
)

// FormPattern is the momentum/streak analysis of a team's recent form.
type FormPattern struct {
	Trend         string   `json:"trend"`
	Momentum      Momentum `json:"momentum"`
	CurrentStreak int      `json:"current_streak,omitempty"`
	StreakType    string   `json:"streak_type,omitempty"` // winning or losing
	RecentRecord  string   `json:"recent_record,omitempty"`
	Description   string   `json:"description"`
}

// Signal is a ranked strength or weakness entry. Strengths carry a
// severity label, weaknesses an exploitability label; the metric field
// always contains the literal numbers that justified the entry.
type Signal struct {
	Category       string `json:"category"`
	Description    string `json:"description"`
	Metric         string `json:"metric"`
	Severity       string `json:"severity,omitempty"`
	Exploitability string `json:"exploitability,omitempty"`
	Recommendation string `json:"recommendation,omitempty"`
}

// RecommendationType tags a coaching action.
type RecommendationType string

const (
	RecommendMapPick       RecommendationType = "map_pick"
	RecommendMapBan        RecommendationType = "map_ban"
	RecommendAgentStrategy RecommendationType = "agent_strategy"
	RecommendTactical      RecommendationType = "tactical"
)

// Recommendation is a coach-ready action. GridData carries the literal
// supporting record counts and scores; no recommendation omits them.
type Recommendation struct {
	Action         string             `json:"action"`
	Type           RecommendationType `json:"type"`
	Reasoning      string             `json:"reasoning"`
	ExpectedImpact string             `json:"expected_impact"`
	Confidence     string             `json:"confidence"`
	GridData       string             `json:"grid_data"`
}

// HeadToHeadMapRecord is the per-map win tally between the two teams.
type HeadToHeadMapRecord struct {
	TeamAWins int `json:"team_a_wins"`
	TeamBWins int `json:"team_b_wins"`
}

// HeadToHead summarizes prior meetings of the two teams. All fields are
// zeroed/empty when no prior matches exist.
type HeadToHead struct {
	MatchesPlayed int                            `json:"matches_played"`
	TeamAWins     int                            `json:"team_a_wins"`
	TeamBWins     int                            `json:"team_b_wins"`
	TeamAWinRate  float64                        `json:"team_a_win_rate"`
	MapRecords    map[string]HeadToHeadMapRecord `json:"map_records"`
}

// MatchOverview is the report's context section.
type MatchOverview struct {
	TeamAName              string     `json:"team_a_name"`
	TeamBName              string     `json:"team_b_name"`
	TeamARegion            string     `json:"team_a_region,omitempty"`
	TeamBRegion            string     `json:"team_b_region,omitempty"`
	MatchesAnalyzedTeamA   int        `json:"matches_analyzed_team_a"`
	MatchesAnalyzedTeamB   int        `json:"matches_analyzed_team_b"`
	AnalysisTimeWindowDays int        `json:"analysis_time_window_days"`
	OpponentWinRate        float64    `json:"opponent_overall_win_rate"`
	OpponentRecentForm     []string   `json:"opponent_recent_form"`
	OpponentFormSummary    string     `json:"opponent_recent_form_summary"`
	HeadToHeadRecord       HeadToHead `json:"head_to_head_record"`
	DataSource             string     `json:"data_source"`
}

// OpponentSnapshot is the report's quick-look section on team B.
type OpponentSnapshot struct {
	BestMaps         []MapRanking   `json:"best_maps"`
	WorstMaps        []MapRanking   `json:"worst_maps"`
	MostPlayedAgents []AgentRanking `json:"most_played_agents"`
	StarPlayers      []StarPlayer   `json:"star_players"`
}

// Report is the complete scouting report. It is created once per
// analysis request and never mutated afterwards.
type Report struct {
	ReportID    string    `json:"report_id"`
	GeneratedAt time.Time `json:"generated_at"`
	DataSource  string    `json:"data_source"`

	MatchOverview         MatchOverview    `json:"match_overview"`
	OpponentSnapshot      OpponentSnapshot `json:"opponent_snapshot"`
	KeyStrengths          []Signal         `json:"key_strengths"`
	ExploitableWeaknesses []Signal         `json:"exploitable_weaknesses"`
	CoachRecommendations  []Recommendation `json:"coach_recommendations"`

	TeamAStats TeamAggregate `json:"team_a_stats"`
	TeamBStats TeamAggregate `json:"team_b_stats"`
}
