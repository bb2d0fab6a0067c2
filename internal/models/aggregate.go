package models

// OverallStats is a team's top-line record over the analysis window.
type OverallStats struct {
	TotalMatches      int      `json:"total_matches"`
	Wins              int      `json:"wins"`
	Losses            int      `json:"losses"`
	WinRate           float64  `json:"win_rate"`
	RecentForm        []string `json:"recent_form"`
	RecentFormSummary string   `json:"recent_form_summary"`
}

// MapStats is a team's accumulated record on one map.
type MapStats struct {
	Played       int     `json:"played"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	WinRate      float64 `json:"win_rate"`
	RoundsWon    int     `json:"rounds_won"`
	RoundsLost   int     `json:"rounds_lost"`
	RoundDiff    int     `json:"round_differential"`
	AvgRoundDiff float64 `json:"avg_round_differential"`
}

// AgentStats is a team's pick record for one agent.
type AgentStats struct {
	TimesPicked int     `json:"times_picked"`
	PickRate    float64 `json:"pick_rate"`
}

// PlayerAggregate averages a player's per-match stats across the window.
type PlayerAggregate struct {
	MatchesPlayed    int     `json:"matches_played"`
	AvgKills         float64 `json:"avg_kills"`
	AvgDeaths        float64 `json:"avg_deaths"`
	AvgAssists       float64 `json:"avg_assists"`
	KDRatio          float64 `json:"kd_ratio"`
	AvgACS           float64 `json:"avg_acs"`
	AvgADR           float64 `json:"avg_adr"`
	TotalFirstKills  int     `json:"total_first_kills"`
	TotalFirstDeaths int     `json:"total_first_deaths"`
	FKFDDiff         int     `json:"fk_fd_diff"`
	MostPlayedAgent  string  `json:"most_played_agent"`
}

// TeamAggregate is the full derived statistics block for one team.
// It is recomputed fresh on every analysis request and never updated
// incrementally.
type TeamAggregate struct {
	Team    Team                       `json:"-"`
	Overall OverallStats               `json:"overall"`
	Maps    map[string]MapStats        `json:"maps"`
	Agents  map[string]AgentStats      `json:"agents"`
	Players map[string]PlayerAggregate `json:"players"`
}

// MapRanking is one entry of a best/worst maps list.
type MapRanking struct {
	Map          string  `json:"map"`
	WinRate      float64 `json:"win_rate"`
	Record       string  `json:"record"`
	AvgRoundDiff float64 `json:"avg_round_diff"`
}

// AgentRanking is one entry of a most-played agents list.
type AgentRanking struct {
	Agent       string  `json:"agent"`
	TimesPicked int     `json:"times_picked"`
	PickRate    float64 `json:"pick_rate"`
}

// StarPlayer is a scored standout-player entry.
type StarPlayer struct {
	Name            string  `json:"name"`
	Score           float64 `json:"score"`
	AvgACS          float64 `json:"avg_acs"`
	KDRatio         float64 `json:"kd_ratio"`
	AvgADR          float64 `json:"avg_adr"`
	MostPlayedAgent string  `json:"most_played_agent"`
	FKFDDiff        int     `json:"fk_fd_diff"`
}
