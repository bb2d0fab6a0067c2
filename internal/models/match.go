package models

import "time"

// MapOutcome is a single map result within a match. The winner's score
// is the higher of the two recorded scores (equal only on recorded
// overtime extensions).
type MapOutcome struct {
	MapName         string `json:"map_name"`
	TeamAScore      int    `json:"team_a_score"`
	TeamBScore      int    `json:"team_b_score"`
	TeamASideFirst  string `json:"team_a_side_first,omitempty"` // attack or defense
	WinnerTeamID    string `json:"winner_team_id"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
}

// AgentPick records one agent selection by a player on one map.
type AgentPick struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Agent      string `json:"agent"`
	MapName    string `json:"map_name"`
	MatchID    string `json:"match_id"`
}

// PlayerMatchStat holds per-player combat metrics for a single match.
// All counts are non-negative.
type PlayerMatchStat struct {
	PlayerID          string  `json:"player_id"`
	PlayerName        string  `json:"player_name"`
	Agent             string  `json:"agent"`
	Kills             int     `json:"kills"`
	Deaths            int     `json:"deaths"`
	Assists           int     `json:"assists"`
	ACS               float64 `json:"acs"`
	ADR               float64 `json:"adr"`
	KAST              float64 `json:"kast"`
	FirstKills        int     `json:"first_kills"`
	FirstDeaths       int     `json:"first_deaths"`
	HeadshotPct       float64 `json:"headshot_percentage"`
	ClutchesWon       int     `json:"clutches_won"`
	ClutchesAttempted int     `json:"clutches_attempted"`
}

// MatchRecord is an immutable historical match fact supplied by the
// data provider. It is never mutated by the analysis core.
type MatchRecord struct {
	ID             string            `json:"id"`
	TeamAID        string            `json:"team_a_id"`
	TeamBID        string            `json:"team_b_id"`
	TeamAName      string            `json:"team_a_name"`
	TeamBName      string            `json:"team_b_name"`
	WinnerTeamID   string            `json:"winner_team_id"`
	Date           time.Time         `json:"date"`
	TournamentName string            `json:"tournament_name,omitempty"`
	BestOf         int               `json:"best_of"`
	MapsPlayed     []MapOutcome      `json:"maps_played"`
	TeamAMapWins   int               `json:"team_a_map_wins"`
	TeamBMapWins   int               `json:"team_b_map_wins"`
	PlayerStats    []PlayerMatchStat `json:"player_stats"`
	AgentPicks     []AgentPick       `json:"agent_picks"`
}

// TeamHistory pairs a team identity with its match list restricted to
// the analysis time window.
type TeamHistory struct {
	Team    Team          `json:"team"`
	Matches []MatchRecord `json:"matches"`
}

// ScoutingBundle is the full data snapshot for one analysis request:
// both teams' histories plus an optional head-to-head match list.
type ScoutingBundle struct {
	TeamA          TeamHistory   `json:"team_a"`
	TeamB          TeamHistory   `json:"team_b"`
	HeadToHead     []MatchRecord `json:"head_to_head_matches,omitempty"`
	TimeWindowDays int           `json:"time_window_days"`
	FetchedAt      time.Time     `json:"fetch_timestamp"`
	DataSource     string        `json:"data_source,omitempty"`
}
