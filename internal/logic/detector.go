package logic

import (
	"fmt"
	"math"
	"sort"

	"github.com/gridscout/scout-api/internal/models"
)

type dependencyDetector struct{}

// NewDependencyDetector returns the stateless deviation detector.
func NewDependencyDetector() DependencyDetector {
	return &dependencyDetector{}
}

// MapDependencies returns maps whose win rate deviates from the team's
// overall win rate by more than the significance threshold, largest
// absolute deviation first. Every entry has at least the minimum map
// sample and strictly exceeds the threshold.
func (d *dependencyDetector) MapDependencies(agg *models.TeamAggregate) []models.Dependency {
	overall := agg.Overall.WinRate
	var deps []models.Dependency

	for name, ms := range agg.Maps {
		if ms.Played < MapDependencyMinGames {
			continue
		}
		diff := round1(ms.WinRate - overall)
		if math.Abs(diff) <= MapDependencyThreshold {
			continue
		}
		kind := models.DependencyWeakness
		word := "Weak"
		if diff > 0 {
			kind = models.DependencyStrength
			word = "Strong"
		}
		deps = append(deps, models.Dependency{
			Scope:           models.ScopeMap,
			Subject:         name,
			WinRate:         ms.WinRate,
			BaselineWinRate: overall,
			Difference:      diff,
			GamesPlayed:     ms.Played,
			Kind:            kind,
			Description:     fmt.Sprintf("%s on %s (%.1f%% vs %.1f%% overall)", word, name, ms.WinRate, overall),
		})
	}

	sortDependencies(deps)
	return deps
}

// AgentDependencies partitions the team's matches into with/without for
// each agent the team picked on at least one map, and reports agents
// whose with-agent win rate deviates from overall by more than the
// threshold. Requires the minimum with-agent sample.
func (d *dependencyDetector) AgentDependencies(agg *models.TeamAggregate, matches []models.MatchRecord) []models.Dependency {
	roster := agg.Team.RosterIDs()
	type tally struct{ wins, losses int }
	results := make(map[string]*tally)

	for _, m := range matches {
		agents := make(map[string]bool)
		for _, pick := range m.AgentPicks {
			if roster[pick.PlayerID] {
				agents[pick.Agent] = true
			}
		}
		won := m.WinnerTeamID == agg.Team.ID
		for agent := range agents {
			t := results[agent]
			if t == nil {
				t = &tally{}
				results[agent] = t
			}
			if won {
				t.wins++
			} else {
				t.losses++
			}
		}
	}

	overall := agg.Overall.WinRate
	var deps []models.Dependency
	for agent, t := range results {
		total := t.wins + t.losses
		if total < AgentDependencyMinGames {
			continue
		}
		agentRate := round1(float64(t.wins) / float64(total) * 100)
		diff := round1(agentRate - overall)
		if math.Abs(diff) <= AgentDependencyThreshold {
			continue
		}
		kind := models.DependencyWeakness
		word := "decreases"
		if diff > 0 {
			kind = models.DependencyStrength
			word = "increases"
		}
		deps = append(deps, models.Dependency{
			Scope:           models.ScopeAgent,
			Subject:         agent,
			WinRate:         agentRate,
			BaselineWinRate: overall,
			Difference:      diff,
			GamesPlayed:     total,
			Kind:            kind,
			Description:     fmt.Sprintf("Win rate %s by %.1f%% with %s", word, math.Abs(diff), agent),
		})
	}

	sortDependencies(deps)
	return deps
}

// sortDependencies orders by absolute difference descending; subject
// name breaks ties so output order is reproducible.
func sortDependencies(deps []models.Dependency) {
	sort.Slice(deps, func(i, j int) bool {
		di, dj := math.Abs(deps[i].Difference), math.Abs(deps[j].Difference)
		if di != dj {
			return di > dj
		}
		return deps[i].Subject < deps[j].Subject
	})
}

// FormPattern classifies momentum from the recent-form sequence: the
// most recent three results against the remainder of the window. With
// no older results the older window is assumed even, so momentum rests
// on the recent window alone.
func (d *dependencyDetector) FormPattern(agg *models.TeamAggregate) models.FormPattern {
	form := agg.Overall.RecentForm

	if len(form) < FormRecentWindow {
		return models.FormPattern{
			Trend:       models.TrendInsufficientData,
			Momentum:    models.MomentumNeutral,
			Description: "Not enough recent matches to determine form",
		}
	}

	recentWins := countWins(form[:FormRecentWindow])
	recentRate := float64(recentWins) / float64(FormRecentWindow)

	olderRate := FormNeutralOldRate
	if len(form) > FormRecentWindow {
		older := form[FormRecentWindow:]
		olderRate = float64(countWins(older)) / float64(len(older))
	}

	var trend string
	var momentum models.Momentum
	switch {
	case recentRate > olderRate+FormMomentumBand:
		trend, momentum = models.TrendImproving, models.MomentumPositive
	case recentRate < olderRate-FormMomentumBand:
		trend, momentum = models.TrendDeclining, models.MomentumNegative
	default:
		trend, momentum = models.TrendStable, models.MomentumNeutral
	}

	streak := 1
	for i := 1; i < len(form); i++ {
		if form[i] != form[i-1] {
			break
		}
		streak++
	}
	streakType := "losing"
	streakWord := "loss"
	if form[0] == "W" {
		streakType = "winning"
		streakWord = "win"
	}

	return models.FormPattern{
		Trend:         trend,
		Momentum:      momentum,
		CurrentStreak: streak,
		StreakType:    streakType,
		RecentRecord:  fmt.Sprintf("%d-%d", recentWins, FormRecentWindow-recentWins),
		Description:   fmt.Sprintf("Team is on a %d-%s streak, form is %s", streak, streakWord, trend),
	}
}

func countWins(form []string) int {
	wins := 0
	for _, r := range form {
		if r == "W" {
			wins++
		}
	}
	return wins
}
