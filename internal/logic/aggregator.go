package logic

import (
	"fmt"
	"sort"

	"github.com/gridscout/scout-api/internal/models"
)

type metricsAggregator struct{}

// NewMetricsAggregator returns the stateless aggregation service.
func NewMetricsAggregator() MetricsAggregator {
	return &metricsAggregator{}
}

// Aggregate computes the full TeamAggregate for one team from its match
// list. The list is expected to already be restricted to the analysis
// time window; zero matches degrade to zero-valued fields, never an
// error.
func (a *metricsAggregator) Aggregate(team models.Team, matches []models.MatchRecord) *models.TeamAggregate {
	agg := &models.TeamAggregate{
		Team:    team,
		Maps:    make(map[string]models.MapStats),
		Agents:  make(map[string]models.AgentStats),
		Players: make(map[string]models.PlayerAggregate),
	}

	wins := 0
	for _, m := range matches {
		if m.WinnerTeamID == team.ID {
			wins++
		}
	}
	winRate := 0.0
	if len(matches) > 0 {
		winRate = float64(wins) / float64(len(matches)) * 100
	}

	form := recentForm(team.ID, matches)
	agg.Overall = models.OverallStats{
		TotalMatches:      len(matches),
		Wins:              wins,
		Losses:            len(matches) - wins,
		WinRate:           round1(winRate),
		RecentForm:        form,
		RecentFormSummary: summarizeForm(form),
	}

	roster := team.RosterIDs()
	a.accumulateMaps(agg, team, matches)
	a.accumulateAgents(agg, roster, matches)
	a.accumulatePlayers(agg, roster, matches)

	return agg
}

func (a *metricsAggregator) accumulateMaps(agg *models.TeamAggregate, team models.Team, matches []models.MatchRecord) {
	type mapAccum struct {
		played, wins, roundsWon, roundsLost int
	}
	accum := make(map[string]*mapAccum)

	for _, m := range matches {
		isTeamA := m.TeamAID == team.ID
		for _, outcome := range m.MapsPlayed {
			ms := accum[outcome.MapName]
			if ms == nil {
				ms = &mapAccum{}
				accum[outcome.MapName] = ms
			}
			ms.played++
			if outcome.WinnerTeamID == team.ID {
				ms.wins++
			}
			if isTeamA {
				ms.roundsWon += outcome.TeamAScore
				ms.roundsLost += outcome.TeamBScore
			} else {
				ms.roundsWon += outcome.TeamBScore
				ms.roundsLost += outcome.TeamAScore
			}
		}
	}

	for name, ms := range accum {
		winRate := 0.0
		avgDiff := 0.0
		if ms.played > 0 {
			winRate = float64(ms.wins) / float64(ms.played) * 100
			avgDiff = float64(ms.roundsWon-ms.roundsLost) / float64(ms.played)
		}
		agg.Maps[name] = models.MapStats{
			Played:       ms.played,
			Wins:         ms.wins,
			Losses:       ms.played - ms.wins,
			WinRate:      round1(winRate),
			RoundsWon:    ms.roundsWon,
			RoundsLost:   ms.roundsLost,
			RoundDiff:    ms.roundsWon - ms.roundsLost,
			AvgRoundDiff: round1(avgDiff),
		}
	}
}

// accumulateAgents counts each (player, map) appearance of an agent
// where the player belongs to the roster. Pick rate is the agent's
// share of all counted picks.
func (a *metricsAggregator) accumulateAgents(agg *models.TeamAggregate, roster map[string]bool, matches []models.MatchRecord) {
	counts := make(map[string]int)
	total := 0
	for _, m := range matches {
		for _, pick := range m.AgentPicks {
			if roster[pick.PlayerID] {
				counts[pick.Agent]++
				total++
			}
		}
	}
	for agent, count := range counts {
		rate := 0.0
		if total > 0 {
			rate = float64(count) / float64(total) * 100
		}
		agg.Agents[agent] = models.AgentStats{
			TimesPicked: count,
			PickRate:    round1(rate),
		}
	}
}

func (a *metricsAggregator) accumulatePlayers(agg *models.TeamAggregate, roster map[string]bool, matches []models.MatchRecord) {
	type playerAccum struct {
		matches                 int
		kills, deaths, assists  int
		acs, adr                float64
		firstKills, firstDeaths int
		agentCounts             map[string]int
		agentOrder              []string // first-seen order, breaks mode ties
	}
	accum := make(map[string]*playerAccum)

	for _, m := range matches {
		for _, st := range m.PlayerStats {
			if !roster[st.PlayerID] {
				continue
			}
			ps := accum[st.PlayerName]
			if ps == nil {
				ps = &playerAccum{agentCounts: make(map[string]int)}
				accum[st.PlayerName] = ps
			}
			ps.matches++
			ps.kills += st.Kills
			ps.deaths += st.Deaths
			ps.assists += st.Assists
			ps.acs += st.ACS
			ps.adr += st.ADR
			ps.firstKills += st.FirstKills
			ps.firstDeaths += st.FirstDeaths
			if _, seen := ps.agentCounts[st.Agent]; !seen {
				ps.agentOrder = append(ps.agentOrder, st.Agent)
			}
			ps.agentCounts[st.Agent]++
		}
	}

	for name, ps := range accum {
		if ps.matches == 0 {
			continue
		}
		n := float64(ps.matches)
		deaths := ps.deaths
		if deaths == 0 {
			deaths = 1
		}
		agg.Players[name] = models.PlayerAggregate{
			MatchesPlayed:    ps.matches,
			AvgKills:         round1(float64(ps.kills) / n),
			AvgDeaths:        round1(float64(ps.deaths) / n),
			AvgAssists:       round1(float64(ps.assists) / n),
			KDRatio:          round2(float64(ps.kills) / float64(deaths)),
			AvgACS:           round1(ps.acs / n),
			AvgADR:           round1(ps.adr / n),
			TotalFirstKills:  ps.firstKills,
			TotalFirstDeaths: ps.firstDeaths,
			FKFDDiff:         ps.firstKills - ps.firstDeaths,
			MostPlayedAgent:  modeAgent(ps.agentCounts, ps.agentOrder),
		}
	}
}

// modeAgent picks the most played agent; ties go to the agent seen
// first.
func modeAgent(counts map[string]int, order []string) string {
	best := ""
	bestCount := 0
	for _, agent := range order {
		if counts[agent] > bestCount {
			best = agent
			bestCount = counts[agent]
		}
	}
	if best == "" {
		return "Unknown"
	}
	return best
}

// recentForm returns W/L outcomes of the most recent matches by date,
// most recent first. Date ties are broken by match ID so the sequence
// is reproducible.
func recentForm(teamID string, matches []models.MatchRecord) []string {
	sorted := make([]models.MatchRecord, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].Date.After(sorted[j].Date)
	})
	if len(sorted) > RecentFormLength {
		sorted = sorted[:RecentFormLength]
	}
	form := make([]string, 0, len(sorted))
	for _, m := range sorted {
		if m.WinnerTeamID == teamID {
			form = append(form, "W")
		} else {
			form = append(form, "L")
		}
	}
	return form
}

func summarizeForm(form []string) string {
	if len(form) == 0 {
		return "No recent matches"
	}
	wins := 0
	for _, r := range form {
		if r == "W" {
			wins++
		}
	}
	total := len(form)
	switch {
	case wins == total:
		return fmt.Sprintf("Perfect form (%d/%d wins)", wins, total)
	case float64(wins) >= float64(total)*0.8:
		return fmt.Sprintf("Excellent form (%d/%d wins)", wins, total)
	case float64(wins) >= float64(total)*0.6:
		return fmt.Sprintf("Good form (%d/%d wins)", wins, total)
	case float64(wins) >= float64(total)*0.4:
		return fmt.Sprintf("Mixed form (%d/%d wins)", wins, total)
	default:
		return fmt.Sprintf("Poor form (%d/%d wins)", wins, total)
	}
}

// BestMaps ranks maps with at least two games by win rate descending,
// average round differential then map name as tie-breaks.
func (a *metricsAggregator) BestMaps(agg *models.TeamAggregate, topN int) []models.MapRanking {
	return bestMaps(agg, topN)
}

// WorstMaps is the inverse ordering of BestMaps.
func (a *metricsAggregator) WorstMaps(agg *models.TeamAggregate, topN int) []models.MapRanking {
	return worstMaps(agg, topN)
}

func bestMaps(agg *models.TeamAggregate, topN int) []models.MapRanking {
	ranked := qualifiedMapRankings(agg)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].WinRate != ranked[j].WinRate {
			return ranked[i].WinRate > ranked[j].WinRate
		}
		if ranked[i].AvgRoundDiff != ranked[j].AvgRoundDiff {
			return ranked[i].AvgRoundDiff > ranked[j].AvgRoundDiff
		}
		return ranked[i].Map < ranked[j].Map
	})
	return capRankings(ranked, topN)
}

func worstMaps(agg *models.TeamAggregate, topN int) []models.MapRanking {
	ranked := qualifiedMapRankings(agg)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].WinRate != ranked[j].WinRate {
			return ranked[i].WinRate < ranked[j].WinRate
		}
		if ranked[i].AvgRoundDiff != ranked[j].AvgRoundDiff {
			return ranked[i].AvgRoundDiff < ranked[j].AvgRoundDiff
		}
		return ranked[i].Map < ranked[j].Map
	})
	return capRankings(ranked, topN)
}

func qualifiedMapRankings(agg *models.TeamAggregate) []models.MapRanking {
	ranked := make([]models.MapRanking, 0, len(agg.Maps))
	for name, ms := range agg.Maps {
		if ms.Played < MapDependencyMinGames {
			continue
		}
		ranked = append(ranked, models.MapRanking{
			Map:          name,
			WinRate:      ms.WinRate,
			Record:       fmt.Sprintf("%d-%d", ms.Wins, ms.Losses),
			AvgRoundDiff: ms.AvgRoundDiff,
		})
	}
	return ranked
}

func capRankings(ranked []models.MapRanking, topN int) []models.MapRanking {
	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// MostPlayedAgents ranks agents by pick count descending, agent name as
// tie-break.
func (a *metricsAggregator) MostPlayedAgents(agg *models.TeamAggregate, topN int) []models.AgentRanking {
	ranked := make([]models.AgentRanking, 0, len(agg.Agents))
	for agent, as := range agg.Agents {
		ranked = append(ranked, models.AgentRanking{
			Agent:       agent,
			TimesPicked: as.TimesPicked,
			PickRate:    as.PickRate,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TimesPicked != ranked[j].TimesPicked {
			return ranked[i].TimesPicked > ranked[j].TimesPicked
		}
		return ranked[i].Agent < ranked[j].Agent
	})
	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// StarPlayers scores players on a weighted combination of combat score,
// K/D, damage per round, and opening-duel differential, descending with
// name as tie-break.
func (a *metricsAggregator) StarPlayers(agg *models.TeamAggregate, topN int) []models.StarPlayer {
	stars := make([]models.StarPlayer, 0, len(agg.Players))
	for name, ps := range agg.Players {
		score := ps.AvgACS*StarWeightACS +
			ps.KDRatio*100*StarWeightKD +
			ps.AvgADR*StarWeightADR +
			float64(ps.FKFDDiff)*5*StarWeightFKFD
		stars = append(stars, models.StarPlayer{
			Name:            name,
			Score:           round1(score),
			AvgACS:          ps.AvgACS,
			KDRatio:         ps.KDRatio,
			AvgADR:          ps.AvgADR,
			MostPlayedAgent: ps.MostPlayedAgent,
			FKFDDiff:        ps.FKFDDiff,
		})
	}
	sort.Slice(stars, func(i, j int) bool {
		if stars[i].Score != stars[j].Score {
			return stars[i].Score > stars[j].Score
		}
		return stars[i].Name < stars[j].Name
	})
	if topN > 0 && len(stars) > topN {
		stars = stars[:topN]
	}
	return stars
}

// HeadToHead tallies prior meetings from team A's perspective. An empty
// match list yields an all-zero summary, never an error.
func (a *metricsAggregator) HeadToHead(teamAID string, matches []models.MatchRecord) models.HeadToHead {
	h2h := models.HeadToHead{
		MapRecords: make(map[string]models.HeadToHeadMapRecord),
	}
	if len(matches) == 0 {
		return h2h
	}

	for _, m := range matches {
		if m.WinnerTeamID == teamAID {
			h2h.TeamAWins++
		}
		for _, outcome := range m.MapsPlayed {
			rec := h2h.MapRecords[outcome.MapName]
			if outcome.WinnerTeamID == teamAID {
				rec.TeamAWins++
			} else {
				rec.TeamBWins++
			}
			h2h.MapRecords[outcome.MapName] = rec
		}
	}
	h2h.MatchesPlayed = len(matches)
	h2h.TeamBWins = len(matches) - h2h.TeamAWins
	h2h.TeamAWinRate = round1(float64(h2h.TeamAWins) / float64(len(matches)) * 100)
	return h2h
}
