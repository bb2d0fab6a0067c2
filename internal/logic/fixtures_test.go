package logic

import (
	"fmt"
	"time"

	"github.com/gridscout/scout-api/internal/models"
)

// Shared fixtures for the analytics tests. baseDate anchors match
// dates; day offsets order recency (higher day = more recent).
var baseDate = time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

func testTeam(id, name, short string, playerNames ...string) models.Team {
	team := models.Team{ID: id, Name: name, ShortName: short, Region: "NA"}
	for i, n := range playerNames {
		team.Roster = append(team.Roster, models.Player{
			ID:   fmt.Sprintf("%s_p%d", id, i+1),
			Name: n,
		})
	}
	return team
}

type mapScore struct {
	name       string
	ourScore   int
	oppScore   int
	weWon      bool
}

/// testMatch builds a MatchRecord from our team's perspective: we are
// always team A, the match winner is whoever took more maps.
func testMatch(id string, day int, us, them models.Team, maps ...mapScore) models.MatchRecord {
	m := models.MatchRecord{
		ID:        id,
		TeamAID:   us.ID,
		TeamBID:   them.ID,
		TeamAName: us.Name,
		TeamBName: them.Name,
		Date:      baseDate.AddDate(0, 0, day),
		BestOf:    3,
	}
	ourMapWins := 0
	for _, ms := range maps {
		winner := them.ID
		if ms.weWon {
			winner = us.ID
			ourMapWins++
		}
		m.MapsPlayed = append(m.MapsPlayed, models.MapOutcome{
			MapName:      ms.name,
			TeamAScore:   ms.ourScore,
			TeamBScore:   ms.oppScore,
			WinnerTeamID: winner,
		})
	}
	if ourMapWins*2 > len(maps) {
		m.WinnerTeamID = us.ID
		m.TeamAMapWins = ourMapWins
		m.TeamBMapWins = len(maps) - ourMapWins
	} else {
		m.WinnerTeamID = them.ID
		m.TeamAMapWins = ourMapWins
		m.TeamBMapWins = len(maps) - ourMapWins
	}
	return m
}

// withPicks attaches one agent pick per (player, map) for the given
// roster players.
func withPicks(m models.MatchRecord, team models.Team, agents map[string]string) models.MatchRecord {
	for _, p := range team.Roster {
		agent, ok := agents[p.Name]
		if !ok {
			continue
		}
		for _, outcome := range m.MapsPlayed {
			m.AgentPicks = append(m.AgentPicks, models.AgentPick{
				PlayerID:   p.ID,
				PlayerName: p.Name,
				Agent:      agent,
				MapName:    outcome.MapName,
				MatchID:    m.ID,
			})
		}
	}
	return m
}

// withPlayerStat attaches one stat line for a roster player.
func withPlayerStat(m models.MatchRecord, team models.Team, playerName, agent string, kills, deaths int, acs, adr float64, fk, fd int) models.MatchRecord {
	var playerID string
	for _, p := range team.Roster {
		if p.Name == playerName {
			playerID = p.ID
		}
	}
	m.PlayerStats = append(m.PlayerStats, models.PlayerMatchStat{
		PlayerID:    playerID,
		PlayerName:  playerName,
		Agent:       agent,
		Kills:       kills,
		Deaths:      deaths,
		Assists:     5,
		ACS:         acs,
		ADR:         adr,
		FirstKills:  fk,
		FirstDeaths: fd,
	})
	return m
}
