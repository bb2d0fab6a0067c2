package logic

import (
	"testing"

	"github.com/gridscout/scout-api/internal/models"
)

// sixFourTeam builds the canonical fixture: 6-4 overall (60%), 4-0 on
// Ascent, 2-0 on Haven, 0-4 on Bind, losses most recent.
func sixFourTeam() (models.Team, []models.MatchRecord) {
	us := testTeam("team_a", "Sentinels", "SEN", "TenZ", "zekken")
	them := testTeam("team_b", "Fnatic", "FNC", "Derke", "Alfajer")

	var matches []models.MatchRecord
	for i := 0; i < 4; i++ {
		matches = append(matches, testMatch(idx("win_ascent", i), i+1, us, them,
			mapScore{name: "Ascent", ourScore: 13, oppScore: 5, weWon: true}))
	}
	for i := 0; i < 2; i++ {
		matches = append(matches, testMatch(idx("win_haven", i), i+5, us, them,
			mapScore{name: "Haven", ourScore: 13, oppScore: 10, weWon: true}))
	}
	for i := 0; i < 4; i++ {
		matches = append(matches, testMatch(idx("loss_bind", i), i+7, us, them,
			mapScore{name: "Bind", ourScore: 6, oppScore: 13, weWon: false}))
	}
	return us, matches
}

func idx(prefix string, i int) string {
	return prefix + "_" + string(rune('a'+i))
}

func TestAggregateOverall(t *testing.T) {
	agg := NewMetricsAggregator()
	us, matches := sixFourTeam()

	got := agg.Aggregate(us, matches)

	if got.Overall.TotalMatches != 10 || got.Overall.Wins != 6 || got.Overall.Losses != 4 {
		t.Errorf("record = %d/%d-%d, want 10/6-4",
			got.Overall.TotalMatches, got.Overall.Wins, got.Overall.Losses)
	}
	if got.Overall.WinRate != 60.0 {
		t.Errorf("win rate = %.1f, want 60.0", got.Overall.WinRate)
	}
}

func TestAggregateZeroMatches(t *testing.T) {
	agg := NewMetricsAggregator()
	us := testTeam("team_a", "Sentinels", "SEN", "TenZ")

	got := agg.Aggregate(us, nil)

	if got.Overall.WinRate != 0 {
		t.Errorf("win rate = %.1f, want 0 with no matches", got.Overall.WinRate)
	}
	if got.Overall.RecentFormSummary != "No recent matches" {
		t.Errorf("form summary = %q", got.Overall.RecentFormSummary)
	}
	if got.Maps == nil || got.Agents == nil || got.Players == nil {
		t.Error("derived maps should be empty, not nil")
	}
}

func TestAggregateMapStats(t *testing.T) {
	agg := NewMetricsAggregator()
	us, matches := sixFourTeam()

	got := agg.Aggregate(us, matches)

	ascent := got.Maps["Ascent"]
	if ascent.Played != 4 || ascent.Wins != 4 || ascent.WinRate != 100.0 {
		t.Errorf("Ascent = %+v, want 4 played, 4 wins, 100%%", ascent)
	}
	if ascent.RoundDiff != 32 || ascent.AvgRoundDiff != 8.0 {
		t.Errorf("Ascent round diff = %d avg %.1f, want 32 avg 8.0", ascent.RoundDiff, ascent.AvgRoundDiff)
	}
	bind := got.Maps["Bind"]
	if bind.WinRate != 0.0 || bind.Losses != 4 {
		t.Errorf("Bind = %+v, want 0%% over 0-4", bind)
	}
}

func TestRecentFormMostRecentFirst(t *testing.T) {
	agg := NewMetricsAggregator()
	us, matches := sixFourTeam()

	got := agg.Aggregate(us, matches)

	// Bind losses carry the latest dates, so all five slots are from
	// days 10..6: four losses then the last Haven win.
	want := []string{"L", "L", "L", "L", "W"}
	if len(got.Overall.RecentForm) != len(want) {
		t.Fatalf("form length = %d, want %d", len(got.Overall.RecentForm), len(want))
	}
	for i, r := range want {
		if got.Overall.RecentForm[i] != r {
			t.Errorf("form[%d] = %s, want %s (full form %v)", i, got.Overall.RecentForm[i], r, got.Overall.RecentForm)
		}
	}
}

func TestBestAndWorstMapsDisjoint(t *testing.T) {
	agg := NewMetricsAggregator()
	us, matches := sixFourTeam()
	a := agg.Aggregate(us, matches)

	best := agg.BestMaps(a, 3)
	worst := agg.WorstMaps(a, 3)

	if len(best) == 0 || best[0].Map != "Ascent" {
		t.Fatalf("best maps = %+v, want Ascent first", best)
	}
	// Ascent and Haven both sit at 100%; Ascent's larger round
	// differential breaks the tie.
	if best[1].Map != "Haven" {
		t.Errorf("best[1] = %s, want Haven", best[1].Map)
	}
	if worst[0].Map != "Bind" {
		t.Errorf("worst maps = %+v, want Bind first", worst)
	}
	// With 3 qualifying maps, top-3 best and top-3 worst necessarily
	// overlap; top-1 of each never should.
	if best[0].Map == worst[0].Map {
		t.Errorf("best[0] and worst[0] are both %s", best[0].Map)
	}
}

func TestAggregateAgents(t *testing.T) {
	agg := NewMetricsAggregator()
	us := testTeam("team_a", "Sentinels", "SEN", "TenZ", "zekken")
	them := testTeam("team_b", "Fnatic", "FNC", "Derke")

	m1 := testMatch("m1", 1, us, them,
		mapScore{name: "Ascent", ourScore: 13, oppScore: 7, weWon: true},
		mapScore{name: "Bind", ourScore: 13, oppScore: 9, weWon: true})
	m1 = withPicks(m1, us, map[string]string{"TenZ": "Jett", "zekken": "Raze"})
	// Opponent picks must not count toward our totals.
	m1.AgentPicks = append(m1.AgentPicks, models.AgentPick{
		PlayerID: "team_b_p1", PlayerName: "Derke", Agent: "Jett", MapName: "Ascent", MatchID: "m1",
	})

	got := agg.Aggregate(us, []models.MatchRecord{m1})

	// 2 maps x 2 roster players = 4 picks total.
	if got.Agents["Jett"].TimesPicked != 2 {
		t.Errorf("Jett picks = %d, want 2", got.Agents["Jett"].TimesPicked)
	}
	if got.Agents["Jett"].PickRate != 50.0 {
		t.Errorf("Jett pick rate = %.1f, want 50.0", got.Agents["Jett"].PickRate)
	}
}

func TestAggregatePlayers(t *testing.T) {
	agg := NewMetricsAggregator()
	us := testTeam("team_a", "Sentinels", "SEN", "TenZ")
	them := testTeam("team_b", "Fnatic", "FNC", "Derke")

	m1 := testMatch("m1", 1, us, them, mapScore{name: "Ascent", ourScore: 13, oppScore: 7, weWon: true})
	m1 = withPlayerStat(m1, us, "TenZ", "Jett", 25, 0, 300, 180, 4, 1)
	m2 := testMatch("m2", 2, us, them, mapScore{name: "Bind", ourScore: 13, oppScore: 9, weWon: true})
	m2 = withPlayerStat(m2, us, "TenZ", "Raze", 15, 10, 220, 140, 2, 3)

	got := agg.Aggregate(us, []models.MatchRecord{m1, m2})

	tenz, ok := got.Players["TenZ"]
	if !ok {
		t.Fatal("TenZ missing from player aggregates")
	}
	if tenz.AvgKills != 20.0 {
		t.Errorf("avg kills = %.1f, want 20.0", tenz.AvgKills)
	}
	// 40 kills over 10 deaths; the zero-death match must not divide by
	// zero.
	if tenz.KDRatio != 4.0 {
		t.Errorf("K/D = %.2f, want 4.0", tenz.KDRatio)
	}
	if tenz.FKFDDiff != 2 {
		t.Errorf("FK-FD = %d, want 2", tenz.FKFDDiff)
	}
	// One match each: tie broken by first-seen agent.
	if tenz.MostPlayedAgent != "Jett" {
		t.Errorf("most played agent = %s, want Jett", tenz.MostPlayedAgent)
	}
}

func TestStarPlayersDeterministicOrder(t *testing.T) {
	agg := NewMetricsAggregator()
	us := testTeam("team_a", "Sentinels", "SEN", "TenZ", "zekken")
	them := testTeam("team_b", "Fnatic", "FNC", "Derke")

	m := testMatch("m1", 1, us, them, mapScore{name: "Ascent", ourScore: 13, oppScore: 7, weWon: true})
	// Identical stat lines so both score the same; name must break the
	// tie.
	m = withPlayerStat(m, us, "zekken", "Raze", 20, 10, 250, 160, 2, 2)
	m = withPlayerStat(m, us, "TenZ", "Jett", 20, 10, 250, 160, 2, 2)

	a := agg.Aggregate(us, []models.MatchRecord{m})
	stars := agg.StarPlayers(a, 2)

	if len(stars) != 2 {
		t.Fatalf("got %d stars, want 2", len(stars))
	}
	if stars[0].Name != "TenZ" || stars[1].Name != "zekken" {
		t.Errorf("star order = [%s %s], want [TenZ zekken]", stars[0].Name, stars[1].Name)
	}
	if stars[0].Score != stars[1].Score {
		t.Errorf("expected equal scores, got %.1f vs %.1f", stars[0].Score, stars[1].Score)
	}
}

func TestHeadToHead(t *testing.T) {
	agg := NewMetricsAggregator()
	us := testTeam("team_a", "Sentinels", "SEN", "TenZ")
	them := testTeam("team_b", "Fnatic", "FNC", "Derke")

	t.Run("empty history zeroes out", func(t *testing.T) {
		got := agg.HeadToHead("team_a", nil)
		if got.MatchesPlayed != 0 || got.TeamAWinRate != 0 {
			t.Errorf("got %+v, want zero summary", got)
		}
		if got.MapRecords == nil {
			t.Error("map records should be empty, not nil")
		}
	})

	t.Run("tallies wins and maps", func(t *testing.T) {
		matches := []models.MatchRecord{
			testMatch("h1", 1, us, them, mapScore{name: "Ascent", ourScore: 13, oppScore: 8, weWon: true}),
			testMatch("h2", 2, us, them, mapScore{name: "Ascent", ourScore: 9, oppScore: 13, weWon: false}),
			testMatch("h3", 3, us, them, mapScore{name: "Bind", ourScore: 13, oppScore: 11, weWon: true}),
		}
		got := agg.HeadToHead("team_a", matches)
		if got.MatchesPlayed != 3 || got.TeamAWins != 2 || got.TeamBWins != 1 {
			t.Errorf("summary = %+v, want 3 played 2-1", got)
		}
		if got.TeamAWinRate != 66.7 {
			t.Errorf("team A win rate = %.1f, want 66.7", got.TeamAWinRate)
		}
		if rec := got.MapRecords["Ascent"]; rec.TeamAWins != 1 || rec.TeamBWins != 1 {
			t.Errorf("Ascent record = %+v, want 1-1", rec)
		}
	})
}
