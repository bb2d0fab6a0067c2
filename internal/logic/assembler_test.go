package logic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/gridscout/scout-api/internal/models"
)

// scoutingBundleFixture builds a two-team bundle where team A is clearly
// stronger on Ascent and team B leans on Bind, so the report has
// material in every section.
func scoutingBundleFixture() *models.ScoutingBundle {
	teamA := testTeam("team_a", "Sentinels", "SEN")
	teamB := testTeam("team_b", "Fnatic", "FNC", "Derke")

	var aMatches []models.MatchRecord
	for i := 0; i < 4; i++ {
		aMatches = append(aMatches, testMatch(fmt.Sprintf("a_asc_%d", i), i, teamA, teamB,
			mapScore{"Ascent", 13, 5, true}))
	}
	aMatches = append(aMatches,
		testMatch("a_hav_0", 4, teamA, teamB, mapScore{"Haven", 13, 10, true}),
		testMatch("a_hav_1", 5, teamA, teamB, mapScore{"Haven", 13, 11, true}),
	)

	var bMatches []models.MatchRecord
	for i := 0; i < 4; i++ {
		m := testMatch(fmt.Sprintf("b_bind_%d", i), i, teamB, teamA,
			mapScore{"Bind", 13, 7, true})
		m = withPicks(m, teamB, map[string]string{"Derke": "Jett"})
		m = withPlayerStat(m, teamB, "Derke", "Jett", 24, 15, 280, 175, 3, 1)
		bMatches = append(bMatches, m)
	}
	for i := 0; i < 3; i++ {
		m := testMatch(fmt.Sprintf("b_asc_%d", i), 4+i, teamB, teamA,
			mapScore{"Ascent", 6, 13, false})
		m = withPicks(m, teamB, map[string]string{"Derke": "Raze"})
		m = withPlayerStat(m, teamB, "Derke", "Raze", 14, 18, 190, 120, 1, 2)
		bMatches = append(bMatches, m)
	}

	return &models.ScoutingBundle{
		TeamA: models.TeamHistory{Team: teamA, Matches: aMatches},
		TeamB: models.TeamHistory{Team: teamB, Matches: bMatches},
		HeadToHead: []models.MatchRecord{
			testMatch("h2h_0", 0, teamA, teamB, mapScore{"Ascent", 13, 9, true}),
			testMatch("h2h_1", 1, teamA, teamB, mapScore{"Bind", 8, 13, false}),
		},
		TimeWindowDays: 90,
		DataSource:     "GRID Esports API",
	}
}

func newTestAssembler() ReportAssembler {
	return NewReportAssembler(zap.NewNop())
}

func TestBuildReportSections(t *testing.T) {
	asm := newTestAssembler()
	bundle := scoutingBundleFixture()

	report, err := asm.BuildReport(context.Background(), bundle)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}

	if !strings.HasPrefix(report.ReportID, "scout_SEN_FNC_") {
		t.Errorf("report id = %q", report.ReportID)
	}
	if report.GeneratedAt.IsZero() {
		t.Error("generated_at not set")
	}
	if report.DataSource != "GRID Esports API" {
		t.Errorf("data source = %q", report.DataSource)
	}

	ov := report.MatchOverview
	if ov.TeamAName != "Sentinels" || ov.TeamBName != "Fnatic" {
		t.Errorf("overview names = %q vs %q", ov.TeamAName, ov.TeamBName)
	}
	if ov.MatchesAnalyzedTeamA != 6 || ov.MatchesAnalyzedTeamB != 7 {
		t.Errorf("matches analyzed = %d / %d", ov.MatchesAnalyzedTeamA, ov.MatchesAnalyzedTeamB)
	}
	if ov.AnalysisTimeWindowDays != 90 {
		t.Errorf("time window = %d", ov.AnalysisTimeWindowDays)
	}
	// Head-to-head is scored from team A's perspective: 1-1.
	if ov.HeadToHeadRecord.MatchesPlayed != 2 || ov.HeadToHeadRecord.TeamAWins != 1 {
		t.Errorf("head-to-head = %+v", ov.HeadToHeadRecord)
	}

	snap := report.OpponentSnapshot
	if len(snap.BestMaps) == 0 || snap.BestMaps[0].Map != "Bind" {
		t.Errorf("opponent best maps = %+v", snap.BestMaps)
	}
	if len(snap.WorstMaps) == 0 || snap.WorstMaps[0].Map != "Ascent" {
		t.Errorf("opponent worst maps = %+v", snap.WorstMaps)
	}
	if len(snap.StarPlayers) == 0 || snap.StarPlayers[0].Name != "Derke" {
		t.Errorf("opponent stars = %+v", snap.StarPlayers)
	}

	if len(report.KeyStrengths) == 0 || len(report.KeyStrengths) > ReportTopSignals {
		t.Errorf("key strengths = %+v", report.KeyStrengths)
	}
	if len(report.ExploitableWeaknesses) == 0 || len(report.ExploitableWeaknesses) > ReportTopSignals {
		t.Errorf("weaknesses = %+v", report.ExploitableWeaknesses)
	}
	if len(report.CoachRecommendations) == 0 || len(report.CoachRecommendations) > ReportTopRecommendations {
		t.Errorf("recommendations = %+v", report.CoachRecommendations)
	}
	// Team A owns Ascent and team B keeps losing it, so the veto pick
	// leads the recommendation list.
	if report.CoachRecommendations[0].Action != "Pick Ascent" {
		t.Errorf("first recommendation = %+v", report.CoachRecommendations[0])
	}

	if report.TeamAStats.Overall.TotalMatches != 6 || report.TeamBStats.Overall.TotalMatches != 7 {
		t.Errorf("embedded aggregates = %d / %d",
			report.TeamAStats.Overall.TotalMatches, report.TeamBStats.Overall.TotalMatches)
	}
}

func TestBuildReportDeterministic(t *testing.T) {
	asm := newTestAssembler()
	bundle := scoutingBundleFixture()

	first, err := asm.BuildReport(context.Background(), bundle)
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	second, err := asm.BuildReport(context.Background(), scoutingBundleFixture())
	if err != nil {
		t.Fatalf("second build: %v", err)
	}

	// Only the id and timestamp may differ between runs.
	first.ReportID, second.ReportID = "", ""
	first.GeneratedAt, second.GeneratedAt = time.Time{}, time.Time{}

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal first: %v", err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal second: %v", err)
	}
	if string(a) != string(b) {
		t.Errorf("reports differ across identical inputs:\n%s\n%s", a, b)
	}
}

func TestBuildReportJSONKeys(t *testing.T) {
	asm := newTestAssembler()

	report, err := asm.BuildReport(context.Background(), scoutingBundleFixture())
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}

	raw, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{
		"report_id", "generated_at", "data_source",
		"match_overview", "opponent_snapshot",
		"key_strengths", "exploitable_weaknesses", "coach_recommendations",
		"team_a_stats", "team_b_stats",
	} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("report JSON missing %q", key)
		}
	}
}

func TestBuildReportMissingTeam(t *testing.T) {
	asm := newTestAssembler()

	tests := []struct {
		name   string
		bundle *models.ScoutingBundle
	}{
		{"nil bundle", nil},
		{"missing team A", &models.ScoutingBundle{
			TeamB: models.TeamHistory{Team: testTeam("team_b", "Fnatic", "FNC")},
		}},
		{"missing team B", &models.ScoutingBundle{
			TeamA: models.TeamHistory{Team: testTeam("team_a", "Sentinels", "SEN")},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := asm.BuildReport(context.Background(), tt.bundle)
			if !errors.Is(err, ErrTeamNotFound) {
				t.Errorf("err = %v, want ErrTeamNotFound", err)
			}
		})
	}
}

func TestBuildReportEmptyHistories(t *testing.T) {
	asm := newTestAssembler()
	bundle := &models.ScoutingBundle{
		TeamA:          models.TeamHistory{Team: testTeam("team_a", "Sentinels", "SEN")},
		TeamB:          models.TeamHistory{Team: testTeam("team_b", "Fnatic", "FNC")},
		TimeWindowDays: 30,
	}

	report, err := asm.BuildReport(context.Background(), bundle)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}

	if report.MatchOverview.MatchesAnalyzedTeamA != 0 || report.MatchOverview.MatchesAnalyzedTeamB != 0 {
		t.Errorf("overview = %+v", report.MatchOverview)
	}
	if len(report.CoachRecommendations) != 0 {
		t.Errorf("no data should yield no recommendations, got %+v", report.CoachRecommendations)
	}
	if report.DataSource != "GRID Esports API" {
		t.Errorf("default data source = %q", report.DataSource)
	}
	if report.MatchOverview.HeadToHeadRecord.MapRecords == nil {
		t.Error("empty head-to-head should still carry a non-nil map record set")
	}
}
