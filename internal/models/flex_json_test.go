package models

import (
	"encoding/json"
	"testing"
)

func TestFlexUnmarshal_AllStrings(t *testing.T) {
	input := `[{"player_id": "p6", "player_name": "Derke", "agent": "Jett", "kills": "24", "deaths": "15", "assists": "5", "acs": "280.500", "adr": "175.200", "kast": "74.000", "first_kills": "3", "first_deaths": "1", "headshot_percentage": "28.4", "clutches_won": "1", "clutches_attempted": "2"}]`

	var stats []PlayerMatchStat
	err := json.Unmarshal([]byte(input), &stats)
	if err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("Expected 1 stat line, got %d", len(stats))
	}

	s := stats[0]
	if s.PlayerName != "Derke" {
		t.Errorf("PlayerName = %q, want Derke", s.PlayerName)
	}
	if s.Agent != "Jett" {
		t.Errorf("Agent = %q, want Jett", s.Agent)
	}
	if s.Kills != 24 {
		t.Errorf("Kills = %d, want 24", s.Kills)
	}
	if s.ACS != 280.5 {
		t.Errorf("ACS = %f, want 280.5", s.ACS)
	}
	if s.ADR != 175.2 {
		t.Errorf("ADR = %f, want 175.2", s.ADR)
	}
	if s.HeadshotPct != 28.4 {
		t.Errorf("HeadshotPct = %f, want 28.4", s.HeadshotPct)
	}
}

func TestFlexUnmarshal_NativeTypes(t *testing.T) {
	input := `[{"player_name": "Derke", "agent": "Jett", "kills": 24, "acs": 280.5}]`

	var stats []PlayerMatchStat
	err := json.Unmarshal([]byte(input), &stats)
	if err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if stats[0].ACS != 280.5 {
		t.Errorf("ACS = %f, want 280.5", stats[0].ACS)
	}
}

func TestFlexUnmarshal_MixedTypes(t *testing.T) {
	// Feeds that quote only some numerics still decode.
	input := `{"player_name": "Derke", "kills": "24", "deaths": 15, "acs": "280.5"}`

	var s PlayerMatchStat
	if err := json.Unmarshal([]byte(input), &s); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if s.Kills != 24 || s.Deaths != 15 || s.ACS != 280.5 {
		t.Errorf("stat = %+v", s)
	}
}
