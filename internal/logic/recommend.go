package logic

import (
	"fmt"
	"math"

	"github.com/gridscout/scout-api/internal/models"
)

type recommendationEngine struct{}

// NewRecommendationEngine returns the stateless cross-team
// recommendation service.
func NewRecommendationEngine() RecommendationEngine {
	return &recommendationEngine{}
}

// Recommend produces up to TopRecommendations coaching actions in
// discovery order: map picks, map bans, agent counters, then the
// tactical star-player call. Every entry embeds the literal record
// counts and scores that justify it.
func (e *recommendationEngine) Recommend(in RecommendationInput) []models.Recommendation {
	var recs []models.Recommendation
	recs = append(recs, e.mapPicks(in.Ours, in.Opponent)...)
	recs = append(recs, e.mapBans(in.Opponent)...)
	recs = append(recs, e.agentCounters(in.OpponentAgentDeps)...)
	recs = append(recs, e.starFocus(in.OpponentStars)...)

	if len(recs) > TopRecommendations {
		recs = recs[:TopRecommendations]
	}
	return recs
}

// mapPicks recommends maps appearing in both our best list and the
// opponent's worst list with a qualifying win-rate split.
func (e *recommendationEngine) mapPicks(ours, opponent *models.TeamAggregate) []models.Recommendation {
	var recs []models.Recommendation
	ourBest := bestMaps(ours, SnapshotTopMaps)
	theirWorst := worstMaps(opponent, SnapshotTopMaps)

	for _, our := range ourBest {
		for _, theirs := range theirWorst {
			if our.Map != theirs.Map || our.WinRate < VetoOurMapWinRate || theirs.WinRate > VetoTheirMapWinRate {
				continue
			}
			advantage := round1(our.WinRate - theirs.WinRate)
			confidence := "medium"
			if advantage > HighConfidenceGap {
				confidence = "high"
			}
			ourRecord := ours.Maps[our.Map]
			theirRecord := opponent.Maps[theirs.Map]
			recs = append(recs, models.Recommendation{
				Action:         fmt.Sprintf("Pick %s", our.Map),
				Type:           models.RecommendMapPick,
				Reasoning:      fmt.Sprintf("Strong map advantage - Our %.1f%% vs their %.1f%%", our.WinRate, theirs.WinRate),
				ExpectedImpact: fmt.Sprintf("+%.1f%% expected win rate advantage", advantage),
				Confidence:     confidence,
				GridData: fmt.Sprintf("Our record: %d-%d, Their record: %d-%d",
					ourRecord.Wins, ourRecord.Losses, theirRecord.Wins, theirRecord.Losses),
			})
		}
	}
	return recs
}

// mapBans recommends banning the opponent's top two maps when their
// win rate there clears the ban threshold.
func (e *recommendationEngine) mapBans(opponent *models.TeamAggregate) []models.Recommendation {
	var recs []models.Recommendation
	for _, best := range bestMaps(opponent, 2) {
		if best.WinRate < BanMapWinRate {
			continue
		}
		record := opponent.Maps[best.Map]
		recs = append(recs, models.Recommendation{
			Action:         fmt.Sprintf("Ban %s", best.Map),
			Type:           models.RecommendMapBan,
			Reasoning:      fmt.Sprintf("Opponent's strong map - %.1f%% win rate", best.WinRate),
			ExpectedImpact: "Removes their best map option",
			Confidence:     "high",
			GridData:       fmt.Sprintf("Opponent's %s record: %d-%d", best.Map, record.Wins, record.Losses),
		})
	}
	return recs
}

// agentCounters recommends countering the opponent's top strength-type
// agent dependencies with a wide enough margin.
func (e *recommendationEngine) agentCounters(agentDeps []models.Dependency) []models.Recommendation {
	var recs []models.Recommendation
	for i, dep := range agentDeps {
		if i >= TopAgentSignals {
			break
		}
		if dep.Kind != models.DependencyStrength || dep.Difference <= AgentCounterThreshold {
			continue
		}
		recs = append(recs, models.Recommendation{
			Action:         fmt.Sprintf("Counter/Ban %s", dep.Subject),
			Type:           models.RecommendAgentStrategy,
			Reasoning:      fmt.Sprintf("Opponent's win rate drops %.1f%% without %s", math.Abs(dep.Difference), dep.Subject),
			ExpectedImpact: "Forces suboptimal compositions",
			Confidence:     "medium",
			GridData:       fmt.Sprintf("Win rate with %s: %.1f%% (%d games)", dep.Subject, dep.WinRate, dep.GamesPlayed),
		})
	}
	return recs
}

// starFocus calls out the opponent's single highest-scored player.
func (e *recommendationEngine) starFocus(stars []models.StarPlayer) []models.Recommendation {
	if len(stars) == 0 {
		return nil
	}
	star := stars[0]
	return []models.Recommendation{{
		Action:         fmt.Sprintf("Focus %s", star.Name),
		Type:           models.RecommendTactical,
		Reasoning:      fmt.Sprintf("Star player averaging %.1f ACS, %.2f K/D", star.AvgACS, star.KDRatio),
		ExpectedImpact: "Disrupting their star player reduces team effectiveness",
		Confidence:     "high",
		GridData:       fmt.Sprintf("%s: %.1f ACS, %.2f K/D on %s", star.Name, star.AvgACS, star.KDRatio, star.MostPlayedAgent),
	}}
}
