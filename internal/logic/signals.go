package logic

import (
	"fmt"
	"sort"

	"github.com/gridscout/scout-api/internal/models"
)

type signalExtractor struct{}

// NewSignalExtractor returns the stateless signal ranking service.
func NewSignalExtractor() SignalExtractor {
	return &signalExtractor{}
}

// Strengths returns up to TopSignals strength entries in trigger order:
// overall record, map dominance, momentum, agent mastery. The metric
// field of every entry carries the literal numbers that produced it.
func (s *signalExtractor) Strengths(agg *models.TeamAggregate, agentDeps []models.Dependency, form models.FormPattern) []models.Signal {
	var strengths []models.Signal
	overall := agg.Overall

	if overall.WinRate >= StrongWinRate {
		severity := "medium"
		if overall.WinRate >= DominantWinRate {
			severity = "high"
		}
		strengths = append(strengths, models.Signal{
			Category:    "Overall Performance",
			Description: fmt.Sprintf("High overall win rate (%.1f%%)", overall.WinRate),
			Metric:      fmt.Sprintf("%.1f%% win rate across %d matches", overall.WinRate, overall.TotalMatches),
			Severity:    severity,
		})
	}

	for _, name := range sortedMapNames(agg.Maps) {
		ms := agg.Maps[name]
		if ms.Played >= MapDominanceGames && ms.WinRate >= DominantWinRate {
			strengths = append(strengths, models.Signal{
				Category:    "Map Dominance",
				Description: fmt.Sprintf("Dominant on %s", name),
				Metric:      fmt.Sprintf("%.1f%% win rate on %s (%d-%d)", ms.WinRate, name, ms.Wins, ms.Losses),
				Severity:    "high",
			})
		}
	}

	if form.Momentum == models.MomentumPositive {
		strengths = append(strengths, models.Signal{
			Category:    "Momentum",
			Description: "Currently in strong form",
			Metric:      form.Description,
			Severity:    "medium",
		})
	}

	for i, dep := range agentDeps {
		if i >= TopAgentSignals {
			break
		}
		if dep.Kind == models.DependencyStrength && dep.Difference > AgentMasteryThreshold {
			strengths = append(strengths, models.Signal{
				Category:    "Agent Mastery",
				Description: fmt.Sprintf("Strong with %s", dep.Subject),
				Metric:      fmt.Sprintf("%.1f%% win rate with %s (%d games)", dep.WinRate, dep.Subject, dep.GamesPlayed),
				Severity:    "medium",
			})
		}
	}

	return capSignals(strengths)
}

// Weaknesses returns up to TopSignals weakness entries in trigger
// order: weak maps, poor form, agent liabilities, over-reliance.
func (s *signalExtractor) Weaknesses(agg *models.TeamAggregate, agentDeps []models.Dependency, form models.FormPattern) []models.Signal {
	var weaknesses []models.Signal

	for _, name := range sortedMapNames(agg.Maps) {
		ms := agg.Maps[name]
		if ms.Played >= WeakMapMinGames && ms.WinRate <= WeakMapWinRate {
			weaknesses = append(weaknesses, models.Signal{
				Category:       "Map Weakness",
				Description:    fmt.Sprintf("Struggles on %s", name),
				Metric:         fmt.Sprintf("%.1f%% win rate on %s (%d-%d)", ms.WinRate, name, ms.Wins, ms.Losses),
				Exploitability: "high",
				Recommendation: fmt.Sprintf("Pick %s in veto phase", name),
			})
		}
	}

	if form.Momentum == models.MomentumNegative {
		weaknesses = append(weaknesses, models.Signal{
			Category:       "Poor Form",
			Description:    "Currently in declining form",
			Metric:         form.Description,
			Exploitability: "medium",
			Recommendation: "Apply early pressure to compound momentum issues",
		})
	}

	for _, dep := range agentDeps {
		if dep.Kind == models.DependencyWeakness && dep.Difference < -AgentMasteryThreshold {
			weaknesses = append(weaknesses, models.Signal{
				Category:       "Agent Dependency",
				Description:    fmt.Sprintf("Weaker with %s", dep.Subject),
				Metric:         fmt.Sprintf("%.1f%% win rate with %s", dep.WinRate, dep.Subject),
				Exploitability: "medium",
				Recommendation: "Force uncomfortable agent compositions",
			})
		}
	}

	if reliance := s.detectOverReliance(agg, agentDeps); reliance != nil {
		weaknesses = append(weaknesses, *reliance)
	}

	return capSignals(weaknesses)
}

// detectOverReliance flags the team's most-picked agent when it
// accounts for more than the reliance threshold of all picks and that
// same agent is also a positive strength dependency, so removing it
// from the board hits them twice.
func (s *signalExtractor) detectOverReliance(agg *models.TeamAggregate, agentDeps []models.Dependency) *models.Signal {
	topAgent := ""
	topCount := 0
	total := 0
	for _, name := range sortedAgentNames(agg.Agents) {
		as := agg.Agents[name]
		total += as.TimesPicked
		if as.TimesPicked > topCount {
			topAgent = name
			topCount = as.TimesPicked
		}
	}
	if total == 0 || topAgent == "" {
		return nil
	}
	reliance := float64(topCount) / float64(total) * 100
	if reliance <= AgentRelianceThreshold {
		return nil
	}
	for _, dep := range agentDeps {
		if dep.Subject == topAgent && dep.Kind == models.DependencyStrength {
			return &models.Signal{
				Category:       "Agent Dependency",
				Description:    fmt.Sprintf("Heavy reliance on %s", topAgent),
				Metric:         fmt.Sprintf("%.1f%% of picks are %s, %.1f%% higher win rate with %s", reliance, topAgent, dep.Difference, topAgent),
				Exploitability: "high",
				Recommendation: fmt.Sprintf("Banning or countering %s could significantly impact performance", topAgent),
			}
		}
	}
	return nil
}

func capSignals(signals []models.Signal) []models.Signal {
	if len(signals) > TopSignals {
		return signals[:TopSignals]
	}
	return signals
}

func sortedMapNames(maps map[string]models.MapStats) []string {
	names := make([]string, 0, len(maps))
	for name := range maps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedAgentNames(agents map[string]models.AgentStats) []string {
	names := make([]string, 0, len(agents))
	for name := range agents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
