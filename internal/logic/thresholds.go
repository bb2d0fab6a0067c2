// Package logic implements the scouting analytics core: metrics
// aggregation, dependency detection, signal extraction, recommendation
// generation, and report assembly. Every computation is a pure
// synchronous transformation over an immutable match-record snapshot.
package logic

// Significance thresholds for dependency detection, in percentage
// points against the team's overall win rate. These are tuned values
// carried over from production; they are configuration, not derived
// domain truths.
const (
	MapDependencyMinGames  = 2
	MapDependencyThreshold = 15.0

	AgentDependencyMinGames  = 3
	AgentDependencyThreshold = 10.0

	// Agent mastery/liability signals require a larger margin than bare
	// detection, and counter-pick recommendations a larger one still.
	AgentMasteryThreshold = 15.0
	AgentCounterThreshold = 20.0

	// An agent accounting for more than this share of all picks is an
	// over-reliance candidate.
	AgentRelianceThreshold = 30.0
)

// Momentum classification bands over recent form win fractions.
const (
	FormRecentWindow   = 3
	FormMomentumBand   = 0.2
	FormNeutralOldRate = 0.5 // assumed older-window rate when no older results exist
)

// Signal trigger thresholds.
const (
	StrongWinRate     = 60.0
	DominantWinRate   = 70.0
	MapDominanceGames = 3
	WeakMapWinRate    = 40.0
	WeakMapMinGames   = 2
)

// Map veto thresholds for recommendations.
const (
	VetoOurMapWinRate   = 55.0
	VetoTheirMapWinRate = 50.0
	BanMapWinRate       = 60.0
	HighConfidenceGap   = 20.0
)

// Star-player score weights. The weighted sum is
// 0.4*ACS + 0.3*(K/D*100) + 0.2*ADR + 0.1*(FK-FD)*5.
const (
	StarWeightACS  = 0.4
	StarWeightKD   = 0.3
	StarWeightADR  = 0.2
	StarWeightFKFD = 0.1
)

// List caps.
const (
	RecentFormLength    = 5
	TopSignals          = 5
	TopAgentSignals     = 2
	TopRecommendations  = 6
	SnapshotTopMaps     = 3
	SnapshotTopAgents   = 5
	SnapshotStarPlayers = 2

	// Final report truncation.
	ReportTopSignals         = 3
	ReportTopRecommendations = 5
)
