// Package insights turns a finished scouting report into a short
// strategic briefing using the Anthropic API. The model is only ever
// shown numbers the analysis core already computed; prose generation
// failing never fails the scouting request.
package insights

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"

	"github.com/gridscout/scout-api/internal/models"
)

const systemPrompt = `You are an elite VALORANT esports analyst preparing a strategic briefing for a professional coaching staff.

Rules:
- ONLY use the statistics provided. Never invent numbers, player names, or match results.
- Every claim must cite a figure from the data.
- Focus on strategic implications: how the opponent wants to win, where they are vulnerable, and the map veto plan.
- Be concise and professional. Coaches read this minutes before a veto.`

type GeneratorConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	Logger  *zap.Logger
}

// Generator produces the optional AI briefing section of a report.
type Generator struct {
	client  anthropic.Client
	model   string
	timeout time.Duration
	logger  *zap.SugaredLogger
}

// NewGenerator returns nil when no API key is configured, which
// disables the insights section entirely.
func NewGenerator(cfg GeneratorConfig) *Generator {
	if cfg.APIKey == "" {
		return nil
	}
	if cfg.Model == "" {
		cfg.Model = "claude-sonnet-4-20250514"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Generator{
		client:  anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  cfg.Logger.Sugar(),
	}
}

// Generate renders the report into a grounded prompt and returns the
// model's briefing text.
func (g *Generator) Generate(ctx context.Context, report *models.Report) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(report))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic request: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("anthropic request: empty response")
	}

	g.logger.Infow("Insights generated",
		"report_id", report.ReportID,
		"model", g.model,
		"duration", time.Since(start),
	)
	return text, nil
}

// buildPrompt serialises the report sections the briefing may cite.
func buildPrompt(report *models.Report) string {
	ov := report.MatchOverview
	var b strings.Builder

	fmt.Fprintf(&b, "## SCOUTING DATA\n\n")
	fmt.Fprintf(&b, "### Match Context\n")
	fmt.Fprintf(&b, "- Our Team: %s (%s)\n", ov.TeamAName, ov.TeamARegion)
	fmt.Fprintf(&b, "- Opponent: %s (%s)\n", ov.TeamBName, ov.TeamBRegion)
	fmt.Fprintf(&b, "- Opponent Matches Analyzed: %d (last %d days)\n", ov.MatchesAnalyzedTeamB, ov.AnalysisTimeWindowDays)
	fmt.Fprintf(&b, "- Data Source: %s\n\n", ov.DataSource)

	fmt.Fprintf(&b, "### Opponent Overview\n")
	fmt.Fprintf(&b, "- Overall Win Rate: %.1f%%\n", ov.OpponentWinRate)
	fmt.Fprintf(&b, "- Recent Form: %s (%s)\n", strings.Join(ov.OpponentRecentForm, ""), ov.OpponentFormSummary)
	h2h := ov.HeadToHeadRecord
	if h2h.MatchesPlayed > 0 {
		fmt.Fprintf(&b, "- Head-to-Head: %d-%d in %d matches\n", h2h.TeamAWins, h2h.TeamBWins, h2h.MatchesPlayed)
	} else {
		fmt.Fprintf(&b, "- Head-to-Head: no prior meetings in window\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "### Opponent's Best Maps\n")
	writeMapLines(&b, report.OpponentSnapshot.BestMaps)
	fmt.Fprintf(&b, "\n### Opponent's Worst Maps\n")
	writeMapLines(&b, report.OpponentSnapshot.WorstMaps)

	fmt.Fprintf(&b, "\n### Opponent's Key Agents\n")
	if len(report.OpponentSnapshot.MostPlayedAgents) == 0 {
		b.WriteString("- none recorded\n")
	}
	for _, a := range report.OpponentSnapshot.MostPlayedAgents {
		fmt.Fprintf(&b, "- %s: %d picks (%.1f%% of picks)\n", a.Agent, a.TimesPicked, a.PickRate)
	}

	fmt.Fprintf(&b, "\n### Opponent's Star Players\n")
	if len(report.OpponentSnapshot.StarPlayers) == 0 {
		b.WriteString("- none recorded\n")
	}
	for _, p := range report.OpponentSnapshot.StarPlayers {
		fmt.Fprintf(&b, "- %s: %.1f ACS, %.2f K/D, %.1f ADR (mostly %s)\n",
			p.Name, p.AvgACS, p.KDRatio, p.AvgADR, p.MostPlayedAgent)
	}

	fmt.Fprintf(&b, "\n### Identified Strengths\n")
	writeSignalLines(&b, report.KeyStrengths)
	fmt.Fprintf(&b, "\n### Identified Weaknesses\n")
	writeSignalLines(&b, report.ExploitableWeaknesses)

	fmt.Fprintf(&b, "\n### Preliminary Recommendations\n")
	if len(report.CoachRecommendations) == 0 {
		b.WriteString("- none\n")
	}
	for _, r := range report.CoachRecommendations {
		fmt.Fprintf(&b, "- [%s] %s: %s (%s confidence)\n", r.Type, r.Action, r.Reasoning, r.Confidence)
	}

	b.WriteString(`
## YOUR TASK

Write a strategic briefing covering:
1. How does this opponent want to win?
2. Where are they most vulnerable?
3. What is the biggest risk in this matchup?
4. Recommended game plan, including the map veto.`)

	return b.String()
}

func writeMapLines(b *strings.Builder, maps []models.MapRanking) {
	if len(maps) == 0 {
		b.WriteString("- none recorded\n")
		return
	}
	for _, m := range maps {
		fmt.Fprintf(b, "- %s: %.1f%% win rate (%s, avg round diff %+.1f)\n",
			m.Map, m.WinRate, m.Record, m.AvgRoundDiff)
	}
}

// signalLabel returns whichever of severity or exploitability the
// signal carries.
func signalLabel(s models.Signal) string {
	if s.Severity != "" {
		return s.Severity
	}
	return s.Exploitability
}

func writeSignalLines(b *strings.Builder, signals []models.Signal) {
	if len(signals) == 0 {
		b.WriteString("- none identified\n")
		return
	}
	for _, s := range signals {
		fmt.Fprintf(b, "- %s [%s]: %s (%s)\n", s.Category, signalLabel(s), s.Description, s.Metric)
	}
}
