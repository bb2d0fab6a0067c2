package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gridscout/scout-api/internal/logic"
	"github.com/gridscout/scout-api/internal/models"
)

var reportJSON bool

var reportCmd = &cobra.Command{
	Use:   "report <bundle.json>",
	Short: "Build a scouting report from a fetched data bundle",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "print the full report as JSON")
}

func runReport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read bundle: %w", err)
	}
	var bundle models.ScoutingBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return fmt.Errorf("decode bundle: %w", err)
	}

	assembler := logic.NewReportAssembler(zap.NewNop())
	report, err := assembler.BuildReport(cmd.Context(), &bundle)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}

	if reportJSON {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	printReport(report)
	return nil
}

func printReport(report *models.Report) {
	ov := report.MatchOverview

	fmt.Fprintf(os.Stdout, "\n=== Scouting Report %s ===\n\n", report.ReportID)
	fmt.Fprintf(os.Stdout, "  Matchup       : %s vs %s\n", ov.TeamAName, ov.TeamBName)
	fmt.Fprintf(os.Stdout, "  Window        : last %d days\n", ov.AnalysisTimeWindowDays)
	fmt.Fprintf(os.Stdout, "  Opponent WR   : %.1f%%\n", ov.OpponentWinRate)
	fmt.Fprintf(os.Stdout, "  Recent form   : %s (%s)\n", strings.Join(ov.OpponentRecentForm, ""), ov.OpponentFormSummary)
	if ov.HeadToHeadRecord.MatchesPlayed > 0 {
		fmt.Fprintf(os.Stdout, "  Head-to-head  : %d-%d\n", ov.HeadToHeadRecord.TeamAWins, ov.HeadToHeadRecord.TeamBWins)
	}

	fmt.Fprintf(os.Stdout, "\n--- Opponent Maps ---\n\n")
	mt := newTable()
	mt.Header("MAP", "WIN%", "RECORD", "AVG RD DIFF", "")
	for _, m := range report.OpponentSnapshot.BestMaps {
		mt.Append(m.Map, fmt.Sprintf("%.1f%%", m.WinRate), m.Record, fmt.Sprintf("%+.1f", m.AvgRoundDiff), "best")
	}
	for _, m := range report.OpponentSnapshot.WorstMaps {
		mt.Append(m.Map, fmt.Sprintf("%.1f%%", m.WinRate), m.Record, fmt.Sprintf("%+.1f", m.AvgRoundDiff), "worst")
	}
	mt.Render()

	if len(report.OpponentSnapshot.StarPlayers) > 0 {
		fmt.Fprintf(os.Stdout, "\n--- Star Players ---\n\n")
		pt := newTable()
		pt.Header("NAME", "ACS", "K/D", "ADR", "AGENT")
		for _, p := range report.OpponentSnapshot.StarPlayers {
			pt.Append(p.Name,
				fmt.Sprintf("%.1f", p.AvgACS),
				fmt.Sprintf("%.2f", p.KDRatio),
				fmt.Sprintf("%.1f", p.AvgADR),
				p.MostPlayedAgent)
		}
		pt.Render()
	}

	fmt.Fprintf(os.Stdout, "\n--- Strengths ---\n\n")
	printSignals(report.KeyStrengths)
	fmt.Fprintf(os.Stdout, "\n--- Weaknesses ---\n\n")
	printSignals(report.ExploitableWeaknesses)

	fmt.Fprintf(os.Stdout, "\n--- Recommendations ---\n\n")
	if len(report.CoachRecommendations) == 0 {
		fmt.Fprintln(os.Stdout, "  none")
	}
	for i, r := range report.CoachRecommendations {
		fmt.Fprintf(os.Stdout, "  %d. [%s] %s: %s (%s confidence)\n", i+1, r.Type, r.Action, r.Reasoning, r.Confidence)
	}
	fmt.Fprintln(os.Stdout)
}

func printSignals(signals []models.Signal) {
	if len(signals) == 0 {
		fmt.Fprintln(os.Stdout, "  none identified")
		return
	}
	for _, s := range signals {
		label := s.Severity
		if label == "" {
			label = s.Exploitability
		}
		fmt.Fprintf(os.Stdout, "  [%s] %s: %s (%s)\n", label, s.Category, s.Description, s.Metric)
	}
}

func newTable() *tablewriter.Table {
	return tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}
