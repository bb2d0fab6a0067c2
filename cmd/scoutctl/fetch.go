package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gridscout/scout-api/internal/grid"
)

var (
	fetchAPIURL string
	fetchAPIKey string
	fetchWindow int
	fetchOut    string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <team-a-id> <team-b-id>",
	Short: "Fetch a scouting data bundle from the GRID API",
	Args:  cobra.ExactArgs(2),
	RunE:  runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchAPIURL, "api-url", "https://api.grid.gg", "GRID API base URL")
	fetchCmd.Flags().StringVar(&fetchAPIKey, "api-key", "", "GRID API key (falls back to $GRID_API_KEY)")
	fetchCmd.Flags().IntVar(&fetchWindow, "window", 90, "time window in days")
	fetchCmd.Flags().StringVarP(&fetchOut, "out", "o", "", "output file (default <teamA>_vs_<teamB>.json)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	apiKey := fetchAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GRID_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("no API key: pass --api-key or set GRID_API_KEY")
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()

	client := grid.NewClient(grid.ClientConfig{
		BaseURL: fetchAPIURL,
		APIKey:  apiKey,
		Timeout: 30 * time.Second,
		Logger:  logger,
	})

	bundle, err := client.FetchScoutingData(cmd.Context(), args[0], args[1], fetchWindow)
	if err != nil {
		return fmt.Errorf("fetch scouting data: %w", err)
	}

	out := fetchOut
	if out == "" {
		out = fmt.Sprintf("%s_vs_%s.json", args[0], args[1])
	}
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bundle: %w", err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write bundle: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Wrote %s (%d + %d matches, %d head-to-head)\n",
		out, len(bundle.TeamA.Matches), len(bundle.TeamB.Matches), len(bundle.HeadToHead))
	return nil
}
