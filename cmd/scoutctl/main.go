// scoutctl is the offline companion to the scouting API: fetch a raw
// data bundle once, then rebuild and inspect reports from it without
// touching the network again.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scoutctl",
	Short: "VALORANT opponent scouting tool",
	Long:  "Fetch GRID match data and build opponent scouting reports from the command line.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(reportCmd)
}
