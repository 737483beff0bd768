package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nfl-analytics/dynasty-core/internal/cliui"
	"github.com/nfl-analytics/dynasty-core/internal/simctl"
)

// rootCmd is the root command for the simctl CLI: the in-process
// counterpart to cmd/api's hostapi.Manager, driving the same
// internal/controller.Controller without an HTTP hop.
var rootCmd = &cobra.Command{
	Use:   "simctl",
	Short: "NFL dynasty season-cycle control CLI",
	Long: "simctl drives a dynasty's season cycle directly against the database,\n" +
		"without going through the HTTP API — useful for local testing and for\n" +
		"commissioner-mode dynasties with no human team to interact with.",
}

func init() {
	rootCmd.AddCommand(simctl.DynastyCmd())
	rootCmd.AddCommand(simctl.AdvanceCmd())
	rootCmd.AddCommand(simctl.MilestoneCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cliui.Error(fmt.Sprintf("error: %v", err))
		os.Exit(1)
	}
}
