package simctl

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nfl-analytics/dynasty-core/internal/cliui"
	"github.com/nfl-analytics/dynasty-core/internal/models"
)

// AdvanceCmd creates the advance command group: the in-process
// counterpart to SimulationHandler's HTTP routes.
func AdvanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "advance",
		Short: "Drive a dynasty's season cycle forward",
	}
	cmd.AddCommand(advanceDayCmd())
	cmd.AddCommand(advanceWeekCmd())
	cmd.AddCommand(advancePhaseEndCmd())
	cmd.AddCommand(advanceSkipToNewSeasonCmd())
	return cmd
}

func dynastyAndSeasonFlags(cmd *cobra.Command, dynastyID *string, season *int) {
	cmd.Flags().StringVar(dynastyID, "dynasty", "", "Dynasty id (required)")
	cmd.Flags().IntVar(season, "season", 0, "Season year (required)")
	cmd.MarkFlagRequired("dynasty")
	cmd.MarkFlagRequired("season")
}

func advanceDayCmd() *cobra.Command {
	var dynastyID string
	var season int
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Advance the calendar by one day",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			result, err := sess.manager.AdvanceDay(cmd.Context(), dynastyID, season)
			if err != nil {
				return fmt.Errorf("advance day: %w", err)
			}
			printDayResult(result)
			return nil
		},
	}
	dynastyAndSeasonFlags(cmd, &dynastyID, &season)
	return cmd
}

func advanceWeekCmd() *cobra.Command {
	var dynastyID string
	var season int
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Advance the calendar by up to seven days",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			result, err := sess.manager.AdvanceWeek(cmd.Context(), dynastyID, season)
			if err != nil {
				return fmt.Errorf("advance week: %w", err)
			}
			cliui.Header(fmt.Sprintf("Week %s .. %s", result.StartDate, result.EndDate))
			for _, d := range result.Days {
				printDayResult(d)
			}
			if result.Paused() {
				cliui.Error("Paused for an interactive milestone.")
			}
			return nil
		},
	}
	dynastyAndSeasonFlags(cmd, &dynastyID, &season)
	return cmd
}

func advancePhaseEndCmd() *cobra.Command {
	var dynastyID string
	var season int
	cmd := &cobra.Command{
		Use:   "phase-end",
		Short: "Run forward to the end of the current phase or the next milestone",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			result, err := sess.manager.AdvanceToPhaseEnd(cmd.Context(), dynastyID, season)
			if err != nil {
				return fmt.Errorf("advance to phase end: %w", err)
			}
			printPhaseResult(result)
			return nil
		},
	}
	dynastyAndSeasonFlags(cmd, &dynastyID, &season)
	return cmd
}

func advanceSkipToNewSeasonCmd() *cobra.Command {
	var dynastyID string
	var season int
	cmd := &cobra.Command{
		Use:   "skip-to-new-season",
		Short: "Run all the way into next season's preseason",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			result, err := sess.manager.SkipToNewSeason(cmd.Context(), dynastyID, season)
			if err != nil {
				return fmt.Errorf("skip to new season: %w", err)
			}
			printPhaseResult(result)
			return nil
		},
	}
	dynastyAndSeasonFlags(cmd, &dynastyID, &season)
	return cmd
}

func printDayResult(d models.DayResult) {
	cliui.Infof("%s  %-14s games=%d events=%d", d.Date, d.Phase, len(d.GamesPlayed), len(d.EventsExecuted))
	for _, g := range d.GamesPlayed {
		cliui.Dimf("    %s  home %d - %d away (winner %d)", g.GameID, g.HomeScore, g.AwayScore, g.Winner())
	}
	if d.Paused() {
		cliui.Error(fmt.Sprintf("  Paused: %s", *d.PendingMilestone))
	}
}

func printPhaseResult(p models.PhaseResult) {
	cliui.Header(fmt.Sprintf("%s -> %s", p.StartPhase, p.EndPhase))
	for _, d := range p.Days {
		printDayResult(d)
	}
	if p.Paused() {
		cliui.Error("Paused for an interactive milestone.")
		return
	}
	cliui.Successf("✓ Reached %s on %s", p.EndPhase, p.PhaseEndDate)
}
