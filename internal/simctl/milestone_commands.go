package simctl

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nfl-analytics/dynasty-core/internal/cliui"
)

// MilestoneCmd creates the milestone command group: the in-process
// counterpart to SimulationHandler's milestone routes.
func MilestoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "milestone",
		Short: "Answer or discard a dynasty's pending interactive milestone",
	}
	cmd.AddCommand(milestoneResolveCmd())
	cmd.AddCommand(milestoneCancelCmd())
	return cmd
}

func milestoneResolveCmd() *cobra.Command {
	var dynastyID, message string
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Answer the pending milestone",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			if err := sess.manager.ResolveMilestone(cmd.Context(), dynastyID, message); err != nil {
				return fmt.Errorf("resolve milestone: %w", err)
			}
			cliui.Success("✓ Milestone resolved")
			return nil
		},
	}
	cmd.Flags().StringVar(&dynastyID, "dynasty", "", "Dynasty id (required)")
	cmd.Flags().StringVar(&message, "message", "", "The decision to record (required)")
	cmd.MarkFlagRequired("dynasty")
	cmd.MarkFlagRequired("message")
	return cmd
}

func milestoneCancelCmd() *cobra.Command {
	var dynastyID string
	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Discard the pending milestone without answering it",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			if err := sess.manager.CancelMilestone(cmd.Context(), dynastyID); err != nil {
				return fmt.Errorf("cancel milestone: %w", err)
			}
			cliui.Success("✓ Pending milestone cancelled")
			return nil
		},
	}
	cmd.Flags().StringVar(&dynastyID, "dynasty", "", "Dynasty id (required)")
	cmd.MarkFlagRequired("dynasty")
	return cmd
}
