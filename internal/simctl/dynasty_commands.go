package simctl

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nfl-analytics/dynasty-core/internal/cliui"
	"github.com/nfl-analytics/dynasty-core/internal/models"
)

// DynastyCmd creates the dynasty command group.
func DynastyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dynasty",
		Short: "Create and inspect dynasties",
	}
	cmd.AddCommand(DynastyCreateCmd())
	cmd.AddCommand(DynastyGetCmd())
	cmd.AddCommand(DynastyListCmd())
	return cmd
}

// DynastyCreateCmd creates the dynasty create command.
func DynastyCreateCmd() *cobra.Command {
	var displayName, ownerName, ownerUserID string
	var userTeamID int
	var startYear, startMonth, startDay int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new dynasty and its initial preseason state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return createDynasty(cmd, displayName, ownerName, ownerUserID, userTeamID, startYear, startMonth, startDay)
		},
	}
	cmd.Flags().StringVar(&displayName, "display-name", "", "Dynasty display name (required)")
	cmd.Flags().StringVar(&ownerName, "owner-name", "", "Owner display name (required)")
	cmd.Flags().StringVar(&ownerUserID, "owner-id", "", "Owning account's user id, a UUID (required)")
	cmd.Flags().IntVar(&userTeamID, "user-team-id", 0, "Team id the human controls; 0 for commissioner mode")
	cmd.Flags().IntVar(&startYear, "start-year", time.Now().Year(), "First season's year")
	cmd.Flags().IntVar(&startMonth, "start-month", 8, "First season's start month")
	cmd.Flags().IntVar(&startDay, "start-day", 1, "First season's start day")
	cmd.MarkFlagRequired("display-name")
	cmd.MarkFlagRequired("owner-name")
	cmd.MarkFlagRequired("owner-id")
	return cmd
}

func createDynasty(cmd *cobra.Command, displayName, ownerName, ownerUserIDStr string, userTeamID, startYear, startMonth, startDay int) error {
	ownerUserID, err := uuid.Parse(ownerUserIDStr)
	if err != nil {
		return fmt.Errorf("--owner-id must be a UUID: %w", err)
	}

	sess, err := newSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	dynasty := &models.Dynasty{
		ID:          uuid.New().String(),
		DisplayName: displayName,
		OwnerName:   ownerName,
		OwnerUserID: &ownerUserID,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	if userTeamID != 0 {
		dynasty.UserTeamID = &userTeamID
	}

	startDate := models.NewDate(startYear, startMonth, startDay)
	initial := &models.DynastyState{
		DynastyID:    dynasty.ID,
		Season:       startYear,
		CurrentYear:  startYear,
		CurrentDate:  startDate,
		CurrentPhase: models.Preseason,
	}

	ctx := cmd.Context()
	if err := sess.manager.CreateDynasty(ctx, dynasty, initial); err != nil {
		return fmt.Errorf("create dynasty: %w", err)
	}

	cliui.Success(fmt.Sprintf("✓ Created dynasty %s", dynasty.ID))
	cliui.Infof("  Display name: %s", dynasty.DisplayName)
	cliui.Infof("  Season:       %d, starting %s", startYear, startDate)
	return nil
}

// DynastyGetCmd creates the dynasty get command.
func DynastyGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <dynasty-id>",
		Short: "Show one dynasty's record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			dynasty, err := sess.manager.GetDynasty(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get dynasty: %w", err)
			}

			cliui.Header(dynasty.DisplayName)
			cliui.Infof("  ID:        %s", dynasty.ID)
			cliui.Infof("  Owner:     %s", dynasty.OwnerName)
			cliui.Infof("  Active:    %t", dynasty.IsActive)
			if dynasty.UserTeamID != nil {
				cliui.Infof("  User team: %d", *dynasty.UserTeamID)
			} else {
				cliui.Info("  User team: none (commissioner mode)")
			}
			return nil
		},
	}
}

// DynastyListCmd creates the dynasty list command.
func DynastyListCmd() *cobra.Command {
	var ownerUserID string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every active dynasty owned by a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			dynasties, err := sess.manager.ListDynastiesForOwner(cmd.Context(), ownerUserID)
			if err != nil {
				return fmt.Errorf("list dynasties: %w", err)
			}

			if len(dynasties) == 0 {
				cliui.Info("No dynasties found.")
				return nil
			}
			for _, d := range dynasties {
				cliui.Infof("%s  %-24s  owner=%s", d.ID, d.DisplayName, d.OwnerName)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&ownerUserID, "owner-id", "", "Owning account's user id, a UUID (required)")
	cmd.MarkFlagRequired("owner-id")
	return cmd
}
