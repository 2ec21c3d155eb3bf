package users

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/victorpuello/SISE/cmd/sisectl/internal/config"
	"github.com/victorpuello/SISE/pkg/sdk"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete <user-id>",
	Short: "Delete an account",
	Long:  `Deletes an account permanently. Prefer 'users deactivate' for routine offboarding.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cobraCmd.Context())

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid user ID %q: %w", args[0], err)
		}

		if !deleteForce {
			if cfg.NonInteractive {
				return fmt.Errorf("refusing to delete without confirmation; pass --force in non-interactive mode")
			}
			confirmed, err := pterm.DefaultInteractiveConfirm.
				WithDefaultValue(false).
				Show(fmt.Sprintf("Permanently delete user %d?", id))
			if err != nil {
				return fmt.Errorf("failed to read confirmation: %w", err)
			}
			if !confirmed {
				fmt.Println("Aborted")
				return nil
			}
		}

		siseClient, err := sdkClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		if err := siseClient.DeleteUser(ctx, id); err != nil {
			if sdk.IsForbidden(err) {
				return fmt.Errorf("deleting users requires administrator privileges")
			}
			return fmt.Errorf("failed to delete user %d: %w", id, err)
		}

		pterm.Success.Printf("User %d deleted\n", id)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteForce, "force", false, "Skip the confirmation prompt")
}
