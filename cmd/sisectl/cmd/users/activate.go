package users

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/victorpuello/SISE/pkg/sdk"
)

var activateCmd = &cobra.Command{
	Use:   "activate <user-id>",
	Short: "Re-enable a deactivated account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		return setUserActive(cobraCmd, args[0], true)
	},
}

var deactivateCmd = &cobra.Command{
	Use:   "deactivate <user-id>",
	Short: "Disable an account without deleting it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		return setUserActive(cobraCmd, args[0], false)
	},
}

func setUserActive(cobraCmd *cobra.Command, rawID string, active bool) error {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return fmt.Errorf("invalid user ID %q: %w", rawID, err)
	}

	siseClient, err := sdkClient(cobraCmd.Context())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
	defer cancel()

	if active {
		err = siseClient.ActivateUser(ctx, id)
	} else {
		err = siseClient.DeactivateUser(ctx, id)
	}
	if err != nil {
		if sdk.IsForbidden(err) {
			return fmt.Errorf("changing account status requires administrator privileges")
		}
		return fmt.Errorf("failed to update user %d: %w", id, err)
	}

	if active {
		pterm.Success.Printf("User %d activated\n", id)
	} else {
		pterm.Success.Printf("User %d deactivated\n", id)
	}
	return nil
}
