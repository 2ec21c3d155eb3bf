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

var (
	userPasswordOld string
	userPasswordNew string
)

var passwordCmd = &cobra.Command{
	Use:   "password <user-id>",
	Short: "Change the password of an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid user ID %q: %w", args[0], err)
		}

		siseClient, err := sdkClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		err = siseClient.ChangeUserPassword(ctx, id, sdk.ChangePasswordInput{
			OldPassword:     userPasswordOld,
			NewPassword:     userPasswordNew,
			ConfirmPassword: userPasswordNew,
		})
		if err != nil {
			return fmt.Errorf("failed to change password for user %d: %w", id, err)
		}

		pterm.Success.Printf("Password updated for user %d\n", id)
		return nil
	},
}

func init() {
	passwordCmd.Flags().StringVar(&userPasswordOld, "old-password", "", "Current password (required)")
	passwordCmd.Flags().StringVar(&userPasswordNew, "new-password", "", "New password, minimum 8 characters (required)")
	passwordCmd.MarkFlagRequired("old-password")
	passwordCmd.MarkFlagRequired("new-password")
}
