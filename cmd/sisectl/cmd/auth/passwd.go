package auth

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/victorpuello/SISE/cmd/sisectl/internal/config"
	"github.com/victorpuello/SISE/pkg/sdk"
)

var (
	passwdOld string
	passwdNew string
)

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change the password of the logged-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		manager, err := sessionManager(cmd.Context())
		if err != nil {
			return err
		}

		if passwdOld == "" || passwdNew == "" {
			if cfg.NonInteractive {
				return fmt.Errorf("both passwords are required in non-interactive mode (use --old-password and --new-password)")
			}
			var err error
			if passwdOld == "" {
				passwdOld, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Current password")
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
			}
			if passwdNew == "" {
				passwdNew, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("New password")
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
			}
		}

		err = manager.ChangePassword(cmd.Context(), passwdOld, passwdNew)
		if err != nil {
			if sdk.IsInvalidCredentials(err) {
				return fmt.Errorf("password change rejected: current password is incorrect")
			}
			return fmt.Errorf("failed to change password: %w", err)
		}

		pterm.Success.Println("Password changed")
		return nil
	},
}

func init() {
	passwdCmd.Flags().StringVar(&passwdOld, "old-password", "", "Current password (prompted if omitted)")
	passwdCmd.Flags().StringVar(&passwdNew, "new-password", "", "New password, minimum 8 characters (prompted if omitted)")
}
