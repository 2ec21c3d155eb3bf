package auth

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out from SISE",
	Long: `Invalidates the server-side token and removes the stored session.

The local session is cleared even when the server cannot be reached, so
logout always leaves the CLI in a signed-out state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := sessionManager(cmd.Context())
		if err != nil {
			return err
		}

		if err := manager.Logout(cmd.Context()); err != nil {
			return fmt.Errorf("failed to log out: %w", err)
		}

		fmt.Println("Logged out successfully")
		return nil
	},
}
