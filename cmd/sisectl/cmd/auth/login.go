package auth

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/victorpuello/SISE/cmd/sisectl/internal/config"
	"github.com/victorpuello/SISE/pkg/sdk"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with SISE",
	Long: `Authenticates with the SISE server using email and password.

Credentials can be passed via flags, or entered interactively when the
flags are omitted. On success the session token is stored in
~/.sise/session.json and reused by every other sisectl command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		if loginEmail == "" || loginPassword == "" {
			if cfg.NonInteractive {
				return fmt.Errorf("email and password are required in non-interactive mode (use --email and --password)")
			}
			var err error
			if loginEmail == "" {
				loginEmail, err = pterm.DefaultInteractiveTextInput.Show("Email")
				if err != nil {
					return fmt.Errorf("failed to read email: %w", err)
				}
			}
			if loginPassword == "" {
				loginPassword, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
			}
		}

		manager, err := sessionManager(cmd.Context())
		if err != nil {
			return err
		}

		// Surface an unreachable server before asking it to authenticate.
		if err := manager.Client().Health(cmd.Context()); err != nil && sdk.IsUnavailable(err) {
			pterm.Warning.Printf("Server %s is not responding; attempting login anyway\n", cfg.ServerURL)
		}

		session, err := manager.Login(cmd.Context(), loginEmail, loginPassword)
		if err != nil {
			if sdk.IsInvalidCredentials(err) {
				return fmt.Errorf("login failed: invalid email or password")
			}
			return fmt.Errorf("login failed: %w", err)
		}

		fmt.Println("------------------------------------------------------------")
		pterm.Success.Println("Login successful!")
		fmt.Printf("Authenticated as: %s (%s)\n", session.DisplayName(), session.Email)
		fmt.Printf("Role: %s\n", session.Role)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (prompted if omitted)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted if omitted)")
}
