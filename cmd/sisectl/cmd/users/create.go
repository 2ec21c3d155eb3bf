package users

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/victorpuello/SISE/pkg/sdk"
)

var (
	createGivenName  string
	createFamilyName string
	createEmail      string
	createPassword   string
	createRole       string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user account",
	Long: `Creates a new user account. Requires administrator privileges.

Example:
  sisectl users create --nombre Ana --apellido Diaz --email ana@colegio.edu.co \
    --password secreto123 --role docente`,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		siseClient, err := sdkClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		account, err := siseClient.CreateUser(ctx, sdk.CreateUserInput{
			GivenName:  createGivenName,
			FamilyName: createFamilyName,
			Email:      createEmail,
			Password:   createPassword,
			Role:       createRole,
		})
		if err != nil {
			if sdk.IsForbidden(err) {
				return fmt.Errorf("creating users requires administrator privileges")
			}
			return fmt.Errorf("failed to create user: %w", err)
		}

		pterm.Success.Printf("Created user %d: %s %s (%s)\n",
			account.ID, account.GivenName, account.FamilyName, account.Role)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createGivenName, "nombre", "", "Given name (required)")
	createCmd.Flags().StringVar(&createFamilyName, "apellido", "", "Family name (required)")
	createCmd.Flags().StringVar(&createEmail, "email", "", "Email address (required)")
	createCmd.Flags().StringVar(&createPassword, "password", "", "Initial password, minimum 8 characters (required)")
	createCmd.Flags().StringVar(&createRole, "role", "", "Role token, e.g. docente or estudiante (required)")
	createCmd.MarkFlagRequired("nombre")
	createCmd.MarkFlagRequired("apellido")
	createCmd.MarkFlagRequired("email")
	createCmd.MarkFlagRequired("password")
	createCmd.MarkFlagRequired("role")
}
