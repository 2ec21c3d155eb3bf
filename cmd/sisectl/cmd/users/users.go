package users

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/victorpuello/SISE/cmd/sisectl/internal/config"
	"github.com/victorpuello/SISE/pkg/sdk"
)

// UsersCmd is the parent command for user administration
var UsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage SISE accounts",
	Long:  `Commands for listing, creating, and administering user accounts.`,
}

func init() {
	UsersCmd.AddCommand(listCmd)
	UsersCmd.AddCommand(getCmd)
	UsersCmd.AddCommand(createCmd)
	UsersCmd.AddCommand(activateCmd)
	UsersCmd.AddCommand(deactivateCmd)
	UsersCmd.AddCommand(passwordCmd)
	UsersCmd.AddCommand(deleteCmd)
	UsersCmd.AddCommand(rolesCmd)
}

func sdkClient(ctx context.Context) (*sdk.Client, error) {
	cfg := config.MustFromContext(ctx)
	return cfg.ClientProvider.SDKClient()
}
