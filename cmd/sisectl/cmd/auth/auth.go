package auth

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/victorpuello/SISE/cmd/sisectl/internal/config"
	"github.com/victorpuello/SISE/pkg/sdk"
)

// AuthCmd is the parent command for auth operations
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication",
	Long:  `Commands for logging in and out of SISE and inspecting the current session.`,
}

func init() {
	AuthCmd.AddCommand(loginCmd)
	AuthCmd.AddCommand(logoutCmd)
	AuthCmd.AddCommand(statusCmd)
	AuthCmd.AddCommand(passwdCmd)
	AuthCmd.AddCommand(exportCmd)
}

// sessionManager builds an initialized session manager from the shared
// provider. The returned manager has already attempted to restore any
// stored session.
func sessionManager(ctx context.Context) (*sdk.SessionManager, error) {
	cfg := config.MustFromContext(ctx)
	manager, err := cfg.ClientProvider.SessionManager()
	if err != nil {
		return nil, err
	}
	if err := manager.Initialize(ctx); err != nil {
		return nil, err
	}
	return manager, nil
}
