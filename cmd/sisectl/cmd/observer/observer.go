package observer

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/victorpuello/SISE/cmd/sisectl/internal/config"
	"github.com/victorpuello/SISE/pkg/sdk"
)

// ObserverCmd is the parent command for student observer log operations
var ObserverCmd = &cobra.Command{
	Use:   "observer",
	Short: "Manage student observer logs",
	Long:  `Commands for reviewing and adding entries to student observer logs.`,
}

func init() {
	ObserverCmd.AddCommand(listCmd)
	ObserverCmd.AddCommand(addCmd)
}

func sdkClient(ctx context.Context) (*sdk.Client, error) {
	cfg := config.MustFromContext(ctx)
	return cfg.ClientProvider.SDKClient()
}
