package plans

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/victorpuello/SISE/cmd/sisectl/internal/config"
	"github.com/victorpuello/SISE/pkg/sdk"
)

// PlansCmd is the parent command for lesson plan operations
var PlansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Manage lesson plans",
	Long:  `Commands for reviewing lesson plans and their approval workflow.`,
}

func init() {
	PlansCmd.AddCommand(listCmd)
	PlansCmd.AddCommand(showCmd)
}

func sdkClient(ctx context.Context) (*sdk.Client, error) {
	cfg := config.MustFromContext(ctx)
	return cfg.ClientProvider.SDKClient()
}
