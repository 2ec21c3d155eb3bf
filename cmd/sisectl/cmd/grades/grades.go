package grades

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/victorpuello/SISE/cmd/sisectl/internal/config"
	"github.com/victorpuello/SISE/pkg/sdk"
)

// GradesCmd is the parent command for grade operations
var GradesCmd = &cobra.Command{
	Use:   "grades",
	Short: "Manage grades",
	Long:  `Commands for recording and reviewing grades per subject and period.`,
}

func init() {
	GradesCmd.AddCommand(listCmd)
	GradesCmd.AddCommand(setCmd)
}

func sdkClient(ctx context.Context) (*sdk.Client, error) {
	cfg := config.MustFromContext(ctx)
	return cfg.ClientProvider.SDKClient()
}
