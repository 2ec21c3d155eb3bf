package attendance

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/victorpuello/SISE/cmd/sisectl/internal/config"
	"github.com/victorpuello/SISE/pkg/sdk"
)

// AttendanceCmd is the parent command for attendance operations
var AttendanceCmd = &cobra.Command{
	Use:   "attendance",
	Short: "Manage attendance records",
	Long:  `Commands for recording and reviewing daily attendance.`,
}

func init() {
	AttendanceCmd.AddCommand(listCmd)
	AttendanceCmd.AddCommand(recordCmd)
}

func sdkClient(ctx context.Context) (*sdk.Client, error) {
	cfg := config.MustFromContext(ctx)
	return cfg.ClientProvider.SDKClient()
}
