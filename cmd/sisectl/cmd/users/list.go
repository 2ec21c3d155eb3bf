package users

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/victorpuello/SISE/pkg/sdk"
)

var (
	listRole   string
	listSearch string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List user accounts",
	Long:  `Lists user accounts, optionally filtered by role or free-text search.`,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		siseClient, err := sdkClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		accounts, err := siseClient.ListUsers(ctx, sdk.ListUsersOptions{
			Role:   listRole,
			Search: listSearch,
		})
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tACTIVE")

		for _, account := range accounts {
			active := "yes"
			if !account.IsActive {
				active = "no"
			}
			fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\t%s\n",
				account.ID, account.GivenName, account.FamilyName, account.Email, account.Role, active)
		}

		w.Flush()

		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listRole, "role", "", "Filter by role (e.g. Docente, Estudiante)")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Filter by name or email substring")
}
