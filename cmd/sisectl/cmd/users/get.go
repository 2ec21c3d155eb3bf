package users

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <user-id>",
	Short: "Show a single user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid user ID %q: %w", args[0], err)
		}

		siseClient, err := sdkClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		account, err := siseClient.GetUser(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get user %d: %w", id, err)
		}

		active := "yes"
		if !account.IsActive {
			active = "no"
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID:\t%d\n", account.ID)
		fmt.Fprintf(w, "Name:\t%s %s\n", account.GivenName, account.FamilyName)
		fmt.Fprintf(w, "Email:\t%s\n", account.Email)
		fmt.Fprintf(w, "Role:\t%s\n", account.Role)
		fmt.Fprintf(w, "Active:\t%s\n", active)
		w.Flush()

		return nil
	},
}
