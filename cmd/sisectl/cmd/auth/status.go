package auth

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/victorpuello/SISE/cmd/sisectl/internal/config"
	"github.com/victorpuello/SISE/pkg/sdk"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		manager, err := sessionManager(cmd.Context())
		if err != nil {
			return err
		}

		pterm.DefaultSection.Println("Authentication Status")

		if manager.State() != sdk.StateAuthenticated {
			pterm.Info.Println("Not logged in")
			fmt.Println("Run `sisectl auth login` to authenticate.")
			return nil
		}

		session := manager.Current()
		pterm.Info.Printf("Logged in to %s\n", cfg.ServerURL)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE")
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", session.UserID, session.DisplayName(), session.Email, session.Role)
		w.Flush()

		return nil
	},
}
