package observer

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
	listStudentID int
	listTypeID    int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List observer log entries",
	Long:  `Lists observer log entries, optionally filtered by student or observation type.`,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		siseClient, err := sdkClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		entries, err := siseClient.ListObservations(ctx, sdk.ListObservationsOptions{
			StudentID: listStudentID,
			TypeID:    listTypeID,
		})
		if err != nil {
			return fmt.Errorf("failed to list observer entries: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTUDENT\tTYPE\tDATE\tDESCRIPTION")

		for _, entry := range entries {
			fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%s\n",
				entry.ID, entry.StudentID, entry.TypeID, entry.Date, entry.Description)
		}

		w.Flush()

		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&listStudentID, "student", 0, "Filter by student ID")
	listCmd.Flags().IntVar(&listTypeID, "type", 0, "Filter by observation type ID")
}
