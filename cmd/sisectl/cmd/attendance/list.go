package attendance

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
	listDate      string
	listGroupID   int
	listStudentID int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List attendance records",
	Long:  `Lists attendance records, optionally filtered by date, group, or student.`,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		siseClient, err := sdkClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		records, err := siseClient.ListAttendance(ctx, sdk.ListAttendanceOptions{
			Date:      listDate,
			GroupID:   listGroupID,
			StudentID: listStudentID,
		})
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTUDENT\tDATE\tSTATUS\tNOTES")

		for _, record := range records {
			notes := record.Notes
			if notes == "" {
				notes = "-"
			}
			fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n",
				record.ID, record.StudentID, record.Date, sdk.AttendanceLabel(record.Status), notes)
		}

		w.Flush()

		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listDate, "date", "", "Filter by date (YYYY-MM-DD)")
	listCmd.Flags().IntVar(&listGroupID, "group", 0, "Filter by group ID")
	listCmd.Flags().IntVar(&listStudentID, "student", 0, "Filter by student ID")
}
