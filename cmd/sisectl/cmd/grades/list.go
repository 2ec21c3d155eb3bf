package grades

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
	listSubjectID int
	listPeriodID  int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List grades",
	Long:  `Lists grades, optionally filtered by student, subject, or period.`,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		siseClient, err := sdkClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		grades, err := siseClient.ListGrades(ctx, sdk.ListGradesOptions{
			StudentID: listStudentID,
			SubjectID: listSubjectID,
			PeriodID:  listPeriodID,
		})
		if err != nil {
			return fmt.Errorf("failed to list grades: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTUDENT\tSUBJECT\tPERIOD\tSCORE\tNOTES")

		for _, grade := range grades {
			notes := grade.Notes
			if notes == "" {
				notes = "-"
			}
			fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%.1f\t%s\n",
				grade.ID, grade.StudentID, grade.SubjectID, grade.PeriodID, grade.Score, notes)
		}

		w.Flush()

		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&listStudentID, "student", 0, "Filter by student ID")
	listCmd.Flags().IntVar(&listSubjectID, "subject", 0, "Filter by subject ID")
	listCmd.Flags().IntVar(&listPeriodID, "period", 0, "Filter by academic period ID")
}
