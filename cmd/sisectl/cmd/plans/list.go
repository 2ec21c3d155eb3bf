package plans

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
	listTeacherID int
	listSubjectID int
	listGroupID   int
	listState     string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List lesson plans",
	Long: `Lists lesson plans, optionally filtered by teacher, subject, group, or
workflow state (B = borrador, E = enviado, A = aprobado).`,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		siseClient, err := sdkClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		lessonPlans, err := siseClient.ListLessonPlans(ctx, sdk.ListLessonPlansOptions{
			TeacherID: listTeacherID,
			SubjectID: listSubjectID,
			GroupID:   listGroupID,
			State:     listState,
		})
		if err != nil {
			return fmt.Errorf("failed to list lesson plans: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTEACHER\tSUBJECT\tGROUP\tDATE\tTOPIC\tSTATE")

		for _, plan := range lessonPlans {
			fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%s\t%s\t%s\n",
				plan.ID, plan.TeacherID, plan.SubjectID, plan.GroupID,
				plan.Date, plan.Topic, sdk.PlanStateLabel(plan.State))
		}

		w.Flush()

		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&listTeacherID, "teacher", 0, "Filter by teacher ID")
	listCmd.Flags().IntVar(&listSubjectID, "subject", 0, "Filter by subject ID")
	listCmd.Flags().IntVar(&listGroupID, "group", 0, "Filter by group ID")
	listCmd.Flags().StringVar(&listState, "state", "", "Filter by workflow state (B, E, or A)")
}
