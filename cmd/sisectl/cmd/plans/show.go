package plans

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/victorpuello/SISE/pkg/sdk"
)

var showCmd = &cobra.Command{
	Use:   "show <plan-id>",
	Short: "Show a lesson plan in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid plan ID %q: %w", args[0], err)
		}

		siseClient, err := sdkClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		plan, err := siseClient.GetLessonPlan(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get lesson plan %d: %w", id, err)
		}

		pterm.DefaultSection.Printf("Lesson Plan %d - %s\n", plan.ID, plan.Topic)
		pterm.Info.Printf("State: %s | Teacher: %d | Subject: %d | Group: %d | Date: %s\n",
			sdk.PlanStateLabel(plan.State), plan.TeacherID, plan.SubjectID, plan.GroupID, plan.Date)

		printSection := func(title, body string) {
			if body == "" {
				return
			}
			fmt.Printf("\n%s:\n%s\n", title, body)
		}
		printSection("Objectives", plan.Objectives)
		printSection("Skills", plan.Skills)
		printSection("Activities", plan.Activities)
		printSection("Resources", plan.Resources)
		printSection("Assessment", plan.Assessment)

		return nil
	},
}
