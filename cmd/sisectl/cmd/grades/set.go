package grades

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/victorpuello/SISE/pkg/sdk"
)

var (
	setStudentID int
	setSubjectID int
	setPeriodID  int
	setScore     float64
	setNotes     string
	setGradeID   int
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Record or update a grade",
	Long: `Records a grade for a student in one subject and period, or replaces
an existing grade when --id is given. Scores range from 0.0 to 10.0.`,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		siseClient, err := sdkClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		input := sdk.GradeInput{
			StudentID: setStudentID,
			SubjectID: setSubjectID,
			PeriodID:  setPeriodID,
			Score:     setScore,
			Notes:     setNotes,
		}

		var grade *sdk.Grade
		if setGradeID > 0 {
			grade, err = siseClient.UpdateGrade(ctx, setGradeID, input)
		} else {
			grade, err = siseClient.CreateGrade(ctx, input)
		}
		if err != nil {
			if sdk.IsForbidden(err) {
				return fmt.Errorf("recording grades requires a teaching or administrative role")
			}
			return fmt.Errorf("failed to record grade: %w", err)
		}

		pterm.Success.Printf("Grade %d: student %d scored %.1f in subject %d (period %d)\n",
			grade.ID, grade.StudentID, grade.Score, grade.SubjectID, grade.PeriodID)
		return nil
	},
}

func init() {
	setCmd.Flags().IntVar(&setStudentID, "student", 0, "Student ID (required)")
	setCmd.Flags().IntVar(&setSubjectID, "subject", 0, "Subject ID (required)")
	setCmd.Flags().IntVar(&setPeriodID, "period", 0, "Academic period ID (required)")
	setCmd.Flags().Float64Var(&setScore, "score", 0, "Score from 0.0 to 10.0 (required)")
	setCmd.Flags().StringVar(&setNotes, "notes", "", "Optional note attached to the grade")
	setCmd.Flags().IntVar(&setGradeID, "id", 0, "Existing grade ID to replace instead of creating")
	setCmd.MarkFlagRequired("student")
	setCmd.MarkFlagRequired("subject")
	setCmd.MarkFlagRequired("period")
	setCmd.MarkFlagRequired("score")
}
