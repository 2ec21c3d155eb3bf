package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/victorpuello/SISE/pkg/sdk"
)

var (
	recordStudentID int
	recordDate      string
	recordStatus    string
	recordNotes     string
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record attendance for a student",
	Long: `Records one student's attendance for one day.

Status codes: P (presente), A (ausente), T (tarde), J (justificado).
The date defaults to today.`,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		siseClient, err := sdkClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		if recordDate == "" {
			recordDate = time.Now().Format("2006-01-02")
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		record, err := siseClient.RecordAttendance(ctx, sdk.RecordAttendanceInput{
			StudentID: recordStudentID,
			Date:      recordDate,
			Status:    recordStatus,
			Notes:     recordNotes,
		})
		if err != nil {
			if sdk.IsForbidden(err) {
				return fmt.Errorf("recording attendance requires a teaching or administrative role")
			}
			return fmt.Errorf("failed to record attendance: %w", err)
		}

		pterm.Success.Printf("Recorded %s for student %d on %s\n",
			sdk.AttendanceLabel(record.Status), record.StudentID, record.Date)
		return nil
	},
}

func init() {
	recordCmd.Flags().IntVar(&recordStudentID, "student", 0, "Student ID (required)")
	recordCmd.Flags().StringVar(&recordDate, "date", "", "Date (YYYY-MM-DD, defaults to today)")
	recordCmd.Flags().StringVar(&recordStatus, "status", "", "Status code: P, A, T, or J (required)")
	recordCmd.Flags().StringVar(&recordNotes, "notes", "", "Optional note attached to the record")
	recordCmd.MarkFlagRequired("student")
	recordCmd.MarkFlagRequired("status")
}
