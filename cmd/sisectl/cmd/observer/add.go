package observer

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/victorpuello/SISE/pkg/sdk"
)

var (
	addStudentID   int
	addTypeID      int
	addDate        string
	addDescription string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an entry to a student's observer log",
	Long: `Adds an observation to a student's observer log. The date defaults
to today.`,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		siseClient, err := sdkClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		if addDate == "" {
			addDate = time.Now().Format("2006-01-02")
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		entry, err := siseClient.CreateObservation(ctx, sdk.ObservationInput{
			StudentID:   addStudentID,
			TypeID:      addTypeID,
			Date:        addDate,
			Description: addDescription,
		})
		if err != nil {
			if sdk.IsForbidden(err) {
				return fmt.Errorf("adding observer entries requires a teaching or administrative role")
			}
			return fmt.Errorf("failed to add observer entry: %w", err)
		}

		pterm.Success.Printf("Added observer entry %d for student %d (%s)\n",
			entry.ID, entry.StudentID, entry.Date)
		return nil
	},
}

func init() {
	addCmd.Flags().IntVar(&addStudentID, "student", 0, "Student ID (required)")
	addCmd.Flags().IntVar(&addTypeID, "type", 0, "Observation type ID (required)")
	addCmd.Flags().StringVar(&addDate, "date", "", "Date (YYYY-MM-DD, defaults to today)")
	addCmd.Flags().StringVar(&addDescription, "description", "", "Observation text (required)")
	addCmd.MarkFlagRequired("student")
	addCmd.MarkFlagRequired("type")
	addCmd.MarkFlagRequired("description")
}
