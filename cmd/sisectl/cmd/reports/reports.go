package reports

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/victorpuello/SISE/cmd/sisectl/internal/config"
	"github.com/victorpuello/SISE/pkg/sdk"
)

var (
	filterGroupID   int
	filterStudentID int
	filterPeriodID  int
	filterFrom      string
	filterTo        string
)

// ReportsCmd is the parent command for institutional reports
var ReportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Generate institutional reports",
	Long: `Commands for fetching server-side reports. Output is the raw report
document as indented JSON, suitable for piping into jq.`,
}

func init() {
	ReportsCmd.PersistentFlags().IntVar(&filterGroupID, "group", 0, "Filter by group ID")
	ReportsCmd.PersistentFlags().IntVar(&filterStudentID, "student", 0, "Filter by student ID")
	ReportsCmd.PersistentFlags().IntVar(&filterPeriodID, "period", 0, "Filter by academic period ID")
	ReportsCmd.PersistentFlags().StringVar(&filterFrom, "from", "", "Start date (YYYY-MM-DD)")
	ReportsCmd.PersistentFlags().StringVar(&filterTo, "to", "", "End date (YYYY-MM-DD)")

	ReportsCmd.AddCommand(performanceCmd)
	ReportsCmd.AddCommand(attendanceCmd)
	ReportsCmd.AddCommand(observerCmd)
	ReportsCmd.AddCommand(comparativeCmd)
}

type reportFunc func(*sdk.Client, context.Context, sdk.ReportFilters) (json.RawMessage, error)

// runReport fetches the report and prints it as indented JSON.
func runReport(cobraCmd *cobra.Command, fetch reportFunc) error {
	cfg := config.MustFromContext(cobraCmd.Context())
	siseClient, err := cfg.ClientProvider.SDKClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cobraCmd.Context(), 30*time.Second)
	defer cancel()

	doc, err := fetch(siseClient, ctx, sdk.ReportFilters{
		GroupID:   filterGroupID,
		StudentID: filterStudentID,
		PeriodID:  filterPeriodID,
		From:      filterFrom,
		To:        filterTo,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch report: %w", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, doc, "", "  "); err != nil {
		// Not valid JSON; print as-is rather than fail.
		os.Stdout.Write(doc)
		fmt.Println()
		return nil
	}
	fmt.Println(pretty.String())
	return nil
}

var performanceCmd = &cobra.Command{
	Use:   "performance",
	Short: "Academic performance report",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		return runReport(cobraCmd, func(c *sdk.Client, ctx context.Context, f sdk.ReportFilters) (json.RawMessage, error) {
			return c.PerformanceReport(ctx, f)
		})
	},
}

var attendanceCmd = &cobra.Command{
	Use:   "attendance",
	Short: "Attendance report",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		return runReport(cobraCmd, func(c *sdk.Client, ctx context.Context, f sdk.ReportFilters) (json.RawMessage, error) {
			return c.AttendanceReport(ctx, f)
		})
	},
}

var observerCmd = &cobra.Command{
	Use:   "observer",
	Short: "Behavioral observer report",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		return runReport(cobraCmd, func(c *sdk.Client, ctx context.Context, f sdk.ReportFilters) (json.RawMessage, error) {
			return c.ObserverReport(ctx, f)
		})
	},
}

var comparativeCmd = &cobra.Command{
	Use:   "comparative",
	Short: "Cross-group comparative report",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		return runReport(cobraCmd, func(c *sdk.Client, ctx context.Context, f sdk.ReportFilters) (json.RawMessage, error) {
			return c.ComparativeReport(ctx, f)
		})
	},
}
