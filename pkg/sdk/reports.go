package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// ReportFilters narrows a report query. Dates use YYYY-MM-DD. All fields
// are optional; the server decides which apply to each report.
type ReportFilters struct {
	GroupID   int
	StudentID int
	PeriodID  int
	From      string
	To        string
}

func (f ReportFilters) query() url.Values {
	q := url.Values{}
	if f.GroupID > 0 {
		q.Set("grupo", fmt.Sprint(f.GroupID))
	}
	if f.StudentID > 0 {
		q.Set("estudiante", fmt.Sprint(f.StudentID))
	}
	if f.PeriodID > 0 {
		q.Set("periodo", fmt.Sprint(f.PeriodID))
	}
	if f.From != "" {
		q.Set("fecha_inicio", f.From)
	}
	if f.To != "" {
		q.Set("fecha_fin", f.To)
	}
	return q
}

// report fetches one of the /reportes/ documents. Their shapes vary by
// report and evolve server-side, so they are returned undecoded.
func (c *Client) report(ctx context.Context, name string, filters ReportFilters) (json.RawMessage, error) {
	var doc json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/reportes/"+name+"/", filters.query(), "", nil, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// PerformanceReport returns the academic performance report.
func (c *Client) PerformanceReport(ctx context.Context, filters ReportFilters) (json.RawMessage, error) {
	return c.report(ctx, "rendimiento", filters)
}

// AttendanceReport returns the attendance report.
func (c *Client) AttendanceReport(ctx context.Context, filters ReportFilters) (json.RawMessage, error) {
	return c.report(ctx, "asistencia", filters)
}

// ObserverReport returns the behavioral observer report.
func (c *Client) ObserverReport(ctx context.Context, filters ReportFilters) (json.RawMessage, error) {
	return c.report(ctx, "observador", filters)
}

// ComparativeReport returns the cross-group comparative report.
func (c *Client) ComparativeReport(ctx context.Context, filters ReportFilters) (json.RawMessage, error) {
	return c.report(ctx, "comparativo", filters)
}
