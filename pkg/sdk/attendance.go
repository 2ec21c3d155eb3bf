package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Attendance status codes as stored by the API.
const (
	AttendancePresent   = "P"
	AttendanceAbsent    = "A"
	AttendanceLate      = "T"
	AttendanceJustified = "J"
)

// attendanceLabels maps status codes to their display names.
var attendanceLabels = map[string]string{
	AttendancePresent:   "Presente",
	AttendanceAbsent:    "Ausente",
	AttendanceLate:      "Tarde",
	AttendanceJustified: "Justificado",
}

// AttendanceLabel returns the display name for a status code, or the code
// itself when unknown.
func AttendanceLabel(status string) string {
	if label, ok := attendanceLabels[status]; ok {
		return label
	}
	return status
}

// Attendance is one student's attendance record for one day.
type Attendance struct {
	ID           int    `json:"id"`
	StudentID    int    `json:"estudiante"`
	Date         string `json:"fecha"`
	Status       string `json:"estado"`
	Notes        string `json:"observaciones,omitempty"`
	RecordedByID int    `json:"registrada_por"`
}

// ListAttendanceOptions filters ListAttendance. Dates use YYYY-MM-DD.
type ListAttendanceOptions struct {
	Date      string
	GroupID   int
	StudentID int
}

func (o ListAttendanceOptions) query() url.Values {
	q := url.Values{}
	if o.Date != "" {
		q.Set("fecha", o.Date)
	}
	if o.GroupID > 0 {
		q.Set("grupo", fmt.Sprint(o.GroupID))
	}
	if o.StudentID > 0 {
		q.Set("estudiante", fmt.Sprint(o.StudentID))
	}
	return q
}

// ListAttendance returns attendance records matching the filters.
func (c *Client) ListAttendance(ctx context.Context, opts ListAttendanceOptions) ([]Attendance, error) {
	var records []Attendance
	if err := c.do(ctx, http.MethodGet, "/asistencias/", opts.query(), "", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// AttendanceByDate returns a group's attendance for a single day.
func (c *Client) AttendanceByDate(ctx context.Context, date string, groupID int) ([]Attendance, error) {
	return c.ListAttendance(ctx, ListAttendanceOptions{Date: date, GroupID: groupID})
}

// RecordAttendanceInput is the body of POST /asistencias/.
type RecordAttendanceInput struct {
	StudentID int    `json:"estudiante" validate:"required"`
	Date      string `json:"fecha" validate:"required,datetime=2006-01-02"`
	Status    string `json:"estado" validate:"required,oneof=P A T J"`
	Notes     string `json:"observaciones,omitempty"`
}

// RecordAttendance creates an attendance record. The server enforces one
// record per student per day.
func (c *Client) RecordAttendance(ctx context.Context, input RecordAttendanceInput) (*Attendance, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	var record Attendance
	if err := c.do(ctx, http.MethodPost, "/asistencias/", nil, "", input, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateAttendance replaces an attendance record.
func (c *Client) UpdateAttendance(ctx context.Context, id int, input RecordAttendanceInput) (*Attendance, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	var record Attendance
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/asistencias/%d/", id), nil, "", input, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteAttendance removes an attendance record.
func (c *Client) DeleteAttendance(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/asistencias/%d/", id), nil, "", nil, nil)
}
