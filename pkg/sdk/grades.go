package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Grade is a student's mark in one subject for one academic period.
// Nota is a decimal with one fractional digit, 0.0–10.0 in practice.
type Grade struct {
	ID        int     `json:"id"`
	StudentID int     `json:"estudiante"`
	SubjectID int     `json:"asignatura"`
	PeriodID  int     `json:"periodo"`
	Score     float64 `json:"nota"`
	Notes     string  `json:"observaciones,omitempty"`
}

// ListGradesOptions filters ListGrades.
type ListGradesOptions struct {
	StudentID int
	SubjectID int
	PeriodID  int
}

func (o ListGradesOptions) query() url.Values {
	q := url.Values{}
	if o.StudentID > 0 {
		q.Set("estudiante", fmt.Sprint(o.StudentID))
	}
	if o.SubjectID > 0 {
		q.Set("asignatura", fmt.Sprint(o.SubjectID))
	}
	if o.PeriodID > 0 {
		q.Set("periodo", fmt.Sprint(o.PeriodID))
	}
	return q
}

// ListGrades returns grades matching the filters.
func (c *Client) ListGrades(ctx context.Context, opts ListGradesOptions) ([]Grade, error) {
	var grades []Grade
	if err := c.do(ctx, http.MethodGet, "/calificaciones/", opts.query(), "", nil, &grades); err != nil {
		return nil, err
	}
	return grades, nil
}

// GetGrade fetches one grade by ID.
func (c *Client) GetGrade(ctx context.Context, id int) (*Grade, error) {
	var grade Grade
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/calificaciones/%d/", id), nil, "", nil, &grade); err != nil {
		return nil, err
	}
	return &grade, nil
}

// GradeInput is the body for creating or replacing a grade. The server
// enforces one grade per student, subject and period.
type GradeInput struct {
	StudentID int     `json:"estudiante" validate:"required"`
	SubjectID int     `json:"asignatura" validate:"required"`
	PeriodID  int     `json:"periodo" validate:"required"`
	Score     float64 `json:"nota" validate:"gte=0,lte=10"`
	Notes     string  `json:"observaciones,omitempty"`
}

// CreateGrade records a grade.
func (c *Client) CreateGrade(ctx context.Context, input GradeInput) (*Grade, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	var grade Grade
	if err := c.do(ctx, http.MethodPost, "/calificaciones/", nil, "", input, &grade); err != nil {
		return nil, err
	}
	return &grade, nil
}

// UpdateGrade replaces a grade.
func (c *Client) UpdateGrade(ctx context.Context, id int, input GradeInput) (*Grade, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	var grade Grade
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/calificaciones/%d/", id), nil, "", input, &grade); err != nil {
		return nil, err
	}
	return &grade, nil
}

// DeleteGrade removes a grade.
func (c *Client) DeleteGrade(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/calificaciones/%d/", id), nil, "", nil, nil)
}
