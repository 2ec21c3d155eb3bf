package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Lesson plan workflow states.
const (
	PlanDraft     = "B" // Borrador
	PlanSubmitted = "E" // Enviado
	PlanApproved  = "A" // Aprobado
)

// planStateLabels maps plan states to their display names.
var planStateLabels = map[string]string{
	PlanDraft:     "Borrador",
	PlanSubmitted: "Enviado",
	PlanApproved:  "Aprobado",
}

// PlanStateLabel returns the display name for a plan state, or the code
// itself when unknown.
func PlanStateLabel(state string) string {
	if label, ok := planStateLabels[state]; ok {
		return label
	}
	return state
}

// LessonPlan is a teacher's lesson plan for a subject and group.
type LessonPlan struct {
	ID         int    `json:"id"`
	TeacherID  int    `json:"docente"`
	SubjectID  int    `json:"asignatura"`
	GroupID    int    `json:"grupo"`
	Date       string `json:"fecha"`
	Topic      string `json:"tema"`
	Objectives string `json:"objetivos"`
	Skills     string `json:"competencias"`
	Activities string `json:"actividades"`
	Resources  string `json:"recursos"`
	Assessment string `json:"evaluacion"`
	State      string `json:"estado"`
}

// ListLessonPlansOptions filters ListLessonPlans.
type ListLessonPlansOptions struct {
	TeacherID int
	SubjectID int
	GroupID   int
	State     string
}

func (o ListLessonPlansOptions) query() url.Values {
	q := url.Values{}
	if o.TeacherID > 0 {
		q.Set("docente", fmt.Sprint(o.TeacherID))
	}
	if o.SubjectID > 0 {
		q.Set("asignatura", fmt.Sprint(o.SubjectID))
	}
	if o.GroupID > 0 {
		q.Set("grupo", fmt.Sprint(o.GroupID))
	}
	if o.State != "" {
		q.Set("estado", o.State)
	}
	return q
}

// ListLessonPlans returns lesson plans matching the filters.
func (c *Client) ListLessonPlans(ctx context.Context, opts ListLessonPlansOptions) ([]LessonPlan, error) {
	var plans []LessonPlan
	if err := c.do(ctx, http.MethodGet, "/planeaciones/", opts.query(), "", nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// GetLessonPlan fetches one lesson plan by ID.
func (c *Client) GetLessonPlan(ctx context.Context, id int) (*LessonPlan, error) {
	var plan LessonPlan
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/planeaciones/%d/", id), nil, "", nil, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// LessonPlanInput is the body for creating or replacing a lesson plan.
type LessonPlanInput struct {
	SubjectID  int    `json:"asignatura" validate:"required"`
	GroupID    int    `json:"grupo" validate:"required"`
	Date       string `json:"fecha" validate:"required,datetime=2006-01-02"`
	Topic      string `json:"tema" validate:"required,max=200"`
	Objectives string `json:"objetivos" validate:"required"`
	Skills     string `json:"competencias" validate:"required"`
	Activities string `json:"actividades" validate:"required"`
	Resources  string `json:"recursos" validate:"required"`
	Assessment string `json:"evaluacion" validate:"required"`
	State      string `json:"estado,omitempty" validate:"omitempty,oneof=B E A"`
}

// CreateLessonPlan creates a lesson plan, in draft state unless specified.
func (c *Client) CreateLessonPlan(ctx context.Context, input LessonPlanInput) (*LessonPlan, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	var plan LessonPlan
	if err := c.do(ctx, http.MethodPost, "/planeaciones/", nil, "", input, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// UpdateLessonPlan replaces a lesson plan.
func (c *Client) UpdateLessonPlan(ctx context.Context, id int, input LessonPlanInput) (*LessonPlan, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	var plan LessonPlan
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/planeaciones/%d/", id), nil, "", input, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// DeleteLessonPlan removes a lesson plan.
func (c *Client) DeleteLessonPlan(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/planeaciones/%d/", id), nil, "", nil, nil)
}
