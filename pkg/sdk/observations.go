package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Observation is a behavioral observation in a student's observer log.
type Observation struct {
	ID           int    `json:"id"`
	StudentID    int    `json:"estudiante"`
	TypeID       int    `json:"tipo_observacion"`
	RecordedByID int    `json:"registrada_por"`
	Date         string `json:"fecha"`
	Description  string `json:"descripcion"`
}

// ListObservationsOptions filters ListObservations.
type ListObservationsOptions struct {
	StudentID int
	TypeID    int
}

func (o ListObservationsOptions) query() url.Values {
	q := url.Values{}
	if o.StudentID > 0 {
		q.Set("estudiante", fmt.Sprint(o.StudentID))
	}
	if o.TypeID > 0 {
		q.Set("tipo_observacion", fmt.Sprint(o.TypeID))
	}
	return q
}

// ListObservations returns observer entries matching the filters.
func (c *Client) ListObservations(ctx context.Context, opts ListObservationsOptions) ([]Observation, error) {
	var entries []Observation
	if err := c.do(ctx, http.MethodGet, "/observaciones/", opts.query(), "", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetObservation fetches one observer entry by ID.
func (c *Client) GetObservation(ctx context.Context, id int) (*Observation, error) {
	var entry Observation
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/observaciones/%d/", id), nil, "", nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ObservationInput is the body for creating or replacing an observer entry.
type ObservationInput struct {
	StudentID   int    `json:"estudiante" validate:"required"`
	TypeID      int    `json:"tipo_observacion" validate:"required"`
	Date        string `json:"fecha" validate:"required,datetime=2006-01-02"`
	Description string `json:"descripcion" validate:"required"`
}

// CreateObservation adds an entry to a student's observer log.
func (c *Client) CreateObservation(ctx context.Context, input ObservationInput) (*Observation, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	var entry Observation
	if err := c.do(ctx, http.MethodPost, "/observaciones/", nil, "", input, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateObservation replaces an observer entry.
func (c *Client) UpdateObservation(ctx context.Context, id int, input ObservationInput) (*Observation, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	var entry Observation
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/observaciones/%d/", id), nil, "", input, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteObservation removes an observer entry.
func (c *Client) DeleteObservation(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/observaciones/%d/", id), nil, "", nil, nil)
}
