package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// User is a SISE account as returned by the /usuarios/ resource.
type User struct {
	ID         int    `json:"id"`
	GivenName  string `json:"nombre"`
	FamilyName string `json:"apellido"`
	Email      string `json:"email"`
	Role       Role   `json:"rol"`
	IsActive   bool   `json:"is_active"`
}

// ListUsersOptions filters ListUsers. Zero-value fields are omitted.
type ListUsersOptions struct {
	// Role filters by server role token (e.g. "docente").
	Role string
	// Search matches name or email, server-side.
	Search string
}

func (o ListUsersOptions) query() url.Values {
	q := url.Values{}
	if o.Role != "" {
		q.Set("rol", o.Role)
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	return q
}

// ListUsers returns the accounts visible to the caller.
func (c *Client) ListUsers(ctx context.Context, opts ListUsersOptions) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/usuarios/", opts.query(), "", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches a single account by ID.
func (c *Client) GetUser(ctx context.Context, id int) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/usuarios/%d/", id), nil, "", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUserInput is the body of POST /usuarios/.
type CreateUserInput struct {
	GivenName  string `json:"nombre" validate:"required"`
	FamilyName string `json:"apellido" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Role       string `json:"rol" validate:"required"`
}

// CreateUser creates an account. Admin only, server-enforced.
func (c *Client) CreateUser(ctx context.Context, input CreateUserInput) (*User, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	var user User
	if err := c.do(ctx, http.MethodPost, "/usuarios/", nil, "", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserInput is the body of PUT /usuarios/{id}/.
type UpdateUserInput struct {
	GivenName  string `json:"nombre" validate:"required"`
	FamilyName string `json:"apellido" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Role       string `json:"rol" validate:"required"`
}

// UpdateUser replaces an account's editable fields.
func (c *Client) UpdateUser(ctx context.Context, id int, input UpdateUserInput) (*User, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	var user User
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/usuarios/%d/", id), nil, "", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/usuarios/%d/", id), nil, "", nil, nil)
}

// ActivateUser re-enables a deactivated account.
func (c *Client) ActivateUser(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/usuarios/%d/activate/", id), nil, "", nil, nil)
}

// DeactivateUser disables an account without deleting it.
func (c *Client) DeactivateUser(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/usuarios/%d/deactivate/", id), nil, "", nil, nil)
}

// ChangeUserPassword changes the password of the given account via
// POST /usuarios/{id}/change_password/.
func (c *Client) ChangeUserPassword(ctx context.Context, id int, input ChangePasswordInput) error {
	if err := validateInput(input); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/usuarios/%d/change_password/", id), nil, "", input, nil)
}

// RoleInfo is an entry of the /roles/ catalog.
type RoleInfo struct {
	ID   int    `json:"id"`
	Name string `json:"nombre"`
}

// ListRoles returns the role catalog.
func (c *Client) ListRoles(ctx context.Context) ([]RoleInfo, error) {
	var roles []RoleInfo
	if err := c.do(ctx, http.MethodGet, "/roles/", nil, "", nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// GetRole fetches a role catalog entry by ID.
func (c *Client) GetRole(ctx context.Context, id int) (*RoleInfo, error) {
	var role RoleInfo
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/roles/%d/", id), nil, "", nil, &role); err != nil {
		return nil, err
	}
	return &role, nil
}
