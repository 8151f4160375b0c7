package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emstack/go-employee-console/hr"
)

func (c *Client) ListEmployees(ctx context.Context) ([]hr.Employee, error) {
	var out []hr.Employee
	if err := c.do(ctx, http.MethodGet, "/employees/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetEmployee(ctx context.Context, id int64) (*hr.Employee, error) {
	var out hr.Employee
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/employees/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateEmployee(ctx context.Context, employee hr.Employee) (*hr.Employee, error) {
	var out hr.Employee
	if err := c.do(ctx, http.MethodPost, "/employees/", employee, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id int64, employee hr.Employee) (*hr.Employee, error) {
	var out hr.Employee
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/employees/%d/", id), employee, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/employees/%d/", id), nil, nil)
}

// UpdateEmployeeStatus drives the hiring workflow transition endpoint.
func (c *Client) UpdateEmployeeStatus(ctx context.Context, id int64, status hr.EmployeeStatus) (*hr.Employee, error) {
	body := struct {
		Status hr.EmployeeStatus `json:"status"`
	}{Status: status}

	var out hr.Employee
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/employees/%d/status/", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
