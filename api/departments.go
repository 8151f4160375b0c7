package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emstack/go-employee-console/hr"
)

func (c *Client) ListDepartments(ctx context.Context) ([]hr.Department, error) {
	var out []hr.Department
	if err := c.do(ctx, http.MethodGet, "/departments/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListDepartmentsByCompany uses the backend's company filter.
func (c *Client) ListDepartmentsByCompany(ctx context.Context, companyID int64) ([]hr.Department, error) {
	var out []hr.Department
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/departments/?company=%d", companyID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetDepartment(ctx context.Context, id int64) (*hr.Department, error) {
	var out hr.Department
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/departments/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateDepartment(ctx context.Context, department hr.Department) (*hr.Department, error) {
	var out hr.Department
	if err := c.do(ctx, http.MethodPost, "/departments/", department, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateDepartment(ctx context.Context, id int64, department hr.Department) (*hr.Department, error) {
	var out hr.Department
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/departments/%d/", id), department, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteDepartment(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/departments/%d/", id), nil, nil)
}

// DepartmentEmployees returns everyone assigned to one department.
func (c *Client) DepartmentEmployees(ctx context.Context, id int64) ([]hr.Employee, error) {
	var out []hr.Employee
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/departments/%d/employees/", id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
