package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emstack/go-employee-console/hr"
)

func (c *Client) ListCompanies(ctx context.Context) ([]hr.Company, error) {
	var out []hr.Company
	if err := c.do(ctx, http.MethodGet, "/companies/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCompany(ctx context.Context, id int64) (*hr.Company, error) {
	var out hr.Company
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/companies/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCompany(ctx context.Context, company hr.Company) (*hr.Company, error) {
	var out hr.Company
	if err := c.do(ctx, http.MethodPost, "/companies/", company, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCompany(ctx context.Context, id int64, company hr.Company) (*hr.Company, error) {
	var out hr.Company
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/companies/%d/", id), company, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCompany(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/companies/%d/", id), nil, nil)
}
