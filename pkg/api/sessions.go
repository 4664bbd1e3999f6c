package api

import (
	"context"
	"net/url"
	"strconv"
)

// Session, Company and Program are the filter option sources shared by all
// panels.
type Session struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CompanyID string `json:"company_id"`
	ProgramID string `json:"program_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Program struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c *Client) Sessions(ctx context.Context) ([]Session, error) {
	var out []Session
	err := c.getJSON(ctx, "/sessions", nil, &out)
	return out, err
}

func (c *Client) Companies(ctx context.Context) ([]Company, error) {
	var out []Company
	err := c.getJSON(ctx, "/companies", nil, &out)
	return out, err
}

func (c *Client) Programs(ctx context.Context) ([]Program, error) {
	var out []Program
	err := c.getJSON(ctx, "/programs", nil, &out)
	return out, err
}

// PastTraining lists sessions that finished in the given month/year.
func (c *Client) PastTraining(ctx context.Context, month, year int) ([]Session, error) {
	q := url.Values{}
	q.Set("month", strconv.Itoa(month))
	q.Set("year", strconv.Itoa(year))
	var out []Session
	err := c.getJSON(ctx, "/sessions/past-training", q, &out)
	return out, err
}
