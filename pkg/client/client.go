// Package client provides a typed HTTP client for the CRM Hub API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to a CRM Hub server over HTTP.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a client for the given base URL. The API key may be empty
// when the server runs without authentication.
func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is an RFC 7807 problem response returned by the server.
type APIError struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (%d): %s", e.Title, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s (%d)", e.Title, e.Status)
}

// do sends an authenticated request and decodes the response into out.
// Pass a nil out for endpoints with empty response bodies.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Title: http.StatusText(resp.StatusCode)}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// HealthStatus reports server health and version.
type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Health checks server liveness.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var out HealthStatus
	if err := c.do(ctx, http.MethodGet, "/api/v1/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListClients returns all client records.
func (c *Client) ListClients(ctx context.Context) ([]ClientRecord, error) {
	var out []ClientRecord
	err := c.do(ctx, http.MethodGet, "/api/v1/clients", nil, &out)
	return out, err
}

// CreateClient creates a client record.
func (c *Client) CreateClient(ctx context.Context, in NewClient) (*ClientRecord, error) {
	var out ClientRecord
	if err := c.do(ctx, http.MethodPost, "/api/v1/clients", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListProjects returns all projects.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var out []Project
	err := c.do(ctx, http.MethodGet, "/api/v1/projects", nil, &out)
	return out, err
}

// CreateProject creates a project.
func (c *Client) CreateProject(ctx context.Context, in NewProject) (*Project, error) {
	var out Project
	if err := c.do(ctx, http.MethodPost, "/api/v1/projects", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTasks returns all tasks, newest first.
func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var out []Task
	err := c.do(ctx, http.MethodGet, "/api/v1/tasks", nil, &out)
	return out, err
}

// CreateTask creates a task.
func (c *Client) CreateTask(ctx context.Context, in NewTask) (*Task, error) {
	var out Task
	if err := c.do(ctx, http.MethodPost, "/api/v1/tasks", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListEmployees returns all employees.
func (c *Client) ListEmployees(ctx context.Context) ([]Employee, error) {
	var out []Employee
	err := c.do(ctx, http.MethodGet, "/api/v1/employees", nil, &out)
	return out, err
}

// CreateEmployee creates an employee record.
func (c *Client) CreateEmployee(ctx context.Context, in NewEmployee) (*Employee, error) {
	var out Employee
	if err := c.do(ctx, http.MethodPost, "/api/v1/employees", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListExpenses returns all expenses, newest first.
func (c *Client) ListExpenses(ctx context.Context) ([]Expense, error) {
	var out []Expense
	err := c.do(ctx, http.MethodGet, "/api/v1/expenses", nil, &out)
	return out, err
}

// CreateExpense creates an expense.
func (c *Client) CreateExpense(ctx context.Context, in NewExpense) (*Expense, error) {
	var out Expense
	if err := c.do(ctx, http.MethodPost, "/api/v1/expenses", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteExpense removes an expense by id.
func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/expenses/"+id, nil, nil)
}

// ListCampaigns returns all marketing campaigns.
func (c *Client) ListCampaigns(ctx context.Context) ([]Campaign, error) {
	var out []Campaign
	err := c.do(ctx, http.MethodGet, "/api/v1/campaigns", nil, &out)
	return out, err
}

// CreateCampaign creates a marketing campaign.
func (c *Client) CreateCampaign(ctx context.Context, in NewCampaign) (*Campaign, error) {
	var out Campaign
	if err := c.do(ctx, http.MethodPost, "/api/v1/campaigns", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListBudgets returns all department budgets.
func (c *Client) ListBudgets(ctx context.Context) ([]Budget, error) {
	var out []Budget
	err := c.do(ctx, http.MethodGet, "/api/v1/budgets", nil, &out)
	return out, err
}

// CreateBudget creates a department budget.
func (c *Client) CreateBudget(ctx context.Context, in NewBudget) (*Budget, error) {
	var out Budget
	if err := c.do(ctx, http.MethodPost, "/api/v1/budgets", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListOpportunities returns all sales opportunities.
func (c *Client) ListOpportunities(ctx context.Context) ([]Opportunity, error) {
	var out []Opportunity
	err := c.do(ctx, http.MethodGet, "/api/v1/opportunities", nil, &out)
	return out, err
}

// CreateOpportunity creates a sales opportunity.
func (c *Client) CreateOpportunity(ctx context.Context, in NewOpportunity) (*Opportunity, error) {
	var out Opportunity
	if err := c.do(ctx, http.MethodPost, "/api/v1/opportunities", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListWorkflows returns all automation workflows.
func (c *Client) ListWorkflows(ctx context.Context) ([]Workflow, error) {
	var out []Workflow
	err := c.do(ctx, http.MethodGet, "/api/v1/workflows", nil, &out)
	return out, err
}

// CreateWorkflow creates a draft automation workflow.
func (c *Client) CreateWorkflow(ctx context.Context, in NewWorkflow) (*Workflow, error) {
	var out Workflow
	if err := c.do(ctx, http.MethodPost, "/api/v1/workflows", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateWorkflowFromTemplate instantiates a published workflow from a template.
func (c *Client) CreateWorkflowFromTemplate(ctx context.Context, name string, steps int) (*Workflow, error) {
	body := map[string]any{"name": name, "steps": steps}
	var out Workflow
	if err := c.do(ctx, http.MethodPost, "/api/v1/workflows/template", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMessages returns the unified inbox, newest first.
func (c *Client) ListMessages(ctx context.Context) ([]Message, error) {
	var out []Message
	err := c.do(ctx, http.MethodGet, "/api/v1/messages", nil, &out)
	return out, err
}

// MarkMessageRead clears the unread flag on a message.
func (c *Client) MarkMessageRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/api/v1/messages/"+id+"/read", nil, nil)
}

// ConnectChannels starts the channel connection flow.
func (c *Client) ConnectChannels(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/v1/messages/connect", nil, nil)
}

// ListReviews returns all customer reviews, newest first.
func (c *Client) ListReviews(ctx context.Context) ([]Review, error) {
	var out []Review
	err := c.do(ctx, http.MethodGet, "/api/v1/reviews", nil, &out)
	return out, err
}

// RequestReview sends a review request to a customer.
func (c *Client) RequestReview(ctx context.Context, in NewReviewRequest) (*Review, error) {
	var out Review
	if err := c.do(ctx, http.MethodPost, "/api/v1/reviews/request", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateInsights asks the server for an AI-generated business summary.
func (c *Client) GenerateInsights(ctx context.Context) (string, error) {
	var out struct {
		Insights string `json:"insights"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/insights", nil, &out); err != nil {
		return "", err
	}
	return out.Insights, nil
}
