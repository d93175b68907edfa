package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/taskdeck-io/taskdeck/pkg/domain/model"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
	"github.com/taskdeck-io/taskdeck/pkg/utils/safe"
)

// Client is a minimal HTTP API client. ActorID is sent as the
// X-Actor-ID header on every request; endpoints that record activity
// reject requests without it.
type Client struct {
	BaseURL    string
	ActorID    types.UserID
	HTTPClient *http.Client
	Timeout    time.Duration
}

// New creates a client with sane defaults.
func New(baseURL string, actorID types.UserID) *Client {
	return &Client{
		BaseURL: baseURL,
		ActorID: actorID,
		Timeout: 10 * time.Second,
	}
}

// APIError wraps non-2xx responses.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d body=%s", e.StatusCode, e.Body)
}

// ProjectUpdate is a partial project update. Empty fields are omitted
// from the request and keep their stored values.
type ProjectUpdate struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	Developer   string `json:"developer,omitempty"`
}

// TaskUpdate is a partial task update with the same omission rule.
type TaskUpdate struct {
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Project     string  `json:"project,omitempty"`
	Status      string  `json:"status,omitempty"`
	StartDate   string  `json:"startDate,omitempty"`
	EndDate     string  `json:"endDate,omitempty"`
	TimeSpent   float64 `json:"timeSpent,omitempty"`
	AssignedTo  string  `json:"assignedTo,omitempty"`
}

// ListProjects returns all projects with developer names.
func (c *Client) ListProjects(ctx context.Context) ([]model.ProjectWithDeveloper, error) {
	var resp []model.ProjectWithDeveloper
	err := c.do(ctx, http.MethodGet, "api/projects", nil, &resp)
	return resp, err
}

// CreateProject creates a project owned by the client's actor.
func (c *Client) CreateProject(ctx context.Context, title, description, startDate, endDate string) (model.Project, error) {
	body := map[string]any{
		"title":       title,
		"description": description,
		"startDate":   startDate,
		"endDate":     endDate,
	}
	var resp model.Project
	err := c.do(ctx, http.MethodPost, "api/projects", body, &resp)
	return resp, err
}

// UpdateProject applies a partial update to a project.
func (c *Client) UpdateProject(ctx context.Context, id types.ProjectID, update ProjectUpdate) (model.Project, error) {
	var resp model.Project
	endpoint := fmt.Sprintf("api/projects/%s", url.PathEscape(id.String()))
	err := c.do(ctx, http.MethodPut, endpoint, update, &resp)
	return resp, err
}

// ListProjectTasks returns the tasks of one project.
func (c *Client) ListProjectTasks(ctx context.Context, id types.ProjectID) ([]model.Task, error) {
	var resp []model.Task
	endpoint := fmt.Sprintf("api/projects/%s/tasks", url.PathEscape(id.String()))
	err := c.do(ctx, http.MethodGet, endpoint, nil, &resp)
	return resp, err
}

// ListTasks returns all tasks with project titles.
func (c *Client) ListTasks(ctx context.Context) ([]model.TaskWithProject, error) {
	var resp []model.TaskWithProject
	err := c.do(ctx, http.MethodGet, "api/tasks", nil, &resp)
	return resp, err
}

// GetTask fetches one task by ID.
func (c *Client) GetTask(ctx context.Context, id types.TaskID) (model.TaskWithProject, error) {
	var resp model.TaskWithProject
	endpoint := fmt.Sprintf("api/tasks/%s", url.PathEscape(id.String()))
	err := c.do(ctx, http.MethodGet, endpoint, nil, &resp)
	return resp, err
}

// CreateTask creates a task in a project.
func (c *Client) CreateTask(ctx context.Context, title, description string, projectID types.ProjectID) (model.Task, error) {
	body := map[string]any{
		"title":       title,
		"description": description,
		"project":     projectID.String(),
	}
	var resp model.Task
	err := c.do(ctx, http.MethodPost, "api/tasks", body, &resp)
	return resp, err
}

// UpdateTask applies a partial update to a task.
func (c *Client) UpdateTask(ctx context.Context, id types.TaskID, update TaskUpdate) (model.Task, error) {
	var resp model.Task
	endpoint := fmt.Sprintf("api/tasks/%s", url.PathEscape(id.String()))
	err := c.do(ctx, http.MethodPut, endpoint, update, &resp)
	return resp, err
}

// ListUsers returns the user roster.
func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var resp []model.User
	err := c.do(ctx, http.MethodGet, "api/users", nil, &resp)
	return resp, err
}

// ListActivities returns the activity log, newest first.
func (c *Client) ListActivities(ctx context.Context) ([]model.Activity, error) {
	var resp []model.Activity
	err := c.do(ctx, http.MethodGet, "api/activities", nil, &resp)
	return resp, err
}

// ListNotifications returns the actor's notifications, newest first.
func (c *Client) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	var resp []model.Notification
	err := c.do(ctx, http.MethodGet, "api/notifications", nil, &resp)
	return resp, err
}

// MarkNotificationRead flips one notification's read flag.
func (c *Client) MarkNotificationRead(ctx context.Context, id types.NotificationID) (model.Notification, error) {
	var resp model.Notification
	endpoint := fmt.Sprintf("api/notifications/%s/read", url.PathEscape(id.String()))
	err := c.do(ctx, http.MethodPut, endpoint, nil, &resp)
	return resp, err
}

// DashboardAnalytics returns the aggregate counts.
func (c *Client) DashboardAnalytics(ctx context.Context) (model.DashboardAnalytics, error) {
	var resp model.DashboardAnalytics
	err := c.do(ctx, http.MethodGet, "api/dashboard/analytics", nil, &resp)
	return resp, err
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, out any) error {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	url := c.base() + "/" + strings.TrimLeft(endpoint, "/")
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.ActorID != "" {
		req.Header.Set("X-Actor-ID", c.ActorID.String())
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer safe.Close(ctx, resp.Body)
	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(b)}
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) base() string {
	return strings.TrimRight(c.BaseURL, "/")
}
