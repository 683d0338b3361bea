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

	"daytrack/internal/domain"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string `json:"error"`
	Details    string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

// Client is a typed REST client for the daytrack API. It keeps the current
// auth session and attaches its bearer token to protected calls.
type Client struct {
	baseURL string
	http    *http.Client
	session Session
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		session: NewSession(),
	}
}

// Session returns the current auth session snapshot.
func (c *Client) Session() Session {
	return c.session
}

type authResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// Register creates an account and transitions the session through the auth
// state machine.
func (c *Client) Register(ctx context.Context, firstName, lastName, email, password string) (*domain.User, error) {
	c.session = c.session.Start()

	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", map[string]string{
		"firstName": firstName,
		"lastName":  lastName,
		"email":     email,
		"password":  password,
	}, &resp)
	if err != nil {
		c.session = c.session.Fail(err.Error())
		return nil, err
	}

	c.session = c.session.Succeed(resp.User, resp.Token)
	return resp.User, nil
}

// Login authenticates and transitions the session.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.User, error) {
	c.session = c.session.Start()

	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		c.session = c.session.Fail(err.Error())
		return nil, err
	}

	c.session = c.session.Succeed(resp.User, resp.Token)
	return resp.User, nil
}

// Logout tells the server goodbye and drops the local token.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	c.session = c.session.Logout()
	return err
}

// Me fetches the identity behind the current token.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var resp struct {
		User *domain.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Todos lists the caller's todos.
func (c *Client) Todos(ctx context.Context) ([]domain.Todo, error) {
	var resp struct {
		Todos []domain.Todo `json:"todos"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/todos", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Todos, nil
}

// CreateTodo creates a todo with optional description and priority.
func (c *Client) CreateTodo(ctx context.Context, title, description, priority string) (*domain.Todo, error) {
	body := map[string]string{"title": title}
	if description != "" {
		body["description"] = description
	}
	if priority != "" {
		body["priority"] = priority
	}

	var resp struct {
		Todo *domain.Todo `json:"todo"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/todos", body, &resp); err != nil {
		return nil, err
	}
	return resp.Todo, nil
}

// UpdateTodo applies a partial update; only non-nil fields are sent.
func (c *Client) UpdateTodo(ctx context.Context, id string, patch domain.TodoPatch) (*domain.Todo, error) {
	body := map[string]any{}
	if patch.Title != nil {
		body["title"] = *patch.Title
	}
	if patch.Description != nil {
		body["description"] = *patch.Description
	}
	if patch.Completed != nil {
		body["completed"] = *patch.Completed
	}
	if patch.Priority != nil {
		body["priority"] = string(*patch.Priority)
	}

	var resp struct {
		Todo *domain.Todo `json:"todo"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/todos/"+url.PathEscape(id), body, &resp); err != nil {
		return nil, err
	}
	return resp.Todo, nil
}

// DeleteTodo removes a todo by id.
func (c *Client) DeleteTodo(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/todos/"+url.PathEscape(id), nil, nil)
}

// Expenses lists the caller's expenses, optionally filtered.
func (c *Client) Expenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	q := url.Values{}
	if filter.StartDate != nil {
		q.Set("startDate", filter.StartDate.Format("2006-01-02"))
	}
	if filter.EndDate != nil {
		q.Set("endDate", filter.EndDate.Format("2006-01-02"))
	}
	if filter.Category != "" {
		q.Set("category", filter.Category)
	}
	path := "/api/expenses"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp struct {
		Expenses []domain.Expense `json:"expenses"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Expenses, nil
}

// CreateExpense creates an expense; a zero date means "now" on the server.
func (c *Client) CreateExpense(ctx context.Context, title string, amount float64, category string, date time.Time, description string) (*domain.Expense, error) {
	body := map[string]any{
		"title":    title,
		"amount":   amount,
		"category": category,
	}
	if !date.IsZero() {
		body["date"] = date.Format(time.RFC3339)
	}
	if description != "" {
		body["description"] = description
	}

	var resp struct {
		Expense *domain.Expense `json:"expense"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/expenses", body, &resp); err != nil {
		return nil, err
	}
	return resp.Expense, nil
}

// UpdateExpense applies a partial update; only non-nil fields are sent.
func (c *Client) UpdateExpense(ctx context.Context, id string, patch domain.ExpensePatch) (*domain.Expense, error) {
	body := map[string]any{}
	if patch.Title != nil {
		body["title"] = *patch.Title
	}
	if patch.Amount != nil {
		body["amount"] = *patch.Amount
	}
	if patch.Category != nil {
		body["category"] = *patch.Category
	}
	if patch.Date != nil {
		body["date"] = patch.Date.Format(time.RFC3339)
	}
	if patch.Description != nil {
		body["description"] = *patch.Description
	}

	var resp struct {
		Expense *domain.Expense `json:"expense"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/expenses/"+url.PathEscape(id), body, &resp); err != nil {
		return nil, err
	}
	return resp.Expense, nil
}

// DeleteExpense removes an expense by id.
func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/expenses/"+url.PathEscape(id), nil, nil)
}

// ExpenseSummary fetches the derived weekly/monthly report.
func (c *Client) ExpenseSummary(ctx context.Context) (*domain.ExpenseSummary, error) {
	var resp struct {
		Summary *domain.ExpenseSummary `json:"summary"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/expenses/summary", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Summary, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token; token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
		_ = json.Unmarshal(data, apiErr)
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
