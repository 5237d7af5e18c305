// Package client is the portal's consumer-side counterpart: it speaks only
// the HTTP contract of the API, keeps the signed-in profile in a local
// session file, and maintains the list/feed state the pages render.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"student-portal-system/internal/model"
)

// envelope mirrors the wire envelope every endpoint answers with.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	User    json.RawMessage `json:"user"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func (e *envelope) err() error {
	if e.Error != "" {
		return fmt.Errorf("portal: %s", e.Error)
	}
	return fmt.Errorf("portal: request failed")
}

type Client struct {
	http *resty.Client

	// stream carries no client timeout: a long-lived event stream would be
	// cut off by the unary deadline. Lifetime is bounded by ctx instead.
	stream *resty.Client
}

// New builds a client against the API base URL, e.g.
// "http://localhost:8080/api".
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10 * time.Second).
			SetHeader("Content-Type", "application/json"),
		stream: resty.New().
			SetBaseURL(baseURL),
	}
}

// SetToken attaches the bearer token returned by a successful login to all
// subsequent requests.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
	c.stream.SetAuthToken(token)
}

func (c *Client) call(ctx context.Context, method, path string, body any, query map[string]string) (*envelope, error) {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, fmt.Errorf("portal: decode response: %w", err)
	}
	if !env.Success {
		return &env, env.err()
	}
	return &env, nil
}

// Login authenticates with a reg number and ID number and returns the
// profile, admin or student.
func (c *Client) Login(ctx context.Context, regNo, idNumber string) (*model.Profile, error) {
	env, err := c.call(ctx, resty.MethodPost, "/login", map[string]string{
		"regNo":    regNo,
		"idNumber": idNumber,
	}, nil)
	if err != nil {
		return nil, err
	}

	var profile model.Profile
	if err := json.Unmarshal(env.User, &profile); err != nil {
		return nil, fmt.Errorf("portal: decode profile: %w", err)
	}
	if profile.Token != "" {
		c.SetToken(profile.Token)
	}
	return &profile, nil
}

// Students fetches the full roster, newest first.
func (c *Client) Students(ctx context.Context) ([]model.Student, error) {
	env, err := c.call(ctx, resty.MethodGet, "/students", nil, nil)
	if err != nil {
		return nil, err
	}
	var students []model.Student
	if err := json.Unmarshal(env.Data, &students); err != nil {
		return nil, fmt.Errorf("portal: decode students: %w", err)
	}
	return students, nil
}

// CreateStudent submits the admin add-student form.
func (c *Client) CreateStudent(ctx context.Context, form map[string]any) (*model.Student, error) {
	env, err := c.call(ctx, resty.MethodPost, "/students", form, nil)
	if err != nil {
		return nil, err
	}
	var student model.Student
	if err := json.Unmarshal(env.Data, &student); err != nil {
		return nil, fmt.Errorf("portal: decode student: %w", err)
	}
	return &student, nil
}

// UpdateStudent merges the supplied fields into a record.
func (c *Client) UpdateStudent(ctx context.Context, id string, fields map[string]any) error {
	_, err := c.call(ctx, resty.MethodPut, "/students", fields, map[string]string{"id": id})
	return err
}

// DeleteStudent removes a record; a missing id still succeeds.
func (c *Client) DeleteStudent(ctx context.Context, id string) error {
	_, err := c.call(ctx, resty.MethodDelete, "/students", nil, map[string]string{"id": id})
	return err
}

// Posts fetches the latest feed entries; limit <= 0 uses the server
// default.
func (c *Client) Posts(ctx context.Context, limit int) ([]model.PostDTO, error) {
	var query map[string]string
	if limit > 0 {
		query = map[string]string{"limit": strconv.Itoa(limit)}
	}
	env, err := c.call(ctx, resty.MethodGet, "/posts", nil, query)
	if err != nil {
		return nil, err
	}
	var posts []model.PostDTO
	if err := json.Unmarshal(env.Data, &posts); err != nil {
		return nil, fmt.Errorf("portal: decode posts: %w", err)
	}
	return posts, nil
}

// CreatePost publishes a feed entry as the signed-in student.
func (c *Client) CreatePost(ctx context.Context, content, authorName, regNo string) (*model.PostDTO, error) {
	env, err := c.call(ctx, resty.MethodPost, "/posts", map[string]string{
		"content":    content,
		"authorName": authorName,
		"regNo":      regNo,
	}, nil)
	if err != nil {
		return nil, err
	}
	var post model.PostDTO
	if err := json.Unmarshal(env.Data, &post); err != nil {
		return nil, fmt.Errorf("portal: decode post: %w", err)
	}
	return &post, nil
}

// DeletePost removes a feed entry.
func (c *Client) DeletePost(ctx context.Context, id string) error {
	_, err := c.call(ctx, resty.MethodDelete, "/posts", nil, map[string]string{"id": id})
	return err
}
