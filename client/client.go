package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"academy/backend/tracking"
)

// APIError carries the server's status and message for a failed call.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
	Token   string
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// envelope matches the server's wrapped JSON bodies.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&reqBody).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		msg := apiErr.Message
		if msg == "" {
			msg = apiErr.Error
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// unwrap decodes a wrapped response body into out.
func (c *Client) unwrap(ctx context.Context, method, path string, body, out interface{}) error {
	var env envelope
	if err := c.do(ctx, method, path, body, &env); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

// Login authenticates and stores the token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var session Session
	err := c.do(ctx, http.MethodPost, "/api/auth/login",
		map[string]string{"email": email, "password": password}, &session)
	if err != nil {
		return nil, err
	}
	c.Token = session.Token
	return &session, nil
}

// Register creates a student account and stores the token on the client.
func (c *Client) Register(ctx context.Context, name, email, password string) (*Session, error) {
	var session Session
	err := c.do(ctx, http.MethodPost, "/api/auth/register",
		map[string]string{"name": name, "email": email, "password": password}, &session)
	if err != nil {
		return nil, err
	}
	c.Token = session.Token
	return &session, nil
}

// Courses fetches the lightweight catalog listing.
func (c *Client) Courses(ctx context.Context) ([]CourseSummary, error) {
	var courses []CourseSummary
	err := c.unwrap(ctx, http.MethodGet, "/api/courses", nil, &courses)
	return courses, err
}

// Course fetches the full projection for one course: the upgrade path from
// the summary returned by Courses.
func (c *Client) Course(ctx context.Context, id uint) (*Course, error) {
	var course Course
	if err := c.unwrap(ctx, http.MethodGet, fmt.Sprintf("/api/courses/%d", id), nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// MyCourses fetches the student dashboard.
func (c *Client) MyCourses(ctx context.Context) (*Dashboard, error) {
	var dashboard Dashboard
	if err := c.unwrap(ctx, http.MethodGet, "/api/my/courses", nil, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

// Progress fetches the caller's completed-lesson sets keyed by course id.
func (c *Client) Progress(ctx context.Context) (map[uint][]uint, error) {
	progress := make(map[uint][]uint)
	err := c.unwrap(ctx, http.MethodGet, "/api/progress", nil, &progress)
	return progress, err
}

// SaveProgress replaces the completed-lesson set for one course. The student
// is identified by the token, so studentID is unused here; the signature
// satisfies tracking.Persister so a tracking.Store can persist through this
// client directly.
func (c *Client) SaveProgress(ctx context.Context, _ uint, courseID uint, lessonIDs []uint) error {
	return c.unwrap(ctx, http.MethodPut, fmt.Sprintf("/api/progress/%d", courseID),
		map[string][]uint{"lesson_ids": lessonIDs}, nil)
}

// Certificates fetches the caller's certificates.
func (c *Client) Certificates(ctx context.Context) ([]Certificate, error) {
	var certs []Certificate
	err := c.unwrap(ctx, http.MethodGet, "/api/certificates", nil, &certs)
	return certs, err
}

// CreateCertificate claims a certificate for a completed course. A 409 from
// the server's uniqueness constraint maps to tracking.ErrAlreadyClaimed.
func (c *Client) CreateCertificate(ctx context.Context, courseID uint) (*Certificate, error) {
	var cert Certificate
	err := c.unwrap(ctx, http.MethodPost, "/api/certificates",
		map[string]uint{"course_id": courseID}, &cert)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict {
			return nil, tracking.ErrAlreadyClaimed
		}
		return nil, err
	}
	return &cert, nil
}

// Tickets fetches the caller's support tickets.
func (c *Client) Tickets(ctx context.Context) ([]Ticket, error) {
	var tickets []Ticket
	err := c.unwrap(ctx, http.MethodGet, "/api/tickets", nil, &tickets)
	return tickets, err
}

// CreateTicket files a support ticket.
func (c *Client) CreateTicket(ctx context.Context, subject, message string) (*Ticket, error) {
	var ticket Ticket
	err := c.unwrap(ctx, http.MethodPost, "/api/tickets",
		map[string]string{"subject": subject, "message": message}, &ticket)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}
