package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"go-internmatch-portal/internal/models"

	"github.com/google/uuid"
)

// Client talks to the remote InternMatch system. It is the only component
// that knows the wire shapes; everything above works with models types.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// apiError is the remote error convention: non-2xx bodies may carry a
// human-readable "detail" field.
type apiError struct {
	Detail string `json:"detail"`
}

func (c *Client) request(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		if err := json.Unmarshal(bodyBytes, &apiErr); err == nil && apiErr.Detail != "" {
			return fmt.Errorf("%s", apiErr.Detail)
		}
		return fmt.Errorf("HTTP error: status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(bodyBytes, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

type registerResponse struct {
	UserID string `json:"user_id"`
}

// Register creates an account from a profile draft. The creation response is
// minimal; callers fetch the canonical record with GetUser afterwards.
func (c *Client) Register(ctx context.Context, draft models.Profile) (string, error) {
	var resp registerResponse
	if err := c.request(ctx, http.MethodPost, "/register", draft, &resp); err != nil {
		return "", err
	}
	return resp.UserID, nil
}

// Login exchanges an email for the full user record.
func (c *Client) Login(ctx context.Context, email string) (*models.UserRecord, error) {
	body := map[string]string{"email": email}
	var rec models.UserRecord
	if err := c.request(ctx, http.MethodPost, "/login", body, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) GetUser(ctx context.Context, userID string) (*models.UserRecord, error) {
	var rec models.UserRecord
	if err := c.request(ctx, http.MethodGet, "/users/"+url.PathEscape(userID), nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) UpdateUser(ctx context.Context, userID string, draft models.Profile) error {
	return c.request(ctx, http.MethodPut, "/users/"+url.PathEscape(userID), draft, nil)
}

type recommendationsResponse struct {
	Recommendations []models.Recommendation `json:"recommendations"`
}

func (c *Client) GetRecommendations(ctx context.Context, userID string, topN int) ([]models.Recommendation, error) {
	q := url.Values{}
	q.Set("user_id", userID)
	q.Set("top_n", strconv.Itoa(topN))
	var resp recommendationsResponse
	if err := c.request(ctx, http.MethodGet, "/recommendations?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Recommendations, nil
}

type applyRequest struct {
	UserID       string `json:"user_id"`
	InternshipID string `json:"internship_id"`
}

type applyResponse struct {
	ApplicationID string `json:"application_id"`
}

func (c *Client) ApplyForInternship(ctx context.Context, userID, internshipID string) (string, error) {
	var resp applyResponse
	err := c.request(ctx, http.MethodPost, "/apply", applyRequest{UserID: userID, InternshipID: internshipID}, &resp)
	if err != nil {
		return "", err
	}
	return resp.ApplicationID, nil
}

type createInternshipResponse struct {
	InternshipID string `json:"internship_id"`
}

// CreateInternship posts a new internship and returns its identifier.
func (c *Client) CreateInternship(ctx context.Context, item models.Internship) (string, error) {
	var resp createInternshipResponse
	if err := c.request(ctx, http.MethodPost, "/internships", item, &resp); err != nil {
		return "", err
	}
	return resp.InternshipID, nil
}

func (c *Client) GetInternships(ctx context.Context) ([]models.Internship, error) {
	var items []models.Internship
	if err := c.request(ctx, http.MethodGet, "/internships", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) GetInternship(ctx context.Context, internshipID string) (*models.Internship, error) {
	var item models.Internship
	if err := c.request(ctx, http.MethodGet, "/internships/"+url.PathEscape(internshipID), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

type seedResponse struct {
	Inserted int `json:"inserted"`
}

// SeedInternships bulk-inserts internships; useful for local development.
func (c *Client) SeedInternships(ctx context.Context, items []models.Internship) (int, error) {
	var resp seedResponse
	if err := c.request(ctx, http.MethodPost, "/seed_internships", items, &resp); err != nil {
		return 0, err
	}
	return resp.Inserted, nil
}
