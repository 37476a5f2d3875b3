// Package client is the typed HTTP client for the admin API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/absensi"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/auth"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/pendaftar"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/statistics"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/user"
	"github.com/paskibra-rajawali/admin-dashboard/internal/pkg/pagination"
)

const DefaultTimeout = 15 * time.Second

// Page is one page of a list endpoint.
type Page[T any] struct {
	Items      []T
	Pagination pagination.Pagination
}

type envelope struct {
	Success    bool                   `json:"success"`
	Message    string                 `json:"message"`
	Data       json.RawMessage        `json:"data"`
	Pagination *pagination.Pagination `json:"pagination"`
	Code       string                 `json:"code"`
	Errors     map[string]string      `json:"errors"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a client for baseURL, e.g. "http://localhost:8080/api".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do sends a request and decodes the envelope. out receives the data field when non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) (*envelope, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("api request", "method", method, "path", path, "status", resp.StatusCode, "duration", time.Since(start))

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		if decodeErr == nil {
			apiErr.Code = env.Code
			apiErr.Message = env.Message
			apiErr.Fields = env.Errors
		}
		return nil, apiErr
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("decode data: %w", err)
		}
	}
	return &env, nil
}

func listPage[T any](ctx context.Context, c *Client, path string, query url.Values) (Page[T], error) {
	var items []T
	env, err := c.do(ctx, http.MethodGet, path, query, nil, &items)
	if err != nil {
		return Page[T]{}, err
	}
	page := Page[T]{Items: items}
	if page.Items == nil {
		page.Items = []T{}
	}
	if env.Pagination != nil {
		page.Pagination = *env.Pagination
	}
	return page, nil
}

func setPaging(q url.Values, page, limit int) {
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
}

// Login exchanges credentials for a token and stores it on the client.
func (c *Client) Login(ctx context.Context, username, password string) (auth.TokenResponse, error) {
	var tok auth.TokenResponse
	if _, err := c.do(ctx, http.MethodPost, "/auth/login", nil, auth.LoginRequest{Username: username, Password: password}, &tok); err != nil {
		return auth.TokenResponse{}, err
	}
	c.SetToken(tok.Token)
	return tok, nil
}

func (c *Client) Me(ctx context.Context) (user.UserResponse, error) {
	var me user.UserResponse
	_, err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &me)
	return me, err
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
	c.SetToken("")
	return err
}

// PendaftarQuery mirrors the list parameters of /admin/pendaftar.
type PendaftarQuery struct {
	Status string
	Search string
	HasKTA *bool
	Page   int
	Limit  int
}

func (c *Client) ListPendaftar(ctx context.Context, q PendaftarQuery) (Page[pendaftar.PendaftarResponse], error) {
	values := url.Values{}
	status := q.Status
	if status == "" {
		status = pendaftar.StatusAll
	}
	values.Set("status", status)
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.HasKTA != nil {
		values.Set("has_kta", strconv.FormatBool(*q.HasKTA))
	}
	setPaging(values, q.Page, q.Limit)
	return listPage[pendaftar.PendaftarResponse](ctx, c, "/admin/pendaftar", values)
}

func (c *Client) GetPendaftar(ctx context.Context, id string) (pendaftar.PendaftarResponse, error) {
	var p pendaftar.PendaftarResponse
	_, err := c.do(ctx, http.MethodGet, "/admin/pendaftar/"+url.PathEscape(id), nil, nil, &p)
	return p, err
}

// UpdatePendaftarStatus returns the server confirmation message.
func (c *Client) UpdatePendaftarStatus(ctx context.Context, id string, status pendaftar.Status) (string, error) {
	env, err := c.do(ctx, http.MethodPut, "/admin/pendaftar/"+url.PathEscape(id)+"/status", nil,
		pendaftar.UpdateStatusRequest{Status: status}, nil)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// KTAResult is the outcome of a card number generation.
type KTAResult struct {
	Message  string
	NomorKTA string
}

func (c *Client) GenerateKTA(ctx context.Context, pendaftarID string) (KTAResult, error) {
	var data pendaftar.GenerateKTAResponse
	env, err := c.do(ctx, http.MethodPost, "/admin/generate-kta", nil,
		pendaftar.GenerateKTARequest{PendaftarID: pendaftarID}, &data)
	if err != nil {
		return KTAResult{}, err
	}
	return KTAResult{Message: env.Message, NomorKTA: data.NomorKTA}, nil
}

// UserQuery mirrors the list parameters of /admin/users.
type UserQuery struct {
	Role   string
	Search string
	Page   int
	Limit  int
}

func (c *Client) ListUsers(ctx context.Context, q UserQuery) (Page[user.UserResponse], error) {
	values := url.Values{}
	role := q.Role
	if role == "" {
		role = user.RoleAll
	}
	values.Set("role", role)
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	setPaging(values, q.Page, q.Limit)
	return listPage[user.UserResponse](ctx, c, "/admin/users", values)
}

func (c *Client) ResetPassword(ctx context.Context, userID, newPassword string) (string, error) {
	env, err := c.do(ctx, http.MethodPut, "/admin/users/"+url.PathEscape(userID)+"/reset-password", nil,
		user.ResetPasswordRequest{NewPassword: newPassword}, nil)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// AbsensiQuery mirrors the list parameters of /admin/absensi.
type AbsensiQuery struct {
	StartDate string
	EndDate   string
	Search    string
	Page      int
	Limit     int
}

func (c *Client) ListAbsensi(ctx context.Context, q AbsensiQuery) (Page[absensi.AbsensiResponse], error) {
	values := url.Values{}
	if q.StartDate != "" {
		values.Set("startDate", q.StartDate)
	}
	if q.EndDate != "" {
		values.Set("endDate", q.EndDate)
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	setPaging(values, q.Page, q.Limit)
	return listPage[absensi.AbsensiResponse](ctx, c, "/admin/absensi", values)
}

func (c *Client) Statistics(ctx context.Context, period statistics.Period) (statistics.StatisticsResponse, error) {
	var stats statistics.StatisticsResponse
	values := url.Values{}
	if period != "" {
		values.Set("period", string(period))
	}
	_, err := c.do(ctx, http.MethodGet, "/admin/statistics", values, nil, &stats)
	return stats, err
}
