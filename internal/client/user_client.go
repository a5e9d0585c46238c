package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"project-tracker-api/internal/metrics"
)

// UserInfo is the directory record for a user, as returned by the user
// service. Name and initials are snapshotted onto items at assignment
// time.
type UserInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Initials string `json:"initials"`
	Avatar   string `json:"avatar,omitempty"`
}

// UserClient defines the interface for user directory communication
type UserClient interface {
	// GetUser resolves a single user by ID
	GetUser(ctx context.Context, userID string) (*UserInfo, error)
}

// userClient implements UserClient against the user service HTTP API
type userClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewUserClient creates a new user directory API client
func NewUserClient(baseURL string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) UserClient {
	return &userClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

type userEnvelope struct {
	Success bool     `json:"success"`
	Data    UserInfo `json:"data"`
}

// GetUser resolves a user record from the directory service
func (c *userClient) GetUser(ctx context.Context, userID string) (*UserInfo, error) {
	url := fmt.Sprintf("%s/api/users/%s", c.baseURL, userID)

	startTime := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("Failed to create user lookup request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	if c.metrics != nil {
		c.metrics.RecordExternalAPICall(url, "GET", statusCode, duration, err)
	}

	if err != nil {
		c.logger.Error("Failed to reach user service",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.Duration("duration", duration),
		)
		return nil, fmt.Errorf("user service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("user %s not found", userID)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("User service returned non-success status",
			zap.Int("status_code", resp.StatusCode),
			zap.String("user_id", userID),
			zap.Duration("duration", duration),
		)
		return nil, fmt.Errorf("user service returned status %d", resp.StatusCode)
	}

	var envelope userEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.logger.Error("Failed to decode user service response",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("failed to decode user response: %w", err)
	}

	info := envelope.Data
	if info.ID == "" {
		info.ID = userID
	}
	if info.Initials == "" {
		info.Initials = InitialsFromName(info.Name)
	}
	return &info, nil
}

// InitialsFromName derives up to two uppercase initials from a display
// name, used when the directory record carries none.
func InitialsFromName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	first := []rune(fields[0])
	initials := strings.ToUpper(string(first[0]))
	if len(fields) > 1 {
		last := []rune(fields[len(fields)-1])
		initials += strings.ToUpper(string(last[0]))
	}
	return initials
}

// NoOpUserClient is used when the user service is not configured. Every
// lookup fails, so callers fall back to unresolved assignee snapshots.
type NoOpUserClient struct{}

func NewNoOpUserClient() UserClient {
	return &NoOpUserClient{}
}

func (c *NoOpUserClient) GetUser(ctx context.Context, userID string) (*UserInfo, error) {
	return nil, fmt.Errorf("user service is not configured")
}
