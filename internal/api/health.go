package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tidwall/gjson"

	apierrors "firechat/internal/errors"
	"firechat/internal/models"
)

// Health queries GET /health for agent readiness. It shares the tools
// timeout since both are quick control-plane calls.
func (c *AgentClient) Health(ctx context.Context) (*models.HealthStatus, error) {
	endpoint := c.baseURL + "/health"

	ctx, cancel := context.WithTimeout(ctx, c.toolsTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apierrors.NewTimeoutError(endpoint)
		}
		return nil, apierrors.NewNetworkError(endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apierrors.NewAPIError(resp.StatusCode, endpoint, "health check failed")
	}

	body, err := readBody(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apierrors.NewTimeoutError(endpoint)
		}
		return nil, apierrors.NewNetworkError(endpoint, err)
	}

	if !gjson.ValidBytes(body) {
		return nil, apierrors.NewParseError("health response is not valid JSON", endpoint)
	}

	return &models.HealthStatus{
		Status:         gjson.GetBytes(body, "status").String(),
		ToolsAvailable: int(gjson.GetBytes(body, "tools_available").Int()),
	}, nil
}
