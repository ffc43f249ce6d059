package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tidwall/gjson"

	apierrors "firechat/internal/errors"
)

// FetchTools retrieves the backend's tool directory from GET /tools.
// The request is bounded by the client's tools timeout. Any network
// error, non-2xx status or malformed body is returned as an error; the
// caller decides whether to fall back to a static list.
func (c *AgentClient) FetchTools(ctx context.Context) ([]string, error) {
	endpoint := c.baseURL + "/tools"

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
		return nil, apierrors.NewAPIError(resp.StatusCode, endpoint, "tool fetch failed")
	}

	body, err := readBody(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apierrors.NewTimeoutError(endpoint)
		}
		return nil, apierrors.NewNetworkError(endpoint, err)
	}

	if !gjson.ValidBytes(body) {
		return nil, apierrors.NewParseError("tools response is not valid JSON", endpoint)
	}

	field := gjson.GetBytes(body, "tools")
	if !field.IsArray() {
		return nil, apierrors.NewParseError("tools response missing tools array", endpoint)
	}

	var names []string
	for _, item := range field.Array() {
		if item.Type == gjson.String {
			names = append(names, item.String())
		}
	}
	return names, nil
}
