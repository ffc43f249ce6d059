package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"

	apierrors "firechat/internal/errors"
	"firechat/internal/models"
)

// chatRequest is the POST /chat payload.
type chatRequest struct {
	Message string                `json:"message"`
	History []models.HistoryEntry `json:"history"`
}

// SendChat submits a message plus serialized conversation history to the
// backend and parses the structured reply. The request is aborted when it
// exceeds the client's chat timeout; the abort surfaces as a TimeoutError,
// distinct from other failures.
func (c *AgentClient) SendChat(ctx context.Context, message string, history []models.HistoryEntry) (*models.ChatReply, error) {
	endpoint := c.baseURL + "/chat"

	if history == nil {
		history = []models.HistoryEntry{}
	}
	payload, err := json.Marshal(chatRequest{Message: message, History: history})
	if err != nil {
		return nil, fmt.Errorf("failed to build chat payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.chatTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
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
		return nil, apierrors.NewAPIError(resp.StatusCode, endpoint, "chat request failed")
	}

	body, err := readBody(resp.Body)
	if err != nil {
		// The deadline can also fire mid-body, after headers arrived.
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apierrors.NewTimeoutError(endpoint)
		}
		return nil, apierrors.NewNetworkError(endpoint, err)
	}

	return parseChatReply(body, endpoint)
}

// parseChatReply extracts the reply text and tool call records. Both
// fields are optional; tool order and duplicates are preserved exactly as
// the backend returned them.
func parseChatReply(body []byte, endpoint string) (*models.ChatReply, error) {
	if !gjson.ValidBytes(body) {
		return nil, apierrors.NewParseError("chat response is not valid JSON", endpoint)
	}

	reply := &models.ChatReply{
		Text: gjson.GetBytes(body, "ai_message").String(),
	}

	for _, call := range gjson.GetBytes(body, "tool_calls").Array() {
		reply.ToolCalls = append(reply.ToolCalls, models.ToolCall{
			Name: call.Get("name").String(),
			ID:   call.Get("id").String(),
		})
	}

	for _, out := range gjson.GetBytes(body, "tool_outputs").Array() {
		reply.ToolOutputs = append(reply.ToolOutputs, models.ToolOutput{
			Name:    out.Get("name").String(),
			Content: out.Get("content").String(),
		})
	}

	return reply, nil
}
