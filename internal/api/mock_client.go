package api

import (
	"context"

	"firechat/internal/models"
)

// MockAgentClient is a mock implementation of AgentClientInterface for
// testing the chat controller, commands and TUI without a backend.
type MockAgentClient struct {
	// Mock return values
	ToolsVal   []string
	ToolsErr   error
	ReplyVal   *models.ChatReply
	ReplyErr   error
	HealthVal  *models.HealthStatus
	HealthErr  error
	BaseURLVal string

	// Call recorders
	FetchToolsCalled bool
	SendChatCalled   bool
	HealthCalled     bool
	LastMessage      string
	LastHistory      []models.HistoryEntry
}

// Ensure MockAgentClient implements AgentClientInterface
var _ AgentClientInterface = (*MockAgentClient)(nil)

func (m *MockAgentClient) FetchTools(ctx context.Context) ([]string, error) {
	m.FetchToolsCalled = true
	return m.ToolsVal, m.ToolsErr
}

func (m *MockAgentClient) SendChat(ctx context.Context, message string, history []models.HistoryEntry) (*models.ChatReply, error) {
	m.SendChatCalled = true
	m.LastMessage = message
	m.LastHistory = history
	return m.ReplyVal, m.ReplyErr
}

func (m *MockAgentClient) Health(ctx context.Context) (*models.HealthStatus, error) {
	m.HealthCalled = true
	return m.HealthVal, m.HealthErr
}

func (m *MockAgentClient) BaseURL() string {
	return m.BaseURLVal
}
