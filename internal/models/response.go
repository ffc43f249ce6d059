package models

// ToolCall records a single tool invocation the agent made while producing
// a reply. The backend may report the same tool more than once.
type ToolCall struct {
	Name string
	ID   string
}

// ToolOutput is a truncated tool result echoed back by the backend.
// The client displays tool names only; outputs are kept for completeness.
type ToolOutput struct {
	Name    string
	Content string
}

// ChatReply is the parsed body of a successful POST /chat response.
type ChatReply struct {
	Text        string
	ToolCalls   []ToolCall
	ToolOutputs []ToolOutput
}

// ToolNames returns the invoked tool identifiers in the order the backend
// reported them. Duplicates are preserved.
func (r *ChatReply) ToolNames() []string {
	if len(r.ToolCalls) == 0 {
		return nil
	}
	names := make([]string, len(r.ToolCalls))
	for i, tc := range r.ToolCalls {
		names[i] = tc.Name
	}
	return names
}

// HealthStatus is the parsed body of GET /health.
type HealthStatus struct {
	Status         string
	ToolsAvailable int
}

// Ready reports whether the agent has finished loading its tools.
func (h *HealthStatus) Ready() bool {
	return h.Status == "healthy"
}
