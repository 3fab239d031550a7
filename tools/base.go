// Package tools exposes the triage analyzers (extraction, fit, guardrail)
// as self-describing tools an agent or MCP client can discover and invoke.
package tools

import (
	"context"
	"encoding/json"
	"sort"
)

// Tool is one invokable analyzer. Implementations must be safe for
// concurrent Execute calls; the agent fans postings out across goroutines.
type Tool interface {
	// Name returns the identifier used for registry lookup and tools/call
	Name() string

	// Description tells the caller when to pick this tool
	Description() string

	// InputSchema returns the JSON schema of the expected input object
	InputSchema() map[string]interface{}

	// Execute runs the tool. The returned payload is a ToolResult envelope;
	// invalid input surfaces as an error result, not a Go error.
	Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error)
}

// ToolRegistry maps tool names to implementations
type ToolRegistry struct {
	tools map[string]Tool
}

// NewToolRegistry creates an empty registry
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool, replacing any previous tool with the same name
func (r *ToolRegistry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools sorted by name, so tools/list and the
// discovery endpoint render the same order on every call.
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool {
		return tools[i].Name() < tools[j].Name()
	})
	return tools
}

// GetToolDefinitions renders every tool as a name/description/parameters
// document for discovery responses, in the same order as List.
func (r *ToolRegistry) GetToolDefinitions() []map[string]interface{} {
	tools := r.List()
	definitions := make([]map[string]interface{}, 0, len(tools))
	for _, tool := range tools {
		definitions = append(definitions, map[string]interface{}{
			"name":        tool.Name(),
			"description": tool.Description(),
			"parameters":  tool.InputSchema(),
		})
	}
	return definitions
}

// ToolResult is the envelope every Execute call returns. Exactly one of
// Data and Error is populated.
type ToolResult struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// NewSuccessResult wraps data in a successful envelope
func NewSuccessResult(data interface{}) (json.RawMessage, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(ToolResult{Success: true, Data: dataBytes})
}

// NewErrorResult wraps a failure message in an error envelope
func NewErrorResult(errMsg string) (json.RawMessage, error) {
	return json.Marshal(ToolResult{Success: false, Error: errMsg})
}
