package models

// RoleType tags who authored a message in an agent exchange.
type RoleType string

const (
	// RoleUser marks the task-originator message that opens an exchange.
	RoleUser RoleType = "user"
	// RoleAssistant marks replies produced by a chat model.
	RoleAssistant RoleType = "assistant"
	// RoleSystem marks persona instructions.
	RoleSystem RoleType = "system"
	// RoleTool marks the output of an executed tool call.
	RoleTool RoleType = "tool"
)

// ToolCall is a model-requested invocation of a named tool.
// Arguments is a JSON object string.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// Message is one entry in an agent exchange. An assistant message carries
// either Content, ToolCalls, or both; a tool message carries the call's
// output in Content and echoes the call in ToolCallID/Name.
type Message struct {
	Role       RoleType   `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	Name       string     `json:"name,omitempty"`
}

// ToolProp describes one parameter of a tool.
type ToolProp struct {
	Type        string `json:"type"` // "string", "boolean", "integer", "number"
	Description string `json:"description,omitempty"`
}

// ToolDef declares a tool to the chat model: a name, what it does,
// and an object schema for its arguments.
type ToolDef struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Properties  map[string]ToolProp `json:"properties,omitempty"`
	Required    []string            `json:"required,omitempty"`
}
