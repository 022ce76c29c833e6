package planner

import (
	"context"
	"fmt"

	"tripflow/models"
	"tripflow/services/llm"
)

// Agent is a specialized reasoning agent: one persona prompt, one chat model
// and the map tools. It holds no other local logic.
type Agent struct {
	Name     string
	Prompt   string
	Model    llm.ChatModel
	Tools    []Tool
	MaxSteps int

	toolsByName map[string]Tool
	toolDefs    []models.ToolDef
}

func NewAgent(name, prompt string, model llm.ChatModel, tools []Tool, maxSteps int) *Agent {
	if maxSteps <= 0 {
		maxSteps = 8
	}
	a := &Agent{
		Name:        name,
		Prompt:      prompt,
		Model:       model,
		Tools:       tools,
		MaxSteps:    maxSteps,
		toolsByName: make(map[string]Tool, len(tools)),
		toolDefs:    make([]models.ToolDef, 0, len(tools)),
	}
	for _, t := range tools {
		a.toolsByName[t.Def.Name] = t
		a.toolDefs = append(a.toolDefs, t.Def)
	}
	return a
}

// Run executes the agent on one sub-task. The agent may invoke zero or more
// tools before replying; tool calls are executed one at a time and their
// outputs appended to the agent's local exchange before the next model turn.
// Returns the agent's final text reply.
func (a *Agent) Run(ctx context.Context, task string) (string, error) {
	exchange := []models.Message{
		{Role: models.RoleSystem, Content: a.Prompt},
		{Role: models.RoleUser, Content: task},
	}

	for step := 0; step < a.MaxSteps; step++ {
		reply, err := a.Model.GenerateContent(ctx, exchange, a.toolDefs)
		if err != nil {
			return "", fmt.Errorf("agent %s: %w", a.Name, err)
		}
		exchange = append(exchange, *reply)

		if len(reply.ToolCalls) == 0 {
			return reply.Content, nil
		}

		for _, call := range reply.ToolCalls {
			exchange = append(exchange, a.execToolCall(ctx, call))
		}
	}
	return "", fmt.Errorf("agent %s: no final reply after %d steps", a.Name, a.MaxSteps)
}

// execToolCall runs one tool call and wraps its outcome as a tool message.
// Tool failures are reported back to the model as text rather than aborting
// the run; the model decides how to proceed.
func (a *Agent) execToolCall(ctx context.Context, call models.ToolCall) models.Message {
	msg := models.Message{
		Role:       models.RoleTool,
		ToolCallID: call.ID,
		Name:       call.Name,
	}

	tool, ok := a.toolsByName[call.Name]
	if !ok {
		msg.Content = fmt.Sprintf("error: unknown tool %q", call.Name)
		return msg
	}
	out, err := tool.Call(ctx, call.Arguments)
	if err != nil {
		msg.Content = fmt.Sprintf("error: %v", err)
		return msg
	}
	msg.Content = out
	return msg
}
