package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tripflow/models"
	"tripflow/services/llm"
)

const transferToolPrefix = "transfer_to_"

// StepEvent is one intermediate exchange snapshot, reported as the
// supervisor run progresses.
type StepEvent struct {
	Agent   string          `json:"agent"`
	Role    models.RoleType `json:"role"`
	Content string          `json:"content"`
}

// EventFunc receives intermediate exchange snapshots. May be nil.
type EventFunc func(StepEvent)

// Supervisor coordinates the agent roster. It owns the exchange of one
// planning call: the coordinator model inspects it each turn and either
// addresses one specialized agent through a transfer tool or finalizes with
// a synthesized answer. Agents are invoked one at a time; their replies are
// appended to the exchange before the next decision.
type Supervisor struct {
	Name     string
	Prompt   string
	Model    llm.ChatModel
	MaxTurns int

	agentsByName map[string]*Agent
	transferDefs []models.ToolDef
}

func NewSupervisor(model llm.ChatModel, agents []*Agent, maxTurns int) *Supervisor {
	if maxTurns <= 0 {
		maxTurns = 12
	}
	s := &Supervisor{
		Name:         "planner_supervisor",
		Prompt:       supervisorPrompt,
		Model:        model,
		MaxTurns:     maxTurns,
		agentsByName: make(map[string]*Agent, len(agents)),
	}
	for _, agent := range agents {
		s.agentsByName[agent.Name] = agent
		s.transferDefs = append(s.transferDefs, models.ToolDef{
			Name:        transferToolPrefix + agent.Name,
			Description: fmt.Sprintf("Hand a sub-task to %s and receive its answer.", agent.Name),
			Properties: map[string]models.ToolProp{
				"task": {Type: "string", Description: "The instruction for the agent."},
			},
			Required: []string{"task"},
		})
	}
	return s
}

// Run drives the coordination loop for one task and returns the terminal
// answer: the last message body observed before the run ends, regardless of
// which role produced it. The loop is bounded by MaxTurns; exhausting the
// bound without a terminal reply is an error, as is any model or agent
// failure.
func (s *Supervisor) Run(ctx context.Context, task string, onEvent EventFunc) (string, error) {
	emit := func(agent string, role models.RoleType, content string) {
		if onEvent != nil {
			onEvent(StepEvent{Agent: agent, Role: role, Content: content})
		}
	}

	exchange := []models.Message{
		{Role: models.RoleSystem, Content: s.Prompt},
		{Role: models.RoleUser, Content: task},
	}
	emit(s.Name, models.RoleUser, task)

	lastBody := task
	for turn := 0; turn < s.MaxTurns; turn++ {
		reply, err := s.Model.GenerateContent(ctx, exchange, s.transferDefs)
		if err != nil {
			return "", fmt.Errorf("supervisor: %w", err)
		}
		exchange = append(exchange, *reply)
		if reply.Content != "" {
			lastBody = reply.Content
			emit(s.Name, models.RoleAssistant, reply.Content)
		}

		if len(reply.ToolCalls) == 0 {
			// Terminal: the coordinator finalized without delegating.
			return lastBody, nil
		}

		for _, call := range reply.ToolCalls {
			answer, err := s.dispatch(ctx, call, lastBody)
			if err != nil {
				return "", err
			}
			exchange = append(exchange, models.Message{
				Role:       models.RoleTool,
				ToolCallID: call.ID,
				Name:       call.Name,
				Content:    answer,
			})
			lastBody = answer
			emit(strings.TrimPrefix(call.Name, transferToolPrefix), models.RoleTool, answer)
		}
	}
	return "", fmt.Errorf("supervisor: no terminal answer after %d turns", s.MaxTurns)
}

// dispatch forwards one transfer call to the named agent. The derived
// instruction is the call's task argument, falling back to the last observed
// message body when the coordinator omitted it.
func (s *Supervisor) dispatch(ctx context.Context, call models.ToolCall, lastBody string) (string, error) {
	name := strings.TrimPrefix(call.Name, transferToolPrefix)
	agent, ok := s.agentsByName[name]
	if !ok {
		// Reported back into the exchange so the coordinator can recover.
		return fmt.Sprintf("error: unknown agent %q", name), nil
	}

	var args struct {
		Task string `json:"task"`
	}
	if call.Arguments != "" {
		_ = json.Unmarshal([]byte(call.Arguments), &args)
	}
	if args.Task == "" {
		args.Task = lastBody
	}

	answer, err := agent.Run(ctx, args.Task)
	if err != nil {
		return "", fmt.Errorf("supervisor: dispatch to %s: %w", name, err)
	}
	return answer, nil
}
