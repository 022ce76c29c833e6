package planner

import (
	"context"
	"errors"
	"testing"

	"tripflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedModel replays a fixed sequence of replies, one per call.
type scriptedModel struct {
	replies []models.Message
	calls   int
}

func (m *scriptedModel) GenerateContent(_ context.Context, _ []models.Message, _ []models.ToolDef) (*models.Message, error) {
	if m.calls >= len(m.replies) {
		return nil, errors.New("scripted model exhausted")
	}
	reply := m.replies[m.calls]
	m.calls++
	return &reply, nil
}

// failingModel always errors.
type failingModel struct{}

func (failingModel) GenerateContent(_ context.Context, _ []models.Message, _ []models.ToolDef) (*models.Message, error) {
	return nil, errors.New("model unavailable")
}

func TestAgentRunExecutesToolCalls(t *testing.T) {
	var gotArgs string
	weatherTool := Tool{
		Def: models.ToolDef{Name: "maps_weather", Description: "weather"},
		Call: func(_ context.Context, args string) (string, error) {
			gotArgs = args
			return `{"forecast": "sunny"}`, nil
		},
	}

	model := &scriptedModel{replies: []models.Message{
		{Role: models.RoleAssistant, ToolCalls: []models.ToolCall{
			{ID: "call-1", Name: "maps_weather", Arguments: `{"city":"Beijing"}`},
		}},
		{Role: models.RoleAssistant, Content: "Sunny for the next three days."},
	}}

	agent := NewAgent("weather_expert", weatherAgentPrompt, model, []Tool{weatherTool}, 4)
	answer, err := agent.Run(context.Background(), "weather in Beijing")
	require.NoError(t, err)
	assert.Equal(t, "Sunny for the next three days.", answer)
	assert.Contains(t, gotArgs, "Beijing")
}

func TestAgentRunUnknownToolReportedToModel(t *testing.T) {
	model := &scriptedModel{replies: []models.Message{
		{Role: models.RoleAssistant, ToolCalls: []models.ToolCall{
			{ID: "call-1", Name: "maps_nonexistent", Arguments: `{}`},
		}},
		{Role: models.RoleAssistant, Content: "done without the tool"},
	}}

	agent := NewAgent("attraction_expert", attractionAgentPrompt, model, nil, 4)
	answer, err := agent.Run(context.Background(), "task")
	require.NoError(t, err)
	assert.Equal(t, "done without the tool", answer)
}

func TestAgentRunStepBound(t *testing.T) {
	model := &scriptedModel{replies: []models.Message{
		{Role: models.RoleAssistant, ToolCalls: []models.ToolCall{{ID: "1", Name: "x"}}},
		{Role: models.RoleAssistant, ToolCalls: []models.ToolCall{{ID: "2", Name: "x"}}},
	}}

	agent := NewAgent("attraction_expert", attractionAgentPrompt, model, nil, 2)
	_, err := agent.Run(context.Background(), "task")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no final reply")
}

func TestSupervisorDispatchAndTerminal(t *testing.T) {
	finalAnswer := "Here is the plan:\n```json\n{\"city\": \"Beijing\"}\n```"
	model := &scriptedModel{replies: []models.Message{
		// Coordinator delegates to the attraction expert.
		{Role: models.RoleAssistant, ToolCalls: []models.ToolCall{
			{ID: "call-1", Name: "transfer_to_attraction_expert", Arguments: `{"task":"find museums in Beijing"}`},
		}},
		// The attraction expert replies directly.
		{Role: models.RoleAssistant, Content: "Found the Palace Museum and Jingshan Park."},
		// Coordinator finalizes.
		{Role: models.RoleAssistant, Content: finalAnswer},
	}}

	agents := []*Agent{NewAgent("attraction_expert", attractionAgentPrompt, model, nil, 4)}
	sup := NewSupervisor(model, agents, 6)

	var events []StepEvent
	answer, err := sup.Run(context.Background(), "plan a trip", func(ev StepEvent) {
		events = append(events, ev)
	})
	require.NoError(t, err)
	assert.Equal(t, finalAnswer, answer)

	require.Len(t, events, 3)
	assert.Equal(t, models.RoleUser, events[0].Role)
	assert.Equal(t, "attraction_expert", events[1].Agent)
	assert.Equal(t, models.RoleTool, events[1].Role)
	assert.Equal(t, models.RoleAssistant, events[2].Role)
}

func TestSupervisorUnknownAgentRecovers(t *testing.T) {
	model := &scriptedModel{replies: []models.Message{
		{Role: models.RoleAssistant, ToolCalls: []models.ToolCall{
			{ID: "call-1", Name: "transfer_to_food_expert", Arguments: `{"task":"anything"}`},
		}},
		{Role: models.RoleAssistant, Content: "final answer"},
	}}

	sup := NewSupervisor(model, nil, 4)
	answer, err := sup.Run(context.Background(), "task", nil)
	require.NoError(t, err)
	assert.Equal(t, "final answer", answer)
}

func TestSupervisorTurnBound(t *testing.T) {
	model := &scriptedModel{replies: []models.Message{
		{Role: models.RoleAssistant, ToolCalls: []models.ToolCall{{ID: "1", Name: "transfer_to_nobody"}}},
		{Role: models.RoleAssistant, ToolCalls: []models.ToolCall{{ID: "2", Name: "transfer_to_nobody"}}},
	}}

	sup := NewSupervisor(model, nil, 2)
	_, err := sup.Run(context.Background(), "task", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no terminal answer")
}

func TestSupervisorModelFailurePropagates(t *testing.T) {
	sup := NewSupervisor(failingModel{}, nil, 4)
	_, err := sup.Run(context.Background(), "task", nil)
	require.Error(t, err)
}
