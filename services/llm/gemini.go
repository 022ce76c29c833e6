// File: services/llm/gemini.go
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tripflow/config"
	"tripflow/models"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// GeminiChatModel adapts the Gemini API to the ChatModel interface.
type GeminiChatModel struct {
	client *genai.Client
	name   string
}

func NewGeminiChatModel(ctx context.Context, apiKey, modelName string) (*GeminiChatModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not configured")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if modelName == "" {
		modelName = "models/gemini-1.5-pro"
	}
	return &GeminiChatModel{client: client, name: modelName}, nil
}

// GenerateContent runs one chat turn over the full exchange. A leading system
// message becomes the model's system instruction; the rest of the exchange is
// replayed as chat history and the final message is sent as the new turn.
func (g *GeminiChatModel) GenerateContent(ctx context.Context, msgs []models.Message, tools []models.ToolDef) (*models.Message, error) {
	if len(msgs) == 0 {
		return nil, fmt.Errorf("gemini: empty message exchange")
	}

	m := g.client.GenerativeModel(g.name)
	if len(tools) > 0 {
		m.Tools = toGeminiTools(tools)
	}

	start := 0
	if msgs[0].Role == models.RoleSystem {
		m.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(msgs[0].Content)},
		}
		start = 1
	}
	if start >= len(msgs) {
		return nil, fmt.Errorf("gemini: exchange contains only a system message")
	}

	contents := make([]*genai.Content, 0, len(msgs)-start)
	for _, msg := range msgs[start:] {
		content, err := toGeminiContent(msg)
		if err != nil {
			return nil, err
		}
		contents = append(contents, content)
	}

	cs := m.StartChat()
	cs.History = contents[:len(contents)-1]
	resp, err := cs.SendMessage(ctx, contents[len(contents)-1].Parts...)
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	reply := &models.Message{Role: models.RoleAssistant}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		switch p := part.(type) {
		case genai.Text:
			sb.WriteString(string(p))
		case genai.FunctionCall:
			args, err := json.Marshal(p.Args)
			if err != nil {
				return nil, fmt.Errorf("gemini: failed to encode tool call args: %w", err)
			}
			reply.ToolCalls = append(reply.ToolCalls, models.ToolCall{
				ID:        uuid.New().String(),
				Name:      p.Name,
				Arguments: string(args),
			})
		}
	}
	reply.Content = sb.String()
	return reply, nil
}

// toGeminiContent maps an exchange message onto a Gemini chat content.
func toGeminiContent(msg models.Message) (*genai.Content, error) {
	switch msg.Role {
	case models.RoleUser:
		return &genai.Content{Role: "user", Parts: []genai.Part{genai.Text(msg.Content)}}, nil
	case models.RoleAssistant:
		parts := make([]genai.Part, 0, 1+len(msg.ToolCalls))
		if msg.Content != "" {
			parts = append(parts, genai.Text(msg.Content))
		}
		for _, call := range msg.ToolCalls {
			args := map[string]any{}
			if call.Arguments != "" {
				if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
					return nil, fmt.Errorf("gemini: invalid tool call args for %s: %w", call.Name, err)
				}
			}
			parts = append(parts, genai.FunctionCall{Name: call.Name, Args: args})
		}
		return &genai.Content{Role: "model", Parts: parts}, nil
	case models.RoleTool:
		return &genai.Content{
			Role: "function",
			Parts: []genai.Part{genai.FunctionResponse{
				Name:     msg.Name,
				Response: map[string]any{"content": msg.Content},
			}},
		}, nil
	default:
		return nil, fmt.Errorf("gemini: unsupported message role %q", msg.Role)
	}
}

func toGeminiTools(tools []models.ToolDef) []*genai.Tool {
	decls := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, t := range tools {
		schema := &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{},
			Required:   t.Required,
		}
		for name, prop := range t.Properties {
			schema.Properties[name] = &genai.Schema{
				Type:        toGeminiType(prop.Type),
				Description: prop.Description,
			}
		}
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  schema,
		})
	}
	return []*genai.Tool{{FunctionDeclarations: decls}}
}

func toGeminiType(t string) genai.Type {
	switch t {
	case "boolean":
		return genai.TypeBoolean
	case "integer":
		return genai.TypeInteger
	case "number":
		return genai.TypeNumber
	default:
		return genai.TypeString
	}
}

// Global chat model instance, shared by every agent in the roster.
var chatModel ChatModel

// GetChatModel returns the shared chat model, creating it on first use.
func GetChatModel(ctx context.Context) (ChatModel, error) {
	if chatModel != nil {
		return chatModel, nil
	}
	m, err := NewGeminiChatModel(ctx, config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		return nil, err
	}
	chatModel = m
	return chatModel, nil
}

// ResetChatModel clears the shared instance (used by tests and reconfiguration).
func ResetChatModel() {
	chatModel = nil
}
