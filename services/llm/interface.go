package llm

import (
	"context"

	"tripflow/models"
)

// ChatModel is the text-generation collaborator. It consumes an ordered
// message exchange plus the tools the caller is willing to execute, and
// returns exactly one assistant reply. The reply may request tool calls;
// executing them is the caller's job.
type ChatModel interface {
	GenerateContent(ctx context.Context, msgs []models.Message, tools []models.ToolDef) (*models.Message, error)
}
