package planner

import (
	"context"

	"tripflow/models"
)

// Tool pairs a declaration handed to the chat model with the function that
// executes it. Args is the JSON object string produced by the model.
type Tool struct {
	Def  models.ToolDef
	Call func(ctx context.Context, args string) (string, error)
}
