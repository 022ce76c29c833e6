package tasks

import (
	"encoding/json"

	"tripflow/models"

	"github.com/hibiken/asynq"
)

const TypePlanGenerate = "plan:generate"

// PlanGeneratePayload is the queued unit of work for asynchronous planning.
type PlanGeneratePayload struct {
	PlanID  string             `json:"planId"`
	Request models.TripRequest `json:"request"`
}

func NewPlanGenerateTask(planID string, req models.TripRequest) (*asynq.Task, error) {
	b, err := json.Marshal(PlanGeneratePayload{PlanID: planID, Request: req})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePlanGenerate, b), nil
}
