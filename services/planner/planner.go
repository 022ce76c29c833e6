// File: services/planner/planner.go
package planner

import (
	"context"

	"tripflow/models"
	"tripflow/services/llm"
	"tripflow/utils"

	"go.uber.org/zap"
)

// TripPlannerService is the inbound planning contract: PlanTrip never fails.
// On any internal failure it returns the deterministic fallback itinerary.
type TripPlannerService interface {
	PlanTrip(ctx context.Context, req *models.TripRequest) (*models.TripPlan, bool)
}

// MultiAgentPlanner drives the full pipeline: compile the request into a
// coordinator task, run the supervised agent exchange, extract the JSON
// payload from the terminal answer and map it onto an itinerary. Every
// failure along the way is logged and routed to the fallback generator.
type MultiAgentPlanner struct {
	Supervisor *Supervisor
	Cache      *PlanCache // optional
	OnEvent    EventFunc  // optional progress sink
}

// NewMultiAgentPlanner builds the agent roster (attraction, weather and
// hotel experts bound to the map tools) and its supervisor.
func NewMultiAgentPlanner(model llm.ChatModel, mapTools []Tool, maxTurns, agentMaxSteps int) *MultiAgentPlanner {
	agents := []*Agent{
		NewAgent("attraction_expert", attractionAgentPrompt, model, mapTools, agentMaxSteps),
		NewAgent("weather_expert", weatherAgentPrompt, model, mapTools, agentMaxSteps),
		NewAgent("hotel_expert", hotelAgentPrompt, model, mapTools, agentMaxSteps),
	}
	return &MultiAgentPlanner{
		Supervisor: NewSupervisor(model, agents, maxTurns),
	}
}

// PlanTrip generates an itinerary for one request. The second return value
// reports whether the fallback generator produced the result.
func (p *MultiAgentPlanner) PlanTrip(ctx context.Context, req *models.TripRequest) (*models.TripPlan, bool) {
	logger := utils.GetLogger()

	if p.Cache != nil {
		if cached := p.Cache.Get(ctx, req); cached != nil {
			logger.Debug("PlanTrip: cache hit", zap.String("city", req.City))
			return cached, false
		}
	}

	plan, err := p.planWithAgents(ctx, req)
	if err != nil {
		logger.Warn("PlanTrip: agent pipeline failed, using fallback plan",
			zap.String("city", req.City),
			zap.Int("travelDays", req.TravelDays),
			zap.Error(err))
		return GenerateFallbackPlan(req), true
	}

	if p.Cache != nil {
		p.Cache.Set(ctx, req, plan)
	}
	return plan, false
}

// planWithAgents runs the orchestration-and-extraction pipeline; any error
// means "no usable answer obtained".
func (p *MultiAgentPlanner) planWithAgents(ctx context.Context, req *models.TripRequest) (*models.TripPlan, error) {
	if p == nil || p.Supervisor == nil {
		return nil, ErrNotInitialized
	}

	task := BuildPlannerQuery(req)
	answer, err := p.Supervisor.Run(ctx, task, p.OnEvent)
	if err != nil {
		return nil, err
	}

	payload, err := ExtractPayload(answer)
	if err != nil {
		return nil, err
	}
	return MapPlan(payload, req)
}
