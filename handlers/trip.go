package handlers

import (
	"fmt"
	"net/http"
	"time"

	planRepo "tripflow/database/repository/plan"
	"tripflow/models"
	"tripflow/services/planner"
	"tripflow/services/tasks"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// TripHandler exposes the planning pipeline over HTTP.
type TripHandler struct {
	Planner planner.TripPlannerService
	Repo    planRepo.PlanRepository
	Queue   *asynq.Client
	Logger  *zap.Logger
}

func NewTripHandler(plannerSvc planner.TripPlannerService, repo planRepo.PlanRepository, queue *asynq.Client, logger *zap.Logger) *TripHandler {
	return &TripHandler{
		Planner: plannerSvc,
		Repo:    repo,
		Queue:   queue,
		Logger:  logger,
	}
}

// validateTripRequest checks what binding tags cannot: the date formats and
// that travel_days equals the inclusive day span.
func validateTripRequest(req *models.TripRequest) error {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return fmt.Errorf("start_date must be YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return fmt.Errorf("end_date must be YYYY-MM-DD")
	}
	span := int(end.Sub(start).Hours()/24) + 1
	if span < 1 {
		return fmt.Errorf("end_date precedes start_date")
	}
	if span != req.TravelDays {
		return fmt.Errorf("travel_days is %d but the date range spans %d days", req.TravelDays, span)
	}
	return nil
}

// PlanTrip handles POST /api/trips/plan. Planner failures never surface as
// errors here: the response always carries a structurally valid itinerary.
func (h *TripHandler) PlanTrip(c *gin.Context) {
	var req models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Error("PlanTrip: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if err := validateTripRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, fallback := h.Planner.PlanTrip(c.Request.Context(), &req)

	// Persist the result; planning succeeded either way, so storage errors
	// only get logged.
	var planID string
	if h.Repo != nil {
		id, err := h.Repo.Create(c.Request.Context(), models.SavedPlan{
			Request:  req,
			Plan:     plan,
			Status:   models.PlanStatusReady,
			Fallback: fallback,
		})
		if err != nil {
			h.Logger.Warn("PlanTrip: failed to save plan", zap.Error(err))
		} else {
			planID = id
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       planID,
		"plan":     plan,
		"fallback": fallback,
	})
}

// PlanTripAsync handles POST /api/trips/plan/async: it records a pending
// plan, enqueues the generation task and returns the plan ID immediately.
func (h *TripHandler) PlanTripAsync(c *gin.Context) {
	var req models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Error("PlanTripAsync: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if err := validateTripRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), models.SavedPlan{
		Request: req,
		Status:  models.PlanStatusPending,
	})
	if err != nil {
		h.Logger.Error("PlanTripAsync: failed to create plan record", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create plan record"})
		return
	}

	task, err := tasks.NewPlanGenerateTask(id, req)
	if err != nil {
		h.Logger.Error("PlanTripAsync: failed to build task", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to enqueue plan generation"})
		return
	}
	if _, err := h.Queue.Enqueue(task); err != nil {
		h.Logger.Error("PlanTripAsync: failed to enqueue task", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to enqueue plan generation"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"id": id, "status": models.PlanStatusPending})
}

// GetPlan handles GET /api/trips/:id.
func (h *TripHandler) GetPlan(c *gin.Context) {
	id := c.Param("id")
	plan, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
			return
		}
		h.Logger.Error("GetPlan: lookup failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch plan"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// ListPlans handles GET /api/trips.
func (h *TripHandler) ListPlans(c *gin.Context) {
	plans, err := h.Repo.ListRecent(c.Request.Context(), 20)
	if err != nil {
		h.Logger.Error("ListPlans: lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list plans"})
		return
	}
	c.JSON(http.StatusOK, plans)
}
