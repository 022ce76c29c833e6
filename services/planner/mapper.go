package planner

import (
	"encoding/json"
	"fmt"
	"time"

	"tripflow/models"
)

var mealOrder = []string{models.MealBreakfast, models.MealLunch, models.MealDinner}

// MapPlan converts an extracted payload into a TripPlan, or reports a
// validation failure. No partial result is ever returned: a missing required
// field, a wrongly typed field or a day count mismatching the request means
// the caller must fall back entirely.
//
// Day dates and indices are normalized from the request's start date so the
// returned plan always satisfies the itinerary invariants, whatever the
// payload claimed.
func MapPlan(payload map[string]any, req *models.TripRequest) (*models.TripPlan, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	var plan models.TripPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}

	if plan.City == "" {
		return nil, fmt.Errorf("%w: missing city", ErrInvalidPlan)
	}
	if len(plan.Days) != req.TravelDays {
		return nil, fmt.Errorf("%w: got %d days, want %d", ErrInvalidPlan, len(plan.Days), req.TravelDays)
	}

	for i := range plan.Days {
		day := &plan.Days[i]
		if n := len(day.Attractions); n < 2 || n > 3 {
			return nil, fmt.Errorf("%w: day %d has %d attractions, want 2-3", ErrInvalidPlan, i, n)
		}
		if len(day.Meals) != len(mealOrder) {
			return nil, fmt.Errorf("%w: day %d has %d meals, want 3", ErrInvalidPlan, i, len(day.Meals))
		}
		for j, meal := range day.Meals {
			if meal.Type != mealOrder[j] {
				return nil, fmt.Errorf("%w: day %d meal %d is %q, want %q", ErrInvalidPlan, i, j, meal.Type, mealOrder[j])
			}
		}
		if day.Transportation == "" {
			day.Transportation = req.Transportation
		}
		if day.Accommodation == "" {
			day.Accommodation = req.Accommodation
		}
	}

	plan.StartDate = req.StartDate
	plan.EndDate = req.EndDate
	if start, err := time.Parse("2006-01-02", req.StartDate); err == nil {
		for i := range plan.Days {
			plan.Days[i].DayIndex = i
			plan.Days[i].Date = start.AddDate(0, 0, i).Format("2006-01-02")
		}
	}
	if plan.WeatherInfo == nil {
		plan.WeatherInfo = []models.WeatherInfo{}
	}
	return &plan, nil
}
