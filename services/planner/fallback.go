package planner

import (
	"fmt"
	"time"

	"tripflow/models"
)

// Base coordinate for synthetic attraction locations, offset per day and
// per attraction index.
const (
	fallbackBaseLongitude = 116.4
	fallbackBaseLatitude  = 39.9
	fallbackVisitMinutes  = 120
)

// GenerateFallbackPlan synthesizes a schema-valid itinerary directly from the
// request. It is purely deterministic and never fails; it backstops the
// pipeline whenever orchestration, extraction or validation does.
func GenerateFallbackPlan(req *models.TripRequest) *models.TripPlan {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		start = time.Time{}
	}

	days := make([]models.DayPlan, 0, req.TravelDays)
	for i := 0; i < req.TravelDays; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")

		attractions := make([]models.Attraction, 0, 2)
		for j := 0; j < 2; j++ {
			attractions = append(attractions, models.Attraction{
				Name:    fmt.Sprintf("%s attraction %d", req.City, i*2+j+1),
				Address: req.City,
				Location: models.Location{
					Longitude: fallbackBaseLongitude + float64(i)*0.01 + float64(j)*0.005,
					Latitude:  fallbackBaseLatitude + float64(i)*0.01 + float64(j)*0.005,
				},
				VisitDuration: fallbackVisitMinutes,
				Description:   fmt.Sprintf("A well-known attraction in %s", req.City),
				Category:      "attraction",
			})
		}

		days = append(days, models.DayPlan{
			Date:           date,
			DayIndex:       i,
			Description:    fmt.Sprintf("Day %d itinerary", i+1),
			Transportation: req.Transportation,
			Accommodation:  req.Accommodation,
			Attractions:    attractions,
			Meals: []models.Meal{
				{Type: models.MealBreakfast, Name: fmt.Sprintf("Day %d breakfast", i+1), Description: "Local breakfast specialties"},
				{Type: models.MealLunch, Name: fmt.Sprintf("Day %d lunch", i+1), Description: "Lunch recommendation"},
				{Type: models.MealDinner, Name: fmt.Sprintf("Day %d dinner", i+1), Description: "Dinner recommendation"},
			},
		})
	}

	return &models.TripPlan{
		City:        req.City,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Days:        days,
		WeatherInfo: []models.WeatherInfo{},
		OverallSuggestions: fmt.Sprintf(
			"This is a %d-day itinerary for %s. Check each attraction's opening hours in advance.",
			req.TravelDays, req.City),
	}
}
