package models

import "time"

// TripRequest is the payload coming from the frontend into /api/trips/plan.
// Dates are YYYY-MM-DD strings; TravelDays must equal the inclusive day span.
type TripRequest struct {
	City           string   `json:"city" bson:"city" binding:"required"`
	StartDate      string   `json:"start_date" bson:"startDate" binding:"required"`
	EndDate        string   `json:"end_date" bson:"endDate" binding:"required"`
	TravelDays     int      `json:"travel_days" bson:"travelDays" binding:"required,min=1"`
	Transportation string   `json:"transportation" bson:"transportation"`
	Accommodation  string   `json:"accommodation" bson:"accommodation"`
	Preferences    []string `json:"preferences" bson:"preferences"`
	FreeTextInput  string   `json:"free_text_input,omitempty" bson:"freeTextInput,omitempty"`
}

// Location is a WGS-84 coordinate pair in decimal degrees.
type Location struct {
	Longitude float64 `json:"longitude" bson:"longitude"`
	Latitude  float64 `json:"latitude" bson:"latitude"`
}

// Attraction is a single point of interest scheduled on a day.
type Attraction struct {
	Name          string   `json:"name" bson:"name"`
	Address       string   `json:"address" bson:"address"`
	Location      Location `json:"location" bson:"location"`
	VisitDuration int      `json:"visit_duration" bson:"visitDuration"` // minutes
	Description   string   `json:"description" bson:"description"`
	Category      string   `json:"category" bson:"category"`
}

// Meal types, in the order they must appear within a day.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
)

type Meal struct {
	Type        string `json:"type" bson:"type"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
}

// WeatherInfo is a per-day forecast record, passed through from the weather agent.
type WeatherInfo struct {
	Date        string `json:"date" bson:"date"`
	DayWeather  string `json:"day_weather,omitempty" bson:"dayWeather,omitempty"`
	DayTemp     string `json:"day_temp,omitempty" bson:"dayTemp,omitempty"`
	NightTemp   string `json:"night_temp,omitempty" bson:"nightTemp,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

// Hotel is a lodging recommendation, passed through from the hotel agent.
type Hotel struct {
	Name        string   `json:"name" bson:"name"`
	Address     string   `json:"address,omitempty" bson:"address,omitempty"`
	Location    Location `json:"location,omitempty" bson:"location,omitempty"`
	Price       string   `json:"price,omitempty" bson:"price,omitempty"`
	Rating      string   `json:"rating,omitempty" bson:"rating,omitempty"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
}

// POIInfo is a raw point-of-interest record from the map collaborator.
type POIInfo struct {
	ID       string   `json:"id" bson:"id"`
	Name     string   `json:"name" bson:"name"`
	Address  string   `json:"address" bson:"address"`
	Location Location `json:"location" bson:"location"`
	Type     string   `json:"type,omitempty" bson:"type,omitempty"`
}

// DayPlan is one day of the itinerary. DayIndex is 0-based;
// Date equals the trip start date plus DayIndex days.
type DayPlan struct {
	Date           string       `json:"date" bson:"date"`
	DayIndex       int          `json:"day_index" bson:"dayIndex"`
	Description    string       `json:"description" bson:"description"`
	Transportation string       `json:"transportation" bson:"transportation"`
	Accommodation  string       `json:"accommodation" bson:"accommodation"`
	Attractions    []Attraction `json:"attractions" bson:"attractions"`
	Meals          []Meal       `json:"meals" bson:"meals"`
}

// TripPlan is the full itinerary returned to the caller.
// Invariant: len(Days) equals the request's TravelDays.
type TripPlan struct {
	City               string        `json:"city" bson:"city"`
	StartDate          string        `json:"start_date" bson:"startDate"`
	EndDate            string        `json:"end_date" bson:"endDate"`
	Days               []DayPlan     `json:"days" bson:"days"`
	WeatherInfo        []WeatherInfo `json:"weather_info" bson:"weatherInfo"`
	OverallSuggestions string        `json:"overall_suggestions" bson:"overallSuggestions"`
}

// SavedPlan statuses.
const (
	PlanStatusPending = "pending"
	PlanStatusReady   = "ready"
)

// SavedPlan is a persisted planning result.
type SavedPlan struct {
	ID        string      `json:"id" bson:"id"`
	Request   TripRequest `json:"request" bson:"request"`
	Plan      *TripPlan   `json:"plan,omitempty" bson:"plan,omitempty"`
	Status    string      `json:"status" bson:"status"`
	Fallback  bool        `json:"fallback" bson:"fallback"`
	CreatedAt time.Time   `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time   `json:"updated_at" bson:"updatedAt"`
}
