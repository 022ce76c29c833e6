package planner

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validPayload builds a payload with the requested number of days, each with
// two attractions and three ordered meals.
func validPayload(t *testing.T, days int) map[string]any {
	t.Helper()

	dayList := make([]map[string]any, 0, days)
	for i := 0; i < days; i++ {
		dayList = append(dayList, map[string]any{
			"date":        "2024-01-01",
			"day_index":   99,
			"description": "sightseeing",
			"attractions": []map[string]any{
				{"name": "Palace Museum", "address": "4 Jingshan Front St", "location": map[string]any{"longitude": 116.397, "latitude": 39.918}, "visit_duration": 180, "category": "museum"},
				{"name": "Jingshan Park", "address": "44 Jingshan West St", "location": map[string]any{"longitude": 116.395, "latitude": 39.928}, "visit_duration": 90, "category": "park"},
			},
			"meals": []map[string]any{
				{"type": "breakfast", "name": "Hotel breakfast"},
				{"type": "lunch", "name": "Dumplings"},
				{"type": "dinner", "name": "Roast duck"},
			},
		})
	}

	raw, err := json.Marshal(map[string]any{
		"city":                "Beijing",
		"start_date":          "ignored",
		"end_date":            "ignored",
		"days":                dayList,
		"overall_suggestions": "Bring comfortable shoes.",
	})
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	return payload
}

func TestMapPlanValidPayload(t *testing.T) {
	req := sampleRequest()
	plan, err := MapPlan(validPayload(t, 3), req)
	require.NoError(t, err)

	assert.Equal(t, "Beijing", plan.City)
	require.Len(t, plan.Days, 3)
	assert.Equal(t, "Palace Museum", plan.Days[0].Attractions[0].Name)
	assert.NotNil(t, plan.WeatherInfo)
}

func TestMapPlanNormalizesDatesAndIndices(t *testing.T) {
	req := sampleRequest()
	plan, err := MapPlan(validPayload(t, 3), req)
	require.NoError(t, err)

	assert.Equal(t, "2024-05-01", plan.StartDate)
	assert.Equal(t, "2024-05-03", plan.EndDate)
	for i, day := range plan.Days {
		assert.Equal(t, i, day.DayIndex)
	}
	assert.Equal(t, "2024-05-02", plan.Days[1].Date)

	// Fields the payload omitted are filled from the request.
	assert.Equal(t, "driving", plan.Days[0].Transportation)
	assert.Equal(t, "hotel", plan.Days[0].Accommodation)
}

func TestMapPlanDayCountMismatch(t *testing.T) {
	_, err := MapPlan(validPayload(t, 2), sampleRequest())
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestMapPlanMissingMeals(t *testing.T) {
	payload := validPayload(t, 3)
	days := payload["days"].([]any)
	delete(days[1].(map[string]any), "meals")

	_, err := MapPlan(payload, sampleRequest())
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestMapPlanMealOrderEnforced(t *testing.T) {
	payload := validPayload(t, 3)
	days := payload["days"].([]any)
	meals := days[0].(map[string]any)["meals"].([]any)
	meals[0], meals[2] = meals[2], meals[0]

	_, err := MapPlan(payload, sampleRequest())
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestMapPlanTooFewAttractions(t *testing.T) {
	payload := validPayload(t, 3)
	days := payload["days"].([]any)
	day := days[0].(map[string]any)
	day["attractions"] = day["attractions"].([]any)[:1]

	_, err := MapPlan(payload, sampleRequest())
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestMapPlanMissingCity(t *testing.T) {
	payload := validPayload(t, 3)
	delete(payload, "city")

	_, err := MapPlan(payload, sampleRequest())
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestMapPlanWrongFieldType(t *testing.T) {
	payload := validPayload(t, 3)
	payload["days"] = "not a list"

	_, err := MapPlan(payload, sampleRequest())
	assert.ErrorIs(t, err, ErrInvalidPlan)
}
