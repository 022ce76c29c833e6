package planner

import (
	"testing"

	"tripflow/models"

	"github.com/stretchr/testify/assert"
)

func sampleRequest() *models.TripRequest {
	return &models.TripRequest{
		City:           "Beijing",
		StartDate:      "2024-05-01",
		EndDate:        "2024-05-03",
		TravelDays:     3,
		Transportation: "driving",
		Accommodation:  "hotel",
	}
}

func TestBuildAttractionQueryUsesFirstPreference(t *testing.T) {
	req := sampleRequest()
	req.Preferences = []string{"museums", "parks"}

	query := BuildAttractionQuery(req)
	assert.Contains(t, query, "museums")
	assert.NotContains(t, query, "parks")
	assert.Contains(t, query, "Beijing")
}

func TestBuildAttractionQueryDefaultKeyword(t *testing.T) {
	query := BuildAttractionQuery(sampleRequest())
	assert.Contains(t, query, "attractions")
	assert.Contains(t, query, "maps_text_search")
}

func TestBuildPlannerQueryContents(t *testing.T) {
	req := sampleRequest()
	query := BuildPlannerQuery(req)

	assert.Contains(t, query, "Beijing")
	assert.Contains(t, query, "2024-05-01")
	assert.Contains(t, query, "2024-05-03")
	assert.Contains(t, query, "3-day travel plan")
	assert.Contains(t, query, "hotel")
	assert.Contains(t, query, "driving")
	assert.Contains(t, query, "Preferences: none")
	assert.Contains(t, query, "JSON")
	assert.NotContains(t, query, "Additional requirements")
}

func TestBuildPlannerQueryAppendsFreeText(t *testing.T) {
	req := sampleRequest()
	req.FreeTextInput = "avoid crowded places"

	query := BuildPlannerQuery(req)
	assert.Contains(t, query, "**Additional requirements:** avoid crowded places")
}
