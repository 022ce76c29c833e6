package planner

import (
	"fmt"
	"strings"

	"tripflow/models"
)

// BuildAttractionQuery renders the sub-task instruction for the attraction
// expert. The search keyword is the first stated preference, or a generic
// "attractions" term when the request has none.
func BuildAttractionQuery(req *models.TripRequest) string {
	keyword := "attractions"
	if len(req.Preferences) > 0 {
		keyword = req.Preferences[0]
	}
	return fmt.Sprintf("Use the maps_text_search tool to search %s for attractions matching %q (keywords=%s, city=%s).",
		req.City, keyword, keyword, req.City)
}

// BuildPlannerQuery renders the top-level task handed to the supervisor. It
// names the three personas, enumerates the required actions, restates the
// trip's basic facts and the output-format requirements, and appends the
// caller's free-text instructions verbatim when present.
func BuildPlannerQuery(req *models.TripRequest) string {
	preferences := "none"
	if len(req.Preferences) > 0 {
		preferences = strings.Join(req.Preferences, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are a travel planning coordinator directing three specialized agents:
- attraction search expert: finds attractions for a city and preference.
- weather lookup expert: fetches the city's forecast.
- hotel recommendation expert: recommends suitable hotels.

Coordinate them to complete the following:
1. %s
2. Query the local weather for the next %d days.
3. Recommend suitable %s accommodation.
4. Combine all results into a %d-day travel plan with 2-3 attractions, three meals
   (breakfast, lunch, dinner) and a recommended hotel for each day.
5. Output the complete result as JSON (including attraction coordinates, daily
   schedule, accommodation and transportation advice).

**Basic information:**
- City: %s
- Dates: %s to %s
- Days: %d
- Transportation: %s
- Accommodation: %s
- Preferences: %s

**Requirements:**
1. Schedule 2-3 attractions per day.
2. Every day must include breakfast, lunch and dinner.
3. Recommend one concrete hotel per day, chosen from the hotel results.
4. Account for distances between attractions and the transportation mode.
5. Return complete JSON-formatted data.
6. Attraction coordinates must be real and accurate.`,
		BuildAttractionQuery(req),
		req.TravelDays,
		req.Accommodation,
		req.TravelDays,
		req.City,
		req.StartDate, req.EndDate,
		req.TravelDays,
		req.Transportation,
		req.Accommodation,
		preferences,
	)

	if req.FreeTextInput != "" {
		fmt.Fprintf(&b, "\n**Additional requirements:** %s", req.FreeTextInput)
	}
	return b.String()
}
