package packets

// SearchActivitiesRequest is the query-string shape of a search call. Gin
// coerces the strings; range and cursor semantics are checked by the search
// core afterwards.
type SearchActivitiesRequest struct {
	StartMinutesUTC *int     `form:"start_minutes_utc"`
	EndMinutesUTC   *int     `form:"end_minutes_utc"`
	DayOfWeekUTC    *int     `form:"day_of_week_utc"`
	AgeMin          *int     `form:"age_min"`
	AgeMax          *int     `form:"age_max"`
	Term            *string  `form:"q"`
	Category        *string  `form:"category"`
	City            *string  `form:"city"`
	Languages       []string `form:"language"`
	Limit           int      `form:"limit"`
	Cursor          string   `form:"cursor"`
}
