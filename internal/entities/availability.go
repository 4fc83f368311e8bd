package entities

// DateAvailability is the per-date detail of an availability check.
type DateAvailability struct {
	Date           string `json:"date"`
	IsAvailable    bool   `json:"is_available"`
	RemainingSpots int    `json:"remaining_spots"`
}

type AvailabilityResponse struct {
	PassID             string             `json:"pass_id"`
	IsOverallAvailable bool               `json:"is_overall_available"`
	Dates              []DateAvailability `json:"dates,omitempty"`
	FirstUnavailable   string             `json:"first_unavailable_date,omitempty"`
}

// CalendarDay is one cell of the 30-day booking calendar for a pass.
type CalendarDay struct {
	Date           string `json:"date"`
	RemainingSpots int    `json:"remaining_spots"`
	IsAvailable    bool   `json:"is_available"`
}
