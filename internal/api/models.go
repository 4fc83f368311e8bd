package api

// Availability
type AvailabilityRequest struct {
	PassID string   `json:"pass_id"`
	Dates  []string `json:"dates"`
}

// Booking
type CreateBookingResponse struct {
	BookingCode string   `json:"booking_code"`
	AccessCode  string   `json:"access_code"`
	TotalPrice  int      `json:"total_price"`
	Dates       []string `json:"dates"`
	Message     string   `json:"message"`
}
