package entities

import "time"

// Customer is the contact info collected in the booking flow.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BookingRequest is a request to complete a booking for a pass on selected dates.
type BookingRequest struct {
	PassID    string   `json:"pass_id"`
	Dates     []string `json:"dates"`
	UserName  string   `json:"user_name"`
	UserEmail string   `json:"user_email"`
	UserPhone string   `json:"user_phone"`
}

// Booking is a completed reservation.
type Booking struct {
	Code       string    `json:"code"`
	PassID     string    `json:"pass_id"`
	PassName   string    `json:"pass_name"`
	SpaceName  string    `json:"space_name"`
	Dates      []string  `json:"dates"`
	UserName   string    `json:"user_name"`
	UserEmail  string    `json:"user_email"`
	UserPhone  string    `json:"user_phone"`
	TotalPrice int       `json:"total_price"`
	PaymentRef string    `json:"payment_ref"`
	AccessCode string    `json:"access_code"`
	CreatedAt  time.Time `json:"created_at"`
}
