package entities

// BookingEmailData carries the fields rendered into the confirmation email.
type BookingEmailData struct {
	UserName       string
	BookingCode    string
	PassName       string
	SpaceName      string
	DatesFormatted string
	TotalPrice     int
	AccessCode     string
	CurrentYear    int
}
