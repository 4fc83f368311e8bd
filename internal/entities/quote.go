package entities

type QuoteResponse struct {
	PassID     string   `json:"pass_id"`
	Dates      []string `json:"dates"`
	TotalPrice int      `json:"total_price"`
}
