package service

import "github.com/LoafLife/loaf-life-reservations/internal/catalog"

// TotalPrice computes the charge for a pass over the selected dates. Day-rate
// categories multiply by the number of days; memberships are a flat fee no
// matter how many dates were picked. No pass or no dates prices at 0.
func TotalPrice(pass catalog.PassType, dates []string) int {
	if pass.ID == "" || len(dates) == 0 {
		return 0
	}
	if pass.Category.PerDay() {
		return pass.Price * len(dates)
	}
	return pass.Price
}
