package entities

// OccupancyEntry is one row of the admin occupancy report for a date.
// SharedPoolReserved is only set for passes whose physical spaces are shared
// with other pass types; it sums reservations across every pass in the pool.
type OccupancyEntry struct {
	Reserved           int `json:"reserved"`
	Capacity           int `json:"capacity"`
	SharedPoolReserved int `json:"shared_pool_reserved,omitempty"`
}
