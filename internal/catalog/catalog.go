package catalog

// PassCategory groups pass types by how they are priced and how long they run.
type PassCategory string

const (
	CategoryDay                PassCategory = "day"
	CategoryPrivateDay         PassCategory = "private-day"
	CategoryWeek               PassCategory = "week"
	CategoryMonthly            PassCategory = "monthly"
	CategoryReservedMonthly    PassCategory = "reserved-monthly"
	CategoryReservedCommitment PassCategory = "reserved-commitment"
	CategoryPrivateMonthly     PassCategory = "private-monthly"
)

// PerDay reports whether a category is billed per selected day rather than flat.
func (c PassCategory) PerDay() bool {
	return c == CategoryDay || c == CategoryPrivateDay
}

// PassType is a purchasable product. The catalog is static configuration.
type PassType struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Price       int          `json:"price"` // whole dollars
	Description string       `json:"description"`
	Duration    string       `json:"duration"`
	Category    PassCategory `json:"category"`
}

// SpaceInventory describes the physical spaces a pass type draws capacity from.
type SpaceInventory struct {
	Name          string   `json:"name"`
	DailyCapacity int      `json:"daily_capacity"`
	Description   string   `json:"description"`
	Spaces        []string `json:"spaces"`
}

var flexSpaces = []string{
	"Tufts Run", "Carrabassett Way", "Bigelow Glades", "Flagstaff Bowl",
	"Cathedral Drop", "Poplar Cruiser", "Little Big", "Cranberry Chute",
	"Horn's Edge", "West Face", "Abe's Summit", "Spaulding Steeps",
}

var gondolaSpaces = []string{"Gondola 1", "Gondola 2", "Gondola 3", "Gondola 4"}

var passTypes = []PassType{
	{
		ID:          "first-tracks",
		Name:        "First Tracks",
		Price:       15,
		Description: "Day Pass - Full day access to coworking space",
		Duration:    "1 day",
		Category:    CategoryDay,
	},
	{
		ID:          "the-gate",
		Name:        "The Gate",
		Price:       50,
		Description: "Day Rate for Private Office",
		Duration:    "1 day",
		Category:    CategoryPrivateDay,
	},
	{
		ID:          "base-lodge",
		Name:        "Base Lodge",
		Price:       60,
		Description: "1 Week Membership - Unlimited access for 7 consecutive days",
		Duration:    "7 days",
		Category:    CategoryWeek,
	},
	{
		ID:          "mountain-local",
		Name:        "Mountain Local",
		Price:       175,
		Description: "1 Month Membership - Unlimited access for 30 days",
		Duration:    "30 days",
		Category:    CategoryMonthly,
	},
	{
		ID:          "gondola-month",
		Name:        "The Gondola",
		Price:       350,
		Description: "Private Reserved Workstation - Monthly membership",
		Duration:    "30 days",
		Category:    CategoryReservedMonthly,
	},
	{
		ID:          "gondola-commitment",
		Name:        "The Gondola",
		Price:       250,
		Description: "Private Reserved Workstation - 6 to 12 month commitment",
		Duration:    "6-12 months",
		Category:    CategoryReservedCommitment,
	},
	{
		ID:          "private-office",
		Name:        "Private",
		Price:       450,
		Description: "Private Office - Full month access to dedicated private office",
		Duration:    "30 days",
		Category:    CategoryPrivateMonthly,
	},
}

var spaceInventory = map[string]SpaceInventory{
	"first-tracks": {
		Name:          "Flex Space Access",
		DailyCapacity: 12,
		Description:   "Access to flex desks and shared workspace areas",
		Spaces:        flexSpaces,
	},
	"the-gate": {
		Name:          "The Gate Private Office",
		DailyCapacity: 1,
		Description:   "Day access to The Gate private office with lockable door",
		Spaces:        []string{"The Gate"},
	},
	"base-lodge": {
		Name:          "Flex Space Access",
		DailyCapacity: 12,
		Description:   "Weekly access to flex desks and shared spaces",
		Spaces:        flexSpaces,
	},
	"mountain-local": {
		Name:          "Flex Space Access",
		DailyCapacity: 12,
		Description:   "Monthly access to flex desks and shared spaces",
		Spaces:        flexSpaces,
	},
	"gondola-month": {
		Name:          "Gondola Workstations",
		DailyCapacity: 4,
		Description:   "Access to reserved Gondola workstations with storage",
		Spaces:        gondolaSpaces,
	},
	"gondola-commitment": {
		Name:          "Gondola Workstations",
		DailyCapacity: 4,
		Description:   "Reserved Gondola workstations (6-12 month commitment)",
		Spaces:        gondolaSpaces,
	},
	"private-office": {
		Name:          "Ira Mountain Private Office",
		DailyCapacity: 1,
		Description:   "Full month access to Ira Mountain dedicated private office",
		Spaces:        []string{"Ira Mountain"},
	},
}

// Passes returns the full pass catalog in display order. Callers must not mutate it.
func Passes() []PassType {
	return passTypes
}

func PassByID(id string) (PassType, bool) {
	for _, p := range passTypes {
		if p.ID == id {
			return p, true
		}
	}
	return PassType{}, false
}

func InventoryFor(passID string) (SpaceInventory, bool) {
	inv, ok := spaceInventory[passID]
	return inv, ok
}

// CapacityFor returns the daily capacity for a pass type. Unknown IDs get 0,
// so availability math treats them as fully sold out rather than erroring.
func CapacityFor(passID string) int {
	return spaceInventory[passID].DailyCapacity
}

// SharedPoolPassIDs returns every pass ID whose inventory lists the same physical
// spaces as the given pass, the given pass included. The two Gondola variants share
// the same 4 workstations but keep independent reservation pools; whether they
// should contend for the same seats is an unresolved product question, so the
// ledger keys strictly by pass ID and this helper only exists so reporting can
// show combined physical usage for a shared pool.
func SharedPoolPassIDs(passID string) []string {
	inv, ok := spaceInventory[passID]
	if !ok {
		return nil
	}
	var ids []string
	for _, p := range passTypes {
		other, ok := spaceInventory[p.ID]
		if !ok || len(other.Spaces) != len(inv.Spaces) {
			continue
		}
		same := true
		for i := range inv.Spaces {
			if other.Spaces[i] != inv.Spaces[i] {
				same = false
				break
			}
		}
		if same {
			ids = append(ids, p.ID)
		}
	}
	return ids
}
