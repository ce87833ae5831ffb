// README: Quote request/response shapes.
package quote

// Request is a single quote query. Zip takes precedence over City when both
// are present. SizeDirection and PivotCapacity are accepted for wire
// compatibility with existing clients but not enforced.
type Request struct {
	City          string `json:"city"`
	Zip           string `json:"zip"`
	Passengers    int    `json:"passengers"`
	Hours         int    `json:"hours"`
	EventDate     string `json:"event_date"`
	IsPromOrDance bool   `json:"is_prom_or_dance"`
	SizeDirection string `json:"size_direction"`
	PivotCapacity int    `json:"pivot_capacity"`
}

// Option is one priced vehicle in the response.
type Option struct {
	Name        string  `json:"name"`
	Capacity    int     `json:"capacity"`
	HoursBilled int     `json:"hours_billed"`
	HourlyRate  float64 `json:"hourly_rate"`
	TotalAllIn  float64 `json:"total_all_in"`
	PromApplied bool    `json:"prom_applied"`
	Note        string  `json:"note"`
	ZipCodes    string  `json:"zip_codes"`
}

// Groups holds the category lists in their fixed response order. Each list
// preserves the engine's (capacity, price) sort.
type Groups struct {
	PartyBus     []Option `json:"party_bus"`
	Limousine    []Option `json:"limousine"`
	ShuttleCoach []Option `json:"shuttle_coach"`
}

type Result struct {
	Groups Groups `json:"groups"`
	Note   string `json:"note"`
	City   string `json:"city"`
}

const noVehiclesNote = "No vehicles found for that city/zip/capacity."

const promNote = "Prom pricing applied (6hr min)."
