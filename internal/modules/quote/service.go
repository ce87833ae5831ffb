// README: Quote engine; filters the catalog by location, prices each row, groups by category.
package quote

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"fleetquote/internal/modules/catalog"
)

var ErrNoCatalog = errors.New("catalog not loaded")

// ResultCache is the optional quote result cache. Implementations must treat
// misses and backend failures identically: Get returns false and the engine
// recomputes.
type ResultCache interface {
	Get(ctx context.Context, key string) (Result, bool)
	Set(ctx context.Context, key string, res Result)
}

type Service struct {
	catalog *catalog.Service
	cache   ResultCache
}

func NewService(cat *catalog.Service, cache ResultCache) *Service {
	return &Service{catalog: cat, cache: cache}
}

// Quote computes a grouped, priced vehicle list for one request. Pure over
// (snapshot, request); the snapshot is never mutated, so caching per request
// key is sound for the process lifetime.
func (s *Service) Quote(ctx context.Context, req Request) (Result, error) {
	if s.catalog == nil || s.catalog.Snapshot() == nil {
		return Result{}, ErrNoCatalog
	}
	key := requestKey(req)
	if s.cache != nil {
		if res, ok := s.cache.Get(ctx, key); ok {
			return res, nil
		}
	}
	res := s.compute(req)
	if s.cache != nil {
		s.cache.Set(ctx, key, res)
	}
	return res, nil
}

func (s *Service) compute(req Request) Result {
	snap := s.catalog.Snapshot()

	matched, resolvedCity := matchLocation(snap, req)
	result := Result{
		Groups: Groups{
			PartyBus:     []Option{},
			Limousine:    []Option{},
			ShuttleCoach: []Option{},
		},
		City: resolvedCity,
	}
	if len(matched) == 0 {
		result.Note = noVehiclesNote
		return result
	}

	prom := req.IsPromOrDance || isPromWindow(req.EventDate)

	// Sort key column depends on prom status; load-time schema validation
	// guarantees both columns exist.
	sortCol := "price_4hr"
	if prom {
		sortCol = "prom_price_6hr"
	}

	type candidate struct {
		rec      catalog.Record
		capacity int
		price    float64
	}
	rows := make([]candidate, 0, len(matched))
	for _, rec := range matched {
		rows = append(rows, candidate{
			rec:      rec,
			capacity: coerceCapacity(rec["capacity"]),
			price:    parseFloatDefault(rec[sortCol], 0),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].capacity != rows[j].capacity {
			return rows[i].capacity < rows[j].capacity
		}
		return rows[i].price < rows[j].price
	})

	for i, row := range rows {
		opt := priceOption(snap, row.rec, row.capacity, req.Hours, prom)
		if i == 0 {
			result.Note = opt.Note
		}
		switch classify(opt.Name) {
		case categoryPartyBus:
			result.Groups.PartyBus = append(result.Groups.PartyBus, opt)
		case categoryLimousine:
			result.Groups.Limousine = append(result.Groups.Limousine, opt)
		default:
			result.Groups.ShuttleCoach = append(result.Groups.ShuttleCoach, opt)
		}
	}
	return result
}

// matchLocation returns the matching records and the display city. Zip takes
// precedence; with no zip, the city match is the union of exact comma-token
// equality and substring containment, tolerating free-text location fields.
func matchLocation(snap *catalog.Snapshot, req Request) ([]catalog.Record, string) {
	if zip := strings.TrimSpace(req.Zip); zip != "" {
		want := normalizeZip(zip)
		var matched []catalog.Record
		for _, rec := range snap.Rows {
			for _, tok := range strings.Split(rec["zip_codes"], ",") {
				if tok = strings.TrimSpace(tok); tok == "" {
					continue
				}
				if normalizeZip(tok) == want {
					matched = append(matched, rec)
					break
				}
			}
		}
		city := titleCase(req.City)
		if len(matched) > 0 {
			if c := strings.TrimSpace(matched[0]["city"]); c != "" {
				city = c
			}
		}
		return matched, city
	}

	locCol := "location"
	if snap.HasColumn("city") {
		locCol = "city"
	}
	want := strings.ToLower(strings.TrimSpace(req.City))
	var matched []catalog.Record
	if want == "" {
		return matched, titleCase(req.City)
	}
	for _, rec := range snap.Rows {
		raw := strings.ToLower(strings.TrimSpace(rec[locCol]))
		if raw == "" {
			continue
		}
		if strings.Contains(raw, want) {
			matched = append(matched, rec)
			continue
		}
		for _, tok := range strings.Split(raw, ",") {
			if strings.TrimSpace(tok) == want {
				matched = append(matched, rec)
				break
			}
		}
	}
	return matched, titleCase(req.City)
}

// priceOption computes one row's billed hours and totals. Prom pricing scales
// linearly off the six-hour anchor; standard pricing looks for an exact
// billed-hour tier and falls back to the four-hour price.
func priceOption(snap *catalog.Snapshot, rec catalog.Record, capacity, hoursRequested int, prom bool) Option {
	var (
		billed      int
		total       float64
		note        string
		promApplied bool
	)

	if prom {
		if price, ok := parseFloat(rec["prom_price_6hr"]); ok {
			minHours := parseIntDefault(rec["prom_min_hours"], 6)
			billed = max(hoursRequested, minHours)
			if billed == 6 {
				total = price
			} else {
				total = price * float64(billed) / 6
			}
			note = promNote
			promApplied = true
		}
	}
	if !promApplied {
		minHours := parseIntDefault(rec["base_min_hours"], 4)
		billed = max(hoursRequested, minHours)
		tierCol := fmt.Sprintf("price_%dhr", billed)
		if v, ok := parseFloat(rec[tierCol]); ok && snap.HasColumn(tierCol) {
			total = v
		} else {
			total = parseFloatDefault(rec["price_4hr"], 0)
		}
	}

	var hourly float64
	if billed > 0 {
		hourly = total / float64(billed)
	}
	return Option{
		Name:        resolveName(snap, rec),
		Capacity:    capacity,
		HoursBilled: billed,
		HourlyRate:  round2(hourly),
		TotalAllIn:  round2(total),
		PromApplied: promApplied,
		Note:        note,
		ZipCodes:    rec["zip_codes"],
	}
}

// resolveName walks the display-name fallback chain: vehicle_title, name, then
// the first non-empty text column in schema order (the note column excluded),
// then the literal "Unknown".
func resolveName(snap *catalog.Snapshot, rec catalog.Record) string {
	if v := strings.TrimSpace(rec["vehicle_title"]); v != "" {
		return v
	}
	if v := strings.TrimSpace(rec["name"]); v != "" {
		return v
	}
	for _, col := range snap.Columns {
		if col == "note" {
			continue
		}
		if v := strings.TrimSpace(rec[col]); v != "" {
			return v
		}
	}
	return "Unknown"
}
