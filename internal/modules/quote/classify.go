// README: Vehicle category classification by display-name keywords.
package quote

import "strings"

type category int

const (
	categoryPartyBus category = iota
	categoryLimousine
	categoryShuttleCoach
)

var shuttleKeywords = []string{"shuttle", "coach", "charter", "bus"}

// classify buckets a vehicle by case-insensitive substring match, in priority
// order. Names matching no keyword are not dropped; they land in the
// shuttle/coach group as a catch-all. That default predates this service and
// stays until product says otherwise.
func classify(name string) category {
	n := strings.ToLower(name)
	if strings.Contains(n, "party bus") || strings.Contains(n, "partybus") {
		return categoryPartyBus
	}
	if strings.Contains(n, "limo") || strings.Contains(n, "limousine") {
		return categoryLimousine
	}
	for _, kw := range shuttleKeywords {
		if strings.Contains(n, kw) {
			return categoryShuttleCoach
		}
	}
	return categoryShuttleCoach
}
