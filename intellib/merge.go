package intellib

import "strings"

// Merge folds an observation into a record and reports whether any
// field actually changed. It is pure: neither argument is mutated.
//
// The policy is first-meaningful-wins: a field which already holds a
// meaningful value is never overwritten, with a single exception for
// ISP where the longer of two meaningful names is preferred. Addresses
// are adopted only when they validate as the family they claim to be,
// so a provider returning an IPv6 literal under its ipv4 key is dropped
// for that field. Coordinates are adopted only as a complete pair: we
// never mix a latitude from one provider with a longitude from another.
func Merge(current Record, incoming Observation) (Record, bool) {
	merged := current
	changed := false

	if current.IPv4 == "" && ClassifyAddress(incoming.IPv4) == FamilyIPv4 {
		merged.IPv4 = strings.TrimSpace(incoming.IPv4)
		changed = true
	}

	if current.IPv6 == "" && ClassifyAddress(incoming.IPv6) == FamilyIPv6 {
		merged.IPv6 = strings.TrimSpace(incoming.IPv6)
		changed = true
	}

	if current.City == "" && IsMeaningful(incoming.City) {
		merged.City = strings.TrimSpace(incoming.City)
		changed = true
	}

	if current.Country == "" && IsMeaningful(incoming.Country) {
		if country := NormalizeCountry(incoming.Country); country != "" {
			merged.Country = country
			changed = true
		}
	}

	// the record never holds a placeholder ISP, so the tie-break
	// outcome is stored only when it actually says something.
	if isp := ChooseISP(current.ISP, incoming.ISP); isp != current.ISP && IsMeaningful(isp) {
		merged.ISP = isp
		changed = true
	}

	if current.Lat == nil && current.Lon == nil && incoming.Lat != nil && incoming.Lon != nil {
		lat := *incoming.Lat
		lon := *incoming.Lon
		merged.Lat = &lat
		merged.Lon = &lon
		changed = true
	}

	return merged, changed
}

// ChooseISP picks between the current and an incoming ISP name. A
// meaningful name beats a placeholder; between two meaningful names the
// longer trimmed one wins, ties keeping the current. Between two
// non-meaningful values whichever is non-empty survives, preferring the
// current.
func ChooseISP(current, incoming string) string {
	currentTrimmed := strings.TrimSpace(current)
	incomingTrimmed := strings.TrimSpace(incoming)
	currentOK := IsMeaningful(current)
	incomingOK := IsMeaningful(incoming)

	switch {
	case incomingOK && !currentOK:
		return incomingTrimmed
	case currentOK && !incomingOK:
		return currentTrimmed
	case currentOK && incomingOK:
		if len(incomingTrimmed) > len(currentTrimmed) {
			return incomingTrimmed
		}

		return currentTrimmed
	}

	if currentTrimmed != "" {
		return currentTrimmed
	}

	return incomingTrimmed
}
